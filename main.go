// carousel is a terminal playlist: a circular list of songs with a cursor
// and the last few songs played.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/app"
	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/icons"
	"github.com/llehouerou/carousel/internal/notify"
	"github.com/llehouerou/carousel/internal/playlist"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	icons.Init(cfg.Icons)

	notifier := notify.Disabled()
	if cfg.Notifications {
		if n, err := notify.New(); err == nil {
			notifier = n
		} else {
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpNotify, err))
		}
	}

	m := app.New(cfg, playlist.NewSession(), notifier)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}
