// carouselctl applies playlist commands read from a file or stdin.
//
//	carouselctl [script]
//
// One command per line: add <title> | <artist> | <seconds>, delete <title>,
// next, prev, rewind, search <key>, sort title|duration|1|2, show, recent,
// import <path>, exit.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/notify"
	"github.com/llehouerou/carousel/internal/playlist"
	"github.com/llehouerou/carousel/internal/script"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("carouselctl: ")

	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	var in io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := playlist.NewSession()
	for _, src := range cfg.Sources {
		if _, err := session.Import(ctx, src); err != nil {
			log.Print(errmsg.FormatWith(errmsg.OpImportPath, src, err))
		}
	}
	session.Playlist.SortBy(cfg.SortCriterion())

	var opts []script.Option
	if cfg.Notifications {
		notifier, err := notify.New()
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpNotify, err))
		}
		np := notify.NewNowPlaying(notifier)
		opts = append(opts, script.OnPlay(func(s playlist.Song) {
			if err := np.Announce(s); err != nil {
				log.Print(errmsg.Format(errmsg.OpNotify, err))
			}
		}))
	}

	return script.NewRunner(session, os.Stdout, opts...).Run(ctx, in)
}
