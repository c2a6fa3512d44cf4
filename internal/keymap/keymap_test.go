package keymap

import (
	"slices"
	"testing"
)

func TestByContext(t *testing.T) {
	for _, context := range Contexts {
		t.Run(context, func(t *testing.T) {
			result := ByContext(context)
			if len(result) == 0 {
				t.Errorf("ByContext(%q) returned empty", context)
			}
			for _, b := range result {
				if b.Context != context {
					t.Errorf("binding context = %q, want %q", b.Context, context)
				}
			}
		})
	}

	if got := ByContext("unknown"); len(got) != 0 {
		t.Errorf("ByContext(unknown) = %v, want empty", got)
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	for _, b := range Bindings {
		if b.Action == "" {
			t.Errorf("binding %v has no action", b.Keys)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding %q has no description", b.Action)
		}
		if !slices.Contains(Contexts, b.Context) {
			t.Errorf("binding %q has unknown context %q", b.Action, b.Context)
		}
	}
}

func TestBindingsHaveUniqueKeys(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range Bindings {
		for _, key := range b.Keys {
			if prev, ok := seen[key]; ok {
				t.Errorf("key %q bound to both %q and %q", key, prev, b.Action)
			}
			seen[key] = b.Action
		}
	}
}
