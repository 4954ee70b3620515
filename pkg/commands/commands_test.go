package commands

import (
	"testing"
)

func TestCommandTree(t *testing.T) {
	root := New()
	for _, name := range []string{
		"list", "tap", "skip", "reset", "target", "edit", "revert", "delete",
		"restore", "add", "order", "move", "categories", "fav", "pin", "recent",
		"stats", "watch", "key", "info", "version", "completion",
	} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Errorf("command %q not registered: %v", name, err)
		}
	}

	cmd, _, err := root.Find([]string{"categories", "rm"})
	if err != nil || cmd.Name() != "rm" {
		t.Errorf("categories rm not registered: %v", err)
	}
}

func TestArgsValidation(t *testing.T) {
	root := New()
	tests := map[string][]string{
		"tap without id":       {"tap"},
		"tap with bad id":      {"tap", "abc"},
		"move bad direction":   {"move", "morning", "1", "sideways"},
		"target without value": {"target", "1"},
		"order without ids":    {"order", "morning"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, rest, err := root.Find(args)
			if err != nil {
				t.Fatalf("find: %v", err)
			}
			if err := cmd.ValidateArgs(rest); err == nil {
				t.Fatalf("expected %v to be rejected", args)
			}
		})
	}
}
