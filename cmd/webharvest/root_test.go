package main

import (
	"testing"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "webharvest" {
			t.Errorf("expected use 'webharvest', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has long description", func(t *testing.T) {
		t.Parallel()
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has persistent flags", func(t *testing.T) {
		t.Parallel()

		for flag, shorthand := range map[string]string{
			"verbose":  "v",
			"json":     "j",
			"markdown": "m",
			"output":   "o",
		} {
			f := cmd.PersistentFlags().Lookup(flag)
			if f == nil {
				t.Fatalf("expected %s flag", flag)
			}
			if f.Shorthand != shorthand {
				t.Errorf("flag %s: expected shorthand %q, got %q", flag, shorthand, f.Shorthand)
			}
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()

		wanted := map[string]bool{
			"extract [url...]": false,
			"scrape [url]":     false,
			"search [query]":   false,
			"archive":          false,
			"version":          false,
		}
		for _, sub := range cmd.Commands() {
			if _, ok := wanted[sub.Use]; ok {
				wanted[sub.Use] = true
			}
		}
		for use, found := range wanted {
			if !found {
				t.Errorf("expected %q subcommand", use)
			}
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}
