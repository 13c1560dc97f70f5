package cli

import (
	"testing"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"size", "cursor", "info", "displays"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_RejectsUnknownFormat(t *testing.T) {
	if err := rootCmd.PersistentFlags().Set("format", "toml"); err != nil {
		t.Fatal(err)
	}
	defer rootCmd.PersistentFlags().Set("format", "yaml")

	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err == nil {
		t.Error("unknown format should be rejected")
	}
}

func TestRootCommand_AcceptsJSONFormat(t *testing.T) {
	if err := rootCmd.PersistentFlags().Set("format", "json"); err != nil {
		t.Fatal(err)
	}
	defer rootCmd.PersistentFlags().Set("format", "yaml")

	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err != nil {
		t.Errorf("json format should be accepted: %v", err)
	}
}
