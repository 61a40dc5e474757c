package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

// writeConfig isolates the config directory and writes a config file.
// Each test passes --config explicitly, so ReadInConfig replaces whatever
// the previous test loaded.
func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "spotlight" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "spotlight")
	}

	expectedCmds := []string{"demo", "config"}
	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}
	for _, expected := range expectedCmds {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}

	for _, c := range []*cobra.Command{rootCmd, demoCmd} {
		if c.Flags().Lookup("filter") == nil {
			t.Errorf("%s should have a --filter flag", c.Name())
		}
	}
	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("rootCmd should have a persistent --config flag")
	}
}

func TestConfigCommand_Subcommands(t *testing.T) {
	subCmds := make(map[string]bool)
	for _, cmd := range configCmd.Commands() {
		subCmds[cmd.Name()] = true
	}
	for _, expected := range []string{"show", "path"} {
		if !subCmds[expected] {
			t.Errorf("expected config subcommand %q not found", expected)
		}
	}
}

func TestConfigShow(t *testing.T) {
	path := writeConfig(t, "tui:\n  mouse_mode: all_motion\n")

	output, err := executeCommand(rootCmd, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "# Config file: "+path) {
		t.Errorf("output should name the config file, got:\n%s", output)
	}
	for _, want := range []string{"mouse_mode: all_motion", "dismiss_buttons:", "level: info"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q, got:\n%s", want, output)
		}
	}
}

func TestConfigShow_Invalid(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: chatty\n")

	output, err := executeCommand(rootCmd, "config", "show", "--config", path)
	if err == nil {
		t.Fatalf("config show should fail for an invalid level, got:\n%s", output)
	}
	if !strings.Contains(err.Error(), "logging.level") {
		t.Errorf("error should name the field, got %v", err)
	}
}

func TestConfigPath(t *testing.T) {
	path := writeConfig(t, "{}\n")

	output, err := executeCommand(rootCmd, "config", "path", "--config", path)
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if strings.TrimSpace(output) != path {
		t.Errorf("config path = %q, want %q", strings.TrimSpace(output), path)
	}
}

func TestSelectWidgets(t *testing.T) {
	all := []string{"delete", "archive", "rename", "share", "help"}

	tests := []struct {
		name    string
		pattern string
		want    []string
		wantErr bool
	}{
		{"empty keeps all", "", all, false},
		{"prefix", "d*", []string{"delete"}, false},
		{"alternation keeps order", "{help,delete}", []string{"delete", "help"}, false},
		{"character class", "[ar]*", []string{"archive", "rename"}, false},
		{"no match", "launch*", nil, true},
		{"bad pattern", "[", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectWidgets(all, tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Fatalf("selectWidgets(%q) error = %v, wantErr %v", tt.pattern, err, tt.wantErr)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("selectWidgets(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}
