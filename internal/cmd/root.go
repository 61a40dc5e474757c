package cmd

import (
	"strings"

	"github.com/Iron-Ham/spotlight/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "spotlight",
	Short: "Outside-click dismissal for terminal UIs",
	Long: `Spotlight keeps at most one transient widget open at a time in a
terminal UI. Opening a popover closes whatever was open before, and a
mouse press outside the open widget dismisses it.

Running spotlight without a subcommand starts the interactive demo.`,
	RunE: runDemo,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/spotlight/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	addDemoFlags(rootCmd)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SPOTLIGHT")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SPOTLIGHT_TUI_MOUSE_MODE for tui.mouse_mode
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
