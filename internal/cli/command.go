package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/polyglot/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "polyglot",
		Short: "Translation and speech companion",
		Long: `polyglot translates text between 20+ languages and reads
translations aloud using a premium speech backend.

Without a translation credential it answers from a built-in phrase
table; degraded backend answers carry a visible [Demo] marker.

Examples:
  polyglot translate --to es "Hello"      # Translate to Spanish
  polyglot speak --lang fr "Bonjour"      # Read text aloud
  polyglot history                        # Show recent translations
  polyglot key set sk-...                 # Store a translation credential`,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.polyglot.yaml)")
	cmd.PersistentFlags().StringVar(&flags.DBPath, "db", "", "store database path (default is ~/.local/state/polyglot/polyglot.db)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable verbose logging")

	// Bind flags to viper
	viper.BindPFlag("store.path", cmd.PersistentFlags().Lookup("db"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".polyglot" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".polyglot")
	}

	// Environment variables
	viper.SetEnvPrefix("POLYGLOT")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetTranslationKey retrieves the translation backend credential from
// environment or config. An empty result means demo mode unless the
// user has stored a credential.
func GetTranslationKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translation.api_key")
}

// GetSpeechKey retrieves the speech backend credential from
// environment or config.
func GetSpeechKey() string {
	if key := os.Getenv("ELEVENLABS_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("speech.api_key")
}

// StorePath resolves the store database location.
func StorePath(flags *Flags) string {
	if flags.DBPath != "" {
		return flags.DBPath
	}
	if p := viper.GetString("store.path"); p != "" {
		return p
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "polyglot", "polyglot.db")
}
