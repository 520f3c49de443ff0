package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codeberg.org/snonux/polyglot/internal/app"
	"codeberg.org/snonux/polyglot/internal/cli"
	"codeberg.org/snonux/polyglot/internal/language"
	"codeberg.org/snonux/polyglot/internal/speech"
	"codeberg.org/snonux/polyglot/internal/store"
	"codeberg.org/snonux/polyglot/internal/translate"
)

func main() {
	_ = godotenv.Load()

	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.AddCommand(
		translateCommand(flags),
		speakCommand(flags),
		historyCommand(flags),
		settingsCommand(flags),
		keyCommand(flags),
		languagesCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp wires the service objects for one command invocation. The
// store is owned by the returned cleanup func.
func newApp(flags *cli.Flags) (*app.App, *store.Store, func(), error) {
	logger := zap.NewNop()
	if flags.Verbose {
		logger, _ = zap.NewDevelopment()
	}

	st, err := store.Open(cli.StorePath(flags), logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open store: %w", err)
	}

	translator := translate.NewTranslator(translate.Config{
		APIKey:      cli.GetTranslationKey(),
		Credentials: st,
		Logger:      logger,
	})
	synthesizer := speech.NewSynthesizer(speech.Config{
		APIKey: cli.GetSpeechKey(),
		Logger: logger,
	})

	a := app.New(translator, synthesizer, speech.NewPlayer(), st, logger)
	cleanup := func() {
		_ = logger.Sync()
		st.Close()
	}
	return a, st, cleanup, nil
}

func translateCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate text between languages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, st, cleanup, err := newApp(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			settings := st.LoadSettings()
			source := flags.From
			if source == "" {
				source = settings.DefaultSourceLanguage
			}
			target := flags.To
			if target == "" {
				target = settings.DefaultTargetLanguage
			}

			rec, err := a.Translate(cmd.Context(), strings.Join(args, " "), source, target)
			if err != nil {
				return err
			}

			fmt.Printf("%s → %s\n", language.DisplayName(source), language.DisplayName(target))
			fmt.Println(rec.TranslatedText)

			if flags.Speak && !rec.IsAudio {
				if err := a.Speak(cmd.Context(), rec.TranslatedText, target, flags.Voice); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.From, "from", "", "Source language code (default from settings)")
	cmd.Flags().StringVar(&flags.To, "to", "", "Target language code (default from settings)")
	cmd.Flags().BoolVar(&flags.Speak, "speak", false, "Read the translation aloud")
	cmd.Flags().StringVar(&flags.Voice, "voice", "", "Override the speech voice ID")
	return cmd
}

func speakCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speak [text...]",
		Short: "Read text aloud",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, st, cleanup, err := newApp(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			lang := flags.Lang
			if lang == "" {
				lang = st.LoadSettings().DefaultTargetLanguage
			}
			return a.Speak(cmd.Context(), strings.Join(args, " "), lang, flags.Voice)
		},
	}

	cmd.Flags().StringVar(&flags.Lang, "lang", "", "Language code of the text (default from settings)")
	cmd.Flags().StringVar(&flags.Voice, "voice", "", "Override the speech voice ID")
	return cmd
}

func historyCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent translations, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, cleanup, err := newApp(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			history := a.History()
			if len(history) == 0 {
				fmt.Println("No translations yet.")
				return nil
			}
			for _, rec := range history {
				marker := " "
				if rec.IsAudio {
					marker = "♪"
				}
				fmt.Printf("%s %s  %s → %s  %q → %q\n",
					marker, rec.CreatedAt.Local().Format("2006-01-02 15:04"),
					rec.SourceLanguage, rec.TargetLanguage,
					rec.OriginalText, rec.TranslatedText)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete the entire translation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, cleanup, err := newApp(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.ClearHistory(); err != nil {
				return err
			}
			fmt.Println("History cleared.")
			return nil
		},
	})
	return cmd
}

func settingsCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, cleanup, err := newApp(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			s := a.Settings()
			fmt.Printf("Source language: %s (%s)\n", s.DefaultSourceLanguage, language.DisplayName(s.DefaultSourceLanguage))
			fmt.Printf("Target language: %s (%s)\n", s.DefaultTargetLanguage, language.DisplayName(s.DefaultTargetLanguage))
			fmt.Printf("Auto-speak:      %v\n", s.AutoSpeakEnabled)
			fmt.Printf("Dark mode:       %v\n", s.DarkModeEnabled)
			return nil
		},
	}

	var source, target string
	var autoSpeak, darkMode string
	set := &cobra.Command{
		Use:   "set",
		Short: "Update settings (whole-record replace)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, cleanup, err := newApp(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			s := a.Settings()
			if source != "" {
				if _, ok := language.ByCode(source); !ok {
					return fmt.Errorf("unknown language code %q", source)
				}
				s.DefaultSourceLanguage = source
			}
			if target != "" {
				if _, ok := language.ByCode(target); !ok {
					return fmt.Errorf("unknown language code %q", target)
				}
				s.DefaultTargetLanguage = target
			}
			if autoSpeak != "" {
				s.AutoSpeakEnabled = autoSpeak == "true"
			}
			if darkMode != "" {
				s.DarkModeEnabled = darkMode == "true"
			}
			if err := a.SaveSettings(s); err != nil {
				return err
			}
			fmt.Println("Settings saved.")
			return nil
		},
	}
	set.Flags().StringVar(&source, "source", "", "Default source language code")
	set.Flags().StringVar(&target, "target", "", "Default target language code")
	set.Flags().StringVar(&autoSpeak, "auto-speak", "", "Speak translations automatically (true/false)")
	set.Flags().StringVar(&darkMode, "dark-mode", "", "Dark mode (true/false, currently inert)")

	cmd.AddCommand(set)
	return cmd
}

func keyCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the stored translation credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, cleanup, err := newApp(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			status := a.Status()
			fmt.Printf("Build-time translation credential: %v\n", status.BackendConfigured)
			fmt.Printf("Stored user credential:            %v\n", status.UserConfigured)
			fmt.Printf("Speech credential:                 %v\n", status.SpeechConfigured)
			if !status.BackendConfigured && !status.UserConfigured {
				fmt.Println("\nTranslation runs in offline/demo mode. Store a credential with:")
				fmt.Println("  polyglot key set <api-key>")
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set [api-key]",
		Short: "Store a translation credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, cleanup, err := newApp(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.SetCredential(args[0]); err != nil {
				return err
			}
			fmt.Println("Credential stored.")
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the stored translation credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, cleanup, err := newApp(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.ClearCredential(); err != nil {
				return err
			}
			fmt.Println("Credential cleared.")
			return nil
		},
	})
	return cmd
}

func languagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported languages",
		Run: func(cmd *cobra.Command, args []string) {
			for _, l := range language.Catalog {
				fmt.Printf("%s %-4s %s\n", l.Flag, l.Code, l.Name)
			}
		},
	}
}
