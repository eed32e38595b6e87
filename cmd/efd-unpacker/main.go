package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xishang0128/efd-unpacker-go/common/config"
	"github.com/xishang0128/efd-unpacker-go/common/i18n"
)

var (
	rootCmd *cobra.Command
	cfg     = config.FromEnv()

	configPath string
	noColor    bool
	language   string
)

func init() {
	i18n.InitLanguage()

	rootCmd = &cobra.Command{
		Use:           "efd-unpacker [file.efd]",
		Short:         i18n.I18nMsg.App.AppDescription,
		Long:          i18n.I18nMsg.App.AppLongDescription,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf(i18n.I18nMsg.App.ErrorFailedToLoadConfig, err)
			}
			cfg = loaded
			applyLanguage(language, cfg.Language)
			if noColor || os.Getenv("NO_COLOR") != "" {
				color.NoColor = true
			}
			return nil
		},
		RunE: runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", i18n.I18nMsg.App.FlagConfig)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, i18n.I18nMsg.App.FlagNoColor)
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", i18n.I18nMsg.App.FlagLanguage)

	initUnpackCmd()
	initListCmd()
	initSettingsCmd()
	initPackCmd()
	initVersionCmd()
}

// applyLanguage picks the first valid language of the flag and the config.
func applyLanguage(candidates ...string) {
	for _, c := range candidates {
		if lang, ok := i18n.ParseLanguage(c); ok {
			i18n.SetLanguage(lang)
			return
		}
	}
}

func main() {
	os.Args = rewriteLegacyArgs(os.Args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		var exit *exitError
		if !errors.As(err, &exit) {
			printError(err.Error())
		}
		os.Exit(exitCode(err))
	}
}
