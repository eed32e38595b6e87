package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xishang0128/efd-unpacker-go/common/i18n"
	"github.com/xishang0128/efd-unpacker-go/settings"
	"github.com/xishang0128/efd-unpacker-go/validator"
)

func initSettingsCmd() {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: i18n.I18nMsg.Settings.Short,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: i18n.I18nMsg.Settings.ShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := settings.Open()
			if err != nil {
				return fmt.Errorf(i18n.I18nMsg.Settings.ErrorFailedToLoad, err)
			}
			if _, err := store.Load(); err != nil {
				printError(fmt.Sprintf(i18n.I18nMsg.Settings.ErrorFailedToLoad, err))
			}

			msgs := i18n.I18nMsg.Settings
			fmt.Printf("%s: %s\n", msgs.SettingsFile, store.Path())
			fmt.Printf("%s: %s\n", msgs.OutputPath, store.OutputPath())
			fmt.Printf("%s:\n", msgs.Candidates)
			for _, item := range store.OutputPathItems("") {
				fmt.Printf("  %s\n", item.Label)
			}
			return nil
		},
	}

	setOutputCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Settings.SetOutputUse,
		Short: i18n.I18nMsg.Settings.SetOutputShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := validator.NormalizePath(args[0])
			if err := validator.ValidateOutputDirectory(dir); err != nil {
				printError(err.Error())
				return &exitError{code: 1}
			}

			store, err := settings.Open()
			if err == nil {
				err = store.SetOutputPath(dir)
			}
			if err != nil {
				return fmt.Errorf(i18n.I18nMsg.Settings.ErrorFailedToSave, err)
			}
			printOK(fmt.Sprintf(i18n.I18nMsg.Settings.OutputPathSaved, dir))
			return nil
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: i18n.I18nMsg.Settings.ResetShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := settings.Open()
			if err == nil {
				err = store.Reset()
			}
			if err != nil {
				return fmt.Errorf(i18n.I18nMsg.Settings.ErrorFailedToReset, err)
			}
			printOK(fmt.Sprintf(i18n.I18nMsg.Settings.OutputPathReset, store.DefaultOutputPath()))
			return nil
		},
	}

	settingsCmd.AddCommand(showCmd, setOutputCmd, resetCmd)
	rootCmd.AddCommand(settingsCmd)
}
