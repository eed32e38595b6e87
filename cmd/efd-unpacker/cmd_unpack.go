package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/xishang0128/efd-unpacker-go/common/i18n"
	"github.com/xishang0128/efd-unpacker-go/common/osutil"
	"github.com/xishang0128/efd-unpacker-go/settings"
	"github.com/xishang0128/efd-unpacker-go/unpacker"
	"github.com/xishang0128/efd-unpacker-go/validator"
)

var (
	unpackTemplates string
	unpackWorkers   int
	unpackOpen      bool
	unpackQuiet     bool
	unpackVerify    bool
)

func initUnpackCmd() {
	unpackCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Unpack.Use,
		Short: i18n.I18nMsg.Unpack.Short,
		Long:  i18n.I18nMsg.Unpack.Long,
		Args:  cobra.ExactArgs(1),
		RunE:  runUnpack,
	}

	unpackCmd.Flags().StringVar(&unpackTemplates, "tmplts", "", i18n.I18nMsg.Unpack.FlagTemplates)
	unpackCmd.Flags().IntVarP(&unpackWorkers, "workers", "w", 0, i18n.I18nMsg.Common.FlagWorkers)
	unpackCmd.Flags().BoolVar(&unpackOpen, "open", false, i18n.I18nMsg.Unpack.FlagOpen)
	unpackCmd.Flags().BoolVar(&unpackVerify, "verify", false, i18n.I18nMsg.Unpack.FlagVerify)
	unpackCmd.Flags().BoolVarP(&unpackQuiet, "quiet", "q", false, i18n.I18nMsg.Common.FlagQuiet)

	rootCmd.AddCommand(unpackCmd)
}

func runUnpack(cmd *cobra.Command, args []string) error {
	start := time.Now()
	input := args[0]
	if strings.TrimSpace(input) == "" {
		printError(fmt.Sprintf(i18n.I18nMsg.Unpack.InvalidOrMissingFile, input))
		return &exitError{code: 2}
	}

	output, err := resolveOutput(unpackTemplates)
	if err != nil {
		printError(fmt.Sprintf(i18n.I18nMsg.Settings.ErrorFailedToLoad, err))
		return &exitError{code: 1}
	}

	input = validator.NormalizePath(input)
	output = validator.NormalizePath(output)

	if err := validator.ValidateEFDFile(input); err != nil {
		printError(err.Error())
		return &exitError{code: 1}
	}
	if err := validator.CreateOutputDirectory(output); err != nil {
		printError(err.Error())
		return &exitError{code: 1}
	}

	if !unpackQuiet {
		fmt.Printf(i18n.I18nMsg.Unpack.UsingOutputPath+"\n", output)
	}

	opts := unpackOptions(unpackWorkers)
	opts.Verify = unpackVerify
	svc := unpacker.NewService(opts)
	var view *progressView
	if !unpackQuiet {
		view = newProgressView()
		svc.Progress = view.Update
	}

	outcome := svc.Unpack(cmd.Context(), input, output)
	view.Wait()

	if !outcome.OK {
		printError(outcome.Message)
		printFailedItems(outcome.Result)
		return &exitError{code: 1}
	}

	printOK(outcome.Message)
	if !unpackQuiet {
		printSummary(outcome.Result)
		fmt.Printf(i18n.I18nMsg.Common.ElapsedTime+"\n", time.Since(start).Round(time.Millisecond))
	}

	if unpackOpen {
		if err := osutil.OpenFolder(output); err != nil {
			printError(fmt.Sprintf(i18n.I18nMsg.MainWindow.FailedToOpenDir, err))
		}
	}
	return nil
}

// resolveOutput picks the output folder: the flag, then EFD_UNPACKER_OUTPUT,
// then the saved settings.
func resolveOutput(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.Output != "" {
		return cfg.Output, nil
	}
	store, err := settings.Open()
	if err != nil {
		return "", err
	}
	return store.OutputPath(), nil
}

func unpackOptions(workers int) *unpacker.Options {
	opts := unpacker.DefaultOptions()
	if workers <= 0 {
		workers = cfg.Workers
	}
	if workers > 0 {
		opts.Workers = workers
	}
	opts.Verbose = cfg.Verbose
	return opts
}

func printSummary(result *unpacker.Result) {
	if result == nil {
		return
	}
	fmt.Printf(i18n.I18nMsg.Unpack.FilesWritten+"\n",
		result.FilesWritten, result.FilesTotal, humanize.IBytes(uint64(result.BytesWritten)))
}

func printFailedItems(result *unpacker.Result) {
	if result == nil {
		return
	}
	for _, item := range result.Failed() {
		fmt.Printf("  "+i18n.I18nMsg.Unpack.ItemFailed+"\n", item.Name, item.Err)
	}
}
