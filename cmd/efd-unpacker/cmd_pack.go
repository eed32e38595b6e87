package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xishang0128/efd-unpacker-go/common/i18n"
	"github.com/xishang0128/efd-unpacker-go/unpacker"
	"github.com/xishang0128/efd-unpacker-go/validator"
)

var (
	packOut   string
	packStore bool
)

func initPackCmd() {
	packCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Pack.Use,
		Short: i18n.I18nMsg.Pack.Short,
		Long:  i18n.I18nMsg.Pack.Long,
		Args:  cobra.ExactArgs(1),
		RunE:  runPack,
	}

	packCmd.Flags().StringVarP(&packOut, "out", "o", "1cv8.efd", i18n.I18nMsg.Common.FlagOut)
	packCmd.Flags().BoolVar(&packStore, "store", false, i18n.I18nMsg.Pack.FlagStore)

	rootCmd.AddCommand(packCmd)
}

func runPack(cmd *cobra.Command, args []string) error {
	start := time.Now()
	src := validator.NormalizePath(args[0])
	out := validator.NormalizePath(packOut)

	result, err := unpacker.Pack(src, out, unpacker.PackOptions{Store: packStore})
	if err != nil {
		printError(fmt.Sprintf(i18n.I18nMsg.Pack.ErrorFailedToRun, err))
		return &exitError{code: 1}
	}

	printOK(fmt.Sprintf(i18n.I18nMsg.Pack.PackCompleted, result.Files, out))
	fmt.Printf(i18n.I18nMsg.Common.ElapsedTime+"\n", time.Since(start).Round(time.Millisecond))
	return nil
}
