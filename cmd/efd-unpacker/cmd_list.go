package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xishang0128/efd-unpacker-go/common/i18n"
	"github.com/xishang0128/efd-unpacker-go/unpacker"
	"github.com/xishang0128/efd-unpacker-go/validator"
)

var listJSON bool

func initListCmd() {
	listCmd := &cobra.Command{
		Use:   i18n.I18nMsg.List.Use,
		Short: i18n.I18nMsg.List.Short,
		Long:  i18n.I18nMsg.List.Long,
		Args:  cobra.ExactArgs(1),
		RunE:  runList,
	}

	listCmd.Flags().BoolVarP(&listJSON, "json", "j", false, i18n.I18nMsg.Common.FlagJSON)

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	start := time.Now()
	input := validator.NormalizePath(args[0])

	if err := validator.ValidateEFDFile(input); err != nil {
		printError(err.Error())
		return &exitError{code: 1}
	}

	u, err := unpacker.Open(input, unpackOptions(0))
	if err != nil {
		printError(fmt.Sprintf(i18n.I18nMsg.List.ErrorFailedToList, err))
		return &exitError{code: 1}
	}
	defer u.Close()

	entries := u.Entries()

	if listJSON {
		data, err := json.MarshalIndent(entries, "", "    ")
		if err != nil {
			return fmt.Errorf(i18n.I18nMsg.Common.ErrorFailedToMarshalJSON, err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf(i18n.I18nMsg.List.TotalEntries+"\n", len(entries))
	for _, e := range entries {
		modified := "-"
		if !e.Modified.IsZero() {
			modified = e.Modified.Local().Format(time.DateTime)
		}
		mark := ""
		if e.Unsafe {
			mark = " !"
		}
		fmt.Printf("%-19s %10s  %s%s\n", modified, e.SizeReadable, e.Name, mark)
	}
	fmt.Printf(i18n.I18nMsg.Common.ElapsedTime+"\n", time.Since(start).Round(time.Millisecond))
	return nil
}
