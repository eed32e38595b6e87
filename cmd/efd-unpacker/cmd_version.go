package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/xishang0128/efd-unpacker-go/common/i18n"
	"github.com/xishang0128/efd-unpacker-go/compression"
	"github.com/xishang0128/efd-unpacker-go/constant"
)

var versionJSON bool

func initVersionCmd() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: i18n.I18nMsg.App.VersionCmdShort,
		Long:  i18n.I18nMsg.App.VersionCmdLong,
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}

	versionCmd.Flags().BoolVarP(&versionJSON, "json", "j", false, i18n.I18nMsg.Common.FlagJSON)

	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	m := compression.NewDecompressorManager()
	impls := m.GetImplementationInfo()

	if versionJSON {
		info := compression.GetBuildInfo()
		info["version"] = constant.Version
		info["build_time"] = constant.BuildTime
		codecs := make(map[string]string, len(impls))
		for t, impl := range impls {
			codecs[t.String()] = impl
		}
		info["implementations"] = codecs

		data, err := json.MarshalIndent(info, "", "    ")
		if err != nil {
			return fmt.Errorf(i18n.I18nMsg.Common.ErrorFailedToMarshalJSON, err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s\n", i18n.I18nMsg.App.VersionTitle)
	fmt.Printf("%s: %s(%s)\n", i18n.I18nMsg.App.VersionLabel, constant.Version, constant.BuildTime)
	fmt.Printf("%s: %s\n", i18n.I18nMsg.App.GoVersionLabel, runtime.Version())
	fmt.Printf("%s: %s/%s\n", i18n.I18nMsg.App.PlatformLabel, runtime.GOOS, runtime.GOARCH)

	fmt.Printf("\n%s:\n", i18n.I18nMsg.App.DeflateImplementation)
	for _, t := range m.GetSupportedTypes() {
		fmt.Printf("  %-8s: %s\n", t, impls[t])
	}
	return nil
}
