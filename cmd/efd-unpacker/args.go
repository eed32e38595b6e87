package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/xishang0128/efd-unpacker-go/common/i18n"
)

// legacyFlags are single dash long flags accepted for compatibility with
// scripts written for earlier releases.
var legacyFlags = []string{"tmplts"}

// rewriteLegacyArgs turns -tmplts and -tmplts=dir into their double dash
// form so pflag can parse them. Arguments after "--" are left alone.
func rewriteLegacyArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i, arg := range out {
		if i == 0 {
			continue
		}
		if arg == "--" {
			break
		}
		for _, name := range legacyFlags {
			if arg == "-"+name || strings.HasPrefix(arg, "-"+name+"=") {
				out[i] = "-" + arg
			}
		}
	}
	return out
}

// exitError carries a process exit code for a failure that was already
// reported to the user.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// exitCode maps a command error to the process exit status
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	return 1
}

func printOK(msg string) {
	fmt.Println(color.GreenString(i18n.I18nMsg.Common.OKPrefix), msg)
}

func printError(msg string) {
	fmt.Println(color.RedString(i18n.I18nMsg.Common.ErrorPrefix), msg)
}
