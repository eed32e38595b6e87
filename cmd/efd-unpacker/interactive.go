package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"github.com/xishang0128/efd-unpacker-go/common/file"
	"github.com/xishang0128/efd-unpacker-go/common/i18n"
	"github.com/xishang0128/efd-unpacker-go/common/osutil"
	"github.com/xishang0128/efd-unpacker-go/settings"
	"github.com/xishang0128/efd-unpacker-go/unpacker"
	"github.com/xishang0128/efd-unpacker-go/validator"
)

// session is the terminal counterpart of the drag and drop window: pick a
// file, pick an output folder, unpack, then retry or open the result.
type session struct {
	store  *settings.Store
	input  string
	output string
	// manual is a folder typed in with Select Folder that has not been used yet
	manual string

	prompt     prompter
	unpack     func(ctx context.Context, input, output string) unpacker.Outcome
	openFolder func(path string) error
}

// prompter asks the questions of a session
type prompter interface {
	Input(p *survey.Input, validate survey.Validator) (string, error)
	Select(p *survey.Select) (int, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(p *survey.Input, validate survey.Validator) (string, error) {
	var answer string
	err := survey.AskOne(p, &answer, survey.WithValidator(validate))
	return answer, err
}

func (surveyPrompter) Select(p *survey.Select) (int, error) {
	var choice int
	err := survey.AskOne(p, &choice)
	return choice, err
}

func newSession(store *settings.Store) *session {
	return &session{
		store:      store,
		prompt:     surveyPrompter{},
		unpack:     unpackWithProgress,
		openFolder: osutil.OpenFolder,
	}
}

func runInteractive(cmd *cobra.Command, args []string) error {
	store, err := settings.Open()
	if err != nil {
		return fmt.Errorf(i18n.I18nMsg.Settings.ErrorFailedToLoad, err)
	}

	s := newSession(store)
	if len(args) == 1 {
		path, err := file.ResolvePath(args[0])
		if err != nil {
			printError(inputErrorMessage(err))
		} else {
			s.input = path
		}
	}

	fmt.Println(i18n.I18nMsg.MainWindow.Title)
	err = s.run(cmd.Context())
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, context.Canceled) {
		fmt.Println(i18n.I18nMsg.MainWindow.SessionCancelled)
		return nil
	}
	return err
}

func (s *session) run(ctx context.Context) error {
	msgs := i18n.I18nMsg.MainWindow
	for {
		if s.input == "" {
			if err := s.askInput(); err != nil {
				return err
			}
		}

		if err := s.askOutput(); err != nil {
			return err
		}

		if err := validator.CreateOutputDirectory(s.output); err != nil {
			printError(fmt.Sprintf("%s: %s", msgs.InvalidOutputDir, err))
			continue
		}

		fmt.Printf(msgs.UnpackingInto+"\n", s.input, s.output)
		outcome := s.unpack(ctx, s.input, s.output)

		if outcome.OK {
			if err := s.store.SetOutputPath(s.output); err != nil {
				printError(fmt.Sprintf(i18n.I18nMsg.Settings.ErrorFailedToSave, err))
			}
			s.manual = ""

			printOK(outcome.Message)
			printSummary(outcome.Result)

			choice, err := s.choose([]string{msgs.OpenFolder, msgs.Close})
			if err != nil {
				return err
			}
			if choice == msgs.OpenFolder {
				if err := s.openFolder(s.output); err != nil {
					printError(fmt.Sprintf(msgs.FailedToOpenDir, err))
				}
			}
			return nil
		}

		printError(i18n.Arg(msgs.UnpackError, outcome.Message))
		printFailedItems(outcome.Result)
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := s.choose([]string{msgs.Retry, msgs.Close})
		if err != nil {
			return err
		}
		if choice != msgs.Retry {
			return nil
		}
		// Retry starts over from the file choice, the output list keeps the
		// folder picked by hand.
		s.input = ""
	}
}

func unpackWithProgress(ctx context.Context, input, output string) unpacker.Outcome {
	view := newProgressView()
	svc := unpacker.NewService(unpackOptions(0))
	svc.Progress = view.Update

	outcome := svc.Unpack(ctx, input, output)
	view.Wait()
	return outcome
}

func (s *session) askInput() error {
	msgs := i18n.I18nMsg.MainWindow
	prompt := &survey.Input{
		Message: msgs.SelectEFDFile,
		Help:    msgs.EFDFilesFilter,
		Suggest: suggestEFDFiles,
	}
	answer, err := s.prompt.Input(prompt, func(ans interface{}) error {
		str, _ := ans.(string)
		if strings.TrimSpace(str) == "" {
			return errors.New(msgs.NoEFDFileSelected)
		}
		if _, err := file.ResolvePath(str); err != nil {
			return errors.New(inputErrorMessage(err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	path, err := file.ResolvePath(answer)
	if err != nil {
		return err
	}
	s.input = path
	return nil
}

func (s *session) askOutput() error {
	msgs := i18n.I18nMsg.MainWindow
	for {
		items := s.store.OutputPathItems(s.manual)
		options := make([]string, 0, len(items)+2)
		current := ""
		selected := s.manual
		if selected == "" {
			selected = s.store.OutputPath()
		}
		for _, item := range items {
			options = append(options, item.Label)
			if current == "" && filepath.Clean(item.Path) == filepath.Clean(selected) {
				current = item.Label
			}
		}
		options = append(options, msgs.SelectFolder, msgs.ResetToDefault)

		prompt := &survey.Select{
			Message:  msgs.OutputPrompt,
			Options:  options,
			PageSize: 10,
		}
		if current != "" {
			prompt.Default = current
		}

		choice, err := s.prompt.Select(prompt)
		if err != nil {
			return err
		}

		switch {
		case choice < 0 || choice >= len(options):
			return fmt.Errorf("invalid choice %d", choice)
		case choice < len(items):
			s.output = items[choice].Path
			if s.manual != "" && filepath.Clean(s.output) != filepath.Clean(s.manual) {
				s.manual = ""
			}
			return nil
		case options[choice] == msgs.SelectFolder:
			dir, err := s.askFolder(selected)
			if err != nil {
				return err
			}
			s.manual = dir
		default:
			if err := s.store.Reset(); err != nil {
				printError(fmt.Sprintf(i18n.I18nMsg.Settings.ErrorFailedToReset, err))
			}
			s.manual = ""
		}
	}
}

func (s *session) choose(options []string) (string, error) {
	prompt := &survey.Select{
		Message: i18n.I18nMsg.MainWindow.ActionPrompt,
		Options: options,
	}
	choice, err := s.prompt.Select(prompt)
	if err != nil {
		return "", err
	}
	if choice < 0 || choice >= len(options) {
		return "", fmt.Errorf("invalid choice %d", choice)
	}
	return options[choice], nil
}

func (s *session) askFolder(start string) (string, error) {
	msgs := i18n.I18nMsg.MainWindow
	prompt := &survey.Input{
		Message: msgs.SelectOutputFolder,
		Default: start,
		Suggest: suggestDirs,
	}
	answer, err := s.prompt.Input(prompt, func(ans interface{}) error {
		str, _ := ans.(string)
		return validator.ValidateOutputDirectory(str)
	})
	if err != nil {
		return "", err
	}
	return validator.NormalizePath(answer), nil
}

// inputErrorMessage prefers the validator message for rejected input files
func inputErrorMessage(err error) string {
	var verr *validator.Error
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return i18n.I18nMsg.MainWindow.NoEFDFileSelected
}

func suggestEFDFiles(toComplete string) []string {
	matches, _ := filepath.Glob(toComplete + "*")
	var out []string
	for _, m := range matches {
		if isDir(m) || strings.EqualFold(filepath.Ext(m), validator.Extension) {
			out = append(out, m)
		}
	}
	return out
}

func suggestDirs(toComplete string) []string {
	matches, _ := filepath.Glob(toComplete + "*")
	var out []string
	for _, m := range matches {
		if isDir(m) {
			out = append(out, m)
		}
	}
	return out
}

func isDir(path string) bool {
	info, err := validator.GetFileInfo(path)
	return err == nil && info.Mode.IsDir()
}
