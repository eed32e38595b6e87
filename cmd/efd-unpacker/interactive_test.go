package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xishang0128/efd-unpacker-go/common/i18n"
	"github.com/xishang0128/efd-unpacker-go/settings"
	"github.com/xishang0128/efd-unpacker-go/unpacker"
)

// scriptedPrompter answers prompts in order. Input answers are returned as
// is after passing the validator, Select answers pick the first option that
// starts with them. Running out of answers interrupts the session.
type scriptedPrompter struct {
	t       *testing.T
	answers []string
	selects [][]string
}

func (p *scriptedPrompter) next() (string, bool) {
	if len(p.answers) == 0 {
		return "", false
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, true
}

func (p *scriptedPrompter) Input(prompt *survey.Input, validate survey.Validator) (string, error) {
	a, ok := p.next()
	if !ok {
		return "", terminal.InterruptErr
	}
	if validate != nil {
		require.NoError(p.t, validate(a), prompt.Message)
	}
	return a, nil
}

func (p *scriptedPrompter) Select(prompt *survey.Select) (int, error) {
	p.selects = append(p.selects, prompt.Options)
	a, ok := p.next()
	if !ok {
		return 0, terminal.InterruptErr
	}
	for i, opt := range prompt.Options {
		if strings.HasPrefix(opt, a) {
			return i, nil
		}
	}
	p.t.Fatalf("no option %q in %q", a, prompt.Options)
	return 0, nil
}

type unpackCall struct {
	input  string
	output string
}

func newTestSession(t *testing.T, outcomes ...unpacker.Outcome) (*session, *scriptedPrompter, *[]unpackCall) {
	t.Helper()
	i18n.SetLanguage(i18n.English)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("APPDATA", home)
	t.Setenv("ALLUSERSPROFILE", home)

	s := newSession(settings.New(filepath.Join(t.TempDir(), "settings.json")))
	p := &scriptedPrompter{t: t}
	s.prompt = p

	var calls []unpackCall
	s.unpack = func(ctx context.Context, input, output string) unpacker.Outcome {
		calls = append(calls, unpackCall{input, output})
		require.NotEmpty(t, outcomes, "unexpected unpack of %s", input)
		o := outcomes[0]
		outcomes = outcomes[1:]
		return o
	}
	s.openFolder = func(string) error {
		t.Fatal("folder opened")
		return nil
	}
	return s, p, &calls
}

func writeEFD(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "1cv8.efd")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	return path
}

var (
	failed    = unpacker.Outcome{Kind: unpacker.OutcomeFileNotFound, Message: "File not found"}
	completed = unpacker.Outcome{OK: true, Kind: unpacker.OutcomeCompleted, Message: "Unpacking completed successfully"}
)

func TestSessionRetryAsksForFileAgain(t *testing.T) {
	msgs := i18n.EnglishMainWindowMessages
	s, p, calls := newTestSession(t, failed, completed)
	manual := t.TempDir()
	good := writeEFD(t)

	s.input = filepath.Join(t.TempDir(), "deleted.efd")
	p.answers = []string{
		msgs.SelectFolder, manual, manual,
		msgs.Retry,
		good, manual,
		msgs.Close,
	}

	require.NoError(t, s.run(context.Background()))
	require.Len(t, *calls, 2)
	assert.Equal(t, good, (*calls)[1].input)
	assert.Equal(t, manual, (*calls)[1].output)

	// The hand-picked folder is still offered first after Retry.
	require.Len(t, p.selects, 5)
	assert.Equal(t, manual, p.selects[3][0])

	assert.Equal(t, manual, s.store.OutputPath())
	assert.Empty(t, s.manual)
	assert.Empty(t, p.answers)
}

func TestSessionFailedRunKeepsSettings(t *testing.T) {
	msgs := i18n.EnglishMainWindowMessages
	s, p, _ := newTestSession(t, failed)
	manual := t.TempDir()

	s.input = writeEFD(t)
	p.answers = []string{msgs.SelectFolder, manual, manual, msgs.Close}

	require.NoError(t, s.run(context.Background()))
	v, err := s.store.Load()
	require.NoError(t, err)
	assert.Empty(t, v.OutputPath)
	assert.Equal(t, manual, s.manual)
}

func TestSessionResetToDefault(t *testing.T) {
	msgs := i18n.EnglishMainWindowMessages
	s, p, calls := newTestSession(t, completed)
	last := t.TempDir()
	require.NoError(t, s.store.SetOutputPath(last))

	var opened string
	s.openFolder = func(path string) error {
		opened = path
		return nil
	}

	def := s.store.DefaultOutputPath()
	s.input = writeEFD(t)
	p.answers = []string{msgs.ResetToDefault, def, msgs.OpenFolder}

	require.NoError(t, s.run(context.Background()))
	require.Len(t, *calls, 1)
	assert.Equal(t, def, (*calls)[0].output)
	assert.Equal(t, def, opened)

	require.GreaterOrEqual(t, len(p.selects), 2)
	assert.True(t, strings.HasPrefix(p.selects[0][0], last))
	for _, opt := range p.selects[1] {
		assert.False(t, strings.HasPrefix(opt, last), opt)
	}
	assert.Equal(t, def, s.store.OutputPath())
}

func TestSessionInterrupted(t *testing.T) {
	s, _, calls := newTestSession(t)

	err := s.run(context.Background())
	assert.ErrorIs(t, err, terminal.InterruptErr)
	assert.Empty(t, *calls)
}

func TestSessionCancelledAfterFailure(t *testing.T) {
	s, p, _ := newTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	s.unpack = func(context.Context, string, string) unpacker.Outcome {
		cancel()
		return unpacker.Outcome{Kind: unpacker.OutcomeUnexpected, Message: "Unexpected error: context canceled"}
	}

	s.input = writeEFD(t)
	p.answers = []string{s.store.DefaultOutputPath()}

	err := s.run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, p.answers)
}
