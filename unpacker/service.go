package unpacker

import (
	"context"
	"errors"
	"io/fs"

	"github.com/xishang0128/efd-unpacker-go/common/i18n"
)

// OutcomeKind classifies the result of Service.Unpack
type OutcomeKind int

const (
	OutcomeCompleted OutcomeKind = iota
	OutcomeFileNotFound
	OutcomePermissionError
	OutcomeUnexpected
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCompleted:
		return "completed"
	case OutcomeFileNotFound:
		return "file_not_found"
	case OutcomePermissionError:
		return "permission_error"
	default:
		return "unexpected"
	}
}

// Outcome is what the presentation layer shows after an unpack
type Outcome struct {
	OK      bool
	Kind    OutcomeKind
	Message string
	Result  *Result
}

// Service opens, unpacks and closes a supply file in one call
type Service struct {
	Options  *Options
	Progress ProgressCallback
}

// NewService creates a service with the given options (nil means defaults)
func NewService(opts *Options) *Service {
	return &Service{Options: opts}
}

// Unpack extracts input into output and maps any failure to a localized message.
func (s *Service) Unpack(ctx context.Context, input, output string) Outcome {
	u, err := Open(input, s.Options)
	if err != nil {
		return Classify(err, nil)
	}
	defer u.Close()

	result, err := u.Unpack(ctx, output, s.Progress)
	if err == nil && result != nil {
		err = result.Err()
	}
	return Classify(err, result)
}

// Classify turns an unpack error into an Outcome. A nil error is a success.
func Classify(err error, result *Result) Outcome {
	msgs := i18n.I18nMsg.UnpackService
	switch {
	case err == nil:
		return Outcome{OK: true, Kind: OutcomeCompleted, Message: msgs.Completed, Result: result}
	case errors.Is(err, fs.ErrNotExist):
		return Outcome{Kind: OutcomeFileNotFound, Message: msgs.FileNotFound, Result: result}
	case errors.Is(err, fs.ErrPermission):
		return Outcome{Kind: OutcomePermissionError, Message: msgs.PermissionError, Result: result}
	default:
		return Outcome{
			Kind:    OutcomeUnexpected,
			Message: i18n.Arg(msgs.UnexpectedError, err.Error()),
			Result:  result,
		}
	}
}
