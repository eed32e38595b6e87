package validator

import (
	"github.com/xishang0128/efd-unpacker-go/common/i18n"
)

// Kind classifies a validation failure
type Kind int

const (
	KindFileNotFound Kind = iota + 1
	KindNotAFile
	KindInvalidFormat
	KindReadPermission
	KindEmptyFile
	KindSizeUnreadable
	KindEmptyOutputPath
	KindOutputNotDirectory
	KindWritePermission
	KindCreatePermission
	KindInvalidOutputPath
	KindCreateFailed
)

func (k Kind) String() string {
	switch k {
	case KindFileNotFound:
		return "file-not-found"
	case KindNotAFile:
		return "not-a-file"
	case KindInvalidFormat:
		return "invalid-format"
	case KindReadPermission:
		return "permission-denied"
	case KindEmptyFile:
		return "empty-file"
	case KindSizeUnreadable:
		return "size-unreadable"
	case KindEmptyOutputPath:
		return "empty-output-path"
	case KindOutputNotDirectory:
		return "output-not-directory"
	case KindWritePermission:
		return "output-permission-denied"
	case KindCreatePermission:
		return "output-create-denied"
	case KindInvalidOutputPath:
		return "invalid-output-path"
	case KindCreateFailed:
		return "directory-creation-failed"
	default:
		return "unknown"
	}
}

// Message returns the localized message of k in the current language
func (k Kind) Message() string {
	m := i18n.I18nMsg.FileValidator
	switch k {
	case KindFileNotFound:
		return m.FileDoesNotExist
	case KindNotAFile:
		return m.PathIsNotAFile
	case KindInvalidFormat:
		return m.InvalidFileFormat
	case KindReadPermission:
		return m.NoReadPermission
	case KindEmptyFile:
		return m.FileIsEmpty
	case KindSizeUnreadable:
		return m.CannotAccessFileSize
	case KindEmptyOutputPath:
		return m.OutputPathEmpty
	case KindOutputNotDirectory:
		return m.OutputPathNotDirectory
	case KindWritePermission:
		return m.NoWritePermission
	case KindCreatePermission:
		return m.NoCreatePermission
	case KindInvalidOutputPath:
		return m.InvalidOutputPath
	case KindCreateFailed:
		return m.FailedToCreateOutput
	default:
		return k.String()
	}
}

// Error is returned by every validation function
type Error struct {
	Kind  Kind
	Path  string
	Cause error
}

func (e *Error) Error() string {
	msg := e.Kind.Message()
	if e.Kind == KindCreateFailed {
		cause := ""
		if e.Cause != nil {
			cause = e.Cause.Error()
		}
		msg = i18n.Arg(msg, cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports a match against another *Error of the same Kind, so callers can
// write errors.Is(err, validator.ErrEmptyFile).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Path == "" && t.Cause == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is
var (
	ErrFileNotFound       = &Error{Kind: KindFileNotFound}
	ErrNotAFile           = &Error{Kind: KindNotAFile}
	ErrInvalidFormat      = &Error{Kind: KindInvalidFormat}
	ErrReadPermission     = &Error{Kind: KindReadPermission}
	ErrEmptyFile          = &Error{Kind: KindEmptyFile}
	ErrSizeUnreadable     = &Error{Kind: KindSizeUnreadable}
	ErrEmptyOutputPath    = &Error{Kind: KindEmptyOutputPath}
	ErrOutputNotDirectory = &Error{Kind: KindOutputNotDirectory}
	ErrWritePermission    = &Error{Kind: KindWritePermission}
	ErrCreatePermission   = &Error{Kind: KindCreatePermission}
	ErrInvalidOutputPath  = &Error{Kind: KindInvalidOutputPath}
	ErrCreateFailed       = &Error{Kind: KindCreateFailed}
)

func newError(kind Kind, path string, cause error) *Error {
	return &Error{Kind: kind, Path: path, Cause: cause}
}
