package core

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Error codes. Transformations themselves never fail, codes are reported by
// configuration and resource loading only.
const (
	NOERROR   int = 0
	EMISSING  int = 122 // pattern file or other resource does not exist
	EINVALID  int = 123 // unparsable patterns, unknown backend or language
	EIO       int = 124 // reading a resource failed
	EINTERNAL int = 125 // internal error
)

var errorTexts = map[int]string{
	NOERROR:   "OK",
	EMISSING:  "not found",
	EINVALID:  "invalid",
	EIO:       "i/o error",
	EINTERNAL: "internal error",
}

func errorText(ecode int) string {
	if text, ok := errorTexts[ecode]; ok {
		return text
	}
	return "undefined error"
}

// Sentinels for use with errors.Is. An error matches a sentinel if it
// carries the sentinel's code, e.g.
//
//     if errors.Is(err, core.ErrMissing) { … }
//
var (
	ErrMissing = ErrorWithCode(nil, EMISSING)
	ErrInvalid = ErrorWithCode(nil, EINVALID)
	ErrIO      = ErrorWithCode(nil, EIO)
)

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

// codedError decorates a cause with a code and a message for the user.
type codedError struct {
	cause error
	code  int
	msg   string
}

var _ AppError = codedError{}

func (e codedError) Error() string {
	if cause := e.cause.Error(); e.msg != cause {
		return fmt.Sprintf("[%d] %s: %s", e.code, e.msg, cause)
	}
	return fmt.Sprintf("[%d] %s", e.code, e.msg)
}

func (e codedError) Unwrap() error {
	return e.cause
}

// Is reports whether target is a coded error with the same code.
func (e codedError) Is(target error) bool {
	t, ok := target.(codedError)
	return ok && t.code == e.code
}

func (e codedError) ErrorCode() int {
	return e.code
}

func (e codedError) UserMessage() string {
	return e.msg
}

// ErrorWithCode adds an error code to err's error chain. A nil err is
// replaced by an error carrying the code's default text.
func ErrorWithCode(err error, code int) error {
	return WrapError(err, code, "%s", errorText(code))
}

// WrapError wraps an error in a coded error, featuring an error code and
// a user message. If err is nil, an error carrying the code's default text
// is wrapped.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return codedError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return WrapError(nil, code, format, v...)
}

// Code returns the error code of the first coded error in err's chain.
// Errors without a code yield EINTERNAL, a nil error yields NOERROR.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message of the first coded error in err's
// chain, or the default text for err's code. A nil error yields "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// ReportError writes a one-line report of err to w.
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if e := AppError(nil); errors.As(err, &e) {
		fmt.Fprintf(w, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(w, "Error: %s\n", err.Error())
}

// UserError reports err to stderr.
func UserError(err error) {
	ReportError(os.Stderr, err)
}
