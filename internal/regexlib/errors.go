package regexlib

import (
	"fmt"

	"github.com/pkg/errors"
)

// CompileError reports a fatal construction error at a byte offset in
// the pattern text. Every failure the parser and fragment builder can
// produce is reported through this type.
type CompileError struct {
	Pos int
	Msg string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("regexfsm: %s (at offset %d)", e.Msg, e.Pos)
}

func compileErrorf(pos int, format string, args ...interface{}) error {
	return &CompileError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// wrap attaches call-site context to err without discarding the
// underlying *CompileError, the way the rest of the corpus wraps
// errors instead of just returning them bare.
func wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, context)
}
