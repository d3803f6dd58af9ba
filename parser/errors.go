package parser

import (
	"errors"
	"fmt"
)

// ErrInvalidContent is returned for source that is not valid UTF-8.
var ErrInvalidContent = errors.New("source is not valid UTF-8")

// SyntaxError reports a parse failure with its source location. Line and
// Col are 1-based.
type SyntaxError struct {
	File string
	Line int
	Col  int
	Desc string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Col, e.Desc)
}
