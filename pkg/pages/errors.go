package pages

import (
	"errors"
	"fmt"
)

// Structural page failures. All of them are recoverable at the per-page
// scope: a bulk catalog build records them and keeps going.
var (
	ErrZeroMarkdown      = errors.New("page directory contains no markdown file")
	ErrAmbiguousMarkdown = errors.New("page directory contains more than one markdown file")
	ErrSchema            = errors.New("invalid page config")
	ErrTemplateCompile   = errors.New("page template compile failed")
	ErrPageNotFound      = errors.New("page not found")
)

// BuildError reports a single failed page build alongside its directory.
type BuildError struct {
	Dir string
	Err error
}

func (e BuildError) Error() string {
	return fmt.Sprintf("page %s: %v", e.Dir, e.Err)
}

func (e BuildError) Unwrap() error {
	return e.Err
}
