// Package dialogue implements the typewriter text box: a multi-page script
// revealed one character per tick, advanced by player input.
package dialogue

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyScript is returned for a script without pages.
	ErrEmptyScript = errors.New("script has no pages")
	// ErrEmptyPage is returned for a page without lines.
	ErrEmptyPage = errors.New("script page has no lines")
)

// Script is an ordered list of pages, each page an ordered list of lines.
// One page fills the text box.
type Script [][]string

// PageCount returns the number of pages.
func (s Script) PageCount() int {
	return len(s)
}

// LineCount returns the total number of lines across all pages.
func (s Script) LineCount() int {
	total := 0
	for _, page := range s {
		total += len(page)
	}
	return total
}

// Validate checks that every page has at least one line.
func (s Script) Validate() error {
	if len(s) == 0 {
		return ErrEmptyScript
	}
	for i, page := range s {
		if len(page) == 0 {
			return fmt.Errorf("page %d: %w", i, ErrEmptyPage)
		}
	}
	return nil
}
