package domain

import "fmt"

// UnrecognizedCharError reports an input character that is not one of the
// four direction glyphs.
type UnrecognizedCharError struct {
	Char rune
}

func (e *UnrecognizedCharError) Error() string {
	return fmt.Sprintf("unrecognized character %q", e.Char)
}
