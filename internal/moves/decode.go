package moves

import "houses/internal/domain"

// Decode maps a single glyph to its direction.
func Decode(r rune) (domain.Direction, error) {
	switch r {
	case '^':
		return domain.North, nil
	case 'v':
		return domain.South, nil
	case '>':
		return domain.East, nil
	case '<':
		return domain.West, nil
	}
	return 0, &domain.UnrecognizedCharError{Char: r}
}
