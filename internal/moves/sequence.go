package moves

import (
	"strings"

	"houses/internal/domain"
)

// Sequence is an ordered list of moves. It is never modified after Parse.
type Sequence struct {
	dirs []domain.Direction
}

// Parse turns raw input text into a Sequence. It stops at the first
// undecodable character and returns no partial result.
func Parse(s string) (Sequence, error) {
	s = strings.TrimSpace(s)
	dirs := make([]domain.Direction, 0, len(s))
	for _, r := range s {
		if r == '\r' {
			continue
		}
		d, err := Decode(r)
		if err != nil {
			return Sequence{}, err
		}
		dirs = append(dirs, d)
	}
	return Sequence{dirs: dirs}, nil
}

// Len returns the number of moves.
func (s Sequence) Len() int { return len(s.dirs) }

// At returns the i-th move.
func (s Sequence) At(i int) domain.Direction { return s.dirs[i] }

// Directions returns a copy of the moves.
func (s Sequence) Directions() []domain.Direction {
	out := make([]domain.Direction, len(s.dirs))
	copy(out, s.dirs)
	return out
}

// String returns the canonical glyph text of the sequence.
func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s.dirs))
	for _, d := range s.dirs {
		b.WriteRune(d.Glyph())
	}
	return b.String()
}
