package tracker_test

import (
	"testing"

	"houses/internal/domain"
	"houses/internal/moves"
	"houses/internal/tracker"
)

func pos(x, y int) domain.Position { return domain.Position{X: x, Y: y} }

func run(t *testing.T, in string) *tracker.Tracker {
	t.Helper()
	seq, err := moves.Parse(in)
	if err != nil {
		t.Fatalf("Parse(%q): %v", in, err)
	}
	tr := tracker.New()
	tr.MoveAll(seq)
	return tr
}

func TestNew(t *testing.T) {
	tr := tracker.New()
	if got := tr.Visited(); got != 1 {
		t.Fatalf("Visited() = %d, want 1", got)
	}
	p, s := tr.Positions()
	if p != domain.Origin || s != domain.Origin {
		t.Fatalf("Positions() = %v, %v, want origin", p, s)
	}
	if tr.Turn() != tracker.Primary {
		t.Fatalf("Turn() = %v, want primary", tr.Turn())
	}
	if !tr.HasVisited(domain.Origin) {
		t.Fatal("origin not visited")
	}
}

func TestMove_NorthSouth(t *testing.T) {
	tr := tracker.New()
	tr.Move(domain.North)
	tr.Move(domain.South)
	if got := tr.Visited(); got != 3 {
		t.Fatalf("Visited() = %d, want 3", got)
	}
	p, s := tr.Positions()
	if p != pos(0, 1) || s != pos(0, -1) {
		t.Fatalf("Positions() = %v, %v", p, s)
	}
}

func TestMove_AlternatesTurn(t *testing.T) {
	tr := tracker.New()
	want := []tracker.Agent{tracker.Secondary, tracker.Primary, tracker.Secondary}
	for i, w := range want {
		tr.Move(domain.East)
		if tr.Turn() != w {
			t.Fatalf("after move %d: Turn() = %v, want %v", i+1, tr.Turn(), w)
		}
	}
}

func TestMoveAll(t *testing.T) {
	cases := []struct {
		in        string
		visited   int
		primary   domain.Position
		secondary domain.Position
	}{
		{"", 1, pos(0, 0), pos(0, 0)},
		{"^v", 3, pos(0, 1), pos(0, -1)},
		{"^>v<", 3, pos(0, 0), pos(0, 0)},
		{"^v^v^v^v^v", 11, pos(0, 5), pos(0, -5)},
		{"<<>>", 2, pos(0, 0), pos(0, 0)},
	}
	for _, c := range cases {
		tr := run(t, c.in)
		if got := tr.Visited(); got != c.visited {
			t.Fatalf("%q: Visited() = %d, want %d", c.in, got, c.visited)
		}
		p, s := tr.Positions()
		if p != c.primary || s != c.secondary {
			t.Fatalf("%q: Positions() = %v, %v, want %v, %v", c.in, p, s, c.primary, c.secondary)
		}
	}
}

func TestPositionsAlwaysVisited(t *testing.T) {
	seq, err := moves.Parse(">>^^<v<<vv>^")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tr := tracker.New()
	for i := 0; i < seq.Len(); i++ {
		tr.Move(seq.At(i))
		p, s := tr.Positions()
		if !tr.HasVisited(p) || !tr.HasVisited(s) {
			t.Fatalf("after move %d: agent position not in visited set", i+1)
		}
	}
}

func TestTrackersIndependent(t *testing.T) {
	a := tracker.New()
	a.Move(domain.North)
	b := tracker.New()
	if b.Turn() != tracker.Primary || b.Visited() != 1 {
		t.Fatal("new tracker shares state with an earlier one")
	}
}
