package tracker

import (
	"houses/internal/domain"
	"houses/internal/moves"
)

// Agent selects which of the two agents holds the turn.
type Agent int

const (
	Primary Agent = iota
	Secondary
	numAgents
)

func (a Agent) String() string {
	switch a {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	}
	return "unknown"
}

// Tracker holds the agent positions, whose turn it is and the visited set.
type Tracker struct {
	agents  [numAgents]domain.Position
	turn    Agent
	visited map[domain.Position]struct{}
}

// New returns a tracker with both agents on the origin and the primary agent
// to move.
func New() *Tracker {
	t := &Tracker{
		visited: make(map[domain.Position]struct{}),
	}
	for i := range t.agents {
		t.agents[i] = domain.Origin
	}
	t.visited[domain.Origin] = struct{}{}
	return t
}

// Move applies d to the agent holding the turn, marks the house it lands on
// and passes the turn on.
func (t *Tracker) Move(d domain.Direction) {
	p := t.agents[t.turn].Add(d)
	t.agents[t.turn] = p
	t.visited[p] = struct{}{}
	t.turn = (t.turn + 1) % numAgents
}

// MoveAll applies every move in seq in order.
func (t *Tracker) MoveAll(seq moves.Sequence) {
	for i := 0; i < seq.Len(); i++ {
		t.Move(seq.At(i))
	}
}

// Visited returns the number of distinct houses visited so far.
func (t *Tracker) Visited() int { return len(t.visited) }

// HasVisited reports whether p has been visited by either agent.
func (t *Tracker) HasVisited(p domain.Position) bool {
	_, ok := t.visited[p]
	return ok
}

// Positions returns the current positions of the primary and secondary agent.
func (t *Tracker) Positions() (primary, secondary domain.Position) {
	return t.agents[Primary], t.agents[Secondary]
}

// Turn returns the agent that will take the next move.
func (t *Tracker) Turn() Agent { return t.turn }
