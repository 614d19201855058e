package app

import (
	"fmt"

	"houses/internal/crypto"
	"houses/internal/moves"
	"houses/internal/store"
	"houses/internal/tracker"
)

type App struct {
	cfg Config
}

func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Load reads and parses the configured input file.
func (a *App) Load() (moves.Sequence, error) {
	text, err := store.ReadInput(a.cfg.Input)
	if err != nil {
		return moves.Sequence{}, err
	}
	seq, err := moves.Parse(text)
	if err != nil {
		return moves.Sequence{}, fmt.Errorf("parse %s: %w", a.cfg.Input, err)
	}
	return seq, nil
}

// Fingerprint returns the digest of the parsed input's canonical moves.
func (a *App) Fingerprint() (string, error) {
	seq, err := a.Load()
	if err != nil {
		return "", err
	}
	return crypto.Fingerprint([]byte(seq.String())), nil
}

// Deliver runs both agents over the input and summarises the result. When a
// report path is configured the summary is also written there.
func (a *App) Deliver() (store.Report, error) {
	seq, err := a.Load()
	if err != nil {
		return store.Report{}, err
	}

	t := tracker.New()
	t.MoveAll(seq)
	primary, secondary := t.Positions()

	r := store.Report{
		Input:       a.cfg.Input,
		Moves:       seq.Len(),
		Houses:      t.Visited(),
		Primary:     primary,
		Secondary:   secondary,
		Fingerprint: crypto.Fingerprint([]byte(seq.String())),
	}
	if a.cfg.Report != "" {
		if err := store.SaveReport(a.cfg.Report, r); err != nil {
			return store.Report{}, err
		}
	}
	return r, nil
}
