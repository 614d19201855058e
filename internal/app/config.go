package app

// Config holds runtime options for a run.
type Config struct {
	Input  string // move list, e.g. input.txt
	Report string // optional; JSON run report destination
}
