// Package moves decodes direction glyphs and parses a command stream into an
// ordered, read-only move sequence.
//
// Wire format
//
//	^  North
//	v  South
//	>  East
//	<  West
//
// Surrounding whitespace is ignored and carriage returns are dropped wherever
// they occur, so files with either line-ending convention parse the same.
// Any other character rejects the whole input with a
// *domain.UnrecognizedCharError naming the first offending character.
package moves
