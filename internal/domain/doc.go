// Package domain defines the plain value types shared across the app:
// grid positions, cardinal directions and the parse error kind.
package domain
