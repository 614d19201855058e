// Package tracker follows two agents that take turns consuming moves and
// records every house either of them reaches.
//
// The primary agent moves first; turns then alternate strictly. Both agents
// start on the origin, which counts as visited from the outset. A Tracker is
// owned by a single caller and is not safe for concurrent use.
package tracker
