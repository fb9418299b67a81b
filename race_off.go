//go:build !race

package tickqueue

// RaceEnabled is false when the race detector is not active.
const RaceEnabled = false
