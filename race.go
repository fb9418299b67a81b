//go:build race

package tickqueue

// RaceEnabled is true when the race detector is active. Tests that rely
// on cross-variable acquire/release ordering the race detector cannot
// model use it to skip themselves rather than report a false positive.
const RaceEnabled = true
