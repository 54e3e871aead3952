// Package ui implements the lander terminal interface on Bubble Tea.
//
// The Model owns a state.State and is the only writer to it. Every input
// arrives as a tea.Msg on the Bubble Tea event loop: key presses, the
// directory response, status poll ticks and results, landing results and
// message expiry sweeps. Each one is turned into a state event and applied
// with state.Reduce, so no locking is needed.
//
// Network calls run as tea.Cmd functions against a tower.API with a
// RequestTimeout deadline. Status requests carry the sequence number issued
// by the reducer; responses that arrive after a newer one was applied are
// dropped.
//
// Views:
//
//   - Airport list: directory, selection, land button and message line
//   - Operator log: tail of the JSON log file written by internal/logging
//   - Help overlay: full key map
//
// Key bindings are defined in keys.go and themes in theme.go.
package ui
