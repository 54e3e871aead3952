// Package state holds Lander's client-side state and the reducer that advances it.
//
// # Overview
//
// The tower backend owns all occupancy data. What the client owns is small:
// the airport directory, which airport the user picked, the last status seen
// for it, whether a landing request is outstanding, and what message to show.
// All of that lives in one State value.
//
// # Reducer
//
// Every external happening (a timer firing, an HTTP result arriving, a key
// press) is an Event. Reduce is a pure function:
//
//	next := state.Reduce(current, state.StatusReceived{AirportID: "A1", Seq: 7, Resp: resp, At: now})
//
// Reduce never performs I/O and never mutates its input. The UI runs it on
// Bubble Tea's update loop, which is the only place state changes, so no
// locking is needed.
//
// # Phases
//
//	Idle ──select──> Checking ──poll──> Free ──land──> Landing ──ok──> Idle
//	                     │                 ^               │
//	                     └──poll──> Busy ──┘ (later poll)  └──fail──> Free
//
// Selecting a different airport from any phase returns to Checking for the
// new id. The land action is available only in Free.
//
// # Ordering of Responses
//
// Requests can overlap: a slow status response may arrive after a newer one,
// or after the user has moved to another airport. Each status request carries
// the airport id it targets and a monotonically increasing sequence number
// (allocated by StatusCheckIssued). A response is dropped when its airport no
// longer matches the selection or when a newer response was already applied.
// Directory loads are tagged the same way with LoadGen.
//
// # Messages
//
// Two lines compete for the single message slot:
//
//   - StatusLine: written by the poller, no expiry, cleared on poll failure
//     and on selection change
//   - Transient: written by landing outcomes, expires MessageLifetime after
//     it was set
//
// Display prefers a live Transient. Expiry is checked on read, so an expired
// message is never shown even if the Sweep event that clears it runs late.
package state
