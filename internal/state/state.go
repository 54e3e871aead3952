package state

import (
	"slices"
	"strconv"
	"time"

	"github.com/five82/lander/internal/tower"
)

const (
	// LoadingMessage is shown while the airport directory is outstanding.
	LoadingMessage = "Please wait, server is loading..."
	// SlowLoadingMessage replaces LoadingMessage once SlowLoadAfter elapses.
	SlowLoadingMessage = "Server loading is taking longer than expected, please be patient."
	// LandingErrorMessage is the only user-facing failure text.
	LandingErrorMessage = "Error during landing attempt"

	// SlowLoadAfter is the one-shot delay before the loading text changes.
	SlowLoadAfter = 30 * time.Second
	// MessageLifetime is how long landing outcomes stay on screen.
	MessageLifetime = 3 * time.Second
)

// Tone classifies a message for colouring.
type Tone int

const (
	ToneNone Tone = iota
	ToneFree
	ToneBusy
	ToneError
)

// Phase is the user-facing position in the select/check/land cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseChecking
	PhaseFree
	PhaseBusy
	PhaseLanding
)

func (p Phase) String() string {
	switch p {
	case PhaseChecking:
		return "checking"
	case PhaseFree:
		return "free"
	case PhaseBusy:
		return "busy"
	case PhaseLanding:
		return "landing"
	default:
		return "idle"
	}
}

// Status is the last known occupancy of the selected airport.
// Known is false until the first poll for the current selection resolves.
type Status struct {
	Known     bool
	Busy      bool
	Remaining *float64
}

// Message is a display line. A zero Expires means it never expires on its own.
type Message struct {
	Text    string
	Tone    Tone
	Expires time.Time
}

// Live reports whether the message should still be shown at now.
func (m Message) Live(now time.Time) bool {
	if m.Text == "" {
		return false
	}
	return m.Expires.IsZero() || now.Before(m.Expires)
}

// State is everything the UI renders. It is a value; Reduce returns a new one.
type State struct {
	Airports       []tower.Airport
	Loading        bool
	LoadingMessage string
	// LoadGen identifies the current directory load so late results and
	// stale slow-load timers from an earlier load are ignored.
	LoadGen uint64

	Selected string
	Status   Status

	// StatusLine is written by the poller; Transient by landing outcomes.
	StatusLine Message
	Transient  Message

	Landing       bool
	LandingTarget string

	// PollSeq is the sequence number handed to the most recent status
	// request; AppliedSeq is the newest one whose response was accepted.
	PollSeq    uint64
	AppliedSeq uint64

	LastPoll time.Time
}

// New returns the initial state before the directory load is issued.
func New() State {
	return State{}
}

// Phase derives the current position in the landing cycle.
func (s State) Phase() Phase {
	switch {
	case s.Landing:
		return PhaseLanding
	case s.Selected == "":
		return PhaseIdle
	case !s.Status.Known:
		return PhaseChecking
	case s.Status.Busy:
		return PhaseBusy
	default:
		return PhaseFree
	}
}

// CanLand reports whether the land action is available.
func (s State) CanLand() bool {
	return s.Phase() == PhaseFree
}

// Display returns the message to show at now. A live transient message takes
// precedence over the poller's status line.
func (s State) Display(now time.Time) Message {
	if s.Transient.Live(now) {
		return s.Transient
	}
	if s.StatusLine.Live(now) {
		return s.StatusLine
	}
	return Message{}
}

// AirportName resolves id against the directory, falling back to id itself.
func (s State) AirportName(id string) string {
	for _, a := range s.Airports {
		if a.ID == id {
			return a.DisplayName()
		}
	}
	return id
}

// IndexOf returns the directory position of id, or -1.
func (s State) IndexOf(id string) int {
	return slices.IndexFunc(s.Airports, func(a tower.Airport) bool { return a.ID == id })
}

// StatusText builds the poller's message for an airport.
func StatusText(name string, resp tower.StatusResponse) string {
	if !resp.IsBusy {
		return name + " is free, you can land"
	}
	if resp.TimeRemaining == nil {
		return name + " is busy. Please wait."
	}
	return name + " is busy. Please wait for " + formatSeconds(*resp.TimeRemaining) + " seconds."
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
