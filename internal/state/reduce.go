package state

import (
	"slices"
	"time"

	"github.com/five82/lander/internal/tower"
)

// Event is anything that can move the state forward.
type Event interface {
	event()
}

// DirectoryRequested starts a (re)load of the airport directory.
type DirectoryRequested struct{}

// DirectoryLoaded carries a successful /airports response.
type DirectoryLoaded struct {
	Gen      uint64
	Airports []tower.Airport
}

// DirectoryFailed reports that the directory load failed.
type DirectoryFailed struct {
	Gen uint64
	Err error
}

// LoadingSlow fires once, SlowLoadAfter after a directory load starts.
type LoadingSlow struct {
	Gen uint64
}

// AirportSelected is the user picking an airport. An empty ID clears the
// selection.
type AirportSelected struct {
	ID string
}

// StatusCheckIssued allocates a sequence number for a status request.
// It is a no-op without a selection.
type StatusCheckIssued struct{}

// StatusReceived carries a successful status response.
type StatusReceived struct {
	AirportID string
	Seq       uint64
	Resp      tower.StatusResponse
	At        time.Time
}

// StatusFailed reports a failed status request.
type StatusFailed struct {
	AirportID string
	Seq       uint64
	Err       error
}

// LandRequested is the user pressing land.
type LandRequested struct{}

// LandSucceeded carries the response to a landing attempt.
type LandSucceeded struct {
	AirportID string
	Resp      tower.LandResponse
	At        time.Time
}

// LandFailed reports a failed landing attempt.
type LandFailed struct {
	AirportID string
	Err       error
	At        time.Time
}

// Sweep clears messages that have expired by At.
type Sweep struct {
	At time.Time
}

func (DirectoryRequested) event() {}
func (DirectoryLoaded) event()    {}
func (DirectoryFailed) event()    {}
func (LoadingSlow) event()        {}
func (AirportSelected) event()    {}
func (StatusCheckIssued) event()  {}
func (StatusReceived) event()     {}
func (StatusFailed) event()       {}
func (LandRequested) event()      {}
func (LandSucceeded) event()      {}
func (LandFailed) event()         {}
func (Sweep) event()              {}

// Reduce applies ev to s and returns the resulting state. It never mutates
// slices reachable from s.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case DirectoryRequested:
		if s.Loading {
			return s
		}
		s.LoadGen++
		s.Loading = true
		s.LoadingMessage = LoadingMessage

	case DirectoryLoaded:
		if ev.Gen != s.LoadGen || !s.Loading {
			return s
		}
		s.Airports = slices.Clone(ev.Airports)
		s.Loading = false

	case DirectoryFailed:
		if ev.Gen != s.LoadGen || !s.Loading {
			return s
		}
		s.Loading = false

	case LoadingSlow:
		if ev.Gen == s.LoadGen && s.Loading {
			s.LoadingMessage = SlowLoadingMessage
		}

	case AirportSelected:
		if ev.ID == s.Selected {
			return s
		}
		s.Selected = ev.ID
		s.Status = Status{}
		s.StatusLine = Message{}

	case StatusCheckIssued:
		if s.Selected == "" {
			return s
		}
		s.PollSeq++

	case StatusReceived:
		if ev.AirportID != s.Selected || ev.Seq <= s.AppliedSeq {
			return s
		}
		s.AppliedSeq = ev.Seq
		s.LastPoll = ev.At
		s.Status = Status{Known: true, Busy: ev.Resp.IsBusy, Remaining: ev.Resp.TimeRemaining}
		tone := ToneFree
		if ev.Resp.IsBusy {
			tone = ToneBusy
		}
		s.StatusLine = Message{Text: StatusText(s.AirportName(ev.AirportID), ev.Resp), Tone: tone}

	case StatusFailed:
		if ev.AirportID != s.Selected || ev.Seq <= s.AppliedSeq {
			return s
		}
		s.AppliedSeq = ev.Seq
		s.StatusLine = Message{}

	case LandRequested:
		if !s.CanLand() {
			return s
		}
		s.Landing = true
		s.LandingTarget = s.Selected

	case LandSucceeded:
		if !s.Landing || ev.AirportID != s.LandingTarget {
			return s
		}
		s.Landing = false
		s.LandingTarget = ""
		tone := ToneFree
		if ev.Resp.IsBusy {
			tone = ToneBusy
		}
		s.Transient = Message{Text: ev.Resp.Message, Tone: tone, Expires: ev.At.Add(MessageLifetime)}
		s.Selected = ""
		s.Status = Status{Known: true, Busy: ev.Resp.IsBusy}
		s.StatusLine = Message{}

	case LandFailed:
		if !s.Landing || ev.AirportID != s.LandingTarget {
			return s
		}
		s.Landing = false
		s.LandingTarget = ""
		s.Transient = Message{Text: LandingErrorMessage, Tone: ToneError, Expires: ev.At.Add(MessageLifetime)}

	case Sweep:
		if s.Transient.Text != "" && !s.Transient.Live(ev.At) {
			s.Transient = Message{}
		}
	}
	return s
}
