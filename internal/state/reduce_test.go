package state

import (
	"errors"
	"testing"
	"time"

	"github.com/five82/lander/internal/tower"
)

var t0 = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func secs(v float64) *float64 { return &v }

func loaded(airports ...tower.Airport) State {
	s := Reduce(New(), DirectoryRequested{})
	return Reduce(s, DirectoryLoaded{Gen: s.LoadGen, Airports: airports})
}

// check issues a status request for the current selection and returns the
// state plus the sequence number the request would carry.
func check(s State) (State, uint64) {
	s = Reduce(s, StatusCheckIssued{})
	return s, s.PollSeq
}

func alpha() tower.Airport { return tower.Airport{ID: "A1", Name: "Alpha"} }

func TestDirectory_LoadReplacesSetInOrder(t *testing.T) {
	s := Reduce(New(), DirectoryRequested{})
	if !s.Loading || s.LoadingMessage != LoadingMessage {
		t.Fatalf("after request: Loading=%v msg=%q, want loading with default text", s.Loading, s.LoadingMessage)
	}

	in := []tower.Airport{{ID: "C3", Name: "Charlie"}, {ID: "A1", Name: "Alpha"}, {ID: "B2", Name: "Bravo"}}
	s = Reduce(s, DirectoryLoaded{Gen: s.LoadGen, Airports: in})
	if s.Loading {
		t.Fatalf("Loading = true after load, want false")
	}
	if len(s.Airports) != 3 || s.Airports[0].ID != "C3" || s.Airports[1].ID != "A1" || s.Airports[2].ID != "B2" {
		t.Fatalf("Airports = %#v, want server order", s.Airports)
	}

	in[0].Name = "mutated"
	if s.Airports[0].Name != "Charlie" {
		t.Fatalf("directory shares backing array with event")
	}
}

func TestDirectory_FailureClearsLoadingAndLeavesEmpty(t *testing.T) {
	s := Reduce(New(), DirectoryRequested{})
	s = Reduce(s, DirectoryFailed{Gen: s.LoadGen, Err: errors.New("boom")})
	if s.Loading {
		t.Fatalf("Loading = true after failure, want false")
	}
	if len(s.Airports) != 0 {
		t.Fatalf("Airports = %#v, want empty", s.Airports)
	}
	if msg := s.Display(t0); msg.Text != "" {
		t.Fatalf("Display = %q, want no user-visible error", msg.Text)
	}
}

func TestDirectory_SlowTimerOnlyWhileLoading(t *testing.T) {
	s := Reduce(New(), DirectoryRequested{})
	gen := s.LoadGen
	s = Reduce(s, LoadingSlow{Gen: gen})
	if s.LoadingMessage != SlowLoadingMessage {
		t.Fatalf("LoadingMessage = %q, want slow text", s.LoadingMessage)
	}

	s = Reduce(New(), DirectoryRequested{})
	s = Reduce(s, DirectoryLoaded{Gen: s.LoadGen})
	s = Reduce(s, LoadingSlow{Gen: s.LoadGen})
	if s.LoadingMessage != LoadingMessage || s.Loading {
		t.Fatalf("slow timer after load changed state: %#v", s)
	}
}

func TestDirectory_StaleGenerationIgnored(t *testing.T) {
	s := Reduce(New(), DirectoryRequested{})
	first := s.LoadGen
	s = Reduce(s, DirectoryFailed{Gen: first})
	s = Reduce(s, DirectoryRequested{})
	if s.LoadGen == first {
		t.Fatalf("reload did not advance LoadGen")
	}

	s = Reduce(s, LoadingSlow{Gen: first})
	if s.LoadingMessage != LoadingMessage {
		t.Fatalf("stale slow timer changed text to %q", s.LoadingMessage)
	}
	s = Reduce(s, DirectoryLoaded{Gen: first, Airports: []tower.Airport{alpha()}})
	if !s.Loading || len(s.Airports) != 0 {
		t.Fatalf("stale load applied: %#v", s)
	}
}

func TestDirectory_RequestWhileLoadingIsNoop(t *testing.T) {
	s := Reduce(New(), DirectoryRequested{})
	again := Reduce(s, DirectoryRequested{})
	if again.LoadGen != s.LoadGen {
		t.Fatalf("LoadGen advanced while loading: %d -> %d", s.LoadGen, again.LoadGen)
	}
}

func TestScenario_BusyThenFree(t *testing.T) {
	s := loaded(alpha())
	s = Reduce(s, AirportSelected{ID: "A1"})
	if s.Phase() != PhaseChecking || s.CanLand() {
		t.Fatalf("after select: phase=%v canLand=%v, want checking and disabled", s.Phase(), s.CanLand())
	}

	s, seq := check(s)
	s = Reduce(s, StatusReceived{AirportID: "A1", Seq: seq, Resp: tower.StatusResponse{IsBusy: true, TimeRemaining: secs(12)}, At: t0})
	if got := s.Display(t0); got.Text != "Alpha is busy. Please wait for 12 seconds." || got.Tone != ToneBusy {
		t.Fatalf("Display = %#v, want busy message", got)
	}
	if s.CanLand() {
		t.Fatalf("CanLand = true while busy")
	}

	s, seq = check(s)
	s = Reduce(s, StatusReceived{AirportID: "A1", Seq: seq, Resp: tower.StatusResponse{IsBusy: false}, At: t0.Add(time.Second)})
	if got := s.Display(t0); got.Text != "Alpha is free, you can land" || got.Tone != ToneFree {
		t.Fatalf("Display = %#v, want free message", got)
	}
	if !s.CanLand() || s.Phase() != PhaseFree {
		t.Fatalf("phase=%v canLand=%v, want free and enabled", s.Phase(), s.CanLand())
	}
}

func TestStatus_NameFallsBackToID(t *testing.T) {
	s := Reduce(New(), AirportSelected{ID: "ZZ9"})
	s, seq := check(s)
	s = Reduce(s, StatusReceived{AirportID: "ZZ9", Seq: seq, Resp: tower.StatusResponse{}, At: t0})
	if got := s.Display(t0).Text; got != "ZZ9 is free, you can land" {
		t.Fatalf("Display = %q, want id fallback", got)
	}
}

func TestStatus_FractionalAndMissingRemaining(t *testing.T) {
	cases := []struct {
		name string
		resp tower.StatusResponse
		want string
	}{
		{"integer", tower.StatusResponse{IsBusy: true, TimeRemaining: secs(5)}, "Alpha is busy. Please wait for 5 seconds."},
		{"fraction", tower.StatusResponse{IsBusy: true, TimeRemaining: secs(2.5)}, "Alpha is busy. Please wait for 2.5 seconds."},
		{"missing", tower.StatusResponse{IsBusy: true}, "Alpha is busy. Please wait."},
		{"free ignores remaining", tower.StatusResponse{TimeRemaining: secs(9)}, "Alpha is free, you can land"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusText("Alpha", tc.resp); got != tc.want {
				t.Fatalf("StatusText = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestStatus_StaleResponsesDiscarded(t *testing.T) {
	s := loaded(alpha(), tower.Airport{ID: "B2", Name: "Bravo"})
	s = Reduce(s, AirportSelected{ID: "A1"})
	s, seqA := check(s)

	s = Reduce(s, AirportSelected{ID: "B2"})
	s, seqB1 := check(s)
	s, seqB2 := check(s)

	// Response for the previous selection.
	s = Reduce(s, StatusReceived{AirportID: "A1", Seq: seqA, Resp: tower.StatusResponse{IsBusy: true}, At: t0})
	if s.Status.Known {
		t.Fatalf("response for old selection applied: %#v", s.Status)
	}

	// Newer response lands first, older one is dropped.
	s = Reduce(s, StatusReceived{AirportID: "B2", Seq: seqB2, Resp: tower.StatusResponse{IsBusy: false}, At: t0})
	s = Reduce(s, StatusReceived{AirportID: "B2", Seq: seqB1, Resp: tower.StatusResponse{IsBusy: true, TimeRemaining: secs(4)}, At: t0})
	if s.Status.Busy || s.Display(t0).Text != "Bravo is free, you can land" {
		t.Fatalf("older response overwrote newer: status=%#v msg=%q", s.Status, s.Display(t0).Text)
	}
}

func TestStatus_FailureClearsMessageSilently(t *testing.T) {
	s := loaded(alpha())
	s = Reduce(s, AirportSelected{ID: "A1"})
	s, seq := check(s)
	s = Reduce(s, StatusReceived{AirportID: "A1", Seq: seq, Resp: tower.StatusResponse{IsBusy: true, TimeRemaining: secs(3)}, At: t0})

	s, seq = check(s)
	s = Reduce(s, StatusFailed{AirportID: "A1", Seq: seq, Err: errors.New("timeout")})
	if got := s.Display(t0); got.Text != "" {
		t.Fatalf("Display = %#v, want cleared", got)
	}
	if !s.Status.Busy {
		t.Fatalf("failure changed busy flag")
	}
}

func TestStatus_CheckWithoutSelectionIsNoop(t *testing.T) {
	s := loaded(alpha())
	next := Reduce(s, StatusCheckIssued{})
	if next.PollSeq != s.PollSeq {
		t.Fatalf("PollSeq advanced without selection")
	}
}

func TestSelect_ResetsStatusAndSameIDKeepsIt(t *testing.T) {
	s := loaded(alpha(), tower.Airport{ID: "B2", Name: "Bravo"})
	s = Reduce(s, AirportSelected{ID: "A1"})
	s, seq := check(s)
	s = Reduce(s, StatusReceived{AirportID: "A1", Seq: seq, Resp: tower.StatusResponse{}, At: t0})

	same := Reduce(s, AirportSelected{ID: "A1"})
	if !same.Status.Known || same.StatusLine.Text == "" {
		t.Fatalf("reselecting same airport dropped status: %#v", same)
	}

	other := Reduce(s, AirportSelected{ID: "B2"})
	if other.Status.Known || other.StatusLine.Text != "" || other.Phase() != PhaseChecking {
		t.Fatalf("selecting another airport kept stale status: %#v", other)
	}

	cleared := Reduce(s, AirportSelected{})
	if cleared.Phase() != PhaseIdle || cleared.CanLand() {
		t.Fatalf("clearing selection: phase=%v canLand=%v", cleared.Phase(), cleared.CanLand())
	}
}

func freeAtAlpha(t *testing.T) State {
	t.Helper()
	s := loaded(alpha())
	s = Reduce(s, AirportSelected{ID: "A1"})
	s, seq := check(s)
	s = Reduce(s, StatusReceived{AirportID: "A1", Seq: seq, Resp: tower.StatusResponse{}, At: t0})
	if !s.CanLand() {
		t.Fatalf("setup: CanLand = false")
	}
	return s
}

func TestLand_SuccessClearsSelectionAndAdoptsResponse(t *testing.T) {
	s := freeAtAlpha(t)
	s = Reduce(s, LandRequested{})
	if s.Phase() != PhaseLanding || s.CanLand() {
		t.Fatalf("during landing: phase=%v canLand=%v", s.Phase(), s.CanLand())
	}

	s = Reduce(s, LandSucceeded{AirportID: "A1", Resp: tower.LandResponse{IsBusy: true, Message: "Landed at Alpha"}, At: t0})
	if s.Selected != "" || s.Phase() != PhaseIdle {
		t.Fatalf("selection = %q phase=%v, want cleared", s.Selected, s.Phase())
	}
	if !s.Status.Busy {
		t.Fatalf("busy flag not adopted")
	}
	got := s.Display(t0)
	if got.Text != "Landed at Alpha" || got.Tone != ToneBusy {
		t.Fatalf("Display = %#v, want landing message", got)
	}
	if s.Display(t0.Add(MessageLifetime)).Text != "" {
		t.Fatalf("message still visible after %v", MessageLifetime)
	}
}

func TestLand_FailureKeepsSelectionAndExpires(t *testing.T) {
	s := freeAtAlpha(t)
	s = Reduce(s, LandRequested{})
	s = Reduce(s, LandFailed{AirportID: "A1", Err: errors.New("500"), At: t0})

	if s.Selected != "A1" {
		t.Fatalf("Selected = %q, want A1", s.Selected)
	}
	if s.Status.Busy || !s.CanLand() {
		t.Fatalf("failure changed busy flag or availability: %#v", s.Status)
	}
	if got := s.Display(t0.Add(time.Second)); got.Text != LandingErrorMessage || got.Tone != ToneError {
		t.Fatalf("Display = %#v, want landing error", got)
	}

	// Poller keeps writing underneath; the error wins until it expires.
	s, seq := check(s)
	s = Reduce(s, StatusReceived{AirportID: "A1", Seq: seq, Resp: tower.StatusResponse{}, At: t0.Add(time.Second)})
	if got := s.Display(t0.Add(time.Second)).Text; got != LandingErrorMessage {
		t.Fatalf("Display = %q, want error to hold", got)
	}

	s = Reduce(s, Sweep{At: t0.Add(MessageLifetime)})
	if s.Transient.Text != "" {
		t.Fatalf("Sweep did not clear expired message")
	}
	if got := s.Display(t0.Add(MessageLifetime)).Text; got != "Alpha is free, you can land" {
		t.Fatalf("Display after expiry = %q, want status line", got)
	}
}

func TestLand_UnavailableWhenBusyOrIdle(t *testing.T) {
	idle := loaded(alpha())
	if next := Reduce(idle, LandRequested{}); next.Landing {
		t.Fatalf("landing started without selection")
	}

	s := Reduce(idle, AirportSelected{ID: "A1"})
	s, seq := check(s)
	s = Reduce(s, StatusReceived{AirportID: "A1", Seq: seq, Resp: tower.StatusResponse{IsBusy: true}, At: t0})
	if next := Reduce(s, LandRequested{}); next.Landing {
		t.Fatalf("landing started while busy")
	}
}

func TestLand_SuccessClearsSelectionChangedInFlight(t *testing.T) {
	s := freeAtAlpha(t)
	s.Airports = append(s.Airports, tower.Airport{ID: "B2", Name: "Bravo"})
	s = Reduce(s, LandRequested{})
	s = Reduce(s, AirportSelected{ID: "B2"})
	s = Reduce(s, LandSucceeded{AirportID: "A1", Resp: tower.LandResponse{IsBusy: true, Message: "Landed at Alpha"}, At: t0})

	if s.Selected != "" || s.Landing {
		t.Fatalf("Selected=%q Landing=%v, want cleared and done", s.Selected, s.Landing)
	}
	if !s.Status.Known || !s.Status.Busy {
		t.Fatalf("Status=%+v, want busy flag from landing response", s.Status)
	}
	if s.Display(t0).Text != "Landed at Alpha" {
		t.Fatalf("landing outcome not shown")
	}
}

func TestSweep_DoesNotClearNewerMessage(t *testing.T) {
	s := freeAtAlpha(t)
	s = Reduce(s, LandRequested{})
	s = Reduce(s, LandFailed{AirportID: "A1", At: t0})
	s = Reduce(s, LandRequested{})
	s = Reduce(s, LandFailed{AirportID: "A1", At: t0.Add(2 * time.Second)})

	// The first message's sweep fires; the second is still live.
	s = Reduce(s, Sweep{At: t0.Add(MessageLifetime)})
	if s.Transient.Text != LandingErrorMessage {
		t.Fatalf("sweep cleared a message that had not expired")
	}
	s = Reduce(s, Sweep{At: t0.Add(2*time.Second + MessageLifetime)})
	if s.Transient.Text != "" {
		t.Fatalf("second sweep did not clear message")
	}
}

func TestPhaseString(t *testing.T) {
	want := map[Phase]string{
		PhaseIdle:     "idle",
		PhaseChecking: "checking",
		PhaseFree:     "free",
		PhaseBusy:     "busy",
		PhaseLanding:  "landing",
	}
	for p, w := range want {
		if p.String() != w {
			t.Fatalf("Phase(%d).String() = %q, want %q", p, p.String(), w)
		}
	}
}

func TestIndexOf(t *testing.T) {
	s := loaded(alpha(), tower.Airport{ID: "B2"})
	if s.IndexOf("B2") != 1 || s.IndexOf("nope") != -1 {
		t.Fatalf("IndexOf gave wrong positions")
	}
	if s.AirportName("B2") != "B2" {
		t.Fatalf("AirportName for blank name = %q, want id", s.AirportName("B2"))
	}
}
