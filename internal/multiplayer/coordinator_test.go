package multiplayer

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-circuit/internal/core"
)

// fakeGame ends after a fixed number of ticks with a preset outcome.
type fakeGame struct {
	ticksToRun int
	ticks      int
	winner     PlayerID
	score1     int
	score2     int
}

func (g *fakeGame) Reset(core.RuntimeConfig) {}

func (g *fakeGame) StepMulti(core.MultiInputFrame) core.StepResult {
	g.ticks++
	return core.StepResult{}
}

func (g *fakeGame) Snapshot() GameSnapshot { return fakeSnapshot{} }

func (g *fakeGame) IsGameOver() bool { return g.ticks >= g.ticksToRun }

func (g *fakeGame) Winner() PlayerID { return g.winner }
func (g *fakeGame) Score1() int      { return g.score1 }
func (g *fakeGame) Score2() int      { return g.score2 }

type fakeSnapshot struct{}

func (fakeSnapshot) IsGameSnapshot() {}

func fakeFactory(winner PlayerID, ticks int) GameFactory {
	return func(gameID string, cfg core.RuntimeConfig) (OnlineGame, error) {
		g := &fakeGame{ticksToRun: ticks, winner: winner, score1: 10, score2: 5}
		g.Reset(cfg)
		return g, nil
	}
}

func newTestCoordinator(t *testing.T, factory GameFactory) (*Coordinator, *SessionRegistry) {
	t.Helper()

	registry := NewSessionRegistry()
	cfg := CoordinatorConfig{
		LobbyTimeout:  time.Minute,
		TickRate:      120,
		CleanupPeriod: time.Minute,
	}
	c := NewCoordinator(cfg, factory, registry)
	c.Start()
	t.Cleanup(c.Stop)
	return c, registry
}

// nextEvent returns the next non-snapshot event, failing on timeout.
func nextEvent(t *testing.T, s *ChannelSession) SessionEvent {
	t.Helper()

	deadline := time.After(3 * time.Second)
	for {
		select {
		case evt := <-s.Events():
			if _, ok := evt.(SnapshotEvent); ok {
				continue
			}
			return evt
		case <-deadline:
			t.Fatal("timed out waiting for session event")
			return nil
		}
	}
}

func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestCoordinatorLobbyFlow(t *testing.T) {
	c, registry := newTestCoordinator(t, fakeFactory(Player1, 2))

	host := NewChannelSession("host", 64)
	joiner := NewChannelSession("joiner", 64)
	defer host.Close()
	defer joiner.Close()
	registry.Register(host)
	registry.Register(joiner)

	c.Send(CreateLobbyMsg{SessionID: "host", GameID: "circuit_duel"})

	created, ok := nextEvent(t, host).(LobbyCreatedEvent)
	if !ok {
		t.Fatal("Expected LobbyCreatedEvent first")
	}
	if len(created.Code) != 6 {
		t.Errorf("Join code %q should be 6 characters", created.Code)
	}
	if created.GameID != "circuit_duel" {
		t.Errorf("GameID = %q, want circuit_duel", created.GameID)
	}

	c.Send(JoinLobbyMsg{SessionID: "joiner", Code: created.Code})

	hostJoined, ok := nextEvent(t, host).(LobbyJoinedEvent)
	if !ok || hostJoined.Side != Player1 {
		t.Fatalf("Host expected LobbyJoinedEvent as Player1, got %+v", hostJoined)
	}
	joinerJoined, ok := nextEvent(t, joiner).(LobbyJoinedEvent)
	if !ok || joinerJoined.Side != Player2 {
		t.Fatalf("Joiner expected LobbyJoinedEvent as Player2, got %+v", joinerJoined)
	}

	hostStarted, ok := nextEvent(t, host).(MatchStartedEvent)
	if !ok {
		t.Fatal("Host expected MatchStartedEvent")
	}
	joinerStarted, ok := nextEvent(t, joiner).(MatchStartedEvent)
	if !ok {
		t.Fatal("Joiner expected MatchStartedEvent")
	}
	if hostStarted.MatchID != joinerStarted.MatchID {
		t.Error("Players received different match IDs")
	}
	if _, err := uuid.Parse(string(hostStarted.MatchID)); err != nil {
		t.Errorf("Match ID %q is not a uuid: %v", hostStarted.MatchID, err)
	}

	ended, ok := nextEvent(t, host).(MatchEndedEvent)
	if !ok {
		t.Fatal("Host expected MatchEndedEvent")
	}
	if ended.Reason != MatchEndReasonCompleted {
		t.Errorf("Reason = %v, want completed", ended.Reason)
	}
	if ended.Winner != Player1 {
		t.Errorf("Winner = %v, want Player1", ended.Winner)
	}
	if ended.Score1 != 10 || ended.Score2 != 5 {
		t.Errorf("Scores = %d/%d, want 10/5", ended.Score1, ended.Score2)
	}

	waitUntil(t, func() bool { return c.MatchCount() == 0 })
	if c.LobbyCount() != 0 {
		t.Errorf("LobbyCount = %d after match, want 0", c.LobbyCount())
	}
}

func TestCoordinatorJoinUnknownCode(t *testing.T) {
	c, registry := newTestCoordinator(t, fakeFactory(Player1, 2))

	s := NewChannelSession("lonely", 64)
	defer s.Close()
	registry.Register(s)

	c.Send(JoinLobbyMsg{SessionID: "lonely", Code: "ZZZZZZ"})

	errEvt, ok := nextEvent(t, s).(LobbyErrorEvent)
	if !ok {
		t.Fatal("Expected LobbyErrorEvent")
	}
	if errEvt.Message != "Lobby not found" {
		t.Errorf("Message = %q, want %q", errEvt.Message, "Lobby not found")
	}
}

func TestCoordinatorCannotJoinOwnLobby(t *testing.T) {
	c, registry := newTestCoordinator(t, fakeFactory(Player1, 2))

	host := NewChannelSession("host", 64)
	defer host.Close()
	registry.Register(host)

	c.Send(CreateLobbyMsg{SessionID: "host", GameID: "circuit_duel"})
	created := nextEvent(t, host).(LobbyCreatedEvent)

	c.Send(JoinLobbyMsg{SessionID: "host", Code: created.Code})

	errEvt, ok := nextEvent(t, host).(LobbyErrorEvent)
	if !ok {
		t.Fatal("Expected LobbyErrorEvent")
	}
	if errEvt.Message != "Cannot join your own lobby" {
		t.Errorf("Message = %q", errEvt.Message)
	}
}

func TestCoordinatorSecondLobbyRejected(t *testing.T) {
	c, registry := newTestCoordinator(t, fakeFactory(Player1, 2))

	host := NewChannelSession("host", 64)
	defer host.Close()
	registry.Register(host)

	c.Send(CreateLobbyMsg{SessionID: "host", GameID: "circuit_duel"})
	nextEvent(t, host) // LobbyCreatedEvent

	c.Send(CreateLobbyMsg{SessionID: "host", GameID: "circuit_duel"})

	errEvt, ok := nextEvent(t, host).(LobbyErrorEvent)
	if !ok {
		t.Fatal("Expected LobbyErrorEvent for second lobby")
	}
	if errEvt.Message != "Already in a lobby" {
		t.Errorf("Message = %q", errEvt.Message)
	}
}

func TestCoordinatorFactoryError(t *testing.T) {
	factory := func(gameID string, cfg core.RuntimeConfig) (OnlineGame, error) {
		return nil, errors.New("no such game")
	}
	c, registry := newTestCoordinator(t, factory)

	host := NewChannelSession("host", 64)
	joiner := NewChannelSession("joiner", 64)
	defer host.Close()
	defer joiner.Close()
	registry.Register(host)
	registry.Register(joiner)

	c.Send(CreateLobbyMsg{SessionID: "host", GameID: "bogus"})
	created := nextEvent(t, host).(LobbyCreatedEvent)
	c.Send(JoinLobbyMsg{SessionID: "joiner", Code: created.Code})

	nextEvent(t, host)   // LobbyJoinedEvent
	nextEvent(t, joiner) // LobbyJoinedEvent

	hostErr, ok := nextEvent(t, host).(LobbyErrorEvent)
	if !ok || hostErr.Message != "Failed to create game" {
		t.Errorf("Host expected failure event, got %+v", hostErr)
	}
	joinerErr, ok := nextEvent(t, joiner).(LobbyErrorEvent)
	if !ok || joinerErr.Message != "Failed to create game" {
		t.Errorf("Joiner expected failure event, got %+v", joinerErr)
	}
}

func TestCoordinatorCancelLobby(t *testing.T) {
	c, registry := newTestCoordinator(t, fakeFactory(Player1, 2))

	host := NewChannelSession("host", 64)
	defer host.Close()
	registry.Register(host)

	c.Send(CreateLobbyMsg{SessionID: "host", GameID: "circuit_duel"})
	created := nextEvent(t, host).(LobbyCreatedEvent)

	if c.LobbyCount() != 1 {
		t.Fatalf("LobbyCount = %d, want 1", c.LobbyCount())
	}

	c.Send(CancelLobbyMsg{SessionID: "host", Code: created.Code})
	waitUntil(t, func() bool { return c.LobbyCount() == 0 })

	// Host can open a fresh lobby afterwards
	c.Send(CreateLobbyMsg{SessionID: "host", GameID: "circuit_duel"})
	if _, ok := nextEvent(t, host).(LobbyCreatedEvent); !ok {
		t.Error("Expected to create a new lobby after cancelling")
	}
}

func TestCoordinatorLobbyExpiry(t *testing.T) {
	registry := NewSessionRegistry()
	cfg := CoordinatorConfig{
		LobbyTimeout:  20 * time.Millisecond,
		TickRate:      120,
		CleanupPeriod: 10 * time.Millisecond,
	}
	c := NewCoordinator(cfg, fakeFactory(Player1, 2), registry)
	c.Start()
	defer c.Stop()

	host := NewChannelSession("host", 64)
	defer host.Close()
	registry.Register(host)

	c.Send(CreateLobbyMsg{SessionID: "host", GameID: "circuit_duel"})
	nextEvent(t, host) // LobbyCreatedEvent

	errEvt, ok := nextEvent(t, host).(LobbyErrorEvent)
	if !ok {
		t.Fatal("Expected expiry LobbyErrorEvent")
	}
	if errEvt.Message != "Lobby expired" {
		t.Errorf("Message = %q, want %q", errEvt.Message, "Lobby expired")
	}
	waitUntil(t, func() bool { return c.LobbyCount() == 0 })
}

type captureSaver struct {
	ch chan MatchResultData
}

func (s *captureSaver) SaveMatchResult(data MatchResultData) error {
	s.ch <- data
	return nil
}

func TestCoordinatorPersistsResult(t *testing.T) {
	c, registry := newTestCoordinator(t, fakeFactory(Player2, 1))

	saver := &captureSaver{ch: make(chan MatchResultData, 1)}
	c.SetResultSaver(saver)

	host := NewChannelSession("host", 64)
	joiner := NewChannelSession("joiner", 64)
	defer host.Close()
	defer joiner.Close()
	registry.Register(host)
	registry.Register(joiner)

	c.Send(CreateLobbyMsg{SessionID: "host", GameID: "circuit_duel"})
	created := nextEvent(t, host).(LobbyCreatedEvent)
	c.Send(JoinLobbyMsg{SessionID: "joiner", Code: created.Code})

	var data MatchResultData
	select {
	case data = <-saver.ch:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for saved result")
	}

	if data.GameID != "circuit_duel" {
		t.Errorf("GameID = %q", data.GameID)
	}
	if data.EndReason != "completed" {
		t.Errorf("EndReason = %q, want completed", data.EndReason)
	}
	if data.WinnerSession != "joiner" {
		t.Errorf("WinnerSession = %q, want joiner", data.WinnerSession)
	}
	if data.Player1Session != "host" || data.Player2Session != "joiner" {
		t.Errorf("Sessions = %q/%q", data.Player1Session, data.Player2Session)
	}
	if _, err := uuid.Parse(data.MatchID); err != nil {
		t.Errorf("Persisted match ID %q is not a uuid: %v", data.MatchID, err)
	}
}

func TestCoordinatorDisconnectForfeits(t *testing.T) {
	// Game long enough that it cannot finish on its own
	c, registry := newTestCoordinator(t, fakeFactory(Player1, 1000000))

	host := NewChannelSession("host", 64)
	joiner := NewChannelSession("joiner", 64)
	defer host.Close()
	registry.Register(host)
	registry.Register(joiner)

	c.Send(CreateLobbyMsg{SessionID: "host", GameID: "circuit_duel"})
	created := nextEvent(t, host).(LobbyCreatedEvent)
	c.Send(JoinLobbyMsg{SessionID: "joiner", Code: created.Code})

	nextEvent(t, host) // LobbyJoinedEvent
	nextEvent(t, host) // MatchStartedEvent

	// Joiner drops; host must win by forfeit
	joiner.Close()

	ended, ok := nextEvent(t, host).(MatchEndedEvent)
	if !ok {
		t.Fatal("Host expected MatchEndedEvent after opponent disconnect")
	}
	if ended.Reason != MatchEndReasonDisconnect {
		t.Errorf("Reason = %v, want disconnect", ended.Reason)
	}
	if ended.Winner != Player1 {
		t.Errorf("Winner = %v, want Player1", ended.Winner)
	}
}

func TestGenerateJoinCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := generateJoinCode()
		if len(code) != 6 {
			t.Fatalf("Code %q length = %d, want 6", code, len(code))
		}
		for _, r := range code {
			if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
				t.Fatalf("Code %q contains invalid character %q", code, r)
			}
		}
		seen[code] = true
	}
	// 50 random codes colliding down to a handful would mean broken entropy
	if len(seen) < 10 {
		t.Errorf("Only %d distinct codes out of 50", len(seen))
	}
}

func TestMatchEndReasonStrings(t *testing.T) {
	cases := []struct {
		reason MatchEndReason
		token  string
	}{
		{MatchEndReasonCompleted, "completed"},
		{MatchEndReasonDisconnect, "disconnect"},
		{MatchEndReasonCancelled, "cancelled"},
		{MatchEndReasonHostLeft, "host_left"},
		{MatchEndReasonJoinerLeft, "joiner_left"},
	}
	for _, tc := range cases {
		if got := tc.reason.String(); got != tc.token {
			t.Errorf("String() = %q, want %q", got, tc.token)
		}
		if tc.reason.Message() == "" || tc.reason.Message() == "Unknown" {
			t.Errorf("Message() for %q should be descriptive", tc.token)
		}
	}
}
