package core

// RuntimeConfig carries the platform parameters a game receives on Reset:
// the terminal dimensions, the simulation rate and the seed every board in
// the run is generated from. Same seed, same puzzles.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // Board generator seed; 0 means the caller picks one
}

// DefaultConfig returns the runtime parameters assumed when nothing
// overrides them: an 80x24 terminal stepping at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the platform-visible status of a run, reported through
// Game.State and carried in every StepResult.
type GameState struct {
	Score    int  // Points banked so far
	GameOver bool // The run has ended, by win or lockdown
	Paused   bool // The player froze the clock
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
