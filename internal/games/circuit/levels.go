package circuit

// Level describes one campaign stage: board dimensions, hazard density and
// the alarm budget the player gets before lockdown.
type Level struct {
	Name           string
	GridSize       int
	HazardCount    int
	TimeLimitSecs  int
	AlertThreshold int
}

// Levels is the campaign ladder. Stage two carries the classic parameters
// (5x5 board, three traps, 120 seconds, one-strike alarm); later stages grow
// the board and trade time for a slightly looser alarm budget.
var Levels = []Level{
	{Name: "Perimeter Relay", GridSize: 4, HazardCount: 2, TimeLimitSecs: 150, AlertThreshold: 1},
	{Name: "Service Conduit", GridSize: 5, HazardCount: 3, TimeLimitSecs: 120, AlertThreshold: 1},
	{Name: "Maintenance Shaft", GridSize: 5, HazardCount: 4, TimeLimitSecs: 120, AlertThreshold: 1},
	{Name: "Relay Cluster", GridSize: 6, HazardCount: 4, TimeLimitSecs: 110, AlertThreshold: 2},
	{Name: "Coolant Grid", GridSize: 6, HazardCount: 5, TimeLimitSecs: 100, AlertThreshold: 2},
	{Name: "Data Trunk", GridSize: 7, HazardCount: 5, TimeLimitSecs: 90, AlertThreshold: 2},
	{Name: "Firewall Mesh", GridSize: 7, HazardCount: 6, TimeLimitSecs: 90, AlertThreshold: 2},
	{Name: "Archive Vault", GridSize: 8, HazardCount: 6, TimeLimitSecs: 80, AlertThreshold: 3},
	{Name: "Core Uplink", GridSize: 8, HazardCount: 7, TimeLimitSecs: 80, AlertThreshold: 3},
	{Name: "Air Gap", GridSize: 8, HazardCount: 7, TimeLimitSecs: 75, AlertThreshold: 3},
}

// GetLevel returns the level at the given index, or nil when out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelCount returns the number of campaign stages.
func LevelCount() int {
	return len(Levels)
}

// LevelNames returns the names of all campaign stages.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, level := range Levels {
		names[i] = level.Name
	}
	return names
}
