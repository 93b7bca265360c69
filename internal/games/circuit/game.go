// Package circuit provides the Circuit Override puzzle game: rotate conduit
// tiles so the current flows from the entry node to the exit port without
// touching a hidden trap before the trace completes.
package circuit

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-circuit/internal/config"
	platformcore "github.com/vovakirdan/tui-circuit/internal/core"
	"github.com/vovakirdan/tui-circuit/internal/games/circuit/core"
	"github.com/vovakirdan/tui-circuit/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Alarm and effect timing. The alarm pulse starts lazy and tightens to a
// flicker as the clock drains, mirroring the trace closing in.
const (
	pulseInitialSecs = 10.0 // Pulse interval with a full clock
	pulseMinSecs     = 0.2  // Pulse interval at zero
	clearTicks       = 90   // Stage-clear banner, ~1.5 seconds at 60 FPS
	trapGlitchSecs   = 0.35 // Static burst after a trap confirm
	failGlitchSecs   = 0.6  // Static burst when the trace locks down
)

// glitchGlyphs is the character set for the static bursts.
var glitchGlyphs = []rune("░▒▓█<>*")

// Game implements the Circuit Override game.
type Game struct {
	mode Mode
	rng  *rand.Rand
	cfg  config.CircuitConfig
	diff *config.DifficultyManager

	tick     uint64
	tickRate int
	score    int

	stageIndex int // Current stage (0-indexed)
	stageName  string

	// Board state
	board   *core.Board
	cursor  core.Pos
	tripped map[core.Pos]bool // Traps already burned by a confirm

	// Run state
	timeLeft       int // Ticks until lockdown
	timeTotal      int // Ticks the stage started with
	alertThreshold int
	trapsHit       int
	rotations      int
	lastBonus      int // Points awarded for the last cleared stage

	// Effect windows, in ticks
	revealLeft int // Trap flash at stage start
	glitchLeft int // Static burst after a trap confirm or lockdown
	clearLeft  int // Stage-clear banner

	// Layout
	hudHeight    int
	boardOffsetX int
	boardOffsetY int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// Package-level knobs the CLI sets before the registry builds the game.
var (
	configPath         string
	difficultyPreset   = config.DifficultyNormal
	selectedStartLevel int
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting stage (1-10). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start stage.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates a new campaign mode Circuit Override game.
func New() *Game {
	return &Game{
		mode: ModeCampaign,
	}
}

// NewEndless creates a new endless mode Circuit Override game.
func NewEndless() *Game {
	return &Game{
		mode: ModeEndless,
	}
}

func init() {
	registry.Register("circuit", func() registry.Game {
		return New()
	})
	registry.Register("circuit_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "circuit_endless"
	}
	return "circuit"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Circuit Override (Endless)"
	}
	return "Circuit Override"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	ccfg, err := config.LoadCircuit(configPath)
	if err != nil {
		ccfg = config.DefaultCircuitConfig()
	}
	config.ApplyCircuitPreset(&ccfg, difficultyPreset)
	g.cfg = ccfg
	g.diff = config.NewDifficultyManager(ccfg.Difficulty)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 4
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.tooSmall = false

	// Apply selected start stage (campaign only)
	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= LevelCount() {
		g.stageIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.stageIndex = 0
	}

	g.loadStage()
}

// loadStage generates the current stage's board and resets the clock.
func (g *Game) loadStage() {
	size := g.cfg.Gameplay.GridSize
	hazards := g.cfg.Gameplay.HazardCount
	timeSecs := g.cfg.Gameplay.TimeLimitSecs
	g.alertThreshold = g.cfg.Gameplay.AlertThreshold
	g.stageName = fmt.Sprintf("Sector %d", g.stageIndex+1)

	if g.mode == ModeCampaign {
		level := GetLevel(g.stageIndex)
		if level == nil {
			return
		}
		size = level.GridSize
		hazards = level.HazardCount
		timeSecs = level.TimeLimitSecs
		g.alertThreshold = level.AlertThreshold
		g.stageName = level.Name
	} else {
		// Endless boards grow with cleared stages
		size = g.diff.GridSize(size, g.score, g.stageIndex)
		hazards = g.diff.HazardCount(hazards, g.score, g.stageIndex)
		timeSecs = g.diff.TimeLimitSecs(timeSecs, g.score, g.stageIndex)
	}
	if g.alertThreshold < 1 {
		g.alertThreshold = 1
	}

	g.board = core.Generate(size, hazards, g.rng)
	g.cursor = g.board.Entry()
	g.tripped = make(map[core.Pos]bool)
	g.timeTotal = timeSecs * g.tickRate
	g.timeLeft = g.timeTotal
	g.trapsHit = 0
	g.rotations = 0
	g.revealLeft = int(g.cfg.Gameplay.RevealSecs * float64(g.tickRate))
	g.glitchLeft = 0
	g.clearLeft = 0

	g.layoutBoard()
}

// layoutBoard centers the board and checks the screen fits it.
func (g *Game) layoutBoard() {
	size := g.board.Size()
	boardW := size*2 - 1 // Tiles sit on every other column

	requiredW := boardW + 4
	requiredH := g.hudHeight + size + 2
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.boardOffsetX = (g.screenW - boardW) / 2
	g.boardOffsetY = g.hudHeight + 1
}

// Resize re-centers the board for a new terminal size without disturbing the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layoutBoard()
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	// Handle restart
	if input.Has(platformcore.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(platformcore.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	// Don't process if game over, paused, or window too small
	if g.gameOver || g.won || g.paused || g.tooSmall {
		// Let the lockdown static play out
		if g.glitchLeft > 0 {
			g.glitchLeft--
		}
		return platformcore.StepResult{State: g.State()}
	}

	// Stage-clear banner
	if g.clearLeft > 0 {
		g.clearLeft--
		if g.clearLeft == 0 {
			g.advanceStage()
		}
		return platformcore.StepResult{State: g.State()}
	}

	// Static burst after a trap confirm: input locked, clock still runs
	if g.glitchLeft > 0 {
		g.glitchLeft--
		g.tickClock()
		return platformcore.StepResult{State: g.State()}
	}

	// Trap reveal window: cursor moves, rotation stays locked, clock waits
	if g.revealLeft > 0 {
		g.revealLeft--
		g.moveCursor(input)
		return platformcore.StepResult{State: g.State()}
	}

	g.tickClock()
	if g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	g.moveCursor(input)
	if input.Has(platformcore.ActionConfirm) {
		g.confirmRotate()
	}

	return platformcore.StepResult{State: g.State()}
}

// tickClock drains the stage clock and locks the run down at zero.
func (g *Game) tickClock() {
	g.timeLeft--
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.fail()
	}
}

// moveCursor applies one directional input, clamped to the board.
func (g *Game) moveCursor(input platformcore.InputFrame) {
	switch {
	case input.Has(platformcore.ActionUp):
		g.cursor = g.clampCursor(g.cursor.Step(core.North))
	case input.Has(platformcore.ActionDown):
		g.cursor = g.clampCursor(g.cursor.Step(core.South))
	case input.Has(platformcore.ActionLeft):
		g.cursor = g.clampCursor(g.cursor.Step(core.West))
	case input.Has(platformcore.ActionRight):
		g.cursor = g.clampCursor(g.cursor.Step(core.East))
	}
}

// clampCursor keeps a position on the board.
func (g *Game) clampCursor(p core.Pos) core.Pos {
	size := g.board.Size()
	p.Row = platformcore.Clamp(p.Row, 0, size-1)
	p.Col = platformcore.Clamp(p.Col, 0, size-1)
	return p
}

// confirmRotate resolves a confirm on the cursor cell: a trap burns the
// confirm and counts toward lockdown, any other cell rotates.
func (g *Game) confirmRotate() {
	if g.board.IsHazard(g.cursor) {
		g.tripped[g.cursor] = true
		g.trapsHit++
		if g.trapsHit >= g.alertThreshold {
			g.fail()
			return
		}
		g.glitchLeft = int(trapGlitchSecs * float64(g.tickRate))
		return
	}

	if err := g.board.Rotate(g.cursor); err != nil {
		return // Cursor is clamped to the board, nothing to rotate
	}
	g.rotations++

	if g.board.Solved() {
		g.lastBonus = g.stageBonus()
		g.score += g.lastBonus
		g.clearLeft = clearTicks
	}
}

// stageBonus converts the remaining clock into points.
func (g *Game) stageBonus() int {
	secsLeft := g.timeLeft / g.tickRate
	return g.cfg.Scoring.ClearBonus + secsLeft*g.cfg.Scoring.TimeBonusPerSec
}

// advanceStage moves to the next stage.
func (g *Game) advanceStage() {
	g.stageIndex++
	if g.mode == ModeCampaign && g.stageIndex >= LevelCount() {
		g.won = true
		return
	}
	g.loadStage()
}

// fail ends the run with a lockdown static burst.
func (g *Game) fail() {
	g.gameOver = true
	g.glitchLeft = int(failGlitchSecs * float64(g.tickRate))
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	if g.glitchLeft > 0 {
		g.renderGlitch(dst)
		if !g.gameOver {
			return
		}
	} else {
		g.renderBoard(dst)
	}

	// Draw overlays
	switch {
	case g.clearLeft > 0:
		g.renderOverlay(dst, "CIRCUIT CLOSED", fmt.Sprintf("+%d points", g.lastBonus))
	case g.won:
		g.renderOverlay(dst, "OVERRIDE SUCCESS", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "OVERRIDE FAILED: TRACE LOCKDOWN", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	var hud string
	if g.mode == ModeEndless {
		hud = fmt.Sprintf(" Circuit Override (Endless) | Score: %d | Sector: %d", g.score, g.stageIndex+1)
	} else {
		hud = fmt.Sprintf(" Circuit Override | Score: %d | Stage: %d/%d %s", g.score, g.stageIndex+1, LevelCount(), g.stageName)
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)
	dst.DrawHLineWithColor(0, 1, dst.Width(), '─', platformcore.ColorGray)

	g.renderStatus(dst)

	dst.DrawHLineWithColor(0, 3, dst.Width(), '─', platformcore.ColorGray)
}

// renderStatus draws the clock, the alarm pulse and the trace meter.
func (g *Game) renderStatus(dst *platformcore.Screen) {
	secs := (g.timeLeft + g.tickRate - 1) / g.tickRate
	timeColor := platformcore.ColorWhite
	switch {
	case secs <= 10:
		timeColor = platformcore.ColorBrightRed
	case secs <= 30:
		timeColor = platformcore.ColorYellow
	}
	dst.DrawTextWithColor(1, 2, fmt.Sprintf("TIME %3ds", secs), timeColor)

	// Alarm pulse
	pulse := '○'
	pulseColor := platformcore.ColorGray
	if g.pulseOn() {
		pulse = '●'
		pulseColor = platformcore.ColorBrightRed
	}
	dst.SetWithColor(12, 2, pulse, pulseColor)

	traceColor := platformcore.ColorGray
	if g.trapsHit > 0 {
		traceColor = platformcore.ColorBrightRed
	}
	dst.DrawTextWithColor(15, 2, fmt.Sprintf("TRACE %d/%d", g.trapsHit, g.alertThreshold), traceColor)

	dst.DrawTextWithColor(27, 2, fmt.Sprintf("MOVES %d", g.rotations), platformcore.ColorWhite)
}

// pulseOn reports whether the alarm pulse is lit this tick. The pulse
// interval shrinks linearly with the remaining clock.
func (g *Game) pulseOn() bool {
	if g.timeTotal <= 0 {
		return false
	}
	frac := float64(g.timeLeft) / float64(g.timeTotal)
	interval := pulseMinSecs + (pulseInitialSecs-pulseMinSecs)*frac
	period := int(interval * float64(g.tickRate))
	if period < 2 {
		period = 2
	}
	blip := g.tickRate / 10
	if blip < 2 {
		blip = 2
	}
	return int(g.tick)%period < blip
}

// renderBoard draws the conduit grid, the cursor and the endpoint markers.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	size := g.board.Size()
	reveal := g.revealLeft > 0

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			p := core.P(row, col)
			ch, color := g.tileGlyph(p, reveal)
			dst.SetWithColor(g.boardOffsetX+col*2, g.boardOffsetY+row, ch, color)
		}
	}

	// Cursor brackets sit on the odd columns between tiles
	cx := g.boardOffsetX + g.cursor.Col*2
	cy := g.boardOffsetY + g.cursor.Row
	dst.SetWithColor(cx-1, cy, '[', platformcore.ColorBrightYellow)
	dst.SetWithColor(cx+1, cy, ']', platformcore.ColorBrightYellow)

	// Entry and exit markers flank the corner cells
	dst.SetWithColor(g.boardOffsetX-2, g.boardOffsetY, '>', platformcore.ColorBrightGreen)
	dst.SetWithColor(g.boardOffsetX+(size-1)*2+2, g.boardOffsetY+size-1, '>', platformcore.ColorBrightGreen)

	g.renderHint(dst)
}

// tileGlyph picks the rune and color for one board cell.
func (g *Game) tileGlyph(p core.Pos, reveal bool) (rune, platformcore.Color) {
	if g.board.IsHazard(p) {
		switch {
		case reveal:
			return 'T', platformcore.ColorBrightRed
		case g.tripped[p]:
			return 'X', platformcore.ColorBrightRed
		}
	}

	tile, err := g.board.TileAt(p)
	if err != nil {
		return ' ', platformcore.ColorDefault
	}

	color := platformcore.ColorWhite
	if p == g.board.Entry() || p == g.board.Exit() {
		color = platformcore.ColorBrightGreen
	}
	return tile.Rune(), color
}

// renderHint draws the line below the board.
func (g *Game) renderHint(dst *platformcore.Screen) {
	y := g.boardOffsetY + g.board.Size()
	if g.revealLeft > 0 {
		dst.DrawTextCenteredWithColor(y, "TRAP NODES EXPOSED", platformcore.ColorBrightYellow)
		return
	}
	dst.DrawTextCenteredWithColor(y, "arrows/wasd: Move | Enter: Rotate | P: Pause", platformcore.ColorGray)
}

// renderGlitch scrambles everything below the HUD with static.
func (g *Game) renderGlitch(dst *platformcore.Screen) {
	for y := g.hudHeight; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			glyph := glitchGlyphs[(x*31+y*17+int(g.tick))%len(glitchGlyphs)]
			dst.SetWithColor(x, y, glyph, platformcore.ColorBrightRed)
		}
	}
}

// renderOverlay draws a centered, framed overlay message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	boxW := platformcore.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := platformcore.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCenteredWithColor(box.Y+1, line1, platformcore.ColorWhite)
	dst.DrawTextCenteredWithColor(box.Y+3, line2, platformcore.ColorWhite)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}
