// Package ui draws the heads-up display over the 3D scene.
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/1siamBot/arc-engine/engine/core"
)

// Status is the per-frame game state shown by the HUD
type Status struct {
	Player    *core.Player
	State     core.GameState
	Remaining int
	Tick      uint64
	// Diagnostic is the reason the last frame was skipped, or ""
	Diagnostic string
	// Log holds recent warning lines, oldest first
	Log []string
}

// HUD is the main heads-up display
type HUD struct {
	ScreenW, ScreenH int
	TopBarHeight     int
	ShowHelp         bool
	ShowLog          bool

	face text.Face
}

func NewHUD(sw, sh int) *HUD {
	return &HUD{
		ScreenW:      sw,
		ScreenH:      sh,
		TopBarHeight: 30,
		face:         text.NewGoXFace(basicfont.Face7x13),
	}
}

// TopBar formats the score line
func TopBar(s Status) string {
	if s.Player == nil {
		return fmt.Sprintf("Bricks: %d", s.Remaining)
	}
	return fmt.Sprintf("%s | Score: %d | Lives: %d | Bricks: %d",
		s.Player.Name, s.Player.Score, s.Player.Lives, s.Remaining)
}

// Banner returns the centred message for the game state, or "" while playing
func Banner(state core.GameState) string {
	switch state {
	case core.StatePaused:
		return "PAUSED - press P to play"
	case core.StateGameOver:
		return "GAME OVER - press Enter to restart"
	case core.StateWon:
		return "YOU WIN - press Enter to play again"
	}
	return ""
}

// HelpLines lists the controls
func HelpLines() []string {
	return []string{
		"A / Left   swing paddles left",
		"D / Right  swing paddles right",
		"R          reset the ball",
		"P          pause",
		"F1         toggle help",
		"F2         toggle log",
		"Esc        quit",
	}
}

// Draw renders the entire HUD
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	h.drawTopBar(screen, s)
	if b := Banner(s.State); b != "" {
		h.drawBanner(screen, b)
	}
	if h.ShowHelp {
		h.drawLines(screen, HelpLines(), 10, h.TopBarHeight+10)
	}
	if h.ShowLog && len(s.Log) > 0 {
		h.drawLines(screen, s.Log, 10, h.ScreenH-16*len(s.Log)-10)
	}
}

func (h *HUD) drawTopBar(screen *ebiten.Image, s Status) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.ScreenW), float32(h.TopBarHeight), color.RGBA{0, 0, 0, 180}, false)
	ebitenutil.DebugPrintAt(screen, TopBar(s), 10, 8)
	if s.Diagnostic != "" {
		msg := "! " + s.Diagnostic
		ebitenutil.DebugPrintAt(screen, msg, h.ScreenW-len(msg)*6-10, 8)
	}
}

func (h *HUD) drawBanner(screen *ebiten.Image, msg string) {
	w, th := text.Measure(msg, h.face, 0)
	const pad = 12
	x := (float64(h.ScreenW) - w) / 2
	y := (float64(h.ScreenH) - th) / 2
	vector.DrawFilledRect(screen, float32(x-pad), float32(y-pad), float32(w+2*pad), float32(th+2*pad), color.RGBA{20, 20, 40, 220}, false)
	vector.StrokeRect(screen, float32(x-pad), float32(y-pad), float32(w+2*pad), float32(th+2*pad), 1, color.RGBA{150, 150, 200, 255}, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, msg, h.face, op)
}

func (h *HUD) drawLines(screen *ebiten.Image, lines []string, x, y int) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	vector.DrawFilledRect(screen, float32(x-4), float32(y-4), float32(width*7+8), float32(16*len(lines)+8), color.RGBA{0, 0, 0, 160}, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(color.RGBA{220, 220, 220, 255})
	text.Draw(screen, strings.Join(lines, "\n"), h.face, op)
}
