package terminal

import (
	"fmt"
	"math"
	"strings"

	"catchthatlemon/internal/app"
	"catchthatlemon/internal/domain"
	"catchthatlemon/internal/store"

	"github.com/gdamore/tcell/v2"
)

// The field is drawn as a grid of Step sized cells, two columns per cell.
const (
	gridCells = 2*domain.SpawnBound/domain.Step + 1
	cellWidth = 2
	hudRows   = 2
)

var (
	styleText      = tcell.StyleDefault
	styleDim       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHighlight = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleError     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBorder    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHead      = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleSegment   = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleObstacle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

type glyph struct {
	text  string
	style tcell.Style
}

var foodGlyphs = map[domain.FoodKind]glyph{
	domain.FoodLemon:       {"()", tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)},
	domain.FoodRottenLemon: {"()", tcell.StyleDefault.Foreground(tcell.ColorOlive)},
	domain.FoodApple:       {"<>", tcell.StyleDefault.Foreground(tcell.ColorRed)},
	domain.FoodBanana:      {"))", tcell.StyleDefault.Foreground(tcell.ColorYellow)},
}

var headGlyphs = map[domain.Direction]string{
	domain.DirectionStopped: "@@",
	domain.DirectionUp:      "^^",
	domain.DirectionDown:    "vv",
	domain.DirectionLeft:    "<:",
	domain.DirectionRight:   ":>",
}

// Cell maps a field position to its grid column and row, row 0 at the top.
func Cell(p domain.Position) (col, row int) {
	col = int(math.Round(float64(p.X+domain.SpawnBound) / domain.Step))
	row = gridCells - 1 - int(math.Round(float64(p.Y+domain.SpawnBound)/domain.Step))
	return clamp(col), clamp(row)
}

func clamp(v int) int {
	return max(0, min(gridCells-1, v))
}

func (u *UI) Draw() {
	u.screen.Clear()
	switch u.game.Screen() {
	case app.ScreenMenu:
		u.drawMenu()
	case app.ScreenOptions:
		u.drawOptions()
	case app.ScreenGame:
		u.drawGame()
	case app.ScreenGameOver:
		u.drawGameOver()
	}
	if u.prompt != nil {
		u.drawPrompt()
	}
	u.screen.Show()
}

func (u *UI) put(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (u *UI) centered(y int, s string, style tcell.Style) {
	w, _ := u.screen.Size()
	u.put(max(0, (w-len([]rune(s)))/2), y, s, style)
}

func (u *UI) drawMenu() {
	_, h := u.screen.Size()
	top := max(1, h/2-6)
	u.centered(top, "CATCH THAT LEMON", styleHighlight)
	u.centered(top+2, fmt.Sprintf("High Score: %d", u.game.HighScore()), styleText)
	u.centered(top+4, fmt.Sprintf("Difficulty: %s  (Press X to change)", u.game.Difficulty()), styleText)
	u.centered(top+6, "Press Enter to start", styleText)
	u.centered(top+7, "Press Esc to quit", styleDim)
	if u.game.BlinkVisible() {
		u.centered(top+9, "Press O for Options", styleDim)
	}
}

func (u *UI) drawOptions() {
	u.centered(1, "OPTIONS", styleHighlight)
	u.centered(3, "Music Volume", styleText)
	u.centered(4, app.VolumeGauge(u.game.Volume()), styleText)
	u.centered(5, "A / Left: -   |   D / Right: +", styleDim)
	next := u.drawLeaderboard(7)
	u.centered(next+1, "Press B or ESC to go back", styleDim)
}

// drawLeaderboard draws the current difficulty's board from row y and
// returns the first free row.
func (u *UI) drawLeaderboard(y int) int {
	u.centered(y, fmt.Sprintf("Leaderboard (%s) - Top %d", u.game.Difficulty(), store.MaxEntries), styleHighlight)
	y++
	entries := u.game.Leaderboard()
	if len(entries) == 0 {
		u.centered(y, "No scores yet - go play!", styleDim)
		return y + 1
	}
	for i, e := range entries {
		if i >= store.MaxEntries {
			break
		}
		u.centered(y, fmt.Sprintf("%d. %s - %d", i+1, e.Name, e.Score), styleText)
		y++
	}
	return y
}

func (u *UI) drawGameOver() {
	score := 0
	cause := ""
	if report := u.game.LastDeath(); report != nil {
		score = report.FinalScore
		cause = "(" + report.Reason.String() + ")"
	}
	u.centered(1, "GAME OVER", styleError.Bold(true))
	u.centered(2, cause, styleDim)
	u.centered(4, fmt.Sprintf("Your score: %d", score), styleText)
	u.centered(5, fmt.Sprintf("Best score: %d", u.game.HighScore()), styleHighlight)
	next := u.drawLeaderboard(7)
	u.centered(next+1, "Press R to Retry!", styleText)
	u.centered(next+2, "Press M for Main Menu!", styleText)
}

func (u *UI) fieldOrigin() (int, int) {
	w, _ := u.screen.Size()
	return max(0, (w-gridCells*cellWidth-2)/2), hudRows
}

func (u *UI) drawCell(p domain.Position, g glyph) {
	ox, oy := u.fieldOrigin()
	col, row := Cell(p)
	u.put(ox+1+col*cellWidth, oy+1+row, g.text, g.style)
}

func (u *UI) drawGame() {
	session := u.game.Session()

	u.centered(0, fmt.Sprintf("Current Score: %d  High Score: %d", session.Score, u.game.HighScore()), styleText)
	status := fmt.Sprintf("Difficulty: %s   O: Options", u.game.Difficulty())
	if left := u.game.ReverseRemaining(); left > 0 {
		status += fmt.Sprintf("   Controls reversed: %.1fs", left.Seconds())
	}
	u.centered(1, status, styleDim)

	u.drawBorder()
	for _, o := range session.Obstacles {
		u.drawCell(o.Position, glyph{"/\\", styleObstacle})
	}
	for _, f := range session.Foods() {
		if u.game.FoodVisible(f) {
			u.drawCell(f.Position, foodGlyphs[f.Kind])
		}
	}

	head, heading := session.Snake.Head.Position, session.Snake.Head.Direction
	segments := make([]domain.Position, 0, session.Snake.Len())
	for _, s := range session.Snake.Segments {
		segments = append(segments, s.Position)
	}
	if report := u.game.Dying(); report != nil {
		head, heading, segments = report.At, report.Heading, report.Segments
	}
	for i := len(segments) - 1; i >= 0; i-- {
		u.drawCell(segments[i], glyph{"[]", styleSegment})
	}
	style := styleHead
	if u.game.Dying() != nil {
		style = styleError.Bold(true)
	}
	u.drawCell(head.Add(u.game.HeadOffset()), glyph{headGlyphs[heading], style})
}

func (u *UI) drawBorder() {
	ox, oy := u.fieldOrigin()
	inner := gridCells * cellWidth
	u.put(ox, oy, "+"+strings.Repeat("-", inner)+"+", styleBorder)
	for row := 0; row < gridCells; row++ {
		u.put(ox, oy+1+row, "|", styleBorder)
		u.put(ox+inner+1, oy+1+row, "|", styleBorder)
	}
	u.put(ox, oy+gridCells+1, "+"+strings.Repeat("-", inner)+"+", styleBorder)
}

func (u *UI) drawPrompt() {
	_, h := u.screen.Size()
	y := max(0, h-4)
	u.centered(y, u.prompt.title, styleHighlight)
	lines := strings.Split(u.prompt.message, "\n")
	u.centered(y+1, strings.Join(lines, " "), styleText)
	u.centered(y+2, "> "+string(u.prompt.answer)+"_", styleText)
}
