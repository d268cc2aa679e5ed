package components

import (
	"fmt"
	"sort"

	"catchthatlemon/internal/domain"
	"catchthatlemon/internal/store"
	"catchthatlemon/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Leaderboard struct {
	X, Y          int
	Width, Height int
}

func NewLeaderboard(x, y, width, height int) *Leaderboard {
	return &Leaderboard{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func (lb *Leaderboard) Draw(screen *ebiten.Image, entries []store.Entry, difficulty domain.Difficulty) {
	vector.DrawFilledRect(screen,
		float32(lb.X), float32(lb.Y),
		float32(lb.Width), float32(lb.Height),
		types.Darken(types.ColorFieldBg, 0.8), false)

	vector.StrokeRect(screen,
		float32(lb.X), float32(lb.Y),
		float32(lb.Width), float32(lb.Height),
		1, types.ColorFieldBorder, false)

	fonts := types.GetFonts()

	title := fmt.Sprintf("Leaderboard (%s) - Top %d", difficulty, store.MaxEntries)
	text.Draw(screen, title, fonts.Normal, lb.X+10, lb.Y+20, types.ColorTextHighlight)

	if len(entries) == 0 {
		text.Draw(screen, "No scores yet - go play!", fonts.Small, lb.X+10, lb.Y+50, types.ColorTextDim)
		return
	}

	sorted := append([]store.Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	y := lb.Y + 50
	for i, e := range sorted {
		if i >= store.MaxEntries || y > lb.Y+lb.Height-10 {
			break
		}
		textColor := types.ColorText
		if i == 0 {
			textColor = types.ColorTextHighlight
		}
		line := fmt.Sprintf("%d. %s - %d", i+1, e.Name, e.Score)
		text.Draw(screen, line, fonts.Normal, lb.X+20, y, textColor)
		y += 26
	}
}
