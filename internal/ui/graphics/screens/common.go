package screens

import (
	"image/color"

	"catchthatlemon/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

func drawCentered(screen *ebiten.Image, s string, width, y int, c color.Color) {
	fonts := types.GetFonts()
	bounds := text.BoundString(fonts.Normal, s)
	text.Draw(screen, s, fonts.Normal, (width-bounds.Dx())/2, y, c)
}

// drawBold fakes a heavier face by stamping the text around its anchor.
func drawBold(screen *ebiten.Image, s string, width, y int, c color.Color) {
	fonts := types.GetFonts()
	bounds := text.BoundString(fonts.Normal, s)
	x := (width - bounds.Dx()) / 2
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			text.Draw(screen, s, fonts.Normal, x+dx, y+dy, c)
		}
	}
}

// drawBackground stretches the named image over the whole screen.
func drawBackground(ctx types.ScreenContext, screen *ebiten.Image, name string) {
	img := ctx.Sprite(name)
	if img == nil {
		return
	}
	w, h := ctx.Size()
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func none() types.UIEvent {
	return types.UIEvent{Type: types.UIEventNone}
}
