package components

import (
	"image/color"

	"catchthatlemon/internal/assets"
	"catchthatlemon/internal/domain"
	"catchthatlemon/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldSize is the playable square in field units, border to border.
const FieldSize = 2*domain.FieldBound + domain.Step

// SpriteSource resolves a logical sprite name, nil when absent.
type SpriteSource func(name string) *ebiten.Image

// FieldRenderer maps field coordinates (origin centered, Y up) to screen pixels.
type FieldRenderer struct {
	CellSize int
	CenterX  int
	CenterY  int
	Scale    float64

	sprites SpriteSource
}

func NewFieldRenderer(sprites SpriteSource) *FieldRenderer {
	return &FieldRenderer{
		CellSize: domain.Step,
		Scale:    1,
		sprites:  sprites,
	}
}

// CalculateLayout fits the field into the area below the HUD.
func (fr *FieldRenderer) CalculateLayout(screenWidth, screenHeight, top int) {
	available := screenHeight - top - 20
	if w := screenWidth - 40; w < available {
		available = w
	}
	fr.Scale = float64(available) / float64(FieldSize)
	if fr.Scale <= 0 {
		fr.Scale = 1
	}
	fr.CellSize = int(float64(domain.Step) * fr.Scale)
	fr.CenterX = screenWidth / 2
	fr.CenterY = top + available/2
}

func (fr *FieldRenderer) ToScreen(p domain.Position) (float32, float32) {
	x := float64(fr.CenterX) + float64(p.X)*fr.Scale
	y := float64(fr.CenterY) - float64(p.Y)*fr.Scale
	return float32(x), float32(y)
}

func (fr *FieldRenderer) DrawField(screen *ebiten.Image) {
	half := float32(float64(FieldSize) * fr.Scale / 2)
	cx, cy := float32(fr.CenterX), float32(fr.CenterY)

	if bg := fr.sprites(assets.BackgroundGame); bg != nil {
		fr.drawImageCentered(screen, bg, cx, cy, half*2)
	} else {
		vector.DrawFilledRect(screen, cx-half, cy-half, half*2, half*2, types.ColorFieldBg, false)
	}
	vector.StrokeRect(screen, cx-half, cy-half, half*2, half*2, 2, types.ColorFieldBorder, false)
}

func (fr *FieldRenderer) drawImageCentered(screen, img *ebiten.Image, x, y, size float32) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(float64(size)/float64(b.Dx()), float64(size)/float64(b.Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// DrawEntity draws a sprite centered on p, or a square in fallback when the
// sprite was not loaded.
func (fr *FieldRenderer) DrawEntity(screen *ebiten.Image, p domain.Position, offset domain.Position, sprite string, fallback color.RGBA) {
	x, y := fr.ToScreen(p.Add(offset))
	size := float32(fr.CellSize)
	if img := fr.sprites(sprite); img != nil {
		fr.drawImageCentered(screen, img, x, y, size)
		return
	}
	vector.DrawFilledRect(screen, x-size/2+1, y-size/2+1, size-2, size-2, fallback, false)
}

func (fr *FieldRenderer) DrawFood(screen *ebiten.Image, f *domain.Food) {
	sprite, fallback := assets.SpriteLemon, types.ColorLemon
	switch f.Kind {
	case domain.FoodRottenLemon:
		sprite, fallback = assets.SpriteRottenLemon, types.ColorRotten
	case domain.FoodApple:
		sprite, fallback = assets.SpriteApple, types.ColorApple
	case domain.FoodBanana:
		sprite, fallback = assets.SpriteBanana, types.ColorBanana
	}
	fr.DrawEntity(screen, f.Position, domain.Position{}, sprite, fallback)
}

func (fr *FieldRenderer) DrawObstacles(screen *ebiten.Image, obstacles []domain.Obstacle) {
	for _, o := range obstacles {
		fr.DrawEntity(screen, o.Position, domain.Position{}, assets.SpriteSpike, types.ColorObstacle)
	}
}

// DrawSnake draws segments tail first so the head ends up on top.
func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, head domain.Position, heading domain.Direction, segments []domain.Position, headOffset domain.Position) {
	for i := len(segments) - 1; i >= 0; i-- {
		ahead := head
		if i > 0 {
			ahead = segments[i-1]
		}
		fr.DrawEntity(screen, segments[i], domain.Position{}, SegmentSprite(segments[i], ahead), types.ColorSegment)
	}
	fr.DrawEntity(screen, head, headOffset, HeadSprite(heading), types.ColorHead)
}

// SegmentSprite picks the orientation from the neighbour closer to the head.
func SegmentSprite(seg, ahead domain.Position) string {
	dx, dy := seg.X-ahead.X, seg.Y-ahead.Y
	if abs(dx) > abs(dy) {
		return assets.SpriteSegmentHoriz
	}
	return assets.SpriteSegmentVert
}

func HeadSprite(d domain.Direction) string {
	switch d {
	case domain.DirectionDown:
		return assets.SpriteHeadDown
	case domain.DirectionLeft:
		return assets.SpriteHeadLeft
	case domain.DirectionRight:
		return assets.SpriteHeadRight
	}
	return assets.SpriteHeadUp
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
