package screens

import (
	"fmt"
	"time"

	"catchthatlemon/internal/domain"
	"catchthatlemon/internal/ui/graphics/components"
	"catchthatlemon/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const hudHeight = 70

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	segments      []domain.Position
}

func NewGameScreen(ctx types.ScreenContext) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(ctx.Sprite),
	}
}

func (s *GameScreen) Update() types.UIEvent {
	return none()
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	w, h := s.ctx.Size()
	game := s.ctx.Game()
	session := game.Session()

	s.fieldRenderer.CalculateLayout(w, h, hudHeight)
	s.fieldRenderer.DrawField(screen)
	s.fieldRenderer.DrawObstacles(screen, session.Obstacles)

	for _, f := range session.Foods() {
		if game.FoodVisible(f) {
			s.fieldRenderer.DrawFood(screen, f)
		}
	}

	if report := game.Dying(); report != nil {
		s.fieldRenderer.DrawSnake(screen, report.At, report.Heading, report.Segments, game.HeadOffset())
	} else {
		snake := session.Snake
		s.segments = bodyPositions(s.segments[:0], snake)
		s.fieldRenderer.DrawSnake(screen, snake.Head.Position, snake.Head.Direction, s.segments, game.HeadOffset())
	}

	s.drawHUD(screen, w)
}

// bodyPositions appends the segment positions of snake to dst, head side first.
func bodyPositions(dst []domain.Position, snake *domain.Snake) []domain.Position {
	for _, seg := range snake.Segments {
		dst = append(dst, seg.Position)
	}
	return dst
}

func (s *GameScreen) drawHUD(screen *ebiten.Image, w int) {
	game := s.ctx.Game()
	session := game.Session()
	fonts := types.GetFonts()

	drawCentered(screen, fmt.Sprintf("Current Score: %d  High Score: %d", session.Score, game.HighScore()), w, 28, types.ColorText)

	text.Draw(screen, fmt.Sprintf("Difficulty: %s", game.Difficulty()), fonts.Small, 20, 54, types.ColorTextDim)

	if left := game.ReverseRemaining(); left > 0 {
		msg := fmt.Sprintf("Controls reversed: %.1fs", left.Round(100*time.Millisecond).Seconds())
		bounds := text.BoundString(fonts.Small, msg)
		text.Draw(screen, msg, fonts.Small, w-bounds.Dx()-20, 54, types.ColorError)
	}

	hint := "O: Options"
	bounds := text.BoundString(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small, (w-bounds.Dx())/2, 54, types.ColorTextDim)
}

func (s *GameScreen) OnEnter() {}

func (s *GameScreen) OnExit() {}
