package screens

import (
	"fmt"

	"catchthatlemon/internal/app"
	"catchthatlemon/internal/ui/graphics/components"
	"catchthatlemon/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type GameOverScreen struct {
	ctx types.ScreenContext

	leaderboard *components.Leaderboard
	btnRetry    *components.Button
	btnMenu     *components.Button
}

func NewGameOverScreen(ctx types.ScreenContext) *GameOverScreen {
	return &GameOverScreen{
		ctx:         ctx,
		leaderboard: components.NewLeaderboard(0, 0, 420, 200),
		btnRetry:    components.NewButton(200, 40, "Retry", "R"),
		btnMenu:     components.NewButton(200, 40, "Main Menu", "M"),
	}
}

func (s *GameOverScreen) Update() types.UIEvent {
	w, _ := s.ctx.Size()
	s.btnRetry.SetPosition(w/2-210, 520)
	s.btnMenu.SetPosition(w/2+10, 520)

	switch {
	case s.btnRetry.Update():
		return types.ActionEvent(app.ActionRetry)
	case s.btnMenu.Update():
		return types.ActionEvent(app.ActionMainMenu)
	}
	return none()
}

func (s *GameOverScreen) Draw(screen *ebiten.Image) {
	w, _ := s.ctx.Size()
	game := s.ctx.Game()

	score := 0
	cause := ""
	if report := game.LastDeath(); report != nil {
		score = report.FinalScore
		cause = fmt.Sprintf("(%s)", report.Reason)
	}

	drawBold(screen, "GAME OVER", w, 110, types.ColorError)
	drawCentered(screen, cause, w, 140, types.ColorTextDim)
	drawCentered(screen, fmt.Sprintf("Your score: %d", score), w, 180, types.ColorText)
	drawCentered(screen, fmt.Sprintf("Best score: %d", game.HighScore()), w, 205, types.ColorTextHighlight)

	s.leaderboard.X = (w - s.leaderboard.Width) / 2
	s.leaderboard.Y = 250
	s.leaderboard.Draw(screen, game.Leaderboard(), game.Difficulty())

	s.btnRetry.Draw(screen)
	s.btnMenu.Draw(screen)
	drawCentered(screen, "Press R to Retry!", w, 600, types.ColorText)
	drawCentered(screen, "Press M for Main Menu!", w, 625, types.ColorText)
}

func (s *GameOverScreen) OnEnter() {}

func (s *GameOverScreen) OnExit() {}
