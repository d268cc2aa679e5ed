package screens

import (
	"catchthatlemon/internal/app"
	"catchthatlemon/internal/assets"
	"catchthatlemon/internal/ui/graphics/components"
	"catchthatlemon/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type OptionsScreen struct {
	ctx types.ScreenContext

	leaderboard *components.Leaderboard
	btnDown     *components.Button
	btnUp       *components.Button
	btnBack     *components.Button
}

func NewOptionsScreen(ctx types.ScreenContext) *OptionsScreen {
	return &OptionsScreen{
		ctx:         ctx,
		leaderboard: components.NewLeaderboard(0, 0, 420, 200),
		btnDown:     components.NewButton(90, 36, "-", "A"),
		btnUp:       components.NewButton(90, 36, "+", "D"),
		btnBack:     components.NewButton(200, 40, "Back", "B"),
	}
}

func (s *OptionsScreen) Update() types.UIEvent {
	w, _ := s.ctx.Size()
	s.btnDown.SetPosition(w/2-110, 210)
	s.btnUp.SetPosition(w/2+20, 210)
	s.btnBack.SetPosition(w/2-100, 520)

	switch {
	case s.btnDown.Update():
		return types.ActionEvent(app.ActionLeft)
	case s.btnUp.Update():
		return types.ActionEvent(app.ActionRight)
	case s.btnBack.Update():
		return types.ActionEvent(app.ActionBack)
	}
	return none()
}

func (s *OptionsScreen) Draw(screen *ebiten.Image) {
	drawBackground(s.ctx, screen, assets.BackgroundOptions)

	w, _ := s.ctx.Size()
	game := s.ctx.Game()

	drawBold(screen, "OPTIONS", w, 80, types.ColorTextHighlight)
	drawCentered(screen, "Music Volume", w, 140, types.ColorText)
	drawCentered(screen, app.VolumeGauge(game.Volume()), w, 170, types.ColorText)
	drawCentered(screen, "A / Left: -   |   D / Right: +", w, 195, types.ColorTextDim)

	s.btnDown.Draw(screen)
	s.btnUp.Draw(screen)

	s.leaderboard.X = (w - s.leaderboard.Width) / 2
	s.leaderboard.Y = 280
	s.leaderboard.Draw(screen, game.Leaderboard(), game.Difficulty())

	s.btnBack.Draw(screen)
	drawCentered(screen, "Press B or ESC to go back", w, 590, types.ColorTextDim)
}

func (s *OptionsScreen) OnEnter() {}

func (s *OptionsScreen) OnExit() {}
