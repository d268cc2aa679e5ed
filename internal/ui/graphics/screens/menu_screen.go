package screens

import (
	"fmt"

	"catchthatlemon/internal/app"
	"catchthatlemon/internal/assets"
	"catchthatlemon/internal/ui/graphics/components"
	"catchthatlemon/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type MenuScreen struct {
	ctx types.ScreenContext

	btnStart   *components.Button
	btnCycle   *components.Button
	btnOptions *components.Button
	btnQuit    *components.Button
}

func NewMenuScreen(ctx types.ScreenContext) *MenuScreen {
	return &MenuScreen{
		ctx:        ctx,
		btnStart:   components.NewButton(250, 44, "Start", "Enter"),
		btnCycle:   components.NewButton(250, 44, "Difficulty", "X"),
		btnOptions: components.NewButton(250, 44, "Options", "O"),
		btnQuit:    components.NewButton(250, 44, "Quit", "Esc"),
	}
}

func (s *MenuScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	centerX := w / 2
	top := h/2 - 20

	s.btnStart.SetPosition(centerX-125, top)
	s.btnCycle.SetPosition(centerX-125, top+56)
	s.btnOptions.SetPosition(centerX-125, top+112)
	s.btnQuit.SetPosition(centerX-125, top+168)

	switch {
	case s.btnStart.Update():
		return types.ActionEvent(app.ActionStart)
	case s.btnCycle.Update():
		return types.ActionEvent(app.ActionCycle)
	case s.btnOptions.Update():
		return types.ActionEvent(app.ActionOptions)
	case s.btnQuit.Update():
		return types.UIEvent{Type: types.UIEventQuit}
	}
	return none()
}

func (s *MenuScreen) Draw(screen *ebiten.Image) {
	drawBackground(s.ctx, screen, assets.BackgroundMenu)

	w, h := s.ctx.Size()
	game := s.ctx.Game()

	drawBold(screen, "CATCH THAT LEMON", w, 110, types.ColorTextHighlight)
	drawCentered(screen, fmt.Sprintf("High Score: %d", game.HighScore()), w, 150, types.ColorText)
	drawCentered(screen, fmt.Sprintf("Difficulty: %s  (Press X to change)", game.Difficulty()), w, h/2-50, types.ColorText)

	s.btnStart.Draw(screen)
	s.btnCycle.Draw(screen)
	s.btnOptions.Draw(screen)
	s.btnQuit.Draw(screen)

	if game.BlinkVisible() {
		drawCentered(screen, "Press O for Options", w, h-40, types.ColorTextDim)
	}
}

func (s *MenuScreen) OnEnter() {}

func (s *MenuScreen) OnExit() {}
