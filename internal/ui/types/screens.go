package types

import (
	"catchthatlemon/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

type Screen interface {
	Update() UIEvent
	Draw(screen *ebiten.Image)
	OnEnter()
	OnExit()
}

// ScreenContext is what screens may ask of the engine.
type ScreenContext interface {
	Size() (int, int)
	Game() *app.App
	Sprite(name string) *ebiten.Image
}
