package input

import (
	"catchthatlemon/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type binding struct {
	keys   []ebiten.Key
	action app.Action
}

var bindings = []binding{
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyUp}, app.ActionUp},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyDown}, app.ActionDown},
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}, app.ActionLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyRight}, app.ActionRight},
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}, app.ActionStart},
	{[]ebiten.Key{ebiten.KeyO}, app.ActionOptions},
	{[]ebiten.Key{ebiten.KeyB, ebiten.KeyEscape}, app.ActionBack},
	{[]ebiten.Key{ebiten.KeyX}, app.ActionCycle},
	{[]ebiten.Key{ebiten.KeyR}, app.ActionRetry},
	{[]ebiten.Key{ebiten.KeyM}, app.ActionMainMenu},
}

type KeyboardHandler struct {
	buf []app.Action
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns the actions whose keys went down this frame, in binding order.
// The slice is reused on the next call.
func (kh *KeyboardHandler) Update() []app.Action {
	kh.buf = kh.buf[:0]
	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				kh.buf = append(kh.buf, b.action)
				break
			}
		}
	}
	return kh.buf
}
