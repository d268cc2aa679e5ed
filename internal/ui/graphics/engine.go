package graphics

import (
	"errors"
	"log"
	"sync/atomic"

	"catchthatlemon/internal/app"
	"catchthatlemon/internal/ui/graphics/components"
	"catchthatlemon/internal/ui/graphics/input"
	"catchthatlemon/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	DefaultWidth  = 960
	DefaultHeight = 720
)

// Engine adapts the game to ebiten. It forwards keys and screen events to
// the app and mirrors the app's current screen.
type Engine struct {
	width  int
	height int

	game     *app.App
	sprites  map[string]*ebiten.Image
	keyboard *input.KeyboardHandler
	prompt   *components.PromptDialog

	currentScreen app.Screen
	screenMap     map[app.Screen]types.Screen
	entered       bool

	stopping atomic.Bool
}

// NewEngine creates the engine and the prompt dialog the app should be
// built with; call Attach once the app exists.
func NewEngine(sprites map[string]*ebiten.Image) *Engine {
	if sprites == nil {
		sprites = make(map[string]*ebiten.Image)
	}
	return &Engine{
		width:     DefaultWidth,
		height:    DefaultHeight,
		sprites:   sprites,
		keyboard:  input.NewKeyboardHandler(),
		prompt:    components.NewPromptDialog(),
		screenMap: make(map[app.Screen]types.Screen),
	}
}

func (e *Engine) Prompter() app.Prompter {
	return e.prompt
}

func (e *Engine) Attach(game *app.App) {
	e.game = game
}

func (e *Engine) RegisterScreens(menu, options, game, gameOver types.Screen) {
	e.screenMap[app.ScreenMenu] = menu
	e.screenMap[app.ScreenOptions] = options
	e.screenMap[app.ScreenGame] = game
	e.screenMap[app.ScreenGameOver] = gameOver
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Catch That Lemon")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Stop asks the game loop to end at the next update. Safe from any goroutine.
func (e *Engine) Stop() {
	e.stopping.Store(true)
}

func (e *Engine) Update() error {
	if e.stopping.Load() {
		log.Println("Stop requested")
		return ebiten.Termination
	}
	if e.game == nil {
		return nil
	}
	e.syncScreen()

	if e.prompt.Active() {
		e.prompt.Update()
	} else {
		for _, action := range e.keyboard.Update() {
			if err := e.dispatch(action); err != nil {
				return err
			}
		}
		if screen := e.screenMap[e.currentScreen]; screen != nil {
			if err := e.handleEvent(screen.Update()); err != nil {
				return err
			}
		}
	}

	if err := e.game.Update(); err != nil {
		return e.terminate(err)
	}
	e.syncScreen()
	return nil
}

func (e *Engine) dispatch(action app.Action) error {
	if err := e.game.HandleAction(action); err != nil {
		return e.terminate(err)
	}
	e.syncScreen()
	return nil
}

func (e *Engine) terminate(err error) error {
	if errors.Is(err, app.ErrQuit) {
		log.Println("Window closing")
		return ebiten.Termination
	}
	return err
}

func (e *Engine) handleEvent(event types.UIEvent) error {
	switch event.Type {
	case types.UIEventNone:
		return nil
	case types.UIEventQuit:
		return e.dispatch(app.ActionQuit)
	case types.UIEventAction:
		data, ok := event.Payload.(types.ActionData)
		if !ok {
			log.Printf("Malformed action event payload %T", event.Payload)
			return nil
		}
		return e.dispatch(data.Action)
	}
	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)
	if current := e.screenMap[e.currentScreen]; current != nil {
		current.Draw(screen)
	}
	e.prompt.Draw(screen, e.width, e.height)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width, e.height
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) Game() *app.App {
	return e.game
}

// Sprite returns the named image or nil when it was not loaded.
func (e *Engine) Sprite(name string) *ebiten.Image {
	return e.sprites[name]
}

func (e *Engine) syncScreen() {
	target := e.game.Screen()
	if e.entered && e.currentScreen == target {
		return
	}
	if e.entered {
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnExit()
		}
	}
	e.currentScreen = target
	e.entered = true
	if s := e.screenMap[e.currentScreen]; s != nil {
		s.OnEnter()
	}
}
