package terminal

import (
	"context"
	"errors"
	"log"
	"time"
	"unicode"

	"catchthatlemon/internal/app"
	"catchthatlemon/internal/store"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond

type prompt struct {
	title   string
	message string
	answer  []rune
	submit  func(string)
}

// UI runs the game in a terminal. It implements app.Prompter with an
// inline name entry line.
type UI struct {
	screen tcell.Screen
	game   *app.App
	prompt *prompt
}

func New(screen tcell.Screen) *UI {
	return &UI{screen: screen}
}

// NewScreen opens the controlling terminal.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	return screen, nil
}

func (u *UI) Attach(game *app.App) {
	u.game = game
}

func (u *UI) Prompt(title, message string, submit func(answer string)) {
	u.prompt = &prompt{title: title, message: message, submit: submit}
}

// Run polls terminal events and drives the game until the player quits or
// ctx is cancelled.
func (u *UI) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if err := u.handleEvent(ev); err != nil {
				return quitOK(err)
			}
		case <-ticker.C:
			if err := u.game.Update(); err != nil {
				return quitOK(err)
			}
			u.Draw()
		}
	}
}

func quitOK(err error) error {
	if errors.Is(err, app.ErrQuit) {
		log.Println("Terminal closing")
		return nil
	}
	return err
}

func (u *UI) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return u.game.HandleAction(app.ActionQuit)
		}
		if u.prompt != nil {
			u.typeKey(ev.Key(), ev.Rune())
			return nil
		}
		return u.game.HandleAction(ActionForKey(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		u.screen.Sync()
	}
	return nil
}

func (u *UI) typeKey(key tcell.Key, r rune) {
	p := u.prompt
	switch key {
	case tcell.KeyEnter:
		u.finishPrompt(string(p.answer))
	case tcell.KeyEscape:
		u.finishPrompt("")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.answer) > 0 {
			p.answer = p.answer[:len(p.answer)-1]
		}
	case tcell.KeyRune:
		if unicode.IsPrint(r) && len(p.answer) < store.MaxNameLength {
			p.answer = append(p.answer, r)
		}
	}
}

func (u *UI) finishPrompt(answer string) {
	p := u.prompt
	u.prompt = nil
	if p.submit != nil {
		p.submit(answer)
	}
}

// ActionForKey maps WASD, the arrows and the letter shortcuts onto game actions.
func ActionForKey(key tcell.Key, r rune) app.Action {
	switch key {
	case tcell.KeyUp:
		return app.ActionUp
	case tcell.KeyDown:
		return app.ActionDown
	case tcell.KeyLeft:
		return app.ActionLeft
	case tcell.KeyRight:
		return app.ActionRight
	case tcell.KeyEnter:
		return app.ActionStart
	case tcell.KeyEscape:
		return app.ActionBack
	case tcell.KeyRune:
		switch unicode.ToLower(r) {
		case 'w':
			return app.ActionUp
		case 's':
			return app.ActionDown
		case 'a':
			return app.ActionLeft
		case 'd':
			return app.ActionRight
		case 'o':
			return app.ActionOptions
		case 'b':
			return app.ActionBack
		case 'x':
			return app.ActionCycle
		case 'r':
			return app.ActionRetry
		case 'm':
			return app.ActionMainMenu
		}
	}
	return app.ActionNone
}
