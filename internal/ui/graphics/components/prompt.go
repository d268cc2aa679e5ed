package components

import (
	"strings"

	"catchthatlemon/internal/store"
	"catchthatlemon/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PromptDialog is a modal name entry drawn over the current screen.
// Enter submits the typed text, Esc submits an empty answer.
type PromptDialog struct {
	title   string
	lines   []string
	submit  func(string)
	input   *TextInput
	pending bool
}

func NewPromptDialog() *PromptDialog {
	return &PromptDialog{
		input: NewTextInput(320, 36, store.MaxNameLength, store.DefaultName),
	}
}

func (p *PromptDialog) Prompt(title, message string, submit func(answer string)) {
	p.title = title
	p.lines = strings.Split(message, "\n")
	p.submit = submit
	p.input.Clear()
	p.pending = true
}

func (p *PromptDialog) Active() bool {
	return p.pending
}

// Update consumes keyboard input while the dialog is open.
func (p *PromptDialog) Update() {
	if !p.pending {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		p.finish(p.input.Text)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		p.finish("")
	default:
		p.input.Update()
	}
}

func (p *PromptDialog) finish(answer string) {
	submit := p.submit
	p.pending = false
	p.submit = nil
	if submit != nil {
		submit(answer)
	}
}

func (p *PromptDialog) Draw(screen *ebiten.Image, width, height int) {
	if !p.pending {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), types.ColorOverlay, false)

	boxW, boxH := 400, 120+16*len(p.lines)
	x, y := (width-boxW)/2, (height-boxH)/2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), types.ColorBackground, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), 2, types.ColorFieldBorder, false)

	fonts := types.GetFonts()
	text.Draw(screen, p.title, fonts.Normal, x+16, y+26, types.ColorTextHighlight)
	lineY := y + 52
	for _, line := range p.lines {
		text.Draw(screen, line, fonts.Normal, x+16, lineY, types.ColorText)
		lineY += 16
	}

	p.input.SetPosition(x+(boxW-p.input.Width)/2, lineY)
	p.input.Draw(screen)
	text.Draw(screen, "Enter to save, Esc to skip", fonts.Small, x+16, y+boxH-10, types.ColorTextDim)
}
