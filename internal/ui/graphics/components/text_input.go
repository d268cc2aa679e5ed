package components

import (
	"unicode/utf8"

	"catchthatlemon/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TextInput is a single focused line of typed text.
type TextInput struct {
	X, Y          int
	Width, Height int
	Text          string
	Placeholder   string
	MaxLength     int
	cursorBlink   int
}

func NewTextInput(width, height, maxLength int, placeholder string) *TextInput {
	return &TextInput{
		Width:       width,
		Height:      height,
		Placeholder: placeholder,
		MaxLength:   maxLength,
	}
}

func (ti *TextInput) Update() {
	ti.cursorBlink++

	var runes []rune
	runes = ebiten.AppendInputChars(runes)
	for _, r := range runes {
		if utf8.RuneCountInString(ti.Text) < ti.MaxLength {
			ti.Text += string(r)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && ti.Text != "" {
		_, size := utf8.DecodeLastRuneInString(ti.Text)
		ti.Text = ti.Text[:len(ti.Text)-size]
	}
}

func (ti *TextInput) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen,
		float32(ti.X), float32(ti.Y),
		float32(ti.Width), float32(ti.Height),
		types.ColorInputBg, false)
	vector.StrokeRect(screen,
		float32(ti.X), float32(ti.Y),
		float32(ti.Width), float32(ti.Height),
		2, types.ColorInputFocused, false)

	fonts := types.GetFonts()
	displayText := ti.Text
	textColor := types.ColorText
	if displayText == "" {
		displayText = ti.Placeholder
		textColor = types.ColorTextDim
	}

	textX := ti.X + 8
	textY := ti.Y + ti.Height/2 + 4
	text.Draw(screen, displayText, fonts.Normal, textX, textY, textColor)

	if (ti.cursorBlink/30)%2 == 0 {
		bounds := text.BoundString(fonts.Normal, ti.Text)
		cursorX := float32(textX + bounds.Dx() + 2)
		vector.StrokeLine(screen, cursorX, float32(ti.Y+5), cursorX, float32(ti.Y+ti.Height-5), 2, types.ColorText, false)
	}
}

func (ti *TextInput) SetPosition(x, y int) {
	ti.X = x
	ti.Y = y
}

func (ti *TextInput) Clear() {
	ti.Text = ""
	ti.cursorBlink = 0
}
