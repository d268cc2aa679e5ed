package terminal

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"catchthatlemon/internal/app"
	"catchthatlemon/internal/config"
	"catchthatlemon/internal/domain"
	"catchthatlemon/internal/store"

	"github.com/gdamore/tcell/v2"
)

func newTestUI(t *testing.T) (*UI, tcell.SimulationScreen, *app.App) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(80, 40)
	t.Cleanup(screen.Fini)

	scores, err := store.New(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ui := New(screen)
	game := app.New(app.Options{
		Config:   config.DefaultConfig(),
		Scores:   scores,
		Prompter: ui,
		Random:   rand.New(rand.NewSource(1)),
		Now:      func() time.Time { return start },
	})
	ui.Attach(game)
	game.Start()
	return ui, screen, game
}

func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(screen tcell.SimulationScreen) string {
	_, h := screen.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(rowText(screen, y))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestCell(t *testing.T) {
	cases := []struct {
		p        domain.Position
		col, row int
	}{
		{domain.Position{X: 0, Y: 0}, 14, 14},
		{domain.Position{X: -280, Y: 280}, 0, 0},
		{domain.Position{X: 280, Y: -280}, 28, 28},
		{domain.Position{X: 0, Y: 100}, 14, 9},
		{domain.Position{X: 100, Y: -40}, 19, 16},
		{domain.Position{X: 9, Y: -11}, 14, 15},
		{domain.Position{X: 290, Y: 0}, 28, 14},
	}
	for _, c := range cases {
		col, row := Cell(c.p)
		if col != c.col || row != c.row {
			t.Errorf("Cell(%v) = (%d,%d), want (%d,%d)", c.p, col, row, c.col, c.row)
		}
	}
}

func TestActionForKey(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		r    rune
		want app.Action
	}{
		{tcell.KeyUp, 0, app.ActionUp},
		{tcell.KeyDown, 0, app.ActionDown},
		{tcell.KeyLeft, 0, app.ActionLeft},
		{tcell.KeyRight, 0, app.ActionRight},
		{tcell.KeyRune, 'w', app.ActionUp},
		{tcell.KeyRune, 'S', app.ActionDown},
		{tcell.KeyRune, 'a', app.ActionLeft},
		{tcell.KeyRune, 'D', app.ActionRight},
		{tcell.KeyEnter, 0, app.ActionStart},
		{tcell.KeyEscape, 0, app.ActionBack},
		{tcell.KeyRune, 'b', app.ActionBack},
		{tcell.KeyRune, 'o', app.ActionOptions},
		{tcell.KeyRune, 'x', app.ActionCycle},
		{tcell.KeyRune, 'r', app.ActionRetry},
		{tcell.KeyRune, 'm', app.ActionMainMenu},
		{tcell.KeyRune, 'z', app.ActionNone},
		{tcell.KeyTab, 0, app.ActionNone},
	}
	for _, c := range cases {
		if got := ActionForKey(c.key, c.r); got != c.want {
			t.Errorf("ActionForKey(%v, %q) = %v, want %v", c.key, c.r, got, c.want)
		}
	}
}

func TestMenuShowsDifficulty(t *testing.T) {
	ui, screen, _ := newTestUI(t)
	ui.Draw()

	text := screenText(screen)
	for _, want := range []string{"CATCH THAT LEMON", "Difficulty: Easy  (Press X to change)", "Press O for Options"} {
		if !strings.Contains(text, want) {
			t.Errorf("menu is missing %q:\n%s", want, text)
		}
	}
}

func TestGameDrawsHeadAndLemon(t *testing.T) {
	ui, screen, game := newTestUI(t)
	if err := game.HandleAction(app.ActionStart); err != nil {
		t.Fatal(err)
	}
	ui.Draw()

	// Field origin is column 10, row 2 on an 80 column screen.
	head := rowText(screen, 2+1+14)
	if got := head[10+1+28 : 10+1+30]; got != "@@" {
		t.Errorf("head cell = %q, row %q", got, head)
	}
	lemon := rowText(screen, 2+1+9)
	if got := lemon[10+1+28 : 10+1+30]; got != "()" {
		t.Errorf("lemon cell = %q, row %q", got, lemon)
	}
	if top := rowText(screen, 0); !strings.Contains(top, "Current Score: 0  High Score: 0") {
		t.Errorf("HUD = %q", top)
	}
}

func TestOptionsShowsVolumeAndEmptyBoard(t *testing.T) {
	ui, screen, game := newTestUI(t)
	if err := game.HandleAction(app.ActionOptions); err != nil {
		t.Fatal(err)
	}
	ui.Draw()

	text := screenText(screen)
	for _, want := range []string{"OPTIONS", "[##########----------] 50%", "Leaderboard (Easy) - Top 5", "No scores yet - go play!"} {
		if !strings.Contains(text, want) {
			t.Errorf("options screen is missing %q", want)
		}
	}
}

func TestPromptTyping(t *testing.T) {
	ui, _, _ := newTestUI(t)

	var got []string
	ui.Prompt("title", "message", func(s string) { got = append(got, s) })
	for _, r := range "Abx" {
		ui.typeKey(tcell.KeyRune, r)
	}
	ui.typeKey(tcell.KeyBackspace2, 0)
	ui.typeKey(tcell.KeyRune, 'c')
	ui.typeKey(tcell.KeyEnter, 0)

	if len(got) != 1 || got[0] != "Abc" {
		t.Fatalf("submitted %q, want [Abc]", got)
	}
	if ui.prompt != nil {
		t.Error("prompt should close after submit")
	}
}

func TestPromptLimitsLengthAndEscapeSkips(t *testing.T) {
	ui, _, _ := newTestUI(t)

	var got string
	ui.Prompt("title", "message", func(s string) { got = s })
	for i := 0; i < store.MaxNameLength+5; i++ {
		ui.typeKey(tcell.KeyRune, 'z')
	}
	if n := len(ui.prompt.answer); n != store.MaxNameLength {
		t.Errorf("answer has %d runes, want %d", n, store.MaxNameLength)
	}
	ui.typeKey(tcell.KeyEscape, 0)
	if got != "" {
		t.Errorf("escape submitted %q, want empty", got)
	}
}
