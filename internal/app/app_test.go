package app

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"catchthatlemon/internal/config"
	"catchthatlemon/internal/domain"
	"catchthatlemon/internal/store"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type recordingAudio struct {
	effects []string
	music   []string
	volume  float64
	stops   int
}

func (r *recordingAudio) PlayEffect(name string)  { r.effects = append(r.effects, name) }
func (r *recordingAudio) PlayMusic(name string)   { r.music = append(r.music, name) }
func (r *recordingAudio) StopMusic()              { r.stops++ }
func (r *recordingAudio) SetVolume(level float64) { r.volume = level }

// fakePrompter holds the pending submit until the test answers.
type fakePrompter struct {
	title   string
	message string
	submit  func(string)
	calls   int
}

func (p *fakePrompter) Prompt(title, message string, submit func(string)) {
	p.calls++
	p.title = title
	p.message = message
	p.submit = submit
}

type memoryScores struct {
	high   int
	boards map[domain.Difficulty][]store.Entry
	saves  int
}

func newMemoryScores() *memoryScores {
	return &memoryScores{boards: make(map[domain.Difficulty][]store.Entry)}
}

func (m *memoryScores) LoadScore() int { return m.high }

func (m *memoryScores) SaveScore(score int) error {
	m.high = score
	m.saves++
	return nil
}

func (m *memoryScores) LoadLeaderboard(d domain.Difficulty) []store.Entry {
	return append([]store.Entry(nil), m.boards[d]...)
}

func (m *memoryScores) SaveLeaderboard(d domain.Difficulty, entries []store.Entry) error {
	m.boards[d] = append([]store.Entry(nil), entries...)
	return nil
}

type harness struct {
	app      *App
	clock    *fakeClock
	audio    *recordingAudio
	prompter *fakePrompter
	scores   *memoryScores
}

func newHarness(t *testing.T, d domain.Difficulty) *harness {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Difficulty = d
	h := &harness{
		clock:    &fakeClock{t: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)},
		audio:    &recordingAudio{},
		prompter: &fakePrompter{},
		scores:   newMemoryScores(),
	}
	h.app = New(Options{
		Config:   cfg,
		Scores:   h.scores,
		Audio:    h.audio,
		Prompter: h.prompter,
		Random:   rand.New(rand.NewSource(1)),
		Now:      h.clock.Now,
	})
	h.app.Start()
	return h
}

func (h *harness) act(t *testing.T, actions ...Action) {
	t.Helper()
	for _, a := range actions {
		if err := h.app.HandleAction(a); err != nil {
			t.Fatalf("HandleAction(%v): %v", a, err)
		}
	}
}

func (h *harness) step(t *testing.T, d time.Duration) {
	t.Helper()
	h.clock.Advance(d)
	if err := h.app.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

// killWithScore forces a rotten-lemon death with the given pre-penalty score.
func (h *harness) killWithScore(t *testing.T, score int) {
	t.Helper()
	s := h.app.Session()
	s.Score = score
	s.Rotten[0].Place(s.Snake.Head.Position)
	h.step(t, 0)
	if h.app.Dying() == nil {
		t.Fatal("expected the death animation to start")
	}
	h.step(t, DeathHold)
}

func TestStartsOnMenuWithMusic(t *testing.T) {
	h := newHarness(t, domain.DifficultyEasy)
	if h.app.Screen() != ScreenMenu {
		t.Fatalf("screen = %v, want menu", h.app.Screen())
	}
	if len(h.audio.music) == 0 || h.audio.music[len(h.audio.music)-1] != MusicMenu {
		t.Errorf("music = %v, want menu music", h.audio.music)
	}
	if h.audio.volume != config.DefaultConfig().Volume {
		t.Errorf("volume = %v", h.audio.volume)
	}
}

func TestScreenTransitions(t *testing.T) {
	h := newHarness(t, domain.DifficultyEasy)

	h.act(t, ActionRetry, ActionMainMenu, ActionUp)
	if h.app.Screen() != ScreenMenu {
		t.Fatalf("invalid inputs moved the menu to %v", h.app.Screen())
	}

	h.act(t, ActionOptions)
	if h.app.Screen() != ScreenOptions {
		t.Fatalf("screen = %v, want options", h.app.Screen())
	}
	h.act(t, ActionBack)
	if h.app.Screen() != ScreenMenu {
		t.Fatalf("back without a game should return to menu, got %v", h.app.Screen())
	}

	h.act(t, ActionStart)
	if h.app.Screen() != ScreenGame || !h.app.Session().Running {
		t.Fatalf("start: screen = %v running = %v", h.app.Screen(), h.app.Session().Running)
	}
	if last := h.audio.music[len(h.audio.music)-1]; last != MusicGame {
		t.Errorf("music = %s, want game music", last)
	}

	h.act(t, ActionCycle, ActionStart, ActionMainMenu)
	if h.app.Screen() != ScreenGame || h.app.Difficulty() != domain.DifficultyEasy {
		t.Fatalf("game accepted menu inputs: screen %v difficulty %v", h.app.Screen(), h.app.Difficulty())
	}

	h.act(t, ActionOptions)
	if h.app.Screen() != ScreenOptions {
		t.Fatalf("options from game: %v", h.app.Screen())
	}
	h.act(t, ActionBack)
	if h.app.Screen() != ScreenGame {
		t.Fatalf("back with a running game should resume it, got %v", h.app.Screen())
	}
}

func TestEscapeOnMenuQuits(t *testing.T) {
	h := newHarness(t, domain.DifficultyEasy)
	if err := h.app.HandleAction(ActionBack); !errors.Is(err, ErrQuit) {
		t.Fatalf("back on menu: err = %v, want ErrQuit", err)
	}
	if err := h.app.Update(); !errors.Is(err, ErrQuit) {
		t.Errorf("Update after quit: err = %v, want ErrQuit", err)
	}
}

func TestQuitFromAnywhere(t *testing.T) {
	h := newHarness(t, domain.DifficultyEasy)
	h.act(t, ActionStart)
	if err := h.app.HandleAction(ActionQuit); !errors.Is(err, ErrQuit) {
		t.Fatalf("err = %v, want ErrQuit", err)
	}
}

func TestOptionsPausesGame(t *testing.T) {
	h := newHarness(t, domain.DifficultyClassic)
	h.act(t, ActionStart, ActionRight)
	h.step(t, 0)
	at := h.app.Session().Snake.Head.Position

	h.act(t, ActionOptions)
	for i := 0; i < 10; i++ {
		h.step(t, domain.InitialDelay)
	}
	if got := h.app.Session().Snake.Head.Position; got != at {
		t.Fatalf("snake moved from %v to %v while in options", at, got)
	}

	h.act(t, ActionBack)
	h.step(t, domain.InitialDelay)
	if got := h.app.Session().Snake.Head.Position; got == at {
		t.Error("snake did not move after resuming")
	}
}

func TestTicksFollowDelay(t *testing.T) {
	h := newHarness(t, domain.DifficultyClassic)
	h.act(t, ActionStart, ActionRight)
	h.step(t, 0)
	if x := h.app.Session().Snake.Head.X; x != domain.Step {
		t.Fatalf("head x = %d after first tick, want %d", x, domain.Step)
	}
	h.step(t, domain.InitialDelay/2)
	if x := h.app.Session().Snake.Head.X; x != domain.Step {
		t.Fatalf("ticked early, head x = %d", x)
	}
	h.step(t, domain.InitialDelay/2)
	if x := h.app.Session().Snake.Head.X; x != 2*domain.Step {
		t.Fatalf("head x = %d, want %d", x, 2*domain.Step)
	}
}

func TestVolumeClampsAndPlops(t *testing.T) {
	h := newHarness(t, domain.DifficultyEasy)
	h.act(t, ActionUp)
	if h.app.Volume() != config.DefaultConfig().Volume {
		t.Fatal("volume changed outside options")
	}

	h.act(t, ActionOptions)
	for i := 0; i < 30; i++ {
		h.act(t, ActionRight)
	}
	if h.app.Volume() != 1 || h.audio.volume != 1 {
		t.Errorf("volume = %v, audio %v, want 1", h.app.Volume(), h.audio.volume)
	}
	for i := 0; i < 30; i++ {
		h.act(t, ActionLeft)
	}
	if h.app.Volume() != 0 {
		t.Errorf("volume = %v, want 0", h.app.Volume())
	}
	plops := 0
	for _, e := range h.audio.effects {
		if e == SoundPlop {
			plops++
		}
	}
	if plops != 60 {
		t.Errorf("%d plops, want 60", plops)
	}
}

func TestCycleDifficultyOnlyFromMenu(t *testing.T) {
	h := newHarness(t, domain.DifficultyClassic)
	h.act(t, ActionCycle)
	if h.app.Difficulty() != domain.DifficultyEasy {
		t.Fatalf("difficulty = %v, want Easy", h.app.Difficulty())
	}
	h.act(t, ActionCycle, ActionCycle, ActionCycle)
	if h.app.Difficulty() != domain.DifficultyClassic {
		t.Fatalf("difficulty = %v, want Classic after a full lap", h.app.Difficulty())
	}

	h.act(t, ActionOptions, ActionCycle)
	if h.app.Difficulty() != domain.DifficultyClassic {
		t.Error("options screen cycled the difficulty")
	}
	h.act(t, ActionBack, ActionStart)
	if h.app.Session().Difficulty.Difficulty != domain.DifficultyClassic {
		t.Errorf("session difficulty = %v", h.app.Session().Difficulty.Difficulty)
	}
}

func TestBlinkStopsWhenMenuLeft(t *testing.T) {
	h := newHarness(t, domain.DifficultyEasy)
	if !h.app.BlinkVisible() {
		t.Fatal("prompt should start visible")
	}
	h.step(t, BlinkInterval)
	if h.app.BlinkVisible() {
		t.Fatal("prompt should blink off after one interval")
	}
	h.step(t, BlinkInterval)
	if !h.app.BlinkVisible() {
		t.Fatal("prompt should blink back on")
	}

	h.act(t, ActionOptions)
	h.step(t, BlinkInterval)
	if h.app.scheduler.Pending() != 0 {
		t.Errorf("blink rescheduled itself off the menu: %d pending", h.app.scheduler.Pending())
	}
}

func TestStaleBlinkTimerIsIgnored(t *testing.T) {
	h := newHarness(t, domain.DifficultyEasy)
	h.step(t, BlinkInterval/2)

	// Leaving and re-entering the menu leaves the first timer pending.
	h.act(t, ActionOptions, ActionBack)
	if h.app.scheduler.Pending() != 2 {
		t.Fatalf("%d pending timers, want 2", h.app.scheduler.Pending())
	}
	if !h.app.BlinkVisible() {
		t.Fatal("re-entering the menu should show the prompt")
	}

	h.step(t, BlinkInterval/2)
	if !h.app.BlinkVisible() {
		t.Fatal("stale timer toggled the prompt")
	}
	if h.app.scheduler.Pending() != 1 {
		t.Fatalf("stale timer rescheduled: %d pending", h.app.scheduler.Pending())
	}

	h.step(t, BlinkInterval/2)
	if h.app.BlinkVisible() {
		t.Error("current timer should toggle the prompt")
	}
}

func TestRottenDeathAttemptsLeaderboardWithPrePenaltyScore(t *testing.T) {
	h := newHarness(t, domain.DifficultyEasy)
	h.act(t, ActionStart)

	h.killWithScore(t, 3)

	if h.prompter.calls != 1 {
		t.Fatalf("prompt calls = %d, want 1", h.prompter.calls)
	}
	if h.prompter.title != LeaderboardTitle {
		t.Errorf("title = %q", h.prompter.title)
	}
	if !strings.Contains(h.prompter.message, "[Easy] You scored 3!") {
		t.Errorf("message = %q", h.prompter.message)
	}
	if h.app.Screen() != ScreenGameOver {
		t.Fatalf("screen = %v, want game_over", h.app.Screen())
	}
	if !h.app.Prompting() {
		t.Fatal("prompt should be open")
	}

	h.act(t, ActionRetry)
	if h.app.Screen() != ScreenGameOver {
		t.Fatal("input accepted while the prompt is open")
	}

	h.prompter.submit("  ")
	board := h.scores.boards[domain.DifficultyEasy]
	if len(board) != 1 || board[0] != (store.Entry{Name: store.DefaultName, Score: 3}) {
		t.Fatalf("board = %v", board)
	}
	if h.app.LastDeath().FinalScore != 3 {
		t.Errorf("game over score = %d, want 3", h.app.LastDeath().FinalScore)
	}
	if h.app.Session().Score != 0 {
		t.Errorf("score after death = %d", h.app.Session().Score)
	}
	if h.scores.high != 3 {
		t.Errorf("high score = %d, want 3", h.scores.high)
	}

	h.act(t, ActionRetry)
	if h.app.Screen() != ScreenGame {
		t.Fatalf("retry: screen = %v", h.app.Screen())
	}
}

func TestZeroScoreDeathSkipsLeaderboard(t *testing.T) {
	h := newHarness(t, domain.DifficultyEasy)
	h.act(t, ActionStart)
	h.app.Session().Snake.Head.Position = domain.Position{X: 300}
	h.step(t, 0)
	h.step(t, DeathHold)

	if h.prompter.calls != 0 {
		t.Errorf("prompted for a zero score")
	}
	if h.app.Screen() != ScreenGameOver {
		t.Fatalf("screen = %v, want game_over", h.app.Screen())
	}
	if h.app.LastDeath().Reason != domain.DeathBoundary {
		t.Errorf("reason = %v", h.app.LastDeath().Reason)
	}
}

func TestNonQualifyingScoreSkipsPrompt(t *testing.T) {
	h := newHarness(t, domain.DifficultyEasy)
	h.scores.boards[domain.DifficultyEasy] = []store.Entry{
		{Name: "a", Score: 50}, {Name: "b", Score: 40}, {Name: "c", Score: 30},
		{Name: "d", Score: 20}, {Name: "e", Score: 10},
	}
	h.act(t, ActionStart)
	h.killWithScore(t, 4)
	if h.prompter.calls != 0 {
		t.Errorf("prompted for a score below the board")
	}
}

func TestDeathHoldsScreenAndInput(t *testing.T) {
	h := newHarness(t, domain.DifficultyEasy)
	h.act(t, ActionStart)
	h.app.Session().Obstacles = []domain.Obstacle{{Position: domain.Position{}}}
	h.step(t, 0)

	if h.app.Dying() == nil || h.app.Screen() != ScreenGame {
		t.Fatalf("dying = %v screen = %v", h.app.Dying(), h.app.Screen())
	}
	if off := h.app.HeadOffset(); off.X != -10 {
		t.Errorf("first wiggle offset = %v, want -10", off)
	}
	h.act(t, ActionOptions)
	if h.app.Screen() != ScreenGame {
		t.Error("options opened during the death animation")
	}
	if last := h.audio.effects[len(h.audio.effects)-1]; last != SoundDeath {
		t.Errorf("last effect = %s, want death", last)
	}

	h.step(t, DeathHold-time.Millisecond)
	if h.app.Screen() != ScreenGame {
		t.Fatal("left the game screen before the hold ended")
	}
	h.step(t, time.Millisecond)
	if h.app.Screen() != ScreenGameOver {
		t.Fatalf("screen = %v, want game_over", h.app.Screen())
	}
	h.act(t, ActionMainMenu)
	if h.app.Screen() != ScreenMenu {
		t.Fatalf("screen = %v, want menu", h.app.Screen())
	}
}

func TestEatingSavesHighScoreAndBlinksSpawn(t *testing.T) {
	h := newHarness(t, domain.DifficultyClassic)
	h.act(t, ActionStart)
	s := h.app.Session()
	s.Lemon.Position = s.Snake.Head.Position
	h.step(t, 0)

	if h.scores.high != 1 || h.scores.saves != 1 {
		t.Errorf("high = %d saves = %d", h.scores.high, h.scores.saves)
	}
	wantEffects := []string{SoundBite, SoundPlop}
	if len(h.audio.effects) != 2 || h.audio.effects[0] != wantEffects[0] || h.audio.effects[1] != wantEffects[1] {
		t.Errorf("effects = %v, want %v", h.audio.effects, wantEffects)
	}

	if !h.app.FoodVisible(&s.Lemon) {
		t.Error("lemon should be visible on the first blink phase")
	}
	h.clock.Advance(SpawnBlink / 20)
	if h.app.FoodVisible(&s.Lemon) {
		t.Error("lemon should be hidden on the second blink phase")
	}
	h.clock.Advance(SpawnBlink)
	if !h.app.FoodVisible(&s.Lemon) {
		t.Error("lemon should be visible once the blink ends")
	}
}

func TestReverseRemaining(t *testing.T) {
	h := newHarness(t, domain.DifficultyEasy)
	h.act(t, ActionStart)
	s := h.app.Session()
	s.Apple.Place(s.Snake.Head.Position)
	h.step(t, 0)

	if got := h.app.ReverseRemaining(); got != domain.ReverseControlsDuration {
		t.Errorf("remaining = %v, want %v", got, domain.ReverseControlsDuration)
	}
	h.act(t, ActionUp)
	if s.Snake.Head.Direction != domain.DirectionDown {
		t.Errorf("up under reverse controls = %v, want down", s.Snake.Head.Direction)
	}
}

func TestMuteUsesSilentAudio(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Mute = true
	audio := &recordingAudio{}
	a := New(Options{Config: cfg, Audio: audio, Random: rand.New(rand.NewSource(1))})
	a.Start()
	a.Shutdown()
	if len(audio.music) != 0 || audio.stops != 0 {
		t.Errorf("muted app used audio: %+v", audio)
	}
}

func TestWithRealStore(t *testing.T) {
	st, err := store.New(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.SaveScore(42); err != nil {
		t.Fatal(err)
	}
	a := New(Options{Scores: st, Random: rand.New(rand.NewSource(1))})
	if a.HighScore() != 42 {
		t.Errorf("high score = %d, want 42 from disk", a.HighScore())
	}
}

func TestVolumeGauge(t *testing.T) {
	cases := map[float64]string{
		0:    "[--------------------] 0%",
		0.5:  "[##########----------] 50%",
		0.05: "[#-------------------] 5%",
		1:    "[####################] 100%",
	}
	for level, want := range cases {
		if got := VolumeGauge(level); got != want {
			t.Errorf("VolumeGauge(%v) = %q, want %q", level, got, want)
		}
	}
}
