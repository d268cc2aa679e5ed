package app

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"catchthatlemon/internal/config"
	"catchthatlemon/internal/domain"
	"catchthatlemon/internal/store"
)

const (
	BlinkInterval    = 500 * time.Millisecond
	SpawnBlink       = 250 * time.Millisecond
	BiteDuration     = 40 * time.Millisecond
	BiteReach        = 10
	WiggleFrame      = 30 * time.Millisecond
	DeathPause       = time.Second
	VolumeStep       = 0.05
	LeaderboardTitle = "New Leaderboard Score!"
)

var wiggle = []int{-10, 10, -8, 8, -5, 5, 0}

// DeathHold is how long the game screen stays up after a fatal tick.
var DeathHold = time.Duration(len(wiggle))*WiggleFrame + DeathPause

type Options struct {
	Config   *config.Config
	Scores   Scores
	Audio    Audio
	Prompter Prompter
	Random   domain.Random
	Now      func() time.Time
}

// App owns the screen state machine and drives the session from a single
// goroutine. Front ends feed it actions and call Update once per frame.
type App struct {
	scores   Scores
	audio    Audio
	prompter Prompter
	now      func() time.Time

	screen     Screen
	difficulty domain.Difficulty
	volume     float64
	session    *domain.Session
	scheduler  Scheduler

	nextTick  time.Time
	biteUntil time.Time
	spawning  map[*domain.Food]time.Time

	dying     *domain.DeathReport
	dyingFrom time.Time
	lastDeath *domain.DeathReport

	blinkToken   int
	blinkVisible bool

	prompting   bool
	leaderboard []store.Entry
	quit        bool
}

func New(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rng := opts.Random
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	audio := opts.Audio
	if audio == nil || cfg.Mute {
		audio = nopAudio{}
	}

	a := &App{
		scores:     opts.Scores,
		audio:      audio,
		prompter:   opts.Prompter,
		now:        now,
		screen:     ScreenMenu,
		difficulty: cfg.Difficulty,
		volume:     cfg.Volume,
		spawning:   make(map[*domain.Food]time.Time),
	}
	a.session = domain.NewSession(cfg.Difficulty, a.loadHighScore(), rng, now)
	return a
}

// Start shows the main menu.
func (a *App) Start() {
	a.audio.SetVolume(a.volume)
	a.enterMenu()
	log.Printf("App started, difficulty %s, high score %d", a.difficulty, a.session.HighScore)
}

func (a *App) Shutdown() {
	a.scheduler.Clear()
	a.audio.StopMusic()
	log.Println("App stopped")
}

// Update runs due timers and advances the game when a tick is due.
func (a *App) Update() error {
	if a.quit {
		return ErrQuit
	}
	now := a.now()
	a.scheduler.RunDue(now)

	if a.screen != ScreenGame || a.dying != nil || !a.session.Running {
		return nil
	}
	if now.Before(a.nextTick) {
		return nil
	}
	a.applyTick(now, a.session.Tick())
	a.nextTick = now.Add(a.session.Delay)
	return nil
}

// HandleAction applies one input; inputs that mean nothing on the current
// screen are dropped.
func (a *App) HandleAction(action Action) error {
	if action == ActionQuit {
		a.quit = true
		return ErrQuit
	}
	if a.prompting || a.dying != nil || action == ActionNone {
		return nil
	}

	switch a.screen {
	case ScreenMenu:
		switch action {
		case ActionStart:
			a.startGame()
		case ActionOptions:
			a.enterOptions()
		case ActionCycle:
			a.cycleDifficulty()
		case ActionBack:
			a.quit = true
			return ErrQuit
		}
	case ScreenOptions:
		switch action {
		case ActionUp, ActionRight:
			a.changeVolume(VolumeStep)
		case ActionDown, ActionLeft:
			a.changeVolume(-VolumeStep)
		case ActionBack:
			a.leaveOptions()
		}
	case ScreenGame:
		if dir, ok := action.Direction(); ok {
			a.session.Steer(dir)
			return nil
		}
		if action == ActionOptions {
			a.enterOptions()
		}
	case ScreenGameOver:
		switch action {
		case ActionRetry:
			a.startGame()
		case ActionMainMenu:
			a.enterMenu()
		}
	}
	return nil
}

func (a *App) setScreen(s Screen) {
	if a.screen != s {
		log.Printf("Screen %s -> %s", a.screen, s)
	}
	a.screen = s
}

func (a *App) enterMenu() {
	a.setScreen(ScreenMenu)
	a.audio.PlayMusic(MusicMenu)
	a.leaderboard = a.loadLeaderboard()

	a.blinkToken++
	a.blinkVisible = true
	a.scheduleBlink(a.blinkToken)
}

func (a *App) scheduleBlink(token int) {
	a.scheduler.At(a.now().Add(BlinkInterval), func() {
		if token != a.blinkToken || a.screen != ScreenMenu {
			return
		}
		a.blinkVisible = !a.blinkVisible
		a.scheduleBlink(token)
	})
}

func (a *App) enterOptions() {
	a.setScreen(ScreenOptions)
	a.audio.PlayMusic(MusicMenu)
	a.leaderboard = a.loadLeaderboard()
}

func (a *App) leaveOptions() {
	if a.session.Running {
		a.setScreen(ScreenGame)
		a.audio.PlayMusic(MusicGame)
		a.nextTick = a.now().Add(a.session.Delay)
		return
	}
	a.enterMenu()
}

func (a *App) changeVolume(delta float64) {
	v := a.volume + delta
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	a.volume = v
	a.audio.SetVolume(v)
	a.audio.PlayEffect(SoundPlop)
}

func (a *App) cycleDifficulty() {
	next := a.difficulty.Next()
	if err := a.session.SetDifficulty(next); err != nil {
		log.Printf("Difficulty change refused: %v", err)
		return
	}
	a.difficulty = next
	a.leaderboard = a.loadLeaderboard()
	a.audio.PlayEffect(SoundPlop)
}

func (a *App) startGame() {
	a.audio.StopMusic()
	a.audio.PlayMusic(MusicGame)
	a.spawning = make(map[*domain.Food]time.Time)
	a.biteUntil = time.Time{}
	a.lastDeath = nil

	a.session.Start()
	a.setScreen(ScreenGame)
	a.nextTick = a.now()
	log.Printf("Game started on %s with %d obstacles", a.difficulty, len(a.session.Obstacles))
}

func (a *App) applyTick(now time.Time, res *domain.TickResult) {
	for _, e := range res.Effects {
		if name, ok := effectSounds[e]; ok {
			a.audio.PlayEffect(name)
		}
	}
	for _, f := range res.Spawned {
		a.spawning[f] = now
	}
	for _, kind := range res.Eaten {
		if kind == domain.FoodLemon {
			a.biteUntil = now.Add(BiteDuration)
		}
	}
	if res.HighScore {
		a.saveHighScore()
	}
	if res.Death != nil {
		a.beginDeath(now, res.Death)
	}
}

func (a *App) beginDeath(now time.Time, report *domain.DeathReport) {
	log.Printf("Snake %s at %v with score %d", report.Reason, report.At, report.FinalScore)
	a.dying = report
	a.dyingFrom = now
	a.spawning = make(map[*domain.Food]time.Time)
	a.scheduler.At(now.Add(DeathHold), func() {
		a.finishDeath(report)
	})
}

func (a *App) finishDeath(report *domain.DeathReport) {
	a.dying = nil
	a.lastDeath = report
	if report.FinalScore > 0 {
		a.checkLeaderboard(report.Difficulty, report.FinalScore)
		a.saveHighScore()
	}
	a.setScreen(ScreenGameOver)
}

func (a *App) checkLeaderboard(d domain.Difficulty, score int) {
	if a.scores == nil {
		return
	}
	entries := a.scores.LoadLeaderboard(d)
	if !store.Qualifies(entries, score) {
		return
	}
	submit := func(answer string) {
		a.prompting = false
		board := store.Insert(entries, answer, score)
		if err := a.scores.SaveLeaderboard(d, board); err != nil {
			log.Printf("Failed to save leaderboard: %v", err)
		}
		if d == a.difficulty {
			a.leaderboard = board
		}
	}
	if a.prompter == nil {
		submit("")
		return
	}
	a.prompting = true
	a.prompter.Prompt(LeaderboardTitle, fmt.Sprintf("[%s] You scored %d!\nEnter your name:", d, score), submit)
}

func (a *App) loadHighScore() int {
	if a.scores == nil {
		return 0
	}
	return a.scores.LoadScore()
}

func (a *App) saveHighScore() {
	if a.scores == nil {
		return
	}
	if err := a.scores.SaveScore(a.session.HighScore); err != nil {
		log.Printf("Failed to save high score: %v", err)
	}
}

func (a *App) loadLeaderboard() []store.Entry {
	if a.scores == nil {
		return nil
	}
	return a.scores.LoadLeaderboard(a.difficulty)
}
