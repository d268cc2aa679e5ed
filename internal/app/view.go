package app

import (
	"fmt"
	"math"
	"strings"
	"time"

	"catchthatlemon/internal/domain"
	"catchthatlemon/internal/store"
)

// Read-only accessors for renderers.

func (a *App) Screen() Screen {
	return a.screen
}

func (a *App) Session() *domain.Session {
	return a.session
}

func (a *App) Difficulty() domain.Difficulty {
	return a.difficulty
}

func (a *App) Volume() float64 {
	return a.volume
}

func (a *App) HighScore() int {
	return a.session.HighScore
}

func (a *App) BlinkVisible() bool {
	return a.blinkVisible
}

func (a *App) Prompting() bool {
	return a.prompting
}

func (a *App) Leaderboard() []store.Entry {
	return a.leaderboard
}

// Dying is non-nil while the death animation plays.
func (a *App) Dying() *domain.DeathReport {
	return a.dying
}

// LastDeath is the run shown on the game over screen.
func (a *App) LastDeath() *domain.DeathReport {
	return a.lastDeath
}

// HeadOffset is the cosmetic displacement of the head sprite for the bite
// and death shake animations.
func (a *App) HeadOffset() domain.Position {
	now := a.now()
	if a.dying != nil {
		frame := int(now.Sub(a.dyingFrom) / WiggleFrame)
		if frame < len(wiggle) {
			return domain.Position{X: wiggle[frame]}
		}
		return domain.Position{}
	}
	if now.Before(a.biteUntil) {
		d := a.session.Snake.Head.Direction.Delta()
		return domain.Position{X: d.X * BiteReach / domain.Step, Y: d.Y * BiteReach / domain.Step}
	}
	return domain.Position{}
}

// FoodVisible is false on the off phases of a fresh spawn's blink.
func (a *App) FoodVisible(f *domain.Food) bool {
	if !f.Active {
		return false
	}
	start, ok := a.spawning[f]
	if !ok {
		return true
	}
	elapsed := a.now().Sub(start)
	if elapsed >= SpawnBlink {
		delete(a.spawning, f)
		return true
	}
	phase := int(elapsed * 20 / SpawnBlink)
	return phase%2 == 0
}

func (a *App) ReverseRemaining() time.Duration {
	r := a.session.Reverse
	if !r.Active {
		return 0
	}
	left := r.Until.Sub(a.now())
	if left < 0 {
		return 0
	}
	return left
}

const gaugeWidth = 20

// VolumeGauge renders level as a fixed width bar with a percentage,
// e.g. "[##########----------] 50%".
func VolumeGauge(level float64) string {
	filled := int(math.Round(level * gaugeWidth))
	filled = max(0, min(gaugeWidth, filled))
	return fmt.Sprintf("[%s%s] %d%%",
		strings.Repeat("#", filled),
		strings.Repeat("-", gaugeWidth-filled),
		int(math.Round(level*100)))
}
