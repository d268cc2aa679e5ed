package app

import (
	"errors"

	"catchthatlemon/internal/domain"
	"catchthatlemon/internal/store"
)

var ErrQuit = errors.New("quit requested")

type Screen int

const (
	ScreenMenu Screen = iota
	ScreenOptions
	ScreenGame
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenOptions:
		return "options"
	case ScreenGame:
		return "game"
	case ScreenGameOver:
		return "game_over"
	}
	return "unknown"
}

type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionStart
	ActionOptions
	ActionBack
	ActionCycle
	ActionRetry
	ActionMainMenu
	ActionQuit
)

func (a Action) Direction() (domain.Direction, bool) {
	switch a {
	case ActionUp:
		return domain.DirectionUp, true
	case ActionDown:
		return domain.DirectionDown, true
	case ActionLeft:
		return domain.DirectionLeft, true
	case ActionRight:
		return domain.DirectionRight, true
	}
	return domain.DirectionStopped, false
}

// Audio plays music and effects by file name; calls never fail.
type Audio interface {
	PlayEffect(name string)
	PlayMusic(name string)
	StopMusic()
	SetVolume(level float64)
}

// Prompter asks the player for a line of text. submit must be called from
// the game loop goroutine, at most once.
type Prompter interface {
	Prompt(title, message string, submit func(answer string))
}

// Scores is the persistence the game needs; *store.Store implements it.
type Scores interface {
	LoadScore() int
	SaveScore(score int) error
	LoadLeaderboard(d domain.Difficulty) []store.Entry
	SaveLeaderboard(d domain.Difficulty, entries []store.Entry) error
}

const (
	MusicMenu = "Menu_Music.mp3"
	MusicGame = "Game_BGM2.wav"

	SoundPlop  = "Plop.wav"
	SoundBite  = "Bite.wav"
	SoundDeath = "Death.wav"
	SoundHmmm  = "Hmmm.wav"
	SoundBlegh = "Blegh.wav"
)

var effectSounds = map[domain.Effect]string{
	domain.EffectPlop:  SoundPlop,
	domain.EffectBite:  SoundBite,
	domain.EffectDeath: SoundDeath,
	domain.EffectHmmm:  SoundHmmm,
	domain.EffectBlegh: SoundBlegh,
}

// EffectFiles lists the short sounds worth decoding up front.
func EffectFiles() []string {
	return []string{SoundPlop, SoundBite, SoundDeath, SoundHmmm, SoundBlegh}
}

type nopAudio struct{}

func (nopAudio) PlayEffect(string) {}
func (nopAudio) PlayMusic(string)  {}
func (nopAudio) StopMusic()        {}
func (nopAudio) SetVolume(float64) {}
