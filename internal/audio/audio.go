package audio

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

type stream interface {
	io.ReadSeeker
	Length() int64
}

// Player plays music and effects from a directory through ebiten's audio
// context. Effects are decoded once and replayed from memory.
type Player struct {
	ctx     *ebaudio.Context
	dir     string
	effects map[string][]byte
	volume  float64

	music     *ebaudio.Player
	musicName string
}

func New(dir string, effects []string) *Player {
	p := &Player{
		ctx:     ebaudio.NewContext(SampleRate),
		dir:     dir,
		effects: make(map[string][]byte, len(effects)),
		volume:  1,
	}
	for _, name := range effects {
		s, err := p.decode(name)
		if err != nil {
			log.Printf("Warning: sound %s unavailable: %v", name, err)
			continue
		}
		pcm, err := io.ReadAll(s)
		if err != nil {
			log.Printf("Warning: sound %s unreadable: %v", name, err)
			continue
		}
		p.effects[name] = pcm
	}
	log.Printf("Audio ready with %d effects from %s", len(p.effects), dir)
	return p
}

func (p *Player) decode(name string) (stream, error) {
	data, err := os.ReadFile(filepath.Join(p.dir, name))
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav":
		return wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	case ".mp3":
		return mp3.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	}
	return nil, fmt.Errorf("unsupported audio format %q", filepath.Ext(name))
}

func (p *Player) PlayEffect(name string) {
	pcm, ok := p.effects[name]
	if !ok {
		return
	}
	player := p.ctx.NewPlayerFromBytes(pcm)
	player.Play()
}

// PlayMusic loops name forever; asking for the track already playing is a no-op.
func (p *Player) PlayMusic(name string) {
	if p.music != nil && p.musicName == name && p.music.IsPlaying() {
		return
	}
	p.StopMusic()

	s, err := p.decode(name)
	if err != nil {
		log.Printf("Warning: music %s unavailable: %v", name, err)
		return
	}
	player, err := p.ctx.NewPlayer(ebaudio.NewInfiniteLoop(s, s.Length()))
	if err != nil {
		log.Printf("Failed to start music %s: %v", name, err)
		return
	}
	player.SetVolume(p.volume)
	player.Play()
	p.music = player
	p.musicName = name
}

func (p *Player) StopMusic() {
	if p.music == nil {
		return
	}
	if err := p.music.Close(); err != nil {
		log.Printf("Failed to stop music: %v", err)
	}
	p.music = nil
	p.musicName = ""
}

// SetVolume sets the music volume; effects always play at full volume.
func (p *Player) SetVolume(level float64) {
	p.volume = level
	if p.music != nil {
		p.music.SetVolume(level)
	}
}
