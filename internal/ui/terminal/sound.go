package terminal

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays the game audio through the system speaker. When the speaker
// cannot be opened every call is a no-op.
type Sound struct {
	mu          sync.Mutex
	dir         string
	mixer       *beep.Mixer
	effects     map[string]*beep.Buffer
	music       *beep.Ctrl
	musicVolume *effects.Volume
	musicFile   *os.File
	musicName   string
	volume      float64
	initialized bool
}

func NewSound(dir string, effectFiles []string) *Sound {
	s := &Sound{
		dir:     dir,
		mixer:   &beep.Mixer{},
		effects: make(map[string]*beep.Buffer, len(effectFiles)),
		volume:  1,
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		log.Printf("Warning: audio disabled: %v", err)
		return s
	}
	speaker.Play(s.mixer)
	s.initialized = true

	for _, name := range effectFiles {
		buf, err := s.load(name)
		if err != nil {
			log.Printf("Warning: sound %s unavailable: %v", name, err)
			continue
		}
		s.effects[name] = buf
	}
	log.Printf("Speaker ready with %d effects from %s", len(s.effects), dir)
	return s
}

func (s *Sound) open(name string) (beep.StreamSeekCloser, beep.Format, *os.File, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return nil, beep.Format{}, nil, err
	}
	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	default:
		err = fmt.Errorf("unsupported audio format %q", filepath.Ext(name))
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, nil, err
	}
	return stream, format, f, nil
}

// load decodes a whole file into memory at the speaker rate.
func (s *Sound) load(name string) (*beep.Buffer, error) {
	stream, format, f, err := s.open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	defer stream.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Resample(4, format.SampleRate, sampleRate, stream))
	return buf, nil
}

func (s *Sound) PlayEffect(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, ok := s.effects[name]
	if !ok || !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// PlayMusic loops name forever; asking for the track already playing is a no-op.
func (s *Sound) PlayMusic(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || (s.music != nil && s.musicName == name) {
		return
	}
	s.stopMusicLocked()

	stream, format, f, err := s.open(name)
	if err != nil {
		log.Printf("Warning: music %s unavailable: %v", name, err)
		return
	}
	looped := beep.Resample(4, format.SampleRate, sampleRate, beep.Loop(-1, stream))
	s.musicVolume = volumeFor(looped, s.volume)
	s.music = &beep.Ctrl{Streamer: s.musicVolume}
	s.musicFile = f
	s.musicName = name

	speaker.Lock()
	s.mixer.Add(s.music)
	speaker.Unlock()
}

func (s *Sound) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopMusicLocked()
}

func (s *Sound) stopMusicLocked() {
	if s.music == nil {
		return
	}
	speaker.Lock()
	s.music.Paused = true
	s.music.Streamer = nil
	speaker.Unlock()

	if err := s.musicFile.Close(); err != nil {
		log.Printf("Failed to close music %s: %v", s.musicName, err)
	}
	s.music = nil
	s.musicVolume = nil
	s.musicFile = nil
	s.musicName = ""
}

// SetVolume sets the music volume; effects always play at full volume.
func (s *Sound) SetVolume(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.volume = level
	if s.musicVolume == nil {
		return
	}
	speaker.Lock()
	applyVolume(s.musicVolume, level)
	speaker.Unlock()
}

func (s *Sound) Close() {
	s.StopMusic()
	if s.initialized {
		speaker.Clear()
		speaker.Close()
		s.initialized = false
	}
}

func volumeFor(stream beep.Streamer, level float64) *effects.Volume {
	v := &effects.Volume{Streamer: stream, Base: 2}
	applyVolume(v, level)
	return v
}

// applyVolume maps a linear level onto beep's logarithmic scale; zero is silence.
func applyVolume(v *effects.Volume, level float64) {
	if level <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(level)
	v.Silent = false
}
