package game

import (
	"bytes"
	"log"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/absolutebasti/Pac-Man/internal/round"
)

const sampleRate = 44100

type SoundData struct {
	raw []byte
}

type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveSaw
)

// tone describes a synthesized fallback sound. The frequency glides
// linearly from freq to endFreq.
type tone struct {
	file       string
	durationMs int
	freq       float64
	endFreq    float64
	wave       waveform
	gain       float64
}

var cueTones = map[round.EventKind]tone{
	round.CuePellet:      {file: "pellet.wav", durationMs: 50, freq: 440, endFreq: 440, wave: waveSquare, gain: 0.1},
	round.CuePowerPellet: {file: "power.wav", durationMs: 200, freq: 200, endFreq: 200, wave: waveSine, gain: 0.25},
	round.CueGhostEaten:  {file: "ghost.wav", durationMs: 300, freq: 800, endFreq: 800, wave: waveSquare, gain: 0.2},
	round.CuePlayerDied:  {file: "death.wav", durationMs: 1000, freq: 800, endFreq: 100, wave: waveSaw, gain: 0.25},
}

// AudioManager maps round cues to sounds. A nil context makes every call a
// no-op, so the game runs the same with audio off.
type AudioManager struct {
	ctx    *audio.Context
	sounds map[round.EventKind]*SoundData
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

func getAudioContext(enabled bool) *audio.Context {
	if !enabled {
		return nil
	}
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

// NewAudioManager loads WAV files from soundsDir and synthesizes a tone for
// any that are missing.
func NewAudioManager(soundsDir string, enabled bool) *AudioManager {
	if soundsDir == "" {
		soundsDir = "assets/sounds"
	}
	am := &AudioManager{
		ctx:    getAudioContext(enabled),
		sounds: make(map[round.EventKind]*SoundData, len(cueTones)),
	}
	for kind, t := range cueTones {
		sd, err := loadSoundData(soundsDir, t.file)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Printf("audio: %v", err)
			}
			sd = &SoundData{raw: synthWAV(sampleRate, t)}
		}
		am.sounds[kind] = sd
	}
	return am
}

func loadSoundData(dir, file string) (*SoundData, error) {
	b, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return nil, err
	}
	return &SoundData{raw: b}, nil
}

// Cue plays the sound for a cue event. Other kinds are ignored.
func (am *AudioManager) Cue(kind round.EventKind) {
	if am == nil {
		return
	}
	am.play(am.sounds[kind])
}

func (am *AudioManager) play(sd *SoundData) {
	if am == nil || am.ctx == nil || sd == nil || len(sd.raw) == 0 {
		return
	}
	// Decode from bytes each time to allow overlapping plays
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(sd.raw))
	if err != nil {
		return
	}
	p, err := am.ctx.NewPlayer(stream)
	if err != nil {
		return
	}
	p.Play()
}

// synthWAV returns a 16-bit PCM mono WAV of t.
func synthWAV(rate int, t tone) []byte {
	numSamples := int(float64(rate) * float64(t.durationMs) / 1000.0)
	// WAV header (44 bytes)
	byteRate := rate * 2 // mono 16-bit
	blockAlign := 2
	dataSize := numSamples * 2
	totalSize := 44 + dataSize
	buf := make([]byte, totalSize)
	// RIFF header
	copy(buf[0:4], []byte{'R', 'I', 'F', 'F'})
	putLE32(buf[4:8], uint32(totalSize-8))
	copy(buf[8:12], []byte{'W', 'A', 'V', 'E'})
	// fmt chunk
	copy(buf[12:16], []byte{'f', 'm', 't', ' '})
	putLE32(buf[16:20], 16) // PCM chunk size
	putLE16(buf[20:22], 1)  // PCM format
	putLE16(buf[22:24], 1)  // channels
	putLE32(buf[24:28], uint32(rate))
	putLE32(buf[28:32], uint32(byteRate))
	putLE16(buf[32:34], uint16(blockAlign))
	putLE16(buf[34:36], 16) // bits per sample
	// data chunk
	copy(buf[36:40], []byte{'d', 'a', 't', 'a'})
	putLE32(buf[40:44], uint32(dataSize))

	phase := 0.0
	for i := 0; i < numSamples; i++ {
		frac := float64(i) / float64(numSamples)
		freq := t.freq + (t.endFreq-t.freq)*frac
		phase += freq / float64(rate)
		phase -= math.Floor(phase)

		var s float64
		switch t.wave {
		case waveSquare:
			s = 1
			if phase >= 0.5 {
				s = -1
			}
		case waveSaw:
			s = 2*phase - 1
		default:
			s = math.Sin(2 * math.Pi * phase)
		}
		// Linear fade-out avoids a click at the end.
		v := int16(s * 32767.0 * t.gain * (1 - frac))
		off := 44 + i*2
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
	}
	return buf
}

func putLE16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
