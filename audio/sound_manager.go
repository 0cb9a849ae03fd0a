package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sasha-s/go-deadlock"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager manages all game audio
// Every method is a no-op until Initialize succeeds, the game runs silently without a device
type SoundManager struct {
	mu          deadlock.Mutex
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool

	lastPlayed [soundTypeCount]time.Time
	seed       uint64
	now        func() time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer: mixer,
		ctrl:  &beep.Ctrl{Streamer: mixer},
		seed:  1,
		now:   time.Now,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.ctrl)
	sm.initialized = true
	log.Printf("[audio] speaker initialized at %d Hz", sampleRate)
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.ctrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// IsInitialized reports whether a speaker is attached
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetPaused mutes or resumes the whole mix
func (sm *SoundManager) SetPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.ctrl.Paused = paused
	speaker.Unlock()
}

// Play queues a one-shot effect, repeats within minSoundGap are dropped
func (sm *SoundManager) Play(sound SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sound < 0 || sound >= soundTypeCount {
		return
	}

	if !sm.allow(sound, sm.now()) {
		return
	}

	sm.seed++
	streamer := newEffect(sound, sampleRate, sm.seed)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// allow records a play of sound at now, false when the last one was under minSoundGap ago
// Caller holds sm.mu
func (sm *SoundManager) allow(sound SoundType, now time.Time) bool {
	if now.Sub(sm.lastPlayed[sound]) < minSoundGap {
		return false
	}
	sm.lastPlayed[sound] = now
	return true
}
