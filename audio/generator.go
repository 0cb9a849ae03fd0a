package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/space-miner/vmath"
)

// BlipGenerator generates a short rising sine chirp
type BlipGenerator struct {
	sr        beep.SampleRate
	pos       int
	startFreq float64
	endFreq   float64
	samples   int
	phase     float64
}

// NewBlipGenerator creates a blip sweeping from startFreq to endFreq over d
func NewBlipGenerator(sr beep.SampleRate, startFreq, endFreq float64, d time.Duration) *BlipGenerator {
	return &BlipGenerator{
		sr:        sr,
		startFreq: startFreq,
		endFreq:   endFreq,
		samples:   max(sr.N(d), 1),
	}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)
		freq := g.startFreq + (g.endFreq-g.startFreq)*progress

		// Phase accumulation keeps the sweep click-free
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		envelope := 1 - progress
		sample := 0.25 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}

// ChimeGenerator plays a sequence of notes, each with a bell envelope
type ChimeGenerator struct {
	sr          beep.SampleRate
	pos         int
	notes       []float64
	noteSamples int
}

// NewChimeGenerator creates a chime stepping through notes, each lasting noteDuration
func NewChimeGenerator(sr beep.SampleRate, notes []float64, noteDuration time.Duration) *ChimeGenerator {
	return &ChimeGenerator{
		sr:          sr,
		notes:       notes,
		noteSamples: max(sr.N(noteDuration), 1),
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if len(g.notes) == 0 {
		return 0, false
	}
	for i := range samples {
		note := (g.pos / g.noteSamples) % len(g.notes)
		notePos := g.pos % g.noteSamples
		t := float64(notePos) / float64(g.sr)

		freq := g.notes[note]
		envelope := math.Exp(-t * 12)
		sample := 0.2 * envelope * (math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// NoiseBurstGenerator generates decaying noise over a low rumble
type NoiseBurstGenerator struct {
	sr   beep.SampleRate
	pos  int
	rand *vmath.FastRand
}

// NewNoiseBurstGenerator creates a crash sound generator
func NewNoiseBurstGenerator(sr beep.SampleRate, seed uint64) *NoiseBurstGenerator {
	return &NoiseBurstGenerator{
		sr:   sr,
		rand: vmath.NewFastRand(seed),
	}
}

func (g *NoiseBurstGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, slower decay
		envelope := math.Exp(-t * 6)
		noise := float64(g.rand.Intn(2001))/1000 - 1
		rumble := 0.4 * math.Sin(2*math.Pi*55*t)

		sample := 0.35 * envelope * (0.6*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseBurstGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Odd harmonics for a harsh edge
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*3*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*5*t)

		// Fade in to avoid a click
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// newEffect builds the finite streamer for a sound type
func newEffect(sound SoundType, sr beep.SampleRate, seed uint64) beep.Streamer {
	switch sound {
	case SoundMine:
		return beep.Take(sr.N(mineDuration), NewBlipGenerator(sr, 660, 1320, mineDuration))
	case SoundRefuel:
		// C6 E6 G6
		notes := []float64{1046.5, 1318.5, 1568.0}
		return beep.Take(sr.N(refuelDuration), NewChimeGenerator(sr, notes, refuelDuration/time.Duration(len(notes))))
	case SoundCrash:
		return beep.Take(sr.N(crashDuration), NewNoiseBurstGenerator(sr, seed))
	case SoundLowFuel:
		return beep.Take(sr.N(lowFuelDuration), NewBuzzGenerator(sr, 110))
	default:
		return nil
	}
}
