// Package generation fabricates the script, voice and instrumental results returned by the
// /api/ai endpoints. Nothing is actually synthesized: each call waits a randomized delay and
// returns a templated, partially randomized document.
package generation

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"realartist-backend/internal/models"
)

const (
	DefaultDuration = 240
	DefaultKey      = "C Major"

	voiceModelVersion        = "RealArtist-Voice-v3.2"
	instrumentalModelVersion = "RealArtist-Instrumental-v4.1"
)

// latencyRange is a uniform delay window.
type latencyRange struct {
	min, spread time.Duration
}

var (
	scriptLatency       = latencyRange{1500 * time.Millisecond, 2000 * time.Millisecond}
	voiceLatency        = latencyRange{2000 * time.Millisecond, 4000 * time.Millisecond}
	instrumentalLatency = latencyRange{3000 * time.Millisecond, 5000 * time.Millisecond}
)

var (
	keys           = []string{"C Major", "G Major", "F Major", "Am", "Dm"}
	timeSignatures = []string{"4/4", "3/4", "6/8"}
	lyricalThemes  = []string{"love", "life", "dreams", "journey", "emotion"}

	defaultInstruments = []string{
		"acoustic_guitar", "electric_guitar", "bass", "drums",
		"piano", "strings", "synth_pad", "lead_synth",
	}
)

// Locator turns an object path into a public URL. assets.Store satisfies it.
type Locator interface {
	PublicURL(path string) string
}

// Sleeper waits for d or until ctx is done, whichever comes first.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the real-time Sleeper.
func SleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoSleep skips the artificial latency but still honors cancellation.
func NoSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

type Simulator struct {
	locator Locator
	sleep   Sleeper
	now     func() time.Time
	newID   func() string

	mu  sync.Mutex
	rnd *rand.Rand
}

type Option func(*Simulator)

func WithSleeper(s Sleeper) Option {
	return func(sim *Simulator) { sim.sleep = s }
}

// WithSeed makes the random choices reproducible.
func WithSeed(seed uint64) Option {
	return func(sim *Simulator) { sim.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

func WithClock(now func() time.Time) Option {
	return func(sim *Simulator) { sim.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(sim *Simulator) { sim.newID = newID }
}

func NewSimulator(locator Locator, opts ...Option) *Simulator {
	sim := &Simulator{
		locator: locator,
		sleep:   SleepContext,
		now:     time.Now,
		newID:   func() string { return uuid.NewString()[:8] },
		rnd:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(sim)
	}
	return sim
}

func (s *Simulator) float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

func (s *Simulator) pick(options []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return options[s.rnd.IntN(len(options))]
}

// wait sleeps for a random duration inside r and returns the chosen delay.
func (s *Simulator) wait(ctx context.Context, r latencyRange) (time.Duration, error) {
	d := r.min + time.Duration(s.float()*float64(r.spread))
	if err := s.sleep(ctx, d); err != nil {
		return 0, err
	}
	return d, nil
}

func (s *Simulator) assetID(kind string) string {
	return fmt.Sprintf("%s_%d_%s", kind, s.now().UnixMilli(), s.newID())
}

func (s *Simulator) url(format string, args ...any) string {
	return s.locator.PublicURL(fmt.Sprintf(format, args...))
}

// Script splits the lyrics into a nine-section song structure.
func (s *Simulator) Script(ctx context.Context, req models.GenerateScriptRequest) (*models.ScriptResult, error) {
	if _, err := s.wait(ctx, scriptLatency); err != nil {
		return nil, err
	}

	timeSignature := "4/4"
	if req.Genre != "electronic" {
		timeSignature = s.pick(timeSignatures)
	}

	totalDuration := req.Duration
	if totalDuration == 0 {
		totalDuration = DefaultDuration
	}

	return &models.ScriptResult{
		Structure:     BuildStructure(req.Lyrics),
		TotalDuration: totalDuration,
		Key:           s.pick(keys),
		TimeSignature: timeSignature,
		Tempo:         ScriptTempo(req.Tempo, req.Genre),
		Mood:          req.Mood,
		Genre:         req.Genre,
		AiAnalysis: models.ScriptAnalysis{
			LyricalThemes:    s.pick(lyricalThemes),
			EnergyLevel:      EnergyLevel(req.Mood),
			Complexity:       "professional",
			CommercialAppeal: "high",
		},
	}, nil
}

// ScriptTempo returns the requested tempo, or a genre default when none was given.
func ScriptTempo(tempo int, genre string) int {
	if tempo != 0 {
		return tempo
	}
	switch genre {
	case "electronic":
		return 128
	case "ballad":
		return 70
	default:
		return models.DefaultTempo
	}
}

func EnergyLevel(mood string) string {
	switch mood {
	case "energetic":
		return "high"
	case "melancholic":
		return "low"
	default:
		return "medium"
	}
}

// BuildStructure lays the non-blank lyric lines out over the fixed section template. Each
// block spans ceil(lines/6) lines; the choruses repeat the same block and the bridge and
// outro are taken from the end.
func BuildStructure(lyrics string) []models.ScriptSection {
	var lines []string
	for _, line := range strings.Split(lyrics, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	per := int(math.Ceil(float64(len(lines)) / 6))

	chorus := sliceLines(lines, 4+per, 4+2*per)
	return []models.ScriptSection{
		{Section: "Intro", Duration: 15, Lyrics: sliceLines(lines, 0, min(2, per)), Notes: "Atmospheric build-up with instrumental focus"},
		{Section: "Verse 1", Duration: 35, Lyrics: sliceLines(lines, 2, 2+per), Notes: "Establish narrative and vocal melody"},
		{Section: "Pre-Chorus", Duration: 15, Lyrics: sliceLines(lines, 2+per, 4+per), Notes: "Build tension and energy"},
		{Section: "Chorus", Duration: 30, Lyrics: chorus, Notes: "Hook and memorable melody"},
		{Section: "Verse 2", Duration: 35, Lyrics: sliceLines(lines, 4+2*per, 4+3*per), Notes: "Develop story and add complexity"},
		{Section: "Chorus", Duration: 30, Lyrics: chorus, Notes: "Repeat hook with variations"},
		{Section: "Bridge", Duration: 25, Lyrics: tailLines(lines, min(4, per)), Notes: "Emotional peak and musical contrast"},
		{Section: "Final Chorus", Duration: 35, Lyrics: chorus, Notes: "Full arrangement with ad-libs"},
		{Section: "Outro", Duration: 20, Lyrics: tailLines(lines, 2), Notes: "Fade out with instrumental"},
	}
}

// sliceLines joins lines[start:end] with both bounds clamped to the slice.
func sliceLines(lines []string, start, end int) string {
	start = max(0, min(start, len(lines)))
	end = max(start, min(end, len(lines)))
	return strings.Join(lines[start:end], "\n")
}

// tailLines joins the last n lines. n == 0 selects every line.
func tailLines(lines []string, n int) string {
	if n == 0 {
		return strings.Join(lines, "\n")
	}
	return sliceLines(lines, len(lines)-n, len(lines))
}

// Voice fabricates a vocal render for the chosen artist.
func (s *Simulator) Voice(ctx context.Context, req models.GenerateVoiceRequest) (*models.VoiceResult, error) {
	elapsed, err := s.wait(ctx, voiceLatency)
	if err != nil {
		return nil, err
	}

	settings := models.VoiceSettings{}
	if req.VoiceSettings != nil {
		settings = *req.VoiceSettings
	}
	duration := req.Script.TotalDuration
	if duration == 0 {
		duration = DefaultDuration
	}

	id := s.assetID("voice")
	return &models.VoiceResult{
		AudioURL:        s.url("voices/%s.wav", id),
		AudioPreviewURL: s.url("previews/%s_preview.mp3", id),
		Duration:        duration,
		Format:          "wav",
		Quality:         orDefault(settings.Quality, "studio"),
		BitRate:         "320kbps",
		SampleRate:      "48kHz",
		Artist:          req.ArtistVoice,
		VoiceCharacteristics: map[string]string{
			"pitch":       orDefault(settings.Pitch, "natural"),
			"emotion":     orDefault(settings.Emotion, "neutral"),
			"intensity":   orDefault(settings.Intensity, "medium"),
			"breathiness": orDefault(settings.Breathiness, "subtle"),
		},
		Metadata: models.GenerationMetadata{
			GeneratedAt:    s.now().UTC(),
			ProcessingTime: elapsed.Milliseconds(),
			ModelVersion:   voiceModelVersion,
			Language:       "en-US",
			Gender:         orDefault(settings.Gender, "neutral"),
		},
		Stems: map[string]string{
			"lead":    s.url("stems/%s_lead.wav", id),
			"harmony": s.url("stems/%s_harmony.wav", id),
			"breath":  s.url("stems/%s_breath.wav", id),
		},
	}, nil
}

// Instrumental fabricates a backing track with a fixed arrangement.
func (s *Simulator) Instrumental(ctx context.Context, req models.GenerateInstrumentalRequest) (*models.InstrumentalResult, error) {
	elapsed, err := s.wait(ctx, instrumentalLatency)
	if err != nil {
		return nil, err
	}

	duration := req.Duration
	if duration == 0 {
		duration = DefaultDuration
	}
	tempo := req.Tempo
	if tempo == 0 {
		tempo = models.DefaultTempo
	}
	instruments := req.Instruments
	if len(instruments) == 0 {
		instruments = append([]string(nil), defaultInstruments...)
	}

	id := s.assetID("inst")
	stems := make(map[string]string, 6)
	for _, stem := range []string{"drums", "bass", "guitar", "keys", "strings", "fx"} {
		stems[stem] = s.url("stems/%s_%s.wav", id, stem)
	}

	return &models.InstrumentalResult{
		AudioURL:        s.url("instrumentals/%s.wav", id),
		AudioPreviewURL: s.url("previews/%s_preview.mp3", id),
		Duration:        duration,
		Tempo:           tempo,
		Key:             orDefault(req.Key, DefaultKey),
		Mood:            req.Mood,
		Genre:           req.Genre,
		Format:          "wav",
		Quality:         "studio",
		BitRate:         "320kbps",
		SampleRate:      "48kHz",
		Arrangement: map[string]models.ArrangementSection{
			"intro":       {Start: 0, Duration: 15},
			"verse":       {Start: 15, Duration: 35},
			"chorus":      {Start: 50, Duration: 30},
			"verse2":      {Start: 80, Duration: 35},
			"chorus2":     {Start: 115, Duration: 30},
			"bridge":      {Start: 145, Duration: 25},
			"finalChorus": {Start: 170, Duration: 35},
			"outro":       {Start: 205, Duration: 35},
		},
		Instruments: instruments,
		Stems:       stems,
		Metadata: models.GenerationMetadata{
			GeneratedAt:    s.now().UTC(),
			ProcessingTime: elapsed.Milliseconds(),
			ModelVersion:   instrumentalModelVersion,
			MusicStyle:     req.Genre + "_" + req.Mood,
			Complexity:     "professional",
			AiCreativity:   "high",
		},
		MixSettings: map[string]interface{}{
			"masterVolume": -6,
			"compression":  "moderate",
			"eq":           "balanced",
			"stereoWidth":  "wide",
			"reverb":       "studio",
		},
	}, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
