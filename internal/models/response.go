package models

import "time"

// ErrorResponse is the JSON envelope returned for every failed request.
type ErrorResponse struct {
	Message   string       `json:"message"`
	Status    int          `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	Errors    []FieldError `json:"errors,omitempty"`
}

// NewErrorResponse stamps an envelope with the current UTC time.
func NewErrorResponse(status int, message string, fieldErrors ...FieldError) ErrorResponse {
	return ErrorResponse{
		Message:   message,
		Status:    status,
		Timestamp: time.Now().UTC(),
		Errors:    fieldErrors,
	}
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type UserResponse struct {
	User
	LastAccessed time.Time `json:"lastAccessed"`
	Status       string    `json:"status"`
}

type HealthResponse struct {
	Status      string            `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
	Version     string            `json:"version"`
	Environment string            `json:"environment"`
	Uptime      float64           `json:"uptime"`
	Database    string            `json:"database"`
	Services    map[string]string `json:"services,omitempty"`
}

type VersionResponse struct {
	Version     string    `json:"version"`
	Platform    string    `json:"platform"`
	BuildDate   time.Time `json:"buildDate"`
	Features    []string  `json:"features"`
	Environment string    `json:"environment"`
}

type DashboardAnalytics struct {
	TotalProjects  int       `json:"totalProjects"`
	TotalStreams   int64     `json:"totalStreams"`
	TotalRevenue   int64     `json:"totalRevenue"`
	TopGenres      []string  `json:"topGenres"`
	RecentActivity []Project `json:"recentActivity"`
}

type PlatformRoyalty struct {
	Platform    string `json:"platform"`
	StreamCount int64  `json:"streamCount"`
	Revenue     int64  `json:"revenue"`
}

type RoyaltySummary struct {
	TotalRevenue int64             `json:"totalRevenue"`
	TotalStreams int64             `json:"totalStreams"`
	Platforms    []PlatformRoyalty `json:"platforms"`
}

type MonitorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Uptime    float64           `json:"uptime"`
	Version   string            `json:"version"`
	Platform  MonitorPlatform   `json:"platform"`
	Health    map[string]string `json:"health"`
}

type MonitorPlatform struct {
	TotalProjects int   `json:"totalProjects"`
	TotalStreams  int64 `json:"totalStreams"`
	TotalRevenue  int64 `json:"totalRevenue"`
}

type ScriptSection struct {
	Section  string `json:"section"`
	Duration int    `json:"duration"`
	Lyrics   string `json:"lyrics"`
	Notes    string `json:"notes"`
}

type ScriptAnalysis struct {
	LyricalThemes    string `json:"lyricalThemes"`
	EnergyLevel      string `json:"energyLevel"`
	Complexity       string `json:"complexity"`
	CommercialAppeal string `json:"commercialAppeal"`
}

type ScriptResult struct {
	Structure     []ScriptSection `json:"structure"`
	TotalDuration int             `json:"totalDuration"`
	Key           string          `json:"key"`
	TimeSignature string          `json:"timeSignature"`
	Tempo         int             `json:"tempo"`
	Mood          string          `json:"mood"`
	Genre         string          `json:"genre"`
	AiAnalysis    ScriptAnalysis  `json:"aiAnalysis"`
}

type GenerationMetadata struct {
	GeneratedAt    time.Time `json:"generatedAt"`
	ProcessingTime int64     `json:"processingTime"`
	ModelVersion   string    `json:"modelVersion"`
	Language       string    `json:"language,omitempty"`
	Gender         string    `json:"gender,omitempty"`
	MusicStyle     string    `json:"musicStyle,omitempty"`
	Complexity     string    `json:"complexity,omitempty"`
	AiCreativity   string    `json:"aiCreativity,omitempty"`
}

type VoiceResult struct {
	AudioURL             string             `json:"audioUrl"`
	AudioPreviewURL      string             `json:"audioPreviewUrl"`
	Duration             int                `json:"duration"`
	Format               string             `json:"format"`
	Quality              string             `json:"quality"`
	BitRate              string             `json:"bitRate"`
	SampleRate           string             `json:"sampleRate"`
	Artist               string             `json:"artist"`
	VoiceCharacteristics map[string]string  `json:"voiceCharacteristics"`
	Metadata             GenerationMetadata `json:"metadata"`
	Stems                map[string]string  `json:"stems"`
}

type ArrangementSection struct {
	Start    int `json:"start"`
	Duration int `json:"duration"`
}

type InstrumentalResult struct {
	AudioURL        string                        `json:"audioUrl"`
	AudioPreviewURL string                        `json:"audioPreviewUrl"`
	Duration        int                           `json:"duration"`
	Tempo           int                           `json:"tempo"`
	Key             string                        `json:"key"`
	Mood            string                        `json:"mood"`
	Genre           string                        `json:"genre"`
	Format          string                        `json:"format"`
	Quality         string                        `json:"quality"`
	BitRate         string                        `json:"bitRate"`
	SampleRate      string                        `json:"sampleRate"`
	Arrangement     map[string]ArrangementSection `json:"arrangement"`
	Instruments     []string                      `json:"instruments"`
	Stems           map[string]string             `json:"stems"`
	Metadata        GenerationMetadata            `json:"metadata"`
	MixSettings     map[string]interface{}        `json:"mixSettings"`
}
