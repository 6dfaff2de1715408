package models

import "time"

type InsertUser struct {
	Username     string  `json:"username" binding:"required,min=3,max=64"`
	Email        string  `json:"email" binding:"required,email"`
	Name         string  `json:"name" binding:"required"`
	ProfileImage *string `json:"profileImage" binding:"omitnil,url"`
	AccountType  string  `json:"accountType"`
}

// InsertProject is the create body. Status, workflow step, asset URLs and counters are
// server-assigned and cannot be supplied here.
type InsertProject struct {
	UserID      int64    `json:"-"`
	Title       string   `json:"title" binding:"required,max=200"`
	Lyrics      *string  `json:"lyrics"`
	Mood        *string  `json:"mood"`
	Genre       *string  `json:"genre"`
	Tempo       *int     `json:"tempo" binding:"omitnil,min=1,max=400"`
	ArtistVoice *string  `json:"artistVoice"`
	IsPublic    bool     `json:"isPublic"`
	Metadata    Metadata `json:"metadata"`
}

// ProjectPatch carries the fields of a partial update. Pointer fields left nil are
// unchanged. Nullable fields are unchanged when omitted and cleared by an explicit null.
type ProjectPatch struct {
	Title           *string          `json:"title" binding:"omitnil,min=1,max=200"`
	Lyrics          Nullable[string] `json:"lyrics"`
	Mood            Nullable[string] `json:"mood"`
	Genre           Nullable[string] `json:"genre"`
	Tempo           *int             `json:"tempo" binding:"omitnil,min=1,max=400"`
	ArtistVoice     Nullable[string] `json:"artistVoice"`
	Status          *string          `json:"status" binding:"omitnil,oneof=draft processing complete"`
	CurrentStep     *int             `json:"currentStep" binding:"omitnil,min=1,max=6"`
	AudioURL        Nullable[string] `json:"audioUrl"`
	VideoURL        Nullable[string] `json:"videoUrl"`
	CertificateURL  Nullable[string] `json:"certificateUrl"`
	BundleURL       Nullable[string] `json:"bundleUrl"`
	WatermarkID     Nullable[string] `json:"watermarkId"`
	RoyaltiesEarned *int64           `json:"royaltiesEarned" binding:"omitnil,min=0"`
	TotalStreams    *int64           `json:"totalStreams" binding:"omitnil,min=0"`
	IsPublic        *bool            `json:"isPublic"`
	Metadata        Metadata         `json:"metadata"`
}

type InsertAiArtist struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	VoiceType   string  `json:"voiceType" binding:"required"`
	AvatarURL   *string `json:"avatarUrl"`
	IsActive    *bool   `json:"isActive"`
}

type UserStatsPatch struct {
	SongsCreated       *int       `json:"songsCreated" binding:"omitnil,min=0"`
	TotalStreams       *int64     `json:"totalStreams" binding:"omitnil,min=0"`
	RoyaltiesEarned    *int64     `json:"royaltiesEarned" binding:"omitnil,min=0"`
	AiCreditsRemaining *int       `json:"aiCreditsRemaining" binding:"omitnil,min=0"`
	SubscriptionPlan   *string    `json:"subscriptionPlan"`
	AccountStatus      *string    `json:"accountStatus"`
	LastLoginAt        *time.Time `json:"lastLoginAt"`
	TotalSpent         *int64     `json:"totalSpent" binding:"omitnil,min=0"`
}

type InsertSecurityLog struct {
	UserID            int64
	Action            string
	IPAddress         string
	UserAgent         string
	DeviceFingerprint string
	Metadata          Metadata
}

type GenerateScriptRequest struct {
	Lyrics   string `json:"lyrics" binding:"required"`
	Mood     string `json:"mood"`
	Genre    string `json:"genre"`
	Tempo    int    `json:"tempo" binding:"omitempty,min=1,max=400"`
	Duration int    `json:"duration" binding:"omitempty,min=1"`
}

type VoiceSettings struct {
	Quality     string `json:"quality"`
	Pitch       string `json:"pitch"`
	Emotion     string `json:"emotion"`
	Intensity   string `json:"intensity"`
	Breathiness string `json:"breathiness"`
	Gender      string `json:"gender"`
}

type GenerateVoiceRequest struct {
	Script struct {
		TotalDuration int `json:"totalDuration"`
	} `json:"script"`
	ArtistVoice   string         `json:"artistVoice" binding:"required"`
	VoiceSettings *VoiceSettings `json:"voiceSettings"`
}

type GenerateInstrumentalRequest struct {
	Mood        string   `json:"mood"`
	Genre       string   `json:"genre"`
	Tempo       int      `json:"tempo" binding:"omitempty,min=1,max=400"`
	Duration    int      `json:"duration" binding:"omitempty,min=1"`
	Key         string   `json:"key"`
	Instruments []string `json:"instruments"`
}
