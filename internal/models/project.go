package models

import "time"

const (
	ProjectStatusDraft      = "draft"
	ProjectStatusProcessing = "processing"
	ProjectStatusComplete   = "complete"

	FirstWorkflowStep = 1
	LastWorkflowStep  = 6

	DefaultTempo = 120
)

// Project is a single song-creation unit tracked through the six-step studio workflow.
type Project struct {
	ID              int64     `gorm:"primaryKey;column:id" json:"id"`
	UserID          int64     `gorm:"column:user_id" json:"userId"`
	Title           string    `gorm:"column:title" json:"title"`
	Lyrics          *string   `gorm:"column:lyrics" json:"lyrics"`
	Mood            *string   `gorm:"column:mood" json:"mood"`
	Genre           *string   `gorm:"column:genre" json:"genre"`
	Tempo           *int      `gorm:"column:tempo" json:"tempo"`
	ArtistVoice     *string   `gorm:"column:artist_voice" json:"artistVoice"`
	Status          string    `gorm:"column:status" json:"status"`
	CurrentStep     int       `gorm:"column:current_step" json:"currentStep"`
	AudioURL        *string   `gorm:"column:audio_url" json:"audioUrl"`
	VideoURL        *string   `gorm:"column:video_url" json:"videoUrl"`
	CertificateURL  *string   `gorm:"column:certificate_url" json:"certificateUrl"`
	BundleURL       *string   `gorm:"column:bundle_url" json:"bundleUrl"`
	WatermarkID     *string   `gorm:"column:watermark_id" json:"watermarkId"`
	RoyaltiesEarned int64     `gorm:"column:royalties_earned" json:"royaltiesEarned"`
	TotalStreams    int64     `gorm:"column:total_streams" json:"totalStreams"`
	IsPublic        bool      `gorm:"column:is_public" json:"isPublic"`
	Metadata        Metadata  `gorm:"column:metadata;type:jsonb" json:"metadata"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Project) TableName() string { return "projects" }

// Apply merges every provided field of the patch over p. Timestamps are left to the caller.
func (p *Project) Apply(patch ProjectPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	assign(&p.Lyrics, patch.Lyrics)
	assign(&p.Mood, patch.Mood)
	assign(&p.Genre, patch.Genre)
	if patch.Tempo != nil {
		p.Tempo = patch.Tempo
	}
	assign(&p.ArtistVoice, patch.ArtistVoice)
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.CurrentStep != nil {
		p.CurrentStep = *patch.CurrentStep
	}
	assign(&p.AudioURL, patch.AudioURL)
	assign(&p.VideoURL, patch.VideoURL)
	assign(&p.CertificateURL, patch.CertificateURL)
	assign(&p.BundleURL, patch.BundleURL)
	assign(&p.WatermarkID, patch.WatermarkID)
	if patch.RoyaltiesEarned != nil {
		p.RoyaltiesEarned = *patch.RoyaltiesEarned
	}
	if patch.TotalStreams != nil {
		p.TotalStreams = *patch.TotalStreams
	}
	if patch.IsPublic != nil {
		p.IsPublic = *patch.IsPublic
	}
	if patch.Metadata != nil {
		p.Metadata = patch.Metadata.Clone()
	}
}

// Clone returns a deep copy so callers never share pointer fields with a store.
func (p Project) Clone() Project {
	c := p
	c.Lyrics = cloneString(p.Lyrics)
	c.Mood = cloneString(p.Mood)
	c.Genre = cloneString(p.Genre)
	c.Tempo = cloneInt(p.Tempo)
	c.ArtistVoice = cloneString(p.ArtistVoice)
	c.AudioURL = cloneString(p.AudioURL)
	c.VideoURL = cloneString(p.VideoURL)
	c.CertificateURL = cloneString(p.CertificateURL)
	c.BundleURL = cloneString(p.BundleURL)
	c.WatermarkID = cloneString(p.WatermarkID)
	c.Metadata = p.Metadata.Clone()
	return c
}

// RoyaltyTracking is one per-platform revenue snapshot for a project on a reporting date.
type RoyaltyTracking struct {
	ID          int64     `gorm:"primaryKey;column:id" json:"id"`
	ProjectID   int64     `gorm:"column:project_id" json:"projectId"`
	Platform    string    `gorm:"column:platform" json:"platform"`
	StreamCount int64     `gorm:"column:stream_count" json:"streamCount"`
	Revenue     int64     `gorm:"column:revenue" json:"revenue"`
	Date        time.Time `gorm:"column:date" json:"date"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (RoyaltyTracking) TableName() string { return "royalty_tracking" }

// Collaboration links a user to someone else's project. Schema only.
type Collaboration struct {
	ID           int64     `gorm:"primaryKey;column:id" json:"id"`
	ProjectID    int64     `gorm:"column:project_id" json:"projectId"`
	UserID       int64     `gorm:"column:user_id" json:"userId"`
	Role         string    `gorm:"column:role" json:"role"`
	RoyaltyShare int       `gorm:"column:royalty_share" json:"royaltyShare"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Collaboration) TableName() string { return "collaborations" }

// ContentProtection records the protection state of a project's assets. Schema only.
type ContentProtection struct {
	ID              int64     `gorm:"primaryKey;column:id" json:"id"`
	ProjectID       int64     `gorm:"column:project_id" json:"projectId"`
	WatermarkID     string    `gorm:"column:watermark_id" json:"watermarkId"`
	ProtectionLevel string    `gorm:"column:protection_level" json:"protectionLevel"`
	Fingerprint     *string   `gorm:"column:fingerprint" json:"fingerprint"`
	Status          string    `gorm:"column:status" json:"status"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (ContentProtection) TableName() string { return "content_protection" }

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
