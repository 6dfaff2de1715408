package models

import (
	"time"

	"github.com/lib/pq"
)

const DefaultAccountType = "pro"

type User struct {
	ID           int64     `gorm:"primaryKey;column:id" json:"id"`
	Username     string    `gorm:"column:username" json:"username"`
	Email        string    `gorm:"column:email" json:"email"`
	Name         string    `gorm:"column:name" json:"name"`
	ProfileImage *string   `gorm:"column:profile_image" json:"profileImage"`
	AccountType  string    `gorm:"column:account_type" json:"accountType"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (User) TableName() string { return "users" }

// UserStats is the denormalized per-user summary row. Money fields are cents.
type UserStats struct {
	ID                 int64      `gorm:"primaryKey;column:id" json:"id"`
	UserID             int64      `gorm:"column:user_id" json:"userId"`
	SongsCreated       int        `gorm:"column:songs_created" json:"songsCreated"`
	TotalStreams       int64      `gorm:"column:total_streams" json:"totalStreams"`
	RoyaltiesEarned    int64      `gorm:"column:royalties_earned" json:"royaltiesEarned"`
	AiCreditsRemaining int        `gorm:"column:ai_credits_remaining" json:"aiCreditsRemaining"`
	SubscriptionPlan   string     `gorm:"column:subscription_plan" json:"subscriptionPlan"`
	AccountStatus      string     `gorm:"column:account_status" json:"accountStatus"`
	LastLoginAt        *time.Time `gorm:"column:last_login_at" json:"lastLoginAt"`
	TotalSpent         int64      `gorm:"column:total_spent" json:"totalSpent"`
}

func (UserStats) TableName() string { return "user_stats" }

// Apply merges the provided fields of the patch over s.
func (s *UserStats) Apply(patch UserStatsPatch) {
	if patch.SongsCreated != nil {
		s.SongsCreated = *patch.SongsCreated
	}
	if patch.TotalStreams != nil {
		s.TotalStreams = *patch.TotalStreams
	}
	if patch.RoyaltiesEarned != nil {
		s.RoyaltiesEarned = *patch.RoyaltiesEarned
	}
	if patch.AiCreditsRemaining != nil {
		s.AiCreditsRemaining = *patch.AiCreditsRemaining
	}
	if patch.SubscriptionPlan != nil {
		s.SubscriptionPlan = *patch.SubscriptionPlan
	}
	if patch.AccountStatus != nil {
		s.AccountStatus = *patch.AccountStatus
	}
	if patch.LastLoginAt != nil {
		t := *patch.LastLoginAt
		s.LastLoginAt = &t
	}
	if patch.TotalSpent != nil {
		s.TotalSpent = *patch.TotalSpent
	}
}

// AiArtist is a selectable synthetic vocal persona from the static catalog.
type AiArtist struct {
	ID          int64   `gorm:"primaryKey;column:id" json:"id"`
	Name        string  `gorm:"column:name" json:"name"`
	Description *string `gorm:"column:description" json:"description"`
	VoiceType   string  `gorm:"column:voice_type" json:"voiceType"`
	AvatarURL   *string `gorm:"column:avatar_url" json:"avatarUrl"`
	IsActive    bool    `gorm:"column:is_active" json:"isActive"`
}

func (AiArtist) TableName() string { return "ai_artists" }

type AiModel struct {
	ID             int64          `gorm:"primaryKey;column:id" json:"id"`
	Name           string         `gorm:"column:name" json:"name"`
	Type           string         `gorm:"column:type" json:"type"`
	Version        string         `gorm:"column:version" json:"version"`
	Capabilities   JSONB          `gorm:"column:capabilities;type:jsonb" json:"capabilities"`
	Languages      pq.StringArray `gorm:"column:languages;type:text[]" json:"languages"`
	QualityLevel   string         `gorm:"column:quality_level" json:"qualityLevel"`
	ProcessingTime int            `gorm:"column:processing_time" json:"processingTime"`
	IsActive       bool           `gorm:"column:is_active" json:"isActive"`
}

func (AiModel) TableName() string { return "ai_models" }

// SecurityLog is an append-only audit row.
type SecurityLog struct {
	ID                int64     `gorm:"primaryKey;column:id" json:"id"`
	UserID            int64     `gorm:"column:user_id" json:"userId"`
	Action            string    `gorm:"column:action" json:"action"`
	IPAddress         string    `gorm:"column:ip_address" json:"ipAddress"`
	UserAgent         string    `gorm:"column:user_agent" json:"userAgent"`
	DeviceFingerprint string    `gorm:"column:device_fingerprint" json:"deviceFingerprint"`
	Metadata          Metadata  `gorm:"column:metadata;type:jsonb" json:"metadata"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (SecurityLog) TableName() string { return "security_logs" }
