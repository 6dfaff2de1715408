// Package storage defines the persistence seam between HTTP handlers and the backing store.
package storage

import (
	"context"
	"errors"

	"realartist-backend/internal/models"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique constraint (username, email) is violated.
	ErrConflict = errors.New("conflict")
	// ErrUnknownUser is returned when a row references a user that does not exist.
	ErrUnknownUser = errors.New("unknown user")
)

// Storage is implemented by MemStorage and database.DatabaseStorage.
type Storage interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, in models.InsertUser) (*models.User, error)

	GetProject(ctx context.Context, id int64) (*models.Project, error)
	// GetProjectsByUserID returns the user's projects, newest first.
	GetProjectsByUserID(ctx context.Context, userID int64) ([]models.Project, error)
	CreateProject(ctx context.Context, in models.InsertProject) (*models.Project, error)
	UpdateProject(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error)
	// DeleteProject reports whether a row was removed.
	DeleteProject(ctx context.Context, id int64) (bool, error)

	// GetAiArtists returns active catalog entries only.
	GetAiArtists(ctx context.Context) ([]models.AiArtist, error)
	GetAiArtist(ctx context.Context, id int64) (*models.AiArtist, error)
	CreateAiArtist(ctx context.Context, in models.InsertAiArtist) (*models.AiArtist, error)

	GetUserStats(ctx context.Context, userID int64) (*models.UserStats, error)
	UpdateUserStats(ctx context.Context, userID int64, patch models.UserStatsPatch) (*models.UserStats, error)

	GetRoyaltyTracking(ctx context.Context, projectID int64) ([]models.RoyaltyTracking, error)
	LogSecurityEvent(ctx context.Context, in models.InsertSecurityLog) error
	GetSecurityLogs(ctx context.Context, userID int64, limit int) ([]models.SecurityLog, error)

	HealthCheck(ctx context.Context) bool
}

// NewProject builds the row CreateProject stores: draft, first step, zero counters, no assets.
func NewProject(in models.InsertProject) models.Project {
	p := models.Project{
		UserID:      in.UserID,
		Title:       in.Title,
		Lyrics:      in.Lyrics,
		Mood:        in.Mood,
		Genre:       in.Genre,
		Tempo:       in.Tempo,
		ArtistVoice: in.ArtistVoice,
		Status:      models.ProjectStatusDraft,
		CurrentStep: models.FirstWorkflowStep,
		IsPublic:    in.IsPublic,
		Metadata:    in.Metadata.Clone(),
	}
	if p.Tempo == nil {
		tempo := models.DefaultTempo
		p.Tempo = &tempo
	}
	if p.Metadata == nil {
		p.Metadata = models.Metadata{}
	}
	return p
}
