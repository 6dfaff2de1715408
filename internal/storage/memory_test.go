package storage_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"realartist-backend/internal/demo"
	"realartist-backend/internal/models"
	"realartist-backend/internal/storage"
)

// steppingClock advances by one second on every call.
type steppingClock struct {
	mu  sync.Mutex
	cur time.Time
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = c.cur.Add(time.Second)
	return c.cur
}

func newClock() *steppingClock {
	return &steppingClock{cur: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestMemStorage_CreateProjectDefaults(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStorage(storage.WithClock(newClock().Now))

	p, err := store.CreateProject(ctx, models.InsertProject{
		UserID: demo.UserID,
		Title:  "T",
		Lyrics: strPtr("line1\nline2"),
		Mood:   strPtr("uplifting"),
		Genre:  strPtr("pop"),
	})
	require.NoError(t, err)

	assert.NotZero(t, p.ID)
	assert.Equal(t, models.ProjectStatusDraft, p.Status)
	assert.Equal(t, models.FirstWorkflowStep, p.CurrentStep)
	assert.Zero(t, p.RoyaltiesEarned)
	assert.Zero(t, p.TotalStreams)
	assert.Nil(t, p.AudioURL)
	assert.Nil(t, p.VideoURL)
	assert.Nil(t, p.CertificateURL)
	assert.Nil(t, p.BundleURL)
	assert.Nil(t, p.WatermarkID)
	require.NotNil(t, p.Tempo)
	assert.Equal(t, models.DefaultTempo, *p.Tempo)
	assert.NotNil(t, p.Metadata)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestMemStorage_CreateProjectAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStorage()

	a, err := store.CreateProject(ctx, models.InsertProject{UserID: demo.UserID, Title: "a"})
	require.NoError(t, err)
	b, err := store.CreateProject(ctx, models.InsertProject{UserID: demo.UserID, Title: "b"})
	require.NoError(t, err)

	assert.Greater(t, b.ID, a.ID)
}

func TestMemStorage_UpdateProject(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStorage(storage.WithClock(newClock().Now))

	created, err := store.CreateProject(ctx, models.InsertProject{UserID: demo.UserID, Title: "T", Mood: strPtr("calm")})
	require.NoError(t, err)

	status := models.ProjectStatusProcessing
	updated, err := store.UpdateProject(ctx, created.ID, models.ProjectPatch{
		Status:      &status,
		CurrentStep: intPtr(2),
	})
	require.NoError(t, err)

	assert.Equal(t, models.ProjectStatusProcessing, updated.Status)
	assert.Equal(t, 2, updated.CurrentStep)
	assert.Equal(t, "T", updated.Title)
	require.NotNil(t, updated.Mood)
	assert.Equal(t, "calm", *updated.Mood)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestMemStorage_UpdateProjectClockGoingBackwards(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	now := base
	store := storage.NewMemStorage(storage.WithClock(func() time.Time { return now }))

	created, err := store.CreateProject(ctx, models.InsertProject{UserID: demo.UserID, Title: "T"})
	require.NoError(t, err)

	now = base.Add(-time.Hour)
	updated, err := store.UpdateProject(ctx, created.ID, models.ProjectPatch{Title: strPtr("T2")})
	require.NoError(t, err)

	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestMemStorage_UpdateProjectNotFound(t *testing.T) {
	store := storage.NewMemStorage()

	_, err := store.UpdateProject(context.Background(), 9999, models.ProjectPatch{Title: strPtr("x")})
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestMemStorage_ReturnedProjectsAreCopies(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStorage()

	created, err := store.CreateProject(ctx, models.InsertProject{UserID: demo.UserID, Title: "T", Lyrics: strPtr("a")})
	require.NoError(t, err)
	*created.Lyrics = "mutated"
	created.Metadata["k"] = "v"

	got, err := store.GetProject(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", *got.Lyrics)
	assert.NotContains(t, got.Metadata, "k")
}

func TestMemStorage_DeleteProject(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStorage()

	created, err := store.CreateProject(ctx, models.InsertProject{UserID: demo.UserID, Title: "T"})
	require.NoError(t, err)

	ok, err := store.DeleteProject(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = store.GetProject(ctx, created.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	ok, err = store.DeleteProject(ctx, created.ID)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStorage_GetProjectsByUserIDNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStorage(storage.WithClock(newClock().Now))

	first, err := store.CreateProject(ctx, models.InsertProject{UserID: demo.UserID, Title: "first"})
	require.NoError(t, err)
	second, err := store.CreateProject(ctx, models.InsertProject{UserID: demo.UserID, Title: "second"})
	require.NoError(t, err)
	other, err := store.CreateUser(ctx, models.InsertUser{Username: "other", Email: "other@example.com", Name: "Other"})
	require.NoError(t, err)
	_, err = store.CreateProject(ctx, models.InsertProject{UserID: other.ID, Title: "someone else"})
	require.NoError(t, err)

	projects, err := store.GetProjectsByUserID(ctx, demo.UserID)
	require.NoError(t, err)

	require.Len(t, projects, len(demo.Build(time.Now()).Projects)+2)
	assert.Equal(t, second.ID, projects[0].ID)
	assert.Equal(t, first.ID, projects[1].ID)
	for i, p := range projects {
		assert.Equal(t, demo.UserID, p.UserID)
		if i > 0 {
			assert.False(t, p.CreatedAt.After(projects[i-1].CreatedAt))
		}
	}
}

func TestMemStorage_RejectsUnknownUser(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStorage()

	before, err := store.GetProjectsByUserID(ctx, 999)
	require.NoError(t, err)
	require.Empty(t, before)

	_, err = store.CreateProject(ctx, models.InsertProject{UserID: 999, Title: "orphan"})
	assert.ErrorIs(t, err, storage.ErrUnknownUser)

	err = store.LogSecurityEvent(ctx, models.InsertSecurityLog{UserID: 999, Action: "login"})
	assert.ErrorIs(t, err, storage.ErrUnknownUser)

	projects, err := store.GetProjectsByUserID(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, projects)
	logs, err := store.GetSecurityLogs(ctx, 999, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestMemStorage_GetProjectsByUserIDEmpty(t *testing.T) {
	store := storage.NewMemStorage(storage.WithoutSeed())

	projects, err := store.GetProjectsByUserID(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestMemStorage_Users(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStorage()

	u, err := store.GetUser(ctx, demo.UserID)
	require.NoError(t, err)
	assert.Equal(t, "ervin_radosavlevici", u.Username)

	byName, err := store.GetUserByUsername(ctx, "ervin_radosavlevici")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	_, err = store.CreateUser(ctx, models.InsertUser{Username: "ervin_radosavlevici", Email: "x@example.com", Name: "X"})
	assert.ErrorIs(t, err, storage.ErrConflict)

	created, err := store.CreateUser(ctx, models.InsertUser{Username: "newbie", Email: "newbie@example.com", Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAccountType, created.AccountType)
	assert.NotEqual(t, u.ID, created.ID)

	_, err = store.GetUser(ctx, 12345)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemStorage_AiArtistsActiveOnly(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStorage()

	inactive := false
	hidden, err := store.CreateAiArtist(ctx, models.InsertAiArtist{Name: "Hidden", VoiceType: "jazz", IsActive: &inactive})
	require.NoError(t, err)

	artists, err := store.GetAiArtists(ctx)
	require.NoError(t, err)
	assert.Len(t, artists, 5)
	for _, a := range artists {
		assert.True(t, a.IsActive)
		assert.NotEqual(t, hidden.ID, a.ID)
	}

	got, err := store.GetAiArtist(ctx, hidden.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestMemStorage_UserStats(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStorage()

	stats, err := store.GetUserStats(ctx, demo.UserID)
	require.NoError(t, err)
	assert.Equal(t, 850, stats.AiCreditsRemaining)

	credits := 800
	updated, err := store.UpdateUserStats(ctx, demo.UserID, models.UserStatsPatch{AiCreditsRemaining: &credits})
	require.NoError(t, err)
	assert.Equal(t, 800, updated.AiCreditsRemaining)
	assert.Equal(t, stats.SongsCreated, updated.SongsCreated)

	_, err = store.UpdateUserStats(ctx, 999, models.UserStatsPatch{AiCreditsRemaining: &credits})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemStorage_SecurityLogs(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStorage(storage.WithClock(newClock().Now))

	err := store.LogSecurityEvent(ctx, models.InsertSecurityLog{
		UserID:    demo.UserID,
		Action:    "project_deleted",
		IPAddress: "10.0.0.1",
		Metadata:  models.Metadata{models.MetaProjectTitle: "T"},
	})
	require.NoError(t, err)

	logs, err := store.GetSecurityLogs(ctx, demo.UserID, 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "project_deleted", logs[0].Action)

	all, err := store.GetSecurityLogs(ctx, demo.UserID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemStorage_RoyaltyTracking(t *testing.T) {
	store := storage.NewMemStorage()

	rows, err := store.GetRoyaltyTracking(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, int64(1), r.ProjectID)
	}
}

func TestMemStorage_HealthCheck(t *testing.T) {
	store := storage.NewMemStorage()
	assert.True(t, store.HealthCheck(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, store.HealthCheck(ctx))
}

func TestMemStorage_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStorage()

	created, err := store.CreateProject(ctx, models.InsertProject{UserID: demo.UserID, Title: "T"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 1; i <= 6; i++ {
		wg.Add(1)
		go func(step int) {
			defer wg.Done()
			_, err := store.UpdateProject(ctx, created.ID, models.ProjectPatch{CurrentStep: &step})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := store.GetProject(ctx, created.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.CurrentStep, 1)
	assert.LessOrEqual(t, got.CurrentStep, 6)
}
