package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"realartist-backend/internal/demo"
	"realartist-backend/internal/models"
	"realartist-backend/internal/services"
	"realartist-backend/internal/storage"
)

func genre(g string) *string { return &g }

func TestAnalyticsService_DashboardOnDemoData(t *testing.T) {
	store := storage.NewMemStorage()
	svc := services.NewAnalyticsService(store, "2025.1.0", time.Now())

	dash, err := svc.Dashboard(context.Background(), demo.UserID)
	require.NoError(t, err)

	assert.Equal(t, 4, dash.TotalProjects)
	assert.Equal(t, int64(28473+18230+9560), dash.TotalStreams)
	assert.Equal(t, int64(2847+1823+956), dash.TotalRevenue)
	assert.Len(t, dash.RecentActivity, 4)
	assert.Equal(t, "Future Beats", dash.RecentActivity[0].Title)
	assert.Len(t, dash.TopGenres, 3)
}

func TestAnalyticsService_DashboardCapsRecentActivity(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStorage()
	for i := 0; i < 3; i++ {
		_, err := store.CreateProject(ctx, models.InsertProject{UserID: demo.UserID, Title: "extra"})
		require.NoError(t, err)
	}
	svc := services.NewAnalyticsService(store, "2025.1.0", time.Now())

	dash, err := svc.Dashboard(ctx, demo.UserID)
	require.NoError(t, err)
	assert.Equal(t, 7, dash.TotalProjects)
	assert.Len(t, dash.RecentActivity, 5)
}

func TestAnalyticsService_DashboardEmpty(t *testing.T) {
	svc := services.NewAnalyticsService(storage.NewMemStorage(storage.WithoutSeed()), "v", time.Now())

	dash, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, dash.TotalProjects)
	assert.NotNil(t, dash.RecentActivity)
	assert.Empty(t, dash.TopGenres)
}

func TestTopGenres(t *testing.T) {
	projects := []models.Project{
		{Genre: genre("pop")},
		{Genre: genre("rock")},
		{Genre: genre("pop")},
		{Genre: genre("ambient")},
		{Genre: nil},
		{Genre: genre("rock")},
		{Genre: genre("jazz")},
	}
	assert.Equal(t, []string{"pop", "rock", "ambient"}, services.TopGenres(projects, 3))
}

func TestAnalyticsService_RoyaltySummary(t *testing.T) {
	svc := services.NewAnalyticsService(storage.NewMemStorage(), "v", time.Now())

	summary, err := svc.RoyaltySummary(context.Background(), demo.UserID)
	require.NoError(t, err)

	assert.Equal(t, int64(1542+1250+890), summary.TotalRevenue)
	assert.Equal(t, int64(15420+8930+12340), summary.TotalStreams)
	require.Len(t, summary.Platforms, 3)
	assert.Equal(t, "spotify", summary.Platforms[0].Platform)
}

func TestAnalyticsService_Monitor(t *testing.T) {
	started := time.Now().Add(-time.Minute)
	svc := services.NewAnalyticsService(storage.NewMemStorage(), "2025.1.0", started)

	mon, err := svc.Monitor(context.Background(), demo.UserID)
	require.NoError(t, err)

	assert.Equal(t, "2025.1.0", mon.Version)
	assert.GreaterOrEqual(t, mon.Uptime, 60.0)
	assert.Equal(t, 4, mon.Platform.TotalProjects)
	assert.Equal(t, "operational", mon.Health["database"])
}
