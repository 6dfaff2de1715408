package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"realartist-backend/internal/models"
	"realartist-backend/internal/storage"
)

const (
	recentActivityLimit = 5
	topGenresLimit      = 3
)

// AnalyticsService aggregates the per-user dashboard figures from the store.
type AnalyticsService struct {
	store     storage.Storage
	version   string
	startedAt time.Time
	now       func() time.Time
}

func NewAnalyticsService(store storage.Storage, version string, startedAt time.Time) *AnalyticsService {
	return &AnalyticsService{
		store:     store,
		version:   version,
		startedAt: startedAt,
		now:       time.Now,
	}
}

// Dashboard summarizes the user's projects. Revenue is in cents.
func (s *AnalyticsService) Dashboard(ctx context.Context, userID int64) (*models.DashboardAnalytics, error) {
	projects, err := s.store.GetProjectsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard projects: %w", err)
	}

	out := &models.DashboardAnalytics{
		TotalProjects:  len(projects),
		TopGenres:      TopGenres(projects, topGenresLimit),
		RecentActivity: projects[:min(recentActivityLimit, len(projects))],
	}
	for _, p := range projects {
		out.TotalStreams += p.TotalStreams
		out.TotalRevenue += p.RoyaltiesEarned
	}
	return out, nil
}

// TopGenres returns up to limit genres ordered by project count, ties alphabetically.
func TopGenres(projects []models.Project, limit int) []string {
	counts := map[string]int{}
	for _, p := range projects {
		if p.Genre != nil && *p.Genre != "" {
			counts[*p.Genre]++
		}
	}
	genres := make([]string, 0, len(counts))
	for g := range counts {
		genres = append(genres, g)
	}
	sort.Slice(genres, func(i, j int) bool {
		if counts[genres[i]] != counts[genres[j]] {
			return counts[genres[i]] > counts[genres[j]]
		}
		return genres[i] < genres[j]
	})
	if len(genres) > limit {
		genres = genres[:limit]
	}
	return genres
}

// RoyaltySummary totals royalty rows per platform across all of the user's projects.
func (s *AnalyticsService) RoyaltySummary(ctx context.Context, userID int64) (*models.RoyaltySummary, error) {
	projects, err := s.store.GetProjectsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("royalty projects: %w", err)
	}

	byPlatform := map[string]*models.PlatformRoyalty{}
	summary := &models.RoyaltySummary{Platforms: []models.PlatformRoyalty{}}
	for _, p := range projects {
		rows, err := s.store.GetRoyaltyTracking(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("royalty rows for project %d: %w", p.ID, err)
		}
		for _, r := range rows {
			agg, ok := byPlatform[r.Platform]
			if !ok {
				agg = &models.PlatformRoyalty{Platform: r.Platform}
				byPlatform[r.Platform] = agg
			}
			agg.StreamCount += r.StreamCount
			agg.Revenue += r.Revenue
			summary.TotalStreams += r.StreamCount
			summary.TotalRevenue += r.Revenue
		}
	}

	for _, agg := range byPlatform {
		summary.Platforms = append(summary.Platforms, *agg)
	}
	sort.Slice(summary.Platforms, func(i, j int) bool {
		if summary.Platforms[i].Revenue != summary.Platforms[j].Revenue {
			return summary.Platforms[i].Revenue > summary.Platforms[j].Revenue
		}
		return summary.Platforms[i].Platform < summary.Platforms[j].Platform
	})
	return summary, nil
}

// Monitor reports uptime, platform totals and component health.
func (s *AnalyticsService) Monitor(ctx context.Context, userID int64) (*models.MonitorResponse, error) {
	dash, err := s.Dashboard(ctx, userID)
	if err != nil {
		return nil, err
	}

	dbStatus := "operational"
	if !s.store.HealthCheck(ctx) {
		dbStatus = "degraded"
	}

	now := s.now()
	return &models.MonitorResponse{
		Timestamp: now.UTC(),
		Uptime:    now.Sub(s.startedAt).Seconds(),
		Version:   s.version,
		Platform: models.MonitorPlatform{
			TotalProjects: dash.TotalProjects,
			TotalStreams:  dash.TotalStreams,
			TotalRevenue:  dash.TotalRevenue,
		},
		Health: map[string]string{
			"api":      "operational",
			"database": dbStatus,
			"ai":       "operational",
		},
	}, nil
}
