package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"realartist-backend/internal/demo"
	"realartist-backend/internal/models"
)

// MemStorage keeps every table in process memory. It is seeded with the demo dataset and
// loses all writes on restart.
type MemStorage struct {
	mu  sync.RWMutex
	now func() time.Time

	users     map[int64]models.User
	projects  map[int64]models.Project
	artists   map[int64]models.AiArtist
	stats     map[int64]models.UserStats
	royalties []models.RoyaltyTracking
	logs      []models.SecurityLog

	nextUserID    int64
	nextProjectID int64
	nextArtistID  int64
	nextStatsID   int64
	nextLogID     int64
}

type MemOption func(*MemStorage)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) MemOption {
	return func(m *MemStorage) { m.now = now }
}

// WithoutSeed starts from empty tables.
func WithoutSeed() MemOption {
	return func(m *MemStorage) {
		m.users = map[int64]models.User{}
		m.projects = map[int64]models.Project{}
		m.artists = map[int64]models.AiArtist{}
		m.stats = map[int64]models.UserStats{}
		m.royalties = nil
		m.logs = nil
		m.nextUserID, m.nextProjectID, m.nextArtistID, m.nextStatsID, m.nextLogID = 1, 1, 1, 1, 1
	}
}

func NewMemStorage(opts ...MemOption) *MemStorage {
	m := &MemStorage{now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	if m.users == nil {
		m.seed(demo.Build(m.now()))
	}
	return m
}

func (m *MemStorage) seed(ds demo.Dataset) {
	m.users = make(map[int64]models.User, len(ds.Users))
	m.projects = make(map[int64]models.Project, len(ds.Projects))
	m.artists = make(map[int64]models.AiArtist, len(ds.Artists))
	m.stats = make(map[int64]models.UserStats, len(ds.Stats))

	for _, u := range ds.Users {
		m.users[u.ID] = u
		m.nextUserID = max(m.nextUserID, u.ID)
	}
	for _, p := range ds.Projects {
		m.projects[p.ID] = p.Clone()
		m.nextProjectID = max(m.nextProjectID, p.ID)
	}
	for _, a := range ds.Artists {
		m.artists[a.ID] = a
		m.nextArtistID = max(m.nextArtistID, a.ID)
	}
	for _, s := range ds.Stats {
		m.stats[s.UserID] = s
		m.nextStatsID = max(m.nextStatsID, s.ID)
	}
	m.royalties = append(m.royalties, ds.Royalties...)
	for _, l := range ds.SecurityLogs {
		m.logs = append(m.logs, l)
		m.nextLogID = max(m.nextLogID, l.ID)
	}
	m.nextUserID++
	m.nextProjectID++
	m.nextArtistID++
	m.nextStatsID++
	m.nextLogID++
}

func (m *MemStorage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *MemStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemStorage) CreateUser(ctx context.Context, in models.InsertUser) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == in.Username || u.Email == in.Email {
			return nil, fmt.Errorf("create user %q: %w", in.Username, ErrConflict)
		}
	}

	accountType := in.AccountType
	if accountType == "" {
		accountType = models.DefaultAccountType
	}
	u := models.User{
		ID:           m.nextUserID,
		Username:     in.Username,
		Email:        in.Email,
		Name:         in.Name,
		ProfileImage: in.ProfileImage,
		AccountType:  accountType,
		CreatedAt:    m.now(),
	}
	m.nextUserID++
	m.users[u.ID] = u
	return &u, nil
}

func (m *MemStorage) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := p.Clone()
	return &c, nil
}

func (m *MemStorage) GetProjectsByUserID(ctx context.Context, userID int64) ([]models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Project, 0)
	for _, p := range m.projects {
		if p.UserID == userID {
			out = append(out, p.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemStorage) CreateProject(ctx context.Context, in models.InsertProject) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[in.UserID]; !ok {
		return nil, fmt.Errorf("create project for user %d: %w", in.UserID, ErrUnknownUser)
	}

	p := NewProject(in)
	p.ID = m.nextProjectID
	p.CreatedAt = m.now()
	p.UpdatedAt = p.CreatedAt
	m.nextProjectID++
	m.projects[p.ID] = p

	c := p.Clone()
	return &c, nil
}

func (m *MemStorage) UpdateProject(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	p = p.Clone()
	p.Apply(patch)

	// updatedAt never moves backwards even if the clock does.
	now := m.now()
	if now.Before(p.UpdatedAt) {
		now = p.UpdatedAt
	}
	p.UpdatedAt = now
	m.projects[id] = p

	c := p.Clone()
	return &c, nil
}

func (m *MemStorage) DeleteProject(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[id]; !ok {
		return false, nil
	}
	delete(m.projects, id)
	return true, nil
}

func (m *MemStorage) GetAiArtists(ctx context.Context) ([]models.AiArtist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.AiArtist, 0, len(m.artists))
	for _, a := range m.artists {
		if a.IsActive {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemStorage) GetAiArtist(ctx context.Context, id int64) (*models.AiArtist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.artists[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (m *MemStorage) CreateAiArtist(ctx context.Context, in models.InsertAiArtist) (*models.AiArtist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	a := models.AiArtist{
		ID:          m.nextArtistID,
		Name:        in.Name,
		Description: in.Description,
		VoiceType:   in.VoiceType,
		AvatarURL:   in.AvatarURL,
		IsActive:    active,
	}
	m.nextArtistID++
	m.artists[a.ID] = a
	return &a, nil
}

func (m *MemStorage) GetUserStats(ctx context.Context, userID int64) (*models.UserStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.stats[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemStorage) UpdateUserStats(ctx context.Context, userID int64, patch models.UserStatsPatch) (*models.UserStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.stats[userID]
	if !ok {
		return nil, ErrNotFound
	}
	s.Apply(patch)
	m.stats[userID] = s
	return &s, nil
}

func (m *MemStorage) GetRoyaltyTracking(ctx context.Context, projectID int64) ([]models.RoyaltyTracking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.RoyaltyTracking, 0)
	for _, r := range m.royalties {
		if r.ProjectID == projectID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (m *MemStorage) LogSecurityEvent(ctx context.Context, in models.InsertSecurityLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[in.UserID]; !ok {
		return fmt.Errorf("log security event for user %d: %w", in.UserID, ErrUnknownUser)
	}

	meta := in.Metadata.Clone()
	if meta == nil {
		meta = models.Metadata{}
	}
	m.logs = append(m.logs, models.SecurityLog{
		ID:                m.nextLogID,
		UserID:            in.UserID,
		Action:            in.Action,
		IPAddress:         in.IPAddress,
		UserAgent:         in.UserAgent,
		DeviceFingerprint: in.DeviceFingerprint,
		Metadata:          meta,
		CreatedAt:         m.now(),
	})
	m.nextLogID++
	return nil
}

// GetSecurityLogs returns the user's newest log rows first. A non-positive limit returns all.
func (m *MemStorage) GetSecurityLogs(ctx context.Context, userID int64, limit int) ([]models.SecurityLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.SecurityLog, 0)
	for _, l := range m.logs {
		if l.UserID == userID {
			l.Metadata = l.Metadata.Clone()
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemStorage) HealthCheck(ctx context.Context) bool {
	return ctx.Err() == nil
}
