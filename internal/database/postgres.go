package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"realartist-backend/internal/models"
	"realartist-backend/internal/storage"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

const projectColumns = `id, user_id, title, lyrics, mood, genre, tempo, artist_voice, status, current_step,
	audio_url, video_url, certificate_url, bundle_url, watermark_id, royalties_earned, total_streams,
	is_public, metadata, created_at, updated_at`

const userColumns = `id, username, email, name, profile_image, account_type, created_at`

const statsColumns = `id, user_id, songs_created, total_streams, royalties_earned, ai_credits_remaining,
	subscription_plan, account_status, last_login_at, total_spent`

const artistColumns = `id, name, description, voice_type, avatar_url, is_active`

// Connect opens a pooled Postgres handle and verifies it answers.
func Connect(ctx context.Context, connectionString string, maxOpenConns int) (*sql.DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxOpenConns / 2)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// DatabaseStorage implements storage.Storage with one parameterized statement per operation.
type DatabaseStorage struct {
	db *sql.DB
}

var _ storage.Storage = (*DatabaseStorage)(nil)

func NewDatabaseStorage(db *sql.DB) *DatabaseStorage {
	return &DatabaseStorage{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Lyrics, &p.Mood, &p.Genre, &p.Tempo, &p.ArtistVoice,
		&p.Status, &p.CurrentStep, &p.AudioURL, &p.VideoURL, &p.CertificateURL, &p.BundleURL,
		&p.WatermarkID, &p.RoyaltiesEarned, &p.TotalStreams, &p.IsPublic, &p.Metadata,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Name, &u.ProfileImage, &u.AccountType, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func scanStats(row rowScanner) (*models.UserStats, error) {
	var s models.UserStats
	err := row.Scan(
		&s.ID, &s.UserID, &s.SongsCreated, &s.TotalStreams, &s.RoyaltiesEarned, &s.AiCreditsRemaining,
		&s.SubscriptionPlan, &s.AccountStatus, &s.LastLoginAt, &s.TotalSpent,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanArtist(row rowScanner) (*models.AiArtist, error) {
	var a models.AiArtist
	if err := row.Scan(&a.ID, &a.Name, &a.Description, &a.VoiceType, &a.AvatarURL, &a.IsActive); err != nil {
		return nil, err
	}
	return &a, nil
}

// notFound maps sql.ErrNoRows to storage.ErrNotFound and wraps everything else.
func notFound(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

func (d *DatabaseStorage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	u, err := scanUser(d.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "get user")
	}
	return u, nil
}

func (d *DatabaseStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := scanUser(d.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		return nil, notFound(err, "get user by username")
	}
	return u, nil
}

func (d *DatabaseStorage) CreateUser(ctx context.Context, in models.InsertUser) (*models.User, error) {
	accountType := in.AccountType
	if accountType == "" {
		accountType = models.DefaultAccountType
	}
	u, err := scanUser(d.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, name, profile_image, account_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		in.Username, in.Email, in.Name, in.ProfileImage, accountType,
	))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("create user %q: %w", in.Username, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

func (d *DatabaseStorage) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	p, err := scanProject(d.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "get project")
	}
	return p, nil
}

func (d *DatabaseStorage) GetProjectsByUserID(ctx context.Context, userID int64) ([]models.Project, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, nil
}

func (d *DatabaseStorage) CreateProject(ctx context.Context, in models.InsertProject) (*models.Project, error) {
	np := storage.NewProject(in)
	p, err := scanProject(d.db.QueryRowContext(ctx, `
		INSERT INTO projects (user_id, title, lyrics, mood, genre, tempo, artist_voice, status, current_step, is_public, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+projectColumns,
		np.UserID, np.Title, np.Lyrics, np.Mood, np.Genre, np.Tempo, np.ArtistVoice,
		np.Status, np.CurrentStep, np.IsPublic, np.Metadata,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("create project for user %d: %w", in.UserID, storage.ErrUnknownUser)
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// projectAssignments lists the SET clauses for the provided patch fields, numbered from $1.
func projectAssignments(patch models.ProjectPatch) ([]string, []any) {
	var sets []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Lyrics.Set {
		add("lyrics", nullableArg(patch.Lyrics))
	}
	if patch.Mood.Set {
		add("mood", nullableArg(patch.Mood))
	}
	if patch.Genre.Set {
		add("genre", nullableArg(patch.Genre))
	}
	if patch.Tempo != nil {
		add("tempo", *patch.Tempo)
	}
	if patch.ArtistVoice.Set {
		add("artist_voice", nullableArg(patch.ArtistVoice))
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.CurrentStep != nil {
		add("current_step", *patch.CurrentStep)
	}
	if patch.AudioURL.Set {
		add("audio_url", nullableArg(patch.AudioURL))
	}
	if patch.VideoURL.Set {
		add("video_url", nullableArg(patch.VideoURL))
	}
	if patch.CertificateURL.Set {
		add("certificate_url", nullableArg(patch.CertificateURL))
	}
	if patch.BundleURL.Set {
		add("bundle_url", nullableArg(patch.BundleURL))
	}
	if patch.WatermarkID.Set {
		add("watermark_id", nullableArg(patch.WatermarkID))
	}
	if patch.RoyaltiesEarned != nil {
		add("royalties_earned", *patch.RoyaltiesEarned)
	}
	if patch.TotalStreams != nil {
		add("total_streams", *patch.TotalStreams)
	}
	if patch.IsPublic != nil {
		add("is_public", *patch.IsPublic)
	}
	if patch.Metadata != nil {
		add("metadata", patch.Metadata)
	}
	return sets, args
}

// nullableArg unwraps a present Nullable into a query argument; null becomes SQL NULL.
func nullableArg[T any](n models.Nullable[T]) any {
	if n.Value == nil {
		return nil
	}
	return *n.Value
}

func (d *DatabaseStorage) UpdateProject(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error) {
	sets, args := projectAssignments(patch)
	// GREATEST keeps updated_at monotonic when the database clock steps back.
	sets = append(sets, "updated_at = GREATEST(NOW(), updated_at)")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE projects SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), projectColumns)

	p, err := scanProject(d.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFound(err, "update project")
	}
	return p, nil
}

func (d *DatabaseStorage) DeleteProject(ctx context.Context, id int64) (bool, error) {
	res, err := d.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	return n > 0, nil
}

func (d *DatabaseStorage) GetAiArtists(ctx context.Context) ([]models.AiArtist, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT `+artistColumns+` FROM ai_artists WHERE is_active = TRUE ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list ai artists: %w", err)
	}
	defer rows.Close()

	artists := make([]models.AiArtist, 0)
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ai artist: %w", err)
		}
		artists = append(artists, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list ai artists: %w", err)
	}
	return artists, nil
}

func (d *DatabaseStorage) GetAiArtist(ctx context.Context, id int64) (*models.AiArtist, error) {
	a, err := scanArtist(d.db.QueryRowContext(ctx, `SELECT `+artistColumns+` FROM ai_artists WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "get ai artist")
	}
	return a, nil
}

func (d *DatabaseStorage) CreateAiArtist(ctx context.Context, in models.InsertAiArtist) (*models.AiArtist, error) {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	a, err := scanArtist(d.db.QueryRowContext(ctx, `
		INSERT INTO ai_artists (name, description, voice_type, avatar_url, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+artistColumns,
		in.Name, in.Description, in.VoiceType, in.AvatarURL, active,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create ai artist: %w", err)
	}
	return a, nil
}

func (d *DatabaseStorage) GetUserStats(ctx context.Context, userID int64) (*models.UserStats, error) {
	s, err := scanStats(d.db.QueryRowContext(ctx, `
		SELECT `+statsColumns+` FROM user_stats WHERE user_id = $1 ORDER BY id LIMIT 1`, userID))
	if err != nil {
		return nil, notFound(err, "get user stats")
	}
	return s, nil
}

func (d *DatabaseStorage) UpdateUserStats(ctx context.Context, userID int64, patch models.UserStatsPatch) (*models.UserStats, error) {
	var sets []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.SongsCreated != nil {
		add("songs_created", *patch.SongsCreated)
	}
	if patch.TotalStreams != nil {
		add("total_streams", *patch.TotalStreams)
	}
	if patch.RoyaltiesEarned != nil {
		add("royalties_earned", *patch.RoyaltiesEarned)
	}
	if patch.AiCreditsRemaining != nil {
		add("ai_credits_remaining", *patch.AiCreditsRemaining)
	}
	if patch.SubscriptionPlan != nil {
		add("subscription_plan", *patch.SubscriptionPlan)
	}
	if patch.AccountStatus != nil {
		add("account_status", *patch.AccountStatus)
	}
	if patch.LastLoginAt != nil {
		add("last_login_at", *patch.LastLoginAt)
	}
	if patch.TotalSpent != nil {
		add("total_spent", *patch.TotalSpent)
	}
	if len(sets) == 0 {
		return d.GetUserStats(ctx, userID)
	}
	args = append(args, userID)

	query := fmt.Sprintf(`UPDATE user_stats SET %s WHERE user_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), statsColumns)

	s, err := scanStats(d.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFound(err, "update user stats")
	}
	return s, nil
}

func (d *DatabaseStorage) GetRoyaltyTracking(ctx context.Context, projectID int64) ([]models.RoyaltyTracking, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, project_id, platform, stream_count, revenue, date, created_at
		FROM royalty_tracking
		WHERE project_id = $1
		ORDER BY date DESC, id
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get royalty tracking: %w", err)
	}
	defer rows.Close()

	out := make([]models.RoyaltyTracking, 0)
	for rows.Next() {
		var r models.RoyaltyTracking
		if err := rows.Scan(&r.ID, &r.ProjectID, &r.Platform, &r.StreamCount, &r.Revenue, &r.Date, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan royalty row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get royalty tracking: %w", err)
	}
	return out, nil
}

func (d *DatabaseStorage) LogSecurityEvent(ctx context.Context, in models.InsertSecurityLog) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO security_logs (user_id, action, ip_address, user_agent, device_fingerprint, metadata)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, in.UserID, in.Action, in.IPAddress, in.UserAgent, in.DeviceFingerprint, in.Metadata)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("log security event for user %d: %w", in.UserID, storage.ErrUnknownUser)
		}
		return fmt.Errorf("failed to log security event: %w", err)
	}
	return nil
}

func (d *DatabaseStorage) GetSecurityLogs(ctx context.Context, userID int64, limit int) ([]models.SecurityLog, error) {
	query := `
		SELECT id, user_id, action, ip_address, user_agent, device_fingerprint, metadata, created_at
		FROM security_logs
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get security logs: %w", err)
	}
	defer rows.Close()

	out := make([]models.SecurityLog, 0)
	for rows.Next() {
		var l models.SecurityLog
		err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.IPAddress, &l.UserAgent, &l.DeviceFingerprint, &l.Metadata, &l.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan security log: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get security logs: %w", err)
	}
	return out, nil
}

func (d *DatabaseStorage) HealthCheck(ctx context.Context) bool {
	var one int
	if err := d.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one); err != nil {
		return false
	}
	return one == 1
}

func (d *DatabaseStorage) Close() error {
	return d.db.Close()
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
