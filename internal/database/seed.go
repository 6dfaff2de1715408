package database

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"realartist-backend/internal/demo"
)

// seedTables are truncated before the demo rows go back in.
var seedTables = []string{
	"security_logs", "royalty_tracking", "content_protection", "collaborations",
	"projects", "user_stats", "ai_artists", "ai_models", "users",
}

// OpenGorm opens the gorm handle used by the seed command.
func OpenGorm(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}
	return db, nil
}

// Seed replaces the contents of every table with ds in a single transaction. Sequences restart,
// so the demo user comes back as id 1; foreign keys are remapped to the ids the database assigns.
func Seed(ctx context.Context, db *gorm.DB, ds demo.Dataset, lg *zap.SugaredLogger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		truncate := "TRUNCATE TABLE " + strings.Join(seedTables, ", ") + " RESTART IDENTITY CASCADE"
		if err := tx.Exec(truncate).Error; err != nil {
			return fmt.Errorf("clear tables: %w", err)
		}

		userIDs := make(map[int64]int64, len(ds.Users))
		for _, u := range ds.Users {
			old := u.ID
			u.ID = 0
			if err := tx.Create(&u).Error; err != nil {
				return fmt.Errorf("seed user %s: %w", u.Username, err)
			}
			userIDs[old] = u.ID
		}

		for _, a := range ds.Artists {
			a.ID = 0
			if err := tx.Create(&a).Error; err != nil {
				return fmt.Errorf("seed ai artist %s: %w", a.Name, err)
			}
		}

		for _, m := range ds.Models {
			m.ID = 0
			if err := tx.Create(&m).Error; err != nil {
				return fmt.Errorf("seed ai model %s: %w", m.Name, err)
			}
		}

		for _, s := range ds.Stats {
			s.ID = 0
			s.UserID = userIDs[s.UserID]
			if err := tx.Create(&s).Error; err != nil {
				return fmt.Errorf("seed user stats: %w", err)
			}
		}

		projectIDs := make(map[int64]int64, len(ds.Projects))
		for _, p := range ds.Projects {
			old := p.ID
			p.ID = 0
			p.UserID = userIDs[p.UserID]
			if err := tx.Create(&p).Error; err != nil {
				return fmt.Errorf("seed project %s: %w", p.Title, err)
			}
			projectIDs[old] = p.ID
		}

		for _, r := range ds.Royalties {
			r.ID = 0
			r.ProjectID = projectIDs[r.ProjectID]
			if err := tx.Create(&r).Error; err != nil {
				return fmt.Errorf("seed royalty row: %w", err)
			}
		}

		for _, l := range ds.SecurityLogs {
			l.ID = 0
			l.UserID = userIDs[l.UserID]
			if err := tx.Create(&l).Error; err != nil {
				return fmt.Errorf("seed security log: %w", err)
			}
		}

		lg.Infow("seeded demo dataset",
			"users", len(ds.Users),
			"artists", len(ds.Artists),
			"projects", len(ds.Projects),
			"royalties", len(ds.Royalties),
		)
		return nil
	})
}
