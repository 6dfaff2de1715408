// Package demo holds the fixed demo dataset used by the in-memory store and the seed command.
package demo

import (
	"time"

	"realartist-backend/internal/models"
)

// UserID is the id of the single demo account.
const UserID int64 = 1

type Dataset struct {
	Users        []models.User
	Artists      []models.AiArtist
	Stats        []models.UserStats
	Models       []models.AiModel
	Projects     []models.Project
	Royalties    []models.RoyaltyTracking
	SecurityLogs []models.SecurityLog
}

// Build returns a fresh copy of the demo rows, with timestamps relative to now.
func Build(now time.Time) Dataset {
	hours := func(h int) time.Time { return now.Add(-time.Duration(h) * time.Hour) }

	return Dataset{
		Users: []models.User{{
			ID:           UserID,
			Username:     "ervin_radosavlevici",
			Email:        "admin@root-cloud.com",
			Name:         "Ervin Remus Radosavlevici",
			ProfileImage: str("https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=150&h=150&fit=crop&crop=face"),
			AccountType:  models.DefaultAccountType,
			CreatedAt:    hours(24 * 30),
		}},
		Artists: []models.AiArtist{
			artist(1, "Luna Vox", "Ethereal pop voice with celestial undertones perfect for dreamy ballads", "pop", "photo-1494790108755-2616c55f3044"),
			artist(2, "Neon Pulse", "High-energy electronic vocals perfect for EDM and dance tracks", "electronic", "photo-1472099645785-5658abf4ff4e"),
			artist(3, "Soul Fire", "Rich, powerful R&B voice with emotional depth and smooth delivery", "r&b", "photo-1438761681033-6461ffad8d80"),
			artist(4, "Urban Flow", "Smooth hip-hop vocals with street authenticity and modern style", "hip-hop", "photo-1507003211169-0a1dd7228f2d"),
			artist(5, "Country Star", "Warm, storytelling vocals with country charm and authentic twang", "country", "photo-1500648767791-00dcc994a43e"),
		},
		Stats: []models.UserStats{{
			ID:                 1,
			UserID:             UserID,
			SongsCreated:       47,
			TotalStreams:       2847392,
			RoyaltiesEarned:    1284753,
			AiCreditsRemaining: 850,
			SubscriptionPlan:   "professional",
			AccountStatus:      "active",
			LastLoginAt:        timePtr(now),
			TotalSpent:         9900,
		}},
		Models: []models.AiModel{
			{
				ID:             1,
				Name:           "VocalCore Pro",
				Type:           "voice",
				Version:        "3.2.1",
				Capabilities:   models.JSONB(`{"languages":["en","es","fr"],"styles":["pop","rock","jazz"]}`),
				Languages:      []string{"english", "spanish", "french"},
				QualityLevel:   "professional",
				ProcessingTime: 120,
				IsActive:       true,
			},
			{
				ID:             2,
				Name:           "InstrumentAI Studio",
				Type:           "instrumental",
				Version:        "2.8.4",
				Capabilities:   models.JSONB(`{"genres":["pop","electronic","r&b","hip-hop"],"instruments":["piano","guitar","drums","bass"]}`),
				Languages:      []string{"universal"},
				QualityLevel:   "studio",
				ProcessingTime: 180,
				IsActive:       true,
			},
		},
		Projects: []models.Project{
			complete(1, "Midnight Dreams", "midnight-dreams", "WM_MD_2025_001", hours(3),
				"Walking through the city lights at midnight\nDreaming of tomorrow's bright\nStars above us shining so bright\nEverything feels so right\n\nIn this moment time stands still\nEvery heartbeat I can feel\nDancing shadows on the wall\nMidnight dreams encompass all",
				"dreamy", "pop", 120, "Luna Vox", 2847, 28473, true),
			complete(2, "Electric Pulse", "electric-pulse", "WM_EP_2025_002", hours(24),
				"Feel the beat inside your soul\nLet the music take control\nDance until you lose it all\nAnswer when the night calls\n\nElectric pulse running through my veins\nNothing left but music in my brain\nLights are flashing colors so bright\nWe'll be dancing all through the night",
				"energetic", "electronic", 128, "Neon Pulse", 1823, 18230, true),
			complete(3, "Ocean Waves", "ocean-waves", "WM_OW_2025_003", hours(72),
				"Listen to the ocean calling\nWaves are gently falling\nPeaceful moments washing over me\nIn this place I'm finally free\n\nSalty air and endless blue\nEvery wave brings something new\nIn the rhythm of the sea\nI find who I'm meant to be",
				"peaceful", "ambient", 85, "Luna Vox", 956, 9560, false),
			{
				ID:          4,
				UserID:      UserID,
				Title:       "Future Beats",
				Lyrics:      str("Welcome to the future sound\nBeats that make you move around\nDigital dreams come alive\nIn this world we learn to thrive\n\nSynthetic melodies fill the air\nNeon lights are everywhere\nDancing through tomorrow's night\nEverything feels so right"),
				Mood:        str("futuristic"),
				Genre:       str("synthwave"),
				Tempo:       intPtr(140),
				ArtistVoice: str("Neon Pulse"),
				Status:      models.ProjectStatusProcessing,
				CurrentStep: 4,
				Metadata:    studioMetadata(),
				CreatedAt:   hours(1),
				UpdatedAt:   hours(1),
			},
		},
		Royalties: []models.RoyaltyTracking{
			{ID: 1, ProjectID: 1, Platform: "spotify", StreamCount: 15420, Revenue: 1542, Date: day(2025, 1, 15), CreatedAt: now},
			{ID: 2, ProjectID: 1, Platform: "apple_music", StreamCount: 8930, Revenue: 1250, Date: day(2025, 1, 15), CreatedAt: now},
			{ID: 3, ProjectID: 2, Platform: "youtube_music", StreamCount: 12340, Revenue: 890, Date: day(2025, 1, 14), CreatedAt: now},
		},
		SecurityLogs: []models.SecurityLog{
			{
				ID:                1,
				UserID:            UserID,
				Action:            "login",
				IPAddress:         "192.168.1.100",
				UserAgent:         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
				DeviceFingerprint: "fp_12345abcde",
				Metadata:          models.Metadata{models.MetaLoginMethod: "password", models.MetaSuccess: "true"},
				CreatedAt:         hours(2),
			},
			{
				ID:                2,
				UserID:            UserID,
				Action:            "project_created",
				IPAddress:         "192.168.1.100",
				UserAgent:         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
				DeviceFingerprint: "fp_12345abcde",
				Metadata:          models.Metadata{models.MetaProjectTitle: "Midnight Dreams", models.MetaAiArtist: "Luna Vox"},
				CreatedAt:         hours(3),
			},
		},
	}
}

func complete(id int64, title, slug, watermark string, created time.Time, lyrics, mood, genre string, tempo int, voice string, royalties, streams int64, public bool) models.Project {
	return models.Project{
		ID:              id,
		UserID:          UserID,
		Title:           title,
		Lyrics:          str(lyrics),
		Mood:            str(mood),
		Genre:           str(genre),
		Tempo:           intPtr(tempo),
		ArtistVoice:     str(voice),
		Status:          models.ProjectStatusComplete,
		CurrentStep:     models.LastWorkflowStep,
		AudioURL:        str("/api/audio/" + slug + ".mp3"),
		VideoURL:        str("/api/video/" + slug + ".mp4"),
		CertificateURL:  str("/api/certificates/" + slug + ".pdf"),
		BundleURL:       str("/api/bundles/" + slug + ".zip"),
		WatermarkID:     str(watermark),
		RoyaltiesEarned: royalties,
		TotalStreams:    streams,
		IsPublic:        public,
		Metadata:        studioMetadata(),
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func artist(id int64, name, description, voiceType, photo string) models.AiArtist {
	return models.AiArtist{
		ID:          id,
		Name:        name,
		Description: str(description),
		VoiceType:   voiceType,
		AvatarURL:   str("https://images.unsplash.com/" + photo + "?w=300&h=300&fit=crop&crop=face"),
		IsActive:    true,
	}
}

func studioMetadata() models.Metadata {
	return models.Metadata{models.MetaQuality: "studio", models.MetaProtection: "quantum"}
}

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func str(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }
