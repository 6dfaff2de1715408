package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"realartist-backend/internal/generation"
	"realartist-backend/internal/handlers"
	"realartist-backend/internal/middleware"
	"realartist-backend/internal/models"
	"realartist-backend/internal/services"
	"realartist-backend/internal/storage"
)

var errBoom = errors.New("connection reset by peer")

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

func newStore() *storage.MemStorage {
	clock := &steppingClock{cur: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}
	return storage.NewMemStorage(storage.WithClock(clock.Now))
}

// recordingAssets is an assets.Store that remembers deleted projects.
type recordingAssets struct {
	mu      sync.Mutex
	deleted []int64
	err     error
}

func (r *recordingAssets) PublicURL(path string) string {
	return "https://cdn.test/" + path
}

func (r *recordingAssets) DeleteProjectAssets(ctx context.Context, userID, projectID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted = append(r.deleted, projectID)
	return r.err
}

// failingStore fails every call it overrides; the rest panic through the nil interface.
type failingStore struct {
	storage.Storage
}

func (failingStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return nil, errBoom
}

func (failingStore) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	return nil, errBoom
}

func (failingStore) GetProjectsByUserID(ctx context.Context, userID int64) ([]models.Project, error) {
	return nil, errBoom
}

func (failingStore) CreateProject(ctx context.Context, in models.InsertProject) (*models.Project, error) {
	return nil, errBoom
}

func (failingStore) GetAiArtists(ctx context.Context) ([]models.AiArtist, error) {
	return nil, errBoom
}

func (failingStore) HealthCheck(ctx context.Context) bool {
	return false
}

// newTestRouter mounts every handler under the same paths the server uses.
func newTestRouter(store storage.Storage, assetStore *recordingAssets) *gin.Engine {
	return newTestRouterAs(store, assetStore, 1)
}

// newTestRouterAs is newTestRouter with userID as the acting demo user.
func newTestRouterAs(store storage.Storage, assetStore *recordingAssets, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	lg := zap.NewNop().Sugar()
	started := time.Now().Add(-time.Minute)

	health := handlers.NewHealthHandler(store, "2025.1.0", "test", started)
	user := handlers.NewUserHandler(store, lg)
	projects := handlers.NewProjectsHandler(store, assetStore, lg)
	artists := handlers.NewArtistsHandler(store, lg)
	gen := handlers.NewGenerationHandler(generation.NewSimulator(assetStore,
		generation.WithSleeper(generation.NoSleep), generation.WithSeed(7)), lg)
	analytics := handlers.NewAnalyticsHandler(services.NewAnalyticsService(store, "2025.1.0", started), lg)
	security := handlers.NewSecurityHandler(store, lg)

	router := gin.New()
	router.GET("/health", health.Liveness)
	api := router.Group("/api")
	api.GET("/health", health.Readiness)
	api.GET("/health/db", health.Database)
	api.GET("/version", health.Version)

	api.Use(middleware.Identity(userID, ""))
	api.GET("/user", user.GetUser)
	api.GET("/user/stats", user.GetStats)
	api.GET("/projects", projects.ListProjects)
	api.GET("/projects/:id", projects.GetProject)
	api.POST("/projects", projects.CreateProject)
	api.PATCH("/projects/:id", projects.UpdateProject)
	api.DELETE("/projects/:id", projects.DeleteProject)
	api.GET("/projects/:id/royalties", projects.GetProjectRoyalties)
	api.GET("/ai-artists", artists.ListArtists)
	api.GET("/ai-artists/:id", artists.GetArtist)
	api.POST("/ai/generate-script", gen.GenerateScript)
	api.POST("/ai/generate-voice", gen.GenerateVoice)
	api.POST("/ai/generate-instrumental", gen.GenerateInstrumental)
	api.GET("/analytics/dashboard", analytics.Dashboard)
	api.GET("/royalties/summary", analytics.RoyaltySummary)
	api.GET("/monitor", analytics.Monitor)
	api.GET("/security/logs", security.ListLogs)
	return router
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
