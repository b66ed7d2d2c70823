package activity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	trackErr   error
	stats      *UserStatistics
	leaders    []*LeaderboardEntry
	readErr    error
	gotLimit   int
	gotGuildID int64
}

func (f *fakeService) TrackMessage(_ context.Context, _ int64, username string, _ int64, ts time.Time) error {
	if f.trackErr != nil {
		return f.trackErr
	}
	if username == "" {
		return fmt.Errorf("%w: username is empty", ErrInvalidEvent)
	}
	if ts.IsZero() {
		return fmt.Errorf("%w: timestamp is zero", ErrInvalidEvent)
	}
	return nil
}

func (f *fakeService) GetUserStatistics(_ context.Context, _ int64, guildID int64) (*UserStatistics, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	f.gotGuildID = guildID
	return f.stats, nil
}

func (f *fakeService) GetLeaderboard(_ context.Context, guildID int64, limit int) ([]*LeaderboardEntry, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	f.gotGuildID = guildID
	f.gotLimit = limit
	return f.leaders, nil
}

func newTestRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	RegisterRoutes(engine.Group("/api"), NewHandler(svc))
	return engine
}

func TestTrackMessageEndpoint(t *testing.T) {
	engine := newTestRouter(&fakeService{})

	body := `{"user_id": 1, "username": "alice", "guild_id": 9, "timestamp": "2025-06-15T14:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestTrackMessageEndpointBadBody(t *testing.T) {
	engine := newTestRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(`{"user_id": "nope"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrackMessageEndpointInfrastructureError(t *testing.T) {
	engine := newTestRouter(&fakeService{trackErr: errors.New("connection refused")})

	body := `{"user_id": 1, "username": "alice", "guild_id": 9, "timestamp": "2025-06-15T14:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetUserStatisticsEndpoint(t *testing.T) {
	svc := &fakeService{stats: &UserStatistics{TodayCount: 3, TotalCount: 5}}
	engine := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/guilds/9/users/1/statistics", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(9), svc.gotGuildID)

	var resp StatisticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, int64(3), resp.Statistics.TodayCount)
	assert.Equal(t, int64(5), resp.Statistics.TotalCount)
}

func TestGetUserStatisticsEndpointBadIDs(t *testing.T) {
	engine := newTestRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/guilds/abc/users/1/statistics", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetLeaderboardEndpoint(t *testing.T) {
	svc := &fakeService{leaders: []*LeaderboardEntry{
		{UserID: 1, Username: "alice", MessageCount: 5},
		{UserID: 2, Username: "bob", MessageCount: 3},
	}}
	engine := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/guilds/9/leaderboard?limit=2", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, svc.gotLimit)

	var resp LeaderboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Leaders, 2)
	assert.Equal(t, "alice", resp.Leaders[0].Username)
}

func TestGetLeaderboardEndpointDefaultLimit(t *testing.T) {
	svc := &fakeService{}
	engine := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/guilds/9/leaderboard", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, DefaultLeaderboardLimit, svc.gotLimit)
}

func TestGetLeaderboardEndpointReadError(t *testing.T) {
	engine := newTestRouter(&fakeService{readErr: errors.New("connection reset")})

	req := httptest.NewRequest(http.MethodGet, "/api/guilds/9/leaderboard", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
