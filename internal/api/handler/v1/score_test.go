package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/service"
)

type fakeScoreService struct {
	entries map[uint][]domain.ScoreEntry

	lastSaved []domain.ScoreEntry
}

func (f *fakeScoreService) GetScoresForActivity(_ context.Context, activityID uint) ([]domain.ScoreEntry, error) {
	entries, ok := f.entries[activityID]
	if !ok {
		return nil, service.ErrActivityNotFound
	}
	return entries, nil
}

func (f *fakeScoreService) SaveScores(_ context.Context, activityID uint, entries []domain.ScoreEntry) (int, error) {
	if _, ok := f.entries[activityID]; !ok {
		return 0, service.ErrActivityNotFound
	}
	f.lastSaved = entries
	return len(entries), nil
}

func newScoreRouter(svc ScoreService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewScoreHandler(svc)
	router.GET("/activities/:activityID/scores", handler.HandleGetScores)
	router.PUT("/activities/:activityID/scores", handler.HandleSaveScores)

	return router
}

func TestScoreHandler_HandleGetScores(t *testing.T) {
	svc := &fakeScoreService{
		entries: map[uint][]domain.ScoreEntry{
			10: {{ActivityID: 10, UnitID: 1, Score: 50, Note: "bien"}},
		},
	}
	router := newScoreRouter(svc)

	t.Run("200 with the saved entries", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/activities/10/scores", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"activity_id":10,"unit_id":1,"score":50,"note":"bien"}]`, w.Body.String())
	})

	t.Run("404 for an unknown activity", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/activities/404/scores", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("400 for a malformed activity ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/activities/abc/scores", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestScoreHandler_HandleSaveScores(t *testing.T) {
	t.Run("200 with the persisted count", func(t *testing.T) {
		svc := &fakeScoreService{entries: map[uint][]domain.ScoreEntry{10: {}}}
		router := newScoreRouter(svc)

		body := `{"entries":[{"unit_id":1,"score":60},{"unit_id":2,"score":80,"note":"gran trabajo"}]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/activities/10/scores", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"count":2}`, w.Body.String())
		require.Len(t, svc.lastSaved, 2)
		assert.Equal(t, uint(10), svc.lastSaved[0].ActivityID)
	})

	t.Run("400 for a score out of range", func(t *testing.T) {
		svc := &fakeScoreService{entries: map[uint][]domain.ScoreEntry{10: {}}}
		router := newScoreRouter(svc)

		body := `{"entries":[{"unit_id":1,"score":101}]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/activities/10/scores", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, svc.lastSaved)
	})

	t.Run("404 for an unknown activity", func(t *testing.T) {
		svc := &fakeScoreService{entries: map[uint][]domain.ScoreEntry{}}
		router := newScoreRouter(svc)

		body := `{"entries":[{"unit_id":1,"score":50}]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/activities/10/scores", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
