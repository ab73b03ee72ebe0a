// internal/api/handlers_test.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"welfare-moa/internal/cache"
	"welfare-moa/internal/catalog"
	"welfare-moa/internal/common/logger"
	"welfare-moa/internal/engine"
	"welfare-moa/internal/models"
	"welfare-moa/internal/rules"
	"welfare-moa/internal/survey"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T, resultCache *cache.ResultCache) *Server {
	log := logger.NewTestLogger(t)
	eng := engine.New(catalog.Default(), survey.DefaultBank(), rules.DefaultTable(), log,
		engine.WithClock(func() time.Time { return testNow }))
	return NewServer(eng, catalog.Default(), survey.DefaultBank(), resultCache, nil, log)
}

func recommendationBody() []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"userInfo": map[string]interface{}{
			"name":       "김영희",
			"birthDate":  "1956-03-10T00:00:00Z",
			"regionCode": "11",
			"regionName": "서울특별시",
			"district":   "강남구",
		},
		"surveyResponses": map[string]interface{}{
			"h3": "moderate",
			"h4": "no",
			"l1": "alone",
			"l2": "rarely",
			"l4": "poor",
			"e1": "insufficient",
			"e3": "needed",
			"e4": []string{"none"},
		},
	})
	return body
}

func TestHandleRecommendations(t *testing.T) {
	server := newTestServer(t, nil)
	router := server.Router()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewReader(recommendationBody()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp RecommendationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Recommendations)
	assert.False(t, resp.FromCache)
	assert.Equal(t, "long-term-care", resp.Recommendations[0].Program.ID)
	assert.Equal(t, 90, resp.Recommendations[0].MatchingScore)
	assert.Equal(t, "김영희", resp.Summary.UserName)
	assert.Equal(t, 70, resp.Summary.Age)
	assert.Len(t, resp.Grouped, 4)
}

func TestHandleRecommendations_MalformedBody(t *testing.T) {
	server := newTestServer(t, nil)
	router := server.Router()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.NotEmpty(t, errResp["code"])
}

func TestHandleRecommendations_InvalidProfile(t *testing.T) {
	server := newTestServer(t, nil)
	router := server.Router()

	body, _ := json.Marshal(map[string]interface{}{
		"userInfo": map[string]interface{}{
			"name":       "김",
			"birthDate":  "1956-03-10T00:00:00Z",
			"regionName": "서울특별시",
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRecommendations_CacheHitForReturningUser(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	resultCache := cache.New(rdb, time.Hour, logger.NewNoOpLogger())

	cached := []models.Recommendation{
		{Program: models.WelfareProgram{ID: "basic-pension", Category: models.CategoryEconomic}, MatchingScore: 75},
	}
	require.NoError(t, resultCache.Set(context.Background(), "profile-1", cached))

	server := newTestServer(t, resultCache)
	router := server.Router()

	body, _ := json.Marshal(map[string]interface{}{
		"userInfo": map[string]interface{}{
			"id":         "profile-1",
			"name":       "김영희",
			"birthDate":  "1956-03-10T00:00:00Z",
			"regionName": "서울특별시",
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp RecommendationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.FromCache)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "basic-pension", resp.Recommendations[0].Program.ID)
}

func TestHandleValidateResponses(t *testing.T) {
	server := newTestServer(t, nil)
	router := server.Router()

	body := []byte(`{"h1": "fantastic"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/responses/validate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Valid  bool `json:"valid"`
		Errors []struct {
			Field string `json:"field"`
			Code  string `json:"code"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
}

func TestHandlePrograms(t *testing.T) {
	server := newTestServer(t, nil)
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/programs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Programs []models.WelfareProgram `json:"programs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Programs, 7)
}

func TestHandleProgram(t *testing.T) {
	server := newTestServer(t, nil)
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/programs/basic-pension", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var program models.WelfareProgram
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &program))
	assert.Equal(t, "기초연금", program.Name)
}

func TestHandleProgram_NotFound(t *testing.T) {
	server := newTestServer(t, nil)
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/programs/no-such-program", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleQuestions(t *testing.T) {
	server := newTestServer(t, nil)
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/questions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Questions []survey.Question `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Questions, 12)
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(t, nil)
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
