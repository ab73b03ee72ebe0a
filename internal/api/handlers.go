// internal/api/handlers.go
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"welfare-moa/internal/common/errors"
	"welfare-moa/internal/common/validation"
	"welfare-moa/internal/engine"
	"welfare-moa/internal/models"
	"welfare-moa/internal/survey"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// RecommendationRequest is the intake payload: the validated profile
// plus whatever survey answers exist so far (may be partial).
type RecommendationRequest struct {
	UserInfo        models.UserProfile `json:"userInfo"`
	SurveyResponses survey.Responses   `json:"surveyResponses"`
}

// RecommendationResponse bundles the ranked list with its derived views.
type RecommendationResponse struct {
	Recommendations []models.Recommendation                     `json:"recommendations"`
	Grouped         map[models.Category][]models.Recommendation `json:"groupedByCategory"`
	Summary         models.Summary                              `json:"summary"`
	FromCache       bool                                        `json:"fromCache,omitempty"`
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errors.WriteHTTPError(w, r, errors.NewInvalidRequestError("malformed JSON body: "+err.Error()))
		return
	}
	if req.SurveyResponses == nil {
		req.SurveyResponses = survey.Responses{}
	}

	profile := req.UserInfo
	returningUser := profile.ID != ""
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	ctx := r.Context()

	// Returning users get the cached run when it is still fresh.
	if returningUser && s.cache != nil {
		if recs, ok, err := s.cache.Get(ctx, profile.ID); err == nil && ok {
			s.writeJSON(w, http.StatusOK, RecommendationResponse{
				Recommendations: recs,
				Grouped:         engine.GroupByCategory(recs),
				Summary:         s.engine.GenerateSummary(recs, profile),
				FromCache:       true,
			})
			return
		}
	}

	recs, err := s.engine.GenerateRecommendations(profile, req.SurveyResponses)
	if err != nil {
		s.errors.WriteHTTPError(w, r, err)
		return
	}

	s.persistRun(r, profile, req.SurveyResponses, recs)

	s.writeJSON(w, http.StatusOK, RecommendationResponse{
		Recommendations: recs,
		Grouped:         engine.GroupByCategory(recs),
		Summary:         s.engine.GenerateSummary(recs, profile),
	})
}

// persistRun stores profile, responses, results, and warms the cache.
// Persistence failures are logged but never fail the request; the user
// already has their recommendations.
func (s *Server) persistRun(r *http.Request, profile models.UserProfile, responses survey.Responses, recs []models.Recommendation) {
	ctx := r.Context()
	now := time.Now().UTC()

	if s.profiles != nil {
		if err := s.profiles.SaveProfile(ctx, profile); err != nil {
			s.logger.Warn("profile persistence failed", map[string]interface{}{
				"profileId": profile.ID, "error": err.Error(),
			})
		}
		if err := s.profiles.SaveResponses(ctx, profile.ID, responses, now); err != nil {
			s.logger.Warn("responses persistence failed", map[string]interface{}{
				"profileId": profile.ID, "error": err.Error(),
			})
		}
		if err := s.profiles.SaveResults(ctx, profile.ID, recs, now); err != nil {
			s.logger.Warn("results persistence failed", map[string]interface{}{
				"profileId": profile.ID, "error": err.Error(),
			})
		}
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, profile.ID, recs); err != nil {
			s.logger.Warn("result cache write failed", map[string]interface{}{
				"profileId": profile.ID, "error": err.Error(),
			})
		}
	}
}

// handleValidateResponses gives the intake form per-question feedback
// before submission. The engine itself never rejects lenient input;
// this is purely advisory.
func (s *Server) handleValidateResponses(w http.ResponseWriter, r *http.Request) {
	var responses survey.Responses
	if err := json.NewDecoder(r.Body).Decode(&responses); err != nil {
		s.errors.WriteHTTPError(w, r, errors.NewInvalidRequestError("malformed JSON body: "+err.Error()))
		return
	}
	s.writeJSON(w, http.StatusOK, validation.ValidateResponses(s.bank, responses))
}

func (s *Server) handlePrograms(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"programs": s.catalog.All(),
	})
}

func (s *Server) handleProgram(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	program, err := s.catalog.Get(id)
	if err != nil {
		s.errors.WriteHTTPError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, program)
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": s.bank.All(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encoding failed", map[string]interface{}{"error": err.Error()})
	}
}
