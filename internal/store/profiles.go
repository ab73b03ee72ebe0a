// internal/store/profiles.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"welfare-moa/internal/common/errors"
	"welfare-moa/internal/common/logger"
	"welfare-moa/internal/models"
	"welfare-moa/internal/survey"
)

// DefaultRetention is how long a profile and everything derived from it
// may be kept before the purge contract kicks in.
const DefaultRetention = 365 * 24 * time.Hour

// ProfileStore persists intake profiles, their survey responses, and the
// last generated results. The engine itself never touches this; only the
// service edge does.
type ProfileStore struct {
	db        *sql.DB
	retention time.Duration
	logger    logger.Logger
}

// New creates a ProfileStore with the given retention window
// (DefaultRetention if zero).
func New(db *sql.DB, retention time.Duration, log logger.Logger) *ProfileStore {
	if retention == 0 {
		retention = DefaultRetention
	}
	return &ProfileStore{
		db:        db,
		retention: retention,
		logger:    log.WithFields(map[string]interface{}{"component": "profileStore"}),
	}
}

// SaveProfile inserts or replaces a profile row.
func (s *ProfileStore) SaveProfile(ctx context.Context, profile models.UserProfile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_profiles (id, name, birth_date, region_code, region_name, district, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			birth_date = EXCLUDED.birth_date,
			region_code = EXCLUDED.region_code,
			region_name = EXCLUDED.region_name,
			district = EXCLUDED.district`,
		profile.ID, profile.Name, profile.BirthDate,
		profile.RegionCode, profile.RegionName, profile.District, profile.CreatedAt)
	if err != nil {
		return errors.NewDatabaseError("save profile", err)
	}
	return nil
}

// GetProfile loads a profile by id.
func (s *ProfileStore) GetProfile(ctx context.Context, id string) (models.UserProfile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, birth_date, region_code, region_name, district, created_at
		FROM user_profiles WHERE id = $1`, id)

	var p models.UserProfile
	err := row.Scan(&p.ID, &p.Name, &p.BirthDate, &p.RegionCode, &p.RegionName, &p.District, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return models.UserProfile{}, errors.NewInvalidRequestError("profile not found: " + id)
	}
	if err != nil {
		return models.UserProfile{}, errors.NewDatabaseError("get profile", err)
	}
	return p, nil
}

// SaveResponses stores the finalized survey responses for a profile as JSONB.
func (s *ProfileStore) SaveResponses(ctx context.Context, profileID string, responses survey.Responses, submittedAt time.Time) error {
	data, err := json.Marshal(responses)
	if err != nil {
		return errors.NewDatabaseError("marshal responses", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO survey_responses (profile_id, responses, submitted_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (profile_id) DO UPDATE SET
			responses = EXCLUDED.responses,
			submitted_at = EXCLUDED.submitted_at`,
		profileID, data, submittedAt)
	if err != nil {
		return errors.NewDatabaseError("save responses", err)
	}
	return nil
}

// GetResponses loads the stored responses for a profile. A profile
// without responses yields an empty map, not an error.
func (s *ProfileStore) GetResponses(ctx context.Context, profileID string) (survey.Responses, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT responses FROM survey_responses WHERE profile_id = $1`, profileID)

	var data []byte
	err := row.Scan(&data)
	if err == sql.ErrNoRows {
		return survey.Responses{}, nil
	}
	if err != nil {
		return nil, errors.NewDatabaseError("get responses", err)
	}

	var responses survey.Responses
	if err := json.Unmarshal(data, &responses); err != nil {
		return nil, errors.NewDatabaseError("unmarshal responses", err)
	}
	return responses, nil
}

// SaveResults stores the last generated recommendation list for a profile.
func (s *ProfileStore) SaveResults(ctx context.Context, profileID string, recs []models.Recommendation, generatedAt time.Time) error {
	data, err := json.Marshal(recs)
	if err != nil {
		return errors.NewDatabaseError("marshal results", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO recommendation_results (profile_id, results, generated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (profile_id) DO UPDATE SET
			results = EXCLUDED.results,
			generated_at = EXCLUDED.generated_at`,
		profileID, data, generatedAt)
	if err != nil {
		return errors.NewDatabaseError("save results", err)
	}
	return nil
}

// PurgeExpired deletes every profile older than the retention window,
// together with its responses and results, and reports how many profiles
// were removed. Child rows cascade on the profile delete.
func (s *ProfileStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.Add(-s.retention)
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM user_profiles WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, errors.NewDatabaseError("purge expired profiles", err)
	}
	purged, _ := res.RowsAffected()
	if purged > 0 {
		s.logger.Info("purged expired profiles", map[string]interface{}{
			"count":  purged,
			"cutoff": cutoff,
		})
	}
	return purged, nil
}
