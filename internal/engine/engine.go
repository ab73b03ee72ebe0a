// internal/engine/engine.go
package engine

import (
	"sort"
	"strings"
	"time"

	"welfare-moa/internal/catalog"
	"welfare-moa/internal/common/errors"
	"welfare-moa/internal/common/logger"
	"welfare-moa/internal/common/metrics"
	"welfare-moa/internal/models"
	"welfare-moa/internal/rules"
	"welfare-moa/internal/survey"
)

const (
	// baseScore is granted once every required condition holds.
	baseScore = 60
	// defaultScore is assigned to programs without a rule entry. It sits
	// exactly on the default inclusion threshold, so such programs are
	// always included at minimum strength (inclusive >=, kept on purpose).
	defaultScore = 50
	// regionBonus rewards nationwide programs and exact region matches.
	regionBonus = 5
	// maxScore caps the final score.
	maxScore = 100

	// DefaultMinScore is the inclusion threshold unless configured.
	DefaultMinScore = 50
	// highPriorityScore marks a recommendation as high priority in the summary.
	highPriorityScore = 80
)

// Engine scores a user profile against the program catalog. It holds no
// mutable state; every dependency is injected and every run is a pure
// function of its inputs plus the injected clock.
type Engine struct {
	catalog  *catalog.Store
	bank     *survey.Bank
	rules    rules.Table
	minScore int
	now      func() time.Time
	logger   logger.Logger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithMinScore overrides the inclusion threshold (score >= min).
func WithMinScore(min int) Option {
	return func(e *Engine) { e.minScore = min }
}

// WithClock injects the time source used for age computation and
// summary timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine over the given catalog, question bank and rule table.
func New(cat *catalog.Store, bank *survey.Bank, table rules.Table, log logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		catalog:  cat,
		bank:     bank,
		rules:    table,
		minScore: DefaultMinScore,
		now:      time.Now,
		logger:   log.WithFields(map[string]interface{}{"component": "engine"}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GenerateRecommendations evaluates every active program and returns the
// qualifying ones, ordered by descending score with catalog order as the
// tie-break. A malformed rule entry excludes only its own program.
func (e *Engine) GenerateRecommendations(profile models.UserProfile, responses survey.Responses) ([]models.Recommendation, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	start := e.now()
	age := profile.Age(start)
	ctx := rules.EvalContext{Age: age, Responses: responses, Bank: e.bank}

	recommendations := make([]models.Recommendation, 0, e.catalog.Len())
	for _, program := range e.catalog.AllActive() {
		score, err := e.scoreProgram(program, profile, ctx)
		if err != nil {
			// Isolate the bad rule entry; the rest of the catalog still scores.
			e.logger.Warn("skipping program, rule evaluation failed", map[string]interface{}{
				"programId": program.ID,
				"error":     err.Error(),
			})
			metrics.ProgramsExcluded.WithLabelValues("rule_error").Inc()
			continue
		}
		if score < e.minScore {
			metrics.ProgramsExcluded.WithLabelValues("below_threshold").Inc()
			continue
		}
		recommendations = append(recommendations, models.Recommendation{
			Program:         program,
			MatchingScore:   score,
			MatchingReasons: e.matchingReasons(program, profile, responses, age),
		})
	}

	// Stable: equal scores keep catalog declaration order.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchingScore > recommendations[j].MatchingScore
	})

	metrics.RecommendationsGenerated.Inc()
	metrics.EngineDuration.Observe(time.Since(start).Seconds())

	e.logger.Info("recommendations generated", map[string]interface{}{
		"userAge":   age,
		"region":    profile.RegionName,
		"total":     len(recommendations),
		"evaluated": e.catalog.Len(),
	})

	return recommendations, nil
}

// scoreProgram computes the 0-100 match score of one program.
func (e *Engine) scoreProgram(program models.WelfareProgram, profile models.UserProfile, ctx rules.EvalContext) (int, error) {
	rule, ok := e.rules[program.ID]
	if !ok {
		return defaultScore, nil
	}

	failedAt, err := rules.EvaluateRequired(rule.RequiredConditions, ctx)
	if err != nil {
		return 0, err
	}
	if failedAt >= 0 {
		e.logger.Debug("required condition failed", map[string]interface{}{
			"programId":      program.ID,
			"conditionIndex": failedAt,
			"conditionType":  string(rule.RequiredConditions[failedAt].Type),
		})
		return 0, nil
	}

	score := baseScore
	for _, bonus := range rule.BonusConditions {
		ok, err := rules.Evaluate(bonus, ctx)
		if err != nil {
			return 0, err
		}
		if ok {
			// Overlapping bonus conditions stack; no deduplication.
			score += bonus.BonusPoints()
		}
	}

	if program.RegionScope == models.RegionScopeNationwide || program.RegionScope == profile.RegionName {
		score += regionBonus
	}

	if score > maxScore {
		score = maxScore
	}
	return score, nil
}

// GroupByCategory buckets recommendations into the fixed category set.
// Unrecognized categories land in 생활 (Living).
func GroupByCategory(recommendations []models.Recommendation) map[models.Category][]models.Recommendation {
	grouped := map[models.Category][]models.Recommendation{
		models.CategoryEconomic: {},
		models.CategoryHealth:   {},
		models.CategoryLiving:   {},
		models.CategoryHousing:  {},
	}
	for _, rec := range recommendations {
		if _, ok := grouped[rec.Program.Category]; ok {
			grouped[rec.Program.Category] = append(grouped[rec.Program.Category], rec)
		} else {
			grouped[models.CategoryLiving] = append(grouped[models.CategoryLiving], rec)
		}
	}
	return grouped
}

// GenerateSummary derives the overview of a finished run.
func (e *Engine) GenerateSummary(recommendations []models.Recommendation, profile models.UserProfile) models.Summary {
	now := e.now()

	highPriority := 0
	var categories []models.Category
	seen := make(map[models.Category]bool)
	for _, rec := range recommendations {
		if rec.MatchingScore >= highPriorityScore {
			highPriority++
		}
		if !seen[rec.Program.Category] {
			seen[rec.Program.Category] = true
			categories = append(categories, rec.Program.Category)
		}
	}

	var top *models.Recommendation
	if len(recommendations) > 0 {
		top = &recommendations[0]
	}

	return models.Summary{
		UserName:             profile.Name,
		Age:                  profile.Age(now),
		Region:               profile.RegionName,
		District:             profile.District,
		TotalRecommendations: len(recommendations),
		HighPriorityCount:    highPriority,
		Categories:           categories,
		TopRecommendation:    top,
		GeneratedAt:          now,
	}
}

// validateProfile enforces the engine's preconditions. The intake form
// validates upstream too, but a broken profile must fail fast here
// rather than produce a nonsensical age.
func validateProfile(profile models.UserProfile) error {
	if len(strings.TrimSpace(profile.Name)) < 2 {
		return errors.NewInvalidProfileError("name must be at least 2 characters")
	}
	if profile.BirthDate.IsZero() {
		return errors.NewInvalidProfileError("birth date is required")
	}
	if profile.RegionName == "" {
		return errors.NewInvalidProfileError("region is required")
	}
	return nil
}
