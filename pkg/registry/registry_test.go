// pkg/registry/registry_test.go
package registry

import (
	"testing"

	"welfare-moa/internal/catalog"
	"welfare-moa/internal/common/errors"
	"welfare-moa/internal/rules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validOverlay = `{
	"version": "2026.08",
	"lastUpdated": "2026-08-01",
	"programs": [
		{
			"id": "seoul-senior-meal",
			"name": "서울시 어르신 급식 지원",
			"category": "생활",
			"description": "저소득 어르신 무료 급식 지원",
			"targetAge": {"min": 65},
			"regionScope": "서울특별시",
			"isActive": true
		},
		{
			"id": "basic-pension",
			"name": "기초연금 (개정)",
			"category": "경제",
			"regionScope": "전국",
			"isActive": true
		}
	],
	"rules": {
		"seoul-senior-meal": {
			"requiredConditions": [
				{"type": "age", "minAge": 65}
			],
			"bonusConditions": [
				{"type": "exact_answer", "questionId": "l1", "value": "alone", "bonus": 15}
			]
		}
	}
}`

func TestParse_ValidOverlay(t *testing.T) {
	reg, err := Parse([]byte(validOverlay))
	require.NoError(t, err)

	assert.Equal(t, "2026.08", reg.Version)
	require.Len(t, reg.Programs, 2)
	require.Len(t, reg.Rules, 1)

	rule := reg.Rules["seoul-senior-meal"]
	require.Len(t, rule.RequiredConditions, 1)
	assert.Equal(t, rules.ConditionAge, rule.RequiredConditions[0].Type)
	require.NotNil(t, rule.RequiredConditions[0].MinAge)
	assert.Equal(t, 65, *rule.RequiredConditions[0].MinAge)
	require.Len(t, rule.BonusConditions, 1)
	assert.Equal(t, 15, rule.BonusConditions[0].BonusPoints())
}

func TestParse_InvalidOverlays(t *testing.T) {
	tests := []struct {
		name    string
		overlay string
	}{
		{
			name:    "missing version",
			overlay: `{"programs": []}`,
		},
		{
			name: "unknown category",
			overlay: `{"version": "1", "programs": [
				{"id": "x", "name": "x", "category": "문화", "regionScope": "전국", "isActive": true}
			]}`,
		},
		{
			name: "unknown condition type",
			overlay: `{"version": "1", "programs": [], "rules": {
				"x": {"requiredConditions": [{"type": "regex_match"}]}
			}}`,
		},
		{
			name: "condition without type",
			overlay: `{"version": "1", "programs": [], "rules": {
				"x": {"bonusConditions": [{"minAge": 65}]}
			}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.overlay))
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeRegistryInvalid, errors.CodeOf(err))
		})
	}
}

func TestMergePrograms(t *testing.T) {
	reg, err := Parse([]byte(validOverlay))
	require.NoError(t, err)

	base := catalog.DefaultPrograms()
	merged := reg.MergePrograms(base)

	// One replacement (basic-pension) and one addition.
	assert.Len(t, merged, len(base)+1)

	// The replacement keeps its catalog position.
	assert.Equal(t, "basic-pension", merged[0].ID)
	assert.Equal(t, "기초연금 (개정)", merged[0].Name)

	// The addition goes to the end.
	assert.Equal(t, "seoul-senior-meal", merged[len(merged)-1].ID)

	// The base slice is untouched.
	assert.Equal(t, "기초연금", base[0].Name)
}

func TestMergeRules(t *testing.T) {
	reg, err := Parse([]byte(validOverlay))
	require.NoError(t, err)

	base := rules.DefaultTable()
	merged := reg.MergeRules(base)

	assert.Len(t, merged, len(base)+1)
	_, ok := merged["seoul-senior-meal"]
	assert.True(t, ok)
	// Untouched base entries survive the merge.
	_, ok = merged["senior-job"]
	assert.True(t, ok)
}
