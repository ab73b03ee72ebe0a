// internal/engine/reasons_test.go
package engine

import (
	"testing"

	"welfare-moa/internal/models"
	"welfare-moa/internal/survey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchingReasons_BasicPension(t *testing.T) {
	eng := newTestEngine(t)

	recs, err := eng.GenerateRecommendations(createTestProfile(), createTestResponses())
	require.NoError(t, err)

	var reasons []string
	for _, rec := range recs {
		if rec.Program.ID == "basic-pension" {
			reasons = rec.MatchingReasons
		}
	}

	assert.Equal(t, []string{
		"만 65세 이상 대상 복지입니다.",
		"전국 어디서나 신청 가능합니다.",
		"연금을 받지 않아 기초연금 대상입니다.",
	}, reasons)
}

func TestMatchingReasons_CappedAtThree(t *testing.T) {
	eng := newTestEngine(t)

	// long-term-care satisfies age, region, and two answer bonuses; the
	// list still stops at three.
	recs, err := eng.GenerateRecommendations(createTestProfile(), createTestResponses())
	require.NoError(t, err)

	for _, rec := range recs {
		assert.LessOrEqual(t, len(rec.MatchingReasons), 3, "program %s", rec.Program.ID)
	}
}

func TestMatchingReasons_RegionalProgram(t *testing.T) {
	eng := newTestEngine(t)
	profile := createTestProfile()
	profile.RegionName = "지역"

	program := models.WelfareProgram{
		ID:          "transportation-support",
		TargetAge:   models.AgeRange{Min: intPtrTest(65)},
		RegionScope: "지역",
	}

	reasons := eng.matchingReasons(program, profile, survey.Responses{}, 70)

	assert.Contains(t, reasons, "지역 거주자 대상 복지입니다.")
}

func TestReasonFor(t *testing.T) {
	// l3 has no canned phrase; a satisfied bonus on it falls back to the
	// generic line, as does an answer value outside the phrase map.
	assert.Equal(t, "귀하의 상황에 적합한 복지입니다.", reasonFor("l3", "none"))
	assert.Equal(t, "독거 생활로 생활 지원이 필요합니다.", reasonFor("l1", "alone"))
	assert.Equal(t, "귀하의 상황에 적합한 복지입니다.", reasonFor("l1", "no-such-answer"))
}

func TestSatisfiedValue(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		values    []string
		answer    survey.Answer
		wantValue string
		wantMatch bool
	}{
		{
			name:      "exact single match",
			value:     "alone",
			answer:    survey.SingleAnswer("alone"),
			wantValue: "alone",
			wantMatch: true,
		},
		{
			name:      "exact value contained in multi answer",
			value:     "none",
			answer:    survey.MultiAnswer("national-pension", "none"),
			wantValue: "none",
			wantMatch: true,
		},
		{
			name:      "one-of picks the selected value",
			values:    []string{"rarely", "never"},
			answer:    survey.SingleAnswer("never"),
			wantValue: "never",
			wantMatch: true,
		},
		{
			name:   "no match",
			value:  "alone",
			answer: survey.SingleAnswer("with-family"),
		},
		{
			name:   "empty answer",
			values: []string{"poor", "very-poor"},
			answer: survey.Answer{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, matched := satisfiedValue(tt.value, tt.values, tt.answer)
			assert.Equal(t, tt.wantMatch, matched)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func intPtrTest(v int) *int { return &v }
