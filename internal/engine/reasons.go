// internal/engine/reasons.go
package engine

import (
	"fmt"

	"welfare-moa/internal/models"
	"welfare-moa/internal/survey"
)

// maxReasons caps the matchingReasons list.
const maxReasons = 3

// genericReason is the fallback when no canned phrase exists for a
// satisfied (question, answer) pair.
const genericReason = "귀하의 상황에 적합한 복지입니다."

// reasonPhrases maps (question id, answer value) to the canned
// explanation shown with a satisfied bonus condition.
var reasonPhrases = map[string]map[string]string{
	"h3": {
		"moderate": "거동 불편으로 돌봄 서비스가 도움이 될 것 같습니다.",
		"severe":   "거동이 매우 불편하여 전문적인 돌봄이 필요합니다.",
	},
	"h4": {
		"no": "정기 건강검진을 받지 않아 건강관리가 필요합니다.",
	},
	"l1": {
		"alone": "독거 생활로 생활 지원이 필요합니다.",
	},
	"l2": {
		"rarely": "도움받기 어려운 상황으로 공적 지원이 필요합니다.",
		"never":  "도움받을 곳이 없어 긴급 지원이 필요합니다.",
	},
	"l4": {
		"poor":      "주거환경 개선이 필요한 상황입니다.",
		"very-poor": "주거환경이 매우 열악하여 지원이 시급합니다.",
	},
	"e1": {
		"insufficient":      "소득이 부족하여 경제적 지원이 필요합니다.",
		"very-insufficient": "소득이 매우 부족하여 긴급 지원이 필요합니다.",
	},
	"e2": {
		"heavy":      "의료비 부담이 커서 지원이 필요합니다.",
		"very-heavy": "의료비 부담이 매우 커서 긴급 지원이 필요합니다.",
	},
	"e3": {
		"needed":      "생활비 지원이 필요한 상황입니다.",
		"very-needed": "생활비 지원이 매우 필요한 상황입니다.",
	},
	"e4": {
		"none": "연금을 받지 않아 기초연금 대상입니다.",
	},
}

// matchingReasons builds up to maxReasons strings in fixed priority
// order: age eligibility, then region, then satisfied single-answer
// bonus conditions.
func (e *Engine) matchingReasons(program models.WelfareProgram, profile models.UserProfile, responses survey.Responses, age int) []string {
	reasons := make([]string, 0, maxReasons)

	if program.TargetAge.Min != nil && age >= *program.TargetAge.Min {
		reasons = append(reasons, fmt.Sprintf("만 %d세 이상 대상 복지입니다.", *program.TargetAge.Min))
	}

	if program.RegionScope == models.RegionScopeNationwide {
		reasons = append(reasons, "전국 어디서나 신청 가능합니다.")
	} else if program.RegionScope == profile.RegionName {
		reasons = append(reasons, fmt.Sprintf("%s 거주자 대상 복지입니다.", profile.RegionName))
	}

	if rule, ok := e.rules[program.ID]; ok {
		for _, bonus := range rule.BonusConditions {
			if len(reasons) >= maxReasons {
				break
			}
			if !bonus.IsSingleAnswer() {
				continue
			}
			answer, ok := responses[bonus.QuestionID]
			if !ok {
				continue
			}
			if value, matched := satisfiedValue(bonus.Value, bonus.Values, answer); matched {
				reasons = append(reasons, reasonFor(bonus.QuestionID, value))
			}
		}
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

// satisfiedValue returns the selected value that satisfies an
// exact/one-of bonus condition, keying the phrase lookup.
func satisfiedValue(value string, values []string, answer survey.Answer) (string, bool) {
	if value != "" && answer.Matches(value) {
		return value, true
	}
	for _, v := range values {
		if answer.Matches(v) {
			return v, true
		}
	}
	return "", false
}

func reasonFor(questionID, answer string) string {
	if phrases, ok := reasonPhrases[questionID]; ok {
		if phrase, ok := phrases[answer]; ok {
			return phrase
		}
	}
	return genericReason
}
