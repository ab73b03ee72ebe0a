// internal/survey/data.go
package survey

// surveyQuestions is the built-in intake questionnaire, grouped
// health → living → economic.
var surveyQuestions = []Question{
	{
		ID:     "h1",
		Group:  GroupHealth,
		Prompt: "현재 건강 상태는 어떠신가요?",
		Kind:   SingleSelect,
		Options: []Option{
			{Value: "very-good", Label: "매우 좋음", Score: 10},
			{Value: "good", Label: "좋음", Score: 8},
			{Value: "normal", Label: "보통", Score: 6},
			{Value: "poor", Label: "나쁨", Score: 4},
			{Value: "very-poor", Label: "매우 나쁨", Score: 2},
		},
		Required: true,
	},
	{
		ID:     "h2",
		Group:  GroupHealth,
		Prompt: "현재 복용 중인 약물이 있으신가요?",
		Kind:   SingleSelect,
		Options: []Option{
			{Value: "none", Label: "없음", Score: 10},
			{Value: "some", Label: "1-2개", Score: 7},
			{Value: "many", Label: "3개 이상", Score: 4},
		},
		Required: true,
	},
	{
		ID:     "h3",
		Group:  GroupHealth,
		Prompt: "일상생활에서 거동이 불편하신가요?",
		Kind:   SingleSelect,
		Options: []Option{
			{Value: "no-problem", Label: "전혀 불편하지 않음", Score: 10},
			{Value: "little", Label: "조금 불편함", Score: 7},
			{Value: "moderate", Label: "꽤 불편함", Score: 4},
			{Value: "severe", Label: "매우 불편함", Score: 1},
		},
		Required: true,
	},
	{
		ID:     "h4",
		Group:  GroupHealth,
		Prompt: "정기적으로 병원에 다니고 계신가요?",
		Kind:   SingleSelect,
		Options: []Option{
			{Value: "no", Label: "다니지 않음", Score: 10},
			{Value: "sometimes", Label: "가끔", Score: 7},
			{Value: "regular", Label: "정기적으로", Score: 4},
		},
		Required: true,
	},
	{
		ID:     "l1",
		Group:  GroupLiving,
		Prompt: "현재 거주 형태는 어떻게 되시나요?",
		Kind:   SingleSelect,
		Options: []Option{
			{Value: "with-family", Label: "가족과 함께", Score: 8},
			{Value: "couple", Label: "배우자와 함께", Score: 7},
			{Value: "alone", Label: "혼자 거주", Score: 3},
		},
		Required: true,
	},
	{
		ID:     "l2",
		Group:  GroupLiving,
		Prompt: "일상생활에서 도움을 받을 수 있는 사람이 있으신가요?",
		Kind:   SingleSelect,
		Options: []Option{
			{Value: "always", Label: "항상 도움받을 수 있음", Score: 10},
			{Value: "sometimes", Label: "필요시 도움받을 수 있음", Score: 7},
			{Value: "rarely", Label: "도움받기 어려움", Score: 3},
			{Value: "never", Label: "전혀 도움받을 수 없음", Score: 1},
		},
		Required: true,
	},
	{
		ID:     "l3",
		Group:  GroupLiving,
		Prompt: "집안일(청소, 요리, 빨래 등)을 혼자서 하실 수 있나요?",
		Kind:   SingleSelect,
		Options: []Option{
			{Value: "all", Label: "모든 일을 혼자 할 수 있음", Score: 10},
			{Value: "most", Label: "대부분 혼자 할 수 있음", Score: 8},
			{Value: "some", Label: "일부만 혼자 할 수 있음", Score: 5},
			{Value: "none", Label: "혼자 하기 어려움", Score: 2},
		},
		Required: true,
	},
	{
		ID:     "l4",
		Group:  GroupLiving,
		Prompt: "주거환경에 대해 어떻게 생각하시나요?",
		Kind:   SingleSelect,
		Options: []Option{
			{Value: "very-good", Label: "매우 만족", Score: 10},
			{Value: "good", Label: "만족", Score: 8},
			{Value: "normal", Label: "보통", Score: 6},
			{Value: "poor", Label: "불만족", Score: 3},
			{Value: "very-poor", Label: "매우 불만족", Score: 1},
		},
		Required: true,
	},
	{
		ID:     "e1",
		Group:  GroupEconomic,
		Prompt: "현재 소득 상황은 어떠신가요?",
		Kind:   SingleSelect,
		Options: []Option{
			{Value: "sufficient", Label: "충분함", Score: 10},
			{Value: "moderate", Label: "보통", Score: 7},
			{Value: "insufficient", Label: "부족함", Score: 4},
			{Value: "very-insufficient", Label: "매우 부족함", Score: 1},
		},
		Required: true,
	},
	{
		ID:     "e2",
		Group:  GroupEconomic,
		Prompt: "의료비 부담이 어느 정도인가요?",
		Kind:   SingleSelect,
		Options: []Option{
			{Value: "no-burden", Label: "부담 없음", Score: 10},
			{Value: "light", Label: "약간 부담", Score: 7},
			{Value: "heavy", Label: "많이 부담", Score: 4},
			{Value: "very-heavy", Label: "매우 부담", Score: 1},
		},
		Required: true,
	},
	{
		ID:     "e3",
		Group:  GroupEconomic,
		Prompt: "생활비 지원이 필요하다고 생각하시나요?",
		Kind:   SingleSelect,
		Options: []Option{
			{Value: "not-needed", Label: "필요하지 않음", Score: 10},
			{Value: "little-needed", Label: "조금 필요", Score: 7},
			{Value: "needed", Label: "필요함", Score: 4},
			{Value: "very-needed", Label: "매우 필요함", Score: 1},
		},
		Required: true,
	},
	{
		ID:     "e4",
		Group:  GroupEconomic,
		Prompt: "현재 연금을 받고 계신가요?",
		Kind:   MultiSelect,
		Options: []Option{
			{Value: "national-pension", Label: "국민연금", Score: 5},
			{Value: "basic-pension", Label: "기초연금", Score: 3},
			{Value: "private-pension", Label: "사적연금", Score: 7},
			{Value: "none", Label: "받지 않음", Score: 1},
		},
		Required: true,
	},
}
