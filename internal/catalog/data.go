// internal/catalog/data.go
package catalog

import "welfare-moa/internal/models"

func intPtr(v int) *int { return &v }

// welfarePrograms is the built-in catalog. Entries mirror the public
// program sheets; regional overlays can be merged in via pkg/registry.
var welfarePrograms = []models.WelfareProgram{
	{
		ID:          "basic-pension",
		Name:        "기초연금",
		Category:    models.CategoryEconomic,
		Description: "만 65세 이상 어르신께 매월 일정액을 지급하는 기초연금",
		TargetAge:   models.AgeRange{Min: intPtr(65)},
		Eligibility: models.Eligibility{
			Age:        "만 65세 이상",
			Income:     "소득 하위 70%",
			Residence:  "대한민국 거주",
			Conditions: []string{"국민연금 가입기간 10년 미만", "소득인정액 기준 충족"},
		},
		Benefits: models.Benefits{
			Amount:      "월 최대 334,810원 (2024년 기준)",
			Description: "매월 계좌입금",
			Duration:    "65세부터 평생",
		},
		ApplicationMethod: models.ApplicationMethod{
			Online:    "https://www.bokjiro.go.kr",
			Offline:   "주민센터 방문 신청",
			Phone:     "국민연금공단 1355",
			Documents: []string{"신분증", "통장사본", "소득관련 서류"},
		},
		ResponsibleAgency: models.Agency{
			Name:    "국민연금공단",
			Phone:   "1355",
			Website: "https://www.nps.or.kr",
		},
		RegionScope: models.RegionScopeNationwide,
		Tags:        []string{"경제지원", "생활비", "노후보장"},
		IsActive:    true,
	},
	{
		ID:          "long-term-care",
		Name:        "노인장기요양보험",
		Category:    models.CategoryHealth,
		Description: "일상생활이 어려운 고령자에게 신체활동 및 가사활동 지원",
		TargetAge:   models.AgeRange{Min: intPtr(65)},
		Eligibility: models.Eligibility{
			Age:       "만 65세 이상 또는 치매·뇌혈관질환 등 노인성 질병",
			Condition: "장기요양등급 1~5등급 인정",
			Residence: "대한민국 거주",
		},
		Benefits: models.Benefits{
			Services:    []string{"방문요양", "방문목욕", "방문간호", "주야간보호", "단기보호", "복지용구"},
			Coverage:    "본인부담금 15~20%",
			Description: "전문인력이 가정 또는 시설에서 돌봄서비스 제공",
		},
		ApplicationMethod: models.ApplicationMethod{
			Online:    "https://www.longtermcare.or.kr",
			Offline:   "국민건강보험공단 지사 방문",
			Phone:     "1577-1000",
			Documents: []string{"신청서", "의사소견서", "신분증"},
		},
		ResponsibleAgency: models.Agency{
			Name:    "국민건강보험공단",
			Phone:   "1577-1000",
			Website: "https://www.longtermcare.or.kr",
		},
		RegionScope: models.RegionScopeNationwide,
		Tags:        []string{"건강관리", "돌봄서비스", "일상생활지원"},
		IsActive:    true,
	},
	{
		ID:          "energy-voucher",
		Name:        "에너지바우처",
		Category:    models.CategoryLiving,
		Description: "저소득층의 전기·도시가스·지역난방비 지원",
		TargetAge:   models.AgeRange{},
		Eligibility: models.Eligibility{
			Income:    "생계급여 또는 의료급여 수급자",
			Household: "차상위계층",
			Condition: "소득인정액 기준 충족",
		},
		Benefits: models.Benefits{
			Amount:      "여름철 49,000원, 겨울철 113,300원",
			Description: "전기·가스·지역난방비 할인",
			Period:      "연 2회 (하절기, 동절기)",
		},
		ApplicationMethod: models.ApplicationMethod{
			Online:    "에너지바우처 홈페이지",
			Offline:   "주민센터 방문",
			Phone:     "1600-3190",
			Documents: []string{"신청서", "신분증", "소득확인서류"},
		},
		ResponsibleAgency: models.Agency{
			Name:    "한국에너지공단",
			Phone:   "1600-3190",
			Website: "https://energyvoucher.kemco.or.kr",
		},
		RegionScope: models.RegionScopeNationwide,
		Tags:        []string{"생활비지원", "에너지비", "난방비"},
		IsActive:    true,
	},
	{
		ID:          "senior-housing",
		Name:        "고령자 주거지원",
		Category:    models.CategoryHousing,
		Description: "고령자를 위한 주거비 지원 및 주거환경 개선",
		TargetAge:   models.AgeRange{Min: intPtr(65)},
		Eligibility: models.Eligibility{
			Age:     "만 65세 이상",
			Income:  "소득 하위 50%",
			Housing: "자가 또는 전월세 거주",
		},
		Benefits: models.Benefits{
			Services:    []string{"주거급여", "주택개량", "안전시설 설치"},
			Amount:      "월세지원 또는 개량비 지원",
			Description: "주거비 부담 경감 및 안전한 주거환경 조성",
		},
		ApplicationMethod: models.ApplicationMethod{
			Offline:   "주민센터 방문 신청",
			Phone:     "주민센터 문의",
			Documents: []string{"신청서", "소득확인서류", "임대차계약서"},
		},
		ResponsibleAgency: models.Agency{
			Name:    "지방자치단체",
			Phone:   "주민센터",
			Website: "지역별 상이",
		},
		RegionScope: "지역",
		Tags:        []string{"주거지원", "주거환경개선", "안전시설"},
		IsActive:    true,
	},
	{
		ID:          "health-checkup",
		Name:        "노인 건강검진",
		Category:    models.CategoryHealth,
		Description: "만 66세 이상 어르신 생애전환기 건강진단",
		TargetAge:   models.AgeRange{Min: intPtr(66)},
		Eligibility: models.Eligibility{
			Age:       "만 66세 이상 (짝수년도 출생자)",
			Insurance: "건강보험 가입자 및 피부양자",
		},
		Benefits: models.Benefits{
			Services:    []string{"암검진", "생활습관병검진", "치매선별검사", "우울증검사"},
			Cost:        "무료 (건강보험 적용)",
			Description: "조기진단을 통한 건강관리",
		},
		ApplicationMethod: models.ApplicationMethod{
			Online:    "건강검진 예약시스템",
			Phone:     "검진기관 직접 예약",
			Documents: []string{"신분증", "건강보험증"},
		},
		ResponsibleAgency: models.Agency{
			Name:    "국민건강보험공단",
			Phone:   "1577-1000",
			Website: "https://www.nhis.or.kr",
		},
		RegionScope: models.RegionScopeNationwide,
		Tags:        []string{"건강검진", "예방의학", "조기진단"},
		IsActive:    true,
	},
	{
		ID:          "senior-job",
		Name:        "노인일자리",
		Category:    models.CategoryEconomic,
		Description: "만 60세 이상 어르신 일자리 및 사회활동 지원",
		TargetAge:   models.AgeRange{Min: intPtr(60)},
		Eligibility: models.Eligibility{
			Age:    "만 60세 이상",
			Health: "활동 가능한 건강상태",
			Income: "기준중위소득 이하",
		},
		Benefits: models.Benefits{
			Types:       []string{"공익활동", "사회서비스형", "시장형", "취업알선형"},
			Payment:     "월 27만원 ~ 71만원",
			Description: "일자리 제공 및 소득창출 지원",
		},
		ApplicationMethod: models.ApplicationMethod{
			Offline:   "노인일자리전담기관 방문",
			Phone:     "전담기관 문의",
			Documents: []string{"신청서", "신분증", "건강진단서"},
		},
		ResponsibleAgency: models.Agency{
			Name:    "한국노인인력개발원",
			Phone:   "02-6925-9500",
			Website: "https://www.kordi.or.kr",
		},
		RegionScope: models.RegionScopeNationwide,
		Tags:        []string{"일자리", "소득창출", "사회참여"},
		IsActive:    true,
	},
	{
		ID:          "transportation-support",
		Name:        "교통비 지원",
		Category:    models.CategoryLiving,
		Description: "고령자 대중교통 이용료 할인 및 지원",
		TargetAge:   models.AgeRange{Min: intPtr(65)},
		Eligibility: models.Eligibility{
			Age:       "만 65세 이상",
			Residence: "해당 지역 거주",
		},
		Benefits: models.Benefits{
			Discount:    "지하철·버스 무료 또는 할인",
			Services:    []string{"교통카드 발급", "택시 할인쿠폰"},
			Description: "대중교통 이용 부담 경감",
		},
		ApplicationMethod: models.ApplicationMethod{
			Offline:   "지하철역, 주민센터",
			Documents: []string{"신분증", "사진"},
		},
		ResponsibleAgency: models.Agency{
			Name:    "지방자치단체",
			Phone:   "지역별 상이",
			Website: "지역별 상이",
		},
		RegionScope: "지역",
		Tags:        []string{"교통비", "이동편의", "할인혜택"},
		IsActive:    true,
	},
}
