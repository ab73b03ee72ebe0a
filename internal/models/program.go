// internal/models/program.go
package models

// Category classifies a welfare program. The catalog uses the Korean
// labels that the public data sources publish.
type Category string

const (
	CategoryEconomic Category = "경제"
	CategoryHealth   Category = "건강"
	CategoryLiving   Category = "생활"
	CategoryHousing  Category = "주거"
)

// RegionScopeNationwide marks a program available regardless of residence.
const RegionScopeNationwide = "전국"

// AgeRange bounds a program's target age. Nil means unbounded on that side.
type AgeRange struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

// Eligibility carries the free-form eligibility text of a program. The
// source data mixes plain strings and structured objects per program, so
// every possible sub-field is declared and rendering branches on which
// ones are populated.
type Eligibility struct {
	Age        string   `json:"age,omitempty"`
	Income     string   `json:"income,omitempty"`
	Residence  string   `json:"residence,omitempty"`
	Household  string   `json:"household,omitempty"`
	Housing    string   `json:"housing,omitempty"`
	Health     string   `json:"health,omitempty"`
	Insurance  string   `json:"insurance,omitempty"`
	Condition  string   `json:"condition,omitempty"`
	Conditions []string `json:"conditions,omitempty"`
}

// Benefits describes what a program provides.
type Benefits struct {
	Amount      string   `json:"amount,omitempty"`
	Description string   `json:"description,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Period      string   `json:"period,omitempty"`
	Coverage    string   `json:"coverage,omitempty"`
	Cost        string   `json:"cost,omitempty"`
	Payment     string   `json:"payment,omitempty"`
	Discount    string   `json:"discount,omitempty"`
	Services    []string `json:"services,omitempty"`
	Types       []string `json:"types,omitempty"`
}

// ApplicationMethod describes how to apply for a program.
type ApplicationMethod struct {
	Online    string   `json:"online,omitempty"`
	Offline   string   `json:"offline,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Documents []string `json:"documents,omitempty"`
}

// Agency is the institution responsible for a program.
type Agency struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
}

// WelfareProgram is one government benefit offering. Programs are static
// data loaded once at startup and never mutated.
type WelfareProgram struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Category          Category          `json:"category"`
	Description       string            `json:"description"`
	TargetAge         AgeRange          `json:"targetAge"`
	Eligibility       Eligibility       `json:"eligibility"`
	Benefits          Benefits          `json:"benefits"`
	ApplicationMethod ApplicationMethod `json:"applicationMethod"`
	ResponsibleAgency Agency            `json:"responsibleAgency"`
	RegionScope       string            `json:"regionScope"`
	Tags              []string          `json:"tags"`
	IsActive          bool              `json:"isActive"`
}
