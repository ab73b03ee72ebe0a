// internal/models/recommendation.go
package models

import "time"

// Recommendation pairs a program with its computed match score and the
// human-readable reasons it qualified. Derived on demand, never the
// authoritative copy.
type Recommendation struct {
	Program         WelfareProgram `json:"program"`
	MatchingScore   int            `json:"matchingScore"`
	MatchingReasons []string       `json:"matchingReasons"`
}

// Summary is the derived overview of a recommendation run.
type Summary struct {
	UserName             string          `json:"userName"`
	Age                  int             `json:"age"`
	Region               string          `json:"region"`
	District             string          `json:"district"`
	TotalRecommendations int             `json:"totalRecommendations"`
	HighPriorityCount    int             `json:"highPriorityCount"`
	Categories           []Category      `json:"categories"`
	TopRecommendation    *Recommendation `json:"topRecommendation"`
	GeneratedAt          time.Time       `json:"generatedAt"`
}
