// internal/models/user.go
package models

import "time"

// UserProfile is the intake profile the engine scores against. It is
// created once by the intake form and read-only afterwards; the store
// purges it 365 days after creation.
type UserProfile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	BirthDate  time.Time `json:"birthDate"`
	RegionCode string    `json:"regionCode"`
	RegionName string    `json:"regionName"`
	District   string    `json:"district"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Age computes the user's age at asOf using calendar-year subtraction,
// matching the upstream data contract. This over-reports age by up to one
// year before the birthday anniversary; changing it would silently shift
// which programs pass their minimum-age gates, so it is kept as-is.
func (p UserProfile) Age(asOf time.Time) int {
	return asOf.Year() - p.BirthDate.Year()
}
