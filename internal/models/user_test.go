// internal/models/user_test.go
package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserProfile_Age(t *testing.T) {
	asOf := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate time.Time
		want      int
	}{
		{
			name:      "birthday already passed this year",
			birthDate: time.Date(1956, 3, 10, 0, 0, 0, 0, time.UTC),
			want:      70,
		},
		{
			// Calendar-year subtraction counts the full year even before
			// the birthday anniversary.
			name:      "birthday later this year still counts",
			birthDate: time.Date(1956, 11, 20, 0, 0, 0, 0, time.UTC),
			want:      70,
		},
		{
			name:      "born this year",
			birthDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := UserProfile{BirthDate: tt.birthDate}
			assert.Equal(t, tt.want, p.Age(asOf))
		})
	}
}
