// internal/catalog/catalog.go
package catalog

import (
	"welfare-moa/internal/common/errors"
	"welfare-moa/internal/models"
)

// Store is a read-only program catalog with stable declaration order.
type Store struct {
	programs []models.WelfareProgram
	byID     map[string]int
}

// New builds a store from the given programs. Declaration order is
// preserved; it is the tie-break order for equal match scores.
func New(programs []models.WelfareProgram) *Store {
	s := &Store{
		programs: programs,
		byID:     make(map[string]int, len(programs)),
	}
	for i, p := range programs {
		s.byID[p.ID] = i
	}
	return s
}

// Default returns a store over the built-in program data.
func Default() *Store {
	return New(DefaultPrograms())
}

// DefaultPrograms returns a copy of the built-in program data, so
// callers can overlay changes without touching the canonical slice.
func DefaultPrograms() []models.WelfareProgram {
	out := make([]models.WelfareProgram, len(welfarePrograms))
	copy(out, welfarePrograms)
	return out
}

// Get looks up a program by id. Unknown ids return PROGRAM_NOT_FOUND;
// there is deliberately no fallback program.
func (s *Store) Get(id string) (models.WelfareProgram, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.WelfareProgram{}, errors.NewProgramNotFoundError(id)
	}
	return s.programs[i], nil
}

// All returns every program in declaration order.
func (s *Store) All() []models.WelfareProgram {
	out := make([]models.WelfareProgram, len(s.programs))
	copy(out, s.programs)
	return out
}

// AllActive returns active programs in declaration order.
func (s *Store) AllActive() []models.WelfareProgram {
	out := make([]models.WelfareProgram, 0, len(s.programs))
	for _, p := range s.programs {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

// Len reports the number of programs, active or not.
func (s *Store) Len() int {
	return len(s.programs)
}
