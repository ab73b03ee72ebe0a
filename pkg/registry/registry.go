// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"welfare-moa/internal/common/errors"
	"welfare-moa/internal/models"
	"welfare-moa/internal/rules"

	"github.com/xeipuuv/gojsonschema"
)

// LoadRegistry reads and validates an overlay file. Files that fail
// schema validation are rejected with the field-level messages joined
// into the error details.
func LoadRegistry(path string) (*ProgramRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse validates raw overlay JSON against the registry schema and
// unmarshals it.
func Parse(data []byte) (*ProgramRegistry, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(registrySchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, errors.NewRegistryInvalidError(fmt.Sprintf("schema validation could not run: %v", err))
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, errors.NewRegistryInvalidError(strings.Join(msgs, "; "))
	}

	var reg ProgramRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, errors.NewRegistryInvalidError(fmt.Sprintf("unmarshal: %v", err))
	}
	return &reg, nil
}

// MergePrograms overlays registry programs onto the base set. Entries
// with a known id replace the base program in place; new ids append in
// file order, preserving the catalog's stable declaration order.
func (r *ProgramRegistry) MergePrograms(base []models.WelfareProgram) []models.WelfareProgram {
	merged := make([]models.WelfareProgram, len(base))
	copy(merged, base)

	index := make(map[string]int, len(merged))
	for i, p := range merged {
		index[p.ID] = i
	}

	for _, p := range r.Programs {
		if i, ok := index[p.ID]; ok {
			merged[i] = p
		} else {
			index[p.ID] = len(merged)
			merged = append(merged, p)
		}
	}
	return merged
}

// MergeRules overlays registry rules onto the base table.
func (r *ProgramRegistry) MergeRules(base rules.Table) rules.Table {
	merged := make(rules.Table, len(base)+len(r.Rules))
	for id, rule := range base {
		merged[id] = rule
	}
	for id, rule := range r.Rules {
		merged[id] = rule
	}
	return merged
}
