// pkg/registry/schema.go
package registry

import (
	"welfare-moa/internal/models"
	"welfare-moa/internal/rules"
)

// ProgramRegistry is an overlay file adding or replacing programs and
// matching rules, so regional offerings ship without a rebuild.
type ProgramRegistry struct {
	Version     string                        `json:"version"`
	LastUpdated string                        `json:"lastUpdated"`
	Programs    []models.WelfareProgram       `json:"programs"`
	Rules       map[string]rules.MatchingRule `json:"rules"`
}

// registrySchema is the JSON schema every overlay must satisfy before
// its contents are trusted.
const registrySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "programs"],
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "lastUpdated": {"type": "string"},
    "programs": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "category", "regionScope", "isActive"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "category": {"type": "string", "enum": ["경제", "건강", "생활", "주거"]},
          "description": {"type": "string"},
          "targetAge": {
            "type": "object",
            "properties": {
              "min": {"type": ["integer", "null"], "minimum": 0},
              "max": {"type": ["integer", "null"], "minimum": 0}
            }
          },
          "regionScope": {"type": "string", "minLength": 1},
          "tags": {"type": "array", "items": {"type": "string"}},
          "isActive": {"type": "boolean"}
        }
      }
    },
    "rules": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "properties": {
          "requiredConditions": {"type": "array", "items": {"$ref": "#/definitions/condition"}},
          "bonusConditions": {"type": "array", "items": {"$ref": "#/definitions/condition"}}
        }
      }
    }
  },
  "definitions": {
    "condition": {
      "type": "object",
      "required": ["type"],
      "properties": {
        "type": {"type": "string", "enum": ["age", "aggregate_score", "exact_answer", "one_of_answer"]},
        "minAge": {"type": "integer", "minimum": 0},
        "maxAge": {"type": "integer", "minimum": 0},
        "questionIds": {"type": "array", "items": {"type": "string"}},
        "minScore": {"type": "integer"},
        "maxScore": {"type": "integer"},
        "questionId": {"type": "string"},
        "value": {"type": "string"},
        "values": {"type": "array", "items": {"type": "string"}},
        "bonus": {"type": "integer", "minimum": 1}
      }
    }
  }
}`
