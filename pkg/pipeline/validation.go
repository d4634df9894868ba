package pipeline

import (
	"fmt"
	"math"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// validate walks the accumulated sequence stage by stage and fails fast on
// the first rule violation. The single-key/sigil invariant is re-asserted
// here even though Add already enforces it for raw input: the validator is
// the authoritative final gate and does not assume append-time checks ran.
func validate(stages []bson.M) error {
	for i, st := range stages {
		if len(st) != 1 {
			return fmt.Errorf("pipeline: stage %d must have exactly one key, got %d: %w", i, len(st), ErrMalformedStage)
		}
		var name string
		var payload any
		for k, v := range st {
			name, payload = k, v
		}
		if !strings.HasPrefix(name, "$") {
			return fmt.Errorf("pipeline: stage %d operator must start with '$', got %q: %w", i, name, ErrMalformedStage)
		}

		switch name {
		case "$lookup":
			if err := validateLookup(i, payload); err != nil {
				return err
			}
		case "$match", "$project":
			if _, ok := document(payload); !ok {
				return fmt.Errorf("pipeline: %s stage %d value must be a document: %w", name, i, ErrMalformedStage)
			}
		case "$sort":
			doc, ok := document(payload)
			if !ok {
				return fmt.Errorf("pipeline: $sort stage %d value must be a document: %w", i, ErrMalformedStage)
			}
			for field, direction := range doc {
				if !validDirection(direction) {
					return fmt.Errorf("pipeline: $sort stage %d direction for %q must be 1 or -1, got %v: %w", i, field, direction, ErrMalformedStage)
				}
			}
		case "$limit", "$skip":
			n, ok := wireInteger(payload)
			if !ok || n < 0 {
				return fmt.Errorf("pipeline: %s stage %d value must be a non-negative integer, got %v: %w", name, i, payload, ErrMalformedStage)
			}
		case "$unwind":
			if _, isPath := payload.(string); isPath {
				break // bare field-path shorthand
			}
			doc, ok := document(payload)
			if !ok {
				return fmt.Errorf("pipeline: $unwind stage %d value must be a string or document: %w", i, ErrMalformedStage)
			}
			if _, ok := doc["path"]; !ok {
				return fmt.Errorf("pipeline: $unwind stage %d missing required \"path\" field: %w", i, ErrMalformedStage)
			}
		}
	}
	return nil
}

func validateLookup(i int, payload any) error {
	doc, ok := document(payload)
	if !ok {
		return fmt.Errorf("pipeline: $lookup stage %d value must be a document: %w", i, ErrMalformedStage)
	}
	if _, ok := doc["from"]; !ok {
		return fmt.Errorf("pipeline: $lookup stage %d missing required \"from\" field: %w", i, ErrMalformedStage)
	}
	if _, ok := doc["as"]; !ok {
		return fmt.Errorf("pipeline: $lookup stage %d missing required \"as\" field: %w", i, ErrMalformedStage)
	}

	nested, hasPipeline := doc["pipeline"]
	if !hasPipeline {
		if _, ok := doc["localField"]; !ok {
			return fmt.Errorf("pipeline: $lookup stage %d missing required \"localField\" for foreign-key lookup: %w", i, ErrMalformedStage)
		}
		if _, ok := doc["foreignField"]; !ok {
			return fmt.Errorf("pipeline: $lookup stage %d missing required \"foreignField\" for foreign-key lookup: %w", i, ErrMalformedStage)
		}
		return nil
	}

	if !sequence(nested) {
		return fmt.Errorf("pipeline: $lookup stage %d pipeline must be a sequence: %w", i, ErrMalformedStage)
	}
	// The let key must be present, though its value may be nil. Raw
	// documents that omit it are rejected even when the typed constructor
	// path would have emitted it implicitly.
	if _, ok := doc["let"]; !ok {
		return fmt.Errorf("pipeline: $lookup stage %d with a pipeline requires a \"let\" field: %w", i, ErrMalformedStage)
	}
	return nil
}

// document gives map-style access to any of the document representations a
// caller can inject. The returned view is used for validation only; the
// stored stage is never rewritten.
func document(v any) (bson.M, bool) {
	switch d := v.(type) {
	case bson.M:
		return d, true
	case map[string]any:
		return bson.M(d), true
	case bson.D:
		out := make(bson.M, len(d))
		for _, e := range d {
			out[e.Key] = e.Value
		}
		return out, true
	default:
		return nil, false
	}
}

func sequence(v any) bool {
	switch v.(type) {
	case []bson.M, bson.A, []any, []map[string]any, []bson.D:
		return true
	default:
		return false
	}
}

// validDirection accepts the integer forms a direction can legitimately
// arrive in, including float64 from decoded JSON. Booleans are not
// directions.
func validDirection(v any) bool {
	n, ok := wireInteger(v)
	return ok && (n == 1 || n == -1)
}

func wireInteger(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		// JSON decoding yields float64 for every number.
		if n == math.Trunc(n) {
			return int64(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}
