package pipeline

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/goliatone/go-mongoagg/pkg/stage"
)

// Builder accumulates aggregation stages in execution order. Every stage
// method returns the same Builder so calls chain; errors raised along the
// way are sticky: the first one is recorded, subsequent stage calls become
// no-ops, and Err or Build surface it. Build validates the accumulated
// sequence and returns a copy, leaving the builder reusable.
type Builder struct {
	stages []bson.M
	err    error
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// From returns a Builder seeded with a copy of the supplied wire-level
// stages. The stages are not validated until Build.
func From(stages []bson.M) *Builder {
	b := &Builder{}
	if len(stages) > 0 {
		b.stages = make([]bson.M, len(stages))
		copy(b.stages, stages)
	}
	return b
}

// Err reports the first construction error recorded by a stage method, or
// nil when the builder is healthy.
func (b *Builder) Err() error {
	return b.err
}

// Len reports the number of accumulated stages.
func (b *Builder) Len() int {
	return len(b.stages)
}

func (b *Builder) String() string {
	return fmt.Sprintf("Builder(%d stages)", len(b.stages))
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Add appends one stage to the pipeline. It accepts a typed stage.Stage,
// which is converted to wire form, or a raw document (bson.M,
// map[string]any or single-element bson.D), which must already have exactly
// one `$`-prefixed key. Every stage convenience method funnels through Add.
func (b *Builder) Add(s any) *Builder {
	if b.err != nil {
		return b
	}
	switch v := s.(type) {
	case stage.Stage:
		doc, err := v.Wire()
		if err != nil {
			return b.fail(fmt.Errorf("pipeline: %s: %w", err, ErrMalformedStage))
		}
		b.stages = append(b.stages, doc)
		return b
	case bson.M:
		return b.addRaw(v)
	case map[string]any:
		return b.addRaw(bson.M(v))
	case bson.D:
		if len(v) != 1 {
			return b.fail(fmt.Errorf("pipeline: stage must have exactly one key, got %d: %w", len(v), ErrMalformedStage))
		}
		return b.addRaw(bson.M{v[0].Key: v[0].Value})
	default:
		return b.fail(fmt.Errorf("pipeline: stage must be a document or stage.Stage, got %T: %w", s, ErrMalformedStage))
	}
}

func (b *Builder) addRaw(doc bson.M) *Builder {
	if len(doc) != 1 {
		return b.fail(fmt.Errorf("pipeline: stage must have exactly one key, got %d: %w", len(doc), ErrMalformedStage))
	}
	for name := range doc {
		if !strings.HasPrefix(name, "$") {
			return b.fail(fmt.Errorf("pipeline: stage operator must start with '$', got %q: %w", name, ErrMalformedStage))
		}
	}
	b.stages = append(b.stages, doc)
	return b
}

// Match appends a $match stage filtering documents by the query criteria.
func (b *Builder) Match(query bson.M) *Builder {
	return b.Add(stage.Match{Query: query})
}

// Filter is a synonym for Match.
func (b *Builder) Filter(query bson.M) *Builder {
	return b.Match(query)
}

// MatchExpr appends a $match stage wrapping the expression in $expr, the
// form required inside lookup sub-pipelines.
func (b *Builder) MatchExpr(expression bson.M) *Builder {
	return b.Add(stage.Match{Query: bson.M{"$expr": expression}})
}

// Expr is a synonym for MatchExpr.
func (b *Builder) Expr(expression bson.M) *Builder {
	return b.MatchExpr(expression)
}

// Project appends a $project stage with the raw field specification.
func (b *Builder) Project(fields bson.M) *Builder {
	return b.Add(stage.Project{Fields: fields})
}

// Fields is a synonym for Project.
func (b *Builder) Fields(fields bson.M) *Builder {
	return b.Project(fields)
}

// SafeProject appends an inclusion-only $project stage: every listed field
// is mapped to 1.
func (b *Builder) SafeProject(fields []string) *Builder {
	projection := make(bson.M, len(fields))
	for _, name := range fields {
		projection[name] = 1
	}
	return b.Project(projection)
}

// Select is a synonym for SafeProject with a variadic signature.
func (b *Builder) Select(fields ...string) *Builder {
	return b.SafeProject(fields)
}

// Sort appends a $sort stage. Directions must be stage.Ascending or
// stage.Descending; the validator rejects anything else at Build time.
func (b *Builder) Sort(fields map[string]int) *Builder {
	return b.Add(stage.Sort{Fields: fields})
}

// OrderBy is a synonym for Sort.
func (b *Builder) OrderBy(fields map[string]int) *Builder {
	return b.Sort(fields)
}

// Limit appends a $limit stage. A negative n fails immediately, before
// anything is appended.
func (b *Builder) Limit(n int64) *Builder {
	return b.Add(stage.Limit{N: n})
}

// Skip appends a $skip stage. A negative n fails immediately, before
// anything is appended.
func (b *Builder) Skip(n int64) *Builder {
	return b.Add(stage.Skip{N: n})
}

// Unwind appends a $unwind stage for the array field path, preserving
// documents with null or empty arrays. Add a stage.Unwind directly to
// control the preserve flag.
func (b *Builder) Unwind(path string) *Builder {
	return b.Add(stage.NewUnwind(path))
}

// Group appends a $group stage keyed by the id expression with the named
// accumulator expressions alongside it.
func (b *Builder) Group(id any, accumulators bson.M) *Builder {
	return b.Add(stage.Group{ID: id, Accumulators: accumulators})
}

// AddFields appends an $addFields stage with the new field specification.
func (b *Builder) AddFields(fields bson.M) *Builder {
	return b.Add(stage.AddFields{Fields: fields})
}

// ReplaceRoot appends a $replaceRoot stage promoting the expression to the
// document root.
func (b *Builder) ReplaceRoot(newRoot any) *Builder {
	return b.Add(stage.ReplaceRoot{NewRoot: newRoot})
}

// Facet appends a $facet stage. Each map value is a sub-pipeline in any of
// the forms accepted by WithPipeline: a *Builder, a []bson.M, or a mixed
// sequence of raw documents and builders.
func (b *Builder) Facet(pipelines map[string]any) *Builder {
	if b.err != nil {
		return b
	}
	named := make(map[string][]bson.M, len(pipelines))
	for name, value := range pipelines {
		stages, err := subpipeline(value)
		if err != nil {
			return b.fail(fmt.Errorf("pipeline: facet %q: %w", name, err))
		}
		if stages == nil {
			stages = []bson.M{}
		}
		named[name] = stages
	}
	return b.Add(stage.Facet{Pipelines: named})
}

// Redact appends a $redact stage with the per-document condition.
func (b *Builder) Redact(condition bson.M) *Builder {
	return b.Add(stage.Redact{Condition: condition})
}

// Comment appends a $comment stage carrying the annotation text.
func (b *Builder) Comment(text string) *Builder {
	return b.Add(stage.Comment{Text: text})
}

// Build validates the accumulated sequence and returns a copy of it. The
// builder itself is left untouched, so a failed Build can be followed by
// corrective stage calls and retried, and repeated Build calls return equal
// results.
func (b *Builder) Build() ([]bson.M, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := validate(b.stages); err != nil {
		return nil, err
	}
	out := make([]bson.M, len(b.stages))
	copy(out, b.stages)
	return out, nil
}
