package pipeline

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/goliatone/go-mongoagg/pkg/stage"
)

// LookupOption configures a Lookup call.
type LookupOption func(*lookupSpec)

type lookupSpec struct {
	localField   string
	foreignField string
	let          bson.M
	pipeline     any
	hasPipeline  bool
}

// WithLocalField sets the field read from the input documents in a
// foreign-key lookup.
func WithLocalField(name string) LookupOption {
	return func(s *lookupSpec) {
		s.localField = name
	}
}

// WithForeignField sets the field read from the joined collection in a
// foreign-key lookup.
func WithForeignField(name string) LookupOption {
	return func(s *lookupSpec) {
		s.foreignField = name
	}
}

// WithLet binds variables made available inside a lookup sub-pipeline. The
// mapping may be empty or nil; it is forwarded as-is.
func WithLet(vars bson.M) LookupOption {
	return func(s *lookupSpec) {
		s.let = vars
	}
}

// WithPipeline selects pipeline mode and supplies the sub-pipeline. The
// value may be a *Builder (its built stages are spliced in), a []bson.M, a
// bson.A, or a []any mixing raw stage documents and builders; each builder
// contributes its entire built sequence in place. Passing nil keeps the
// lookup in foreign-key mode.
func WithPipeline(p any) LookupOption {
	return func(s *lookupSpec) {
		s.pipeline = p
		s.hasPipeline = p != nil
	}
}

// Lookup appends a $lookup stage joining the from collection into the as
// field. With WithPipeline it emits the pipeline-join form, forwarding
// WithLet as given; otherwise both WithLocalField and WithForeignField are
// required and the foreign-key form is emitted. A foreign-key call missing
// either field fails immediately with ErrLookupConfig.
func (b *Builder) Lookup(from, as string, opts ...LookupOption) *Builder {
	if b.err != nil {
		return b
	}
	var spec lookupSpec
	for _, opt := range opts {
		opt(&spec)
	}

	if spec.hasPipeline {
		stages, err := subpipeline(spec.pipeline)
		if err != nil {
			return b.fail(fmt.Errorf("pipeline: lookup into %q: %w", from, err))
		}
		if stages == nil {
			stages = []bson.M{}
		}
		return b.Add(stage.Lookup{
			From:         from,
			As:           as,
			Let:          spec.let,
			Pipeline:     stages,
			LocalField:   spec.localField,
			ForeignField: spec.foreignField,
		})
	}

	if spec.localField == "" || spec.foreignField == "" {
		return b.fail(fmt.Errorf("pipeline: lookup into %q requires both local and foreign fields when no sub-pipeline is given: %w", from, ErrLookupConfig))
	}
	return b.Add(stage.Lookup{
		From:         from,
		As:           as,
		LocalField:   spec.localField,
		ForeignField: spec.foreignField,
	})
}

// subpipeline normalizes the accepted sub-pipeline forms into one flat
// stage sequence. Builders are queried through Build, never mutated, so a
// nested builder can be reused across outer calls.
func subpipeline(v any) ([]bson.M, error) {
	switch p := v.(type) {
	case nil:
		return nil, nil
	case *Builder:
		if p == nil {
			return nil, nil
		}
		return p.Build()
	case []bson.M:
		out := make([]bson.M, len(p))
		copy(out, p)
		return out, nil
	case []map[string]any:
		out := make([]bson.M, 0, len(p))
		for _, doc := range p {
			out = append(out, bson.M(doc))
		}
		return out, nil
	case bson.A:
		return splice(p)
	case []any:
		return splice(p)
	default:
		return nil, fmt.Errorf("sub-pipeline must be a builder or a sequence of stage documents, got %T: %w", v, ErrMalformedStage)
	}
}

func splice(items []any) ([]bson.M, error) {
	out := make([]bson.M, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case *Builder:
			built, err := v.Build()
			if err != nil {
				return nil, err
			}
			out = append(out, built...)
		case bson.M:
			out = append(out, v)
		case map[string]any:
			out = append(out, bson.M(v))
		case bson.D:
			doc := make(bson.M, len(v))
			for _, e := range v {
				doc[e.Key] = e.Value
			}
			out = append(out, doc)
		default:
			return nil, fmt.Errorf("sub-pipeline item must be a stage document or builder, got %T: %w", item, ErrMalformedStage)
		}
	}
	return out, nil
}
