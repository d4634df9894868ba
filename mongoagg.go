package mongoagg

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/goliatone/go-mongoagg/pkg/pipeline"
)

// Builder is the fluent pipeline builder defined in pkg/pipeline.
type Builder = pipeline.Builder

// Re-exported error sentinels so callers can match failures without
// importing pkg/pipeline directly.
var (
	ErrInvalidPipeline = pipeline.ErrInvalidPipeline
	ErrMalformedStage  = pipeline.ErrMalformedStage
	ErrLookupConfig    = pipeline.ErrLookupConfig
	ErrSerialization   = pipeline.ErrSerialization
)

// New returns an empty pipeline builder.
func New() *Builder {
	return pipeline.New()
}

// From returns a builder seeded with a copy of the supplied wire-level
// stages.
func From(stages []bson.M) *Builder {
	return pipeline.From(stages)
}
