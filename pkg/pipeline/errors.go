package pipeline

import (
	"errors"
	"fmt"
)

// ErrInvalidPipeline is the base error for everything this package reports.
// The more specific sentinels below all wrap it, so callers can match the
// whole family with errors.Is(err, ErrInvalidPipeline) or pick out a single
// failure mode.
var ErrInvalidPipeline = errors.New("invalid aggregation pipeline")

var (
	// ErrMalformedStage reports a stage that violates the wire shape: a raw
	// document without exactly one `$`-prefixed key, a typed stage that
	// fails its construction constraints, or any per-operator rule the
	// validator enforces at Build time.
	ErrMalformedStage = fmt.Errorf("%w: malformed stage", ErrInvalidPipeline)

	// ErrLookupConfig reports a foreign-key Lookup call missing its local
	// or foreign field name. It is raised by the convenience method, not by
	// the validator.
	ErrLookupConfig = fmt.Errorf("%w: lookup configuration", ErrInvalidPipeline)

	// ErrSerialization reports a pipeline value that the requested text
	// format cannot represent.
	ErrSerialization = fmt.Errorf("%w: serialization", ErrInvalidPipeline)
)
