// Package pipeline provides the fluent builder, container and validator
// for MongoDB aggregation pipelines. A Builder accumulates wire-level stage
// documents in execution order, either from the typed models in pkg/stage
// or from raw single-key documents, and Build validates the accumulated
// sequence before handing back a copy. The builder never talks to a
// database: the output of Build is the literal pipeline value to submit to
// an aggregation call, and ToJSON/ToYAML render the same sequence as text.
//
// Builder state is plain in-memory data with no synchronization; a single
// Builder must not be mutated from concurrent goroutines.
package pipeline
