// Package stage defines the typed models for MongoDB aggregation stages.
// Each stage type holds only the fields relevant to its operator and
// produces exactly one wire-level document via Wire: a single-key bson.M
// whose key is the `$`-prefixed operator name. Stage values are meant to be
// constructed, converted once, and discarded; the pipeline builder in
// pkg/pipeline owns the resulting documents.
package stage
