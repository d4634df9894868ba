package stage

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// Sort directions accepted by MongoDB at the wire level. These are the only
// two valid direction values; the pipeline validator rejects anything else.
const (
	Ascending  = 1
	Descending = -1
)

// Stage is a typed aggregation stage that converts itself into its
// wire-level form: a document with exactly one `$`-prefixed key.
type Stage interface {
	Wire() (bson.M, error)
}

// Match filters documents with the supplied query criteria.
type Match struct {
	Query bson.M
}

func (s Match) Wire() (bson.M, error) {
	return bson.M{"$match": s.Query}, nil
}

// Project reshapes documents using include/exclude field specifications.
type Project struct {
	Fields bson.M
}

func (s Project) Wire() (bson.M, error) {
	return bson.M{"$project": s.Fields}, nil
}

// Sort orders documents by the given fields. Direction values must be
// Ascending or Descending.
type Sort struct {
	Fields map[string]int
}

func (s Sort) Wire() (bson.M, error) {
	fields := make(bson.M, len(s.Fields))
	for name, direction := range s.Fields {
		fields[name] = direction
	}
	return bson.M{"$sort": fields}, nil
}

// Limit caps the number of documents passed along the pipeline. N must be
// non-negative; Wire fails otherwise.
type Limit struct {
	N int64
}

func (s Limit) Wire() (bson.M, error) {
	if s.N < 0 {
		return nil, fmt.Errorf("$limit must be non-negative, got %d", s.N)
	}
	return bson.M{"$limit": s.N}, nil
}

// Skip drops the first N documents. N must be non-negative; Wire fails
// otherwise.
type Skip struct {
	N int64
}

func (s Skip) Wire() (bson.M, error) {
	if s.N < 0 {
		return nil, fmt.Errorf("$skip must be non-negative, got %d", s.N)
	}
	return bson.M{"$skip": s.N}, nil
}

// Unwind deconstructs an array field into one document per element. It
// always serializes to the expanded object form, never the bare-string
// shorthand, so the preserve flag is explicit on the wire. Use NewUnwind to
// get the default preserve-empty behaviour.
type Unwind struct {
	Path                 string
	PreserveNullAndEmpty bool
}

// NewUnwind returns an Unwind for path that keeps documents whose array is
// null, absent, or empty.
func NewUnwind(path string) Unwind {
	return Unwind{Path: path, PreserveNullAndEmpty: true}
}

func (s Unwind) Wire() (bson.M, error) {
	return bson.M{"$unwind": bson.M{
		"path":                       s.Path,
		"preserveNullAndEmptyArrays": s.PreserveNullAndEmpty,
	}}, nil
}

// Group groups documents by the ID expression, computing the named
// accumulator expressions for each bucket. Accumulators sit next to the
// reserved _id key in the payload.
type Group struct {
	ID           any
	Accumulators bson.M
}

func (s Group) Wire() (bson.M, error) {
	payload := make(bson.M, len(s.Accumulators)+1)
	payload["_id"] = s.ID
	for name, expression := range s.Accumulators {
		payload[name] = expression
	}
	return bson.M{"$group": payload}, nil
}

// AddFields appends computed fields to each document.
type AddFields struct {
	Fields bson.M
}

func (s AddFields) Wire() (bson.M, error) {
	return bson.M{"$addFields": s.Fields}, nil
}

// ReplaceRoot promotes the given expression to be the new document root.
type ReplaceRoot struct {
	NewRoot any
}

func (s ReplaceRoot) Wire() (bson.M, error) {
	return bson.M{"$replaceRoot": bson.M{"newRoot": s.NewRoot}}, nil
}

// Lookup joins documents from another collection. Two mutually exclusive
// wire shapes exist: when Pipeline is non-nil the stage emits the
// pipeline-join form (from/as/let/pipeline, with the let key always present
// even when nil); otherwise it emits the foreign-key form
// (from/as/localField/foreignField). The pipeline builder enforces that
// foreign-key lookups carry both field names.
type Lookup struct {
	From         string
	As           string
	LocalField   string
	ForeignField string
	Let          bson.M
	Pipeline     []bson.M
}

func (s Lookup) Wire() (bson.M, error) {
	payload := bson.M{
		"from": s.From,
		"as":   s.As,
	}
	if s.Pipeline != nil {
		payload["let"] = s.Let
		payload["pipeline"] = s.Pipeline
	} else {
		payload["localField"] = s.LocalField
		payload["foreignField"] = s.ForeignField
	}
	return bson.M{"$lookup": payload}, nil
}

// Facet runs multiple named sub-pipelines against the same input set,
// producing one output field per name.
type Facet struct {
	Pipelines map[string][]bson.M
}

func (s Facet) Wire() (bson.M, error) {
	payload := make(bson.M, len(s.Pipelines))
	for name, stages := range s.Pipelines {
		payload[name] = stages
	}
	return bson.M{"$facet": payload}, nil
}

// Redact restricts document contents with a per-document condition. The
// condition is expected to resolve to one of the $$DESCEND, $$PRUNE or
// $$KEEP system variables at execution time; this package only passes it
// through.
type Redact struct {
	Condition bson.M
}

func (s Redact) Wire() (bson.M, error) {
	return bson.M{"$redact": s.Condition}, nil
}

// Comment attaches a free-form annotation to the pipeline.
type Comment struct {
	Text string
}

func (s Comment) Wire() (bson.M, error) {
	return bson.M{"$comment": s.Text}, nil
}
