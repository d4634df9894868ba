// Package expr provides small constructors for MongoDB aggregation
// expressions: comparison and boolean operators, accumulators, array,
// string, date and numeric helpers, plus the aggregation system variables.
// Each function returns the fixed document shape MongoDB expects for its
// operator and performs no validation; the results plug into the stage
// payloads consumed by pkg/pipeline.
package expr
