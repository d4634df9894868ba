// Package mongoagg assembles MongoDB aggregation pipelines through a
// fluent, validated builder. The root package is a thin entry point over
// pkg/pipeline (builder, container, validator), pkg/stage (typed stage
// models) and pkg/expr (expression helpers):
//
//	stages, err := mongoagg.New().
//		Match(bson.M{"status": "active"}).
//		Lookup("orders", "orders",
//			pipeline.WithLocalField("userId"),
//			pipeline.WithForeignField("userId")).
//		Unwind("$orders").
//		Build()
//
// The result of Build is the wire-level stage sequence to hand to a
// driver's Aggregate call; nothing here connects to a database.
package mongoagg
