package pipeline_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-mongoagg/pkg/pipeline"
)

func TestToJSON_RoundTrip(t *testing.T) {
	out, err := pipeline.New().
		Match(bson.M{"status": "active"}).
		Project(bson.M{"name": 1}).
		Limit(10).
		ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}

	var got []any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("parse rendered pipeline: %v", err)
	}

	want := []any{
		map[string]any{"$match": map[string]any{"status": "active"}},
		map[string]any{"$project": map[string]any{"name": float64(1)}},
		map[string]any{"$limit": float64(10)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestToJSON_Empty(t *testing.T) {
	out, err := pipeline.New().ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}
	if out != "[]" {
		t.Fatalf("expected empty array, got %q", out)
	}
}

func TestToJSON_UnrepresentableValue(t *testing.T) {
	_, err := pipeline.New().
		Match(bson.M{"callback": func() {}}).
		ToJSON()
	if !errors.Is(err, pipeline.ErrSerialization) {
		t.Fatalf("expected ErrSerialization, got %v", err)
	}
	if !errors.Is(err, pipeline.ErrInvalidPipeline) {
		t.Fatalf("expected base sentinel to match, got %v", err)
	}
}

func TestToJSON_ValidationFailurePropagates(t *testing.T) {
	_, err := pipeline.From([]bson.M{{"$sort": bson.M{"age": 7}}}).ToJSON()
	if !errors.Is(err, pipeline.ErrMalformedStage) {
		t.Fatalf("expected ErrMalformedStage, got %v", err)
	}
}

func TestToYAML_RoundTrip(t *testing.T) {
	out, err := pipeline.New().
		Match(bson.M{"status": "active"}).
		Unwind("$tags").
		ToYAML()
	if err != nil {
		t.Fatalf("to yaml: %v", err)
	}

	var got []map[string]any
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("parse rendered pipeline: %v", err)
	}

	want := []map[string]any{
		{"$match": map[string]any{"status": "active"}},
		{"$unwind": map[string]any{"path": "$tags", "preserveNullAndEmptyArrays": true}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestToYAML_UnrepresentableValue(t *testing.T) {
	_, err := pipeline.New().
		Match(bson.M{"callback": func() {}}).
		ToYAML()
	if !errors.Is(err, pipeline.ErrSerialization) {
		t.Fatalf("expected ErrSerialization, got %v", err)
	}
}
