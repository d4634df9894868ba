package pipeline

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"
)

// ToJSON builds the pipeline and renders it as an indented JSON array in
// MongoDB relaxed Extended JSON, so driver-specific values such as object
// IDs and dates keep their canonical representation. Values no text format
// can represent fail with ErrSerialization; validation failures propagate
// unchanged from Build.
func (b *Builder) ToJSON() (string, error) {
	stages, err := b.Build()
	if err != nil {
		return "", err
	}
	if len(stages) == 0 {
		return "[]", nil
	}

	var sb strings.Builder
	sb.WriteString("[\n")
	for i, st := range stages {
		data, err := bson.MarshalExtJSONIndent(st, false, false, "  ", "  ")
		if err != nil {
			return "", fmt.Errorf("pipeline: marshal stage %d: %s: %w", i, err, ErrSerialization)
		}
		sb.WriteString("  ")
		sb.Write(data)
		if i < len(stages)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("]")
	return sb.String(), nil
}

// ToYAML builds the pipeline and renders it as a YAML sequence, a shape
// convenient for checked-in pipeline fixtures. Unrepresentable values fail
// with ErrSerialization.
func (b *Builder) ToYAML() ([]byte, error) {
	stages, err := b.Build()
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(stages)
	if err != nil {
		return nil, fmt.Errorf("pipeline: marshal to yaml: %s: %w", err, ErrSerialization)
	}
	return data, nil
}
