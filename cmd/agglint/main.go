package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-mongoagg/pkg/pipeline"
)

var cli struct {
	File    string `arg:"" help:"Pipeline file to validate (.json, .yaml or .yml)"`
	Format  string `short:"f" help:"Output format" enum:"json,yaml" default:"json"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("agglint"),
		kong.Description("Validate a MongoDB aggregation pipeline file and print its normalized form."),
	)

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	ctx.FatalIfErrorf(run())
}

func run() error {
	stages, err := loadStages(cli.File)
	if err != nil {
		return err
	}
	slog.Debug("loaded pipeline", "file", cli.File, "stages", len(stages))

	b := pipeline.From(stages)
	switch cli.Format {
	case "yaml":
		out, err := b.ToYAML()
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	default:
		out, err := b.ToJSON()
		if err != nil {
			return err
		}
		fmt.Println(out)
	}
	return nil
}

func loadStages(path string) ([]bson.M, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raw []map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	stages := make([]bson.M, 0, len(raw))
	for _, doc := range raw {
		stages = append(stages, bson.M(doc))
	}
	return stages, nil
}
