package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rxtech-lab/argo-kline/internal/config"
	"github.com/rxtech-lab/argo-kline/pkg/errors"
	"github.com/urfave/cli/v3"
)

func schemaFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "Output `DIR` for the schema and sample config",
			Value:   "./config",
		},
	}
}

// schemaAction writes the config schema and, if absent, a sample config.
func schemaAction(ctx context.Context, cmd *cli.Command) error {
	schemaJSON, err := config.Schema()
	if err != nil {
		return err
	}

	dir := cmd.String("dir")
	schemaPath := filepath.Join(dir, config.SchemaName)
	samplePath := filepath.Join(dir, "kline-chart-config.yaml")

	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(errors.ErrCodeEncodeFailed, err, "failed to create directory %s", dir)
	}

	if err := os.WriteFile(schemaPath, []byte(schemaJSON), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeSchemaFailed, "failed to write schema to file", err)
	}

	// An existing sample config is left untouched.
	if _, err := os.Stat(samplePath); os.IsNotExist(err) {
		sample, err := config.SampleYAML()
		if err != nil {
			return err
		}

		if err := os.WriteFile(samplePath, sample, 0644); err != nil {
			return errors.Wrap(errors.ErrCodeEncodeFailed, "failed to write sample config to file", err)
		}

		fmt.Fprintf(cmd.Root().Writer, "Sample config generated at %s\n", samplePath)
	}

	fmt.Fprintf(cmd.Root().Writer, "Schema generated at %s\n", schemaPath)

	return nil
}
