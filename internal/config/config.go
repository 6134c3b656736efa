// Package config loads chart configurations from YAML or JSON documents.
//
// Loading applies struct defaults first, then the document over them, then
// validation, so a partial document only overrides what it names.
package config

import (
	"encoding/json"
	"os"

	"github.com/creasty/defaults"
	"github.com/invopop/jsonschema"
	"github.com/rxtech-lab/argo-kline/internal/types"
	"github.com/rxtech-lab/argo-kline/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SchemaName is the file name the sample config points its schema comment at.
const SchemaName = "kline-chart-config.json"

// Load reads and parses the config file at path.
func Load(path string) (types.ChartConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ChartConfig{}, errors.Wrapf(errors.ErrCodeConfigReadFailed, err, "failed to read config %s", path)
	}

	return Parse(data)
}

// Parse decodes a YAML or JSON document into a validated ChartConfig.
// An empty document yields the defaults.
func Parse(data []byte) (types.ChartConfig, error) {
	var cfg types.ChartConfig
	if err := defaults.Set(&cfg); err != nil {
		return types.ChartConfig{}, errors.Wrap(errors.ErrCodeConfigParseFailed, "failed to apply defaults", err)
	}

	// JSON is a subset of YAML, so one decoder serves both.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return types.ChartConfig{}, errors.Wrap(errors.ErrCodeConfigParseFailed, "failed to parse config", err)
	}

	if err := cfg.Validate(); err != nil {
		return types.ChartConfig{}, err
	}

	return cfg, nil
}

// Schema returns the JSON schema of ChartConfig.
func Schema() (string, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = true
	schema := r.Reflect(types.NewChartConfig())

	schemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeSchemaFailed, "failed to marshal schema", err)
	}

	return string(schemaBytes), nil
}

// SampleYAML renders the default configuration with a schema comment on top.
func SampleYAML() ([]byte, error) {
	yamlBytes, err := yaml.Marshal(types.NewChartConfig())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodeFailed, "failed to marshal sample config", err)
	}

	return append([]byte("# yaml-language-server: $schema="+SchemaName+"\n"), yamlBytes...), nil
}
