package config

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"

	"github.com/mipalgu/Coordinates/logging"
)

// Read reads a config from the given file, substituting environment variables first. Fields left
// out of the file keep the values of Default.
func Read(filePath string, logger logging.Logger) (*Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	return FromReader(filePath, bytes.NewReader(buf), logger)
}

// FromReader reads a config from the given reader and specifies
// where, if applicable, the file the reader originated from.
func FromReader(originalPath string, r io.Reader, logger logging.Logger) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	var present struct {
		Pivot  *json.RawMessage `json:"pivot"`
		Camera *int             `json:"camera_index"`
	}
	if err := json.Unmarshal(data, &present); err != nil {
		return nil, errors.Wrapf(err, "failed to decode Config from json")
	}

	cfg := Default()
	// An explicit pivot replaces the default cameras instead of merging into them, and its first
	// camera is used unless another is named.
	if present.Pivot != nil {
		cfg.Pivot.Cameras = nil
		if present.Camera == nil {
			cfg.Camera = 0
		}
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to decode Config from json")
	}
	cfg.ConfigFilePath = originalPath

	if err := cfg.Validate(""); err != nil {
		return nil, errors.Wrapf(err, "invalid config %q", originalPath)
	}
	logger.Debugw("loaded config",
		"path", originalPath,
		"camera_index", cfg.Camera,
		"resolution", cfg.Resolution.String(),
		"tolerance", float64(cfg.Tolerance),
	)
	return cfg, nil
}
