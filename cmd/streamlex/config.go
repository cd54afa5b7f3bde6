package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/coregx/streamlex"
)

// fileConfig is the on-disk configuration. Zero values keep the defaults.
type fileConfig struct {
	Reader readerConfig `toml:"reader" yaml:"reader"`
}

type readerConfig struct {
	InitialCapacity int `toml:"initial_capacity" yaml:"initial_capacity"`
	ShrinkThreshold int `toml:"shrink_threshold" yaml:"shrink_threshold"`
	ExtendThreshold int `toml:"extend_threshold" yaml:"extend_threshold"`
}

func loadConfig(path string, cfg *streamlex.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		return fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if v := fc.Reader.InitialCapacity; v != 0 {
		cfg.InitialCapacity = v
	}
	if v := fc.Reader.ShrinkThreshold; v != 0 {
		cfg.ShrinkThreshold = v
	}
	if v := fc.Reader.ExtendThreshold; v != 0 {
		cfg.ExtendThreshold = v
	}
	return nil
}
