package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
)

const defaultConfigFile = ".jsondoc.yaml"

// FileConfig holds defaults read from a yaml file. Command line options
// take precedence.
type FileConfig struct {
	Parse  ParseFileConfig  `yaml:"parse"`
	Encode EncodeFileConfig `yaml:"encode"`
	Diff   DiffFileConfig   `yaml:"diff"`
}

type ParseFileConfig struct {
	Nest         bool `yaml:"nest"`
	PreviewWidth int  `yaml:"previewWidth"`
}

type EncodeFileConfig struct {
	Pretty   bool  `yaml:"pretty"`
	Sort     bool  `yaml:"sort"`
	TabWidth int   `yaml:"tabWidth"`
	MaxWidth int   `yaml:"maxWidth"`
	Color    *bool `yaml:"color"`
}

type DiffFileConfig struct {
	TextCompare bool `yaml:"textCompare"`
	Budget      int  `yaml:"budget"`
	Width       int  `yaml:"width"`
}

func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Parse:  ParseFileConfig{PreviewWidth: 20},
		Encode: EncodeFileConfig{TabWidth: 2},
		Diff:   DiffFileConfig{Budget: 100_000, Width: 40},
	}
}

func (c *FileConfig) Validate() error {
	switch {
	case c.Parse.PreviewWidth < 1:
		return fmt.Errorf("parse.previewWidth must be positive, got %d", c.Parse.PreviewWidth)
	case c.Encode.TabWidth < 0:
		return fmt.Errorf("encode.tabWidth must not be negative, got %d", c.Encode.TabWidth)
	case c.Encode.MaxWidth < 0:
		return fmt.Errorf("encode.maxWidth must not be negative, got %d", c.Encode.MaxWidth)
	case c.Diff.Budget < 0:
		return fmt.Errorf("diff.budget must not be negative, got %d", c.Diff.Budget)
	case c.Diff.Width < 1:
		return fmt.Errorf("diff.width must be positive, got %d", c.Diff.Width)
	}
	return nil
}

// ParseFileConfigData decodes d over the defaults.
func ParseFileConfigData(d []byte) (*FileConfig, error) {
	c := DefaultFileConfig()
	if err := yaml.UnmarshalWithOptions(d, c, yaml.DisallowUnknownField()); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// loadFileConfig reads path, or the default file when path is empty.
// A missing default file yields the defaults.
func loadFileConfig(path string) (*FileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	d, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return DefaultFileConfig(), nil
		}
		return nil, err
	}
	c, err := ParseFileConfigData(d)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}
