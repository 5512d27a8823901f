// Package config loads the optional YAML files that tune the analysis
// pipeline and assembles the configured components.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tundralab/lexema/pkg/lexema/internalerr"
)

// Stoplist carries a stopword list that replaces the built-in set.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}

// Pipeline tunes the normalization chain.
type Pipeline struct {
	FoldDiacritics  bool     `yaml:"fold_diacritics"`
	DisableStemming bool     `yaml:"disable_stemming"`
	MinTermLength   int      `yaml:"min_term_length"`
	ExtraStopwords  []string `yaml:"extra_stopwords"`
}

// LoadPipeline loads pipeline settings from a YAML file.
func LoadPipeline(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Pipeline
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	if p.MinTermLength < 0 {
		return nil, fmt.Errorf("min_term_length %d: %w", p.MinTermLength, internalerr.ErrInvalidConfig)
	}

	return &p, nil
}
