package config

import (
	"fmt"

	"github.com/tundralab/lexema/pkg/lexema/normalize"
)

// Loader loads the configuration files and constructs components.
// Empty paths fall back to the built-in defaults.
type Loader struct {
	StoplistPath string
	PipelinePath string
}

// Components holds the configured pipeline components.
type Components struct {
	Normalizer normalize.Normalizer
}

// Load reads the configuration files and returns initialized
// components.
func (l *Loader) Load() (*Components, error) {
	var opts normalize.Options

	if l.StoplistPath != "" {
		stoplist, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		opts.Stopwords = stoplist.Terms
	}

	if l.PipelinePath != "" {
		pipeline, err := LoadPipeline(l.PipelinePath)
		if err != nil {
			return nil, fmt.Errorf("load pipeline: %w", err)
		}
		opts.FoldDiacritics = pipeline.FoldDiacritics
		opts.DisableStemming = pipeline.DisableStemming
		opts.MinTermLength = pipeline.MinTermLength
		opts.ExtraStopwords = pipeline.ExtraStopwords
	}

	return &Components{Normalizer: normalize.NewChain(opts)}, nil
}
