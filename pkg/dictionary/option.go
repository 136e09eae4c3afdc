package dictionary

import (
	"strings"

	"go.uber.org/zap"
)

type Option func(*Dictionary) *Dictionary

// Normalizer rewrites a word before it is used as a key.
type Normalizer func(word string) string

func DefaultOptions() *Dictionary {
	return &Dictionary{
		logger:    zap.NewNop(),
		normalize: strings.TrimSpace,
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(d *Dictionary) *Dictionary {
		d.logger = logger
		return d
	}
}

func WithNormalizer(normalize Normalizer) Option {
	return func(d *Dictionary) *Dictionary {
		d.normalize = normalize
		return d
	}
}
