// SPDX-License-Identifier: MIT

package tableio

import (
	"maps"

	"github.com/katalvlaran/tollgrid/table"
)

// DefaultComma separates CSV fields.
const DefaultComma = ','

const panicKindBad = "tableio: WithKinds: kinds must be Number, String or Time"

// Option mutates internal options.
type Option func(*Options)

// Options is the effective configuration of ReadCSV / WriteCSV.
type Options struct {
	kinds map[string]table.Kind // explicit kinds; others are inferred
	comma rune
}

// WithKinds pins the kind of the named columns instead of inferring it.
// Names absent from the header are ignored. Panics on table.Invalid.
func WithKinds(kinds map[string]table.Kind) Option {
	for _, k := range kinds {
		if k != table.Number && k != table.String && k != table.Time {
			panic(panicKindBad)
		}
	}
	kinds = maps.Clone(kinds)

	return func(o *Options) {
		if o.kinds == nil {
			o.kinds = make(map[string]table.Kind, len(kinds))
		}
		maps.Copy(o.kinds, kinds)
	}
}

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) Option {
	return func(o *Options) { o.comma = r }
}

func gatherOptions(opts ...Option) Options {
	o := Options{comma: DefaultComma}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
