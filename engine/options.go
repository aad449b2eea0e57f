// SPDX-License-Identifier: MIT

package engine

import "github.com/katalvlaran/lcgpredict/width"

// DefaultSeed is the initial state when no WithSeed option is given.
const DefaultSeed = 1

// Options configures a new Engine.
type Options[T width.Unsigned] struct {
	// Seed is the initial state before reduction modulo M.
	Seed T
}

// Option mutates Options during construction.
type Option[T width.Unsigned] func(*Options[T])

// DefaultOptions returns Options with Seed = DefaultSeed.
func DefaultOptions[T width.Unsigned]() Options[T] {
	return Options[T]{Seed: DefaultSeed}
}

// WithSeed sets the initial state. It is reduced modulo M by New.
func WithSeed[T width.Unsigned](seed T) Option[T] {
	return func(o *Options[T]) {
		o.Seed = seed
	}
}

func gatherOptions[T width.Unsigned](opts []Option[T]) Options[T] {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
