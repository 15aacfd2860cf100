// File: deque/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package deque

import (
	"fmt"

	"github.com/momentics/hioload-deque/api"
)

const (
	// DefaultInitialCapacity is the slot count of a fresh deque.
	DefaultInitialCapacity = 4
	// DefaultMinCapacity is the floor below which storage never shrinks.
	DefaultMinCapacity = 4
	// shrinkRatio: shrink once Len()*shrinkRatio <= Cap().
	shrinkRatio = 4
)

// Config holds the storage growth and shrink policy.
type Config struct {
	InitialCapacity int                // slots allocated by New and Clear
	MinCapacity     int                // shrink floor
	MaxCapacity     int                // upper bound on slots, 0 = unbounded
	ShrinkDisabled  bool               // keep storage after pops
	Observer        api.ResizeObserver // optional resize hook
}

// DefaultConfig returns the reference policy: start at 4 slots, double on
// growth, halve at quarter occupancy, never below 4.
func DefaultConfig() *Config {
	return &Config{
		InitialCapacity: DefaultInitialCapacity,
		MinCapacity:     DefaultMinCapacity,
	}
}

// Validate checks the policy for internal consistency.
func (c *Config) Validate() error {
	switch {
	case c.MinCapacity < 1:
		return fmt.Errorf("%w: min capacity %d < 1", api.ErrInvalidArgument, c.MinCapacity)
	case c.InitialCapacity < c.MinCapacity:
		return fmt.Errorf("%w: initial capacity %d below min capacity %d",
			api.ErrInvalidArgument, c.InitialCapacity, c.MinCapacity)
	case c.MaxCapacity != 0 && c.MaxCapacity < c.InitialCapacity:
		return fmt.Errorf("%w: max capacity %d below initial capacity %d",
			api.ErrInvalidArgument, c.MaxCapacity, c.InitialCapacity)
	}
	return nil
}

// Option customizes deque construction.
type Option func(*Config)

// WithInitialCapacity sets the slot count allocated up front.
func WithInitialCapacity(n int) Option {
	return func(c *Config) {
		c.InitialCapacity = n
	}
}

// WithMinCapacity sets the shrink floor.
func WithMinCapacity(n int) Option {
	return func(c *Config) {
		c.MinCapacity = n
	}
}

// WithMaxCapacity caps storage growth; pushes beyond it fail with
// api.ErrResourceExhausted.
func WithMaxCapacity(n int) Option {
	return func(c *Config) {
		c.MaxCapacity = n
	}
}

// WithShrinkDisabled keeps storage allocated after pops.
func WithShrinkDisabled() Option {
	return func(c *Config) {
		c.ShrinkDisabled = true
	}
}

// WithResizeObserver attaches a synchronous resize hook.
func WithResizeObserver(o api.ResizeObserver) Option {
	return func(c *Config) {
		c.Observer = o
	}
}
