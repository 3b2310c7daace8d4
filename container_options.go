package loom

import (
	"github.com/go-logr/logr"
)

// Option configures a Container at construction time.
type Option interface {
	apply(*containerOptions)
}

// containerOptions holds construction configuration.
type containerOptions struct {
	logger          logr.Logger
	sharedByDefault bool
	allowOverride   bool
}

func defaultContainerOptions() containerOptions {
	return containerOptions{
		logger:          logr.Discard(),
		sharedByDefault: true,
		allowOverride:   true,
	}
}

// optionFunc adapts a function to Option.
type optionFunc func(*containerOptions)

func (f optionFunc) apply(opts *containerOptions) {
	f(opts)
}

// WithLogger sets the logger used for registration and resolution tracing.
// Resolution events log at V(1), registrations at V(2). The default logger
// discards everything.
func WithLogger(log logr.Logger) Option {
	return optionFunc(func(opts *containerOptions) {
		opts.logger = log
	})
}

// WithSharedByDefault sets the initial default sharing policy. Equivalent to
// calling SetSharedByDefault after New.
func WithSharedByDefault(shared bool) Option {
	return optionFunc(func(opts *containerOptions) {
		opts.sharedByDefault = shared
	})
}

// WithAllowOverride sets the initial override policy. Equivalent to calling
// SetAllowOverride after New.
func WithAllowOverride(allow bool) Option {
	return optionFunc(func(opts *containerOptions) {
		opts.allowOverride = allow
	})
}
