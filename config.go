package uistyle

import (
	"github.com/npillmayer/schuko"
)

// Configuration keys.
const (
	ConfMaxPasses = "uistyle.layout.maxpasses"
	ConfSilent    = "uistyle.diagnostics.silent"
)

// DefaultMaxPasses bounds the number of update/layout passes of a single
// call to Layout.
const DefaultMaxPasses = 32

// Option configures a Manager.
type Option func(*Manager)

// WithConfig reads settings from a configuration.
func WithConfig(conf schuko.Configuration) Option {
	return func(m *Manager) {
		if conf == nil {
			return
		}
		if conf.IsSet(ConfMaxPasses) {
			if n := conf.GetInt(ConfMaxPasses); n > 0 {
				m.maxPasses = n
			} else {
				tracer().Errorf("ignoring invalid %s = %q", ConfMaxPasses, conf.GetString(ConfMaxPasses))
			}
		}
		if conf.IsSet(ConfSilent) {
			m.quiet = conf.GetBool(ConfSilent)
		}
	}
}

// WithMaxLayoutPasses bounds the number of passes of Layout.
func WithMaxLayoutPasses(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxPasses = n
		}
	}
}

// WithDiagnostics installs a handler for expression evaluation errors.
func WithDiagnostics(handler func(Diagnostic)) Option {
	return func(m *Manager) {
		m.diagnostics = handler
	}
}

// WithExtension installs a host extension.
func WithExtension(ext Extension) Option {
	return func(m *Manager) {
		if ext != nil {
			m.ext = ext
		}
	}
}
