package modelkit

import (
	"io"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/modelkit/pkg/registry"
	"github.com/dmitrymomot/modelkit/pkg/rules"
	"github.com/dmitrymomot/modelkit/pkg/sanitizer"
	"github.com/dmitrymomot/modelkit/pkg/validator"
)

// BeforeValidateFunc runs before a validation pass. Returning false vetoes
// the pass: validation stops and reports failure without running any rule
// group, and without necessarily recording errors.
type BeforeValidateFunc func(m *Model) bool

// AfterValidateFunc runs after a validation pass that found no errors.
type AfterValidateFunc func(m *Model)

// Model is a dynamic data object validated against a declarative rule
// table: named attributes, scenario-gated rule groups, and accumulated
// per-attribute errors.
//
// A Model is not safe for concurrent use; validate each instance from one
// goroutine. Distinct instances are independent and may share a registry.
type Model struct {
	attrs    map[string]any
	labels   map[string]string
	handlers map[string]rules.HandlerFunc
	table    []*rules.Group
	scenario string
	errors   errorStore
	registry *registry.Registry
	executor *rules.Executor
	before   BeforeValidateFunc
	after    AfterValidateFunc
	logger   *slog.Logger
}

// Option configures a Model during construction.
type Option func(*Model)

// WithRules sets the model's rule table. Groups are normalized once here.
func WithRules(groups ...*rules.Group) Option {
	return func(m *Model) {
		for _, g := range groups {
			g.Normalize()
		}
		m.table = groups
	}
}

// WithScenario sets the initial validation scenario.
func WithScenario(name string) Option {
	return func(m *Model) { m.scenario = name }
}

// WithAttributes seeds the attribute map.
func WithAttributes(attrs map[string]any) Option {
	return func(m *Model) {
		for name, value := range attrs {
			m.attrs[name] = value
		}
	}
}

// WithLabels sets explicit display labels, overriding generated ones.
func WithLabels(labels map[string]string) Option {
	return func(m *Model) {
		for name, label := range labels {
			m.labels[name] = label
		}
	}
}

// WithHandler registers a named inline rule on the model. Handlers win
// over registry entries of the same name, which is how a model supplies
// its own validators and filters.
func WithHandler(name string, fn rules.HandlerFunc) Option {
	return func(m *Model) { m.handlers[name] = fn }
}

// WithRegistry replaces the default rule registry.
func WithRegistry(r *registry.Registry) Option {
	return func(m *Model) {
		if r != nil {
			m.registry = r
		}
	}
}

// WithBeforeValidate installs the before-validation hook.
func WithBeforeValidate(fn BeforeValidateFunc) Option {
	return func(m *Model) { m.before = fn }
}

// WithAfterValidate installs the after-validation hook.
func WithAfterValidate(fn AfterValidateFunc) Option {
	return func(m *Model) { m.after = fn }
}

// WithLogger enables debug tracing of validation passes.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

var defaultRegistry = sync.OnceValue(func() *registry.Registry {
	r := registry.New()
	validator.Register(r)
	sanitizer.Register(r)
	return r
})

// DefaultRegistry returns the shared registry preloaded with the built-in
// validators and sanitizers. Clone it to extend the rule set for a single
// model without affecting others.
func DefaultRegistry() *registry.Registry {
	return defaultRegistry()
}

// New creates a model. Without options it has no attributes, no rules, the
// default scenario, and the default registry.
func New(opts ...Option) *Model {
	m := &Model{
		attrs:    make(map[string]any),
		labels:   make(map[string]string),
		handlers: make(map[string]rules.HandlerFunc),
		errors:   newErrorStore(),
		registry: DefaultRegistry(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.executor = rules.NewExecutor(m.registry)
	return m
}

// Scenario returns the current validation scenario.
func (m *Model) Scenario() string { return m.scenario }

// SetScenario switches the validation scenario.
func (m *Model) SetScenario(name string) { m.scenario = name }

// Attribute returns the current value of an attribute.
func (m *Model) Attribute(name string) (any, bool) {
	value, ok := m.attrs[name]
	return value, ok
}

// SetAttribute sets an attribute value.
func (m *Model) SetAttribute(name string, value any) {
	m.attrs[name] = value
}

// SetAttributes sets several attribute values at once.
func (m *Model) SetAttributes(attrs map[string]any) {
	for name, value := range attrs {
		m.attrs[name] = value
	}
}

// Attributes returns a copy of the attribute map.
func (m *Model) Attributes() map[string]any {
	out := make(map[string]any, len(m.attrs))
	for name, value := range m.attrs {
		out[name] = value
	}
	return out
}

// AttributeNames returns the names of all set attributes, in no particular
// order.
func (m *Model) AttributeNames() []string {
	names := make([]string, 0, len(m.attrs))
	for name := range m.attrs {
		names = append(names, name)
	}
	return names
}

// Handler resolves a model-registered named rule for the executor.
func (m *Model) Handler(name string) (rules.HandlerFunc, bool) {
	fn, ok := m.handlers[name]
	return fn, ok
}

// Rules returns the model's rule table.
func (m *Model) Rules() []*rules.Group { return m.table }
