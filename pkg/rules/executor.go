package rules

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/modelkit/pkg/registry"
)

// Host is what the executor needs from the model under validation:
// attribute access, error accumulation, display labels, and the named
// handler table backing custom directives.
type Host interface {
	// Attribute returns the current value of an attribute. A missing
	// attribute reports ok=false and a nil value; the executor passes it
	// through to rules as-is without synthesizing anything.
	Attribute(name string) (value any, ok bool)
	// SetAttribute overwrites an attribute value, e.g. after sanitization.
	SetAttribute(name string, value any)
	// AddError appends an error message to the attribute's error list.
	AddError(attr, msg string)
	// HasErrors reports whether any of the given attributes has errors, or
	// whether any errors exist at all when called without arguments.
	HasErrors(attrs ...string) bool
	// ErrorCount returns the total number of recorded error messages. The
	// executor snapshots it at group entry to detect failures.
	ErrorCount() int
	// AttributeLabel returns the display label used for the {{name}}
	// message placeholder.
	AttributeLabel(name string) string
	// Handler resolves a model-registered named rule.
	Handler(name string) (HandlerFunc, bool)
}

// Executor runs rule groups against a host. The zero value is not usable;
// construct with NewExecutor.
type Executor struct {
	registry  *registry.Registry
	labelName bool
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithoutLabelPlaceholder disables injecting the attribute label as the
// {{name}} placeholder when a group supplies none of its own.
func WithoutLabelPlaceholder() ExecutorOption {
	return func(e *Executor) { e.labelName = false }
}

// NewExecutor creates an executor resolving named directives against reg.
func NewExecutor(reg *registry.Registry, opts ...ExecutorOption) *Executor {
	e := &Executor{registry: reg, labelName: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs one rule group against the given attributes, in order.
//
// It returns false without error when the group's gate fired: an error was
// recorded since group entry and the gate covers the failing position.
// Callers must stop processing subsequent groups on a gate stop. A non-nil
// error is a configuration error (unknown rule name, bad arguments) and
// invalidates the whole pass.
//
// When the group carries a conditional follow-up and the primary pass
// recorded no errors, the follow-up runs with the same attribute set and
// full group semantics, and its result is returned.
func (e *Executor) Execute(h Host, attrs []string, g *Group) (bool, error) {
	g.Normalize()
	entry := h.ErrorCount()
	for _, attr := range attrs {
		placeholders := e.placeholders(h, g, attr)
		for _, d := range g.Directives {
			if err := e.run(h, attr, d, g, placeholders); err != nil {
				return false, err
			}
		}
		if g.Gate.Enabled && h.ErrorCount() != entry && (g.Gate.Attr == "" || g.Gate.Attr == attr) {
			return false, nil
		}
	}
	if g.When != nil && h.ErrorCount() == entry {
		return e.Execute(h, attrs, g.When)
	}
	return true, nil
}

func (e *Executor) run(h Host, attr string, d Directive, g *Group, placeholders map[string]any) error {
	args := d.args
	if d.argsFn != nil {
		resolved, err := d.argsFn(h)
		if err != nil {
			return fmt.Errorf("%w: resolving arguments for %q on %q: %w",
				registry.ErrInvalidArgs, d.name, attr, err)
		}
		args = resolved
	}

	value, _ := h.Attribute(attr)

	// Dispatch priority: inline closure, then model handler, then the
	// shared registry.
	if d.fn != nil {
		return d.fn(h, attr, value, args...)
	}
	if fn, ok := h.Handler(d.name); ok {
		return fn(h, attr, value, args...)
	}

	hasValidator := e.registry.HasValidator(d.name)
	hasSanitizer := e.registry.HasSanitizer(d.name)
	if !hasValidator && !hasSanitizer {
		return fmt.Errorf("%w: %q on attribute %q", ErrUnknownRule, d.name, attr)
	}

	cfg := registry.Config{Args: args, Placeholders: placeholders, Messages: g.Messages}
	if hasValidator && !d.sanitizeOnly {
		if err := e.registry.Validate(d.name, value, cfg); err != nil {
			if errors.Is(err, registry.ErrInvalidArgs) {
				return err
			}
			h.AddError(attr, err.Error())
		}
	}
	// The sanitizer half runs after validation and only while the
	// attribute is still clean; a recorded failure freezes the value so
	// error messages refer to what the caller actually submitted.
	if hasSanitizer && !h.HasErrors(attr) {
		out, err := e.registry.Sanitize(d.name, value, cfg)
		if err != nil {
			return err
		}
		h.SetAttribute(attr, out)
	}
	return nil
}

func (e *Executor) placeholders(h Host, g *Group, attr string) map[string]any {
	if !e.labelName {
		return g.Placeholders
	}
	if _, ok := g.Placeholders["name"]; ok {
		return g.Placeholders
	}
	merged := make(map[string]any, len(g.Placeholders)+1)
	for k, v := range g.Placeholders {
		merged[k] = v
	}
	merged["name"] = h.AttributeLabel(attr)
	return merged
}
