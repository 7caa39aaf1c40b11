package modelkit

import (
	"log/slog"

	"github.com/dmitrymomot/modelkit/pkg/rules"
)

type validateConfig struct {
	attrs []string
	keep  bool
}

// ValidateOption adjusts a single validation pass.
type ValidateOption func(*validateConfig)

// ForAttributes narrows the pass to the named attributes. Rule groups not
// covering any of them are skipped entirely.
func ForAttributes(names ...string) ValidateOption {
	return func(c *validateConfig) { c.attrs = names }
}

// KeepErrors opts out of clearing previously recorded errors before the
// pass.
func KeepErrors() ValidateOption {
	return func(c *validateConfig) { c.keep = true }
}

// Validate runs the active rule groups against the model's attributes and
// reports whether the model is valid.
//
// Previously recorded errors are cleared first unless KeepErrors is given.
// The before-validation hook may veto the pass, in which case Validate
// returns false immediately; a false result therefore does not imply that
// errors were recorded. Groups execute in declaration order; a group whose
// gate fires stops all further groups. The final verdict is simply whether
// any error is recorded on the model once processing ends.
//
// A non-nil error reports a broken rule table (unknown rule name, unusable
// arguments) and invalidates the pass; it is not a validation failure.
func (m *Model) Validate(opts ...ValidateOption) (bool, error) {
	var cfg validateConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.keep {
		m.ClearErrors()
	}

	requested := cfg.attrs
	if len(requested) == 0 {
		requested = m.validatedAttributeNames()
	}

	if m.before != nil && !m.before(m) {
		m.logger.Debug("validation vetoed by before hook", slog.String("scenario", m.scenario))
		return false, nil
	}

	m.logger.Debug("validation started",
		slog.String("scenario", m.scenario),
		slog.Int("attributes", len(requested)))

	for i, g := range rules.Active(m.table, m.scenario, cfg.attrs) {
		attrs := intersect(g.Attrs, requested)
		if len(attrs) == 0 {
			continue
		}
		ok, err := m.executor.Execute(m, attrs, g)
		if err != nil {
			return false, err
		}
		if !ok {
			m.logger.Debug("group gate fired", slog.Int("group", i))
			break
		}
	}

	if m.HasErrors() {
		m.logger.Debug("validation failed", slog.Int("errors", m.ErrorCount()))
		return false, nil
	}
	if m.after != nil {
		m.after(m)
	}
	return true, nil
}

// IsAttributeRequired reports whether the attribute carries a bare
// "required" directive in some rule group active under the current
// scenario. Groups with a conditional follow-up never count: their
// requiredness depends on runtime state and cannot be decided statically.
// Best-effort signal for UI and form building, not a validation guarantee.
func (m *Model) IsAttributeRequired(attr string) bool {
	for _, g := range rules.Active(m.table, m.scenario, nil) {
		if g.When != nil {
			continue
		}
		covered := false
		for _, a := range g.Attrs {
			if a == attr {
				covered = true
				break
			}
		}
		if !covered {
			continue
		}
		for _, d := range g.Directives {
			if d.Bare() && d.Name() == "required" {
				return true
			}
		}
	}
	return false
}

// validatedAttributeNames is the default scope of a pass: every set
// attribute plus every attribute mentioned in the rule table, so rules
// still see attributes the caller never assigned.
func (m *Model) validatedAttributeNames() []string {
	seen := make(map[string]struct{}, len(m.attrs))
	var names []string
	for _, g := range m.table {
		for _, a := range g.Attrs {
			if _, ok := seen[a]; !ok {
				seen[a] = struct{}{}
				names = append(names, a)
			}
		}
	}
	for name := range m.attrs {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// intersect keeps the elements of ordered that are members of requested,
// preserving the order of ordered. Group attribute order drives execution
// order, which gated groups rely on.
func intersect(ordered, requested []string) []string {
	set := make(map[string]struct{}, len(requested))
	for _, name := range requested {
		set[name] = struct{}{}
	}
	var out []string
	for _, name := range ordered {
		if _, ok := set[name]; ok {
			out = append(out, name)
		}
	}
	return out
}
