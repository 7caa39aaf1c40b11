package rules

// Gate is a group's short-circuit state. When enabled, the group stops as
// soon as any covered attribute has picked up an error since the group was
// entered; when Attr is set, only that attribute's turn triggers the stop.
// This is how "at least one of several optional fields" is expressed:
// every field carries "required", but only the first failure is reported.
type Gate struct {
	Enabled bool
	Attr    string
}

// Group is one entry of a rule table: a set of attribute names and the
// ordered directives applied to each of them, plus the optional modifiers
// gating when and how the group runs.
type Group struct {
	// Attrs are the attribute names the group covers. Execution follows
	// this order, which matters for gated groups.
	Attrs []string

	// Directives run in declaration order for every covered attribute.
	Directives []Directive

	// Scenarios restricts the group to the named validation scenarios.
	// Empty means the group is active under every scenario.
	Scenarios []string

	// Gate short-circuits the group on the first failure. It may be set
	// directly or declared in-list via the reserved "one" directive.
	Gate Gate

	// When is a conditional follow-up: it runs against the same attribute
	// set, with full group semantics, only if this group recorded no
	// errors. Its Attrs and Scenarios fields are ignored.
	When *Group

	// Messages overrides error templates per directive name.
	Messages map[string]string

	// Placeholders supplies {{token}} values for error templates. When no
	// "name" entry is present the executor injects the attribute label.
	Placeholders map[string]any

	normalized bool
}

// Normalize folds reserved in-list entries into their dedicated fields so
// the directive walk only ever sees executable directives. Both gate forms
// are honored: the bare "one" marker enables the gate for any attribute,
// and "one" keyed with an attribute name scopes it to that attribute. The
// conditional group is normalized recursively. Normalize is idempotent and
// returns the receiver.
func (g *Group) Normalize() *Group {
	if g == nil || g.normalized {
		return g
	}
	kept := g.Directives[:0]
	for _, d := range g.Directives {
		if d.name != GateName || d.fn != nil {
			kept = append(kept, d)
			continue
		}
		gate := Gate{Enabled: true}
		if len(d.args) == 1 {
			if attr, ok := d.args[0].(string); ok {
				gate.Attr = attr
			}
		}
		g.Gate = gate
	}
	g.Directives = kept
	g.When.Normalize()
	g.normalized = true
	return g
}

// covers reports whether the group declares the attribute.
func (g *Group) covers(attr string) bool {
	for _, a := range g.Attrs {
		if a == attr {
			return true
		}
	}
	return false
}
