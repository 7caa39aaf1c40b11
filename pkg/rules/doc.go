// Package rules implements the rule-table engine: the declarative types a
// table is made of, the compiler selecting the groups active under a
// scenario, and the executor running a group's directives against a model.
//
// # Architecture
//
// A table is an ordered list of Groups. Each Group covers a set of
// attributes and carries an ordered directive list plus optional modifiers:
// scenario restrictions, a short-circuit Gate, a conditional When group,
// and message/placeholder overrides. Directives are explicit variants built
// with Do, With, WithFunc, and Inline rather than re-parsed on every pass;
// Normalize folds the reserved in-list "one" marker into the Gate field
// once, up front.
//
// The executor resolves each directive in priority order — inline closure,
// model handler, registry entry — and for registry entries runs the
// validator half before the sanitizer half. Sanitization is suppressed as
// soon as the attribute has errors, so failed input is reported verbatim. A
// name prefixed with "!" skips the validator half entirely.
//
// # Error Semantics
//
// Validation failures are recorded on the host and never interrupt the
// pass, with one exception: a Group's Gate stops execution at the first
// failing covered attribute, which is how "at least one of these fields"
// rules report exactly one error. Configuration mistakes (unknown rule
// names, unusable arguments) surface as ordinary Go errors wrapping
// ErrUnknownRule or registry.ErrInvalidArgs and abort the pass.
//
// # Usage
//
//	table := []*rules.Group{
//	    {Attrs: []string{"email", "username"}, Directives: []rules.Directive{
//	        rules.Do("trim"),
//	        rules.Do("required"),
//	        rules.With("length", 3, 64),
//	    }},
//	}
//	exec := rules.NewExecutor(reg)
//	for _, g := range rules.Active(table, scenario, nil) {
//	    ok, err := exec.Execute(host, g.Attrs, g)
//	    if err != nil {
//	        return err // broken rule table
//	    }
//	    if !ok {
//	        break // gate short-circuit
//	    }
//	}
package rules
