// Package modelkit provides declarative, scenario-aware validation and
// sanitization for dynamic data models: a Model holds named attributes, a
// rule table describes which checks and transforms apply under which
// scenario, and a validation pass accumulates per-attribute error messages.
//
// # Architecture
//
// The root package owns the Model: attribute storage, the error store, the
// validation driver, display labels, and hooks. The engine lives in
// pkg/rules (group compilation and directive execution), names resolve
// through pkg/registry, and pkg/validator plus pkg/sanitizer supply the
// built-in rules behind the default registry. pkg/ruleset loads rule
// tables from YAML.
//
// # Usage
//
//	m := modelkit.New(
//	    modelkit.WithRules(
//	        &rules.Group{
//	            Attrs: []string{"email", "username"},
//	            Directives: []rules.Directive{
//	                rules.Do("trim"),
//	                rules.Do("required"),
//	            },
//	        },
//	        &rules.Group{
//	            Attrs:      []string{"email"},
//	            Directives: []rules.Directive{rules.Do("email")},
//	        },
//	    ),
//	    modelkit.WithAttributes(map[string]any{
//	        "email":    " ToM@site.com ",
//	        "username": "Tom ",
//	    }),
//	)
//
//	ok, err := m.Validate()
//	if err != nil {
//	    // broken rule table: unknown rule name or bad arguments
//	}
//	if !ok {
//	    for attr, msgs := range m.Errors() {
//	        // per-attribute messages, in the order they were raised
//	    }
//	}
//
// # Scenarios
//
// A rule group listing scenarios only runs when the model's current
// scenario is among them; groups without a scenario list always run. This
// lets one model declare different requirements for, say, registration and
// profile update.
//
// # Concurrency
//
// A Model mutates its attributes and error store in place during
// validation and is not safe for concurrent use. Different Model instances
// are independent; the registry they share is read-only after setup.
package modelkit
