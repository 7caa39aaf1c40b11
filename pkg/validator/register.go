package validator

import "github.com/dmitrymomot/modelkit/pkg/registry"

// Register installs every built-in validator into r under its directive
// name.
func Register(r *registry.Registry) {
	r.RegisterValidator("required", Required)
	r.RegisterValidator("string", String)
	r.RegisterValidator("length", Length)
	r.RegisterValidator("email", Email)
	r.RegisterValidator("url", URL)
	r.RegisterValidator("match", Match)
	r.RegisterValidator("ip", IP)
	r.RegisterValidator("number", Number)
	r.RegisterValidator("boolean", Boolean)
	r.RegisterValidator("in", In)
	r.RegisterValidator("compare", Compare)
	r.RegisterValidator("date", Date)
	r.RegisterValidator("uuid", UUID)
	r.RegisterValidator("password", Password)
}
