package modelkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/modelkit"
	"github.com/dmitrymomot/modelkit/pkg/registry"
	"github.com/dmitrymomot/modelkit/pkg/rules"
)

func signupRules() []*rules.Group {
	return []*rules.Group{
		{
			Attrs:      []string{"email", "username"},
			Directives: []rules.Directive{rules.Do("trim")},
		},
		{
			Attrs:      []string{"email", "username"},
			Directives: []rules.Directive{rules.Do("required")},
		},
	}
}

func TestValidate(t *testing.T) {
	t.Run("trims then validates end to end", func(t *testing.T) {
		m := modelkit.New(
			modelkit.WithRules(signupRules()...),
			modelkit.WithAttributes(map[string]any{
				"username": "Tom   ",
				"email":    " ToM@site.com   ",
			}),
		)

		ok, err := m.Validate()
		require.NoError(t, err)
		assert.True(t, ok)
		assert.False(t, m.HasErrors())

		username, _ := m.Attribute("username")
		email, _ := m.Attribute("email")
		assert.Equal(t, "Tom", username)
		assert.Equal(t, "ToM@site.com", email)
	})

	t.Run("records errors for missing attributes", func(t *testing.T) {
		m := modelkit.New(
			modelkit.WithRules(signupRules()...),
			modelkit.WithAttributes(map[string]any{"username": "Tom"}),
		)

		ok, err := m.Validate()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, m.HasErrors("email"))
		assert.False(t, m.HasErrors("username"))
	})

	t.Run("unknown directive is a configuration error", func(t *testing.T) {
		m := modelkit.New(
			modelkit.WithRules(&rules.Group{
				Attrs:      []string{"email"},
				Directives: []rules.Directive{rules.Do("definitely_not_a_rule")},
			}),
			modelkit.WithAttributes(map[string]any{"email": "x"}),
		)

		ok, err := m.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, rules.ErrUnknownRule)
		assert.False(t, ok)
		assert.False(t, m.HasErrors(), "configuration errors are not validation errors")
	})

	t.Run("repeated validation yields identical errors", func(t *testing.T) {
		m := modelkit.New(
			modelkit.WithRules(signupRules()...),
			modelkit.WithAttributes(map[string]any{"username": "  "}),
		)

		_, err := m.Validate()
		require.NoError(t, err)
		first := m.Errors()

		_, err = m.Validate()
		require.NoError(t, err)
		assert.Equal(t, first, m.Errors())
	})

	t.Run("keep errors accumulates across passes", func(t *testing.T) {
		m := modelkit.New(
			modelkit.WithRules(signupRules()...),
			modelkit.WithAttributes(map[string]any{"username": "", "email": ""}),
		)

		_, err := m.Validate()
		require.NoError(t, err)
		require.Len(t, m.ErrorsFor("email"), 1)

		_, err = m.Validate(modelkit.KeepErrors())
		require.NoError(t, err)
		assert.Len(t, m.ErrorsFor("email"), 2)
	})

	t.Run("narrows the pass to requested attributes", func(t *testing.T) {
		m := modelkit.New(
			modelkit.WithRules(signupRules()...),
			modelkit.WithAttributes(map[string]any{"username": "", "email": ""}),
		)

		ok, err := m.Validate(modelkit.ForAttributes("username"))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, m.HasErrors("username"))
		assert.False(t, m.HasErrors("email"), "email was out of scope")
	})

	t.Run("scenario gates rule groups", func(t *testing.T) {
		table := []*rules.Group{
			{
				Attrs:      []string{"password"},
				Directives: []rules.Directive{rules.Do("required")},
				Scenarios:  []string{"register"},
			},
		}

		m := modelkit.New(modelkit.WithRules(table...), modelkit.WithScenario("update"))
		ok, err := m.Validate()
		require.NoError(t, err)
		assert.True(t, ok, "password group inactive under update")

		m.SetScenario("register")
		ok, err = m.Validate()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, m.HasErrors("password"))
	})

	t.Run("gate short-circuit stops later groups", func(t *testing.T) {
		table := []*rules.Group{
			{
				Attrs:      []string{"phone", "email"},
				Directives: []rules.Directive{rules.Do("required"), rules.Do("one")},
			},
			{
				Attrs:      []string{"username"},
				Directives: []rules.Directive{rules.Do("required")},
			},
		}
		m := modelkit.New(modelkit.WithRules(table...))

		ok, err := m.Validate()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, m.HasErrors("phone"), "first gated attribute reported")
		assert.False(t, m.HasErrors("email"), "gate stopped the group")
		assert.False(t, m.HasErrors("username"), "gate stopped later groups too")
	})

	t.Run("custom handler acts as an inline validator", func(t *testing.T) {
		m := modelkit.New(
			modelkit.WithRules(&rules.Group{
				Attrs:      []string{"username"},
				Directives: []rules.Directive{rules.Do("reserved")},
			}),
			modelkit.WithAttributes(map[string]any{"username": "admin"}),
			modelkit.WithHandler("reserved", func(h rules.Host, attr string, value any, args ...any) error {
				if value == "admin" {
					h.AddError(attr, "this name is reserved")
				}
				return nil
			}),
		)

		ok, err := m.Validate()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "this name is reserved", m.FirstError("username"))
	})

	t.Run("custom registry extends the built-ins", func(t *testing.T) {
		reg := modelkit.DefaultRegistry().Clone()
		reg.RegisterValidator("even", func(value any, cfg registry.Config) error {
			if n, ok := value.(int); ok && n%2 == 0 {
				return nil
			}
			return cfg.Fail("even", "{{name}} must be even.", nil)
		})

		m := modelkit.New(
			modelkit.WithRegistry(reg),
			modelkit.WithRules(&rules.Group{
				Attrs:      []string{"count"},
				Directives: []rules.Directive{rules.Do("even")},
			}),
			modelkit.WithAttributes(map[string]any{"count": 3}),
		)

		ok, err := m.Validate()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "Count must be even.", m.FirstError("count"))
	})
}

func TestValidateHooks(t *testing.T) {
	t.Run("before hook vetoes the pass", func(t *testing.T) {
		m := modelkit.New(
			modelkit.WithRules(signupRules()...),
			modelkit.WithAttributes(map[string]any{"username": "Tom", "email": "t@site.com"}),
			modelkit.WithBeforeValidate(func(m *modelkit.Model) bool { return false }),
		)

		ok, err := m.Validate()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, m.HasErrors(), "a vetoed pass records nothing")
	})

	t.Run("after hook runs only on success", func(t *testing.T) {
		ran := false
		m := modelkit.New(
			modelkit.WithRules(signupRules()...),
			modelkit.WithAttributes(map[string]any{"username": "Tom", "email": "t@site.com"}),
			modelkit.WithAfterValidate(func(m *modelkit.Model) { ran = true }),
		)

		ok, err := m.Validate()
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, ran)

		ran = false
		m.SetAttribute("email", "")
		ok, err = m.Validate()
		require.NoError(t, err)
		require.False(t, ok)
		assert.False(t, ran)
	})
}

func TestIsAttributeRequired(t *testing.T) {
	table := []*rules.Group{
		{
			Attrs:      []string{"email"},
			Directives: []rules.Directive{rules.Do("required")},
		},
		{
			Attrs:      []string{"nickname"},
			Directives: []rules.Directive{rules.Do("string")},
			When: &rules.Group{
				Directives: []rules.Directive{rules.Do("required")},
			},
		},
		{
			Attrs:      []string{"password"},
			Directives: []rules.Directive{rules.Do("required")},
			Scenarios:  []string{"register"},
		},
		{
			Attrs:      []string{"website"},
			Directives: []rules.Directive{rules.Do("url")},
		},
	}

	t.Run("bare required without a condition", func(t *testing.T) {
		m := modelkit.New(modelkit.WithRules(table...))
		assert.True(t, m.IsAttributeRequired("email"))
	})

	t.Run("required inside a conditional group does not count", func(t *testing.T) {
		m := modelkit.New(modelkit.WithRules(table...))
		assert.False(t, m.IsAttributeRequired("nickname"))
	})

	t.Run("scenario restriction applies", func(t *testing.T) {
		m := modelkit.New(modelkit.WithRules(table...))
		assert.False(t, m.IsAttributeRequired("password"))
		m.SetScenario("register")
		assert.True(t, m.IsAttributeRequired("password"))
	})

	t.Run("no required directive at all", func(t *testing.T) {
		m := modelkit.New(modelkit.WithRules(table...))
		assert.False(t, m.IsAttributeRequired("website"))
		assert.False(t, m.IsAttributeRequired("unknown"))
	})
}
