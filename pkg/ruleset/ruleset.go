package ruleset

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/modelkit/pkg/rules"
)

// Parse decodes a YAML rule table into normalized rule groups.
//
// The document is a sequence of groups. Each group maps "attributes" (one
// name or a list) and "directives" (a sequence mixing bare names with
// single-key maps carrying arguments), plus the optional keys "scenarios"
// (one name or a list), "one" (true or an attribute name), "when" (a
// nested directive list or a full group), "messages", and "placeholders".
// Any other key is rejected.
//
//	- attributes: [email, username]
//	  directives:
//	    - trim
//	    - required
//	    - length: [3, 32]
//	  scenarios: register
//	  one: email
//	  messages:
//	    required: "{{name}} is mandatory."
func Parse(data []byte) ([]*rules.Group, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrParseFailed, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidTable)
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: expected a sequence of groups, got %s", ErrInvalidTable, kindName(root))
	}

	groups := make([]*rules.Group, 0, len(root.Content))
	for i, node := range root.Content {
		g, err := decodeGroup(node)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i, err)
		}
		if len(g.Attrs) == 0 {
			return nil, fmt.Errorf("group %d: %w: missing attributes", i, ErrInvalidTable)
		}
		groups = append(groups, g.Normalize())
	}
	return groups, nil
}

// ParseReader reads everything from r and parses it like Parse.
func ParseReader(r io.Reader) ([]*rules.Group, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrParseFailed, err)
	}
	return Parse(data)
}

func decodeGroup(n *yaml.Node) (*rules.Group, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a group mapping, got %s", ErrInvalidTable, kindName(n))
	}
	g := &rules.Group{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		var err error
		switch key {
		case "attributes":
			g.Attrs, err = stringList(val)
		case "directives":
			g.Directives, err = decodeDirectives(val)
		case "scenarios":
			g.Scenarios, err = stringList(val)
		case "one":
			g.Gate, err = decodeGate(val)
		case "when":
			g.When, err = decodeWhen(val)
		case "messages":
			err = val.Decode(&g.Messages)
		case "placeholders":
			err = val.Decode(&g.Placeholders)
		default:
			return nil, fmt.Errorf("%w: unknown group key %q (line %d)", ErrInvalidTable, key, n.Content[i].Line)
		}
		if err != nil {
			return nil, err
		}
	}
	return g, nil
}

func decodeDirectives(n *yaml.Node) ([]rules.Directive, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: directives must be a sequence, got %s", ErrInvalidTable, kindName(n))
	}
	out := make([]rules.Directive, 0, len(n.Content))
	for _, item := range n.Content {
		d, err := decodeDirective(item)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func decodeDirective(n *yaml.Node) (rules.Directive, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		var name string
		if err := n.Decode(&name); err != nil || name == "" {
			return rules.Directive{}, fmt.Errorf("%w: directive name at line %d", ErrInvalidTable, n.Line)
		}
		return rules.Do(name), nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return rules.Directive{}, fmt.Errorf("%w: directive mapping at line %d must have exactly one key", ErrInvalidTable, n.Line)
		}
		name := n.Content[0].Value
		args, err := decodeArgs(n.Content[1])
		if err != nil {
			return rules.Directive{}, err
		}
		return rules.With(name, args...), nil
	default:
		return rules.Directive{}, fmt.Errorf("%w: unsupported directive at line %d", ErrInvalidTable, n.Line)
	}
}

func decodeArgs(n *yaml.Node) ([]any, error) {
	if n.Kind == yaml.SequenceNode {
		args := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			var v any
			if err := item.Decode(&v); err != nil {
				return nil, errors.Join(ErrParseFailed, err)
			}
			args = append(args, v)
		}
		return args, nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, errors.Join(ErrParseFailed, err)
	}
	if v == nil {
		return nil, nil
	}
	return []any{v}, nil
}

func decodeGate(n *yaml.Node) (rules.Gate, error) {
	var b bool
	if err := n.Decode(&b); err == nil {
		return rules.Gate{Enabled: b}, nil
	}
	var attr string
	if err := n.Decode(&attr); err != nil || attr == "" {
		return rules.Gate{}, fmt.Errorf("%w: %q must be true or an attribute name (line %d)", ErrInvalidTable, "one", n.Line)
	}
	return rules.Gate{Enabled: true, Attr: attr}, nil
}

func decodeWhen(n *yaml.Node) (*rules.Group, error) {
	if n.Kind == yaml.SequenceNode {
		directives, err := decodeDirectives(n)
		if err != nil {
			return nil, err
		}
		return &rules.Group{Directives: directives}, nil
	}
	return decodeGroup(n)
}

func stringList(n *yaml.Node) ([]string, error) {
	if n.Kind == yaml.ScalarNode {
		var s string
		if err := n.Decode(&s); err != nil {
			return nil, errors.Join(ErrParseFailed, err)
		}
		return []string{s}, nil
	}
	var list []string
	if err := n.Decode(&list); err != nil {
		return nil, errors.Join(ErrParseFailed, err)
	}
	return list, nil
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
