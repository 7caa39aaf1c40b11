package modelkit

import "net/url"

// errorStore accumulates validation errors per attribute. It is built on
// url.Values to leverage built-in string-slice handling: messages keep
// insertion order per attribute, duplicates are allowed, and an attribute
// with no entry simply has no errors.
type errorStore url.Values

func newErrorStore() errorStore {
	return make(errorStore)
}

func (e errorStore) add(attr, msg string) {
	url.Values(e).Add(attr, msg)
}

func (e errorStore) has(attr string) bool {
	return len(e[attr]) > 0
}

func (e errorStore) hasAny() bool {
	for _, msgs := range e {
		if len(msgs) > 0 {
			return true
		}
	}
	return false
}

func (e errorStore) count() int {
	n := 0
	for _, msgs := range e {
		n += len(msgs)
	}
	return n
}

func (e errorStore) first(attr string) string {
	return url.Values(e).Get(attr)
}

func (e errorStore) clear(attrs ...string) {
	if len(attrs) == 0 {
		for attr := range e {
			delete(e, attr)
		}
		return
	}
	for _, attr := range attrs {
		delete(e, attr)
	}
}

// Errors returns all recorded errors keyed by attribute name. The returned
// map is a copy; mutating it does not affect the model. Attributes with no
// errors are absent.
func (m *Model) Errors() map[string][]string {
	out := make(map[string][]string, len(m.errors))
	for attr, msgs := range m.errors {
		if len(msgs) == 0 {
			continue
		}
		out[attr] = append([]string(nil), msgs...)
	}
	return out
}

// ErrorsFor returns the error messages recorded for one attribute, in the
// order they were raised.
func (m *Model) ErrorsFor(attr string) []string {
	msgs := m.errors[attr]
	if len(msgs) == 0 {
		return nil
	}
	return append([]string(nil), msgs...)
}

// AddError appends an error message to an attribute's error list.
func (m *Model) AddError(attr, msg string) {
	m.errors.add(attr, msg)
}

// AddErrors appends every message from a map of attribute errors,
// preserving per-attribute order.
func (m *Model) AddErrors(errs map[string][]string) {
	for attr, msgs := range errs {
		for _, msg := range msgs {
			m.errors.add(attr, msg)
		}
	}
}

// ClearErrors removes recorded errors. With no arguments it clears
// everything; otherwise only the named attributes.
func (m *Model) ClearErrors(attrs ...string) {
	m.errors.clear(attrs...)
}

// HasErrors reports whether any of the given attributes has recorded
// errors, or whether any errors exist at all when called without
// arguments.
func (m *Model) HasErrors(attrs ...string) bool {
	if len(attrs) == 0 {
		return m.errors.hasAny()
	}
	for _, attr := range attrs {
		if m.errors.has(attr) {
			return true
		}
	}
	return false
}

// FirstError returns the first error message recorded for an attribute, or
// the empty string when it has none.
func (m *Model) FirstError(attr string) string {
	return m.errors.first(attr)
}

// FirstErrors returns the first error message of every attribute that has
// at least one.
func (m *Model) FirstErrors() map[string]string {
	out := make(map[string]string, len(m.errors))
	for attr, msgs := range m.errors {
		if len(msgs) > 0 {
			out[attr] = msgs[0]
		}
	}
	return out
}

// ErrorCount returns the total number of recorded error messages across
// all attributes. The rule executor snapshots it to detect whether a group
// added anything.
func (m *Model) ErrorCount() int {
	return m.errors.count()
}
