package validator

import (
	"fmt"
	"reflect"
)

// isEmpty reports whether a value should be treated as "not provided" by
// validators that skip empty input. Only nil and the empty string qualify;
// zero numbers and false are real values.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

// looseEqual compares two values the way rule arguments meet attribute
// values: direct equality first, string rendering as a fallback so that
// YAML-decoded numbers still match their string form.
func looseEqual(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}
