package validator

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/dmitrymomot/modelkit/pkg/registry"
)

// Email validates RFC 5322 email addresses with additional constraints for
// typical web use: a single local@domain pair and a dotted, non-degenerate
// domain. Empty values are skipped.
func Email(value any, cfg registry.Config) error {
	if isEmpty(value) {
		return nil
	}
	fail := func() error {
		return cfg.Fail("email", "{{name}} must be a valid email address.", nil)
	}
	s, ok := value.(string)
	if !ok {
		return fail()
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return fail()
	}
	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" {
		return fail()
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return fail()
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return fail()
		}
	}
	return nil
}

// URL validates absolute URLs. Accepted schemes may be narrowed with string
// arguments, e.g. With("url", "https"). Empty values are skipped.
func URL(value any, cfg registry.Config) error {
	if isEmpty(value) {
		return nil
	}
	fail := func() error {
		return cfg.Fail("url", "{{name}} must be a valid URL.", nil)
	}
	s, ok := value.(string)
	if !ok {
		return fail()
	}
	u, err := url.ParseRequestURI(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fail()
	}
	if len(cfg.Args) > 0 {
		for i := range cfg.Args {
			scheme, ok := cfg.StringArg(i)
			if !ok {
				return invalidArgs("url", "expects scheme names as string arguments", cfg.Args)
			}
			if strings.EqualFold(u.Scheme, scheme) {
				return nil
			}
		}
		return fail()
	}
	return nil
}

// Match validates a string against the regular expression given as the
// first argument. A missing or uncompilable pattern is a configuration
// error. Empty values are skipped.
func Match(value any, cfg registry.Config) error {
	pattern, ok := cfg.StringArg(0)
	if !ok {
		return invalidArgs("match", "expects a regular expression pattern", cfg.Args)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return invalidArgs("match", "pattern does not compile", cfg.Args)
	}
	if isEmpty(value) {
		return nil
	}
	s, isStr := value.(string)
	if !isStr || !re.MatchString(s) {
		return cfg.Fail("match", "{{name}} has an invalid format.", nil)
	}
	return nil
}

// IP validates IPv4 and IPv6 addresses. Empty values are skipped.
func IP(value any, cfg registry.Config) error {
	if isEmpty(value) {
		return nil
	}
	s, ok := value.(string)
	if !ok || net.ParseIP(s) == nil {
		return cfg.Fail("ip", "{{name}} must be a valid IP address.", nil)
	}
	return nil
}
