package chatfmt

import "fmt"

// Option configures a Formatter.
type Option func(*config)

type config struct {
	policy Policy
}

// WithPolicy sets the escape policy.
func WithPolicy(p Policy) Option {
	return func(cfg *config) {
		cfg.policy = p
	}
}

// Formatter builds chat markup, escaping free text with its policy. A
// Formatter is immutable and safe for concurrent use.
type Formatter struct {
	policy Policy
}

var std = New()

// New returns a Formatter using the extended policy unless an option
// selects another one.
func New(opts ...Option) *Formatter {
	cfg := config{policy: DefaultPolicy()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Formatter{policy: cfg.policy}
}

// NewWithPolicyName returns a Formatter using the built-in policy name.
func NewWithPolicyName(name string, opts ...Option) (*Formatter, error) {
	policy, ok := PolicyByName(name)
	if !ok {
		return nil, &ValidationError{Field: "policy", Value: name, Reason: fmt.Sprintf("expected one of %v", AvailablePolicies())}
	}
	return New(append([]Option{WithPolicy(policy)}, opts...)...), nil
}

// Policy returns the formatter's escape policy.
func (f *Formatter) Policy() Policy { return f.policy }

// Default returns the package-level Formatter used by the top-level
// functions.
func Default() *Formatter { return std }
