package guard

import "fmt"

// Wrapper replaces errors matching its rules with an Error of another
// class, preserving the original as an explicit cause (by default) and as
// the implicit context (always). Anything that matches no rule propagates
// unchanged. A Wrapper is immutable after construction and safe to share.
//
// The typical use is boundary translation: a storage layer raises its own
// classes, and the service layer wraps them into the classes its callers
// are promised.
type Wrapper struct {
	rules           Rules
	policy          messagePolicy
	setCause        bool
	suppressContext bool
}

var _ Guard = (*Wrapper)(nil)

// WrapOption configures a Wrapper at construction time.
type WrapOption func(*wrapConfig)

type wrapConfig struct {
	policy   messagePolicy
	policies int
	setCause bool
	suppress bool
}

type messagePolicy struct {
	kind policyKind
	text string
}

type policyKind int

const (
	policyInherit policyKind = iota
	policyLiteral
	policyNone
	policyPrefix
	policyFormat
)

// render derives the replacement message from the original one.
func (p messagePolicy) render(original string) string {
	switch p.kind {
	case policyLiteral:
		return p.text
	case policyNone:
		return ""
	case policyPrefix:
		return p.text + ": " + original
	case policyFormat:
		return fmt.Sprintf(p.text, original)
	default:
		return original
	}
}

// WithMessage sets a literal replacement message, discarding the original
// one. Mutually exclusive with the other message options.
func WithMessage(message string) WrapOption {
	return func(cfg *wrapConfig) {
		cfg.policy = messagePolicy{kind: policyLiteral, text: message}
		cfg.policies++
	}
}

// WithNoMessage gives the replacement an empty message. This is an explicit
// choice, distinct from the default of reusing the original message.
// Mutually exclusive with the other message options.
func WithNoMessage() WrapOption {
	return func(cfg *wrapConfig) {
		cfg.policy = messagePolicy{kind: policyNone}
		cfg.policies++
	}
}

// WithPrefix prepends "prefix: " to the original message. Mutually
// exclusive with the other message options.
func WithPrefix(prefix string) WrapOption {
	return func(cfg *wrapConfig) {
		cfg.policy = messagePolicy{kind: policyPrefix, text: prefix}
		cfg.policies++
	}
}

// WithFormat derives the replacement message from a template applied to the
// original message. The template must contain exactly one %s placeholder;
// %% renders a literal percent sign. Anything else is a configuration
// error. Mutually exclusive with the other message options.
//
// Example:
//
//	w, err := guard.Wrap(guard.ClassTimeout, guard.ClassUnavailable,
//	    guard.WithFormat("upstream gave up: %s"))
func WithFormat(format string) WrapOption {
	return func(cfg *wrapConfig) {
		cfg.policy = messagePolicy{kind: policyFormat, text: format}
		cfg.policies++
	}
}

// WithoutCause leaves the replacement's explicit cause unset. The original
// error remains reachable through Unwrap as the implicit context.
func WithoutCause() WrapOption {
	return func(cfg *wrapConfig) {
		cfg.setCause = false
	}
}

// WithSuppressContext hides the implicit context from verbose output. The
// context stays set and stays on the Unwrap chain; suppression affects
// display only.
func WithSuppressContext() WrapOption {
	return func(cfg *wrapConfig) {
		cfg.suppress = true
	}
}

// Wrap creates a Wrapper replacing match (and its subclasses) with
// replacement. Both classes are required.
//
// By default the replacement carries the original message verbatim, the
// original error as its explicit cause, and the original error as its
// unsuppressed implicit context.
//
// Example:
//
//	w, err := guard.Wrap(guard.ClassNotFound, guard.ClassInvalid,
//	    guard.WithPrefix("bad reference"))
func Wrap(match, replacement *Class, opts ...WrapOption) (*Wrapper, error) {
	if match == nil {
		return nil, ClassConfig.New("match class must not be nil")
	}
	if replacement == nil {
		return nil, ClassConfig.New("replacement class must not be nil")
	}
	return newWrapper(Rules{{Match: match, Replace: replacement}}, opts)
}

// WrapAll creates a Wrapper replacing every listed class (and its
// subclasses) with the one replacement. An empty list is legal and yields a
// wrapper that matches nothing.
func WrapAll(matches []*Class, replacement *Class, opts ...WrapOption) (*Wrapper, error) {
	if len(matches) > 0 && replacement == nil {
		return nil, ClassConfig.New("replacement class must not be nil")
	}
	rules := make(Rules, 0, len(matches))
	for i, m := range matches {
		if m == nil {
			return nil, ClassConfig.Newf("match class %d must not be nil", i)
		}
		rules = append(rules, Rule{Match: m, Replace: replacement})
	}
	return newWrapper(rules, opts)
}

// WrapRules creates a Wrapper from an ordered rule list. The first matching
// rule wins, so list a subclass rule before its ancestor's rule to keep it
// reachable. Empty rules are legal and match nothing; a rule with a nil
// side is a configuration error.
//
// Example:
//
//	w, err := guard.WrapRules(guard.Rules{
//	    {Match: guard.ClassTimeout, Replace: guard.ClassUnavailable},
//	    {Match: guard.ClassTransient, Replace: guard.ClassInternal},
//	})
func WrapRules(rules Rules, opts ...WrapOption) (*Wrapper, error) {
	for i, r := range rules {
		if r.Match == nil {
			return nil, ClassConfig.Newf("rule %d: match class must not be nil", i)
		}
		if r.Replace == nil {
			return nil, ClassConfig.Newf("rule %d: replacement class must not be nil", i)
		}
	}
	return newWrapper(append(Rules(nil), rules...), opts)
}

func newWrapper(rules Rules, opts []WrapOption) (*Wrapper, error) {
	cfg := wrapConfig{setCause: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.policies > 1 {
		return nil, ClassConfig.New("at most one of WithMessage, WithNoMessage, WithPrefix, or WithFormat may be used")
	}
	if cfg.policy.kind == policyFormat {
		if err := validateMessageFormat(cfg.policy.text); err != nil {
			return nil, err
		}
	}
	return &Wrapper{
		rules:           rules,
		policy:          cfg.policy,
		setCause:        cfg.setCause,
		suppressContext: cfg.suppress,
	}, nil
}

// validateMessageFormat checks a WithFormat template at construction time:
// exactly one %s, no other verbs, %% allowed.
func validateMessageFormat(format string) error {
	placeholders := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		if i >= len(format) {
			return ClassConfig.New("format must not end with a bare %")
		}
		switch format[i] {
		case '%':
		case 's':
			placeholders++
		default:
			return ClassConfig.Newf("format may only use %%s placeholders, found %%%c", format[i])
		}
	}
	if placeholders != 1 {
		return ClassConfig.Newf("format must contain exactly one %%s placeholder, found %d", placeholders)
	}
	return nil
}

// Exit applies the replacement policy to *errp. See Guard.
func (w *Wrapper) Exit(errp *error) {
	guardExit(w, errp)
}

// Do runs fn, replacing a matched error and propagating anything else.
func (w *Wrapper) Do(fn func() error) error {
	return guardDo(w, fn)
}

// Func returns fn wrapped so that the replacement policy applies on every
// call. It is the infallible form of Decorate for a Wrapper.
func (w *Wrapper) Func(fn func() error) func() error {
	return func() error {
		return w.decide(fn())
	}
}

// String returns a representation like "guard.Wrap(TIMEOUT -> SERVICE_UNAVAILABLE)".
// Only the first rule is shown; an ellipsis stands in for the rest.
func (w *Wrapper) String() string {
	if len(w.rules) == 0 {
		return "guard.Wrap()"
	}
	r := w.rules[0]
	s := "guard.Wrap(" + r.Match.Name() + " -> " + r.Replace.Name()
	if len(w.rules) > 1 {
		s += ", ..."
	}
	return s + ")"
}

func (w *Wrapper) decide(err error) error {
	if err == nil {
		return nil
	}
	replacement, ok := w.rules.Resolve(err)
	if !ok {
		return err
	}
	out := &Error{
		class:       replacement,
		message:     w.policy.render(messageOf(err)),
		context:     err,
		hideContext: w.suppressContext,
	}
	if w.setCause {
		out.cause = err
	}
	return out
}

func (w *Wrapper) decoratable() error {
	return nil
}
