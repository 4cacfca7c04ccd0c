package username

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/usernamekit/pkg/logger"
	"github.com/dmitrymomot/usernamekit/pkg/validator"
)

// Validator checks usernames against a fixed policy.
// It is immutable after New and safe for concurrent use.
type Validator struct {
	policy policy
	logger *slog.Logger
}

// New creates a Validator from DefaultConfig with opts applied on top.
func New(opts ...Option) *Validator {
	o := resolve(options{config: DefaultConfig(), logger: logger.Discard()}, opts...)
	return &Validator{
		policy: compile(o.config),
		logger: o.logger,
	}
}

// Config returns a copy of the resolved policy.
func (v *Validator) Config() Config {
	return v.policy.config.clone()
}

// Validate normalizes raw and runs every rule against the result.
//
// Overrides are merged onto the validator's own policy for this call only;
// the validator itself is left unchanged.
func (v *Validator) Validate(raw string, overrides ...Option) Result {
	p, log := v.policy, v.logger
	if len(overrides) > 0 {
		o := resolve(options{config: v.policy.config, logger: v.logger}, overrides...)
		p, log = compile(o.config), o.logger
	}

	name := Normalize(raw, p.config)
	errs := validator.Collect(p.rules(name)...)

	result := Result{
		Username:   name,
		Normalized: Canonical(name),
		IsValid:    errs.IsEmpty(),
		Errors:     errs,
	}

	if !result.IsValid {
		log.Debug("username rejected",
			logger.Username(name),
			logger.Codes(errs.Codes()),
		)
	}

	return result
}

var defaultValidator = sync.OnceValue(func() *Validator {
	return New()
})

// Validate checks raw against the default policy with opts applied on top.
func Validate(raw string, opts ...Option) Result {
	return defaultValidator().Validate(raw, opts...)
}
