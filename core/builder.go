package core

import "github.com/donovandicks/monadc/util"

// Builder can create optimizers.
type Builder struct {
	idBase   util.ID
	observer Observer
}

// NewBuilder returns a builder with identities starting at zero.
func NewBuilder() Builder {
	return Builder{}
}

// WithIDBase sets the first identity each invocation issues.
func (b Builder) WithIDBase(base util.ID) Builder {
	b.idBase = base
	return b
}

// WithObserver sets an observer that sees every decision.
func (b Builder) WithObserver(o Observer) Builder {
	b.observer = o
	return b
}

// Build creates an optimizer.
func (b Builder) Build() *Optimizer {
	return &Optimizer{
		idBase:   b.idBase,
		observer: b.observer,
	}
}
