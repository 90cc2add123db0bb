package api

import "github.com/donovandicks/monadc/core"

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	optimizer    core.Builder
	concurrency  int
	verifyTrials int
	seed         int64
}

// WithOptimizer sets the builder used to create one optimizer per job.
func (b DriverBuilder) WithOptimizer(o core.Builder) DriverBuilder {
	b.optimizer = o
	return b
}

// WithConcurrency sets how many jobs may run at once.
func (b DriverBuilder) WithConcurrency(n int) DriverBuilder {
	b.concurrency = n
	return b
}

// WithVerifyTrials sets how many random input vectors each result is
// checked against. Zero disables checking.
func (b DriverBuilder) WithVerifyTrials(trials int) DriverBuilder {
	b.verifyTrials = trials
	return b
}

// WithSeed sets the seed of the input generator. Job i uses seed+i.
func (b DriverBuilder) WithSeed(seed int64) DriverBuilder {
	b.seed = seed
	return b
}

// Build creates a driver.
func (b DriverBuilder) Build(name string) Driver {
	concurrency := b.concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &driverImpl{
		name:         name,
		optimizer:    b.optimizer,
		concurrency:  concurrency,
		verifyTrials: b.verifyTrials,
		seed:         b.seed,
	}
}
