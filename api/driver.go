// Package api defines the driver that optimizes batches of programs.
package api

import (
	"context"
	"log/slog"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/donovandicks/monadc/core"
	"github.com/donovandicks/monadc/instr"
	"github.com/donovandicks/monadc/verify"
)

// Job is one program to optimize.
type Job struct {
	Name    string
	Program []instr.Inst
}

// Driver provides the interface to optimize programs.
type Driver interface {
	// Optimize runs every job and returns one report per job, in job order.
	// Jobs run concurrently, each with its own optimizer invocation. The
	// first failure cancels the jobs that have not started yet.
	Optimize(ctx context.Context, jobs []Job) ([]*verify.Report, error)
}

type driverImpl struct {
	name         string
	optimizer    core.Builder
	concurrency  int
	verifyTrials int
	seed         int64
}

func (d *driverImpl) Optimize(ctx context.Context, jobs []Job) ([]*verify.Report, error) {
	reports := make([]*verify.Report, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)

	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			report, err := d.runJob(i, job)
			if err != nil {
				return err
			}
			reports[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// gctx is always done after Wait; only the caller's context matters.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (d *driverImpl) runJob(i int, job Job) (*verify.Report, error) {
	rng := rand.New(rand.NewSource(d.seed + int64(i)))

	report, err := verify.GenerateReport(
		job.Name, job.Program, d.optimizer.Build(), d.verifyTrials, rng)
	if err != nil {
		slog.Error("Job failed", "driver", d.name, "job", job.Name, "err", err)
		return nil, err
	}

	slog.Debug("Job done",
		"driver", d.name,
		"job", job.Name,
		"original", len(report.Original),
		"optimized", len(report.Optimized),
	)

	return report, nil
}
