// Command monadc removes redundant instructions from programs for the
// four-register machine and reports how much shorter they became.
//
// Usage:
//
//	monadc [flags] <program>...
//
// Programs are text files, one instruction per line, or YAML files with an
// "instructions" list.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/tebeka/atexit"
	"gopkg.in/urfave/cli.v1"

	"github.com/donovandicks/monadc/api"
	"github.com/donovandicks/monadc/config"
	"github.com/donovandicks/monadc/program"
	"github.com/donovandicks/monadc/verify"
)

const version = "0.1.0"

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "monadc"
	app.Usage = "remove no-op instructions from MONAD programs"
	app.ArgsUsage = "<program>..."
	app.Version = version
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Usage: "TOML or YAML config file"},
		cli.IntFlag{Name: "verify", Usage: "random input vectors to check each result against"},
		cli.Int64Flag{Name: "seed", Usage: "seed of the input generator"},
		cli.StringFlag{Name: "out, o", Usage: "directory to write optimized programs to"},
		cli.IntFlag{Name: "jobs, j", Usage: "programs optimized at once"},
		cli.StringFlag{Name: "log-level", Usage: "trace, debug, info, warn, or error"},
		cli.BoolFlag{Name: "json-log", Usage: "log as JSON"},
		cli.StringFlag{Name: "log-file", Usage: "write logs to a file instead of stderr"},
	}
	app.Action = run
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func loadConfig(ctx *cli.Context) (config.Config, error) {
	c := config.Default()
	if path := ctx.String("config"); path != "" {
		var err error
		if c, err = config.Load(path); err != nil {
			return c, err
		}
	}

	if ctx.IsSet("verify") {
		c.VerifyTrials = ctx.Int("verify")
	}
	if ctx.IsSet("seed") {
		c.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("out") {
		c.Output = ctx.String("out")
	}
	if ctx.IsSet("jobs") {
		c.Concurrency = ctx.Int("jobs")
	}
	if ctx.IsSet("log-level") {
		c.LogLevel = ctx.String("log-level")
	}
	if ctx.Bool("json-log") {
		c.LogFormat = "json"
	}

	return c, c.Validate()
}

func setupLogging(ctx *cli.Context, c config.Config) error {
	w := os.Stderr
	if path := ctx.String("log-file"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		atexit.Register(func() { f.Close() })
		w = f
	}

	slog.SetDefault(c.Logger(w))
	return nil
}

func run(ctx *cli.Context) error {
	paths := []string(ctx.Args())
	if len(paths) == 0 {
		return errors.New("usage: monadc [flags] <program>...")
	}

	c, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if err := setupLogging(ctx, c); err != nil {
		return err
	}

	jobs := make([]api.Job, 0, len(paths))
	for _, path := range paths {
		prog, err := program.LoadProgramFile(path)
		if err != nil {
			return err
		}

		jobs = append(jobs, api.Job{Name: path, Program: prog})
	}

	driver := api.DriverBuilder{}.
		WithOptimizer(c.OptimizerBuilder()).
		WithConcurrency(c.Concurrency).
		WithVerifyTrials(c.VerifyTrials).
		WithSeed(c.Seed).
		Build("monadc")

	reports, err := driver.Optimize(context.Background(), jobs)
	if err != nil {
		return err
	}

	out := ctx.App.Writer
	failed := 0
	for _, r := range reports {
		r.WriteReport(out)
		fmt.Fprintln(out)

		if r.VerifyErr != nil {
			failed++
		}

		if c.Output != "" {
			if err := writeOptimized(c.Output, r); err != nil {
				return err
			}
		}
	}

	if f, ok := out.(*os.File); ok && len(reports) > 1 && isatty.IsTerminal(f.Fd()) {
		verify.WriteTable(out, reports)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d programs failed verification", failed, len(reports))
	}

	return nil
}

func writeOptimized(dir string, r *verify.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	base := filepath.Base(r.Name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	path := filepath.Join(dir, base+".opt.monad")

	if err := program.WriteFile(path, r.Optimized); err != nil {
		return err
	}

	slog.Info("Wrote optimized program", "path", path, "instructions", len(r.Optimized))
	return nil
}
