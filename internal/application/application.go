package application

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/eugenenazirov/pipeline-inputs/internal/config"
	"github.com/eugenenazirov/pipeline-inputs/internal/inputs"
	"github.com/eugenenazirov/pipeline-inputs/internal/render"
)

// App encapsulates the resolver dependencies.
type App struct {
	cfg    config.Config
	source inputs.Source
	logger *zap.Logger
}

// Option configures App behaviour.
type Option func(*App)

// WithSource replaces the layered source built from configuration (primarily for tests).
func WithSource(src inputs.Source) Option {
	return func(a *App) {
		a.source = src
	}
}

// New initializes the application from the provided configuration.
// Inputs from the config file and CLI take precedence over the environment.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) *App {
	app := &App{
		cfg:    cfg,
		logger: logger,
		source: inputs.Layered{
			inputs.NewMapSource(cfg.Inputs),
			inputs.NewEnvSource(cfg.EnvPrefix, nil),
		},
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// Run resolves the inputs and writes them to out in the configured format.
// When an output file is configured the record is also appended there as
// key=value lines.
func (a *App) Run(out io.Writer) error {
	in, err := inputs.Resolve(a.source)
	if err != nil {
		var missing *inputs.MissingRequiredInputError
		if errors.As(err, &missing) {
			a.logger.Error("required input missing", zap.String("key", missing.Key), zap.String("value", missing.Value))
		}
		return fmt.Errorf("resolve inputs: %w", err)
	}

	if in.CsprojDepth.NaN() {
		a.logger.Warn("input is not a number", zap.String("key", "csproj_depth"))
	}
	a.logger.Debug("inputs resolved",
		zap.Bool("run_migrations", in.RunMigrations),
		zap.Bool("run_tests", in.RunTests),
		zap.Bool("run_versioning", in.RunVersioning),
		zap.Bool("run_docker_build", in.RunDockerBuild),
		zap.Bool("run_release", in.RunRelease),
		zap.Bool("run_publish", in.RunPublish),
	)

	if err := render.Write(out, in, a.cfg.Format); err != nil {
		return err
	}

	if a.cfg.OutputFile != "" {
		if err := a.appendOutputFile(in); err != nil {
			return err
		}
		a.logger.Info("step outputs written", zap.String("path", a.cfg.OutputFile))
	}
	return nil
}

func (a *App) appendOutputFile(in inputs.Inputs) error {
	var buf bytes.Buffer
	if err := render.Write(&buf, in, render.FormatEnv); err != nil {
		return err
	}

	f, err := os.OpenFile(a.cfg.OutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return fmt.Errorf("write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}
