package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/eugenenazirov/pipeline-inputs/internal/application"
	"github.com/eugenenazirov/pipeline-inputs/internal/config"
	"github.com/eugenenazirov/pipeline-inputs/internal/inputs"
	"github.com/eugenenazirov/pipeline-inputs/internal/logging"
	"github.com/eugenenazirov/pipeline-inputs/internal/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	kingpinApp := kingpin.New("pipeline-inputs", "Resolves workflow step inputs into the typed configuration used by the pipeline steps")
	kingpinApp.UsageWriter(stdout)
	kingpinApp.ErrorWriter(stderr)
	// kingpin terminates after printing help; record it instead of exiting.
	terminated, exitCode := false, 0
	kingpinApp.Terminate(func(status int) {
		terminated, exitCode = true, status
	})

	resolveCmd := kingpinApp.Command("resolve", "Resolve inputs and print the configuration record").Default()
	configFile := resolveCmd.Flag("config", "Path to YAML configuration file").String()
	format := resolveCmd.Flag("format", "Output format: json, yaml or env").Short('f').String()
	logLevel := resolveCmd.Flag("log-level", "Log level (debug, info, warn, error)").String()
	envPrefix := resolveCmd.Flag("env-prefix", "Prefix of the environment variables carrying step inputs").String()
	outputFile := resolveCmd.Flag("output-file", "Append resolved inputs as key=value lines to this file").String()
	sets := resolveCmd.Flag("set", "Override a single input").Short('s').PlaceHolder("KEY=VALUE").StringMap()

	fieldsCmd := kingpinApp.Command("fields", "List recognised inputs with their kinds and defaults")

	command, err := kingpinApp.Parse(args)
	if terminated {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "pipeline-inputs: %v\n", err)
		return 2
	}

	if command == fieldsCmd.FullCommand() {
		fmt.Fprintln(stdout, render.Fields(inputs.Fields()))
		return 0
	}

	cfg, err := config.Load(&config.CLIOverrides{
		ConfigFile: *configFile,
		Format:     format,
		LogLevel:   logLevel,
		EnvPrefix:  envPrefix,
		OutputFile: outputFile,
		Inputs:     *sets,
	})
	if err != nil {
		fmt.Fprintf(stderr, "failed to load configuration: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := application.New(cfg, logger).Run(stdout); err != nil {
		fmt.Fprintf(stderr, "pipeline-inputs: %v\n", err)
		return 1
	}
	return 0
}
