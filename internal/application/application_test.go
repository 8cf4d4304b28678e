package application

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/pipeline-inputs/internal/config"
	"github.com/eugenenazirov/pipeline-inputs/internal/inputs"
	"github.com/eugenenazirov/pipeline-inputs/internal/render"
)

func baseTestConfig() config.Config {
	return config.Config{
		Format:    render.FormatEnv,
		LogLevel:  "debug",
		EnvPrefix: "TEST_INPUT_",
		Inputs: map[string]string{
			"include_dotnet_binaries": "true",
			"run_publish":             "true",
			"publish_linux":           "true",
			"publish_windows":         "false",
			"publish_mac":             "false",
		},
	}
}

func TestRunLayersConfigOverEnvironment(t *testing.T) {
	t.Setenv("TEST_INPUT_VERSION", "9.9.9")
	t.Setenv("TEST_INPUT_RUN_TESTS", "true")

	cfg := baseTestConfig()
	cfg.Inputs["version"] = "1.2.3"

	var out bytes.Buffer
	if err := New(cfg, zaptest.NewLogger(t)).Run(&out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if !strings.Contains(out.String(), "version=1.2.3\n") {
		t.Fatalf("expected config input to win, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "run_tests=true\n") {
		t.Fatalf("expected environment input to be used, got:\n%s", out.String())
	}
}

func TestRunMissingRequiredInput(t *testing.T) {
	cfg := baseTestConfig()
	delete(cfg.Inputs, "publish_linux")

	var out bytes.Buffer
	err := New(cfg, zaptest.NewLogger(t)).Run(&out)
	if !errors.Is(err, inputs.ErrMissingRequiredInput) {
		t.Fatalf("expected missing required input error, got %v", err)
	}
	if !strings.Contains(err.Error(), "publish_linux") {
		t.Fatalf("expected error to name the key, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output on failure, got %q", out.String())
	}
}

func TestRunAppendsOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "github_output")
	if err := os.WriteFile(path, []byte("previous=1\n"), 0o600); err != nil {
		t.Fatalf("seed output file: %v", err)
	}

	cfg := baseTestConfig()
	cfg.Format = render.FormatJSON
	cfg.OutputFile = path

	src := inputs.NewMapSource(cfg.Inputs)
	src.Set("csproj_depth", "abc")

	var out bytes.Buffer
	if err := New(cfg, zaptest.NewLogger(t), WithSource(src)).Run(&out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	written := string(data)
	if !strings.HasPrefix(written, "previous=1\nhome_directory=/home/node\n") {
		t.Fatalf("expected appended outputs, got:\n%s", written)
	}
	if !strings.Contains(written, "csproj_depth=NaN\n") {
		t.Fatalf("expected NaN depth, got:\n%s", written)
	}
	if !strings.Contains(out.String(), `"runPublish": true`) {
		t.Fatalf("expected JSON on stdout, got:\n%s", out.String())
	}
}

func TestRunOutputFileError(t *testing.T) {
	cfg := baseTestConfig()
	cfg.OutputFile = filepath.Join(t.TempDir(), "missing-dir", "out")

	if err := New(cfg, zaptest.NewLogger(t)).Run(&bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for unwritable output file")
	}
}
