package inputs

import (
	"slices"
	"sync"
	"testing"
)

func TestMapSourceCopiesInitialValues(t *testing.T) {
	values := map[string]string{"run_tests": "true"}
	src := NewMapSource(values)
	values["run_tests"] = "false"

	if got, ok := src.Lookup("run_tests"); !ok || got != "true" {
		t.Fatalf("expected copied value true, got %q (found %v)", got, ok)
	}
	if _, ok := src.Lookup("RUN_TESTS"); ok {
		t.Fatalf("expected keys to be case-sensitive")
	}
}

func TestMapSourceConcurrentAccess(t *testing.T) {
	src := NewMapSource(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			src.Set("version", "1.2.3")
			_, _ = src.Lookup("version")
		}()
	}
	wg.Wait()

	if keys := src.Keys(); !slices.Equal(keys, []string{"version"}) {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestEnvSource(t *testing.T) {
	env := map[string]string{
		"INPUT_RUN_TESTS":    "  true \n",
		"INPUT_CSPROJ_DEPTH": "2",
		"CUSTOM_VERSION":     "1.0.0",
	}
	lookup := func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}

	src := NewEnvSource("", lookup)
	if got := src.Variable("run_tests"); got != "INPUT_RUN_TESTS" {
		t.Fatalf("unexpected variable %s", got)
	}
	if got := src.Variable("my input"); got != "INPUT_MY_INPUT" {
		t.Fatalf("unexpected variable %s", got)
	}
	if got, ok := src.Lookup("run_tests"); !ok || got != "true" {
		t.Fatalf("expected trimmed true, got %q (found %v)", got, ok)
	}
	if _, ok := src.Lookup("version"); ok {
		t.Fatalf("expected version to be absent under the default prefix")
	}

	custom := NewEnvSource("CUSTOM_", lookup)
	if got, ok := custom.Lookup("version"); !ok || got != "1.0.0" {
		t.Fatalf("expected 1.0.0, got %q (found %v)", got, ok)
	}
}

func TestEnvSourceDefaultsToProcessEnvironment(t *testing.T) {
	t.Setenv("INPUT_REGISTRY_TYPE", "ACR")

	if got, ok := NewEnvSource("", nil).Lookup("registry_type"); !ok || got != "ACR" {
		t.Fatalf("expected ACR, got %q (found %v)", got, ok)
	}
}

func TestLayeredPrecedence(t *testing.T) {
	high := NewMapSource(map[string]string{"version": "", "images": "api"})
	low := NewMapSource(map[string]string{"version": "2.0.0", "images": "worker"})

	src := Layered{nil, high, low}

	if got, ok := src.Lookup("images"); !ok || got != "api" {
		t.Fatalf("expected higher layer to win, got %q", got)
	}
	if got, ok := src.Lookup("version"); !ok || got != "2.0.0" {
		t.Fatalf("expected empty value to fall through, got %q", got)
	}

	high.Set("test_folder", "")
	if got, ok := src.Lookup("test_folder"); !ok || got != "" {
		t.Fatalf("expected present empty value, got %q (found %v)", got, ok)
	}
	if _, ok := src.Lookup("dockerfiles"); ok {
		t.Fatalf("expected dockerfiles to be absent")
	}
}
