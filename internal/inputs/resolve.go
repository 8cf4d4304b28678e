package inputs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Resolve reads every recognised key from src and assembles the typed record.
// An empty value is treated the same as an absent one for every kind. The only
// failure is a required boolean that is absent or not true/false, reported as a
// *MissingRequiredInputError for the first such key in table order.
func Resolve(src Source) (Inputs, error) {
	r := &resolver{src: src}

	in := Inputs{
		HomeDirectory:     r.str("home_directory"),
		DotnetRoot:        r.str("dotnet_root"),
		UseGlobalDotnetEf: r.boolean("use_global_dotnet_ef"),

		RunMigrations:              r.boolean("run_migrations"),
		MigrationsFolder:           r.str("migrations_folder"),
		MigrationsEnvName:          r.str("migrations_env_name"),
		OnFailedRollbackMigrations: r.boolean("on_failed_rollback_migrations"),

		RunTests:                       r.boolean("run_tests"),
		TestsEnvName:                   r.str("tests_env_name"),
		RunTestsMigrations:             r.boolean("run_tests_migrations"),
		TestMigrationsFolder:           r.str("test_migrations_folder"),
		TestFolder:                     r.str("test_folder"),
		UploadTestsResults:             r.boolean("upload_tests_results"),
		TestOutputFolder:               r.str("test_output_folder"),
		TestFormat:                     r.str("test_format"),
		RollbackMigrationsOnTestFailed: r.boolean("rollback_migrations_on_test_failed"),

		Version:             r.str("version"),
		RunVersioning:       r.boolean("run_versioning"),
		CsprojDepth:         r.integer("csproj_depth"),
		CsprojName:          r.str("csproj_name"),
		UseCommitMessage:    r.boolean("use_commit_message"),
		CommitUser:          r.str("commit_user"),
		CommitEmail:         r.str("commit_email"),
		CommitMessagePrefix: r.str("commit_message_prefix"),

		RunPushToRegistry:  r.boolean("run_push_to_registry"),
		DockerComposeFiles: r.str("docker_compose_files"),
		Images:             r.str("images"),
		Dockerfiles:        r.str("dockerfiles"),
		DockerfileImages:   r.str("dockerfile_images"),
		DockerfileContexts: r.str("dockerfile_contexts"),
		RegistryType:       r.str("registry_type"),
		PushWithVersion:    r.boolean("push_with_version"),
		PushWithLatest:     r.boolean("push_with_latest"),
		RunDockerBuild:     r.boolean("run_docker_build"),
		RunDockerPush:      r.boolean("run_docker_push"),

		RunRelease: r.boolean("run_release"),

		RunChangelog:   r.boolean("run_changelog"),
		MajorKeywords:  r.str("major_keywords"),
		MinorKeywords:  r.str("minor_keywords"),
		PatchKeywords:  r.str("patch_keywords"),
		HotfixKeywords: r.str("hotfix_keywords"),
		AddedKeywords:  r.str("added_keywords"),
		DevKeywords:    r.str("dev_keywords"),

		IncludeGhcrPackage:    r.boolean("include_ghcr_package"),
		IncludeDotnetBinaries: r.required("include_dotnet_binaries"),
		RunPublish:            r.required("run_publish"),
		PublishLinux:          r.required("publish_linux"),
		PublishWindows:        r.required("publish_windows"),
		PublishMac:            r.required("publish_mac"),
	}

	if r.err != nil {
		return Inputs{}, r.err
	}
	return in, nil
}

type resolver struct {
	src Source
	err error
}

func (r *resolver) lookup(key string) (string, bool) {
	if r.src == nil {
		return "", false
	}
	value, ok := r.src.Lookup(key)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

func (r *resolver) spec(key string, kind Kind) FieldSpec {
	spec, ok := Field(key)
	if !ok || spec.Kind != kind {
		panic(fmt.Sprintf("inputs: no %s field registered for %q", kind, key))
	}
	return spec
}

func (r *resolver) str(key string) string {
	spec := r.spec(key, KindString)
	if value, ok := r.lookup(key); ok {
		return value
	}
	return spec.Default.(string)
}

func (r *resolver) boolean(key string) bool {
	spec := r.spec(key, KindBoolean)
	if value, ok := r.lookup(key); ok {
		return strings.EqualFold(value, "true")
	}
	return spec.Default.(bool)
}

func (r *resolver) integer(key string) Integer {
	spec := r.spec(key, KindInteger)
	if value, ok := r.lookup(key); ok {
		return ParseInteger(value)
	}
	return Integer{Value: spec.Default.(int), Valid: true}
}

func (r *resolver) required(key string) bool {
	r.spec(key, KindBoolean)
	value, ok := r.lookup(key)
	if !ok {
		r.fail(&MissingRequiredInputError{Key: key})
		return false
	}
	switch {
	case strings.EqualFold(value, "true"):
		return true
	case strings.EqualFold(value, "false"):
		return false
	default:
		r.fail(&MissingRequiredInputError{Key: key, Value: value})
		return false
	}
}

func (r *resolver) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// ParseInteger parses the leading base-10 integer of raw. Leading whitespace
// and a single sign are accepted and trailing characters are ignored. A value
// without leading digits is not a number. Prefixes outside the int range are
// clamped to math.MinInt or math.MaxInt.
func ParseInteger(raw string) Integer {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return Integer{}
	}

	// Atoi returns the clamped value alongside ErrRange.
	value, err := strconv.Atoi(s[:end])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Integer{}
	}
	return Integer{Value: value, Valid: true}
}
