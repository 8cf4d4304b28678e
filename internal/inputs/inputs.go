package inputs

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// Integer is a leniently parsed base-10 input. Valid is false when the raw
// value held no leading digits, which downstream steps must treat as invalid.
type Integer struct {
	Value int
	Valid bool
}

// NaN reports whether the raw value could not be parsed.
func (i Integer) NaN() bool {
	return !i.Valid
}

func (i Integer) String() string {
	if !i.Valid {
		return "NaN"
	}
	return strconv.Itoa(i.Value)
}

// MarshalJSON encodes a not-a-number value as null.
func (i Integer) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(i.Value)
}

// MarshalYAML encodes a not-a-number value as .nan.
func (i Integer) MarshalYAML() (any, error) {
	if !i.Valid {
		return math.NaN(), nil
	}
	return i.Value, nil
}

// Inputs is the resolved configuration handed to the pipeline steps.
// The yaml tag of every field is the input key it was resolved from.
type Inputs struct {
	// General
	HomeDirectory     string `json:"homeDirectory" yaml:"home_directory"`
	DotnetRoot        string `json:"dotnetRoot" yaml:"dotnet_root"`
	UseGlobalDotnetEf bool   `json:"useGlobalDotnetEf" yaml:"use_global_dotnet_ef"`

	// Migrations
	RunMigrations              bool   `json:"runMigrations" yaml:"run_migrations"`
	MigrationsFolder           string `json:"migrationsFolder" yaml:"migrations_folder"`
	MigrationsEnvName          string `json:"envName" yaml:"migrations_env_name"`
	OnFailedRollbackMigrations bool   `json:"onFailedRollbackMigrations" yaml:"on_failed_rollback_migrations"`

	// Tests
	RunTests                       bool   `json:"runTests" yaml:"run_tests"`
	TestsEnvName                   string `json:"testsEnvName" yaml:"tests_env_name"`
	RunTestsMigrations             bool   `json:"runTestsMigrations" yaml:"run_tests_migrations"`
	TestMigrationsFolder           string `json:"testMigrationsFolder" yaml:"test_migrations_folder"`
	TestFolder                     string `json:"testFolder" yaml:"test_folder"`
	UploadTestsResults             bool   `json:"uploadTestsResults" yaml:"upload_tests_results"`
	TestOutputFolder               string `json:"testOutputFolder" yaml:"test_output_folder"`
	TestFormat                     string `json:"testFormat" yaml:"test_format"`
	RollbackMigrationsOnTestFailed bool   `json:"rollbackMigrationsOnTestFailed" yaml:"rollback_migrations_on_test_failed"`

	// Versioning
	Version             string  `json:"version" yaml:"version"`
	RunVersioning       bool    `json:"runVersioning" yaml:"run_versioning"`
	CsprojDepth         Integer `json:"csprojDepth" yaml:"csproj_depth"`
	CsprojName          string  `json:"csprojName" yaml:"csproj_name"`
	UseCommitMessage    bool    `json:"useCommitMessage" yaml:"use_commit_message"`
	CommitUser          string  `json:"commitUser" yaml:"commit_user"`
	CommitEmail         string  `json:"commitEmail" yaml:"commit_email"`
	CommitMessagePrefix string  `json:"commitMessagePrefix" yaml:"commit_message_prefix"`

	// Docker
	RunPushToRegistry  bool   `json:"runPushToRegistry" yaml:"run_push_to_registry"`
	DockerComposeFiles string `json:"dockerComposeFiles" yaml:"docker_compose_files"`
	Images             string `json:"images" yaml:"images"`
	Dockerfiles        string `json:"dockerfiles" yaml:"dockerfiles"`
	DockerfileImages   string `json:"dockerfileImages" yaml:"dockerfile_images"`
	DockerfileContexts string `json:"dockerfileContexts" yaml:"dockerfile_contexts"`
	RegistryType       string `json:"registryType" yaml:"registry_type"`
	PushWithVersion    bool   `json:"pushWithVersion" yaml:"push_with_version"`
	PushWithLatest     bool   `json:"pushWithLatest" yaml:"push_with_latest"`
	RunDockerBuild     bool   `json:"runDockerBuild" yaml:"run_docker_build"`
	RunDockerPush      bool   `json:"runDockerPush" yaml:"run_docker_push"`

	// Release
	RunRelease bool `json:"runRelease" yaml:"run_release"`

	// Changelog
	RunChangelog   bool   `json:"runChangelog" yaml:"run_changelog"`
	MajorKeywords  string `json:"majorKeywords" yaml:"major_keywords"`
	MinorKeywords  string `json:"minorKeywords" yaml:"minor_keywords"`
	PatchKeywords  string `json:"patchKeywords" yaml:"patch_keywords"`
	HotfixKeywords string `json:"hotfixKeywords" yaml:"hotfix_keywords"`
	AddedKeywords  string `json:"addedKeywords" yaml:"added_keywords"`
	DevKeywords    string `json:"devKeywords" yaml:"dev_keywords"`

	// Additional
	IncludeGhcrPackage    bool `json:"includeGhcrPackage" yaml:"include_ghcr_package"`
	IncludeDotnetBinaries bool `json:"includeDotnetBinaries" yaml:"include_dotnet_binaries"`
	RunPublish            bool `json:"runPublish" yaml:"run_publish"`
	PublishLinux          bool `json:"publishLinux" yaml:"publish_linux"`
	PublishWindows        bool `json:"publishWindows" yaml:"publish_windows"`
	PublishMac            bool `json:"publishMac" yaml:"publish_mac"`
}

// Value returns the resolved value stored for an input key.
func (in Inputs) Value(key string) (any, bool) {
	v := reflect.ValueOf(in)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("yaml") == key {
			return v.Field(i).Interface(), true
		}
	}
	return nil, false
}
