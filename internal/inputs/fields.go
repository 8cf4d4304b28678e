package inputs

// Kind is the semantic type an input is coerced to.
type Kind int

const (
	KindString Kind = iota
	KindBoolean
	KindInteger
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	default:
		return "unknown"
	}
}

// Groups used to organise the field table. They carry no behaviour.
const (
	GroupGeneral    = "general"
	GroupMigrations = "migrations"
	GroupTests      = "tests"
	GroupVersioning = "versioning"
	GroupDocker     = "docker"
	GroupRelease    = "release"
	GroupChangelog  = "changelog"
	GroupAdditional = "additional"
)

// FieldSpec describes how a single input key is resolved.
// Default holds a string, bool or int matching Kind and is nil for required fields.
type FieldSpec struct {
	Key      string
	Group    string
	Kind     Kind
	Default  any
	Required bool
}

var fieldTable = []FieldSpec{
	{Key: "home_directory", Group: GroupGeneral, Kind: KindString, Default: "/home/node"},
	{Key: "dotnet_root", Group: GroupGeneral, Kind: KindString, Default: "/usr/bin/dotnet"},
	{Key: "use_global_dotnet_ef", Group: GroupGeneral, Kind: KindBoolean, Default: false},

	{Key: "run_migrations", Group: GroupMigrations, Kind: KindBoolean, Default: false},
	{Key: "migrations_folder", Group: GroupMigrations, Kind: KindString, Default: ""},
	{Key: "migrations_env_name", Group: GroupMigrations, Kind: KindString, Default: "Development"},
	{Key: "on_failed_rollback_migrations", Group: GroupMigrations, Kind: KindBoolean, Default: false},

	{Key: "run_tests", Group: GroupTests, Kind: KindBoolean, Default: false},
	{Key: "tests_env_name", Group: GroupTests, Kind: KindString, Default: "Test"},
	{Key: "run_tests_migrations", Group: GroupTests, Kind: KindBoolean, Default: true},
	{Key: "test_migrations_folder", Group: GroupTests, Kind: KindString, Default: ""},
	{Key: "test_folder", Group: GroupTests, Kind: KindString, Default: ""},
	{Key: "upload_tests_results", Group: GroupTests, Kind: KindBoolean, Default: false},
	{Key: "test_output_folder", Group: GroupTests, Kind: KindString, Default: "TestResults"},
	{Key: "test_format", Group: GroupTests, Kind: KindString, Default: "html"},
	{Key: "rollback_migrations_on_test_failed", Group: GroupTests, Kind: KindBoolean, Default: false},

	{Key: "version", Group: GroupVersioning, Kind: KindString, Default: "0.0.0"},
	{Key: "run_versioning", Group: GroupVersioning, Kind: KindBoolean, Default: false},
	{Key: "csproj_depth", Group: GroupVersioning, Kind: KindInteger, Default: 1},
	{Key: "csproj_name", Group: GroupVersioning, Kind: KindString, Default: "*.csproj"},
	{Key: "use_commit_message", Group: GroupVersioning, Kind: KindBoolean, Default: false},
	{Key: "commit_user", Group: GroupVersioning, Kind: KindString, Default: "github-actions"},
	{Key: "commit_email", Group: GroupVersioning, Kind: KindString, Default: "github-actions@users.noreply.github.com"},
	{Key: "commit_message_prefix", Group: GroupVersioning, Kind: KindString, Default: "New Version: bump version to "},

	{Key: "run_push_to_registry", Group: GroupDocker, Kind: KindBoolean, Default: false},
	{Key: "docker_compose_files", Group: GroupDocker, Kind: KindString, Default: ""},
	{Key: "images", Group: GroupDocker, Kind: KindString, Default: ""},
	{Key: "dockerfiles", Group: GroupDocker, Kind: KindString, Default: ""},
	{Key: "dockerfile_images", Group: GroupDocker, Kind: KindString, Default: ""},
	{Key: "dockerfile_contexts", Group: GroupDocker, Kind: KindString, Default: "."},
	{Key: "registry_type", Group: GroupDocker, Kind: KindString, Default: "GHCR"},
	{Key: "push_with_version", Group: GroupDocker, Kind: KindBoolean, Default: true},
	{Key: "push_with_latest", Group: GroupDocker, Kind: KindBoolean, Default: true},
	{Key: "run_docker_build", Group: GroupDocker, Kind: KindBoolean, Default: false},
	{Key: "run_docker_push", Group: GroupDocker, Kind: KindBoolean, Default: false},

	{Key: "run_release", Group: GroupRelease, Kind: KindBoolean, Default: false},

	{Key: "run_changelog", Group: GroupChangelog, Kind: KindBoolean, Default: false},
	{Key: "major_keywords", Group: GroupChangelog, Kind: KindString, Default: "breaking, overhaul"},
	{Key: "minor_keywords", Group: GroupChangelog, Kind: KindString, Default: "feature, enhancement"},
	{Key: "patch_keywords", Group: GroupChangelog, Kind: KindString, Default: "bug-fix, hotfix, patch"},
	{Key: "hotfix_keywords", Group: GroupChangelog, Kind: KindString, Default: "urgent, hotfix"},
	{Key: "added_keywords", Group: GroupChangelog, Kind: KindString, Default: "added, new"},
	{Key: "dev_keywords", Group: GroupChangelog, Kind: KindString, Default: "dev, experiment"},

	{Key: "include_ghcr_package", Group: GroupAdditional, Kind: KindBoolean, Default: false},
	{Key: "include_dotnet_binaries", Group: GroupAdditional, Kind: KindBoolean, Required: true},
	{Key: "run_publish", Group: GroupAdditional, Kind: KindBoolean, Required: true},
	{Key: "publish_linux", Group: GroupAdditional, Kind: KindBoolean, Required: true},
	{Key: "publish_windows", Group: GroupAdditional, Kind: KindBoolean, Required: true},
	{Key: "publish_mac", Group: GroupAdditional, Kind: KindBoolean, Required: true},
}

var fieldIndex = func() map[string]int {
	index := make(map[string]int, len(fieldTable))
	for i, spec := range fieldTable {
		index[spec.Key] = i
	}
	return index
}()

// Fields returns a copy of the field table in record order.
func Fields() []FieldSpec {
	out := make([]FieldSpec, len(fieldTable))
	copy(out, fieldTable)
	return out
}

// Field returns the spec registered for key.
func Field(key string) (FieldSpec, bool) {
	i, ok := fieldIndex[key]
	if !ok {
		return FieldSpec{}, false
	}
	return fieldTable[i], true
}
