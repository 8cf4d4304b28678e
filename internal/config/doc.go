// Package config loads the runtime configuration of the resolver tool from
// multiple sources (YAML files, environment variables, CLI flags) with
// precedence: CLI flags > YAML config > Environment variables > Defaults.
// The YAML file may also carry an inputs section that takes precedence over
// the step inputs exposed through the environment.
package config
