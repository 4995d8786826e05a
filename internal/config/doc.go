// Package config defines the run configuration of a load-test session.
//
// Values are layered: an optional YAML file is read first, environment
// variables override it, and the CLI applies its flags last. [Config.Validate]
// is called once the layers are merged.
package config
