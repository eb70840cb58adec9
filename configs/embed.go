// Package configs provides the embedded configuration template for maamarim.
//
// The template is embedded at build time so `maamarim config init` works
// from any distribution. Edit project-config.example.yaml and rebuild to
// change it.
package configs

import _ "embed"

// ProjectConfigTemplate is written by `maamarim config init`, either to
// .maamarim.yaml in the working directory or, with --user, to the user
// config path. It documents every setting with its default value.
//
//go:embed project-config.example.yaml
var ProjectConfigTemplate string
