// Package rolodex provides embedded runtime resources for the rolodex CLI.
package rolodex

import (
	_ "embed"
)

//go:embed templates/config.example.yaml
var configTemplate []byte

// ConfigTemplate returns a copy of the embedded starter configuration,
// written by `rolodex init`.
func ConfigTemplate() []byte {
	out := make([]byte, len(configTemplate))
	copy(out, configTemplate)
	return out
}
