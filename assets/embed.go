// Package assets embeds the default word lists so the solver and the
// practice host run without any files configured.
package assets

import "embed"

// Embedded list names.
const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)

//go:embed answers.txt allowed.txt
var FS embed.FS
