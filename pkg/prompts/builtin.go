package prompts

import (
	"embed"
	"io/fs"
	"strings"
)

// Builtin templates ship with the binary so the CLI works without any prompt
// directory configured. Directory templates with the same name shadow them.

//go:embed templates/*.md
var builtinFS embed.FS

const builtinRoot = "templates"

// builtinPrompt returns the raw content of a builtin template by name.
func builtinPrompt(name string) (string, bool) {
	content, err := builtinFS.ReadFile(builtinRoot + "/" + name + ".md")
	if err != nil {
		return "", false
	}
	return string(content), true
}

// builtinPromptNames lists the names of all builtin templates.
func builtinPromptNames() []string {
	entries, err := fs.ReadDir(builtinFS, builtinRoot)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	return names
}
