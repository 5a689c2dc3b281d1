// Package prompts loads and renders prompt templates. Templates are markdown
// files resolved from prompt directories with builtin embedded templates as a
// fallback, rendered with text/template and caller-supplied string arguments.
package prompts

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/ManuelSelch/pi-agent-demo/pkg/logger"
)

// Config holds the inputs for rendering a prompt.
type Config struct {
	Name      string
	Arguments map[string]string
}

// Processor resolves and renders prompt templates.
type Processor struct {
	promptDirs []string
}

// Option configures a Processor.
type Option func(*Processor) error

// WithPromptDirs sets custom prompt directories.
func WithPromptDirs(dirs ...string) Option {
	return func(p *Processor) error {
		if len(dirs) == 0 {
			return errors.New("at least one prompt directory must be specified")
		}
		p.promptDirs = dirs
		return nil
	}
}

// WithDefaultDirs resets to the default prompt directories: repo-local
// first, then user-global.
func WithDefaultDirs() Option {
	return func(p *Processor) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get user home directory")
		}
		p.promptDirs = []string{
			"./.pi/prompts",
			filepath.Join(homeDir, ".pi", "prompts"),
		}
		return nil
	}
}

// NewProcessor creates a prompt processor. Without options the default
// directories are used.
func NewProcessor(opts ...Option) (*Processor, error) {
	p := &Processor{}

	if len(opts) == 0 {
		opts = []Option{WithDefaultDirs()}
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, errors.Wrap(err, "failed to apply prompt processor option")
		}
	}

	return p, nil
}

// findPromptFile locates a prompt in the configured directories, trying the
// bare name and the name with a .md extension.
func (p *Processor) findPromptFile(name string) (string, bool) {
	possibleNames := []string{
		name + ".md",
		name,
	}

	for _, dir := range p.promptDirs {
		for _, candidate := range possibleNames {
			fullPath := filepath.Join(dir, candidate)
			if info, err := os.Stat(fullPath); err == nil && !info.IsDir() {
				return fullPath, true
			}
		}
	}

	return "", false
}

// Load resolves a prompt by name and renders it with the given arguments.
// Directory templates take precedence over builtins of the same name.
func (p *Processor) Load(ctx context.Context, config *Config) (string, error) {
	var content string

	if path, ok := p.findPromptFile(config.Name); ok {
		logger.G(ctx).WithField("path", path).Debug("found prompt file")
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read prompt file '%s'", path)
		}
		content = string(raw)
	} else {
		builtin, ok := builtinPrompt(config.Name)
		if !ok {
			return "", errors.Errorf("prompt '%s' not found in directories %v or builtins", config.Name, p.promptDirs)
		}
		content = builtin
	}

	rendered, err := render(content, config.Arguments)
	if err != nil {
		return "", errors.Wrapf(err, "failed to render prompt '%s'", config.Name)
	}

	return rendered, nil
}

// render executes the template with string argument substitution.
func render(content string, args map[string]string) (string, error) {
	tmpl, err := template.New("prompt").Option("missingkey=zero").Parse(content)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, args); err != nil {
		return "", errors.Wrap(err, "failed to execute template")
	}

	return buf.String(), nil
}

// List returns the names of available prompts, directory templates first,
// then builtins not shadowed by a directory template. Names are sorted.
func (p *Processor) List() ([]string, error) {
	seen := make(map[string]bool)
	var names []string

	for _, dir := range p.promptDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := strings.TrimSuffix(entry.Name(), ".md")
			if !seen[name] {
				names = append(names, name)
				seen[name] = true
			}
		}
	}

	for _, name := range builtinPromptNames() {
		if !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}

	sort.Strings(names)
	return names, nil
}
