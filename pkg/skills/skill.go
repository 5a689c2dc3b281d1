// Package skills loads skill documents: directories containing a SKILL.md
// file whose YAML frontmatter names and describes a capability the agent can
// invoke. Skill bodies are natural-language instructions consumed by the
// model, not executable logic.
package skills

// Skill represents a discovered skill document.
type Skill struct {
	Name        string // Unique name from frontmatter
	Description string // Brief description for model decision-making
	Directory   string // Full path to the skill directory
	Content     string // SKILL.md body with frontmatter stripped
}

// Metadata is the YAML frontmatter of a SKILL.md file.
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}
