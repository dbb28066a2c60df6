package gemini

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"

	"github.com/phrazzld/studysmart/internal/generation"
)

//go:embed prompts/*.tmpl
var embeddedPrompts embed.FS

// loadTemplates parses the prompt templates, from dir when set and from the
// embedded copies otherwise. Both contract templates must be present.
func loadTemplates(dir string) (*template.Template, error) {
	var source fs.FS
	pattern := "prompts/*.tmpl"
	if dir != "" {
		source = os.DirFS(dir)
		pattern = "*.tmpl"
	} else {
		source = embeddedPrompts
	}

	tmpl, err := template.New("prompts").Option("missingkey=error").ParseFS(source, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt templates: %v", generation.ErrInvalidConfig, err)
	}

	for _, name := range []string{learningContentTemplate, quizTemplate} {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("%w: prompt template %s not found", generation.ErrInvalidConfig, name)
		}
	}

	return tmpl, nil
}

// renderPrompt executes the named template with data.
func renderPrompt(tmpl *template.Template, name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %s: %w", name, err)
	}

	prompt := buf.String()
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	return prompt, nil
}
