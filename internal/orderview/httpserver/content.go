package httpserver

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// exampleConfig is the YAML shape of the example-chip file.
type exampleConfig struct {
	Examples []string `yaml:"examples"`
}

// loadExamples reads example order ids from path, falling back to the
// embedded defaults when no path is given.
func loadExamples(path string) ([]string, error) {
	var (
		data []byte
		err  error
	)
	if strings.TrimSpace(path) != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("httpserver: read examples file: %w", err)
		}
	} else {
		data, err = contentFS.ReadFile("content/examples.yaml")
		if err != nil {
			return nil, fmt.Errorf("httpserver: read embedded examples: %w", err)
		}
	}

	var cfg exampleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("httpserver: parse examples file: %w", err)
	}

	out := make([]string, 0, len(cfg.Examples))
	for _, id := range cfg.Examples {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out, nil
}

// renderAbout converts the embedded about page markdown into sanitized
// HTML once at startup.
func renderAbout() (template.HTML, error) {
	src, err := contentFS.ReadFile("content/about.md")
	if err != nil {
		return "", fmt.Errorf("httpserver: read about content: %w", err)
	}

	var buf bytes.Buffer
	if err := goldmark.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("httpserver: render about content: %w", err)
	}

	clean := bluemonday.UGCPolicy().SanitizeBytes(buf.Bytes())
	return template.HTML(clean), nil
}
