package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// ScriptExtensions are the file extensions LoadScript understands.
var ScriptExtensions = []string{".txt", ".yaml", ".yml", ".md"}

// Script is a playlist of labels to morph through, in order.
type Script struct {
	Title  string   `yaml:"title,omitempty"`
	Labels []string `yaml:"labels"`
}

// LoadScript loads a label script.
//
// YAML files (.yaml, .yml) hold a Script document. In Markdown files (.md) every list item is a label and the first
// top-level heading is the title. Any other file is read as one label per line; blank lines and lines starting with #
// are skipped, and surrounding whitespace is trimmed.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script file: %w", err)
	}

	var script Script
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &script); err != nil {
			return nil, fmt.Errorf("parsing script file: %w", err)
		}
	case ".md":
		script = parseMarkdownScript(data)
	default:
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			script.Labels = append(script.Labels, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading script file: %w", err)
		}
	}

	if script.Title == "" {
		script.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if len(script.Labels) == 0 {
		return nil, fmt.Errorf("script %s has no labels", path)
	}

	return &script, nil
}

func parseMarkdownScript(source []byte) Script {
	var script Script
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Heading:
			if n.Level == 1 && script.Title == "" {
				script.Title = strings.TrimSpace(string(n.Text(source)))
			}
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			// Only the item's own first block; nested lists are visited on their own.
			if first := n.FirstChild(); first != nil {
				if label := strings.TrimSpace(string(first.Text(source))); label != "" {
					script.Labels = append(script.Labels, label)
				}
			}
		}
		return ast.WalkContinue, nil
	})

	return script
}
