package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

const projectFile = "mash.yaml"

type mashProject struct {
	Package string `yaml:"Package"`
	Entry   string `yaml:"Entry,omitempty"`
	Source  string `yaml:"Source,omitempty"`
	Strict  bool   `yaml:"Strict,omitempty"`
}

// loadProject reads mash.yaml from dir. A missing file is not an error and
// yields an empty project rooted at dir.
func loadProject(dir string) (mashProject, error) {
	data, err := os.ReadFile(filepath.Join(dir, projectFile))
	if os.IsNotExist(err) {
		return mashProject{}, nil
	}
	if err != nil {
		return mashProject{}, fmt.Errorf("error reading %s: %w", projectFile, err)
	}

	var doc mashProject
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return mashProject{}, fmt.Errorf("error reading %s: %w", projectFile, err)
	}
	return doc, nil
}

func (p mashProject) write(dir string) error {
	out, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", projectFile, err)
	}
	if err := os.WriteFile(filepath.Join(dir, projectFile), out, 0o644); err != nil {
		return fmt.Errorf("error creating %s: %w", projectFile, err)
	}
	return nil
}

// entry resolves the script to work on: an explicit argument wins, then the
// project's Entry relative to its Source directory.
func (p mashProject) entry(dir, arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if p.Entry == "" {
		return "", fmt.Errorf("no file given and %s names no Entry", projectFile)
	}
	return filepath.Join(dir, p.sourceDir(), p.Entry), nil
}

func (p mashProject) sourceDir() string {
	if p.Source == "" {
		return "."
	}
	return p.Source
}
