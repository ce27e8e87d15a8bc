package cmd

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// templateFile is the on-disk format produced by enroll and consumed by verify.
type templateFile struct {
	Model     string            `yaml:"model"`
	Templates map[string]string `yaml:"templates"` // file name -> encoded embedding
}

// loadTemplateFile reads an enrollment template file.
func loadTemplateFile(path string) (*templateFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template file: %w", err)
	}

	var tf templateFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing template file: %w", err)
	}
	if len(tf.Templates) == 0 {
		return nil, fmt.Errorf("template file %s contains no templates", path)
	}
	return &tf, nil
}

// save writes the template file to disk.
func (tf *templateFile) save(path string) error {
	data, err := yaml.Marshal(tf)
	if err != nil {
		return fmt.Errorf("marshaling templates: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing template file: %w", err)
	}
	return nil
}

// sortedNames returns the template names in deterministic order.
func (tf *templateFile) sortedNames() []string {
	names := make([]string, 0, len(tf.Templates))
	for name := range tf.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// imagePayloadFromFile reads an image file and encodes it for the service.
func imagePayloadFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image file: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// isImageFile reports whether a file name looks like a supported image.
func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp":
		return true
	}
	return false
}
