package page

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml templates/*.tpl
var embedded embed.FS

const defaultConfigPath = "config/forms.yaml"

// Config describes a page and the forms mounted into it.
type Config struct {
	// Title overrides the translated "page.title" heading.
	Title string        `yaml:"title"`
	Forms []MountConfig `yaml:"forms"`
}

// MountConfig describes one form and the two containers it occupies.
type MountConfig struct {
	Name             string        `yaml:"name"`
	Locale           string        `yaml:"locale"`
	FormContainer    string        `yaml:"form_container"`
	DisplayContainer string        `yaml:"display_container"`
	SubmitLabel      string        `yaml:"submit_label,omitempty"`
	IDPrefix         string        `yaml:"id_prefix,omitempty"`
	Fields           []FieldConfig `yaml:"fields"`
}

// FieldConfig declares a field by label and kind ("text" or "email").
type FieldConfig struct {
	Label string `yaml:"label"`
	Kind  string `yaml:"kind,omitempty"`
}

// MountName is the name the mount registers under: Name, or the form
// container id when Name is empty.
func (c MountConfig) MountName() string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	return strings.TrimSpace(c.FormContainer)
}

// Find returns the mount configuration registered under name.
func (c Config) Find(name string) (MountConfig, bool) {
	for _, mount := range c.Forms {
		if mount.MountName() == name {
			return mount, true
		}
	}
	return MountConfig{}, false
}

// LoadConfig decodes a YAML page configuration. Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, errors.New("page: config is empty")
		}
		return Config{}, fmt.Errorf("page: decode config: %w", err)
	}
	if len(cfg.Forms) == 0 {
		return Config{}, errors.New("page: config declares no forms")
	}
	return cfg, nil
}

// DefaultConfig returns the embedded French/English contact page.
func DefaultConfig() Config {
	data, err := embedded.ReadFile(defaultConfigPath)
	if err != nil {
		panic(fmt.Sprintf("page: read embedded config: %v", err))
	}
	cfg, err := LoadConfig(bytes.NewReader(data))
	if err != nil {
		panic(fmt.Sprintf("page: embedded config: %v", err))
	}
	return cfg
}

// TemplatesFS exposes the embedded page shell templates so callers can build
// their own engine around them, for example to add partials.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(fmt.Sprintf("page: templates: %v", err))
	}
	return sub
}
