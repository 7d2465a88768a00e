// Package data loads YAML entity templates and instantiates them into a
// world. Templates are the data-driven face of the component set: each
// section of a template file maps onto one component.
package data

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Template describes one spawnable entity kind. Every section is optional;
// only the sections present become components on the spawned entity.
type Template struct {
	Name      string         `yaml:"name"` // defaults to the file name
	Position  *PositionSpec  `yaml:"position"`
	Velocity  *VelocitySpec  `yaml:"velocity"`
	Sprite    *SpriteSpec    `yaml:"sprite"`
	Animation *AnimationSpec `yaml:"animation"`
	Lifetime  *float32       `yaml:"lifetime"` // seconds
}

// PositionSpec is the template form of components.Position.
type PositionSpec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// VelocitySpec is the template form of components.Velocity.
type VelocitySpec struct {
	DX float32 `yaml:"dx"`
	DY float32 `yaml:"dy"`
}

// SpriteSpec is the template form of components.Sprite.
type SpriteSpec struct {
	Image string `yaml:"image"`
	Frame string `yaml:"frame"`
	Layer int    `yaml:"layer"`
}

// AnimationSpec is the template form of components.Animation.
type AnimationSpec struct {
	Sequence string `yaml:"sequence"`
	Loop     bool   `yaml:"loop"`
}

// TemplateManager holds every loaded template, keyed by name.
type TemplateManager struct {
	templates map[string]*Template
	log       *zap.Logger
}

// NewTemplateManager creates an empty manager. A nil logger disables
// diagnostics.
func NewTemplateManager(log *zap.Logger) *TemplateManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &TemplateManager{
		templates: make(map[string]*Template, 16),
		log:       log,
	}
}

// LoadDir loads every .yaml file in a directory as one template each. A
// template whose name collides with an already-loaded one replaces it.
func (m *TemplateManager) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, "read template directory %s", dir)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := m.LoadFile(path); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile loads a single template file.
func (m *TemplateManager) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read template %s", path)
	}
	var tpl Template
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return errors.Wrapf(err, "parse template %s", path)
	}
	if tpl.Name == "" {
		base := filepath.Base(path)
		tpl.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if _, exists := m.templates[tpl.Name]; exists {
		m.log.Warn("template replaced", zap.String("template", tpl.Name))
	}
	m.templates[tpl.Name] = &tpl
	m.log.Debug("template loaded", zap.String("template", tpl.Name), zap.String("file", path))
	return nil
}

// Get returns the named template.
func (m *TemplateManager) Get(name string) (*Template, bool) {
	tpl, ok := m.templates[name]
	return tpl, ok
}

// Len returns the number of loaded templates.
func (m *TemplateManager) Len() int {
	return len(m.templates)
}
