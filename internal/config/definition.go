package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/groupbox"
	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/model"
)

// ErrUnsupportedFormat is returned for definition files that are neither YAML nor TOML
var ErrUnsupportedFormat = errors.New("unsupported definition format")

// ErrInvalidDefinition is returned when a definition parses but is inconsistent
var ErrInvalidDefinition = errors.New("invalid ribbon definition")

//go:embed default_ribbon.yaml
var defaultDefinition []byte

// Format is a ribbon definition file format
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// String returns the string representation of the format
func (f Format) String() string {
	return string(f)
}

// FormatForPath picks the format from the file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

type definitionFile struct {
	Title            string               `yaml:"title" toml:"title"`
	ContextualGroups []contextualGroupDef `yaml:"contextual_groups,omitempty" toml:"contextual_groups,omitempty"`
	Tabs             []tabDef             `yaml:"tabs" toml:"tabs"`
}

type contextualGroupDef struct {
	Name    string `yaml:"name" toml:"name"`
	Header  string `yaml:"header" toml:"header"`
	Visible bool   `yaml:"visible,omitempty" toml:"visible,omitempty"`
}

type tabDef struct {
	Header      string            `yaml:"header" toml:"header"`
	Contextual  string            `yaml:"contextual,omitempty" toml:"contextual,omitempty"`
	ReduceOrder string            `yaml:"reduce_order,omitempty" toml:"reduce_order,omitempty"`
	Hidden      bool              `yaml:"hidden,omitempty" toml:"hidden,omitempty"`
	Groups      []*model.GroupBox `yaml:"groups" toml:"groups"`
}

// LoadDefinition reads a ribbon definition, choosing the decoder by extension
func LoadDefinition(path string) (*model.Ribbon, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}

	ribbon, err := ParseDefinition(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ribbon, nil
}

// DefaultDefinition returns the built-in ribbon definition
func DefaultDefinition() (*model.Ribbon, error) {
	return ParseDefinition(defaultDefinition, FormatYAML)
}

// ParseDefinition decodes and validates a ribbon definition
func ParseDefinition(data []byte, format Format) (*model.Ribbon, error) {
	var file definitionFile
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &file)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %s", undecoded[0])
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}

	return file.toRibbon()
}

// MarshalDefinition encodes a ribbon back into definition syntax
func MarshalDefinition(r *model.Ribbon, format Format) ([]byte, error) {
	file := fromRibbon(r)
	switch format {
	case FormatYAML:
		return yaml.Marshal(file)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(file); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
}

func (f definitionFile) toRibbon() (*model.Ribbon, error) {
	ribbon := model.NewRibbon(f.Title)

	for _, def := range f.ContextualGroups {
		if def.Name == "" {
			return nil, fmt.Errorf("contextual group without name: %w", ErrInvalidDefinition)
		}
		if _, dup := ribbon.FindContextualGroup(def.Name); dup {
			return nil, fmt.Errorf("duplicate contextual group %s: %w", def.Name, ErrInvalidDefinition)
		}
		header := def.Header
		if header == "" {
			header = def.Name
		}
		group := ribbon.AddContextualGroup(def.Name, header)
		group.Visible = def.Visible
	}

	for i, def := range f.Tabs {
		if strings.TrimSpace(def.Header) == "" {
			return nil, fmt.Errorf("tab %d has no header: %w", i+1, ErrInvalidDefinition)
		}
		if def.Contextual != "" {
			if _, ok := ribbon.FindContextualGroup(def.Contextual); !ok {
				return nil, fmt.Errorf("tab %s: unknown contextual group %s: %w", def.Header, def.Contextual, ErrInvalidDefinition)
			}
		}
		if _, err := groupbox.ParseReduceOrder(def.ReduceOrder); err != nil {
			return nil, fmt.Errorf("tab %s: %w: %w", def.Header, ErrInvalidDefinition, err)
		}
		for _, box := range def.Groups {
			if box == nil || box.Name == "" {
				return nil, fmt.Errorf("tab %s: group box without name: %w", def.Header, ErrInvalidDefinition)
			}
			if box.Header == "" {
				box.Header = box.Name
			}
			for _, c := range box.Controls {
				if c == nil {
					return nil, fmt.Errorf("tab %s, group %s: empty control: %w", def.Header, box.Name, ErrInvalidDefinition)
				}
				if _, err := groupbox.ParseSizeDefinition(c.Size); err != nil {
					return nil, fmt.Errorf("tab %s, group %s: %w: %w", def.Header, box.Name, ErrInvalidDefinition, err)
				}
			}
		}

		tab := model.NewTab(def.Header)
		tab.ContextualGroup = def.Contextual
		tab.ReduceOrder = def.ReduceOrder
		tab.Hidden = def.Hidden
		if def.Groups != nil {
			tab.Groups = def.Groups
		}
		ribbon.AddTab(tab)
	}

	return ribbon, nil
}

func fromRibbon(r *model.Ribbon) definitionFile {
	file := definitionFile{Title: r.Title}
	for _, group := range r.ContextualGroups {
		file.ContextualGroups = append(file.ContextualGroups, contextualGroupDef{
			Name:    group.Name,
			Header:  group.Header,
			Visible: group.Visible,
		})
	}
	for _, tab := range r.Tabs {
		file.Tabs = append(file.Tabs, tabDef{
			Header:      tab.Header,
			Contextual:  tab.ContextualGroup,
			ReduceOrder: tab.ReduceOrder,
			Hidden:      tab.Hidden,
			Groups:      tab.Groups,
		})
	}
	return file
}
