package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/groupbox"
)

const yamlDefinition = `
title: Test Ribbon
contextual_groups:
  - name: table
    header: Table Tools
    visible: true
tabs:
  - header: Home
    reduce_order: "(Styles),Font"
    groups:
      - name: Font
        controls:
          - {name: bold, label: Bold, size: "Middle, Small"}
      - name: Styles
        controls:
          - {name: gallery, label: Styles, gallery_items: 3}
  - header: Design
    contextual: table
`

const tomlDefinition = `
title = "Test Ribbon"

[[contextual_groups]]
name = "table"
header = "Table Tools"
visible = true

[[tabs]]
header = "Home"
reduce_order = "(Styles),Font"

  [[tabs.groups]]
  name = "Font"

    [[tabs.groups.controls]]
    name = "bold"
    label = "Bold"
    size = "Middle, Small"

  [[tabs.groups]]
  name = "Styles"

    [[tabs.groups.controls]]
    name = "gallery"
    label = "Styles"
    gallery_items = 3

[[tabs]]
header = "Design"
contextual = "table"
`

func TestParseDefinition(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"yaml", yamlDefinition, FormatYAML},
		{"toml", tomlDefinition, FormatTOML},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ribbon, err := ParseDefinition([]byte(test.data), test.format)
			require.NoError(t, err)

			assert.Equal(t, "Test Ribbon", ribbon.Title)
			require.Len(t, ribbon.Tabs, 2)
			require.Len(t, ribbon.ContextualGroups, 1)

			home := ribbon.Tabs[0]
			assert.NotEmpty(t, home.ID)
			assert.Equal(t, "Home", home.Header)
			assert.Equal(t, "(Styles),Font", home.ReduceOrder)
			require.Len(t, home.Groups, 2)
			assert.Equal(t, "Font", home.Groups[0].Header, "header defaults to the name")
			assert.Equal(t, "Middle, Small", home.Groups[0].Controls[0].Size)
			assert.Equal(t, 3, home.Groups[1].Controls[0].GalleryItems)

			design := ribbon.Tabs[1]
			assert.True(t, design.IsContextual())
			assert.True(t, ribbon.ContextualGroups[0].Visible)
			assert.Len(t, ribbon.VisibleTabs(), 2)
		})
	}
}

func TestParseDefinition_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing header", "tabs:\n  - reduce_order: A\n"},
		{"unknown contextual group", "tabs:\n  - header: Design\n    contextual: table\n"},
		{"bad reduce order", "tabs:\n  - header: Home\n    reduce_order: \"A,,B\"\n"},
		{"bad size", "tabs:\n  - header: Home\n    groups:\n      - name: G\n        controls:\n          - {name: c, size: Huge}\n"},
		{"unnamed group", "tabs:\n  - header: Home\n    groups:\n      - header: G\n"},
		{"duplicate contextual group", "contextual_groups:\n  - name: t\n  - name: t\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseDefinition([]byte(test.data), FormatYAML)
			assert.True(t, errors.Is(err, ErrInvalidDefinition), "got %v", err)
		})
	}
}

func TestParseDefinition_KeepsCause(t *testing.T) {
	_, err := ParseDefinition([]byte("tabs:\n  - header: Home\n    reduce_order: \"A,,B\"\n"), FormatYAML)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
	assert.ErrorIs(t, err, groupbox.ErrEmptyStep)
}

func TestParseDefinition_UnknownKeys(t *testing.T) {
	_, err := ParseDefinition([]byte("title: x\ncolour: red\n"), FormatYAML)
	assert.Error(t, err)

	_, err = ParseDefinition([]byte("title = \"x\"\ncolour = \"red\"\n"), FormatTOML)
	assert.Error(t, err)
}

func TestFormatForPath(t *testing.T) {
	format, err := FormatForPath("ribbon.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, format)

	format, err = FormatForPath("/x/ribbon.toml")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, format)

	_, err = FormatForPath("ribbon.json")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoadDefinition(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "ribbon.yaml")
	tomlPath := filepath.Join(dir, "ribbon.toml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlDefinition), 0644))
	require.NoError(t, os.WriteFile(tomlPath, []byte(tomlDefinition), 0644))

	fromYAML, err := LoadDefinition(yamlPath)
	require.NoError(t, err)
	fromTOML, err := LoadDefinition(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, len(fromYAML.Tabs), len(fromTOML.Tabs))

	_, err = LoadDefinition(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultDefinition(t *testing.T) {
	ribbon, err := DefaultDefinition()
	require.NoError(t, err)

	home, ok := ribbon.FindTabByHeader("Home")
	require.True(t, ok)
	assert.NotEmpty(t, home.ReduceOrder)
	assert.Len(t, ribbon.ContextualGroups, 2)

	for _, tab := range ribbon.VisibleTabs() {
		assert.False(t, tab.IsContextual(), "contextual groups start hidden")
	}
}

func TestMarshalDefinition(t *testing.T) {
	ribbon, err := ParseDefinition([]byte(yamlDefinition), FormatYAML)
	require.NoError(t, err)

	for _, format := range []Format{FormatYAML, FormatTOML} {
		data, err := MarshalDefinition(ribbon, format)
		require.NoError(t, err, format)

		again, err := ParseDefinition(data, format)
		require.NoError(t, err, format)
		assert.Equal(t, ribbon.Title, again.Title)
		require.Len(t, again.Tabs, len(ribbon.Tabs))
		assert.Equal(t, ribbon.Tabs[0].ReduceOrder, again.Tabs[0].ReduceOrder)
		assert.Equal(t, ribbon.Tabs[1].ContextualGroup, again.Tabs[1].ContextualGroup)
	}

	_, err = MarshalDefinition(ribbon, Format("json"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}
