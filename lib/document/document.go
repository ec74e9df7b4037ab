// Package document describes page content as YAML and builds it into
// blocks.
//
// A document is a list of blocks, each with a type and the settings the
// block supports:
//
//	title: About
//	blocks:
//	  - type: heading
//	    content: About us
//	    level: 1
//	    auto_anchor: true
//	  - type: group
//	    layout: {type: flex, wrap: true, justify_content: center}
//	    color: {background: base}
//	    children:
//	      - type: paragraph
//	        content: Hello <strong>world</strong>
//	        drop_cap: true
//	  - type: separator
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	validator "github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Core block types.
const (
	TypeParagraph = "paragraph"
	TypeHeading   = "heading"
	TypeGroup     = "group"
	TypeRow       = "row"
	TypeSeparator = "separator"
)

// Sentinel errors for document handling.
var (
	ErrInvalidDocument = errors.New("document: invalid document")
	ErrBuildFailed     = errors.New("document: build failed")
)

// Document is a page of top-level blocks.
type Document struct {
	Title  string  `yaml:"title"`
	Blocks []Block `yaml:"blocks" validate:"required,min=1,dive"`

	// Registry resolves block types. Nil means the registry Register adds
	// to.
	Registry *Registry `yaml:"-" validate:"-"`
}

// Block describes one block and its children.
type Block struct {
	Type    string `yaml:"type" validate:"required,block_type"`
	Content string `yaml:"content"`

	Level      int    `yaml:"level" validate:"omitempty,min=1,max=6"`
	Anchor     string `yaml:"anchor"`
	AutoAnchor bool   `yaml:"auto_anchor"`
	Class      string `yaml:"class"`
	Align      string `yaml:"align" validate:"omitempty,oneof=left center right wide full none"`
	Tag        string `yaml:"tag" validate:"omitempty,oneof=div header main section article aside footer"`
	Sticky     bool   `yaml:"sticky"`
	DropCap    bool   `yaml:"drop_cap"`
	Width      string `yaml:"width"`
	// Opacity toggles the alpha channel opacity of separators. Unset means on.
	Opacity *bool `yaml:"alpha_channel_opacity"`

	Color      *Color      `yaml:"color"`
	Typography *Typography `yaml:"typography"`
	Layout     *Layout     `yaml:"layout"`

	// Attributes are merged into the block attributes last, as is.
	Attributes map[string]any `yaml:"attributes"`
	Children   []Block        `yaml:"children" validate:"dive"`
}

// Color holds preset slugs and custom CSS colors.
type Color struct {
	Text             string `yaml:"text"`
	Background       string `yaml:"background"`
	Link             string `yaml:"link"`
	CustomText       string `yaml:"custom_text"`
	CustomBackground string `yaml:"custom_background"`
	CustomLink       string `yaml:"custom_link"`
}

// Typography holds font settings. FontSize is a preset slug.
type Typography struct {
	FontSize       string `yaml:"font_size"`
	CustomFontSize string `yaml:"custom_font_size"`
	FontStyle      string `yaml:"font_style"`
	FontWeight     string `yaml:"font_weight"`
	LineHeight     string `yaml:"line_height"`
	LetterSpacing  string `yaml:"letter_spacing"`
	TextDecoration string `yaml:"text_decoration"`
	TextTransform  string `yaml:"text_transform"`
}

// Layout configures groups and rows. Rows are always flex.
type Layout struct {
	Type           string `yaml:"type" validate:"omitempty,oneof=default flex flow constrained"`
	Orientation    string `yaml:"orientation" validate:"omitempty,oneof=horizontal vertical"`
	Wrap           *bool  `yaml:"wrap"`
	JustifyContent string `yaml:"justify_content" validate:"omitempty,oneof=left center right space-between stretch"`
	ContentSize    string `yaml:"content_size"`
	WideSize       string `yaml:"wide_size"`
}

// Parse decodes and validates a document. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	return parse(data, nil)
}

// Parse is the package Parse with block types resolved by reg.
func (reg *Registry) Parse(data []byte) (*Document, error) {
	return parse(data, reg)
}

func parse(data []byte, reg *Registry) (*Document, error) {
	// Only fields we defined are allowed, so yaml.Unmarshal is not enough.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	doc := &Document{Registry: reg}
	if err := dec.Decode(doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Load reads a document from r.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read document: %w", err)
	}
	return Parse(data)
}

// LoadFile reads a document from the file at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read document: %w", err)
	}
	return Parse(data)
}

// Validate checks field values and which settings each block type accepts.
func (d *Document) Validate() error {
	reg := d.registry()
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("block_type", func(fl validator.FieldLevel) bool {
		_, ok := reg.Lookup(fl.Field().String())
		return ok
	}); err != nil {
		return err
	}
	v.RegisterStructValidation(validateBlock, Block{})
	if err := v.Struct(d); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return nil
}

// isCoreType reports whether t is one of the built-in block types.
func isCoreType(t string) bool {
	switch t {
	case TypeParagraph, TypeHeading, TypeGroup, TypeRow, TypeSeparator:
		return true
	}
	return false
}

// validateBlock rejects settings a core block type does not support.
// Registered types interpret their own settings in their builders.
func validateBlock(sl validator.StructLevel) {
	b := sl.Current().Interface().(Block)
	if !isCoreType(b.Type) {
		return
	}

	if len(b.Children) > 0 && (b.Type == TypeParagraph || b.Type == TypeHeading || b.Type == TypeSeparator) {
		sl.ReportError(b.Children, "Children", "children", "children_unsupported", b.Type)
	}
	if b.Level != 0 && b.Type != TypeHeading {
		sl.ReportError(b.Level, "Level", "level", "heading_only", b.Type)
	}
	if b.AutoAnchor && b.Type != TypeHeading {
		sl.ReportError(b.AutoAnchor, "AutoAnchor", "auto_anchor", "heading_only", b.Type)
	}
	if b.DropCap && b.Type != TypeParagraph && b.Type != TypeGroup && b.Type != TypeRow {
		sl.ReportError(b.DropCap, "DropCap", "drop_cap", "drop_cap_unsupported", b.Type)
	}
	if b.Width != "" && b.Type != TypeParagraph && b.Type != TypeHeading {
		sl.ReportError(b.Width, "Width", "width", "flex_child_only", b.Type)
	}
	if b.Opacity != nil && b.Type != TypeSeparator {
		sl.ReportError(b.Opacity, "Opacity", "alpha_channel_opacity", "separator_only", b.Type)
	}
	if b.Layout != nil && b.Type != TypeGroup && b.Type != TypeRow {
		sl.ReportError(b.Layout, "Layout", "layout", "group_only", b.Type)
	}
	if b.Layout != nil && b.Type == TypeRow && b.Layout.Type != "" && b.Layout.Type != "flex" {
		sl.ReportError(b.Layout.Type, "Layout.Type", "type", "row_is_flex", b.Layout.Type)
	}
	if b.Tag != "" && b.Type != TypeGroup && b.Type != TypeRow {
		sl.ReportError(b.Tag, "Tag", "tag", "group_only", b.Type)
	}
	if b.Sticky && b.Type != TypeGroup {
		sl.ReportError(b.Sticky, "Sticky", "sticky", "group_only", b.Type)
	}
	if b.Align != "" && b.Type != TypeGroup && b.Type != TypeSeparator {
		sl.ReportError(b.Align, "Align", "align", "align_unsupported", b.Type)
	}
	if b.Content != "" && b.Type != TypeParagraph && b.Type != TypeHeading {
		sl.ReportError(b.Content, "Content", "content", "content_unsupported", b.Type)
	}
	if l := b.Layout; l != nil && b.Type == TypeRow && (l.ContentSize != "" || l.WideSize != "") {
		sl.ReportError(l, "Layout", "layout", "row_is_flex", b.Type)
	}
	if b.Type == TypeSeparator {
		if b.Anchor != "" {
			sl.ReportError(b.Anchor, "Anchor", "anchor", "anchor_unsupported", b.Type)
		}
		if b.Typography != nil {
			sl.ReportError(b.Typography, "Typography", "typography", "typography_unsupported", b.Type)
		}
	}
	if c := b.Color; c != nil {
		if (c.Text != "" || c.CustomText != "") && b.Type == TypeSeparator {
			sl.ReportError(c, "Color", "color", "text_color_unsupported", b.Type)
		}
		if (c.Link != "" || c.CustomLink != "") && (b.Type == TypeSeparator || b.Type == TypeHeading) {
			sl.ReportError(c, "Color", "color", "link_color_unsupported", b.Type)
		}
	}
}
