// Package schema builds form mounts from OpenAPI component schemas.
package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formwidget/pkg/page"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

// Extensions read from schema properties.
const (
	ExtensionOrder = "x-formwidget-order"
	ExtensionLabel = "x-formwidget-label"
)

var (
	// ErrSchemaNotFound is returned when the document has no component schema
	// with the requested name.
	ErrSchemaNotFound = errors.New("schema: component schema not found")
	// ErrNoFields is returned when a schema has no string properties.
	ErrNoFields = errors.New("schema: schema has no string properties")
)

// MountFromOpenAPI builds a mount configuration from the component schema
// schemaName. String properties become fields, email formatted ones become
// email fields, and any other property type is skipped. Fields are ordered by
// x-formwidget-order, then by position in required, then by name. base
// supplies the containers and locale; its Fields are replaced.
func MountFromOpenAPI(ctx context.Context, data []byte, schemaName string, base page.MountConfig) (page.MountConfig, error) {
	doc, err := load(ctx, data)
	if err != nil {
		return page.MountConfig{}, err
	}

	var ref *openapi3.SchemaRef
	ok := false
	if doc.Components != nil {
		ref, ok = doc.Components.Schemas[schemaName]
	}
	if !ok || ref == nil || ref.Value == nil {
		return page.MountConfig{}, fmt.Errorf("%w: %q", ErrSchemaNotFound, schemaName)
	}
	s := ref.Value

	required := make(map[string]int, len(s.Required))
	for idx, name := range s.Required {
		required[name] = idx
	}

	type candidate struct {
		name     string
		field    page.FieldConfig
		order    float64
		hasOrder bool
		reqIdx   int
	}

	var candidates []candidate
	for name, prop := range s.Properties {
		if prop == nil || prop.Value == nil || !isString(prop.Value.Type) {
			continue
		}
		c := candidate{
			name:   name,
			field:  page.FieldConfig{Label: name, Kind: widget.KindPlain.String()},
			reqIdx: math.MaxInt,
		}
		if strings.EqualFold(prop.Value.Format, "email") {
			c.field.Kind = widget.KindEmail.String()
		}
		if label, ok := prop.Value.Extensions[ExtensionLabel].(string); ok && strings.TrimSpace(label) != "" {
			c.field.Label = strings.TrimSpace(label)
		}
		c.order, c.hasOrder = number(prop.Value.Extensions[ExtensionOrder])
		if idx, ok := required[name]; ok {
			c.reqIdx = idx
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return page.MountConfig{}, fmt.Errorf("%w: %q", ErrNoFields, schemaName)
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.hasOrder != b.hasOrder {
			return a.hasOrder
		}
		if a.hasOrder && a.order != b.order {
			return a.order < b.order
		}
		if a.reqIdx != b.reqIdx {
			return a.reqIdx < b.reqIdx
		}
		return a.name < b.name
	})

	mount := base
	if strings.TrimSpace(mount.Name) == "" {
		mount.Name = schemaName
	}
	mount.Fields = make([]page.FieldConfig, len(candidates))
	for i, c := range candidates {
		mount.Fields[i] = c.field
	}
	return mount, nil
}

// MountFromDocument is MountFromOpenAPI for a loaded Document.
func MountFromDocument(ctx context.Context, doc Document, schemaName string, base page.MountConfig) (page.MountConfig, error) {
	mount, err := MountFromOpenAPI(ctx, doc.raw, schemaName, base)
	if err != nil {
		return page.MountConfig{}, fmt.Errorf("%w (%s)", err, doc.Location())
	}
	return mount, nil
}

// SchemaNames lists the component schemas of an OpenAPI document, sorted.
func SchemaNames(ctx context.Context, data []byte) ([]string, error) {
	doc, err := load(ctx, data)
	if err != nil {
		return nil, err
	}
	if doc.Components == nil {
		return nil, nil
	}
	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func load(ctx context.Context, data []byte) (*openapi3.T, error) {
	if len(data) == 0 {
		return nil, errors.New("schema: openapi document is empty")
	}
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schema: load openapi: %w", err)
	}
	return doc, nil
}

func isString(types *openapi3.Types) bool {
	if types == nil {
		return false
	}
	for _, t := range types.Slice() {
		if t == openapi3.TypeString {
			return true
		}
	}
	return false
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
