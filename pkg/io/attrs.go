package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/BurntSushi/toml"
)

// Attrs is an attribute mapping that remembers the order its keys were
// written in. The zero value is empty and ready to use.
type Attrs struct {
	keys   []string
	values map[string]any
}

// NewAttrs builds an Attrs from alternating key/value pairs.
func NewAttrs(kv ...any) Attrs {
	var a Attrs
	for i := 0; i+1 < len(kv); i += 2 {
		a.Set(fmt.Sprint(kv[i]), kv[i+1])
	}
	return a
}

// Len returns the number of keys.
func (a Attrs) Len() int { return len(a.keys) }

// IsZero reports whether a holds no keys.
func (a Attrs) IsZero() bool { return len(a.keys) == 0 }

// Keys returns the keys in order.
func (a Attrs) Keys() []string { return slices.Clone(a.keys) }

// Get returns the value stored under key.
func (a Attrs) Get(key string) (any, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Set stores value under key. A new key goes last.
func (a *Attrs) Set(key string, value any) {
	if a.values == nil {
		a.values = make(map[string]any)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// reorder moves the listed keys to the front in the given order. It is a
// no-op unless keys names exactly the keys a holds.
func (a *Attrs) reorder(keys []string) {
	if len(keys) != len(a.keys) {
		return
	}
	for _, k := range keys {
		if _, ok := a.values[k]; !ok {
			return
		}
	}
	a.keys = slices.Clone(keys)
}

// UnmarshalJSON decodes an object, keeping its key order. Numbers decode as
// [json.Number].
func (a *Attrs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*a = Attrs{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("attrs: want an object, got %v", tok)
	}

	var out Attrs
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("attrs.%s: %w", key, err)
		}
		out.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*a = out
	return nil
}

// MarshalJSON encodes a as an object in key order.
func (a Attrs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range a.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(a.values[k])
		if err != nil {
			return nil, fmt.Errorf("attrs.%s: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalTOML receives the decoded table. TOML tables arrive unordered,
// so keys are sorted here; [Read] restores the written order afterwards.
func (a *Attrs) UnmarshalTOML(data any) error {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("attrs: want a table, got %T", data)
	}
	var out Attrs
	for _, k := range slices.Sorted(maps.Keys(m)) {
		out.Set(k, m[k])
	}
	*a = out
	return nil
}

// MarshalTOML encodes a as an inline table in key order.
func (a Attrs) MarshalTOML() ([]byte, error) {
	var buf bytes.Buffer
	if err := a.appendTOML(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a Attrs) appendTOML(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, k := range a.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte(' ')
		buf.WriteString(toml.Key{k}.String())
		buf.WriteString(" = ")
		if err := appendTOMLValue(buf, a.values[k]); err != nil {
			return fmt.Errorf("attrs.%s: %w", k, err)
		}
	}
	if len(a.keys) > 0 {
		buf.WriteByte(' ')
	}
	buf.WriteByte('}')
	return nil
}

// appendTOMLValue writes v in inline form. Nested tables become inline
// tables with sorted keys.
func appendTOMLValue(buf *bytes.Buffer, v any) error {
	switch v := v.(type) {
	case nil:
		return fmt.Errorf("null has no TOML form")
	case Attrs:
		return v.appendTOML(buf)
	case map[string]any:
		var nested Attrs
		for _, k := range slices.Sorted(maps.Keys(v)) {
			nested.Set(k, v[k])
		}
		return nested.appendTOML(buf)
	case []any:
		buf.WriteByte('[')
		for i, e := range v {
			if i > 0 {
				buf.WriteString(", ")
			}
			if err := appendTOMLValue(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	}

	var tmp bytes.Buffer
	if err := toml.NewEncoder(&tmp).Encode(map[string]any{"v": v}); err != nil {
		return err
	}
	buf.Write(bytes.TrimSpace(bytes.TrimPrefix(tmp.Bytes(), []byte("v = "))))
	return nil
}

// restoreTOMLOrder reorders each node's and edge's attributes to match the
// order their keys appear in the TOML source.
func restoreTOMLOrder(doc *Document, md toml.MetaData) {
	var nodeKeys, edgeKeys []string
	for _, key := range md.Keys() {
		if len(key) != 3 || key[1] != "attrs" {
			continue
		}
		switch key[0] {
		case "nodes":
			nodeKeys = append(nodeKeys, key[2])
		case "edges":
			edgeKeys = append(edgeKeys, key[2])
		}
	}

	// Each entry's keys are contiguous and entries appear in document
	// order, so the flat key lists split by entry size.
	for i := range doc.Nodes {
		n := doc.Nodes[i].Attrs.Len()
		if n > len(nodeKeys) {
			break
		}
		doc.Nodes[i].Attrs.reorder(nodeKeys[:n])
		nodeKeys = nodeKeys[n:]
	}
	for i := range doc.Edges {
		n := doc.Edges[i].Attrs.Len()
		if n > len(edgeKeys) {
			break
		}
		doc.Edges[i].Attrs.reorder(edgeKeys[:n])
		edgeKeys = edgeKeys[n:]
	}
}
