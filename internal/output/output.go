// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package output renders command results as a table, JSON or YAML.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Formats accepted by Render.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Table is a header row plus data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// Tabler is implemented by values that can be shown as a table.
type Tabler interface {
	Table() Table
}

// Table lets a Table be passed to Render directly.
func (t Table) Table() Table { return t }

// Record pairs a daemon record kept verbatim for json and yaml with a table
// view of it.
type Record struct {
	Raw  json.RawMessage
	View Tabler
}

func (r Record) MarshalJSON() ([]byte, error) {
	if len(r.Raw) == 0 {
		return []byte("null"), nil
	}
	return r.Raw, nil
}

func (r Record) Table() Table {
	if r.View == nil {
		return Table{}
	}
	return r.View.Table()
}

// Render writes value to w in format. The table format requires a Tabler.
func Render(w io.Writer, format string, value any) error {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case FormatYAML:
		return renderYAML(w, value)
	case FormatTable, "":
		t, ok := value.(Tabler)
		if !ok {
			return fmt.Errorf("%T cannot be shown as a table", value)
		}
		return renderTable(w, t.Table())
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// renderYAML goes through JSON first so that keys match the daemon's field
// names rather than Go's.
func renderYAML(w io.Writer, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(numbers(generic)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// numbers turns json.Number leaves into int64 or float64 so that sizes are
// not printed in exponent form.
func numbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = numbers(e)
		}
	case []any:
		for i, e := range t {
			t[i] = numbers(e)
		}
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
	}
	return v
}

func renderTable(w io.Writer, t Table) error {
	data := make(pterm.TableData, 0, len(t.Rows)+1)
	hasHeader := len(t.Header) > 0
	if hasHeader {
		data = append(data, t.Header)
	}
	data = append(data, t.Rows...)
	if len(data) == 0 {
		return nil
	}

	s, err := pterm.DefaultTable.WithHasHeader(hasHeader).WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}
