package dictionary

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// decodeJSON parses a flat JSON object of name to code strings.
func decodeJSON(data []byte) (*Dictionary, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return New(raw)
}

// decodeCSV parses name,code records. A first record whose second column is
// "code" is treated as a header. Lines starting with # are comments.
func decodeCSV(data []byte) (*Dictionary, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var entries []Entry
	for first := true; ; first = false {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing CSV: %w", err)
		}

		if len(record) < 2 {
			line, _ := r.FieldPos(0)
			return nil, fmt.Errorf("parsing CSV: line %d: expected name,code", line)
		}
		if first && strings.EqualFold(strings.TrimSpace(record[1]), "code") {
			continue
		}
		entries = append(entries, Entry{Name: record[0], Code: record[1]})
	}

	return FromEntries(entries)
}

// decodeProto parses a serialized google.protobuf.Struct whose fields all
// hold string values.
func decodeProto(data []byte) (*Dictionary, error) {
	var st structpb.Struct
	if err := proto.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing protobuf: %w", err)
	}

	raw := make(map[string]string, len(st.GetFields()))
	for name, v := range st.GetFields() {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("parsing protobuf: %w: non-string value for %q", ErrInvalidCode, name)
		}
		raw[name] = s.StringValue
	}
	return New(raw)
}

// WriteJSON writes d as an indented JSON object with sorted keys.
func WriteJSON(w io.Writer, d *Dictionary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d.Map()); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}

// WriteCSV writes d as name,code records with a header row.
func WriteCSV(w io.Writer, d *Dictionary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "code"}); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	for _, e := range d.Entries() {
		if err := cw.Write([]string{e.Name, e.Code}); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}

// WriteProto writes d as a deterministic serialized google.protobuf.Struct.
func WriteProto(w io.Writer, d *Dictionary) error {
	fields := make(map[string]*structpb.Value, d.Len())
	for _, e := range d.Entries() {
		fields[e.Name] = structpb.NewStringValue(e.Code)
	}

	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(&structpb.Struct{Fields: fields})
	if err != nil {
		return fmt.Errorf("encoding protobuf: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing protobuf: %w", err)
	}
	return nil
}
