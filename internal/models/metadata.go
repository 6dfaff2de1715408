package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Recognized Metadata keys. Other keys are stored as-is.
const (
	MetaQuality      = "quality"
	MetaProtection   = "protection"
	MetaDuration     = "duration"
	MetaKey          = "key"
	MetaSource       = "source"
	MetaLoginMethod  = "loginMethod"
	MetaSuccess      = "success"
	MetaProjectTitle = "projectTitle"
	MetaAiArtist     = "aiArtist"
)

// Metadata is the string-valued key/value map stored in jsonb metadata columns.
type Metadata map[string]string

func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	c := make(Metadata, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(map[string]string(m))
	if err != nil {
		return nil, fmt.Errorf("metadata value: %w", err)
	}
	return b, nil
}

// Scan accepts any jsonb object. Non-string values are kept as their JSON text
// (true, 12.5, {"a":1}) and null becomes the empty string.
func (m *Metadata) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*m = Metadata{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("metadata scan: unsupported type %T", value)
	}
	out := Metadata{}
	if len(raw) > 0 {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return fmt.Errorf("metadata scan: %w", err)
		}
		for k, v := range fields {
			s, err := metadataText(v)
			if err != nil {
				return fmt.Errorf("metadata scan %q: %w", k, err)
			}
			out[k] = s
		}
	}
	*m = out
	return nil
}

func metadataText(v json.RawMessage) (string, error) {
	switch {
	case bytes.Equal(v, []byte("null")):
		return "", nil
	case len(v) > 0 && v[0] == '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// JSONB is a thin helper for storing arbitrary JSON documents.
type JSONB []byte

func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return []byte("{}"), nil
	}
	return []byte(j), nil
}

func (j *JSONB) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = JSONB("{}")
	case []byte:
		*j = append(JSONB(nil), v...)
	case string:
		*j = JSONB(v)
	default:
		return fmt.Errorf("jsonb scan: unsupported type %T", value)
	}
	return nil
}

func (j JSONB) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("{}"), nil
	}
	return j, nil
}

func (j *JSONB) UnmarshalJSON(data []byte) error {
	*j = append((*j)[0:0], data...)
	return nil
}
