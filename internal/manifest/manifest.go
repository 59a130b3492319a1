// Package manifest reads and writes the project descriptor that supplies
// batch targets. The descriptor is a package.json style document whose
// "bang" field maps file paths to the command each file should run
// under. Entry order is preserved so batches process and report
// deterministically.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// FieldName is the descriptor field holding the path to command mapping.
const FieldName = "bang"

// DefaultFile is the descriptor looked up when no explicit manifest
// location is given.
const DefaultFile = "package.json"

var (
	// ErrNotFound indicates the descriptor file does not exist
	ErrNotFound = errors.New("manifest not found")

	// ErrNoBangField indicates the descriptor lacks the bang field
	ErrNoBangField = errors.New(`manifest has no "bang" field`)
)

// Target pairs a file path with the command it should execute under
type Target struct {
	Path    string
	Command string
}

// field is a top-level descriptor entry, kept raw so unrelated fields
// survive a load/save round trip untouched.
type field struct {
	key string
	raw json.RawMessage
}

// Manifest is a loaded project descriptor
type Manifest struct {
	path    string
	fields  []field
	targets []Target
	hasBang bool
}

// Load reads and parses the descriptor at path. The location is always
// explicit; callers resolve it against their working directory rather
// than relying on ambient process state.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	m := &Manifest{path: path}
	if err := m.parse(data); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return m, nil
}

// parse walks the top-level object with a token decoder instead of
// unmarshaling into a map, so declared key order is kept.
func (m *Manifest) parse(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return fmt.Errorf("expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		if key == FieldName {
			targets, err := parseTargets(raw)
			if err != nil {
				return err
			}
			m.targets = targets
			m.hasBang = true
		}

		m.fields = append(m.fields, field{key: key, raw: raw})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}

// parseTargets decodes the bang object in declared order
func parseTargets(raw json.RawMessage) ([]Target, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("%q field must be an object mapping path to command", FieldName)
	}

	var targets []Target
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		path, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}

		var command string
		if err := dec.Decode(&command); err != nil {
			return nil, fmt.Errorf("%q entry for %s must be a command string", FieldName, path)
		}

		targets = append(targets, Target{Path: path, Command: command})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return targets, nil
}

// Targets returns the declared targets in manifest order. Returns
// ErrNoBangField if the descriptor has no bang field.
func (m *Manifest) Targets() ([]Target, error) {
	if !m.hasBang {
		return nil, fmt.Errorf("%w: %s", ErrNoBangField, m.path)
	}
	return m.targets, nil
}

// Get returns the command declared for path, if any
func (m *Manifest) Get(path string) (string, bool) {
	for _, t := range m.targets {
		if t.Path == path {
			return t.Command, true
		}
	}
	return "", false
}

// Set adds a target, or updates the command of an existing one in place
func (m *Manifest) Set(path, command string) {
	m.hasBang = true
	for i := range m.targets {
		if m.targets[i].Path == path {
			m.targets[i].Command = command
			return
		}
	}
	m.targets = append(m.targets, Target{Path: path, Command: command})
}

// Save writes the descriptor back to disk, preserving unrelated fields
// and their declared order. The bang field is rewritten from the
// current targets; if the descriptor never had one, it is appended.
func (m *Manifest) Save() error {
	bang, err := marshalTargets(m.targets)
	if err != nil {
		return fmt.Errorf("failed to encode manifest %s: %w", m.path, err)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	wroteBang := false
	for i, f := range m.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return fmt.Errorf("failed to encode manifest %s: %w", m.path, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		if f.key == FieldName {
			buf.Write(bang)
			wroteBang = true
		} else {
			buf.Write(f.raw)
		}
	}
	if !wroteBang {
		if len(m.fields) > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(fmt.Sprintf("%q:", FieldName))
		buf.Write(bang)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return fmt.Errorf("failed to encode manifest %s: %w", m.path, err)
	}
	out.WriteByte('\n')

	if err := os.WriteFile(m.path, out.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", m.path, err)
	}

	return nil
}

// marshalTargets encodes targets as a JSON object in target order
func marshalTargets(targets []Target) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, t := range targets {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(t.Path)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(t.Command)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
