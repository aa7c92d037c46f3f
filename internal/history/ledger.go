package history

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Record is one relocated file.
type Record struct {
	Original    string
	Destination string
}

// Ledger is the ordered original→destination mapping for one run. Keys are
// unique; a file moves at most once per run.
type Ledger struct {
	records []Record
	index   map[string]int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{index: make(map[string]int)}
}

// Add appends a move. Recording the same original twice is an error.
func (l *Ledger) Add(original, destination string) error {
	if l.index == nil {
		l.index = make(map[string]int)
	}
	if _, dup := l.index[original]; dup {
		return fmt.Errorf("ledger already records %q", original)
	}
	l.index[original] = len(l.records)
	l.records = append(l.records, Record{Original: original, Destination: destination})
	return nil
}

// Records returns the moves in the order they happened.
func (l *Ledger) Records() []Record {
	if l == nil {
		return nil
	}
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len is the number of recorded moves.
func (l *Ledger) Len() int {
	if l == nil {
		return 0
	}
	return len(l.records)
}

// Destination returns where original was moved to.
func (l *Ledger) Destination(original string) (string, bool) {
	if l == nil {
		return "", false
	}
	i, ok := l.index[original]
	if !ok {
		return "", false
	}
	return l.records[i].Destination, true
}

// MarshalJSON writes the ledger as a single object, keys in move order, four
// space indent, non-ASCII and HTML characters written literally.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	if l.Len() == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, rec := range l.records {
		key, err := encodeString(rec.Original)
		if err != nil {
			return nil, err
		}
		value, err := encodeString(rec.Destination)
		if err != nil {
			return nil, err
		}
		buf.WriteString("    ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		if i < len(l.records)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts exactly one object of string values and keeps the
// order in which keys appear.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("ledger must be a JSON object")
	}

	parsed := NewLedger()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected ledger key %v", keyTok)
		}
		valueTok, err := dec.Token()
		if err != nil {
			return err
		}
		value, ok := valueTok.(string)
		if !ok {
			return fmt.Errorf("ledger value for %q is not a string", key)
		}
		if err := parsed.Add(key, value); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after ledger object")
	}

	*l = *parsed
	return nil
}

func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
