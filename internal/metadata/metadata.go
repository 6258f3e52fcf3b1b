// Package metadata models the structured record persisted as a bundle's
// metadata.json fragment.
package metadata

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"
)

// Metadata describes one document. Uploaded is always set; Archived is
// stamped when the bundle reaches the archive and may stay nil forever if no
// reviewer ever populates it.
type Metadata struct {
	Uploaded time.Time  `json:"uploaded"`
	Archived *time.Time `json:"archived"`

	Title *string `json:"title"`
	Pages uint32  `json:"pages"`

	Labels LabelSet `json:"labels"`

	Properties map[string]string `json:"properties"`
}

// New returns a record with the given upload time and empty collections.
func New(uploaded time.Time) *Metadata {
	return &Metadata{
		Uploaded:   uploaded.UTC(),
		Labels:     LabelSet{},
		Properties: map[string]string{},
	}
}

// Load decodes a JSON metadata record from r.
func Load(r io.Reader) (*Metadata, error) {
	var md Metadata
	if err := json.NewDecoder(r).Decode(&md); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	if md.Labels == nil {
		md.Labels = LabelSet{}
	}
	if md.Properties == nil {
		md.Properties = map[string]string{}
	}
	return &md, nil
}

// Save encodes the record as JSON to w.
func (m *Metadata) Save(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(m); err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	return nil
}

// LabelSet holds unique label strings. The JSON form is a sorted array so the
// persisted fragment is byte-stable for identical sets.
type LabelSet map[string]struct{}

// Labels builds a set from the given values, dropping duplicates.
func Labels(values ...string) LabelSet {
	set := make(LabelSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Add inserts a label. Adding an existing label is a no-op.
func (s LabelSet) Add(label string) {
	s[label] = struct{}{}
}

// Contains reports whether the label is present.
func (s LabelSet) Contains(label string) bool {
	_, ok := s[label]
	return ok
}

// Slice returns the labels sorted ascending.
func (s LabelSet) Slice() []string {
	out := make([]string, 0, len(s))
	for label := range s {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON implements json.Marshaler.
func (s LabelSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *LabelSet) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = Labels(values...)
	return nil
}
