package overmark

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpanMeta describes one highlight span: the category that selects its
// colour family and a priority used when overlapping encodings collapse.
type SpanMeta struct {
	ID       SpanID `yaml:"id"`
	Category string `yaml:"category"`
	Priority int    `yaml:"priority"`
}

// MetadataSet resolves span ids to their metadata. A lookup miss is not an
// error: spans without metadata render in the neutral category. A nil
// MetadataSet is valid and resolves nothing.
type MetadataSet struct {
	byID map[SpanID]SpanMeta
}

// NewMetadataSet builds a set from a metadata list. Later entries win on
// duplicate ids.
func NewMetadataSet(metas []SpanMeta) *MetadataSet {
	s := &MetadataSet{byID: make(map[SpanID]SpanMeta, len(metas))}
	for _, m := range metas {
		s.byID[m.ID] = m
	}
	return s
}

// Lookup returns the metadata for id and whether it is known.
func (s *MetadataSet) Lookup(id SpanID) (SpanMeta, bool) {
	if s == nil {
		return SpanMeta{}, false
	}
	m, ok := s.byID[id]
	return m, ok
}

// Len reports the number of known spans.
func (s *MetadataSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.byID)
}

// metadataFile is the YAML shape of a span metadata file.
type metadataFile struct {
	Spans []SpanMeta `yaml:"spans"`
}

// ParseMetadata parses YAML span metadata.
func ParseMetadata(data []byte) ([]SpanMeta, error) {
	var f metadataFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}
	for i, m := range f.Spans {
		if m.ID == "" {
			return nil, fmt.Errorf("parse metadata: span %d has no id", i)
		}
	}
	return f.Spans, nil
}

// LoadMetadata reads and parses a YAML span metadata file.
func LoadMetadata(filename string) ([]SpanMeta, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read metadata %s: %w", filename, err)
	}
	metas, err := ParseMetadata(data)
	if err != nil {
		return nil, fmt.Errorf("metadata %s: %w", filename, err)
	}
	return metas, nil
}
