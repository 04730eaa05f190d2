package domain

import (
	"encoding/json"
	"fmt"
)

// ImportBatch is an externally supplied grouping of records by target
// section. Groups are independently optional; the batch exists only for the
// duration of one import operation.
type ImportBatch struct {
	// Timeline holds incoming run-of-show events.
	Timeline []Event

	// People holds incoming people.
	People []Person

	// Photos holds incoming shot requests.
	Photos []ShotRequest

	// Unknown lists section names present in the input that the importer
	// does not recognise as importable. They are warned about, not rejected.
	Unknown []string
}

// ParseImportBatch decodes the wire format: a JSON object mapping section
// names to arrays of records. Unknown extra fields inside records are
// ignored for forward compatibility with future exporter formats. Records
// arrive without identifiers (or with foreign ones); every record gets its
// optional fields defaulted and, when missing, a fresh identifier.
func ParseImportBatch(data []byte) (*ImportBatch, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing import batch: %w: %w", ErrInvalidInput, err)
	}

	batch := &ImportBatch{}
	for name, group := range raw {
		switch SectionName(name) {
		case SectionTimeline:
			if err := json.Unmarshal(group, &batch.Timeline); err != nil {
				return nil, fmt.Errorf("parsing timeline group: %w: %w", ErrInvalidInput, err)
			}
		case SectionPeople:
			if err := json.Unmarshal(group, &batch.People); err != nil {
				return nil, fmt.Errorf("parsing people group: %w: %w", ErrInvalidInput, err)
			}
		case SectionPhotos:
			if err := json.Unmarshal(group, &batch.Photos); err != nil {
				return nil, fmt.Errorf("parsing photos group: %w: %w", ErrInvalidInput, err)
			}
		default:
			batch.Unknown = append(batch.Unknown, name)
		}
	}

	for i := range batch.Timeline {
		batch.Timeline[i].ApplyDefaults()
	}
	for i := range batch.People {
		batch.People[i].ApplyDefaults()
	}
	for i := range batch.Photos {
		batch.Photos[i].ApplyDefaults()
	}

	return batch, nil
}

// IsEmpty reports whether the batch carries no records at all.
func (b *ImportBatch) IsEmpty() bool {
	return len(b.Timeline) == 0 && len(b.People) == 0 && len(b.Photos) == 0
}

// Sections returns the collection sections present in the batch, in
// canonical order.
func (b *ImportBatch) Sections() []SectionName {
	var names []SectionName
	if len(b.Timeline) > 0 {
		names = append(names, SectionTimeline)
	}
	if len(b.People) > 0 {
		names = append(names, SectionPeople)
	}
	if len(b.Photos) > 0 {
		names = append(names, SectionPhotos)
	}
	return names
}
