package ledger

import (
	"encoding/json"
	"fmt"
)

// Export dumps every namespaced blob as a single JSON document, one entry
// per storage key.
func (l *Ledger) Export() ([]byte, error) {
	blobs, err := l.store.RawAll()
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(blobs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return out, nil
}

// Import restores a previous export. The whole document is validated before
// anything is written: a parse failure in any key aborts the import with no
// partial merge.
func (l *Ledger) Import(data []byte) error {
	var blobs map[string]json.RawMessage
	if err := json.Unmarshal(data, &blobs); err != nil {
		return fmt.Errorf("parse import file: %w", err)
	}
	return l.store.RawReplace(blobs)
}
