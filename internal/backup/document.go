// Package backup reads and writes the per-collection export documents and
// archives them to S3.
package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

const Version = "1.0"

// Export wraps records as {"<collection>": [...], "exportedAt": ..., "version": "1.0"}.
func Export(c store.Collection, records any, now time.Time) ([]byte, error) {
	list, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", c, err)
	}
	if string(list) == "null" {
		list = []byte("[]")
	}

	doc := map[string]any{
		string(c):    json.RawMessage(list),
		"exportedAt": now.UTC().Format(time.RFC3339),
		"version":    Version,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Import returns the records under the collection's field. The field must
// exist and hold an array; anything else is store.ErrInvalidFormat.
func Import[T any](c store.Collection, data []byte) ([]T, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("import %s: %w", c, store.ErrInvalidFormat)
	}

	raw, ok := doc[string(c)]
	if !ok {
		return nil, fmt.Errorf("import %s: missing field: %w", c, store.ErrInvalidFormat)
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("import %s: not an array: %w", c, store.ErrInvalidFormat)
	}

	out := make([]T, 0)
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("import %s: %w: %v", c, store.ErrInvalidFormat, err)
	}
	return out, nil
}

// FileName is the download name: "<collection>_backup_YYYY-MM-DD.json".
func FileName(c store.Collection, now time.Time) string {
	return fmt.Sprintf("%s_backup_%s.json", c, now.Format("2006-01-02"))
}
