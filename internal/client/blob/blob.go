// Package blob stores receipts, photos and certificates and hands back the
// URL to put on the member record.
package blob

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
)

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}

// StorageKey builds a unique, date-partitioned object key that keeps the
// original file extension.
func StorageKey(now time.Time, name string) string {
	return fmt.Sprintf("uploads/%d/%02d/%02d/%s%s",
		now.Year(), now.Month(), now.Day(), uuid.NewString(), path.Ext(name))
}
