package mapping

import (
	"fmt"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/models"
)

// newDocumentMeta stamps a document that is about to be written.
func newDocumentMeta(now time.Time) models.DocumentMeta {
	return models.DocumentMeta{
		Version:   models.DocumentVersion,
		UpdatedAt: now.UTC(),
	}
}

// checkDocumentMeta rejects documents written by a newer release.
func checkDocumentMeta(m models.DocumentMeta) error {
	if m.Version > models.DocumentVersion {
		return fmt.Errorf("unsupported document version %d (max %d)", m.Version, models.DocumentVersion)
	}
	return nil
}
