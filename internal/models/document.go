package models

import "time"

// DocumentVersion is written into every stored document. Readers accept
// documents up to this version; a missing version is read as 1.
const DocumentVersion = 1

// DocumentMeta is embedded in every persisted key-value document.
type DocumentMeta struct {
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
}
