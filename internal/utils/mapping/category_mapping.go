package mapping

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/models"
)

// ToModelCategory converts a custom domain Category to its stored form
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID: d.ID,
		Name:       d.Name,
		Emoji:      d.Emoji,
		Color:      d.Color,
	}
}

// ToDomainCategory converts a stored category. Only custom categories are ever stored.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		ID:       m.CategoryID,
		Name:     m.Name,
		Emoji:    m.Emoji,
		Color:    m.Color,
		IsCustom: true,
	}
}

// EncodeCustomCategories serializes the custom categories.
func EncodeCustomCategories(cs []domain.Category, now time.Time) ([]byte, error) {
	doc := models.CustomCategoriesDocument{
		DocumentMeta: newDocumentMeta(now),
		Categories:   make([]models.Category, len(cs)),
	}
	for i, c := range cs {
		doc.Categories[i] = ToModelCategory(c)
	}
	return json.Marshal(doc)
}

// DecodeCustomCategories parses a stored custom_categories value.
func DecodeCustomCategories(raw []byte) ([]domain.Category, error) {
	var doc models.CustomCategoriesDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode custom categories: %w", err)
	}
	if err := checkDocumentMeta(doc.DocumentMeta); err != nil {
		return nil, fmt.Errorf("failed to decode custom categories: %w", err)
	}
	out := make([]domain.Category, len(doc.Categories))
	for i, m := range doc.Categories {
		out[i] = ToDomainCategory(m)
	}
	return out, nil
}
