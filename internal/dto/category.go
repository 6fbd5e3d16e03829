package dto

import "github.com/SscSPs/pocket_ledger/internal/core/domain"

// CreateCategoryRequest defines the data needed to create a custom category.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=40"`
	Emoji string `json:"emoji" binding:"max=16"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Emoji      string `json:"emoji"`
	Color      string `json:"color"`
	IsCustom   bool   `json:"isCustom"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO.
func ToCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.ID,
		Name:       c.Name,
		Emoji:      c.Emoji,
		Color:      c.Color,
		IsCustom:   c.IsCustom,
	}
}

// ToListCategoryResponse converts a slice of categories.
func ToListCategoryResponse(cs []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(cs))
	for i, c := range cs {
		res[i] = ToCategoryResponse(c)
	}
	return res
}
