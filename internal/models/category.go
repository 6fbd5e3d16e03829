package models

// Category is the stored form of a user-created category.
type Category struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Emoji      string `json:"emoji"`
	Color      string `json:"color"`
}

// CustomCategoriesDocument is stored under the custom_categories key.
type CustomCategoriesDocument struct {
	DocumentMeta
	Categories []Category `json:"categories"`
}
