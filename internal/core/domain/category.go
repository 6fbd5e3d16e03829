package domain

// Category groups transactions. Built-ins ship with the app; custom ones are user-created.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Emoji    string `json:"emoji"`
	Color    string `json:"color"`
	IsCustom bool   `json:"isCustom"`
}
