package model

// Category is one entry of the platform's category taxonomy for a region.
type Category struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Assignable bool   `json:"-"`
}

// CategoryList is the categories query response.
type CategoryList struct {
	Categories []Category `json:"categories"`
}
