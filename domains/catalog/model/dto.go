package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RegisterBookRequest carries the fields needed to add a title to the
// catalog. Copies all start on the shelf.
type RegisterBookRequest struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	ISBN     string   `json:"isbn"`
	Category Category `json:"category"`
	Pages    int      `json:"pages"`
	Copies   int      `json:"copies"`
	Tags     []string `json:"tags,omitempty"`
}

func (r RegisterBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("ISBN is required"),
			validation.By(validISBN),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.By(validCategory),
		),
		validation.Field(&r.Pages,
			validation.Min(1).Error("page count must be positive"),
		),
		validation.Field(&r.Copies,
			validation.Min(1).Error("at least one copy is required"),
		),
	)
}

func validISBN(value interface{}) error {
	isbn, _ := value.(string)
	if !IsValidISBN(NormalizeISBN(isbn)) {
		return ErrInvalidISBN
	}
	return nil
}

func validCategory(value interface{}) error {
	category, _ := value.(Category)
	if !category.IsValid() {
		return validation.NewError("validation_category", "must be one of: fiction, nonfiction, science, history, biography, children")
	}
	return nil
}
