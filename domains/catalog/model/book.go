package model

import (
	"time"

	"github.com/google/uuid"
)

// Category represents the closed set of shelving categories.
type Category string

const (
	CategoryFiction    Category = "fiction"
	CategoryNonfiction Category = "nonfiction"
	CategoryScience    Category = "science"
	CategoryHistory    Category = "history"
	CategoryBiography  Category = "biography"
	CategoryChildren   Category = "children"
)

// Categories lists every valid category, in shelving order.
var Categories = []Category{
	CategoryFiction,
	CategoryNonfiction,
	CategoryScience,
	CategoryHistory,
	CategoryBiography,
	CategoryChildren,
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryFiction, CategoryNonfiction, CategoryScience,
		CategoryHistory, CategoryBiography, CategoryChildren:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Book is a catalog record. AvailableCopies counts copies on the shelf;
// the invariant 0 <= AvailableCopies <= TotalCopies holds at all times.
type Book struct {
	// Identity
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Author string    `json:"author"`
	ISBN   string    `json:"isbn"`

	// Classification
	Category Category `json:"category"`
	Pages    int      `json:"pages"`
	Tags     []string `json:"tags,omitempty"`

	// Copies
	TotalCopies     int `json:"total_copies"`
	AvailableCopies int `json:"available_copies"`

	// Status
	IsActive bool      `json:"is_active"`
	AddedAt  time.Time `json:"added_at"`
}

// HasTag reports whether tag is present on the book.
func (b *Book) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
