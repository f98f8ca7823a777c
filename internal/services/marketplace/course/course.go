// Package course provides the course record, its fixed vocabularies, and the
// persisted course collection.
package course

import "slices"

// Course is one catalog listing.
type Course struct {
	ID          string  `json:"id"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Image       string  `json:"image" validate:"required,url"`
	// AuthorID and AuthorName copy the creating instructor at creation time
	// and are not kept in sync with the account afterwards.
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	Published  bool   `json:"published"`
	// CreatedAt is the UTC creation date as YYYY-MM-DD.
	CreatedAt string `json:"createdAt"`
	Category  string `json:"category" validate:"category"`
	Duration  string `json:"duration"`
	Level     string `json:"level" validate:"level"`
}

// Update carries the fields to merge into an existing course. Nil fields
// are left unchanged. ID and CreatedAt are not updatable.
type Update struct {
	Title       *string
	Description *string
	Price       *float64
	Image       *string
	AuthorID    *string
	AuthorName  *string
	Published   *bool
	Category    *string
	Duration    *string
	Level       *string
}

// IsEmpty reports whether u changes nothing.
func (u Update) IsEmpty() bool {
	return u == Update{}
}

// Apply returns c with the non-nil fields of u merged in.
func (u Update) Apply(c Course) Course {
	if u.Title != nil {
		c.Title = *u.Title
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.Price != nil {
		c.Price = *u.Price
	}
	if u.Image != nil {
		c.Image = *u.Image
	}
	if u.AuthorID != nil {
		c.AuthorID = *u.AuthorID
	}
	if u.AuthorName != nil {
		c.AuthorName = *u.AuthorName
	}
	if u.Published != nil {
		c.Published = *u.Published
	}
	if u.Category != nil {
		c.Category = *u.Category
	}
	if u.Duration != nil {
		c.Duration = *u.Duration
	}
	if u.Level != nil {
		c.Level = *u.Level
	}
	return c
}

// Levels.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

var categories = []string{
	"Web Development",
	"Mobile Development",
	"Data Science",
	"Machine Learning",
	"Design",
	"Business",
	"Programming",
	"Marketing",
	"Photography",
	"Music",
}

var levels = []string{LevelBeginner, LevelIntermediate, LevelAdvanced}

var defaultImages = []string{
	"https://images.pexels.com/photos/11035380/pexels-photo-11035380.jpeg?auto=compress&cs=tinysrgb&w=800",
	"https://images.pexels.com/photos/1181671/pexels-photo-1181671.jpeg?auto=compress&cs=tinysrgb&w=800",
	"https://images.pexels.com/photos/196644/pexels-photo-196644.jpeg?auto=compress&cs=tinysrgb&w=800",
	"https://images.pexels.com/photos/1181244/pexels-photo-1181244.jpeg?auto=compress&cs=tinysrgb&w=800",
	"https://images.pexels.com/photos/574071/pexels-photo-574071.jpeg?auto=compress&cs=tinysrgb&w=800",
	"https://images.pexels.com/photos/1181675/pexels-photo-1181675.jpeg?auto=compress&cs=tinysrgb&w=800",
}

// Categories returns the categories a new course may be filed under.
func Categories() []string { return slices.Clone(categories) }

// Levels returns the difficulty levels a course may declare.
func Levels() []string { return slices.Clone(levels) }

// DefaultImages returns the image pool used when a course has no image.
func DefaultImages() []string { return slices.Clone(defaultImages) }

// IsCategory reports whether value is one of Categories.
func IsCategory(value string) bool { return slices.Contains(categories, value) }

// IsLevel reports whether value is one of Levels.
func IsLevel(value string) bool { return slices.Contains(levels, value) }
