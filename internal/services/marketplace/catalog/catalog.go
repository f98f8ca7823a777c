// Package catalog filters published courses for browsing and derives the
// filter choices offered next to the search box.
package catalog

import (
	"strings"

	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/course"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// All is the category and level value that disables that filter.
const All = "All"

// EnrollmentNotice is shown when a student asks to enroll. Enrollment itself
// is not implemented.
const EnrollmentNotice = "Enrollment feature would be implemented with payment integration!"

// Query narrows a course list. An empty Search matches every course; an
// empty Category or Level behaves like All.
type Query struct {
	Search   string
	Category string
	Level    string
}

// Filter returns the courses matching every part of q, in input order.
// Search is a case-insensitive substring match against title or
// description; Category and Level must match exactly unless set to All.
func Filter(courses []course.Course, q Query) []course.Course {
	lower := cases.Lower(language.Und)
	needle := lower.String(q.Search)

	out := make([]course.Course, 0, len(courses))
	for _, c := range courses {
		if !matchesFacet(q.Category, c.Category) || !matchesFacet(q.Level, c.Level) {
			continue
		}
		if needle != "" &&
			!strings.Contains(lower.String(c.Title), needle) &&
			!strings.Contains(lower.String(c.Description), needle) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Options returns the distinct categories and levels present in courses,
// in first-seen order, each list led by All.
func Options(courses []course.Course) (categories, levels []string) {
	categories = []string{All}
	levels = []string{All}
	seenCategories := map[string]struct{}{}
	seenLevels := map[string]struct{}{}
	for _, c := range courses {
		if _, ok := seenCategories[c.Category]; !ok {
			seenCategories[c.Category] = struct{}{}
			categories = append(categories, c.Category)
		}
		if _, ok := seenLevels[c.Level]; !ok {
			seenLevels[c.Level] = struct{}{}
			levels = append(levels, c.Level)
		}
	}
	return categories, levels
}

func matchesFacet(want, got string) bool {
	return want == "" || want == All || want == got
}
