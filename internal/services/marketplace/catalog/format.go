package catalog

import (
	"fmt"

	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/course"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Status labels.
const (
	StatusPublished = "Published"
	StatusDraft     = "Draft"
)

// FormatPrice renders a price in US dollars with cents, for example $99.99.
func FormatPrice(price float64) string {
	scale, _ := currency.Standard.Rounding(currency.USD)
	p := message.NewPrinter(language.AmericanEnglish)
	return fmt.Sprint(currency.NarrowSymbol(currency.USD)) +
		p.Sprint(number.Decimal(price, number.Scale(scale)))
}

// StatusLabel names the visibility of c.
func StatusLabel(c course.Course) string {
	if c.Published {
		return StatusPublished
	}
	return StatusDraft
}

// Summary holds the instructor dashboard totals.
type Summary struct {
	Total     int
	Published int
	// Revenue is the sum of published course prices.
	Revenue float64
}

// Summarize totals courses, normally one instructor's list.
func Summarize(courses []course.Course) Summary {
	var s Summary
	for _, c := range courses {
		s.Total++
		if c.Published {
			s.Published++
			s.Revenue += c.Price
		}
	}
	return s
}
