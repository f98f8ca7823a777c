package course

// SampleCourses returns the records written to an empty installation.
func SampleCourses() []Course {
	return []Course{
		{
			ID:          "1",
			Title:       "Complete React Development Course",
			Description: "Master React from fundamentals to advanced concepts including hooks, context, and modern patterns.",
			Price:       99.99,
			Image:       defaultImages[0],
			AuthorID:    "admin1",
			AuthorName:  "Sarah Johnson",
			Published:   true,
			CreatedAt:   "2024-01-15",
			Category:    "Web Development",
			Duration:    "12 hours",
			Level:       LevelIntermediate,
		},
		{
			ID:          "2",
			Title:       "Modern JavaScript Essentials",
			Description: "Learn ES6+ features, async programming, and modern JavaScript development practices.",
			Price:       79.99,
			Image:       defaultImages[1],
			AuthorID:    "admin1",
			AuthorName:  "Sarah Johnson",
			Published:   true,
			CreatedAt:   "2024-01-10",
			Category:    "Programming",
			Duration:    "8 hours",
			Level:       LevelBeginner,
		},
		{
			ID:          "3",
			Title:       "UI/UX Design Fundamentals",
			Description: "Create beautiful and intuitive user interfaces with modern design principles.",
			Price:       129.99,
			Image:       defaultImages[2],
			AuthorID:    "admin2",
			AuthorName:  "Michael Chen",
			Published:   true,
			CreatedAt:   "2024-01-05",
			Category:    "Design",
			Duration:    "15 hours",
			Level:       LevelBeginner,
		},
	}
}
