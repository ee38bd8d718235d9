package catalog

// Default returns the built-in sign catalog.
func Default() *Catalog {
	return New(map[Category][]Entry{
		CategoryAlphabets: {
			{Label: "A", MediaRef: "placeholder_a.mp4", Description: "Letter A in ASL"},
			{Label: "B", MediaRef: "placeholder_b.mp4", Description: "Letter B in ASL"},
			{Label: "C", MediaRef: "placeholder_c.mp4", Description: "Letter C in ASL"},
		},
		CategoryNumbers: {
			{Label: "1", MediaRef: "placeholder_1.mp4", Description: "Number 1 in ASL"},
			{Label: "2", MediaRef: "placeholder_2.mp4", Description: "Number 2 in ASL"},
			{Label: "3", MediaRef: "placeholder_3.mp4", Description: "Number 3 in ASL"},
		},
		CategoryWords: {
			{Label: "hello", MediaRef: "placeholder_hello.mp4", Description: "Hello greeting in ASL"},
			{Label: "thank you", MediaRef: "placeholder_thanks.mp4", Description: "Thank you in ASL"},
			{Label: "please", MediaRef: "placeholder_please.mp4", Description: "Please in ASL"},
			{Label: "family", MediaRef: "placeholder_family.mp4", Description: "Family in ASL"},
		},
	})
}
