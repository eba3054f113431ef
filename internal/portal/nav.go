package portal

// ActivationMargin is how far above a section's top the page may be scrolled
// for that section to count as active.
const ActivationMargin = 200

// SectionBounds is the vertical position of a section on the page
type SectionBounds struct {
	Section Section
	Top     int
}

// ActiveSectionAt returns the last section, in page order, whose top minus
// ActivationMargin lies at or above offset. It returns "" when none does.
func ActiveSectionAt(offset int, bounds []SectionBounds) Section {
	var current Section
	for _, b := range bounds {
		if offset >= b.Top-ActivationMargin {
			current = b.Section
		}
	}
	return current
}
