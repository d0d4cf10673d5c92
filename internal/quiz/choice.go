package quiz

// ChoiceGroup is a group of answer checkboxes of which at most one is checked.
// Checking a box unchecks the others. Checking the box that is already
// checked leaves it checked, so after the first pick the group only returns
// to "nothing checked" through Reset.
type ChoiceGroup struct {
	size    int
	checked int
}

// NewChoiceGroup creates a group of n unchecked boxes.
func NewChoiceGroup(n int) ChoiceGroup {
	return ChoiceGroup{size: n, checked: -1}
}

// Size returns the number of boxes in the group.
func (g ChoiceGroup) Size() int {
	return g.size
}

// Check checks box i. Out-of-range indexes are ignored and return false.
func (g *ChoiceGroup) Check(i int) bool {
	if i < 0 || i >= g.size {
		return false
	}
	g.checked = i
	return true
}

// IsChecked reports whether box i is checked.
func (g ChoiceGroup) IsChecked(i int) bool {
	return g.checked >= 0 && g.checked == i
}

// CheckedIndex returns the checked box, or -1 when none is checked.
func (g ChoiceGroup) CheckedIndex() int {
	return g.checked
}

// Reset unchecks every box and resizes the group to n boxes.
func (g *ChoiceGroup) Reset(n int) {
	g.size = n
	g.checked = -1
}
