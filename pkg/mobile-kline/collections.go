package mobilekline

// StringCollection is a gomobile-compatible read-only list of strings.
// gomobile doesn't support returning slices, so we use Get(i) + Size().
type StringCollection interface {
	Get(i int) string
	Size() int
}

// StringArray is the StringCollection returned to native callers.
type StringArray struct {
	items []string
}

// NewStringArray creates a new empty StringArray.
func NewStringArray() *StringArray {
	return &StringArray{items: []string{}}
}

func (a *StringArray) Add(s string) *StringArray {
	a.items = append(a.items, s)

	return a
}

func (a *StringArray) Get(i int) string {
	if i < 0 || i >= len(a.items) {
		return ""
	}

	return a.items[i]
}

func (a *StringArray) Size() int {
	return len(a.items)
}

func (a *StringArray) All() []string {
	return a.items
}
