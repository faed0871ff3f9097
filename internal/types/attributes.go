package types

import (
	"iter"
	"slices"
)

// Attribute is one tag of the ninth column with its ordered values.
type Attribute struct {
	Tag    string
	Values []string
}

// Attributes is the ordered attribute list of a record.
//
// Order is the order of appearance in the line. Tags are not required to be
// unique; lookups return the first match, All() yields every pair.
type Attributes []Attribute

// All returns an iterator over all tag/values pairs in line order.
//
// Example:
//
//	for tag, values := range rec.Attributes.All() {
//		fmt.Printf("%s: %v\n", tag, values)
//	}
//
// The returned iterator is read-only. Do not modify the returned slices.
func (a Attributes) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, attr := range a {
			if !yield(attr.Tag, attr.Values) {
				return
			}
		}
	}
}

// Get retrieves the values of the first attribute named tag.
//
// Returns nil if the tag doesn't exist. The slice is a copy.
//
// Example:
//
//	parents := rec.Attributes.Get("Parent")
func (a Attributes) Get(tag string) []string {
	i := a.index(tag)
	if i < 0 {
		return nil
	}
	return slices.Clone(a[i].Values)
}

// GetFirst retrieves the first value of the first attribute named tag.
//
// Returns empty string if the tag doesn't exist or has no values:
//
//	id := rec.Attributes.GetFirst("ID")
func (a Attributes) GetFirst(tag string) string {
	i := a.index(tag)
	if i < 0 || len(a[i].Values) == 0 {
		return ""
	}
	return a[i].Values[0]
}

// Has reports whether any attribute is named tag.
func (a Attributes) Has(tag string) bool {
	return a.index(tag) >= 0
}

// Tags returns the attribute tags in line order, duplicates included.
func (a Attributes) Tags() []string {
	tags := make([]string, 0, len(a))
	for _, attr := range a {
		tags = append(tags, attr.Tag)
	}
	return tags
}

// Equal reports whether both lists hold the same tags and values in the
// same order. A nil and an empty value list compare equal.
func (a Attributes) Equal(other Attributes) bool {
	return slices.EqualFunc(a, other, func(x, y Attribute) bool {
		return x.Tag == y.Tag && slices.Equal(x.Values, y.Values)
	})
}

func (a Attributes) index(tag string) int {
	return slices.IndexFunc(a, func(attr Attribute) bool {
		return attr.Tag == tag
	})
}
