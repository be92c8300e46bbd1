package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func resourceIDs(items []Resource) []string {
	out := make([]string, 0, len(items))
	for _, r := range items {
		out = append(out, r.ID)
	}
	return out
}

func TestLibrary_Find(t *testing.T) {
	lib := DefaultLibrary()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"everything", Filter{}, []string{"res1", "res2", "res3", "res4", "res5", "res6", "res7", "res8", "res9"}},
		{"all keyword", Filter{Concept: FilterAll, Type: FilterAll}, []string{"res1", "res2", "res3", "res4", "res5", "res6", "res7", "res8", "res9"}},
		{"by concept", Filter{Concept: "place"}, []string{"res4"}},
		{"by type", Filter{Type: "Video"}, []string{"res3", "res7"}},
		{"concept and type", Filter{Concept: "addition", Type: "Video"}, []string{}},
		{"title query is case-insensitive", Filter{Query: "FRACTIONS"}, []string{"res7"}},
		{"target skill query", Filter{Query: "number bonds"}, []string{"res2"}},
		{"description query", Filter{Query: "paper clips"}, []string{"res5"}},
		{"query with type", Filter{Type: "Printable", Query: "shape"}, []string{"res8"}},
		{"no match", Filter{Query: "calculus"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resourceIDs(lib.Find(tt.filter)))
		})
	}
}

func TestLibrary_Types(t *testing.T) {
	assert.Equal(t, []string{"Printable", "Interactive", "Video"}, DefaultLibrary().Types())
}

func TestLibrary_Get(t *testing.T) {
	r, ok := DefaultLibrary().Get("res6")
	assert.True(t, ok)
	assert.Equal(t, "Telling Time to the Hour", r.Title)

	_, ok = DefaultLibrary().Get("res0")
	assert.False(t, ok)
}
