package mastery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	info, err := Lookup(ConceptPlaceValue)
	require.NoError(t, err)
	assert.Equal(t, "Place Value", info.Name)
	assert.Equal(t, "Understanding tens and ones", info.Description)

	_, err = Lookup("algebra")
	assert.ErrorIs(t, err, ErrUnknownConcept)
}

func TestParseConceptID(t *testing.T) {
	id, err := ParseConceptID("  Geometry ")
	require.NoError(t, err)
	assert.Equal(t, ConceptGeometry, id)

	_, err = ParseConceptID("")
	assert.ErrorIs(t, err, ErrUnknownConcept)

	_, err = ParseConceptID("calculus")
	assert.ErrorIs(t, err, ErrUnknownConcept)
}

func TestConcepts(t *testing.T) {
	concepts := Concepts()
	require.Len(t, concepts, 9)
	assert.Equal(t, ConceptNumbers, concepts[0].ID)
	assert.Equal(t, ConceptData, concepts[8].ID)

	for _, c := range concepts {
		assert.True(t, c.ID.Valid())
		assert.NotEmpty(t, c.Name)
	}
}
