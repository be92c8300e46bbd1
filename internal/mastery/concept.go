package mastery

import (
	"errors"
	"fmt"
	"strings"
)

// ConceptID identifies a first-grade math skill area
type ConceptID string

const (
	ConceptNumbers     ConceptID = "numbers"
	ConceptAddition    ConceptID = "addition"
	ConceptSubtraction ConceptID = "subtraction"
	ConceptPlaceValue  ConceptID = "place"
	ConceptMeasurement ConceptID = "measurement"
	ConceptTime        ConceptID = "time"
	ConceptFractions   ConceptID = "fractions"
	ConceptGeometry    ConceptID = "geometry"
	ConceptData        ConceptID = "data"
)

var ErrUnknownConcept = errors.New("unknown concept")

// ConceptInfo is the display metadata for a concept
type ConceptInfo struct {
	ID          ConceptID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// catalogOrder fixes the listing order of the catalog.
var catalogOrder = []ConceptID{
	ConceptNumbers,
	ConceptAddition,
	ConceptSubtraction,
	ConceptPlaceValue,
	ConceptMeasurement,
	ConceptTime,
	ConceptFractions,
	ConceptGeometry,
	ConceptData,
}

var catalog = map[ConceptID]ConceptInfo{
	ConceptNumbers: {
		ID:          ConceptNumbers,
		Name:        "Number Recognition & Counting",
		Description: "Counting, number sequence, and number recognition from 0-100",
	},
	ConceptAddition: {
		ID:          ConceptAddition,
		Name:        "Addition",
		Description: "Adding numbers within 20",
	},
	ConceptSubtraction: {
		ID:          ConceptSubtraction,
		Name:        "Subtraction",
		Description: "Subtracting numbers within 20",
	},
	ConceptPlaceValue: {
		ID:          ConceptPlaceValue,
		Name:        "Place Value",
		Description: "Understanding tens and ones",
	},
	ConceptMeasurement: {
		ID:          ConceptMeasurement,
		Name:        "Measurement",
		Description: "Measuring length, weight, and capacity",
	},
	ConceptTime: {
		ID:          ConceptTime,
		Name:        "Time",
		Description: "Telling time to the hour and half-hour",
	},
	ConceptFractions: {
		ID:          ConceptFractions,
		Name:        "Basic Fractions",
		Description: "Understanding halves and quarters",
	},
	ConceptGeometry: {
		ID:          ConceptGeometry,
		Name:        "Geometry",
		Description: "Recognizing 2D and 3D shapes",
	},
	ConceptData: {
		ID:          ConceptData,
		Name:        "Data & Graphs",
		Description: "Reading and creating simple graphs",
	},
}

// Lookup returns the display metadata for id.
func Lookup(id ConceptID) (ConceptInfo, error) {
	info, ok := catalog[id]
	if !ok {
		return ConceptInfo{}, fmt.Errorf("%w: %q", ErrUnknownConcept, string(id))
	}
	return info, nil
}

// ParseConceptID normalizes s and checks it against the catalog.
func ParseConceptID(s string) (ConceptID, error) {
	id := ConceptID(strings.ToLower(strings.TrimSpace(s)))
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownConcept, s)
	}
	return id, nil
}

func (c ConceptID) Valid() bool {
	_, ok := catalog[c]
	return ok
}

func (c ConceptID) String() string {
	return string(c)
}

// Concepts lists the catalog in its canonical order.
func Concepts() []ConceptInfo {
	out := make([]ConceptInfo, 0, len(catalogOrder))
	for _, id := range catalogOrder {
		out = append(out, catalog[id])
	}
	return out
}
