package resources

import (
	"strings"

	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
)

// FilterAll matches every concept or type.
const FilterAll = "all"

// Resource is an item of the resource library
type Resource struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Type          string            `json:"type"`
	Format        string            `json:"format"`
	ConceptID     mastery.ConceptID `json:"concept_id"`
	Difficulty    string            `json:"difficulty"`
	Description   string            `json:"description"`
	ThumbnailURL  string            `json:"thumbnail_url"`
	URL           string            `json:"url"`
	EstimatedTime string            `json:"estimated_time"`
	TargetSkills  []string          `json:"target_skills"`
}

// Filter narrows a listing. Empty fields and "all" match everything.
type Filter struct {
	Concept string `form:"concept" json:"concept"`
	Type    string `form:"type" json:"type"`
	Query   string `form:"q" json:"q"`
}

// Library is a read-only resource catalog
type Library struct {
	items []Resource
}

func NewLibrary(items []Resource) *Library {
	l := &Library{items: make([]Resource, len(items))}
	copy(l.items, items)
	return l
}

// DefaultLibrary holds the built-in first-grade resources.
func DefaultLibrary() *Library {
	return NewLibrary(defaultResources)
}

// Find returns the resources matching f in catalog order.
func (l *Library) Find(f Filter) []Resource {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]Resource, 0)
	for _, r := range l.items {
		if !matchesField(f.Concept, string(r.ConceptID)) {
			continue
		}
		if !matchesField(f.Type, r.Type) {
			continue
		}
		if query != "" && !r.matchesQuery(query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Types lists the distinct resource types in catalog order.
func (l *Library) Types() []string {
	seen := make(map[string]bool)
	types := make([]string, 0)
	for _, r := range l.items {
		if !seen[r.Type] {
			seen[r.Type] = true
			types = append(types, r.Type)
		}
	}
	return types
}

func (l *Library) Get(id string) (Resource, bool) {
	for _, r := range l.items {
		if r.ID == id {
			return r, true
		}
	}
	return Resource{}, false
}

func matchesField(want, got string) bool {
	return want == "" || strings.EqualFold(want, FilterAll) || strings.EqualFold(want, got)
}

func (r Resource) matchesQuery(query string) bool {
	if strings.Contains(strings.ToLower(r.Title), query) ||
		strings.Contains(strings.ToLower(r.Description), query) {
		return true
	}
	for _, skill := range r.TargetSkills {
		if strings.Contains(strings.ToLower(skill), query) {
			return true
		}
	}
	return false
}

var defaultResources = []Resource{
	{
		ID:            "res1",
		Title:         "Counting to 100 Chart",
		Type:          "Printable",
		Format:        "PDF",
		ConceptID:     mastery.ConceptNumbers,
		Difficulty:    "easy",
		Description:   "A colorful chart to help children learn and practice counting from 1 to 100.",
		ThumbnailURL:  "/images/counting-chart.png",
		URL:           "/resources/counting-chart.pdf",
		EstimatedTime: "15 min",
		TargetSkills:  []string{"counting", "number recognition", "number sequence"},
	},
	{
		ID:            "res2",
		Title:         "Addition with Manipulatives",
		Type:          "Interactive",
		Format:        "Web Activity",
		ConceptID:     mastery.ConceptAddition,
		Difficulty:    "easy",
		Description:   "Practice adding numbers using virtual counters and other manipulatives.",
		ThumbnailURL:  "/images/addition-manipulatives.png",
		URL:           "/activities/addition-manipulatives",
		EstimatedTime: "20 min",
		TargetSkills:  []string{"addition within 10", "addition within 20", "number bonds"},
	},
	{
		ID:            "res3",
		Title:         "Subtraction Stories",
		Type:          "Video",
		Format:        "MP4",
		ConceptID:     mastery.ConceptSubtraction,
		Difficulty:    "medium",
		Description:   "Watch engaging stories that demonstrate how subtraction works in real-life scenarios.",
		ThumbnailURL:  "/images/subtraction-stories.png",
		URL:           "/videos/subtraction-stories",
		EstimatedTime: "12 min",
		TargetSkills:  []string{"subtraction within 10", "subtraction within 20", "word problems"},
	},
	{
		ID:            "res4",
		Title:         "Place Value Blocks",
		Type:          "Interactive",
		Format:        "Web Activity",
		ConceptID:     mastery.ConceptPlaceValue,
		Difficulty:    "medium",
		Description:   "Explore place value concepts with virtual base-10 blocks.",
		ThumbnailURL:  "/images/place-value-blocks.png",
		URL:           "/activities/place-value-blocks",
		EstimatedTime: "25 min",
		TargetSkills:  []string{"tens and ones", "number composition", "number decomposition"},
	},
	{
		ID:            "res5",
		Title:         "Measuring with Non-Standard Units",
		Type:          "Printable",
		Format:        "PDF",
		ConceptID:     mastery.ConceptMeasurement,
		Difficulty:    "easy",
		Description:   "Activities for measuring objects using non-standard units like paper clips and cubes.",
		ThumbnailURL:  "/images/non-standard-measurement.png",
		URL:           "/resources/non-standard-measurement.pdf",
		EstimatedTime: "30 min",
		TargetSkills:  []string{"measuring length", "comparing lengths", "non-standard units"},
	},
	{
		ID:            "res6",
		Title:         "Telling Time to the Hour",
		Type:          "Interactive",
		Format:        "Web Activity",
		ConceptID:     mastery.ConceptTime,
		Difficulty:    "easy",
		Description:   "Practice telling time to the hour with an interactive clock.",
		ThumbnailURL:  "/images/telling-time.png",
		URL:           "/activities/telling-time",
		EstimatedTime: "15 min",
		TargetSkills:  []string{"hour hand", "minute hand", "reading clocks"},
	},
	{
		ID:            "res7",
		Title:         "Introduction to Fractions",
		Type:          "Video",
		Format:        "MP4",
		ConceptID:     mastery.ConceptFractions,
		Difficulty:    "medium",
		Description:   "A kid-friendly introduction to basic fraction concepts.",
		ThumbnailURL:  "/images/intro-fractions.png",
		URL:           "/videos/intro-fractions",
		EstimatedTime: "10 min",
		TargetSkills:  []string{"halves", "quarters", "equal parts"},
	},
	{
		ID:            "res8",
		Title:         "2D and 3D Shapes Flashcards",
		Type:          "Printable",
		Format:        "PDF",
		ConceptID:     mastery.ConceptGeometry,
		Difficulty:    "easy",
		Description:   "Colorful flashcards featuring 2D and 3D shapes with their names.",
		ThumbnailURL:  "/images/shapes-flashcards.png",
		URL:           "/resources/shapes-flashcards.pdf",
		EstimatedTime: "20 min",
		TargetSkills:  []string{"shape recognition", "shape properties", "shape names"},
	},
	{
		ID:            "res9",
		Title:         "Creating Simple Pictographs",
		Type:          "Interactive",
		Format:        "Web Activity",
		ConceptID:     mastery.ConceptData,
		Difficulty:    "medium",
		Description:   "Learn to create and interpret simple pictographs with this interactive activity.",
		ThumbnailURL:  "/images/pictographs.png",
		URL:           "/activities/pictographs",
		EstimatedTime: "25 min",
		TargetSkills:  []string{"data collection", "data representation", "pictograph interpretation"},
	},
}
