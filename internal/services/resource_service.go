package services

import (
	"context"
	"strings"

	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
	"github.com/SAP-F-2025/kumi-math-service/internal/resources"
)

type resourceService struct {
	library *resources.Library
}

func NewResourceService(library *resources.Library) ResourceService {
	return &resourceService{library: library}
}

// List filters the library. A concept filter outside the catalog is rejected.
func (s *resourceService) List(ctx context.Context, filter resources.Filter) ([]resources.Resource, error) {
	concept := strings.TrimSpace(filter.Concept)
	if concept != "" && !strings.EqualFold(concept, resources.FilterAll) {
		id, err := mastery.ParseConceptID(concept)
		if err != nil {
			return nil, err
		}
		filter.Concept = id.String()
	}
	return s.library.Find(filter), nil
}

func (s *resourceService) Types(ctx context.Context) []string {
	return s.library.Types()
}

func (s *resourceService) Concepts(ctx context.Context) []mastery.ConceptInfo {
	return mastery.Concepts()
}
