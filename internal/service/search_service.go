package service

import (
	"context"
	"fmt"

	"github.com/Padmajasharma/Bookshow/internal/models"
	"github.com/Padmajasharma/Bookshow/internal/repository"
)

// SearchResult holds the venues whose address and the shows whose name
// contain the query substring.
type SearchResult struct {
	Venues []models.Venue
	Events []models.Event
}

type SearchService interface {
	Search(ctx context.Context, query string) (*SearchResult, error)
}

type searchService struct {
	venueRepo repository.VenueRepository
	eventRepo repository.EventRepository
}

func NewSearchService(venueRepo repository.VenueRepository, eventRepo repository.EventRepository) SearchService {
	return &searchService{venueRepo: venueRepo, eventRepo: eventRepo}
}

func (s *searchService) Search(ctx context.Context, query string) (*SearchResult, error) {
	venues, err := s.venueRepo.SearchByAddress(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	events, err := s.eventRepo.SearchByName(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search shows: %w", err)
	}
	return &SearchResult{Venues: venues, Events: events}, nil
}
