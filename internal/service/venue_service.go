package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Padmajasharma/Bookshow/internal/models"
	"github.com/Padmajasharma/Bookshow/internal/repository"
	"gorm.io/gorm"
)

var ErrVenueNotFound = errors.New("venue not found")

type VenueService interface {
	CreateVenue(ctx context.Context, venue *models.Venue) error
	GetVenue(ctx context.Context, id uint) (*models.Venue, error)
	ListVenues(ctx context.Context) ([]models.Venue, error)
	UpdateVenue(ctx context.Context, id uint, name, address string, capacity int) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id uint) error
}

type venueService struct {
	repo      repository.VenueRepository
	eventRepo repository.EventRepository
	adminRepo repository.AdminRepository
}

func NewVenueService(repo repository.VenueRepository, eventRepo repository.EventRepository, adminRepo repository.AdminRepository) VenueService {
	return &venueService{repo: repo, eventRepo: eventRepo, adminRepo: adminRepo}
}

func (s *venueService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	if err := s.repo.Create(ctx, venue); err != nil {
		return fmt.Errorf("create venue: %w", err)
	}
	return nil
}

func (s *venueService) GetVenue(ctx context.Context, id uint) (*models.Venue, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrVenueNotFound
	}
	return venue, nil
}

func (s *venueService) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return s.repo.FindAll(ctx)
}

func (s *venueService) UpdateVenue(ctx context.Context, id uint, name, address string, capacity int) (*models.Venue, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrVenueNotFound
	}
	venue.Name = name
	venue.Address = address
	venue.Capacity = capacity
	if err := s.repo.Update(ctx, venue); err != nil {
		return nil, fmt.Errorf("update venue: %w", err)
	}
	return venue, nil
}

// DeleteVenue removes the venue and detaches its events and admins in a
// single transaction. Events at the venue survive venue-less; they are never
// deleted with it.
func (s *venueService) DeleteVenue(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrVenueNotFound
	}

	err := s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.eventRepo.DetachVenue(ctx, tx, id); err != nil {
			return err
		}
		if err := s.adminRepo.DetachVenue(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	return nil
}
