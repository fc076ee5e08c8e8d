package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Padmajasharma/Bookshow/internal/models"
	"github.com/Padmajasharma/Bookshow/internal/repository"
	"github.com/Padmajasharma/Bookshow/pkg/monitoring"
	"github.com/Padmajasharma/Bookshow/pkg/rabbitmq"
	"gorm.io/gorm"
)

var ErrShowNotFound = errors.New("show not found")

type ShowService interface {
	CreateShow(ctx context.Context, event *models.Event) error
	GetShow(ctx context.Context, id uint) (*models.Event, error)
	ListShows(ctx context.Context) ([]models.Event, error)
	UpdateShow(ctx context.Context, id uint, apply func(*models.Event)) (*models.Event, error)
	DeleteShow(ctx context.Context, id uint) error
}

type showService struct {
	eventRepo  repository.EventRepository
	ticketRepo repository.TicketRepository
	publisher  *rabbitmq.Publisher
}

func NewShowService(eventRepo repository.EventRepository, ticketRepo repository.TicketRepository, publisher *rabbitmq.Publisher) ShowService {
	return &showService{eventRepo: eventRepo, ticketRepo: ticketRepo, publisher: publisher}
}

func (s *showService) CreateShow(ctx context.Context, event *models.Event) error {
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create show: %w", err)
	}
	monitoring.ShowsCreated.Inc()
	_ = s.publisher.Publish("show.created", event)
	return nil
}

func (s *showService) GetShow(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrShowNotFound
	}
	return event, nil
}

func (s *showService) ListShows(ctx context.Context) ([]models.Event, error) {
	return s.eventRepo.FindAll(ctx)
}

// UpdateShow loads the show, lets the caller mutate it, and persists the
// result.
func (s *showService) UpdateShow(ctx context.Context, id uint, apply func(*models.Event)) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrShowNotFound
	}
	apply(event)
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update show: %w", err)
	}
	_ = s.publisher.Publish("show.updated", event)
	return event, nil
}

// DeleteShow removes the show and every ticket referencing it in a single
// transaction.
func (s *showService) DeleteShow(ctx context.Context, id uint) error {
	if _, err := s.eventRepo.FindByID(ctx, id); err != nil {
		return ErrShowNotFound
	}

	err := s.eventRepo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.ticketRepo.DeleteByEventID(ctx, tx, id); err != nil {
			return err
		}
		return s.eventRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return fmt.Errorf("delete show: %w", err)
	}

	_ = s.publisher.Publish("show.deleted", map[string]uint{"id": id})
	return nil
}
