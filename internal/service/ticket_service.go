package service

import (
	"context"
	"fmt"

	"github.com/Padmajasharma/Bookshow/internal/models"
	"github.com/Padmajasharma/Bookshow/internal/repository"
	"github.com/Padmajasharma/Bookshow/pkg/monitoring"
	"github.com/Padmajasharma/Bookshow/pkg/rabbitmq"
	"gorm.io/gorm"
)

type TicketService interface {
	PurchaseTicket(ctx context.Context, buyerID, eventID uint, quantity int) (*models.Ticket, error)
	ListPurchases(ctx context.Context, buyerID uint) ([]models.Ticket, error)
}

type ticketService struct {
	ticketRepo repository.TicketRepository
	eventRepo  repository.EventRepository
	buyerRepo  repository.BuyerRepository
	publisher  *rabbitmq.Publisher
}

func NewTicketService(ticketRepo repository.TicketRepository, eventRepo repository.EventRepository, buyerRepo repository.BuyerRepository, publisher *rabbitmq.Publisher) TicketService {
	return &ticketService{
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
		buyerRepo:  buyerRepo,
		publisher:  publisher,
	}
}

// PurchaseTicket creates a ticket attributed to the buyer, snapshotting the
// show's current price. Venue capacity is display-only; there is no
// overselling check.
func (s *ticketService) PurchaseTicket(ctx context.Context, buyerID, eventID uint, quantity int) (*models.Ticket, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, ErrShowNotFound
	}

	buyer, err := s.buyerRepo.FindByID(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("find buyer: %w", err)
	}

	ticket := &models.Ticket{
		EventID:  event.ID,
		Price:    event.TicketPrice,
		Quantity: quantity,
		BuyerID:  &buyer.ID,
	}

	err = s.ticketRepo.Transaction(ctx, func(tx *gorm.DB) error {
		return s.ticketRepo.Create(ctx, tx, ticket)
	})
	if err != nil {
		return nil, fmt.Errorf("purchase ticket: %w", err)
	}

	monitoring.TicketsPurchased.Inc()
	_ = s.publisher.Publish("ticket.purchased", ticket)
	return ticket, nil
}

func (s *ticketService) ListPurchases(ctx context.Context, buyerID uint) ([]models.Ticket, error) {
	return s.ticketRepo.FindByBuyerID(ctx, buyerID)
}
