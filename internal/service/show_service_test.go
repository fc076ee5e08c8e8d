package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Padmajasharma/Bookshow/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func sampleShow() *models.Event {
	venueID := uint(2)
	return &models.Event{
		Name:        "Evening Concert",
		StartTime:   time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 9, 1, 22, 0, 0, 0, time.UTC),
		VenueID:     &venueID,
		TicketPrice: 49.50,
	}
}

func TestCreateShow_Success(t *testing.T) {
	events := &mockEventRepo{
		createFn: func(ctx context.Context, event *models.Event) error {
			event.ID = 1
			return nil
		},
	}

	svc := NewShowService(events, &mockTicketRepo{}, nil)
	show := sampleShow()

	err := svc.CreateShow(context.Background(), show)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), show.ID)
}

func TestGetShow_NotFound(t *testing.T) {
	events := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return nil, errors.New("record not found")
		},
	}

	svc := NewShowService(events, &mockTicketRepo{}, nil)
	_, err := svc.GetShow(context.Background(), 999)

	assert.ErrorIs(t, err, ErrShowNotFound)
}

func TestUpdateShow_AppliesMutation(t *testing.T) {
	var saved *models.Event
	events := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			show := sampleShow()
			show.ID = id
			return show, nil
		},
		updateFn: func(ctx context.Context, event *models.Event) error {
			saved = event
			return nil
		},
	}

	svc := NewShowService(events, &mockTicketRepo{}, nil)
	updated, err := svc.UpdateShow(context.Background(), 1, func(e *models.Event) {
		e.Name = "Matinee Concert"
		e.TicketPrice = 30
	})

	assert.NoError(t, err)
	assert.Equal(t, saved, updated)
	assert.Equal(t, "Matinee Concert", saved.Name)
	assert.Equal(t, 30.0, saved.TicketPrice)
}

// Deleting a show removes its tickets and the show row together; tickets of
// other shows are never touched.
func TestDeleteShow_CascadesTickets(t *testing.T) {
	var ticketsDeletedFor []uint
	var eventsDeleted []uint

	events := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			show := sampleShow()
			show.ID = id
			return show, nil
		},
		deleteFn: func(ctx context.Context, tx *gorm.DB, id uint) error {
			eventsDeleted = append(eventsDeleted, id)
			return nil
		},
	}
	tickets := &mockTicketRepo{
		deleteByEventIDFn: func(ctx context.Context, tx *gorm.DB, eventID uint) error {
			ticketsDeletedFor = append(ticketsDeletedFor, eventID)
			return nil
		},
	}

	svc := NewShowService(events, tickets, nil)
	err := svc.DeleteShow(context.Background(), 9)

	assert.NoError(t, err)
	assert.Equal(t, []uint{9}, ticketsDeletedFor)
	assert.Equal(t, []uint{9}, eventsDeleted)
}

func TestDeleteShow_TicketCleanupFailureAbortsEventDelete(t *testing.T) {
	var eventDeleted bool
	events := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			show := sampleShow()
			show.ID = id
			return show, nil
		},
		deleteFn: func(ctx context.Context, tx *gorm.DB, id uint) error {
			eventDeleted = true
			return nil
		},
	}
	tickets := &mockTicketRepo{
		deleteByEventIDFn: func(ctx context.Context, tx *gorm.DB, eventID uint) error {
			return errors.New("db connection failed")
		},
	}

	svc := NewShowService(events, tickets, nil)
	err := svc.DeleteShow(context.Background(), 9)

	assert.Error(t, err)
	assert.False(t, eventDeleted)
}

func TestDeleteShow_NotFound(t *testing.T) {
	events := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return nil, errors.New("record not found")
		},
	}

	svc := NewShowService(events, &mockTicketRepo{}, nil)
	err := svc.DeleteShow(context.Background(), 999)

	assert.ErrorIs(t, err, ErrShowNotFound)
}
