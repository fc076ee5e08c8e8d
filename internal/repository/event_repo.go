package repository

import (
	"context"

	"github.com/Padmajasharma/Bookshow/internal/models"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindAll(ctx context.Context) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	DetachVenue(ctx context.Context, tx *gorm.DB, venueID uint) error
	SearchByName(ctx context.Context, query string) ([]models.Event, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// Transaction runs fn atomically; fn's writes commit together or not at all.
func (r *eventRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete runs inside the caller's transaction so ticket cleanup and the
// event row removal commit or roll back together.
func (r *eventRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Event{}, id).Error
}

// DetachVenue clears the venue reference of every event at the venue, leaving
// the events themselves intact. Runs inside the caller's transaction.
func (r *eventRepository) DetachVenue(ctx context.Context, tx *gorm.DB, venueID uint) error {
	return tx.WithContext(ctx).
		Model(&models.Event{}).
		Where("venue_id = ?", venueID).
		Update("venue_id", nil).Error
}

func (r *eventRepository) SearchByName(ctx context.Context, query string) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Where("name LIKE ?", "%"+query+"%").
		Order("id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
