package repository

import (
	"context"

	"github.com/Padmajasharma/Bookshow/internal/models"
	"gorm.io/gorm"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	FindByID(ctx context.Context, id uint) (*models.Venue, error)
	FindAll(ctx context.Context) ([]models.Venue, error)
	Update(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	SearchByAddress(ctx context.Context, query string) ([]models.Venue, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) FindAll(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) Update(ctx context.Context, venue *models.Venue) error {
	return r.db.WithContext(ctx).Save(venue).Error
}

// Delete runs inside the caller's transaction so detaching events and admins
// and removing the venue row commit or roll back together.
func (r *venueRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Venue{}, id).Error
}

// Transaction runs fn atomically; fn's writes commit together or not at all.
func (r *venueRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// SearchByAddress is a case-sensitive substring match, wildcards on both sides.
func (r *venueRepository) SearchByAddress(ctx context.Context, query string) ([]models.Venue, error) {
	var venues []models.Venue
	err := r.db.WithContext(ctx).
		Where("address LIKE ?", "%"+query+"%").
		Order("id ASC").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}
