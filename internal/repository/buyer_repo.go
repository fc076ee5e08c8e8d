package repository

import (
	"context"

	"github.com/Padmajasharma/Bookshow/internal/models"
	"gorm.io/gorm"
)

type BuyerRepository interface {
	Create(ctx context.Context, buyer *models.Buyer) error
	FindByID(ctx context.Context, id uint) (*models.Buyer, error)
	FindByEmail(ctx context.Context, email string) (*models.Buyer, error)
}

type buyerRepository struct {
	db *gorm.DB
}

func NewBuyerRepository(db *gorm.DB) BuyerRepository {
	return &buyerRepository{db: db}
}

func (r *buyerRepository) Create(ctx context.Context, buyer *models.Buyer) error {
	return r.db.WithContext(ctx).Create(buyer).Error
}

func (r *buyerRepository) FindByID(ctx context.Context, id uint) (*models.Buyer, error) {
	var buyer models.Buyer
	if err := r.db.WithContext(ctx).First(&buyer, id).Error; err != nil {
		return nil, err
	}
	return &buyer, nil
}

// FindByEmail returns the earliest match; buyer emails carry no unique
// constraint in the schema as given.
func (r *buyerRepository) FindByEmail(ctx context.Context, email string) (*models.Buyer, error) {
	var buyer models.Buyer
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("id ASC").
		First(&buyer).Error
	if err != nil {
		return nil, err
	}
	return &buyer, nil
}
