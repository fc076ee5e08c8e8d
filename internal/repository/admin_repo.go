package repository

import (
	"context"

	"github.com/Padmajasharma/Bookshow/internal/models"
	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByID(ctx context.Context, id uint) (*models.Admin, error)
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	DetachVenue(ctx context.Context, tx *gorm.DB, venueID uint) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepository) FindByID(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// DetachVenue clears the venue reference of every admin attached to it. Runs
// inside the caller's transaction.
func (r *adminRepository) DetachVenue(ctx context.Context, tx *gorm.DB, venueID uint) error {
	return tx.WithContext(ctx).
		Model(&models.Admin{}).
		Where("venue_id = ?", venueID).
		Update("venue_id", nil).Error
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
