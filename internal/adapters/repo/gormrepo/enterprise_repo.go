package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/phenrril/enterprises/internal/domain"
)

type EnterpriseRepo struct{ db *gorm.DB }

func NewEnterpriseRepo(db *gorm.DB) *EnterpriseRepo { return &EnterpriseRepo{db: db} }

// AutoMigrate crea o ajusta la tabla enterprises.
func (r *EnterpriseRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&enterpriseRow{})
}

func (r *EnterpriseRepo) Save(ctx context.Context, e *domain.Enterprise) error {
	return r.db.WithContext(ctx).Save(toRow(e)).Error
}

func (r *EnterpriseRepo) FindByID(ctx context.Context, id string) (*domain.Enterprise, error) {
	var row enterpriseRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	e := row.toDomain()
	return &e, nil
}

// List ordena por created_at desc; los empates se resuelven por id desc,
// igual que el sorted set del store redis.
func (r *EnterpriseRepo) List(ctx context.Context) ([]domain.Enterprise, error) {
	var rows []enterpriseRow
	if err := r.db.WithContext(ctx).Order("created_at desc").Order("id desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	list := make([]domain.Enterprise, 0, len(rows))
	for i := range rows {
		list = append(list, rows[i].toDomain())
	}
	return list, nil
}

func (r *EnterpriseRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&enterpriseRow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
