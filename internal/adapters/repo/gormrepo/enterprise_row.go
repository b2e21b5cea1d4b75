package gormrepo

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/phenrril/enterprises/internal/domain"
)

// money guarda el balance como decimal(20,2) en postgres y como texto en
// sqlite, donde NUMERIC lo convertiría a REAL y perdería dígitos.
type money struct{ decimal.Decimal }

func (money) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "text"
	}
	return "decimal(20,2)"
}

type enterpriseRow struct {
	ID         string            `gorm:"type:varchar(36);primaryKey"`
	Title      string            `gorm:"size:200;not null"`
	Phone      string            `gorm:"size:12;not null"`
	Email      string            `gorm:"size:254;not null"`
	Balance    money             `gorm:"not null"`
	Verified   bool              `gorm:"not null"`
	Address    string            `gorm:"type:text;not null"`
	TaxNumber  int64             `gorm:"not null"`
	TaxAddress domain.TaxAddress `gorm:"embedded;embeddedPrefix:tax_address_"`
	CreatedAt  time.Time         `gorm:"index"`
	Disabled   bool              `gorm:"not null"`
}

func (enterpriseRow) TableName() string { return "enterprises" }

func toRow(e *domain.Enterprise) *enterpriseRow {
	return &enterpriseRow{
		ID:         e.ID,
		Title:      e.Title,
		Phone:      e.Phone,
		Email:      e.Email,
		Balance:    money{e.Balance.Round(2)},
		Verified:   e.Verified,
		Address:    e.Address,
		TaxNumber:  e.TaxNumber,
		TaxAddress: e.TaxAddress,
		CreatedAt:  e.CreatedAt,
		Disabled:   e.Disabled,
	}
}

func (r *enterpriseRow) toDomain() domain.Enterprise {
	return domain.Enterprise{
		ID:         r.ID,
		Title:      r.Title,
		Phone:      r.Phone,
		Email:      r.Email,
		Balance:    r.Balance.Decimal,
		Verified:   r.Verified,
		Address:    r.Address,
		TaxNumber:  r.TaxNumber,
		TaxAddress: r.TaxAddress,
		CreatedAt:  r.CreatedAt.UTC(),
		Disabled:   r.Disabled,
	}
}
