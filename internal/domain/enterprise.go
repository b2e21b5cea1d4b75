package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type TaxAddress struct {
	Province string `gorm:"size:100"`
	District string `gorm:"size:100"`
}

// Enterprise es el registro de cuenta empresarial. ID, CreatedAt y Verified
// se asignan solo al crear; Disabled cambia solo vía toggle.
type Enterprise struct {
	ID         string
	Title      string
	Phone      string
	Email      string
	Balance    decimal.Decimal
	Verified   bool
	Address    string
	TaxNumber  int64
	TaxAddress TaxAddress
	CreatedAt  time.Time
	Disabled   bool
}

type EnterpriseRepo interface {
	Save(ctx context.Context, e *Enterprise) error
	FindByID(ctx context.Context, id string) (*Enterprise, error)
	// List devuelve todos los registros, más recientes primero.
	List(ctx context.Context) ([]Enterprise, error)
	Delete(ctx context.Context, id string) error
}
