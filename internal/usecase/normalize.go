package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/phenrril/enterprises/internal/domain"
)

// CreateEnterpriseInput es el payload no confiable de alta. Los campos
// asignados por el servidor (id, verified, created_at, disabled) no existen acá.
type CreateEnterpriseInput struct {
	Title      string           `json:"title" validate:"required,notblank,min=2,max=200"`
	Phone      string           `json:"phone" validate:"required,phone90"`
	Email      string           `json:"email" validate:"required,notblank,email"`
	Balance    string           `json:"balance" validate:"required,balance"`
	Address    string           `json:"address" validate:"required,notblank,min=5"`
	TaxNumber  string           `json:"tax_number" validate:"required,len=10,number"`
	TaxAddress *TaxAddressInput `json:"tax_address" validate:"required"`
}

type TaxAddressInput struct {
	Province string `json:"province" validate:"required,notblank,min=2,max=100"`
	District string `json:"district" validate:"required,notblank,min=2,max=100"`
}

var (
	phoneRe   = regexp.MustCompile(`^90\d{10}$`)
	balanceRe = regexp.MustCompile(`^\d+([.,]\d{1,2})?$`)
)

// maxBalance es el mayor valor que entra en la columna decimal(20,2).
var maxBalance = decimal.RequireFromString("999999999999999999.99")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("phone90", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	// required acepta "   "; el trim posterior dejaría el campo vacío
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("balance", func(fl validator.FieldLevel) bool {
		return balanceRe.MatchString(fl.Field().String())
	})
	return v
}

// Normalizer valida y canonicaliza un CreateEnterpriseInput. NewID y Now
// se pueden reemplazar en tests para obtener ids y timestamps deterministas.
type Normalizer struct {
	NewID func() string
	Now   func() time.Time
}

func NewNormalizer() *Normalizer {
	return &Normalizer{NewID: uuid.NewString, Now: time.Now}
}

func (n *Normalizer) Normalize(in CreateEnterpriseInput) (*domain.Enterprise, error) {
	if verr := ValidateInput(in); verr != nil {
		return nil, verr
	}

	balance, err := ParseBalance(in.Balance)
	if err != nil {
		return nil, err
	}

	taxNumber, err := strconv.ParseInt(in.TaxNumber, 10, 64)
	if err != nil {
		// el tag number ya garantiza dígitos; solo falla por overflow
		verr := domain.NewValidationError()
		verr.Add("tax_number", "must be exactly 10 digits")
		return nil, verr
	}

	newID := n.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	now := n.Now
	if now == nil {
		now = time.Now
	}

	return &domain.Enterprise{
		ID:        newID(),
		Title:     strings.TrimSpace(in.Title),
		Phone:     in.Phone,
		Email:     strings.TrimSpace(in.Email),
		Balance:   balance,
		Verified:  true,
		Address:   strings.TrimSpace(in.Address),
		TaxNumber: taxNumber,
		TaxAddress: domain.TaxAddress{
			Province: strings.TrimSpace(in.TaxAddress.Province),
			District: strings.TrimSpace(in.TaxAddress.District),
		},
		CreatedAt: now().UTC(),
		Disabled:  false,
	}, nil
}

// ValidateInput corre todas las reglas estructurales y devuelve nil o un
// *domain.ValidationError con todos los campos que fallaron.
func ValidateInput(in CreateEnterpriseInput) *domain.ValidationError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verr := domain.NewValidationError()
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		verr.Add("", err.Error())
		return verr
	}
	for _, fe := range ves {
		verr.Add(fieldPath(fe), fieldMessage(fe))
	}
	return verr
}

// ParseBalance acepta "," o "." como separador decimal, parsea sin
// depender de locale y redondea a 2 decimales alejándose de cero. Valores
// con más de 18 dígitos enteros no entran en el store y se rechazan.
func ParseBalance(raw string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if s == "" {
		return decimal.Zero, domain.ErrInvalidBalance
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", domain.ErrInvalidBalance, err)
	}
	d = d.Round(2)
	if d.Abs().GreaterThan(maxBalance) {
		return decimal.Zero, fmt.Errorf("%w: %s out of range", domain.ErrInvalidBalance, s)
	}
	return d, nil
}

// fieldPath quita el nombre del struct raíz: "CreateEnterpriseInput.tax_address.province" -> "tax_address.province".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "number":
		return "must contain only digits"
	case "email":
		return "must be a valid email address"
	case "phone90":
		return "must start with 90 and have 12 digits total"
	case "balance":
		return "must be a non-negative number with at most two decimal places"
	}
	return "is invalid (" + fe.Tag() + ")"
}
