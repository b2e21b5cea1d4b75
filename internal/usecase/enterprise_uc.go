package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/phenrril/enterprises/internal/domain"
)

type EnterpriseUC struct {
	Enterprises domain.EnterpriseRepo
	Normalizer  *Normalizer
}

func NewEnterpriseUC(repo domain.EnterpriseRepo) *EnterpriseUC {
	return &EnterpriseUC{Enterprises: repo, Normalizer: NewNormalizer()}
}

func (uc *EnterpriseUC) List(ctx context.Context) ([]domain.Enterprise, error) {
	return uc.Enterprises.List(ctx)
}

func (uc *EnterpriseUC) Get(ctx context.Context, id string) (*domain.Enterprise, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrNotFound
	}
	return uc.Enterprises.FindByID(ctx, id)
}

func (uc *EnterpriseUC) Create(ctx context.Context, in CreateEnterpriseInput) (*domain.Enterprise, error) {
	n := uc.Normalizer
	if n == nil {
		n = NewNormalizer()
	}
	e, err := n.Normalize(in)
	if err != nil {
		return nil, err
	}
	if err := uc.Enterprises.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Toggle invierte Disabled y persiste el registro completo.
func (uc *EnterpriseUC) Toggle(ctx context.Context, id string) (*domain.Enterprise, error) {
	e, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Disabled = !e.Disabled
	if err := uc.Enterprises.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete devuelve el id eliminado.
func (uc *EnterpriseUC) Delete(ctx context.Context, id string) (string, error) {
	e, err := uc.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if err := uc.Enterprises.Delete(ctx, e.ID); err != nil {
		return "", err
	}
	return e.ID, nil
}

// --- Importación masiva ---

type ImportFailure struct {
	Row    int                 `json:"row"`
	Errors map[string][]string `json:"errors,omitempty"`
	Detail string              `json:"detail,omitempty"`
}

type ImportResult struct {
	Created int             `json:"created"`
	Failed  []ImportFailure `json:"failed"`
}

// ImportRow es una fila de planilla ya leída; Row es el número de fila
// en la hoja (1 = encabezado).
type ImportRow struct {
	Row   int
	Input CreateEnterpriseInput
}

// Import crea cada fila de forma independiente. Los errores de store cortan
// la importación; los de validación se reportan por fila.
func (uc *EnterpriseUC) Import(ctx context.Context, rows []ImportRow) (ImportResult, error) {
	res := ImportResult{Failed: []ImportFailure{}}
	for _, row := range rows {
		_, err := uc.Create(ctx, row.Input)
		if err == nil {
			res.Created++
			continue
		}
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			res.Failed = append(res.Failed, ImportFailure{Row: row.Row, Errors: verr.Fields})
		case errors.Is(err, domain.ErrInvalidBalance):
			res.Failed = append(res.Failed, ImportFailure{Row: row.Row, Detail: "Invalid balance"})
		default:
			return res, err
		}
	}
	return res, nil
}
