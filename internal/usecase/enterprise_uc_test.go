package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/enterprises/internal/adapters/repo/memory"
	"github.com/phenrril/enterprises/internal/domain"
)

func newTestUC() *EnterpriseUC {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var ticks int
	var ids int
	uc := NewEnterpriseUC(memory.NewEnterpriseRepo())
	uc.Normalizer = &Normalizer{
		NewID: func() string {
			ids++
			return "ent-" + string(rune('a'+ids-1))
		},
		Now: func() time.Time {
			ticks++
			return start.Add(time.Duration(ticks) * time.Minute)
		},
	}
	return uc
}

func TestEnterpriseUC_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	uc := newTestUC()

	created, err := uc.Create(ctx, validInput())
	require.NoError(t, err)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
	assert.True(t, created.Balance.Equal(got.Balance))
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, created.TaxAddress, got.TaxAddress)
}

func TestEnterpriseUC_CreateInvalidDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	uc := newTestUC()

	in := validInput()
	in.Phone = "1234567890"
	_, err := uc.Create(ctx, in)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEnterpriseUC_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	uc := newTestUC()

	var ids []string
	for _, title := range []string{"A corp", "B corp", "C corp"} {
		in := validInput()
		in.Title = title
		e, err := uc.Create(ctx, in)
		require.NoError(t, err)
		ids = append(ids, e.ID)
	}

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"C corp", "B corp", "A corp"}, []string{list[0].Title, list[1].Title, list[2].Title})
	assert.Equal(t, ids[2], list[0].ID)
}

func TestEnterpriseUC_ToggleTwiceRestores(t *testing.T) {
	ctx := context.Background()
	uc := newTestUC()
	e, err := uc.Create(ctx, validInput())
	require.NoError(t, err)

	first, err := uc.Toggle(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, first.Disabled)

	stored, err := uc.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, stored.Disabled)

	second, err := uc.Toggle(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, second.Disabled)
	assert.True(t, e.CreatedAt.Equal(second.CreatedAt))
}

func TestEnterpriseUC_ToggleMissing(t *testing.T) {
	_, err := newTestUC().Toggle(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEnterpriseUC_Delete(t *testing.T) {
	ctx := context.Background()
	uc := newTestUC()
	e, err := uc.Create(ctx, validInput())
	require.NoError(t, err)

	id, err := uc.Delete(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, id)

	_, err = uc.Get(ctx, e.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Delete(ctx, e.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEnterpriseUC_GetBlankID(t *testing.T) {
	_, err := newTestUC().Get(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEnterpriseUC_Import(t *testing.T) {
	ctx := context.Background()
	uc := newTestUC()

	bad := validInput()
	bad.TaxNumber = "123"
	rows := []ImportRow{
		{Row: 2, Input: validInput()},
		{Row: 3, Input: bad},
		{Row: 4, Input: validInput()},
	}
	res, err := uc.Import(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, 3, res.Failed[0].Row)
	assert.Contains(t, res.Failed[0].Errors, "tax_number")

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

type failingRepo struct{ domain.EnterpriseRepo }

func (failingRepo) Save(context.Context, *domain.Enterprise) error { return errors.New("store down") }

func TestEnterpriseUC_ImportStopsOnStoreError(t *testing.T) {
	uc := newTestUC()
	uc.Enterprises = failingRepo{}
	_, err := uc.Import(context.Background(), []ImportRow{{Row: 2, Input: validInput()}})
	assert.EqualError(t, err, "store down")
}
