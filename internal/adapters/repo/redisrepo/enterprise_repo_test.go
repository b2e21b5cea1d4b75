package redisrepo

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/enterprises/internal/domain"
)

const testNamespace = "test:"

func newTestRepo(t *testing.T) (*EnterpriseRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewEnterpriseRepo(rdb, testNamespace), mr
}

func sample(id string, at time.Time) *domain.Enterprise {
	return &domain.Enterprise{
		ID:         id,
		Title:      "Title " + id,
		Phone:      "901234567890",
		Email:      id + "@example.com",
		Balance:    decimal.RequireFromString("99.90"),
		Verified:   true,
		Address:    "Some street 1",
		TaxNumber:  1234567890,
		TaxAddress: domain.TaxAddress{Province: "Bursa", District: "Nilufer"},
		CreatedAt:  at,
	}
}

func ids(list []domain.Enterprise) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.ID
	}
	return out
}

func TestEnterpriseRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRepo(t)
	at := time.Date(2024, 2, 2, 2, 2, 2, 0, time.UTC)

	e := sample("a", at)
	e.Balance = decimal.RequireFromString("12345678901234567.89")
	require.NoError(t, r.Save(ctx, e))

	assert.True(t, mr.Exists(testNamespace+"enterprise:a"))
	score, err := mr.ZScore(testNamespace+"enterprises:by_created", "a")
	require.NoError(t, err)
	assert.Equal(t, float64(at.UnixMicro()), score)

	got, err := r.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "12345678901234567.89", got.Balance.StringFixed(2))
	assert.True(t, got.CreatedAt.Equal(at))
	assert.Equal(t, "Bursa", got.TaxAddress.Province)
	assert.True(t, got.Verified)
}

func TestEnterpriseRepo_SaveUpdatesExisting(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)
	e := sample("a", time.Now().UTC())
	require.NoError(t, r.Save(ctx, e))

	e.Disabled = true
	require.NoError(t, r.Save(ctx, e))

	got, err := r.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.True(t, got.Disabled)

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEnterpriseRepo_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, r.Save(ctx, sample(id, base.Add(time.Duration(i)*time.Minute))))
	}

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, ids(list))
}

func TestEnterpriseRepo_ListTiesByIDDesc(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, id := range []string{"b", "a", "c"} {
		require.NoError(t, r.Save(ctx, sample(id, at)))
	}
	require.NoError(t, r.Save(ctx, sample("z", at.Add(-time.Second))))

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a", "z"}, ids(list))
}

func TestEnterpriseRepo_ListEmpty(t *testing.T) {
	r, _ := newTestRepo(t)
	list, err := r.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestEnterpriseRepo_ListSkipsOrphanIndexEntries(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRepo(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, r.Save(ctx, sample("a", base)))
	require.NoError(t, r.Save(ctx, sample("b", base.Add(time.Second))))

	mr.Del(testNamespace + "enterprise:b")

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(list))
}

func TestEnterpriseRepo_Delete(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRepo(t)
	require.NoError(t, r.Save(ctx, sample("a", time.Now().UTC())))
	require.NoError(t, r.Save(ctx, sample("b", time.Now().UTC())))

	require.NoError(t, r.Delete(ctx, "b"))
	assert.False(t, mr.Exists(testNamespace+"enterprise:b"))
	members, err := mr.ZMembers(testNamespace + "enterprises:by_created")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, members)

	_, err = r.FindByID(ctx, "b")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, "b"), domain.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, "never-existed"), domain.ErrNotFound)
}

func TestEnterpriseRepo_FindCorruptValue(t *testing.T) {
	r, mr := newTestRepo(t)
	require.NoError(t, mr.Set(testNamespace+"enterprise:bad", "{not json"))

	_, err := r.FindByID(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
