package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/phenrril/enterprises/internal/domain"
)

type entry struct {
	e   domain.Enterprise
	seq uint64
}

// EnterpriseRepo guarda los registros en memoria, para desarrollo local.
// Devuelve siempre copias: mutar un resultado no altera el store.
type EnterpriseRepo struct {
	mu    sync.RWMutex
	seq   uint64
	items map[string]entry
}

func NewEnterpriseRepo() *EnterpriseRepo {
	return &EnterpriseRepo{items: map[string]entry{}}
}

func (r *EnterpriseRepo) Save(ctx context.Context, e *domain.Enterprise) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[e.ID]
	if !ok {
		r.seq++
		cur.seq = r.seq
	}
	cur.e = *e
	r.items[e.ID] = cur
	return nil
}

func (r *EnterpriseRepo) FindByID(ctx context.Context, id string) (*domain.Enterprise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cur, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	e := cur.e
	return &e, nil
}

func (r *EnterpriseRepo) List(ctx context.Context) ([]domain.Enterprise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	entries := make([]entry, 0, len(r.items))
	for _, it := range r.items {
		entries = append(entries, it)
	}
	r.mu.RUnlock()

	// created_at desc; a igual timestamp, el último insertado primero
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.e.CreatedAt.Equal(b.e.CreatedAt) {
			return a.e.CreatedAt.After(b.e.CreatedAt)
		}
		return a.seq > b.seq
	})
	list := make([]domain.Enterprise, 0, len(entries))
	for _, it := range entries {
		list = append(list, it.e)
	}
	return list, nil
}

func (r *EnterpriseRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
