package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/phenrril/enterprises/internal/domain"
)

const (
	keyPrefix = "enterprise:"
	indexKey  = "enterprises:by_created"
)

// EnterpriseRepo guarda cada registro como JSON bajo enterprise:<id> y
// mantiene un sorted set por created_at (microsegundos) para List.
type EnterpriseRepo struct {
	rdb    redis.UniversalClient
	prefix string
}

// NewEnterpriseRepo recibe un namespace opcional que se antepone a todas las claves.
func NewEnterpriseRepo(rdb redis.UniversalClient, namespace string) *EnterpriseRepo {
	return &EnterpriseRepo{rdb: rdb, prefix: namespace}
}

func (r *EnterpriseRepo) key(id string) string { return r.prefix + keyPrefix + id }
func (r *EnterpriseRepo) index() string        { return r.prefix + indexKey }

func (r *EnterpriseRepo) Save(ctx context.Context, e *domain.Enterprise) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode enterprise %s: %w", e.ID, err)
	}
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(e.ID), data, 0)
		pipe.ZAdd(ctx, r.index(), redis.Z{Score: float64(e.CreatedAt.UnixMicro()), Member: e.ID})
		return nil
	})
	return err
}

func (r *EnterpriseRepo) FindByID(ctx context.Context, id string) (*domain.Enterprise, error) {
	data, err := r.rdb.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var e domain.Enterprise
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decode enterprise %s: %w", id, err)
	}
	return &e, nil
}

// List ordena por score desc; con el mismo created_at ZREVRANGE devuelve
// los ids en orden lexicográfico inverso.
func (r *EnterpriseRepo) List(ctx context.Context) ([]domain.Enterprise, error) {
	ids, err := r.rdb.ZRevRange(ctx, r.index(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	list := make([]domain.Enterprise, 0, len(ids))
	if len(ids) == 0 {
		return list, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}
	vals, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			// índice huérfano: el valor fue borrado por fuera
			continue
		}
		var e domain.Enterprise
		if err := json.Unmarshal([]byte(s), &e); err != nil {
			return nil, fmt.Errorf("decode enterprise %s: %w", ids[i], err)
		}
		list = append(list, e)
	}
	return list, nil
}

func (r *EnterpriseRepo) Delete(ctx context.Context, id string) error {
	var del *redis.IntCmd
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, r.key(id))
		pipe.ZRem(ctx, r.index(), id)
		return nil
	})
	if err != nil {
		return err
	}
	if del.Val() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
