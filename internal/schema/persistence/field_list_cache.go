package persistence

import (
	"context"
	"finance-tracker/internal/infra/cache"
	"finance-tracker/internal/infra/utils"
	"finance-tracker/internal/schema/domain"
	"finance-tracker/internal/schema/usecases"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const DefaultFieldListTTL = 5 * time.Second

type cachedField struct {
	ID        string    `msgpack:"i"`
	Owner     string    `msgpack:"o"`
	Context   string    `msgpack:"c"`
	Key       string    `msgpack:"k"`
	Label     string    `msgpack:"l"`
	Kind      string    `msgpack:"t"`
	IsCore    bool      `msgpack:"r"`
	IsEnabled bool      `msgpack:"e"`
	Order     int       `msgpack:"n"`
	CreatedAt time.Time `msgpack:"ca"`
	UpdatedAt time.Time `msgpack:"ua"`
}

func NewFieldListCache(store cache.Cache, ttl time.Duration) *CachedFieldList {
	if ttl <= 0 {
		ttl = DefaultFieldListTTL
	}
	return &CachedFieldList{
		store: store,
		ttl:   ttl,
	}
}

var _ usecases.FieldListCache = (*CachedFieldList)(nil)

// CachedFieldList keeps msgpack encoded field lists in a cache.Cache for the
// duration of one request. Without a request scope every load reads through.
type CachedFieldList struct {
	store cache.Cache
	ttl   time.Duration
}

func (c *CachedFieldList) Load(
	ctx context.Context,
	owner shareddomain.OwnerID,
	fieldContext domain.Context,
	load func(context.Context) ([]domain.FieldDefinition, error),
) ([]domain.FieldDefinition, error) {
	key, scoped := fieldListKey(ctx, owner, fieldContext)
	if !scoped {
		return load(ctx)
	}

	data, err := c.store.GetOrSet(ctx, key, c.ttl, func() ([]byte, error) {
		fields, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return encodeFieldList(fields)
	})
	if err != nil {
		return nil, err
	}

	fields, err := decodeFieldList(data)
	if err != nil {
		slog.Warn("decoding cached field list", slog.String("error", err.Error()))
		c.store.Delete(ctx, key)
		return load(ctx)
	}
	return fields, nil
}

func (c *CachedFieldList) Invalidate(ctx context.Context, owner shareddomain.OwnerID, fieldContext domain.Context) {
	if key, scoped := fieldListKey(ctx, owner, fieldContext); scoped {
		c.store.Delete(ctx, key)
	}
}

func fieldListKey(ctx context.Context, owner shareddomain.OwnerID, fieldContext domain.Context) (string, bool) {
	scope, ok := cache.RequestScope(ctx)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("fields:%s:%s:%s", scope, owner, fieldContext), true
}

func encodeFieldList(fields []domain.FieldDefinition) ([]byte, error) {
	cached := make([]cachedField, len(fields))
	for i, f := range fields {
		cached[i] = cachedField{
			ID:        f.ID.String(),
			Owner:     f.Owner.String(),
			Context:   f.Context.String(),
			Key:       f.Key.String(),
			Label:     string(f.Label),
			Kind:      string(f.Kind),
			IsCore:    f.IsCore,
			IsEnabled: f.IsEnabled,
			Order:     f.Order,
			CreatedAt: f.CreatedAt.Time,
			UpdatedAt: f.UpdatedAt.Time,
		}
	}

	data, err := msgpack.Marshal(cached)
	if err != nil {
		return nil, fmt.Errorf("encoding field list: %w", err)
	}
	return data, nil
}

func decodeFieldList(data []byte) ([]domain.FieldDefinition, error) {
	var cached []cachedField
	if err := msgpack.Unmarshal(data, &cached); err != nil {
		return nil, err
	}

	fields := make([]domain.FieldDefinition, len(cached))
	for i, f := range cached {
		fields[i] = domain.FieldDefinition{
			ID:        shareddomain.ID(f.ID),
			Owner:     shareddomain.OwnerID(f.Owner),
			Context:   domain.Context(f.Context),
			Key:       domain.Key(f.Key),
			Label:     shareddomain.DisplayName(f.Label),
			Kind:      domain.Kind(f.Kind),
			IsCore:    f.IsCore,
			IsEnabled: f.IsEnabled,
			Order:     f.Order,
			CreatedAt: utils.Time{Time: f.CreatedAt},
			UpdatedAt: utils.Time{Time: f.UpdatedAt},
		}
	}
	return fields, nil
}
