package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/auth-service/internal/domain"
)

const accountCacheKeyPrefix = "account:username:"

// cachedAccountRepository is a read-through Redis cache in front of another
// AccountRepository. Accounts never change after creation, so cached entries
// can never go stale; the TTL only bounds memory.
type cachedAccountRepository struct {
	inner  AccountRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedAccountRepository wraps inner with a Redis cache. Cache failures
// are logged and ignored; the store of record always wins.
func NewCachedAccountRepository(inner AccountRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) AccountRepository {
	if client == nil {
		return inner
	}
	return &cachedAccountRepository{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (r *cachedAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if err := r.inner.Create(ctx, account); err != nil {
		return err
	}
	r.put(ctx, account)
	return nil
}

func (r *cachedAccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	key := accountCacheKeyPrefix + username

	raw, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		var account domain.Account
		if jsonErr := json.Unmarshal(raw, &account); jsonErr == nil {
			return &account, nil
		}
		// unreadable cache entry; fall through to the store
		r.client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("account cache read failed", zap.Error(err))
	}

	account, err := r.inner.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	r.put(ctx, account)
	return account, nil
}

func (r *cachedAccountRepository) put(ctx context.Context, account *domain.Account) {
	raw, err := json.Marshal(account)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, accountCacheKeyPrefix+account.Username, raw, r.ttl).Err(); err != nil {
		r.logger.Warn("account cache write failed", zap.Error(err))
	}
}
