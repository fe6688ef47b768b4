package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "hospital-system/pkg/errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const loginAttemptsKeyPrefix = "login_attempts:"

type CacheRepositoryInterface interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	LoginAttempts(ctx context.Context, email string) (int64, error)
	IncrementLoginAttempts(ctx context.Context, email string, lockout time.Duration) (int64, error)
	ResetLoginAttempts(ctx context.Context, email string) error
}

type CacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(client *redis.Client, logger *zap.Logger) CacheRepositoryInterface {
	return &CacheRepository{client: client, logger: logger}
}

func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrNotFound
	}
	return value, err
}

func (r *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// LoginAttempts renvoie le nombre d'échecs enregistrés pour l'adresse donnée,
// zéro quand le compteur a expiré.
func (r *CacheRepository) LoginAttempts(ctx context.Context, email string) (int64, error) {
	attempts, err := r.client.Get(ctx, loginAttemptsKeyPrefix+email).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return attempts, err
}

// IncrementLoginAttempts compte les échecs de connexion; le compteur expire
// tout seul après la fenêtre de verrouillage.
func (r *CacheRepository) IncrementLoginAttempts(ctx context.Context, email string, lockout time.Duration) (int64, error) {
	key := loginAttemptsKeyPrefix + email
	attempts, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", key, err)
	}
	if attempts == 1 {
		if err := r.client.Expire(ctx, key, lockout).Err(); err != nil {
			return attempts, err
		}
	}
	return attempts, nil
}

func (r *CacheRepository) ResetLoginAttempts(ctx context.Context, email string) error {
	return r.client.Del(ctx, loginAttemptsKeyPrefix+email).Err()
}
