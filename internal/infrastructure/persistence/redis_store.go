package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"scoreboard/internal/domain"
	"scoreboard/internal/domain/entity"
	"scoreboard/pkg/errcodes"
)

// RedisStore хранит документ слота в одном ключе Redis.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultSlot
	}

	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Load(ctx context.Context) ([]entity.Team, error) {
	doc, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSlotEmpty
		}
		return nil, domain.WrapError(err, errcodes.StorageUnavailable, "failed to read slot")
	}

	return decodeTeams(doc)
}

// Save перезаписывает слот целиком (last write wins).
func (s *RedisStore) Save(ctx context.Context, teams []entity.Team) error {
	doc, err := encodeTeams(teams)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.key, doc, 0).Err(); err != nil {
		return domain.WrapError(err, errcodes.StorageUnavailable, "failed to write slot")
	}

	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return domain.WrapError(err, errcodes.StorageUnavailable, "redis ping failed")
	}

	return nil
}
