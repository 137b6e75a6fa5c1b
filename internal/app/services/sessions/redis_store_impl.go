package sessions

import (
	"context"

	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisSessionStore struct {
	client *redis.Client
	key    string
}

// NewRedisSessionStore keeps the session in redis under a fixed key, for
// shared-terminal deployments where the session must outlive the process's
// filesystem.
func NewRedisSessionStore(client *redis.Client) contracts.SessionStore {
	return &redisSessionStore{client: client, key: constvars.SessionRedisKey}
}

func (r *redisSessionStore) Save(ctx context.Context, session *models.Session) error {
	jsonValue, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := r.client.Set(ctx, r.key, jsonValue, 0).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisSessionStore) Load(ctx context.Context) (*models.Session, error) {
	data, err := r.client.Get(ctx, r.key).Result()
	if err == redis.Nil {
		return &models.Session{}, nil
	} else if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return &models.Session{}, nil
	}
	return session, nil
}

func (r *redisSessionStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
