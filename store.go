package main

import (
	"context"

	"github.com/go-redis/redis/v8"
	json "github.com/goccy/go-json"
)

// Redis key layout: each item is a JSON document under item:<id>, and
// items:by_date is a sorted set of ids scored by the date_added timestamp so
// listing comes back newest-first without client-side sorting.
const (
	itemKeyPrefix = "item:"
	dateIndexKey  = "items:by_date"
)

func itemKey(id string) string { return itemKeyPrefix + id }

// RedisStore provides watchlist item persistence in Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new RedisStore.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Insert stores a new item and indexes it by date_added.
func (s *RedisStore) Insert(ctx context.Context, item *Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	pipe := s.client.Pipeline()
	pipe.Set(ctx, itemKey(item.ID), data, 0)
	pipe.ZAdd(ctx, dateIndexKey, &redis.Z{
		Score:  float64(item.DateAdded.UnixNano()),
		Member: item.ID,
	})
	_, err = pipe.Exec(ctx)
	return err
}

// Get retrieves an item by id, or ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, id string) (*Item, error) {
	data, err := s.client.Get(ctx, itemKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var item Item
	if err := json.Unmarshal([]byte(data), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies a partial field patch to an existing item and returns the
// updated document, or ErrNotFound when the id does not match anything.
// date_added never changes, so the index score stays valid.
func (s *RedisStore) Update(ctx context.Context, id string, patch fieldPatch) (*Item, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.apply(item)
	data, err := json.Marshal(item)
	if err != nil {
		return nil, err
	}
	if err := s.client.Set(ctx, itemKey(id), data, 0).Err(); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item by id, or returns ErrNotFound when nothing was
// deleted.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	pipe := s.client.Pipeline()
	del := pipe.Del(ctx, itemKey(id))
	pipe.ZRem(ctx, dateIndexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	if del.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all items ordered by date_added descending.
func (s *RedisStore) List(ctx context.Context) ([]*Item, error) {
	ids, err := s.client.ZRevRange(ctx, dateIndexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*Item{}, nil
	}
	pipe := s.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, itemKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, err
	}
	items := make([]*Item, 0, len(ids))
	for _, cmd := range cmds {
		data, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, err
		}
		var item Item
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, nil
}
