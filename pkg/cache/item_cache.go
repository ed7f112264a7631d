package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ItemCacheTTL is the time-to-live for cached catalog items.
	ItemCacheTTL = 24 * time.Hour

	itemCacheKeyPrefix = "warehouse:item"
)

// CachedItem is the denormalized catalog read model stored in Redis.
// Fields are stored as a Redis hash; the gate is flattened to the frozen flag
// plus an optional RFC3339 no_update_after deadline, and data is stored as a
// JSON blob.
type CachedItem struct {
	ItemID            uint64            `json:"item_id"`
	Name              string            `json:"name"`
	TotalQuantity     uint64            `json:"total_quantity"`
	AvailableQuantity uint64            `json:"available_quantity"`
	Frozen            bool              `json:"frozen"`
	NoUpdateAfter     string            `json:"no_update_after,omitempty"`
	Data              map[string]string `json:"data"`
}

// ItemCache provides structured read/write operations for catalog item cache
// entries. Key format: "warehouse:item:{itemID}"
type ItemCache struct {
	client *RedisClient
}

// NewItemCache creates a new ItemCache backed by the given RedisClient.
func NewItemCache(r *RedisClient) *ItemCache {
	return &ItemCache{client: r}
}

// Get retrieves a cached item by id.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ItemCache) Get(ctx context.Context, itemID uint64) (*CachedItem, error) {
	key := c.key(itemID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	totalQty, err := strconv.ParseUint(vals["total_quantity"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse total_quantity: %w", err)
	}
	availableQty, err := strconv.ParseUint(vals["available_quantity"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse available_quantity: %w", err)
	}

	data := map[string]string{}
	if raw := vals["data"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, fmt.Errorf("cache parse data: %w", err)
		}
	}

	return &CachedItem{
		ItemID:            itemID,
		Name:              vals["name"],
		TotalQuantity:     totalQty,
		AvailableQuantity: availableQty,
		Frozen:            vals["frozen"] == "1",
		NoUpdateAfter:     vals["no_update_after"],
		Data:              data,
	}, nil
}

// Set writes a cached item as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ItemCache) Set(ctx context.Context, item *CachedItem) error {
	rawData, err := json.Marshal(item.Data)
	if err != nil {
		return fmt.Errorf("cache marshal data: %w", err)
	}

	frozen := "0"
	if item.Frozen {
		frozen = "1"
	}

	key := c.key(item.ItemID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"name", item.Name,
		"total_quantity", strconv.FormatUint(item.TotalQuantity, 10),
		"available_quantity", strconv.FormatUint(item.AvailableQuantity, 10),
		"frozen", frozen,
		"no_update_after", item.NoUpdateAfter,
		"data", string(rawData),
	)
	pipe.Expire(ctx, key, ItemCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached item.
func (c *ItemCache) Delete(ctx context.Context, itemID uint64) error {
	if err := c.client.Client().Del(ctx, c.key(itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "warehouse:item:{itemID}"
func (c *ItemCache) key(itemID uint64) string {
	return fmt.Sprintf("%s:%d", itemCacheKeyPrefix, itemID)
}
