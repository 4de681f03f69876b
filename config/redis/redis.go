package redis

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var Rdb *redis.Client

const cacheTTL = 15 * time.Minute

func Init(addr string, password string) error {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Rdb.Ping(ctx).Err(); err != nil {
		log.Println("Error while pinging redis: ", err)
		return err
	}
	return nil
}

func Close() error {
	if Rdb == nil {
		return nil
	}
	err := Rdb.Close()
	Rdb = nil
	return err
}

/*
* Marshal the value as JSON and set with the default TTL
* Cache failures are logged by callers, never fatal
 */
func SetCache(ctx context.Context, key string, value interface{}) error {
	if Rdb == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Rdb.Set(ctx, key, raw, cacheTTL).Err()
}

// GetCache reports found=false on a miss or when the cache is disabled.
func GetCache(ctx context.Context, key string, dest interface{}) (bool, error) {
	if Rdb == nil {
		return false, nil
	}
	raw, err := Rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func DeleteCache(ctx context.Context, key string) error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Del(ctx, key).Err()
}
