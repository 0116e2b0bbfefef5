// -----------------------------------------------------------------------------
// Redis Cache Driver
// -----------------------------------------------------------------------------
// Redis-based cache implementation. Birden fazla süreç aynı kolon listesi
// cache'ini paylaşacaksa kullanılır.
//
// Key'ler prefix ile namespace'lenir. Flush yalnızca prefix'e ait key'leri
// SCAN ile bulup siler; prefix boşsa tüm veritabanı (FLUSHDB) temizlenir.
// -----------------------------------------------------------------------------

package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache, Redis-based cache implementation.
type RedisCache struct {
	client *redis.Client
	logger *log.Logger
	prefix string
}

// NewRedisCache, yeni bir Redis cache instance oluşturur.
//
//	c := NewRedisCache(redisClient, logger, "eloquence:")
//	c.Set(ctx, "columns:users", cols, time.Hour)
//	// Gerçek key: "eloquence:columns:users"
func NewRedisCache(client *redis.Client, logger *log.Logger, prefix string) *RedisCache {
	if logger == nil {
		logger = log.Default()
	}
	return &RedisCache{client: client, logger: logger, prefix: prefix}
}

func (r *RedisCache) prefixKey(key string) string {
	return r.prefix + key
}

// Get, key'deki değeri dest'e çözer.
func (r *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	prefixedKey := r.prefixKey(key)

	val, err := r.client.Get(ctx, prefixedKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		r.logger.Printf("❌ Redis Get hatası [%s]: %v", prefixedKey, err)
		return false, fmt.Errorf("redis get failed: %w", err)
	}

	if err := decode(val, dest); err != nil {
		r.logger.Printf("❌ JSON decode hatası [%s]: %v", prefixedKey, err)
		return false, err
	}
	return true, nil
}

// Set, cache'e veri yazar.
func (r *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := encode(value)
	if err != nil {
		return err
	}

	prefixedKey := r.prefixKey(key)
	if err := r.client.Set(ctx, prefixedKey, data, ttl).Err(); err != nil {
		r.logger.Printf("❌ Redis Set hatası [%s]: %v", prefixedKey, err)
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Delete, cache'den veri siler.
func (r *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = r.prefixKey(key)
	}

	if err := r.client.Del(ctx, prefixed...).Err(); err != nil {
		r.logger.Printf("❌ Redis Delete hatası %v: %v", prefixed, err)
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// Flush, prefix'e ait tüm key'leri temizler.
func (r *RedisCache) Flush(ctx context.Context) error {
	if r.prefix == "" {
		if err := r.client.FlushDB(ctx).Err(); err != nil {
			r.logger.Printf("❌ Redis FlushDB hatası: %v", err)
			return fmt.Errorf("redis flushdb failed: %w", err)
		}
		r.logger.Println("⚠️  Redis database tamamen temizlendi (FlushDB)")
		return nil
	}

	iter := r.client.Scan(ctx, 0, r.prefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		r.logger.Printf("❌ Redis Scan hatası: %v", err)
		return fmt.Errorf("redis scan failed: %w", err)
	}

	if len(keys) > 0 {
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			r.logger.Printf("❌ Redis Flush hatası: %v", err)
			return fmt.Errorf("redis flush failed: %w", err)
		}
	}

	r.logger.Printf("⚠️  Redis cache temizlendi [prefix: %s, keys: %d]", r.prefix, len(keys))
	return nil
}

// Stats, Redis cache istatistiklerini döndürür.
func (r *RedisCache) Stats() map[string]interface{} {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	info, err := r.client.Info(ctx, "stats").Result()
	if err != nil {
		return map[string]interface{}{"driver": "redis", "error": err.Error()}
	}
	return map[string]interface{}{"driver": "redis", "prefix": r.prefix, "info": info}
}
