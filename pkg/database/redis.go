package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions, kolon listesi cache'inin kullandığı Redis bağlantısını tarif
// eder. PoolConfig'in Redis karşılığıdır.
type RedisOptions struct {
	Addr        string
	Password    string
	DB          int
	PoolSize    int
	MaxRetries  int // -1: retry yok
	DialTimeout time.Duration
	PingTimeout time.Duration
}

// DefaultRedisOptions, yerel bir Redis için makul değerler döndürür.
func DefaultRedisOptions() RedisOptions {
	return RedisOptions{
		Addr:        "127.0.0.1:6379",
		PoolSize:    10,
		MaxRetries:  3,
		DialTimeout: 5 * time.Second,
		PingTimeout: 5 * time.Second,
	}
}

// RedisOptionsFromURL, "redis://:secret@cache:6379/2" biçimindeki bir URL'den
// seçenek üretir. URL'de olmayan alanlar varsayılanlardan gelir.
func RedisOptionsFromURL(rawURL string) (RedisOptions, error) {
	parsed, err := redis.ParseURL(rawURL)
	if err != nil {
		return RedisOptions{}, fmt.Errorf("invalid redis url: %w", err)
	}

	opts := DefaultRedisOptions()
	opts.Addr = parsed.Addr
	opts.Password = parsed.Password
	opts.DB = parsed.DB
	return opts, nil
}

func (o RedisOptions) client() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        o.Addr,
		Password:    o.Password,
		DB:          o.DB,
		PoolSize:    o.PoolSize,
		MaxRetries:  o.MaxRetries,
		DialTimeout: o.DialTimeout,
	})
}

// ConnectRedis, Redis client'ını açar ve PING ile doğrular. Connect gibi,
// başarısız bağlantıda client kapatılır ve sarmalanmış hata döner.
//
//	client, err := database.ConnectRedis(ctx, database.DefaultRedisOptions(), logger)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
func ConnectRedis(ctx context.Context, opts RedisOptions, logger *log.Logger) (*redis.Client, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("redis connection failed: empty address")
	}

	client := opts.client()

	timeout := opts.PingTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Printf("❌ Redis bağlantı hatası [%s]: %v", opts.Addr, err)
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	logger.Printf("✅ Redis bağlantısı başarılı: %s (DB: %d)", opts.Addr, opts.DB)
	return client, nil
}
