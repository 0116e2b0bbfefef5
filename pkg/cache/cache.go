// -----------------------------------------------------------------------------
// Cache Interface
// -----------------------------------------------------------------------------
// Laravel-style cache interface tanımı.
//
// Model kolon listeleri gibi küçük ve nadiren değişen verileri saklamak için
// kullanılır. Değerler JSON olarak kodlanır; okuma tarafı hedef tipi verir,
// böylece Redis'ten dönen değerler de doğru tipe çözülür.
//
// Driver'lar: Memory, Redis
// -----------------------------------------------------------------------------

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedDriver, bilinmeyen bir cache driver adı verildiğinde döner.
var ErrUnsupportedDriver = errors.New("cache: unsupported driver")

// Cache, tüm cache driver'ların implement etmesi gereken interface.
//
//	var columns []string
//	found, err := c.Get(ctx, "columns:users", &columns)
//	if !found {
//	    // Cache miss
//	}
type Cache interface {
	// Get, key'deki değeri dest'e çözer. Key yoksa (false, nil) döner.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set, değeri ttl süresince saklar. ttl = 0 süresiz demektir.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete, verilen key'leri siler. Olmayan key'ler sessizce atlanır.
	Delete(ctx context.Context, keys ...string) error

	// Flush, bu cache'e ait tüm key'leri siler.
	Flush(ctx context.Context) error
}

// Stats, cache istatistikleri interface.
// Driver'lar opsiyonel olarak implement eder.
type Stats interface {
	Stats() map[string]interface{}
}

// New, driver adına göre bir cache üretir. "redis" için client zorunludur.
func New(driver string, opts Options) (Cache, error) {
	switch driver {
	case "", "memory":
		return NewMemoryCache(opts.Logger), nil
	case "redis":
		if opts.Redis == nil {
			return nil, fmt.Errorf("%w: redis client is nil", ErrUnsupportedDriver)
		}
		return NewRedisCache(opts.Redis, opts.Logger, opts.Prefix), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, driver)
}
