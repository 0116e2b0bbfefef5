// -----------------------------------------------------------------------------
// Memory Cache Driver
// -----------------------------------------------------------------------------
// In-memory cache implementation (non-persistent).
//
// Tek süreçli kullanım, testler ve development için. Değerler Redis driver'ı
// ile aynı şekilde JSON olarak saklanır; iki driver aynı tipleri döndürür.
// Süresi dolan kayıtlar okuma anında yok sayılır, arka plan goroutine'i
// periyodik olarak temizler. Close ile goroutine durdurulur.
// -----------------------------------------------------------------------------

package cache

import (
	"context"
	"log"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func (e *memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCache, in-memory cache implementation.
type MemoryCache struct {
	store  map[string]*memoryEntry
	mu     sync.RWMutex
	logger *log.Logger
	done   chan struct{}
	once   sync.Once
}

// NewMemoryCache, yeni bir Memory cache instance oluşturur.
func NewMemoryCache(logger *log.Logger) *MemoryCache {
	if logger == nil {
		logger = log.Default()
	}

	mc := &MemoryCache{
		store:  make(map[string]*memoryEntry),
		logger: logger,
		done:   make(chan struct{}),
	}

	go mc.startGarbageCollection(5 * time.Minute)

	logger.Println("✅ Memory cache başlatıldı")
	return mc
}

// Get, key'deki değeri dest'e çözer.
func (m *MemoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.RLock()
	entry, exists := m.store[key]
	m.mu.RUnlock()

	if !exists || entry.expired(time.Now()) {
		return false, nil
	}

	if err := decode(entry.data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set, cache'e veri yazar.
func (m *MemoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := encode(value)
	if err != nil {
		return err
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	m.mu.Lock()
	m.store[key] = &memoryEntry{data: data, expiresAt: expiresAt}
	m.mu.Unlock()
	return nil
}

// Delete, cache'den veri siler.
func (m *MemoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.store, key)
	}
	return nil
}

// Flush, tüm cache'i temizler.
func (m *MemoryCache) Flush(_ context.Context) error {
	m.mu.Lock()
	m.store = make(map[string]*memoryEntry)
	m.mu.Unlock()

	m.logger.Println("⚠️  Memory cache tamamen temizlendi")
	return nil
}

// Size, cache'deki toplam entry sayısını döndürür.
func (m *MemoryCache) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}

// Stats, memory cache istatistiklerini döndürür.
func (m *MemoryCache) Stats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := time.Now()
	valid := 0
	for _, entry := range m.store {
		if !entry.expired(now) {
			valid++
		}
	}

	return map[string]interface{}{
		"driver":       "memory",
		"total_keys":   len(m.store),
		"valid_keys":   valid,
		"expired_keys": len(m.store) - valid,
	}
}

// Close, garbage collection goroutine'ini durdurur.
func (m *MemoryCache) Close() error {
	m.once.Do(func() { close(m.done) })
	return nil
}

func (m *MemoryCache) startGarbageCollection(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanExpiredEntries()
		case <-m.done:
			return
		}
	}
}

func (m *MemoryCache) cleanExpiredEntries() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	cleaned := 0
	for key, entry := range m.store {
		if entry.expired(now) {
			delete(m.store, key)
			cleaned++
		}
	}

	if cleaned > 0 {
		m.logger.Printf("🧹 Memory cache garbage collection: %d expired entry silindi", cleaned)
	}
	return cleaned
}
