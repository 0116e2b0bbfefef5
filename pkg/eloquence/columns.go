package eloquence

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/biyonik/eloquence/pkg/cache"
)

// -----------------------------------------------------------------------------
// COLUMN LISTING
// -----------------------------------------------------------------------------
// ColumnRegistry, tablo kolon listelerini cache'ler. Cache çağıran tarafından
// verilir ve tablo adıyla anahtarlanır ("columns:users"). Şema değiştiğinde
// Forget veya Flush ile açıkça geçersiz kılınır.
//
// Boş listeler cache'lenmez; henüz oluşturulmamış bir tablo sonraki
// çağrıda tekrar sorgulanır.
//
//	registry := eloquence.NewColumnRegistry(memCache, migrator, time.Hour)
//	ok, err := registry.HasColumn(ctx, "users", "profile_id")
// -----------------------------------------------------------------------------

// ColumnLister, bir tablonun kolon adlarını sırasıyla döndürür.
// *migration.Migrator bunu sağlar.
type ColumnLister interface {
	ColumnListing(table string) ([]string, error)
}

// ColumnRegistry, cache destekli kolon listesi kaydı.
type ColumnRegistry struct {
	cache  cache.Cache
	lister ColumnLister
	ttl    time.Duration

	mu     sync.Mutex
	tables map[string]struct{}
}

const columnKeyPrefix = "columns:"

// NewColumnRegistry, yeni bir ColumnRegistry oluşturur. ttl = 0 süresizdir.
func NewColumnRegistry(c cache.Cache, lister ColumnLister, ttl time.Duration) *ColumnRegistry {
	return &ColumnRegistry{
		cache:  c,
		lister: lister,
		ttl:    ttl,
		tables: make(map[string]struct{}),
	}
}

func columnKey(table string) string {
	return columnKeyPrefix + table
}

// ColumnListing, tablonun kolonlarını döndürür; önce cache'e bakar.
func (r *ColumnRegistry) ColumnListing(ctx context.Context, table string) ([]string, error) {
	var columns []string
	found, err := r.cache.Get(ctx, columnKey(table), &columns)
	if err != nil {
		return nil, fmt.Errorf("column cache read failed for %s: %w", table, err)
	}
	if found {
		r.remember(table)
		return columns, nil
	}

	columns, err = r.lister.ColumnListing(table)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return columns, nil
	}

	if err := r.cache.Set(ctx, columnKey(table), columns, r.ttl); err != nil {
		return nil, fmt.Errorf("column cache write failed for %s: %w", table, err)
	}

	r.remember(table)
	return columns, nil
}

// remember, tabloyu Flush'ın sileceği anahtarlara ekler. Kayıt başka bir
// registry tarafından yazılmış olsa da bu registry onu okuduysa Flush siler.
func (r *ColumnRegistry) remember(table string) {
	r.mu.Lock()
	r.tables[table] = struct{}{}
	r.mu.Unlock()
}

// ModelColumns, modelin tablosunun kolonlarını döndürür.
func (r *ColumnRegistry) ModelColumns(ctx context.Context, m Model) ([]string, error) {
	return r.ColumnListing(ctx, m.Table())
}

// HasColumn, tablonun verilen kolona sahip olup olmadığını söyler.
func (r *ColumnRegistry) HasColumn(ctx context.Context, table, column string) (bool, error) {
	columns, err := r.ColumnListing(ctx, table)
	if err != nil {
		return false, err
	}
	for _, c := range columns {
		if c == column {
			return true, nil
		}
	}
	return false, nil
}

// Forget, tek bir tablonun cache kaydını siler.
func (r *ColumnRegistry) Forget(ctx context.Context, table string) error {
	r.mu.Lock()
	delete(r.tables, table)
	r.mu.Unlock()

	return r.cache.Delete(ctx, columnKey(table))
}

// Flush, bu registry üzerinden yüklenen tüm tabloların cache kayıtlarını siler.
// Cache'teki diğer anahtarlara dokunmaz.
func (r *ColumnRegistry) Flush(ctx context.Context) error {
	r.mu.Lock()
	keys := make([]string, 0, len(r.tables))
	for table := range r.tables {
		keys = append(keys, columnKey(table))
	}
	r.tables = make(map[string]struct{})
	r.mu.Unlock()

	return r.cache.Delete(ctx, keys...)
}
