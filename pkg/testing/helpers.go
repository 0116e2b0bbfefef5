// -----------------------------------------------------------------------------
// Testing Helpers - Laravel-Inspired Testing Utilities
// -----------------------------------------------------------------------------
// Bu package, veritabanına dokunan testleri kolaylaştıran helper'lar sağlar.
//
// Özellikler:
// - RefreshDatabase: her test için temiz bir in-memory SQLite veritabanı
// - DatabaseTransaction: her zaman geri alınan transaction
// - Factory: varsayılan değerlerle satır üretme ve ekleme
// - ColumnListerStub: kolon listesi kaynağı yerine geçen sayaçlı stub
//
// Kullanım:
//
//	func TestJoinedQuery(t *testing.T) {
//	    db, migrator := etesting.RefreshDatabase(t)
//	    require.NoError(t, migrator.CreateTable("users", func(b *migration.Blueprint) {
//	        b.ID()
//	        b.String("name", 255)
//	    }))
//	    etesting.NewFactory("users", map[string]interface{}{"name": "Ada"}).Create(t, db)
//	}
// -----------------------------------------------------------------------------

package testing

import (
	"database/sql"
	"io"
	"log"
	"sync"
	"testing"

	"github.com/biyonik/eloquence/pkg/database"
	"github.com/biyonik/eloquence/pkg/database/migration"
)

// Logger, test çıktısını kirletmeyen bir logger döndürür.
func Logger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// -----------------------------------------------------------------------------
// Database Testing Traits
// -----------------------------------------------------------------------------

// RefreshDatabase, boş bir in-memory SQLite veritabanı ve ona bağlı bir
// Migrator döndürür. Her :memory: bağlantısı ayrı bir veritabanı olduğu için
// havuz tek bağlantıyla sınırlanır. Veritabanı test sonunda kapatılır.
func RefreshDatabase(t *testing.T) (*sql.DB, *migration.Migrator) {
	t.Helper()

	logger := Logger()
	db, err := database.Connect("sqlite", ":memory:", database.PoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}, logger)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db, migration.NewMigrator(db, migration.NewSQLiteGrammar(), logger)
}

// DatabaseTransaction, callback'i bir transaction içinde çalıştırır ve
// sonunda her durumda geri alır.
func DatabaseTransaction(t *testing.T, db *sql.DB, callback func(*database.Transaction)) {
	t.Helper()

	tx, err := database.BeginTransaction(db, database.NewSQLiteGrammar(), Logger())
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	callback(tx)
}

// -----------------------------------------------------------------------------
// Factory Pattern for Test Data
// -----------------------------------------------------------------------------

// Factory, bir tablo için varsayılan kolon değerlerini tutar.
type Factory struct {
	table    string
	defaults map[string]interface{}
}

// NewFactory creates a new factory for the table.
func NewFactory(table string, defaults map[string]interface{}) *Factory {
	return &Factory{table: table, defaults: defaults}
}

// Make, varsayılanların üzerine override'ları yazarak yeni bir satır üretir.
func (f *Factory) Make(overrides map[string]interface{}) map[string]interface{} {
	row := make(map[string]interface{}, len(f.defaults)+len(overrides))
	for k, v := range f.defaults {
		row[k] = v
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

// Create, her override için bir satırı SQLite grammar'ı ile ekler.
// Override verilmezse varsayılanlarla tek satır eklenir.
func (f *Factory) Create(t *testing.T, db *sql.DB, overrides ...map[string]interface{}) {
	t.Helper()

	if len(overrides) == 0 {
		overrides = []map[string]interface{}{nil}
	}

	for _, o := range overrides {
		qb := database.NewBuilder(db, database.NewSQLiteGrammar()).Table(f.table)
		if _, err := qb.ExecInsert(f.Make(o)); err != nil {
			t.Fatalf("Failed to insert into %s: %v", f.table, err)
		}
	}
}

// -----------------------------------------------------------------------------
// Stubs
// -----------------------------------------------------------------------------

// ColumnListerStub, tablo → kolon eşlemesinden okuyan ve çağrıları sayan bir
// kolon listesi kaynağıdır. Err doluysa her çağrı onu döndürür.
type ColumnListerStub struct {
	mu     sync.Mutex
	Tables map[string][]string
	Err    error
	calls  map[string]int
}

// NewColumnListerStub creates a stub with the given tables.
func NewColumnListerStub(tables map[string][]string) *ColumnListerStub {
	return &ColumnListerStub{Tables: tables, calls: make(map[string]int)}
}

// ColumnListing returns a copy of the table's columns.
func (s *ColumnListerStub) ColumnListing(table string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls[table]++
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]string{}, s.Tables[table]...), nil
}

// AddColumn, tabloya sonradan bir kolon ekler (şema değişikliği taklidi).
func (s *ColumnListerStub) AddColumn(table, column string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Tables[table] = append(s.Tables[table], column)
}

// Calls, tablo için yapılan ColumnListing çağrısı sayısını döndürür.
func (s *ColumnListerStub) Calls(table string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[table]
}

// -----------------------------------------------------------------------------
// Custom Assertions
// -----------------------------------------------------------------------------

// AssertRowCount, tablodaki satır sayısını kontrol eder.
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int64) {
	t.Helper()

	total, err := database.NewBuilder(db, database.NewSQLiteGrammar()).Table(table).Count()
	if err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	if total != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, total)
	}
}
