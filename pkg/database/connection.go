// -----------------------------------------------------------------------------
// Database Package
// -----------------------------------------------------------------------------
// Uygulamanın veritabanına bağlanmasını sağlayan merkezi bağlantı fonksiyonu.
// Desteklenen sürücüler: mysql (go-sql-driver/mysql), sqlite (modernc.org/sqlite)
// ve postgres (lib/pq). Her sürücü için uygun Grammar GrammarFor ile seçilir.
// -----------------------------------------------------------------------------

package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// PoolConfig, bağlantı havuzu ayarlarıdır. Sıfır değerler varsayılanları kullanır.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultPoolConfig, varsayılan havuz ayarlarını döndürür.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    25,
		ConnMaxLifetime: 5 * time.Minute,
	}
}

// driverName, kullanıcıya açık sürücü adını database/sql'deki kayıtlı ada çevirir.
func driverName(driver string) (string, error) {
	switch strings.ToLower(driver) {
	case "mysql", "":
		return "mysql", nil
	case "sqlite", "sqlite3":
		return "sqlite", nil
	case "postgres", "postgresql", "pgsql":
		return "postgres", nil
	}
	return "", fmt.Errorf("unsupported database driver: %s", driver)
}

// Connect, verilen sürücü ve DSN ile veritabanına bağlanır.
//
// Adımlar:
//  1. sql.Open ile bağlantı nesnesi oluşturulur.
//  2. Havuz ayarları uygulanır.
//  3. db.Ping ile erişilebilirlik kontrol edilir; hata varsa bağlantı kapatılır.
func Connect(driver, dsn string, pool PoolConfig, logger *log.Logger) (*sql.DB, error) {
	name, err := driverName(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, err
	}

	defaults := DefaultPoolConfig()
	if pool.MaxOpenConns <= 0 {
		pool.MaxOpenConns = defaults.MaxOpenConns
	}
	if pool.MaxIdleConns <= 0 {
		pool.MaxIdleConns = defaults.MaxIdleConns
	}
	if pool.ConnMaxLifetime <= 0 {
		pool.ConnMaxLifetime = defaults.ConnMaxLifetime
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	logger.Printf("Veritabanına bağlanılıyor (%s)...", name)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s ping failed: %w", name, err)
	}

	logger.Println("✅ Veritabanı bağlantısı başarılı!")
	return db, nil
}
