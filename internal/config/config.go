// -----------------------------------------------------------------------------
// Config Package
// -----------------------------------------------------------------------------
// Ortam değişkenlerinden okunan merkezi yapılandırma. Veritabanı bağlantısı,
// kolon listesi cache'i, Redis ve model şema dosyası ayarlarını taşır.
//
// Eksik ortam değişkenlerinde varsayılan değer kullanılır ve logger üzerinden
// uyarı yazılır.
// -----------------------------------------------------------------------------

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config, uygulamanın merkezi yapılandırma nesnesidir.
//
// Gruplar:
//   - App: Uygulama genel ayarları
//   - DB: Sürücü, DSN ve bağlantı havuzu
//   - Redis: Redis bağlantı ayarları
//   - Cache: Kolon listesi cache'i
//   - Schema: Model/ilişki tanımlarının okunacağı YAML dosyası
type Config struct {
	App struct {
		Name string
		Env  string // development, production, test
	}

	DB struct {
		Driver          string // mysql, sqlite, postgres
		DSN             string
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime time.Duration
	}

	Redis struct {
		URL      string // Doluysa Host/Port/Password/DB yerine kullanılır
		Host     string
		Port     int
		Password string
		DB       int
	}

	Cache struct {
		Driver    string        // memory, redis
		Prefix    string        // Redis key namespace
		ColumnTTL time.Duration // Kolon listelerinin cache süresi
	}

	Schema struct {
		File string
	}
}

// Loader, ortam değişkenlerini okuyan yardımcıdır. Lookup test'lerde
// değiştirilebilir; nil ise os.LookupEnv kullanılır.
type Loader struct {
	Lookup func(key string) (string, bool)
	Logger *log.Logger
}

// Load, süreç ortamından Config üretir.
//
//	cfg := config.Load()
//	db, err := database.Connect(cfg.DB.Driver, cfg.DB.DSN, cfg.Pool(), logger)
func Load() *Config {
	return (&Loader{Logger: log.Default()}).Load()
}

// Load, Loader'ın kaynağından Config üretir. Validate hatası sadece loglanır;
// çağıran taraf gerekirse Validate'i kendisi çağırır.
func (l *Loader) Load() *Config {
	cfg := &Config{}

	cfg.App.Name = l.getEnv("APP_NAME", "eloquence")
	cfg.App.Env = l.getEnv("APP_ENV", "development")

	cfg.DB.Driver = strings.ToLower(l.getEnv("DB_DRIVER", "mysql"))
	cfg.DB.DSN = l.getEnv("DB_DSN", "root:password@tcp(127.0.0.1:3306)/eloquence?parseTime=true")
	cfg.DB.MaxOpenConns = l.getEnvAsInt("DB_MAX_OPEN_CONNS", 25)
	cfg.DB.MaxIdleConns = l.getEnvAsInt("DB_MAX_IDLE_CONNS", 25)
	cfg.DB.ConnMaxLifetime = l.getEnvAsDuration("DB_CONN_MAX_LIFETIME", 300) // 5 dakika

	cfg.Redis.URL, _ = l.lookup("REDIS_URL")
	cfg.Redis.Host = l.getEnv("REDIS_HOST", "127.0.0.1")
	cfg.Redis.Port = l.getEnvAsInt("REDIS_PORT", 6379)
	cfg.Redis.Password = l.getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = l.getEnvAsInt("REDIS_DB", 0)

	cfg.Cache.Driver = strings.ToLower(l.getEnv("CACHE_DRIVER", "memory"))
	cfg.Cache.Prefix = l.getEnv("CACHE_PREFIX", "eloquence:")
	cfg.Cache.ColumnTTL = l.getEnvAsDuration("COLUMN_CACHE_TTL", 3600) // 1 saat

	cfg.Schema.File = l.getEnv("SCHEMA_FILE", "schema.yaml")

	if err := cfg.Validate(); err != nil {
		l.logger().Printf("❌ Config validation hatası: %v", err)
	}

	return cfg
}

func (l *Loader) lookup(key string) (string, bool) {
	if l.Lookup != nil {
		return l.Lookup(key)
	}
	return os.LookupEnv(key)
}

func (l *Loader) logger() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.Default()
}

func (l *Loader) getEnv(key, defaultValue string) string {
	if value, exists := l.lookup(key); exists {
		return value
	}
	l.logger().Printf("⚠️  Uyarı: %s ortam değişkeni bulunamadı, varsayılan (%s) kullanılıyor.", key, defaultValue)
	return defaultValue
}

func (l *Loader) getEnvAsInt(key string, defaultValue int) int {
	valueStr, _ := l.lookup(key)
	if valueStr == "" {
		l.logger().Printf("⚠️  Uyarı: %s ortam değişkeni bulunamadı, varsayılan (%d) kullanılıyor.", key, defaultValue)
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		l.logger().Printf("⚠️  Uyarı: %s için geçersiz değer: %s, varsayılan (%d) kullanılıyor.", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvAsDuration, saniye cinsinden okunan değeri Duration'a çevirir.
func (l *Loader) getEnvAsDuration(key string, defaultSeconds int) time.Duration {
	return time.Duration(l.getEnvAsInt(key, defaultSeconds)) * time.Second
}

// Validate, sürücü adlarını ve süreleri kontrol eder.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "mysql", "sqlite", "sqlite3", "postgres", "postgresql", "pgsql":
	default:
		return fmt.Errorf("geçersiz DB_DRIVER: %s (mysql, sqlite veya postgres olmalı)", c.DB.Driver)
	}

	switch c.Cache.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("geçersiz CACHE_DRIVER: %s (redis veya memory olmalı)", c.Cache.Driver)
	}

	if c.Cache.ColumnTTL < 0 {
		return fmt.Errorf("COLUMN_CACHE_TTL negatif olamaz")
	}

	if c.IsProduction() && c.Cache.Driver == "memory" {
		log.Println("⚠️  UYARI: Memory cache birden fazla süreç arasında paylaşılmaz!")
	}

	return nil
}

// RedisAddr, host:port biçiminde Redis adresini döndürür.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// IsProduction, uygulamanın production ortamında çalışıp çalışmadığını söyler.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// IsDevelopment, uygulamanın development ortamında çalışıp çalışmadığını söyler.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsTest, uygulamanın test ortamında çalışıp çalışmadığını söyler.
func (c *Config) IsTest() bool {
	return c.App.Env == "test"
}
