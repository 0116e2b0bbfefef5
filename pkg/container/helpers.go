// -----------------------------------------------------------------------------
// Container Helper Functions
// -----------------------------------------------------------------------------
// Sık kullanılan servisleri konteynerdan almak için kısayollar. Reflection
// tekrarını şu çağrılara indirger:
//
//	c.MustGet(reflect.TypeOf((*log.Logger)(nil))).(*log.Logger)
//	→ container.GetLogger(c)
// -----------------------------------------------------------------------------

package container

import (
	"database/sql"
	"log"
	"reflect"

	"github.com/biyonik/eloquence/internal/config"
	"github.com/biyonik/eloquence/pkg/cache"
	"github.com/biyonik/eloquence/pkg/database"
	"github.com/biyonik/eloquence/pkg/database/migration"
	"github.com/biyonik/eloquence/pkg/eloquence"
)

// Servis anahtarları. Interface tipleri için Elem() gerekir.
var (
	LoggerType         = reflect.TypeOf((*log.Logger)(nil))
	ConfigType         = reflect.TypeOf((*config.Config)(nil))
	DatabaseType       = reflect.TypeOf((*sql.DB)(nil))
	GrammarType        = reflect.TypeOf((*database.Grammar)(nil)).Elem()
	CacheType          = reflect.TypeOf((*cache.Cache)(nil)).Elem()
	MigratorType       = reflect.TypeOf((*migration.Migrator)(nil))
	ColumnRegistryType = reflect.TypeOf((*eloquence.ColumnRegistry)(nil))
	JoinerFactoryType  = reflect.TypeOf((*eloquence.JoinerFactory)(nil))
	RegistryType       = reflect.TypeOf((*eloquence.Registry)(nil))
)

// GetLogger retrieves the logger from the container.
func GetLogger(c *Container) *log.Logger {
	return c.MustGet(LoggerType).(*log.Logger)
}

// GetConfig retrieves the application config from the container.
//
//	cfg := container.GetConfig(c)
//	driver := cfg.DB.Driver
func GetConfig(c *Container) *config.Config {
	return c.MustGet(ConfigType).(*config.Config)
}

// GetDatabase retrieves the database connection from the container.
func GetDatabase(c *Container) *sql.DB {
	return c.MustGet(DatabaseType).(*sql.DB)
}

// GetGrammar retrieves the SQL grammar from the container.
func GetGrammar(c *Container) database.Grammar {
	return c.MustGet(GrammarType).(database.Grammar)
}

// GetCache retrieves the cache driver from the container.
func GetCache(c *Container) cache.Cache {
	return c.MustGet(CacheType).(cache.Cache)
}

// GetMigrator retrieves the schema migrator from the container.
func GetMigrator(c *Container) *migration.Migrator {
	return c.MustGet(MigratorType).(*migration.Migrator)
}

// GetColumnRegistry retrieves the cached column listing registry.
//
//	cols, err := container.GetColumnRegistry(c).ColumnListing(ctx, "users")
func GetColumnRegistry(c *Container) *eloquence.ColumnRegistry {
	return c.MustGet(ColumnRegistryType).(*eloquence.ColumnRegistry)
}

// GetJoinerFactory retrieves the joiner factory from the container.
func GetJoinerFactory(c *Container) *eloquence.JoinerFactory {
	return c.MustGet(JoinerFactoryType).(*eloquence.JoinerFactory)
}

// GetRegistry retrieves the model registry loaded from the schema file.
func GetRegistry(c *Container) *eloquence.Registry {
	return c.MustGet(RegistryType).(*eloquence.Registry)
}

// GetDatabaseAndGrammar, bağlantıyı ve grammar'ı tek çağrıda döndürür.
//
//	db, grammar := container.GetDatabaseAndGrammar(c)
//	qb := database.NewBuilder(db, grammar)
func GetDatabaseAndGrammar(c *Container) (*sql.DB, database.Grammar) {
	return GetDatabase(c), GetGrammar(c)
}
