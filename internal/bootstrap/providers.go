// -----------------------------------------------------------------------------
// Service Providers
// -----------------------------------------------------------------------------
// Uygulama servislerini DI konteynerine kaydeder. Servisler ilk istendiklerinde
// oluşturulur; örneğin sadece SQL üreten bir komut veritabanına hiç bağlanmaz.
//
//	c := container.New()
//	bootstrap.Register(c, cfg, logger)
//	factory := container.GetJoinerFactory(c)
// -----------------------------------------------------------------------------

package bootstrap

import (
	"context"
	"database/sql"
	"log"

	"github.com/biyonik/eloquence/internal/config"
	"github.com/biyonik/eloquence/pkg/cache"
	"github.com/biyonik/eloquence/pkg/container"
	"github.com/biyonik/eloquence/pkg/database"
	"github.com/biyonik/eloquence/pkg/database/migration"
	"github.com/biyonik/eloquence/pkg/eloquence"
)

// Register, config ve logger'ı örnek olarak, geri kalan servisleri fabrika
// olarak kaydeder.
func Register(c *container.Container, cfg *config.Config, logger *log.Logger) {
	c.Instance(container.ConfigType, cfg)
	c.Instance(container.LoggerType, logger)

	c.Register(func(c *container.Container) (database.Grammar, error) {
		return database.GrammarFor(container.GetConfig(c).DB.Driver), nil
	})

	c.Register(func(c *container.Container) (*sql.DB, error) {
		cfg := container.GetConfig(c)
		pool := database.PoolConfig{
			MaxOpenConns:    cfg.DB.MaxOpenConns,
			MaxIdleConns:    cfg.DB.MaxIdleConns,
			ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
		}
		return database.Connect(cfg.DB.Driver, cfg.DB.DSN, pool, container.GetLogger(c))
	})

	c.Register(func(c *container.Container) (cache.Cache, error) {
		cfg := container.GetConfig(c)
		opts := cache.Options{Logger: container.GetLogger(c), Prefix: cfg.Cache.Prefix}

		if cfg.Cache.Driver == "redis" {
			redisOpts := database.DefaultRedisOptions()
			redisOpts.Addr = cfg.RedisAddr()
			redisOpts.Password = cfg.Redis.Password
			redisOpts.DB = cfg.Redis.DB
			if cfg.Redis.URL != "" {
				parsed, err := database.RedisOptionsFromURL(cfg.Redis.URL)
				if err != nil {
					return nil, err
				}
				redisOpts = parsed
			}

			client, err := database.ConnectRedis(context.Background(), redisOpts, opts.Logger)
			if err != nil {
				return nil, err
			}
			opts.Redis = client
		}

		return cache.New(cfg.Cache.Driver, opts)
	})

	c.Register(func(c *container.Container) (*migration.Migrator, error) {
		cfg := container.GetConfig(c)
		return migration.NewMigrator(
			container.GetDatabase(c),
			migration.GrammarFor(cfg.DB.Driver),
			container.GetLogger(c),
		), nil
	})

	c.Register(func(c *container.Container) (*eloquence.ColumnRegistry, error) {
		cfg := container.GetConfig(c)
		return eloquence.NewColumnRegistry(
			container.GetCache(c),
			container.GetMigrator(c),
			cfg.Cache.ColumnTTL,
		), nil
	})

	c.Register(func(c *container.Container) (*eloquence.JoinerFactory, error) {
		return eloquence.NewJoinerFactory(), nil
	})

	c.Register(func(c *container.Container) (*eloquence.Registry, error) {
		return eloquence.LoadSchemaFile(container.GetConfig(c).Schema.File)
	})
}

// NewQuery, konteynerdaki bağlantı ve grammar ile model-farkında bir
// builder üretir.
func NewQuery(c *container.Container, model eloquence.Model) *eloquence.Builder {
	db, grammar := container.GetDatabaseAndGrammar(c)
	return eloquence.NewBuilder(database.NewBuilder(db, grammar), model)
}
