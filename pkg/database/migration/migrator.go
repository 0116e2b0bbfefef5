// -----------------------------------------------------------------------------
// Schema Builder & Migrator
// -----------------------------------------------------------------------------
// Tablo oluşturma/silme/değiştirme, tablo varlığı ve kolon listesi sorguları.
// Kolon listesi (ColumnListing), model kolonlarının cache'lenmesi için
// eloquence.ColumnRegistry tarafından kullanılır.
//
//	m := migration.NewMigrator(db, migration.NewSQLiteGrammar(), logger)
//	err := m.CreateTable("users", func(t *migration.Blueprint) {
//	    t.ID()
//	    t.String("name", 255)
//	    t.Integer("profile_id").Nullable()
//	    t.Timestamps()
//	})
// -----------------------------------------------------------------------------

package migration

import (
	"database/sql"
	"fmt"
	"log"
)

// Migrator, şema değişikliklerini çalıştırır.
type Migrator struct {
	db      *sql.DB
	grammar Grammar
	logger  *log.Logger
}

// Grammar, şema SQL'ini lehçeye göre üretir.
type Grammar interface {
	CompileCreateTable(blueprint *Blueprint) string
	CompileDropTable(table string) string
	CompileAddColumn(table string, column *Column) string
	CompileDropColumn(table string, columnName string) string
	CompileAddIndex(table string, index Index) string
	CompileDropIndex(table string, indexName string) string

	// CompileTableExists, tek satır tek kolon (COUNT) dönen bir sorgu üretir.
	CompileTableExists() string

	// CompileColumnListing, tablonun kolon adlarını tanım sırasıyla dönen
	// bir sorgu üretir. Tek parametre tablo adıdır.
	CompileColumnListing() string
}

// rebinder, "?" dışında placeholder kullanan grammar'lar tarafından sağlanır.
type rebinder interface {
	Rebind(query string) string
}

// NewMigrator creates a new Migrator instance.
func NewMigrator(db *sql.DB, grammar Grammar, logger *log.Logger) *Migrator {
	return &Migrator{db: db, grammar: grammar, logger: logger}
}

// CreateTable creates a new table.
func (m *Migrator) CreateTable(tableName string, callback func(*Blueprint)) error {
	blueprint := NewBlueprint(tableName)
	callback(blueprint)

	if _, err := m.db.Exec(m.grammar.CompileCreateTable(blueprint)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	m.logger.Printf("✅ Created table: %s", tableName)
	return nil
}

// DropTable drops a table if it exists.
func (m *Migrator) DropTable(tableName string) error {
	if _, err := m.db.Exec(m.grammar.CompileDropTable(tableName)); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	m.logger.Printf("✅ Dropped table: %s", tableName)
	return nil
}

// AlterTable adds the blueprint's columns and indexes to an existing table.
func (m *Migrator) AlterTable(tableName string, callback func(*Blueprint)) error {
	blueprint := NewBlueprint(tableName)
	callback(blueprint)

	for _, column := range blueprint.columns {
		if _, err := m.db.Exec(m.grammar.CompileAddColumn(tableName, column)); err != nil {
			return fmt.Errorf("failed to add column %s: %w", column.Name, err)
		}
	}

	for _, index := range blueprint.indexes {
		if _, err := m.db.Exec(m.grammar.CompileAddIndex(tableName, index)); err != nil {
			return fmt.Errorf("failed to add index: %w", err)
		}
	}

	m.logger.Printf("✅ Altered table: %s", tableName)
	return nil
}

// HasTable checks if a table exists.
func (m *Migrator) HasTable(tableName string) (bool, error) {
	var count int
	if err := m.db.QueryRow(m.grammar.CompileTableExists(), tableName).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// ColumnListing returns the table's column names in definition order.
// Unknown tables yield an empty slice.
func (m *Migrator) ColumnListing(tableName string) ([]string, error) {
	rows, err := m.db.Query(m.grammar.CompileColumnListing(), tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns of %s: %w", tableName, err)
	}
	defer rows.Close()

	columns := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}

	return columns, rows.Err()
}

// HasColumn checks whether the table has the given column.
func (m *Migrator) HasColumn(tableName, column string) (bool, error) {
	columns, err := m.ColumnListing(tableName)
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

// -----------------------------------------------------------------------------
// Migration tracking
// -----------------------------------------------------------------------------

func (m *Migrator) bind(query string) string {
	if r, ok := m.grammar.(rebinder); ok {
		return r.Rebind(query)
	}
	return query
}

// CreateMigrationsTable creates the migrations tracking table.
func (m *Migrator) CreateMigrationsTable() error {
	exists, err := m.HasTable("migrations")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return m.CreateTable("migrations", func(t *Blueprint) {
		t.ID()
		t.String("migration", 255)
		t.Integer("batch")
	})
}

// RecordMigration records a migration as run.
func (m *Migrator) RecordMigration(name string, batch int) error {
	_, err := m.db.Exec(m.bind("INSERT INTO migrations (migration, batch) VALUES (?, ?)"), name, batch)
	return err
}

// DeleteMigration removes a migration record.
func (m *Migrator) DeleteMigration(name string) error {
	_, err := m.db.Exec(m.bind("DELETE FROM migrations WHERE migration = ?"), name)
	return err
}

// GetRanMigrations returns all migrations that have been run.
func (m *Migrator) GetRanMigrations() ([]string, error) {
	rows, err := m.db.Query("SELECT migration FROM migrations ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var migrations []string
	for rows.Next() {
		var migration string
		if err := rows.Scan(&migration); err != nil {
			return nil, err
		}
		migrations = append(migrations, migration)
	}

	return migrations, rows.Err()
}

// GetLastBatch returns the last batch number.
func (m *Migrator) GetLastBatch() (int, error) {
	var batch sql.NullInt64
	if err := m.db.QueryRow("SELECT MAX(batch) FROM migrations").Scan(&batch); err != nil {
		return 0, err
	}

	if batch.Valid {
		return int(batch.Int64), nil
	}
	return 0, nil
}
