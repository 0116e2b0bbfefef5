// -----------------------------------------------------------------------------
// MySQL Grammar for Migration System
// -----------------------------------------------------------------------------
// Bu dosya, MySQL database için şema SQL'i oluşturur. Tablo ve kolon
// sorguları information_schema üzerinden, aktif veritabanı (DATABASE())
// ile sınırlandırılarak yapılır.
// -----------------------------------------------------------------------------

package migration

import (
	"fmt"
	"strings"
)

// MySQLGrammar implements Grammar interface for MySQL.
type MySQLGrammar struct{}

// NewMySQLGrammar creates a new MySQLGrammar instance.
func NewMySQLGrammar() *MySQLGrammar {
	return &MySQLGrammar{}
}

// CompileCreateTable generates CREATE TABLE SQL.
func (g *MySQLGrammar) CompileCreateTable(blueprint *Blueprint) string {
	defs := make([]string, 0, len(blueprint.columns)+len(blueprint.indexes))
	for _, column := range blueprint.columns {
		defs = append(defs, g.compileColumn(column))
	}
	for _, index := range blueprint.indexes {
		defs = append(defs, g.compileIndex(index))
	}
	for _, fk := range blueprint.foreigns {
		defs = append(defs, compileForeign(fk, "`"))
	}

	return fmt.Sprintf(
		"CREATE TABLE `%s` (\n  %s\n) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci",
		blueprint.table, strings.Join(defs, ",\n  "),
	)
}

// CompileDropTable generates DROP TABLE SQL.
func (g *MySQLGrammar) CompileDropTable(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS `%s`", table)
}

// CompileAddColumn generates ALTER TABLE ADD COLUMN SQL.
func (g *MySQLGrammar) CompileAddColumn(table string, column *Column) string {
	return fmt.Sprintf("ALTER TABLE `%s` ADD COLUMN %s", table, g.compileColumn(column))
}

// CompileDropColumn generates ALTER TABLE DROP COLUMN SQL.
func (g *MySQLGrammar) CompileDropColumn(table string, columnName string) string {
	return fmt.Sprintf("ALTER TABLE `%s` DROP COLUMN `%s`", table, columnName)
}

// CompileAddIndex generates ALTER TABLE ADD INDEX SQL.
func (g *MySQLGrammar) CompileAddIndex(table string, index Index) string {
	return fmt.Sprintf("ALTER TABLE `%s` ADD %s", table, g.compileIndex(index))
}

// CompileDropIndex generates ALTER TABLE DROP INDEX SQL.
func (g *MySQLGrammar) CompileDropIndex(table string, indexName string) string {
	return fmt.Sprintf("ALTER TABLE `%s` DROP INDEX `%s`", table, indexName)
}

// CompileTableExists generates the table existence query.
func (g *MySQLGrammar) CompileTableExists() string {
	return "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?"
}

// CompileColumnListing generates the column listing query.
func (g *MySQLGrammar) CompileColumnListing() string {
	return "SELECT column_name FROM information_schema.columns " +
		"WHERE table_schema = DATABASE() AND table_name = ? ORDER BY ordinal_position"
}

// compileColumn compiles a single column definition.
func (g *MySQLGrammar) compileColumn(column *Column) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("`%s`", column.Name))

	if column.Length > 0 && column.Type == ColumnTypeString {
		parts = append(parts, fmt.Sprintf("%s(%d)", column.Type, column.Length))
	} else {
		parts = append(parts, string(column.Type))
	}

	if column.IsUnsigned {
		parts = append(parts, "UNSIGNED")
	}

	if !column.IsNullable {
		parts = append(parts, "NOT NULL")
	} else {
		parts = append(parts, "NULL")
	}

	if column.AutoIncrement {
		parts = append(parts, "AUTO_INCREMENT")
	}

	if column.DefaultValue != nil {
		parts = append(parts, compileDefault(column.DefaultValue))
	}

	if column.Primary {
		parts = append(parts, "PRIMARY KEY")
	}

	if column.IsUnique {
		parts = append(parts, "UNIQUE")
	}

	return strings.Join(parts, " ")
}

// compileIndex compiles an index definition.
func (g *MySQLGrammar) compileIndex(index Index) string {
	columns := quoteAll(index.Columns, "`")

	switch index.Type {
	case IndexTypePrimary:
		return fmt.Sprintf("PRIMARY KEY (%s)", columns)
	case IndexTypeUnique:
		return fmt.Sprintf("UNIQUE KEY `%s` (%s)", index.Name, columns)
	default:
		return fmt.Sprintf("INDEX `%s` (%s)", index.Name, columns)
	}
}

// -----------------------------------------------------------------------------
// Shared helpers
// -----------------------------------------------------------------------------

func quoteAll(columns []string, quote string) string {
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quote + col + quote
	}
	return strings.Join(quoted, ", ")
}

func compileDefault(value interface{}) string {
	switch v := value.(type) {
	case string:
		return fmt.Sprintf("DEFAULT '%s'", strings.ReplaceAll(v, "'", "''"))
	case bool:
		if v {
			return "DEFAULT 1"
		}
		return "DEFAULT 0"
	default:
		return fmt.Sprintf("DEFAULT %v", v)
	}
}

func compileForeign(fk *ForeignKey, quote string) string {
	sql := fmt.Sprintf("FOREIGN KEY (%s%s%s) REFERENCES %s%s%s (%s%s%s)",
		quote, fk.Column, quote,
		quote, fk.ReferencedTable, quote,
		quote, fk.ReferencedColumn, quote,
	)
	if fk.OnDeleteAction != "" {
		sql += " ON DELETE " + fk.OnDeleteAction
	}
	if fk.OnUpdateAction != "" {
		sql += " ON UPDATE " + fk.OnUpdateAction
	}
	return sql
}
