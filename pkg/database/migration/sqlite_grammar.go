package migration

import (
	"fmt"
	"strings"
)

// SQLiteGrammar, SQLite için şema SQL'i üretir.
//
// SQLite tip adlarını esnek kabul eder (VARCHAR(255), BIGINT, TIMESTAMP);
// yalnızca otomatik artan birincil anahtar "INTEGER PRIMARY KEY AUTOINCREMENT"
// olarak yazılmak zorundadır. UNSIGNED desteklenmez ve atlanır.
type SQLiteGrammar struct{}

// NewSQLiteGrammar creates a new SQLiteGrammar instance.
func NewSQLiteGrammar() *SQLiteGrammar {
	return &SQLiteGrammar{}
}

// CompileCreateTable generates CREATE TABLE SQL. Non-unique indexes cannot be
// declared inline in SQLite, so only unique/primary ones are emitted here;
// use CompileCreateIndexes for the rest.
func (g *SQLiteGrammar) CompileCreateTable(blueprint *Blueprint) string {
	defs := make([]string, 0, len(blueprint.columns))
	for _, column := range blueprint.columns {
		defs = append(defs, g.compileColumn(column))
	}
	for _, index := range blueprint.indexes {
		switch index.Type {
		case IndexTypeUnique:
			defs = append(defs, fmt.Sprintf("UNIQUE (%s)", quoteAll(index.Columns, `"`)))
		case IndexTypePrimary:
			defs = append(defs, fmt.Sprintf("PRIMARY KEY (%s)", quoteAll(index.Columns, `"`)))
		}
	}
	for _, fk := range blueprint.foreigns {
		defs = append(defs, compileForeign(fk, `"`))
	}

	sql := fmt.Sprintf("CREATE TABLE \"%s\" (\n  %s\n)", blueprint.table, strings.Join(defs, ",\n  "))

	for _, index := range blueprint.indexes {
		if index.Type == IndexTypeIndex {
			sql += ";\n" + g.CompileAddIndex(blueprint.table, index)
		}
	}

	return sql
}

// CompileDropTable generates DROP TABLE SQL.
func (g *SQLiteGrammar) CompileDropTable(table string) string {
	return fmt.Sprintf(`DROP TABLE IF EXISTS "%s"`, table)
}

// CompileAddColumn generates ALTER TABLE ADD COLUMN SQL.
func (g *SQLiteGrammar) CompileAddColumn(table string, column *Column) string {
	return fmt.Sprintf(`ALTER TABLE "%s" ADD COLUMN %s`, table, g.compileColumn(column))
}

// CompileDropColumn generates ALTER TABLE DROP COLUMN SQL (SQLite 3.35+).
func (g *SQLiteGrammar) CompileDropColumn(table string, columnName string) string {
	return fmt.Sprintf(`ALTER TABLE "%s" DROP COLUMN "%s"`, table, columnName)
}

// CompileAddIndex generates CREATE INDEX SQL.
func (g *SQLiteGrammar) CompileAddIndex(table string, index Index) string {
	kind := "INDEX"
	if index.Type == IndexTypeUnique {
		kind = "UNIQUE INDEX"
	}
	return fmt.Sprintf(`CREATE %s "%s" ON "%s" (%s)`, kind, index.Name, table, quoteAll(index.Columns, `"`))
}

// CompileDropIndex generates DROP INDEX SQL.
func (g *SQLiteGrammar) CompileDropIndex(table string, indexName string) string {
	return fmt.Sprintf(`DROP INDEX IF EXISTS "%s"`, indexName)
}

// CompileTableExists generates the table existence query.
func (g *SQLiteGrammar) CompileTableExists() string {
	return "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?"
}

// CompileColumnListing generates the column listing query.
func (g *SQLiteGrammar) CompileColumnListing() string {
	return "SELECT name FROM pragma_table_info(?) ORDER BY cid"
}

func (g *SQLiteGrammar) compileColumn(column *Column) string {
	if column.AutoIncrement && column.Primary {
		return fmt.Sprintf(`"%s" INTEGER PRIMARY KEY AUTOINCREMENT`, column.Name)
	}

	var parts []string
	parts = append(parts, fmt.Sprintf(`"%s"`, column.Name))

	switch column.Type {
	case ColumnTypeUnsignedBigInt, ColumnTypeBoolean:
		parts = append(parts, "INTEGER")
	case ColumnTypeString:
		if column.Length > 0 {
			parts = append(parts, fmt.Sprintf("VARCHAR(%d)", column.Length))
		} else {
			parts = append(parts, "VARCHAR")
		}
	default:
		parts = append(parts, string(column.Type))
	}

	if !column.IsNullable {
		parts = append(parts, "NOT NULL")
	} else {
		parts = append(parts, "NULL")
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
