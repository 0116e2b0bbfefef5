package migration

import (
	"fmt"
	"strings"
)

// PostgresGrammar, PostgreSQL için şema SQL'i üretir. Sorgular $n
// placeholder'ı kullanır; UNSIGNED desteklenmez ve atlanır.
type PostgresGrammar struct{}

// NewPostgresGrammar creates a new PostgresGrammar instance.
func NewPostgresGrammar() *PostgresGrammar {
	return &PostgresGrammar{}
}

// CompileCreateTable generates CREATE TABLE SQL. Non-unique indexes are
// appended as separate CREATE INDEX statements.
func (g *PostgresGrammar) CompileCreateTable(blueprint *Blueprint) string {
	defs := make([]string, 0, len(blueprint.columns))
	for _, column := range blueprint.columns {
		defs = append(defs, g.compileColumn(column))
	}
	for _, index := range blueprint.indexes {
		switch index.Type {
		case IndexTypeUnique:
			defs = append(defs, fmt.Sprintf(`CONSTRAINT "%s" UNIQUE (%s)`, index.Name, quoteAll(index.Columns, `"`)))
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
func (g *PostgresGrammar) CompileDropTable(table string) string {
	return fmt.Sprintf(`DROP TABLE IF EXISTS "%s"`, table)
}

// CompileAddColumn generates ALTER TABLE ADD COLUMN SQL.
func (g *PostgresGrammar) CompileAddColumn(table string, column *Column) string {
	return fmt.Sprintf(`ALTER TABLE "%s" ADD COLUMN %s`, table, g.compileColumn(column))
}

// CompileDropColumn generates ALTER TABLE DROP COLUMN SQL.
func (g *PostgresGrammar) CompileDropColumn(table string, columnName string) string {
	return fmt.Sprintf(`ALTER TABLE "%s" DROP COLUMN "%s"`, table, columnName)
}

// CompileAddIndex generates CREATE INDEX SQL.
func (g *PostgresGrammar) CompileAddIndex(table string, index Index) string {
	kind := "INDEX"
	if index.Type == IndexTypeUnique {
		kind = "UNIQUE INDEX"
	}
	return fmt.Sprintf(`CREATE %s "%s" ON "%s" (%s)`, kind, index.Name, table, quoteAll(index.Columns, `"`))
}

// CompileDropIndex generates DROP INDEX SQL.
func (g *PostgresGrammar) CompileDropIndex(table string, indexName string) string {
	return fmt.Sprintf(`DROP INDEX IF EXISTS "%s"`, indexName)
}

// CompileTableExists generates the table existence query.
func (g *PostgresGrammar) CompileTableExists() string {
	return "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = $1"
}

// CompileColumnListing generates the column listing query.
func (g *PostgresGrammar) CompileColumnListing() string {
	return "SELECT column_name FROM information_schema.columns " +
		"WHERE table_schema = current_schema() AND table_name = $1 ORDER BY ordinal_position"
}

// Rebind, migration kayıt sorgularındaki "?" işaretlerini $n'e çevirir.
func (g *PostgresGrammar) Rebind(query string) string {
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (g *PostgresGrammar) compileColumn(column *Column) string {
	if column.AutoIncrement && column.Primary {
		return fmt.Sprintf(`"%s" BIGSERIAL PRIMARY KEY`, column.Name)
	}

	var parts []string
	parts = append(parts, fmt.Sprintf(`"%s"`, column.Name))

	switch column.Type {
	case ColumnTypeUnsignedBigInt:
		parts = append(parts, "BIGINT")
	case ColumnTypeInteger:
		parts = append(parts, "INTEGER")
	case ColumnTypeBoolean:
		parts = append(parts, "BOOLEAN")
	case ColumnTypeDateTime:
		parts = append(parts, "TIMESTAMP")
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
		if b, ok := column.DefaultValue.(bool); ok {
			parts = append(parts, fmt.Sprintf("DEFAULT %t", b))
		} else {
			parts = append(parts, compileDefault(column.DefaultValue))
		}
	}

	if column.Primary {
		parts = append(parts, "PRIMARY KEY")
	}

	if column.IsUnique {
		parts = append(parts, "UNIQUE")
	}

	return strings.Join(parts, " ")
}

// GrammarFor, sürücü adına göre şema grammar'ını döndürür.
// Tanınmayan sürücüler için MySQL varsayılır.
func GrammarFor(driver string) Grammar {
	switch strings.ToLower(driver) {
	case "sqlite", "sqlite3":
		return NewSQLiteGrammar()
	case "postgres", "postgresql", "pgsql":
		return NewPostgresGrammar()
	default:
		return NewMySQLGrammar()
	}
}
