package database

import (
	"sort"
	"strconv"
	"strings"
)

// SQLiteGrammar, SQLite lehçesidir. Identifier'lar çift tırnak ile sarılır.
type SQLiteGrammar struct {
	sqlGrammar
}

func NewSQLiteGrammar() *SQLiteGrammar {
	return &SQLiteGrammar{sqlGrammar{quote: `"`}}
}

// PostgresGrammar, PostgreSQL lehçesidir. Derleme "?" ile yapılır,
// Rebind sırasında $1, $2, ... biçimine çevrilir.
type PostgresGrammar struct {
	sqlGrammar
}

func NewPostgresGrammar() *PostgresGrammar {
	return &PostgresGrammar{sqlGrammar{quote: `"`}}
}

// Rebind, tek tırnaklı string literal'ların dışındaki "?" karakterlerini
// sırayla $n placeholder'larına çevirir.
func (g *PostgresGrammar) Rebind(query string) string {
	var sb strings.Builder
	sb.Grow(len(query) + 8)

	n := 0
	inLiteral := false
	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch {
		case ch == '\'':
			inLiteral = !inLiteral
			sb.WriteByte(ch)
		case ch == '?' && !inLiteral:
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
		default:
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}

// GrammarFor, sürücü adına göre uygun Grammar'ı döndürür.
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

func sortedKeys(data map[string]interface{}) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
