package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammarFor(t *testing.T) {
	assert.IsType(t, &MySQLGrammar{}, GrammarFor("mysql"))
	assert.IsType(t, &MySQLGrammar{}, GrammarFor(""))
	assert.IsType(t, &SQLiteGrammar{}, GrammarFor("sqlite3"))
	assert.IsType(t, &SQLiteGrammar{}, GrammarFor("SQLite"))
	assert.IsType(t, &PostgresGrammar{}, GrammarFor("postgres"))
	assert.IsType(t, &PostgresGrammar{}, GrammarFor("pgsql"))
}

func TestPostgresGrammar_Rebind(t *testing.T) {
	g := NewPostgresGrammar()

	assert.Equal(t, "SELECT * FROM t WHERE a = $1 AND b IN ($2, $3)",
		g.Rebind("SELECT * FROM t WHERE a = ? AND b IN (?, ?)"))
	assert.Equal(t, "SELECT '?' AS q FROM t WHERE a = $1",
		g.Rebind("SELECT '?' AS q FROM t WHERE a = ?"))
	assert.Equal(t, "SELECT 1", g.Rebind("SELECT 1"))
}

func TestMySQLAndSQLite_RebindIsIdentity(t *testing.T) {
	q := "SELECT * FROM t WHERE a = ?"
	assert.Equal(t, q, NewMySQLGrammar().Rebind(q))
	assert.Equal(t, q, NewSQLiteGrammar().Rebind(q))
}

func TestGrammar_WrapPerDialect(t *testing.T) {
	cases := []struct {
		grammar Grammar
		want    string
	}{
		{NewMySQLGrammar(), "`users`.`id`"},
		{NewSQLiteGrammar(), `"users"."id"`},
		{NewPostgresGrammar(), `"users"."id"`},
	}
	for _, tc := range cases {
		got, err := tc.grammar.Wrap("users.id")
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestGrammar_WrapRejectsUnsafeIdentifiers(t *testing.T) {
	g := NewMySQLGrammar()

	got, err := g.Wrap("users.*")
	require.NoError(t, err)
	assert.Equal(t, "`users`.*", got)

	for _, bad := range []string{"a.b.c", "id`", "id; DROP", "*.id", ""} {
		_, err := g.Wrap(bad)
		assert.Error(t, err, bad)
	}
}

func TestPostgresGrammar_InsertUsesNumberedPlaceholders(t *testing.T) {
	g := NewPostgresGrammar()
	sql, args, err := g.CompileInsert("users", map[string]interface{}{"name": "Ada", "email": "ada@example.com"})
	require.NoError(t, err)

	assert.Equal(t, `INSERT INTO "users" ("email", "name") VALUES ($1, $2)`, g.Rebind(sql))
	assert.Equal(t, []interface{}{"ada@example.com", "Ada"}, args)
}
