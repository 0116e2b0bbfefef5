package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Identifier güvenliği: builder'a giren her tablo/kolon adı validateIdentifier
// veya fonksiyon whitelist'inden geçer; geçemeyen değer panic üretir.

func usersQuery() *QueryBuilder {
	return NewBuilder(nil, NewMySQLGrammar()).Table("users")
}

var hostileIdentifiers = []string{
	"id; DROP TABLE users--",
	"id' OR '1'='1",
	"id UNION SELECT * FROM passwords--",
	"id/**/OR/**/1=1",
	"id--",
	"id'",
	`id"`,
	"id`",
	"id'; DELETE FROM users WHERE '1'='1",
}

func TestIdentifierGuard_RejectsHostileInput(t *testing.T) {
	entryPoints := map[string]func(ident string){
		"Table":        func(ident string) { NewBuilder(nil, NewMySQLGrammar()).Table(ident) },
		"Select":       func(ident string) { usersQuery().Select(ident) },
		"Where":        func(ident string) { usersQuery().Where(ident, "=", 1) },
		"OrWhere":      func(ident string) { usersQuery().OrWhere(ident, "=", 1) },
		"WhereNull":    func(ident string) { usersQuery().WhereNull(ident) },
		"OrderBy":      func(ident string) { usersQuery().OrderBy(ident, "DESC") },
		"Join":         func(ident string) { usersQuery().Join("posts", ident, "=", "users.id") },
		"ExecInsert":   func(ident string) { _, _ = usersQuery().ExecInsert(map[string]interface{}{ident: "x"}) },
		"ExecUpdate":   func(ident string) { _, _ = usersQuery().Where("id", "=", 1).ExecUpdate(map[string]interface{}{ident: "x"}) },
		"WhereBetween": func(ident string) { usersQuery().WhereBetween(ident, 1, 2) },
	}

	for entry, call := range entryPoints {
		for _, ident := range hostileIdentifiers {
			t.Run(fmt.Sprintf("%s/%s", entry, ident), func(t *testing.T) {
				assert.Panics(t, func() { call(ident) })
			})
		}
	}
}

func TestIdentifierGuard_AcceptsSafeIdentifiers(t *testing.T) {
	cases := map[string]func() *QueryBuilder{
		"plain column":     func() *QueryBuilder { return usersQuery().OrderBy("id", "DESC") },
		"snake case":       func() *QueryBuilder { return usersQuery().Where("company_id", "=", 3) },
		"qualified column": func() *QueryBuilder { return usersQuery().OrderBy("users.created_at", "ASC") },
		"digits":           func() *QueryBuilder { return NewBuilder(nil, NewMySQLGrammar()).Table("t2024").Select("col1") },
		"star":             func() *QueryBuilder { return usersQuery().Select("*") },
		"table star":       func() *QueryBuilder { return usersQuery().Select("users.*", "companies.name") },
		"column alias":     func() *QueryBuilder { return usersQuery().Select("users.name as user_name") },
	}

	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			var qb *QueryBuilder
			require.NotPanics(t, func() { qb = build() })

			_, _, err := qb.ToSQL()
			assert.NoError(t, err)
		})
	}
}

func TestIdentifierGuard_SelectFunctions(t *testing.T) {
	allowed := []string{
		"COUNT(*) as total",
		"COUNT(DISTINCT user_id)",
		"SUM(price)",
		"SUM(orders.price) as revenue",
		"MAX(id)",
		"MIN(created_at)",
		"AVG(rating)",
	}
	for _, expr := range allowed {
		assert.NotPanics(t, func() { usersQuery().Select(expr) }, expr)
	}

	rejected := []string{
		"COUNT(*); DROP TABLE users--",
		"SUM(price)--comment",
		"id, (SELECT password FROM admin)",
		"*; DELETE FROM users--",
		"SLEEP(5) OR 1",
		"COUNT(id) as t; --",
	}
	for _, expr := range rejected {
		assert.Panics(t, func() { usersQuery().Select(expr) }, expr)
	}
}

func TestIdentifierGuard_StructuralRules(t *testing.T) {
	cases := map[string]func(){
		"empty table":        func() { NewBuilder(nil, NewMySQLGrammar()).Table("") },
		"blank table":        func() { NewBuilder(nil, NewMySQLGrammar()).Table("   ") },
		"empty where column": func() { usersQuery().Where("", "=", 1) },
		"empty order column": func() { usersQuery().OrderBy("", "ASC") },
		"three part name":    func() { usersQuery().OrderBy("schema.users.id", "ASC") },
		"trailing dot":       func() { usersQuery().Where("users.", "=", 1) },
		"leading wildcard":   func() { usersQuery().Select("*.id") },
		"embedded wildcard":  func() { usersQuery().Select("users.na*me") },
	}

	for name, call := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Panics(t, call)
		})
	}
}

func TestIdentifierGuard_OrderDirectionWhitelist(t *testing.T) {
	sql, _, err := usersQuery().OrderBy("id", "desc; DROP TABLE users").ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM `users` ORDER BY `id` ASC", sql)
}

func BenchmarkIdentifierGuard_Where(b *testing.B) {
	for i := 0; i < b.N; i++ {
		usersQuery().Where("status", "=", "active").OrderBy("users.created_at", "DESC")
	}
}
