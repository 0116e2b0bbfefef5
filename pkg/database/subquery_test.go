package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubquery_ToSQLWithAlias(t *testing.T) {
	inner := NewBuilder(nil, NewMySQLGrammar()).Table("orders").Where("total", ">", 100)
	sub := NewSubquery(inner, "big_orders")

	sql, args, err := sub.ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "(SELECT * FROM `orders` WHERE `total` > ?) AS `big_orders`", sql)
	assert.Equal(t, []interface{}{100}, args)
	assert.Equal(t, sql, sub.String())
}

func TestSubquery_WithoutAlias(t *testing.T) {
	sub := NewSubquery(NewBuilder(nil, NewSQLiteGrammar()).Table("users"), "")
	assert.Equal(t, `(SELECT * FROM "users")`, sub.String())
}

func TestSubquery_DelegatesToInnerQuery(t *testing.T) {
	inner := NewBuilder(nil, NewSQLiteGrammar())
	sub := NewSubquery(inner, "u").
		Table("users").
		Select("id", "name").
		Where("active", "=", true).
		WhereNull("deleted_at").
		OrderBy("id", "desc").
		Limit(5).
		Offset(10)

	assert.Same(t, inner, sub.Query())
	assert.Equal(t,
		`(SELECT "id", "name" FROM "users" WHERE "active" = ? AND "deleted_at" IS NULL ORDER BY "id" DESC LIMIT 5 OFFSET 10) AS "u"`,
		sub.String())
}

func TestSubquery_SetQueryAndAlias(t *testing.T) {
	sub := NewSubquery(NewBuilder(nil, NewMySQLGrammar()).Table("users"), "a")
	sub.SetQuery(NewBuilder(nil, NewMySQLGrammar()).Table("posts"))
	sub.SetAlias("b")

	assert.Equal(t, "b", sub.Alias())
	assert.Equal(t, "(SELECT * FROM `posts`) AS `b`", sub.String())
}

func TestSubquery_NilQuery(t *testing.T) {
	sub := &Subquery{alias: "x"}

	_, _, err := sub.ToSQL()
	assert.Error(t, err)
	assert.Equal(t, "", sub.String())
}

func TestSubquery_InvalidAlias(t *testing.T) {
	sub := NewSubquery(NewBuilder(nil, NewMySQLGrammar()).Table("users"), "bad alias")

	_, _, err := sub.ToSQL()
	assert.Error(t, err)
	assert.Equal(t, "", sub.String())
}

func TestQueryBuilder_FromSubKeepsBindingOrder(t *testing.T) {
	grammar := NewPostgresGrammar()
	inner := NewBuilder(nil, grammar).Table("orders").Where("total", ">", 100)

	outer := NewBuilder(nil, grammar).
		FromSub(NewSubquery(inner, "o")).
		Select("o.id").
		Where("o.status", "=", "paid")

	assert.Equal(t, "o", outer.TableName())

	sql, args, err := outer.ToSQL()
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT "o"."id" FROM (SELECT * FROM "orders" WHERE "total" > $1) AS "o" WHERE "o"."status" = $2`,
		sql)
	assert.Equal(t, []interface{}{100, "paid"}, args)
}
