package eloquence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biyonik/eloquence/pkg/database"
)

func TestJoinerFactory_ModelQuery(t *testing.T) {
	m := newTestModels()
	b := NewBuilder(newTestQuery(), m.users)

	joiner, err := NewJoinerFactory().Make(b, nil)
	require.NoError(t, err)
	assert.Same(t, m.users, joiner.Model())

	_, err = joiner.Join("profile")
	require.NoError(t, err)
	assert.Len(t, b.Query().Joins(), 1)
}

func TestJoinerFactory_ModelQueryWithOverride(t *testing.T) {
	m := newTestModels()
	b := NewBuilder(newTestQuery(), m.users)

	joiner, err := NewJoinerFactory().Make(b, m.profiles)
	require.NoError(t, err)
	assert.Same(t, m.profiles, joiner.Model())
}

func TestJoinerFactory_LowLevelQuery(t *testing.T) {
	m := newTestModels()
	qb := newTestQuery()

	joiner, err := NewJoinerFactory().Make(qb, m.users)
	require.NoError(t, err)

	_, err = joiner.RightJoin("companies")
	require.NoError(t, err)
	assert.Len(t, qb.Joins(), 2)
}

func TestJoinerFactory_Errors(t *testing.T) {
	f := NewJoinerFactory()

	_, err := f.Make(newTestQuery(), nil)
	assert.ErrorIs(t, err, ErrNoModel)

	_, err = f.Make(nil, NewEntity("User"))
	assert.EqualError(t, err, "eloquence: cannot make joiner from nil query")

	var builder *Builder
	assert.NotPanics(t, func() {
		_, err = f.Make(builder, nil)
	})
	assert.EqualError(t, err, "eloquence: cannot make joiner from nil query")

	var qb *database.QueryBuilder
	_, err = f.Make(qb, NewEntity("User"))
	assert.EqualError(t, err, "eloquence: cannot make joiner from nil query")

	_, err = f.Make("users", NewEntity("User"))
	assert.EqualError(t, err, "eloquence: cannot make joiner from string")
}

func TestBuilder_TableFromModel(t *testing.T) {
	m := newTestModels()

	b := NewBuilder(database.NewBuilder(nil, database.NewSQLiteGrammar()), m.companies)
	sql, _, err := b.ToSQL()
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "companies"`, sql)

	b = NewBuilder(database.NewBuilder(nil, database.NewSQLiteGrammar()).Table("firms"), m.companies)
	sql, _, err = b.ToSQL()
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "firms"`, sql)
}

func TestBuilder_JoinMapped(t *testing.T) {
	m := newTestModels()
	b := NewBuilder(newTestQuery(), m.users)

	column, err := b.JoinMapped("profile.company.name", database.LeftJoin)
	require.NoError(t, err)
	assert.Equal(t, "companies.name", column)

	column, err = b.JoinMapped("email", database.LeftJoin)
	require.NoError(t, err)
	assert.Equal(t, "users.email", column)

	b.Select("users.*", "companies.name as company_name")
	sql, args, err := b.ToSQL()
	require.NoError(t, err)
	assert.Equal(t, `SELECT "users".*, "companies"."name" AS "company_name" FROM "users" `+
		`LEFT JOIN "profiles" ON "users"."profile_id" = "profiles"."id" `+
		`LEFT JOIN "companies" ON "companies"."morphable_id" = "profiles"."id" AND "companies"."morphable_type" = ?`, sql)
	assert.Equal(t, []interface{}{"profile-type-string"}, args)

	_, err = b.JoinMapped("morphs.id", database.InnerJoin)
	assert.ErrorIs(t, err, ErrUnsupportedRelation)

	_, err = b.JoinMapped("profile.", database.InnerJoin)
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestBuilder_WhereNilValue(t *testing.T) {
	m := newTestModels()
	b := NewBuilder(newTestQuery(), m.users)

	b.Where("users.deleted_at", "=", nil).
		Where("users.profile_id", "<>", nil).
		Where("users.name", "=", "Ada")

	sql, args, err := b.ToSQL()
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "users" WHERE "users"."deleted_at" IS NULL `+
		`AND "users"."profile_id" IS NOT NULL AND "users"."name" = ?`, sql)
	assert.Equal(t, []interface{}{"Ada"}, args)
}

func TestBuilder_Subquery(t *testing.T) {
	m := newTestModels()
	b := NewBuilder(newTestQuery(), m.users)

	_, err := b.Join("profile")
	require.NoError(t, err)
	b.Select("users.id").Where("profiles.bio", "=", "go")

	sub := b.Subquery("authors")
	assert.Same(t, b.Query(), sub.Query())

	outer := database.NewBuilder(nil, database.NewSQLiteGrammar()).FromSub(sub).Select("authors.id")
	sql, args, err := outer.ToSQL()
	require.NoError(t, err)
	assert.Equal(t, `SELECT "authors"."id" FROM (SELECT "users"."id" FROM "users" `+
		`INNER JOIN "profiles" ON "users"."profile_id" = "profiles"."id" `+
		`WHERE "profiles"."bio" = ?) AS "authors"`, sql)
	assert.Equal(t, []interface{}{"go"}, args)
}
