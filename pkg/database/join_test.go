package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinClause_Compile(t *testing.T) {
	qb := NewBuilder(nil, NewMySQLGrammar()).Table("users")
	qb.AddJoin(NewJoinClause(LeftJoin, "posts").
		On("posts.user_id", "=", "users.id").
		Where("posts.type", "=", "article").
		WhereNull("posts.deleted_at"))

	sql, args, err := qb.ToSQL()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT * FROM `users` LEFT JOIN `posts` ON `posts`.`user_id` = `users`.`id` AND `posts`.`type` = ? AND `posts`.`deleted_at` IS NULL",
		sql)
	assert.Equal(t, []interface{}{"article"}, args)
}

func TestJoinClause_OrOnAndNotNull(t *testing.T) {
	qb := NewBuilder(nil, NewSQLiteGrammar()).Table("users")
	qb.AddJoin(NewJoinClause(InnerJoin, "profiles").
		On("users.profile_id", "=", "profiles.id").
		OrOn("users.backup_profile_id", "=", "profiles.id").
		WhereNotNull("profiles.verified_at"))

	sql, _, err := qb.ToSQL()
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT * FROM "users" INNER JOIN "profiles" ON "users"."profile_id" = "profiles"."id" OR "users"."backup_profile_id" = "profiles"."id" AND "profiles"."verified_at" IS NOT NULL`,
		sql)
}

func TestJoinClause_CrossJoinHasNoCondition(t *testing.T) {
	sql, _, err := NewBuilder(nil, NewMySQLGrammar()).Table("users").CrossJoin("roles").ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM `users` CROSS JOIN `roles`", sql)
}

func TestJoinClause_InvalidOperatorFailsCompile(t *testing.T) {
	qb := NewBuilder(nil, NewMySQLGrammar()).Table("users")
	qb.AddJoin(NewJoinClause(InnerJoin, "posts").On("posts.user_id", "; DROP", "users.id"))

	_, _, err := qb.ToSQL()
	assert.Error(t, err)
}

func TestJoinClause_Equal(t *testing.T) {
	build := func() *JoinClause {
		return NewJoinClause(InnerJoin, "companies").
			On("companies.morphable_id", "=", "profiles.id").
			Where("companies.morphable_type", "=", "profile")
	}

	assert.True(t, build().Equal(build()))

	other := build()
	other.Type = LeftJoin
	assert.False(t, build().Equal(other), "farklı join tipi")

	other = build().WhereNull("companies.deleted_at")
	assert.False(t, build().Equal(other), "fazladan koşul")

	other = NewJoinClause(InnerJoin, "companies").
		On("companies.morphable_id", "=", "profiles.id").
		Where("companies.morphable_type", "=", "user")
	assert.False(t, build().Equal(other), "farklı binding değeri")

	var nilJoin *JoinClause
	assert.True(t, nilJoin.Equal(nil))
	assert.False(t, nilJoin.Equal(build()))
}

func TestJoinClause_CloneIsIndependent(t *testing.T) {
	original := NewJoinClause(InnerJoin, "posts").On("posts.user_id", "=", "users.id")
	clone := original.Clone()
	clone.WhereNull("posts.deleted_at")

	assert.Len(t, original.Conditions, 1)
	assert.Len(t, clone.Conditions, 2)
	assert.False(t, original.Equal(clone))
}

func TestJoinClause_Bindings(t *testing.T) {
	j := NewJoinClause(InnerJoin, "tags").
		On("tags.id", "=", "taggables.tag_id").
		Where("taggables.taggable_type", "=", "post").
		WhereNull("tags.deleted_at").
		Where("tags.active", "=", true)

	assert.Equal(t, []interface{}{"post", true}, j.Bindings())
}

func TestQueryBuilder_HasJoin(t *testing.T) {
	qb := NewBuilder(nil, NewMySQLGrammar()).Table("users")
	qb.Join("profiles", "users.profile_id", "=", "profiles.id")

	same := NewJoinClause(InnerJoin, "profiles").On("users.profile_id", "=", "profiles.id")
	left := NewJoinClause(LeftJoin, "profiles").On("users.profile_id", "=", "profiles.id")

	assert.True(t, qb.HasJoin(same))
	assert.False(t, qb.HasJoin(left))
}

func TestQueryBuilder_CloneCopiesJoins(t *testing.T) {
	qb := NewBuilder(nil, NewMySQLGrammar()).Table("users")
	qb.Join("profiles", "users.profile_id", "=", "profiles.id")

	clone := qb.Clone()
	clone.Joins()[0].WhereNull("profiles.deleted_at")
	clone.Where("users.id", "=", 1)

	assert.Len(t, qb.Joins()[0].Conditions, 1)
	sql, args, err := qb.ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM `users` INNER JOIN `profiles` ON `users`.`profile_id` = `profiles`.`id`", sql)
	assert.Empty(t, args)
}

func TestParseJoinType(t *testing.T) {
	cases := map[string]JoinType{
		"inner":  InnerJoin,
		" LEFT ": LeftJoin,
		"Right":  RightJoin,
		"cross":  CrossJoin,
	}
	for in, want := range cases {
		got, ok := ParseJoinType(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseJoinType("outer")
	assert.False(t, ok)
}
