package eloquence

import (
	"testing"

	"github.com/biyonik/eloquence/pkg/database"
)

// testModels, join testlerinde kullanılan model grafiğidir.
type testModels struct {
	users, profiles, companies, posts, softPosts, comments, tags, morphs *Entity
}

func newTestModels() *testModels {
	m := &testModels{
		users:     NewEntity("User"),
		profiles:  NewEntity("Profile").SetMorphClass("profile-type-string"),
		companies: NewEntity("Company"),
		posts:     NewEntity("Post"),
		softPosts: NewEntity("SoftDeletingPost").SetTable("posts").SoftDeletes(),
		comments:  NewEntity("Comment"),
		tags:      NewEntity("Tag"),
		morphs:    NewEntity("MorphOne").SetTable("morphs"),
	}

	m.users.
		BelongsTo("profile", m.profiles, "profile_id", "").
		BelongsToMany("companies", m.companies, "company_user", "user_id", "company_id").
		HasManyThrough("profiles", m.profiles, m.companies, "user_id", "company_id", "", "").
		HasMany("posts", m.posts, "user_id", "").
		HasMany("softDeletingPosts", m.softPosts, "user_id", "").
		MorphOne("morphed", m.morphs, "morphable").
		MorphTo("morphs", "")

	m.profiles.
		MorphOne("company", m.companies, "morphable").
		MorphToMany("tags", m.tags, "taggable").
		HasMany("posts", m.posts, "profile_id", "")

	m.softPosts.HasMany("comments", m.comments, "post_id", "")

	m.tags.MorphedByMany("profiles", m.profiles, "taggable")

	return m
}

func newTestQuery() *database.QueryBuilder {
	return database.NewBuilder(nil, database.NewSQLiteGrammar()).Table("users")
}

func compile(t *testing.T, qb *database.QueryBuilder) (string, []interface{}) {
	t.Helper()
	sql, args, err := qb.ToSQL()
	if err != nil {
		t.Fatalf("ToSQL failed: %v", err)
	}
	return sql, args
}
