package eloquence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaming(t *testing.T) {
	assert.Equal(t, "users", TableName("User"))
	assert.Equal(t, "companies", TableName("Company"))
	assert.Equal(t, "blog_posts", TableName("BlogPost"))

	assert.Equal(t, "user_id", ForeignKeyName("User"))
	assert.Equal(t, "joiner_tag_stub_id", ForeignKeyName("JoinerTagStub"))

	assert.Equal(t, "company_user", PivotTableName("User", "Company"))
	assert.Equal(t, "company_user", PivotTableName("Company", "User"))

	assert.Equal(t, "taggables", MorphPivotTableName("taggable"))
}

func TestEntity_Defaults(t *testing.T) {
	e := NewEntity("Company")

	assert.Equal(t, "Company", e.Name())
	assert.Equal(t, "companies", e.Table())
	assert.Equal(t, "id", e.KeyName())
	assert.Equal(t, "Company", e.MorphClass())
	assert.Equal(t, "", e.QualifiedDeletedAtColumn())

	e.SetTable("firms").SetKeyName("uuid").SetMorphClass("firm").SoftDeletes("removed_at")
	assert.Equal(t, "firms.uuid", QualifiedKey(e))
	assert.Equal(t, "firm", e.MorphClass())
	assert.Equal(t, "firms.removed_at", e.QualifiedDeletedAtColumn())

	assert.Equal(t, "firms.deleted_at", NewEntity("Firm").SoftDeletes().QualifiedDeletedAtColumn())
}

func TestEntity_UnknownRelation(t *testing.T) {
	e := NewEntity("User")

	_, err := e.Relation("nope")
	assert.ErrorIs(t, err, ErrUnknownRelation)
	assert.EqualError(t, err, "User.nope: eloquence: unknown relation")
}

func TestEntity_RelationDefaults(t *testing.T) {
	users := NewEntity("User")
	profiles := NewEntity("Profile")
	companies := NewEntity("Company")

	users.
		BelongsTo("profile", profiles, "", "").
		HasOne("phone", NewEntity("Phone"), "", "").
		BelongsToMany("companies", companies, "", "", "").
		HasManyThrough("profiles", profiles, companies, "", "", "", "")

	rel, err := users.Relation("profile")
	require.NoError(t, err)
	assert.Equal(t, KindBelongsTo, rel.Kind)
	assert.Equal(t, "profile", rel.Name)
	assert.Same(t, users, rel.Parent)
	assert.Equal(t, "users.profile_id", rel.ForeignKey)
	assert.Equal(t, "profiles.id", rel.OwnerKey)

	rel, err = users.Relation("phone")
	require.NoError(t, err)
	assert.Equal(t, KindHasOneOrMany, rel.Kind)
	assert.Equal(t, "phones.user_id", rel.ForeignKey)
	assert.Equal(t, "users.id", rel.LocalKey)

	rel, err = users.Relation("companies")
	require.NoError(t, err)
	assert.Equal(t, "company_user", rel.Table)
	assert.Equal(t, "company_user.user_id", rel.ForeignPivotKey)
	assert.Equal(t, "company_user.company_id", rel.RelatedPivotKey)

	rel, err = users.Relation("profiles")
	require.NoError(t, err)
	assert.Same(t, companies, rel.Through)
	assert.Equal(t, "companies.user_id", rel.FirstKey)
	assert.Equal(t, "profiles.company_id", rel.SecondKey)
	assert.Equal(t, "users.id", rel.LocalKey)
	assert.Equal(t, "companies.id", rel.SecondLocalKey)

	assert.Equal(t, []string{"companies", "phone", "profile", "profiles"}, users.RelationNames())
	assert.True(t, users.HasRelation("phone"))
	assert.False(t, users.HasRelation("morphs"))
}

func TestEntity_RelationsAreLazy(t *testing.T) {
	users := NewEntity("User")
	profiles := NewEntity("Profile")

	users.BelongsTo("profile", profiles, "", "")
	profiles.SetTable("user_profiles")

	rel, err := users.Relation("profile")
	require.NoError(t, err)
	assert.Equal(t, "user_profiles.id", rel.OwnerKey)
}

func TestEntity_MorphRelations(t *testing.T) {
	m := newTestModels()

	rel, err := m.users.Relation("morphs")
	require.NoError(t, err)
	assert.Equal(t, KindMorphTo, rel.Kind)
	assert.Nil(t, rel.Related)
	assert.Equal(t, "users.morphs_type", rel.MorphType)
	assert.Equal(t, "users.morphs_id", rel.ForeignKey)

	rel, err = m.profiles.Relation("company")
	require.NoError(t, err)
	assert.Equal(t, KindMorphOneOrMany, rel.Kind)
	assert.Equal(t, "companies.morphable_type", rel.MorphType)
	assert.Equal(t, "profile-type-string", rel.MorphClass)
}

func TestMapping(t *testing.T) {
	target, column := ParseMappedColumn("profile.company.name")
	assert.Equal(t, "profile.company", target)
	assert.Equal(t, "name", column)

	target, column = ParseMappedColumn("name")
	assert.Equal(t, "", target)
	assert.Equal(t, "name", column)

	name, alias := ExtractColumnAlias("profiles.bio as bio")
	assert.Equal(t, "profiles.bio", name)
	assert.Equal(t, "bio", alias)

	name, alias = ExtractColumnAlias("users.name AS author")
	assert.Equal(t, "users.name", name)
	assert.Equal(t, "author", alias)

	name, alias = ExtractColumnAlias("email")
	assert.Equal(t, "email", name)
	assert.Equal(t, "email", alias)
}
