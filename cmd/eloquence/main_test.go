package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biyonik/eloquence/pkg/eloquence"
)

const cliSchema = `
models:
  User:
    relations:
      profile: {type: belongs_to, model: Profile, foreign_key: profile_id}
      posts:   {type: has_many, model: Post, foreign_key: user_id}
  Profile:
    morph_class: profile
    relations:
      company: {type: morph_one, model: Company, morph_name: morphable}
  Company: {}
  Post:
    soft_deletes: true
`

func writeSchema(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cliSchema), 0o600))
	return path
}

func TestRun_PrintsJoinedSQL(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{
		"-schema", writeSchema(t),
		"-model", "User",
		"-path", "profile.company",
		"-type", "left",
		"-dialect", "sqlite",
	}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t,
		"-- User -> Company (companies)\n"+
			`SELECT * FROM "users" LEFT JOIN "profiles" ON "users"."profile_id" = "profiles"."id" `+
			`LEFT JOIN "companies" ON "companies"."morphable_id" = "profiles"."id" AND "companies"."morphable_type" = ?`+"\n"+
			"-- bindings: [profile]\n",
		stdout.String())
}

func TestRun_CountQuery(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{
		"-schema", writeSchema(t),
		"-model", "User",
		"-path", "posts",
		"-dialect", "mysql",
		"-count",
	}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(),
		"SELECT COUNT(*) AS aggregate FROM `users` INNER JOIN `posts` ON `posts`.`user_id` = `users`.`id` AND `posts`.`deleted_at` IS NULL")
}

func TestRun_Errors(t *testing.T) {
	schema := writeSchema(t)
	var stdout, stderr bytes.Buffer

	err := run([]string{"-schema", schema}, &stdout, &stderr)
	assert.Error(t, err, "model zorunlu")

	err = run([]string{"-schema", schema, "-model", "Ghost"}, &stdout, &stderr)
	assert.ErrorIs(t, err, eloquence.ErrUnknownModel)

	err = run([]string{"-schema", schema, "-model", "User", "-path", "nope"}, &stdout, &stderr)
	assert.ErrorIs(t, err, eloquence.ErrUnknownRelation)

	err = run([]string{"-schema", schema, "-model", "User", "-path", "profile", "-type", "outer"}, &stdout, &stderr)
	assert.ErrorIs(t, err, eloquence.ErrInvalidJoinType)
}
