package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func usersBlueprint() *Blueprint {
	b := NewBlueprint("posts")
	b.ID()
	b.String("title", 200)
	b.Text("body").Nullable()
	b.Boolean("published").Default(false)
	b.BigInteger("user_id").Unsigned()
	b.Foreign("user_id").References("id").On("users").Cascade()
	b.Unique("title")
	b.SoftDeletes()
	return b
}

func TestMySQLGrammar_CompileCreateTable(t *testing.T) {
	sql := NewMySQLGrammar().CompileCreateTable(usersBlueprint())

	assert.Equal(t, "CREATE TABLE `posts` (\n"+
		"  `id` BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,\n"+
		"  `title` VARCHAR(200) NOT NULL,\n"+
		"  `body` TEXT NULL,\n"+
		"  `published` TINYINT(1) NOT NULL DEFAULT 0,\n"+
		"  `user_id` BIGINT UNSIGNED NOT NULL,\n"+
		"  `deleted_at` TIMESTAMP NULL,\n"+
		"  UNIQUE KEY `posts_title_unique` (`title`),\n"+
		"  FOREIGN KEY (`user_id`) REFERENCES `users` (`id`) ON DELETE CASCADE ON UPDATE CASCADE\n"+
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci", sql)
}

func TestSQLiteGrammar_CompileCreateTable(t *testing.T) {
	sql := NewSQLiteGrammar().CompileCreateTable(usersBlueprint())

	assert.Equal(t, "CREATE TABLE \"posts\" (\n"+
		"  \"id\" INTEGER PRIMARY KEY AUTOINCREMENT,\n"+
		"  \"title\" VARCHAR(200) NOT NULL,\n"+
		"  \"body\" TEXT NULL,\n"+
		"  \"published\" INTEGER NOT NULL DEFAULT 0,\n"+
		"  \"user_id\" BIGINT NOT NULL,\n"+
		"  \"deleted_at\" TIMESTAMP NULL,\n"+
		"  UNIQUE (\"title\"),\n"+
		"  FOREIGN KEY (\"user_id\") REFERENCES \"users\" (\"id\") ON DELETE CASCADE ON UPDATE CASCADE\n"+
		")", sql)
}

func TestSQLiteGrammar_MorphsAppendIndexStatement(t *testing.T) {
	b := NewBlueprint("companies")
	b.ID()
	b.Morphs("morphable")

	sql := NewSQLiteGrammar().CompileCreateTable(b)

	assert.Contains(t, sql, "\"morphable_id\" BIGINT NOT NULL")
	assert.Contains(t, sql, "\"morphable_type\" VARCHAR(255) NOT NULL")
	assert.Contains(t, sql,
		";\nCREATE INDEX \"companies_morphable_type_morphable_id_index\" ON \"companies\" (\"morphable_type\", \"morphable_id\")")
}

func TestGrammars_AlterStatements(t *testing.T) {
	mysql := NewMySQLGrammar()
	sqlite := NewSQLiteGrammar()
	col := &Column{Name: "bio", Type: ColumnTypeString, Length: 100, IsNullable: true}
	idx := Index{Name: "users_email_unique", Columns: []string{"email"}, Type: IndexTypeUnique}

	assert.Equal(t, "ALTER TABLE `users` ADD COLUMN `bio` VARCHAR(100) NULL", mysql.CompileAddColumn("users", col))
	assert.Equal(t, `ALTER TABLE "users" ADD COLUMN "bio" VARCHAR(100) NULL`, sqlite.CompileAddColumn("users", col))

	assert.Equal(t, "ALTER TABLE `users` ADD UNIQUE KEY `users_email_unique` (`email`)", mysql.CompileAddIndex("users", idx))
	assert.Equal(t, `CREATE UNIQUE INDEX "users_email_unique" ON "users" ("email")`, sqlite.CompileAddIndex("users", idx))

	assert.Equal(t, "ALTER TABLE `users` DROP INDEX `users_email_unique`", mysql.CompileDropIndex("users", "users_email_unique"))
	assert.Equal(t, `DROP INDEX IF EXISTS "users_email_unique"`, sqlite.CompileDropIndex("users", "users_email_unique"))

	assert.Equal(t, "DROP TABLE IF EXISTS `users`", mysql.CompileDropTable("users"))
	assert.Equal(t, "ALTER TABLE `users` DROP COLUMN `bio`", mysql.CompileDropColumn("users", "bio"))
}

func TestCompileDefault_EscapesQuotes(t *testing.T) {
	assert.Equal(t, "DEFAULT 'it''s'", compileDefault("it's"))
	assert.Equal(t, "DEFAULT 1", compileDefault(true))
	assert.Equal(t, "DEFAULT 42", compileDefault(42))
}

func TestPostgresGrammar_CompileCreateTable(t *testing.T) {
	sql := NewPostgresGrammar().CompileCreateTable(usersBlueprint())

	assert.Equal(t, "CREATE TABLE \"posts\" (\n"+
		"  \"id\" BIGSERIAL PRIMARY KEY,\n"+
		"  \"title\" VARCHAR(200) NOT NULL,\n"+
		"  \"body\" TEXT NULL,\n"+
		"  \"published\" BOOLEAN NOT NULL DEFAULT false,\n"+
		"  \"user_id\" BIGINT NOT NULL,\n"+
		"  \"deleted_at\" TIMESTAMP NULL,\n"+
		"  CONSTRAINT \"posts_title_unique\" UNIQUE (\"title\"),\n"+
		"  FOREIGN KEY (\"user_id\") REFERENCES \"users\" (\"id\") ON DELETE CASCADE ON UPDATE CASCADE\n"+
		")", sql)
}

func TestPostgresGrammar_QueriesUseNumberedPlaceholders(t *testing.T) {
	g := NewPostgresGrammar()

	assert.Contains(t, g.CompileColumnListing(), "table_name = $1")
	assert.Contains(t, g.CompileTableExists(), "table_name = $1")
	assert.Equal(t, "INSERT INTO migrations (migration, batch) VALUES ($1, $2)",
		g.Rebind("INSERT INTO migrations (migration, batch) VALUES (?, ?)"))
}

func TestGrammarFor(t *testing.T) {
	assert.IsType(t, &MySQLGrammar{}, GrammarFor("mysql"))
	assert.IsType(t, &SQLiteGrammar{}, GrammarFor("sqlite"))
	assert.IsType(t, &PostgresGrammar{}, GrammarFor("PostgreSQL"))
}
