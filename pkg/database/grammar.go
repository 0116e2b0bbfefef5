package database

// -----------------------------------------------------------------------------
// Grammar Interface
// -----------------------------------------------------------------------------
// Tüm compile metotları error döner. Lehçeler aynı compile mantığını paylaşır
// (bkz. sqlGrammar), sadece quote karakteri ve placeholder biçimi değişir.
// -----------------------------------------------------------------------------

// Grammar, SQL lehçesine özgü sorgu üretimini tanımlar.
//
// Implementasyonlar:
//   - MySQLGrammar: MySQL/MariaDB (backtick)
//   - SQLiteGrammar: SQLite (çift tırnak)
//   - PostgresGrammar: PostgreSQL (çift tırnak, $1 placeholder)
type Grammar interface {
	// Wrap, identifier'ları (kolon/tablo adları) lehçeye göre sarmalar.
	// "users.id" → `users`.`id`
	Wrap(value string) (string, error)

	// CompileSelect, SELECT sorgusu üretir. Placeholder'lar her zaman "?"
	// olarak yazılır; lehçeye çevirmek Rebind'in işidir.
	CompileSelect(qb *QueryBuilder) (string, []interface{}, error)

	// CompileInsert, INSERT sorgusu üretir.
	CompileInsert(table string, data map[string]interface{}) (string, []interface{}, error)

	// CompileUpdate, UPDATE sorgusu üretir.
	CompileUpdate(table string, data map[string]interface{}, wheres []WhereClause) (string, []interface{}, error)

	// CompileDelete, DELETE sorgusu üretir.
	CompileDelete(table string, wheres []WhereClause) (string, []interface{}, error)

	// Rebind, "?" placeholder'larını lehçenin biçimine çevirir.
	// MySQL ve SQLite için sorgu olduğu gibi döner.
	Rebind(query string) string
}
