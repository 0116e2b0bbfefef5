// -----------------------------------------------------------------------------
// Database Types - SQL Builder İçin Yardımcı Tipler
// -----------------------------------------------------------------------------
// QueryBuilder'ın state olarak taşıdığı clause tipleri burada tanımlanır:
// OrderClause, WhereClause, JoinClause ve JoinCondition.
//
// Kolon ve tablo adları ayrı alanlarda tutulur, değerler ise her zaman
// placeholder (?) ile bağlanır. SQL string'i sadece Grammar katmanında üretilir.
// -----------------------------------------------------------------------------

package database

import "strings"

// OrderDirection, ORDER BY için izin verilen yönleri temsil eder.
type OrderDirection string

const (
	OrderAsc  OrderDirection = "ASC"
	OrderDesc OrderDirection = "DESC"
)

// OrderClause, bir ORDER BY ifadesini temsil eder.
//
//	OrderClause{Column: "created_at", Direction: OrderDesc}
//	→ SQL: ORDER BY `created_at` DESC
type OrderClause struct {
	Column    string
	Direction OrderDirection
}

// WhereClause, bir WHERE koşulunu temsil eder.
//
// Alanlar:
//   - Column: Koşul uygulanacak kolon adı
//   - Operator: Karşılaştırma operatörü (=, <, >, LIKE, IN, IS, ...)
//   - Value: Prepared statement'a bağlanacak değer
//   - Boolean: Önceki koşulla bağlantı tipi ("AND" veya "OR")
type WhereClause struct {
	Column   string
	Operator string
	Value    interface{}
	Boolean  string
}

// JoinType, JOIN tiplerini temsil eden enum-like yapıdır.
type JoinType string

const (
	InnerJoin JoinType = "INNER"
	LeftJoin  JoinType = "LEFT"
	RightJoin JoinType = "RIGHT"
	CrossJoin JoinType = "CROSS"
)

// ParseJoinType, "inner", "LEFT" gibi serbest metni JoinType'a çevirir.
// Tanınmayan değerler için false döner.
func ParseJoinType(s string) (JoinType, bool) {
	switch JoinType(strings.ToUpper(strings.TrimSpace(s))) {
	case InnerJoin:
		return InnerJoin, true
	case LeftJoin:
		return LeftJoin, true
	case RightJoin:
		return RightJoin, true
	case CrossJoin:
		return CrossJoin, true
	}
	return "", false
}

// ConditionKind, bir JOIN koşulunun sağ tarafının ne olduğunu belirtir.
type ConditionKind int

const (
	// ConditionColumn: `a`.`x` = `b`.`y`
	ConditionColumn ConditionKind = iota
	// ConditionValue: `a`.`type` = ? (değer binding olarak gider)
	ConditionValue
	// ConditionNull: `a`.`deleted_at` IS NULL
	ConditionNull
	// ConditionNotNull: `a`.`verified_at` IS NOT NULL
	ConditionNotNull
)

// JoinCondition, JOIN ... ON kısmındaki tek bir predicate'dir.
type JoinCondition struct {
	Kind     ConditionKind
	First    string
	Operator string
	Second   string      // ConditionColumn için ikinci kolon
	Value    interface{} // ConditionValue için bağlanan değer
	Boolean  string      // "AND" veya "OR"
}

// JoinClause, bir JOIN ifadesini temsil eder.
//
// Alanlar:
//   - Type: JOIN tipi (INNER, LEFT, RIGHT, CROSS)
//   - Table: JOIN yapılacak tablo adı
//   - Conditions: ON ile başlayan predicate listesi (sıralı)
//
// Örnek Kullanım:
//
//	NewJoinClause(LeftJoin, "posts").
//	    On("posts.user_id", "=", "users.id").
//	    WhereNull("posts.deleted_at")
//	→ SQL: LEFT JOIN `posts` ON `posts`.`user_id` = `users`.`id` AND `posts`.`deleted_at` IS NULL
//
// İki JoinClause; tablo, tip ve koşulları yapısal olarak aynıysa eşittir
// (bkz. Equal). Aynı sorguya eşit iki join eklenmesi bu eşitlik üzerinden engellenir.
type JoinClause struct {
	Type       JoinType
	Table      string
	Conditions []JoinCondition
}
