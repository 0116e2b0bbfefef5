package database

import (
	"fmt"
	"regexp"
	"strings"
)

// -----------------------------------------------------------------------------
// QUERY BUILDER
// -----------------------------------------------------------------------------
// QueryBuilder; tablo (veya alt sorgu), kolonlar, join'ler, where'lar, order,
// limit ve offset state'ini tutar. SQL üretimi Grammar'a delege edilir.
//
// GÜVENLİK:
// - Identifier'lar validateIdentifier ile kontrol edilir (geçersizse panic)
// - Değerler her zaman prepared statement ile bağlanır
// - Sıralama yönü whitelist'ten geçer
// -----------------------------------------------------------------------------

// validIdentifierRegex, güvenli SQL identifier pattern'ini tanımlar.
// Sadece alphanumeric, underscore ve nokta (table.column için) kabul eder.
var validIdentifierRegex = regexp.MustCompile(`^[a-zA-Z0-9_\.\*]+$`)

// validFunctionRegex, SELECT listesindeki aggregate ifadelerini tanımlar:
// COUNT(*), SUM(price), COUNT(DISTINCT users.id) as total.
var validFunctionRegex = regexp.MustCompile(`(?i)^[a-z_]+\((distinct )?(\*|[a-z0-9_]+(\.[a-z0-9_]+)?)\)( as [a-z0-9_]+)?$`)

type QueryBuilder struct {
	executor QueryExecutor
	grammar  Grammar
	table    string
	from     *Subquery
	columns  []string
	joins    []*JoinClause
	wheres   []WhereClause
	orders   []OrderClause
	limit    int
	offset   int
}

// NewBuilder, executor ve grammar alarak yeni QueryBuilder üretir.
//
// Parametreler:
//   - executor: SQL komutlarını çalıştıracak executor (*sql.DB veya *sql.Tx).
//     Sadece SQL üretilecekse nil verilebilir.
//   - grammar: SQL lehçesi (MySQL, SQLite, PostgreSQL)
func NewBuilder(executor QueryExecutor, grammar Grammar) *QueryBuilder {
	return &QueryBuilder{
		executor: executor,
		grammar:  grammar,
		columns:  []string{"*"},
	}
}

// validateIdentifier, SQL identifier'ı (column/table adı) validate eder.
//
// GÜVENLİK KRİTİK:
// Geçersiz identifier bulunursa panic atar. İzin verilenler: harf, rakam,
// underscore ve table.column için tek bir nokta. "users.*" de geçerlidir.
//
//   - ✅ "users.id"
//   - ❌ "id; DROP TABLE users--" → panic
func validateIdentifier(identifier string, context string) {
	if identifier == "*" {
		return
	}

	if strings.TrimSpace(identifier) == "" {
		panic(fmt.Sprintf("Invalid %s name: empty identifier", context))
	}

	if !validIdentifierRegex.MatchString(identifier) {
		panic(fmt.Sprintf("Invalid %s name: '%s' (contains unsafe characters)", context, identifier))
	}

	parts := strings.Split(identifier, ".")
	if len(parts) > 2 {
		panic(fmt.Sprintf("Invalid %s name: '%s' (too many dots)", context, identifier))
	}
	for i, part := range parts {
		if strings.TrimSpace(part) == "" {
			panic(fmt.Sprintf("Invalid %s name: '%s' (empty part)", context, identifier))
		}
		// Wildcard sadece "table.*" biçiminde kabul edilir
		if strings.Contains(part, "*") && (part != "*" || i == 0) {
			panic(fmt.Sprintf("Invalid %s name: '%s' (misplaced wildcard)", context, identifier))
		}
	}
}

// Query, builder'ın kendisini döndürür; böylece *QueryBuilder da
// QueryProvider olarak kullanılabilir (örn. NewSubquery).
func (qb *QueryBuilder) Query() *QueryBuilder {
	return qb
}

// Grammar, builder'ın kullandığı lehçeyi döndürür.
func (qb *QueryBuilder) Grammar() Grammar {
	return qb.grammar
}

// Table, sorgunun çalışacağı tablo adını belirler.
//
//	qb.Table("users")
func (qb *QueryBuilder) Table(tableName string) *QueryBuilder {
	validateIdentifier(tableName, "table")
	qb.table = tableName
	qb.from = nil
	return qb
}

// TableName, FROM kısmındaki tablo adını döndürür (alt sorgu ise alias).
func (qb *QueryBuilder) TableName() string {
	if qb.from != nil {
		return qb.from.Alias()
	}
	return qb.table
}

// FromSub, FROM kısmına bir alt sorgu yerleştirir.
//
//	sub := NewSubquery(inner, "t")
//	qb.FromSub(sub).Select("t.id")
//	→ SELECT `t`.`id` FROM (SELECT ...) AS `t`
func (qb *QueryBuilder) FromSub(sub *Subquery) *QueryBuilder {
	qb.from = sub
	qb.table = ""
	return qb
}

// FromSubquery, FROM kısmı bir alt sorgu ise onu döndürür.
func (qb *QueryBuilder) FromSubquery() *Subquery {
	return qb.from
}

// Select, sorgudan döndürülecek kolonları belirler.
//
//	qb.Select("id", "name", "email")
//	qb.Select("users.*", "profiles.bio")
//	qb.Select("COUNT(*) as total")
func (qb *QueryBuilder) Select(columns ...string) *QueryBuilder {
	for _, col := range columns {
		// SQL fonksiyonları sadece FN(kolon) [as alias] biçiminde kabul edilir.
		if strings.Contains(col, "(") || strings.Contains(col, ")") {
			if !validFunctionRegex.MatchString(col) {
				panic(fmt.Sprintf("Invalid column expression: '%s' (suspicious content)", col))
			}
			continue
		}

		if idx := strings.Index(strings.ToLower(col), " as "); idx > 0 {
			validateIdentifier(strings.TrimSpace(col[:idx]), "column")
			validateIdentifier(strings.TrimSpace(col[idx+4:]), "column alias")
			continue
		}

		validateIdentifier(col, "column")
	}

	qb.columns = columns
	return qb
}

// Columns, seçili kolon listesini döndürür.
func (qb *QueryBuilder) Columns() []string {
	return qb.columns
}

// -----------------------------------------------------------------------------
// JOIN
// -----------------------------------------------------------------------------

// Join, INNER JOIN ekler.
//
//	qb.Table("users").Join("posts", "posts.user_id", "=", "users.id")
//	→ INNER JOIN `posts` ON `posts`.`user_id` = `users`.`id`
func (qb *QueryBuilder) Join(table, first, operator, second string) *QueryBuilder {
	return qb.joinOn(InnerJoin, table, first, operator, second)
}

// LeftJoin, LEFT JOIN ekler.
func (qb *QueryBuilder) LeftJoin(table, first, operator, second string) *QueryBuilder {
	return qb.joinOn(LeftJoin, table, first, operator, second)
}

// RightJoin, RIGHT JOIN ekler.
func (qb *QueryBuilder) RightJoin(table, first, operator, second string) *QueryBuilder {
	return qb.joinOn(RightJoin, table, first, operator, second)
}

// CrossJoin, koşulsuz CROSS JOIN ekler.
func (qb *QueryBuilder) CrossJoin(table string) *QueryBuilder {
	validateIdentifier(table, "table")
	qb.joins = append(qb.joins, NewJoinClause(CrossJoin, table))
	return qb
}

func (qb *QueryBuilder) joinOn(joinType JoinType, table, first, operator, second string) *QueryBuilder {
	validateIdentifier(table, "table")
	validateIdentifier(first, "column")
	validateIdentifier(second, "column")

	qb.joins = append(qb.joins, NewJoinClause(joinType, table).On(first, operator, second))
	return qb
}

// AddJoin, önceden kurulmuş bir JoinClause'u sona ekler. Mevcut join'lerin
// sırası hiçbir zaman değişmez.
func (qb *QueryBuilder) AddJoin(join *JoinClause) {
	qb.joins = append(qb.joins, join)
}

// Joins, kayıtlı join'leri eklenme sırasıyla döndürür. Dönen slice sadece
// okunmalıdır; ekleme AddJoin ile yapılır.
func (qb *QueryBuilder) Joins() []*JoinClause {
	return qb.joins
}

// HasJoin, yapısal olarak eşit bir join'in zaten kayıtlı olup olmadığını söyler.
func (qb *QueryBuilder) HasJoin(join *JoinClause) bool {
	for _, existing := range qb.joins {
		if existing.Equal(join) {
			return true
		}
	}
	return false
}

// -----------------------------------------------------------------------------
// WHERE
// -----------------------------------------------------------------------------

// Where, sorguya bir AND WHERE koşulu ekler.
//
//	qb.Where("status", "=", "active")
//	qb.Where("age", ">", 18)
//
// Operator whitelist kontrolü Grammar katmanında yapılır.
func (qb *QueryBuilder) Where(column string, operator string, value interface{}) *QueryBuilder {
	return qb.addWhere(column, operator, value, "AND")
}

// OrWhere, sorguya bir OR WHERE koşulu ekler.
//
//	qb.Where("role", "=", "admin").OrWhere("role", "=", "moderator")
//	→ WHERE `role` = ? OR `role` = ?
func (qb *QueryBuilder) OrWhere(column string, operator string, value interface{}) *QueryBuilder {
	return qb.addWhere(column, operator, value, "OR")
}

// WhereIn, kolonun değerinin verilen listede olmasını ister.
//
//	qb.WhereIn("status", []interface{}{"active", "pending"})
//	→ WHERE `status` IN (?, ?)
func (qb *QueryBuilder) WhereIn(column string, values []interface{}) *QueryBuilder {
	return qb.addWhere(column, "IN", values, "AND")
}

// WhereNotIn, kolonun değerinin listede olmamasını ister.
func (qb *QueryBuilder) WhereNotIn(column string, values []interface{}) *QueryBuilder {
	return qb.addWhere(column, "NOT IN", values, "AND")
}

// WhereBetween, kolonun değerinin iki değer arasında olmasını ister.
//
//	qb.WhereBetween("age", 18, 65) → WHERE `age` BETWEEN ? AND ?
func (qb *QueryBuilder) WhereBetween(column string, min, max interface{}) *QueryBuilder {
	return qb.addWhere(column, "BETWEEN", []interface{}{min, max}, "AND")
}

// WhereNotBetween, kolonun değerinin iki değer arasında olmamasını ister.
func (qb *QueryBuilder) WhereNotBetween(column string, min, max interface{}) *QueryBuilder {
	return qb.addWhere(column, "NOT BETWEEN", []interface{}{min, max}, "AND")
}

// WhereNull, kolonun NULL olmasını ister.
//
// Soft delete pattern'inde aktif kayıtları bulmak için kullanılır.
func (qb *QueryBuilder) WhereNull(column string) *QueryBuilder {
	return qb.addWhere(column, "IS", nil, "AND")
}

// WhereNotNull, kolonun NULL olmamasını ister.
func (qb *QueryBuilder) WhereNotNull(column string) *QueryBuilder {
	return qb.addWhere(column, "IS NOT", nil, "AND")
}

// WhereDate, tarih kolonunun belirli bir güne eşit olmasını ister.
//
//	qb.WhereDate("created_at", "2024-01-15") → WHERE DATE(`created_at`) = ?
func (qb *QueryBuilder) WhereDate(column string, date string) *QueryBuilder {
	return qb.whereFunc("DATE", column, date)
}

// WhereYear, tarih kolonunun yılını kontrol eder.
func (qb *QueryBuilder) WhereYear(column string, year int) *QueryBuilder {
	return qb.whereFunc("YEAR", column, year)
}

// WhereMonth, tarih kolonunun ayını kontrol eder (1-12).
func (qb *QueryBuilder) WhereMonth(column string, month int) *QueryBuilder {
	return qb.whereFunc("MONTH", column, month)
}

// WhereDay, tarih kolonunun gününü kontrol eder (1-31).
func (qb *QueryBuilder) WhereDay(column string, day int) *QueryBuilder {
	return qb.whereFunc("DAY", column, day)
}

func (qb *QueryBuilder) whereFunc(fn, column string, value interface{}) *QueryBuilder {
	validateIdentifier(column, "column")

	qb.wheres = append(qb.wheres, WhereClause{
		Column:   fn + "(" + column + ")",
		Operator: "=",
		Value:    value,
		Boolean:  "AND",
	})
	return qb
}

func (qb *QueryBuilder) addWhere(column, operator string, value interface{}, boolean string) *QueryBuilder {
	validateIdentifier(column, "column")

	qb.wheres = append(qb.wheres, WhereClause{
		Column:   column,
		Operator: operator,
		Value:    value,
		Boolean:  boolean,
	})
	return qb
}

// -----------------------------------------------------------------------------
// ORDER / LIMIT / OFFSET
// -----------------------------------------------------------------------------

// OrderBy, sonuçları verilen kolona göre sıralar. direction whitelist'ten
// geçer; "ASC"/"DESC" dışındaki her değer ASC kabul edilir.
//
//	qb.OrderBy("created_at", "desc")
func (qb *QueryBuilder) OrderBy(column string, direction string) *QueryBuilder {
	validateIdentifier(column, "column")

	orderDir := OrderAsc
	if strings.ToUpper(strings.TrimSpace(direction)) == string(OrderDesc) {
		orderDir = OrderDesc
	}

	qb.orders = append(qb.orders, OrderClause{
		Column:    column,
		Direction: orderDir,
	})
	return qb
}

// Limit, döndürülecek maksimum satır sayısını belirler.
func (qb *QueryBuilder) Limit(limit int) *QueryBuilder {
	qb.limit = limit
	return qb
}

// Offset, atlanacak satır sayısını belirler.
//
//	qb.Limit(10).Offset(20) → LIMIT 10 OFFSET 20 (3. sayfa)
func (qb *QueryBuilder) Offset(offset int) *QueryBuilder {
	qb.offset = offset
	return qb
}

// Clone, builder'ın bağımsız bir kopyasını üretir. Join'ler de kopyalanır;
// kopya üzerinde yapılan değişiklikler orijinali etkilemez.
func (qb *QueryBuilder) Clone() *QueryBuilder {
	c := *qb
	c.columns = append([]string(nil), qb.columns...)
	c.wheres = append([]WhereClause(nil), qb.wheres...)
	c.orders = append([]OrderClause(nil), qb.orders...)
	c.joins = make([]*JoinClause, len(qb.joins))
	for i, j := range qb.joins {
		c.joins[i] = j.Clone()
	}
	return &c
}

// -----------------------------------------------------------------------------
// EXECUTION
// -----------------------------------------------------------------------------

// ToSQL, builder state'ini lehçeye uygun SQL'e ve parametrelere dönüştürür.
//
//	sql, args, err := qb.ToSQL()
//	// SELECT `id`, `name` FROM `users` WHERE `status` = ? ORDER BY `created_at` DESC LIMIT 10
func (qb *QueryBuilder) ToSQL() (string, []interface{}, error) {
	sql, args, err := qb.grammar.CompileSelect(qb)
	if err != nil {
		return "", nil, err
	}
	return qb.grammar.Rebind(sql), args, nil
}

// Get, sorguyu çalıştırır ve sonuçları bir struct slice'ına tarar.
//
//	var users []User
//	err := qb.Table("users").Where("status", "=", "active").Get(&users)
func (qb *QueryBuilder) Get(dest any) error {
	sqlStr, args, err := qb.ToSQL()
	if err != nil {
		return fmt.Errorf("query compilation failed: %w", err)
	}

	rows, err := qb.executor.Query(sqlStr, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	return ScanSlice(rows, dest)
}

// GetMaps, sorguyu çalıştırır ve her satırı kolon adı → değer map'i olarak döndürür.
func (qb *QueryBuilder) GetMaps() ([]map[string]interface{}, error) {
	sqlStr, args, err := qb.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("query compilation failed: %w", err)
	}

	rows, err := qb.executor.Query(sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rowsToMaps(rows)
}

// First, sorguyu LIMIT 1 ile çalıştırır ve ilk satırı dest'e tarar.
// Satır yoksa sql.ErrNoRows döner.
func (qb *QueryBuilder) First(dest any) error {
	qb.Limit(1)

	sqlStr, args, err := qb.ToSQL()
	if err != nil {
		return fmt.Errorf("query compilation failed: %w", err)
	}

	rows, err := qb.executor.Query(sqlStr, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return errNoRows
	}

	return ScanStruct(rows, dest)
}
