// -----------------------------------------------------------------------------
// Subquery
// -----------------------------------------------------------------------------
// Bir QueryBuilder'ı başka bir sorgunun içine gömülebilir ifadeye çevirir:
//
//	(SELECT * FROM `table` WHERE `id` = ?) AS `table_alias`
//
// Subquery, iç sorguya şeffaf bir sarmalayıcıdır; ancak her çağrıyı körlemesine
// iletmek yerine sadece aşağıdaki açık delegasyon metotlarını sunar. Daha
// fazlası gerekiyorsa Query() ile iç builder'a doğrudan erişilir.
// -----------------------------------------------------------------------------

package database

import "fmt"

// QueryProvider, altında bir QueryBuilder taşıyan her şeydir. Hem
// *QueryBuilder hem de model-farkında builder'lar bu arayüzü sağlar.
type QueryProvider interface {
	Query() *QueryBuilder
}

// Subquery, alias'lı veya alias'sız bir alt sorgudur.
type Subquery struct {
	query *QueryBuilder
	alias string
}

// NewSubquery, verilen sorgudan yeni bir Subquery üretir. alias boş
// bırakılabilir.
//
//	sub := database.NewSubquery(qb.Table("orders").Where("total", ">", 100), "big_orders")
//	outer := database.NewBuilder(db, grammar).FromSub(sub)
func NewSubquery(source QueryProvider, alias string) *Subquery {
	return &Subquery{query: source.Query(), alias: alias}
}

// Query, alttaki builder'ı döndürür.
func (s *Subquery) Query() *QueryBuilder {
	return s.query
}

// SetQuery, alttaki builder'ı değiştirir.
func (s *Subquery) SetQuery(query *QueryBuilder) {
	s.query = query
}

// Alias, alt sorgunun alias'ını döndürür.
func (s *Subquery) Alias() string {
	return s.alias
}

// SetAlias, alias'ı değiştirir ve zincirleme için Subquery'yi döndürür.
func (s *Subquery) SetAlias(alias string) *Subquery {
	s.alias = alias
	return s
}

// ToSQL, alt sorguyu parantez içinde ve varsa alias ile derler.
// Placeholder'lar "?" olarak kalır; dış sorgu kendi Rebind'ini uygular.
func (s *Subquery) ToSQL() (string, []interface{}, error) {
	return s.compile()
}

// String, derlenmiş ifadeyi log ve debug çıktısı için döndürür. Derleme
// hatası yutulur ve boş string döner; ifadeyi başka bir SQL'e gömerken
// hatayı gören ToSQL kullanılmalıdır.
func (s *Subquery) String() string {
	sql, _, err := s.compile()
	if err != nil {
		return ""
	}
	return sql
}

func (s *Subquery) compile() (string, []interface{}, error) {
	if s.query == nil {
		return "", nil, fmt.Errorf("subquery has no query")
	}

	inner, args, err := s.query.grammar.CompileSelect(s.query)
	if err != nil {
		return "", nil, err
	}

	sql := "(" + inner + ")"
	if s.alias != "" {
		alias, err := s.query.grammar.Wrap(s.alias)
		if err != nil {
			return "", nil, fmt.Errorf("subquery alias wrap error: %w", err)
		}
		sql += " AS " + alias
	}
	return sql, args, nil
}

// -----------------------------------------------------------------------------
// Delegasyon
// -----------------------------------------------------------------------------

// Table, iç sorgunun tablosunu belirler.
func (s *Subquery) Table(table string) *Subquery {
	s.query.Table(table)
	return s
}

// Select, iç sorgunun kolonlarını belirler.
func (s *Subquery) Select(columns ...string) *Subquery {
	s.query.Select(columns...)
	return s
}

// Where, iç sorguya AND koşulu ekler.
func (s *Subquery) Where(column, operator string, value interface{}) *Subquery {
	s.query.Where(column, operator, value)
	return s
}

// OrWhere, iç sorguya OR koşulu ekler.
func (s *Subquery) OrWhere(column, operator string, value interface{}) *Subquery {
	s.query.OrWhere(column, operator, value)
	return s
}

// WhereIn, iç sorguya IN koşulu ekler.
func (s *Subquery) WhereIn(column string, values []interface{}) *Subquery {
	s.query.WhereIn(column, values)
	return s
}

// WhereNull, iç sorguya IS NULL koşulu ekler.
func (s *Subquery) WhereNull(column string) *Subquery {
	s.query.WhereNull(column)
	return s
}

// Join, iç sorguya INNER JOIN ekler.
func (s *Subquery) Join(table, first, operator, second string) *Subquery {
	s.query.Join(table, first, operator, second)
	return s
}

// LeftJoin, iç sorguya LEFT JOIN ekler.
func (s *Subquery) LeftJoin(table, first, operator, second string) *Subquery {
	s.query.LeftJoin(table, first, operator, second)
	return s
}

// OrderBy, iç sorguya sıralama ekler.
func (s *Subquery) OrderBy(column, direction string) *Subquery {
	s.query.OrderBy(column, direction)
	return s
}

// Limit, iç sorgunun satır limitini belirler.
func (s *Subquery) Limit(limit int) *Subquery {
	s.query.Limit(limit)
	return s
}

// Offset, iç sorgunun offset'ini belirler.
func (s *Subquery) Offset(offset int) *Subquery {
	s.query.Offset(offset)
	return s
}
