package eloquence

import (
	"github.com/biyonik/eloquence/pkg/database"
)

// -----------------------------------------------------------------------------
// MODEL BUILDER
// -----------------------------------------------------------------------------
// Builder, bir database.QueryBuilder'ı kök modeliyle birlikte taşır ve
// ilişki path'leri üzerinden join yapmayı sağlar.
//
//	b := eloquence.NewBuilder(database.NewBuilder(db, grammar), users)
//	col, err := b.JoinMapped("profile.company.name", database.LeftJoin)
//	b.Select("users.*", col+" as company_name").Where(col, "=", nil)
//
// Where'a nil değer verilirse (operatör <> veya != değilse) WhereNull'a,
// <> / != ile nil verilirse WhereNotNull'a çevrilir.
// -----------------------------------------------------------------------------

// Builder, model-farkında sorgu oluşturucu.
type Builder struct {
	query *database.QueryBuilder
	model Model
}

var _ ModelQuery = (*Builder)(nil)

// NewBuilder, sorguyu modelin tablosuna yönlendirip Builder üretir.
// Sorgunun tablosu zaten ayarlıysa değiştirilmez.
func NewBuilder(query *database.QueryBuilder, model Model) *Builder {
	if query.TableName() == "" {
		query.Table(model.Table())
	}
	return &Builder{query: query, model: model}
}

// Query, alttaki QueryBuilder'ı döndürür.
func (b *Builder) Query() *database.QueryBuilder { return b.query }

// Model, kök modeli döndürür.
func (b *Builder) Model() Model { return b.model }

func (b *Builder) joiner() *Joiner {
	return NewJoiner(b.query, b.model)
}

// Join, path'i INNER JOIN ile çözümler ve son modeli döndürür.
func (b *Builder) Join(path string) (Model, error) {
	return b.joiner().Join(path)
}

// LeftJoin, path'i LEFT JOIN ile çözümler.
func (b *Builder) LeftJoin(path string) (Model, error) {
	return b.joiner().LeftJoin(path)
}

// RightJoin, path'i RIGHT JOIN ile çözümler.
func (b *Builder) RightJoin(path string) (Model, error) {
	return b.joiner().RightJoin(path)
}

// JoinWithType, path'i verilen join tipiyle çözümler.
func (b *Builder) JoinWithType(path string, joinType database.JoinType) (Model, error) {
	return b.joiner().JoinWithType(path, joinType)
}

// JoinMapped, "profile.company.name" gibi eşlenmiş bir kolonun ilişki
// kısmını join'ler ve nitelenmiş kolonu ("companies.name") döndürür.
// İlişki kısmı boşsa join yapılmaz ve kök tablonun kolonu döner.
func (b *Builder) JoinMapped(mapping string, joinType database.JoinType) (string, error) {
	target, column := ParseMappedColumn(mapping)
	if column == "" {
		return "", ErrInvalidPath
	}
	if target == "" {
		return Qualify(b.model, column), nil
	}

	related, err := b.joiner().JoinWithType(target, joinType)
	if err != nil {
		return "", err
	}
	return related.Table() + "." + column, nil
}

// Select, SELECT kolonlarını ayarlar.
func (b *Builder) Select(columns ...string) *Builder {
	b.query.Select(columns...)
	return b
}

// Where, AND koşulu ekler. nil değerler IS (NOT) NULL'a çevrilir.
func (b *Builder) Where(column, operator string, value interface{}) *Builder {
	if value == nil {
		if operator == "<>" || operator == "!=" {
			b.query.WhereNotNull(column)
		} else {
			b.query.WhereNull(column)
		}
		return b
	}
	b.query.Where(column, operator, value)
	return b
}

// OrWhere, OR koşulu ekler.
func (b *Builder) OrWhere(column, operator string, value interface{}) *Builder {
	b.query.OrWhere(column, operator, value)
	return b
}

// WhereIn, IN koşulu ekler.
func (b *Builder) WhereIn(column string, values []interface{}) *Builder {
	b.query.WhereIn(column, values)
	return b
}

// WhereNull, IS NULL koşulu ekler.
func (b *Builder) WhereNull(column string) *Builder {
	b.query.WhereNull(column)
	return b
}

// OrderBy, sıralama ekler.
func (b *Builder) OrderBy(column, direction string) *Builder {
	b.query.OrderBy(column, direction)
	return b
}

// Limit, LIMIT ayarlar.
func (b *Builder) Limit(limit int) *Builder {
	b.query.Limit(limit)
	return b
}

// Offset, OFFSET ayarlar.
func (b *Builder) Offset(offset int) *Builder {
	b.query.Offset(offset)
	return b
}

// Subquery, builder'ı alias'lı bir alt sorguya sarar.
func (b *Builder) Subquery(alias string) *database.Subquery {
	return database.NewSubquery(b, alias)
}

// ToSQL, sorguyu derler.
func (b *Builder) ToSQL() (string, []interface{}, error) {
	return b.query.ToSQL()
}

// Get, sorguyu çalıştırıp dest slice'ına tarar.
func (b *Builder) Get(dest any) error {
	return b.query.Get(dest)
}

// First, ilk satırı dest'e tarar.
func (b *Builder) First(dest any) error {
	return b.query.First(dest)
}

// Paginate, toplam sayıyı ve istenen sayfayı getirir.
func (b *Builder) Paginate(page, perPage int, dest any) (*database.Page, error) {
	return b.query.Paginate(page, perPage, dest)
}
