package eloquence

import (
	"fmt"
	"strings"

	"github.com/biyonik/eloquence/pkg/database"
)

// -----------------------------------------------------------------------------
// JOINER
// -----------------------------------------------------------------------------
// Joiner, nokta ile ayrılmış ilişki path'lerini SQL join'lerine çevirir.
//
//	j := eloquence.NewJoiner(qb, users)
//	company, err := j.Join("profile.company")
//	// INNER JOIN profiles ON users.profile_id = profiles.id
//	// INNER JOIN companies ON companies.morphable_id = profiles.id
//	//                      AND companies.morphable_type = ?
//
// Her segment için önce tüm join'ler kurulur, sonra sorguya eklenir; hatalı
// bir segment sorguya yarım join bırakmaz. Önceki segmentlerin join'leri
// geçerli kalır. Yapısal olarak aynı bir join sorguda zaten varsa tekrar
// eklenmez, bu yüzden "a.b" ardından "a.c" a'yı bir kez join'ler.
//
// Joiner tek bir sorguya bağlıdır ve eşzamanlı kullanım için tasarlanmamıştır.
// -----------------------------------------------------------------------------

// JoinQuery, Joiner'ın sorgudan beklediği minimum arayüzdür.
// *database.QueryBuilder bunu sağlar.
type JoinQuery interface {
	HasJoin(join *database.JoinClause) bool
	AddJoin(join *database.JoinClause)
}

// Joiner, bir sorgu ve kök model çiftine bağlı path çözümleyicisidir.
type Joiner struct {
	query JoinQuery
	model Model
}

// NewJoiner, yeni bir Joiner oluşturur.
func NewJoiner(query JoinQuery, model Model) *Joiner {
	return &Joiner{query: query, model: model}
}

// Model, kök modeli döndürür.
func (j *Joiner) Model() Model { return j.model }

// Join, path'i INNER JOIN'lerle çözümler ve son segmentin modelini döndürür.
func (j *Joiner) Join(path string) (Model, error) {
	return j.JoinWithType(path, database.InnerJoin)
}

// LeftJoin, path'i LEFT JOIN'lerle çözümler.
func (j *Joiner) LeftJoin(path string) (Model, error) {
	return j.JoinWithType(path, database.LeftJoin)
}

// RightJoin, path'i RIGHT JOIN'lerle çözümler.
func (j *Joiner) RightJoin(path string) (Model, error) {
	return j.JoinWithType(path, database.RightJoin)
}

// JoinWithType, path'i verilen join tipiyle çözümler. Sadece INNER, LEFT
// ve RIGHT desteklenir.
func (j *Joiner) JoinWithType(path string, joinType database.JoinType) (Model, error) {
	switch joinType {
	case database.InnerJoin, database.LeftJoin, database.RightJoin:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidJoinType, joinType)
	}

	if j.model == nil {
		return nil, ErrNoModel
	}

	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	current := j.model
	for _, segment := range segments {
		current, err = j.joinSegment(current, segment, joinType)
		if err != nil {
			return nil, err
		}
	}
	return current, nil
}

func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	segments := strings.Split(path, ".")
	for _, s := range segments {
		if s == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, path)
		}
	}
	return segments, nil
}

// joinSegment, parent üzerindeki tek bir ilişkiyi join'ler.
func (j *Joiner) joinSegment(parent Model, segment string, joinType database.JoinType) (Model, error) {
	rel, err := parent.Relation(segment)
	if err != nil {
		return nil, err
	}

	clauses, err := buildClauses(parent, rel, joinType)
	if err != nil {
		return nil, &RelationError{Model: parent.Name(), Relation: segment, Kind: rel.Kind, Err: err}
	}

	for _, clause := range clauses {
		j.appendJoin(clause)
	}
	return rel.Related, nil
}

// buildClauses, ilişkinin gerektirdiği join'leri sırasıyla üretir:
// varsa pivot/through join'i, ardından hedef tablonun join'i.
func buildClauses(parent Model, rel Relation, joinType database.JoinType) ([]*database.JoinClause, error) {
	keys, err := resolveKeys(rel)
	if err != nil {
		return nil, err
	}
	if rel.Related == nil || (rel.Kind == KindHasManyThrough && rel.Through == nil) {
		return nil, ErrNoModel
	}

	clauses := make([]*database.JoinClause, 0, 2)

	if rel.Kind.HasIntermediate() {
		table, foreign := intermediateKeys(rel)
		clauses = append(clauses, database.NewJoinClause(joinType, table).
			On(foreign, "=", orDefault(rel.LocalKey, QualifiedKey(parent))))
	}

	join := database.NewJoinClause(joinType, rel.Related.Table()).
		On(keys.foreign, "=", keys.referenced)

	if sd, ok := rel.Related.(SoftDeletable); ok {
		if column := sd.QualifiedDeletedAtColumn(); column != "" {
			join.WhereNull(column)
		}
	}

	if rel.Kind.IsMorph() {
		join.Where(rel.MorphType, "=", rel.MorphClass)
	}

	return append(clauses, join), nil
}

// appendJoin, join sorguda yoksa ekler.
func (j *Joiner) appendJoin(join *database.JoinClause) bool {
	if j.query.HasJoin(join) {
		return false
	}
	j.query.AddJoin(join)
	return true
}
