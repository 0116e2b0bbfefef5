package eloquence

import "strings"

// -----------------------------------------------------------------------------
// RELATIONS
// -----------------------------------------------------------------------------
// Relation, iki model arasındaki ilişkinin değişmez bir anlık görüntüsüdür.
// Model.Relation her çağrıda yeni bir değer üretir; Joiner bu değeri sadece
// okur. Tüm kolon adları tablo adıyla nitelenmiş ("posts.user_id") tutulur.
//
// Alanların anlamı türe göre değişir:
//
//	kind             ForeignKey        OwnerKey / LocalKey   diğer
//	BelongsTo        parent.fk         related.owner         -
//	HasOneOrMany     related.fk        parent.local          -
//	MorphOneOrMany   related.{m}_id    parent.local          MorphType, MorphClass
//	BelongsToMany    -                 -                     Table, ForeignPivotKey, RelatedPivotKey
//	MorphToMany      -                 -                     + MorphType, MorphClass
//	HasManyThrough   -                 parent.local          Through, FirstKey, SecondKey, SecondLocalKey
//	MorphTo          parent.{m}_id     -                     MorphType
// -----------------------------------------------------------------------------

// RelationKind, ilişki türüdür. Sıfır değeri geçersizdir.
type RelationKind int

const (
	KindBelongsTo RelationKind = iota + 1
	KindHasOneOrMany
	KindBelongsToMany
	KindHasManyThrough
	KindMorphTo
	KindMorphOneOrMany
	KindMorphToMany
)

var relationKindNames = map[RelationKind]string{
	KindBelongsTo:      "belongs-to",
	KindHasOneOrMany:   "has-one-or-many",
	KindBelongsToMany:  "belongs-to-many",
	KindHasManyThrough: "has-many-through",
	KindMorphTo:        "morph-to",
	KindMorphOneOrMany: "morph-one-or-many",
	KindMorphToMany:    "morph-to-many",
}

func (k RelationKind) String() string {
	if name, ok := relationKindNames[k]; ok {
		return name
	}
	return "invalid"
}

// IsValid, k'nin tanımlı bir tür olup olmadığını söyler.
func (k RelationKind) IsValid() bool {
	_, ok := relationKindNames[k]
	return ok
}

// HasIntermediate, türün pivot ya da through tablosu üzerinden bağlandığını söyler.
func (k RelationKind) HasIntermediate() bool {
	return k == KindBelongsToMany || k == KindMorphToMany || k == KindHasManyThrough
}

// IsMorph, türün bir tip ayırıcı (morph type) koşulu taşıdığını söyler.
// MorphTo hariçtir; o join'lenemez.
func (k RelationKind) IsMorph() bool {
	return k == KindMorphOneOrMany || k == KindMorphToMany
}

// Relation, ilişki tanımının anlık görüntüsüdür.
type Relation struct {
	Kind    RelationKind
	Name    string
	Parent  Model
	Related Model

	ForeignKey string
	OwnerKey   string
	LocalKey   string

	// Pivot (BelongsToMany, MorphToMany)
	Table           string
	ForeignPivotKey string
	RelatedPivotKey string

	// Through (HasManyThrough)
	Through        Model
	FirstKey       string
	SecondKey      string
	SecondLocalKey string

	// Polimorfik ilişkiler
	MorphType  string
	MorphClass string
}

// Qualify, kolonu modelin tablosuyla niteler. Zaten nitelenmişse dokunmaz.
func Qualify(m Model, column string) string {
	if strings.Contains(column, ".") {
		return column
	}
	return m.Table() + "." + column
}

// QualifiedKey, modelin nitelenmiş birincil anahtarını döndürür ("users.id").
func QualifiedKey(m Model) string {
	return Qualify(m, m.KeyName())
}
