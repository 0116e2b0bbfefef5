package eloquence

import "sort"

// -----------------------------------------------------------------------------
// MODELS
// -----------------------------------------------------------------------------
// Model, join çözümlemesinin ihtiyaç duyduğu tablo meta verisidir. Joiner
// modelleri sadece okur.
//
// Entity, Model'in bildirimsel bir implementasyonudur. İlişkiler tembel
// (lazy) tanımlanır: Relation çağrılana kadar hedef modelin tablo ve anahtar
// adları okunmaz, bu yüzden döngüsel model grafikleri sorunsuz kurulabilir.
//
//	users := eloquence.NewEntity("User")
//	profiles := eloquence.NewEntity("Profile")
//	companies := eloquence.NewEntity("Company")
//
//	users.BelongsTo("profile", profiles, "profile_id", "")
//	profiles.MorphOne("company", companies, "morphable")
// -----------------------------------------------------------------------------

// Model, join'lenebilir bir tablo tanımıdır.
type Model interface {
	// Name, modelin adıdır ("User"). Varsayılan anahtar adları buradan türetilir.
	Name() string
	Table() string
	KeyName() string
	// MorphClass, polimorfik tip kolonunda bu modeli temsil eden değerdir.
	MorphClass() string
	Relation(name string) (Relation, error)
}

// SoftDeletable, soft delete destekleyen modellerin opsiyonel arayüzüdür.
// Boş string soft delete'in kapalı olduğu anlamına gelir.
type SoftDeletable interface {
	QualifiedDeletedAtColumn() string
}

// Entity, bildirimsel Model implementasyonu.
type Entity struct {
	name       string
	table      string
	key        string
	morphClass string
	deletedAt  string
	relations  map[string]func() (Relation, error)
}

var _ Model = (*Entity)(nil)
var _ SoftDeletable = (*Entity)(nil)

// NewEntity, adı verilen model için varsayılan ayarlarla bir Entity üretir:
// tablo = çoğul snake_case ad, anahtar = "id", morph class = ad.
func NewEntity(name string) *Entity {
	return &Entity{
		name:       name,
		table:      TableName(name),
		key:        "id",
		morphClass: name,
		relations:  make(map[string]func() (Relation, error)),
	}
}

// SetTable, tablo adını değiştirir.
func (e *Entity) SetTable(table string) *Entity {
	e.table = table
	return e
}

// SetKeyName, birincil anahtar kolonunu değiştirir.
func (e *Entity) SetKeyName(key string) *Entity {
	e.key = key
	return e
}

// SetMorphClass, polimorfik tip değerini değiştirir.
func (e *Entity) SetMorphClass(class string) *Entity {
	e.morphClass = class
	return e
}

// SoftDeletes, soft delete'i açar. Kolon verilmezse "deleted_at" kullanılır.
func (e *Entity) SoftDeletes(column ...string) *Entity {
	e.deletedAt = "deleted_at"
	if len(column) > 0 && column[0] != "" {
		e.deletedAt = column[0]
	}
	return e
}

func (e *Entity) Name() string       { return e.name }
func (e *Entity) Table() string      { return e.table }
func (e *Entity) KeyName() string    { return e.key }
func (e *Entity) MorphClass() string { return e.morphClass }

// QualifiedDeletedAtColumn, soft delete kolonunu nitelenmiş olarak döndürür.
func (e *Entity) QualifiedDeletedAtColumn() string {
	if e.deletedAt == "" {
		return ""
	}
	return Qualify(e, e.deletedAt)
}

// Define, özel bir ilişki accessor'ı kaydeder. Aynı adla tekrar çağrılırsa
// önceki tanımın üzerine yazar.
func (e *Entity) Define(name string, accessor func() (Relation, error)) *Entity {
	e.relations[name] = accessor
	return e
}

// Relation, adı verilen ilişkinin anlık görüntüsünü üretir.
func (e *Entity) Relation(name string) (Relation, error) {
	accessor, ok := e.relations[name]
	if !ok {
		return Relation{}, &RelationError{Model: e.name, Relation: name, Err: ErrUnknownRelation}
	}

	rel, err := accessor()
	if err != nil {
		return Relation{}, err
	}
	rel.Name = name
	if rel.Parent == nil {
		rel.Parent = e
	}
	return rel, nil
}

// HasRelation, ilişki adının tanımlı olup olmadığını söyler.
func (e *Entity) HasRelation(name string) bool {
	_, ok := e.relations[name]
	return ok
}

// RelationNames, tanımlı ilişki adlarını alfabetik sırayla döndürür.
func (e *Entity) RelationNames() []string {
	names := make([]string, 0, len(e.relations))
	for name := range e.relations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
