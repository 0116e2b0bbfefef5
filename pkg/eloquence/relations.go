package eloquence

// Entity üzerinde ilişki tanımlayıcıları. Boş string verilen anahtarlar
// isimlendirme kurallarına göre doldurulur. Kolonlar çağrı anında değil
// Relation çözümlenirken nitelenir.

func (e *Entity) define(name string, build func() Relation) *Entity {
	return e.Define(name, func() (Relation, error) {
		return build(), nil
	})
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// BelongsTo, ters bire-bir/bire-çok ilişki tanımlar. Yabancı anahtar bu
// modelin tablosundadır.
//
//	foreignKey varsayılanı: {snake(name)}_{related.KeyName()}
//	ownerKey varsayılanı:   related.KeyName()
func (e *Entity) BelongsTo(name string, related Model, foreignKey, ownerKey string) *Entity {
	return e.define(name, func() Relation {
		owner := orDefault(ownerKey, related.KeyName())
		return Relation{
			Kind:       KindBelongsTo,
			Parent:     e,
			Related:    related,
			ForeignKey: Qualify(e, orDefault(foreignKey, snake(name)+"_"+related.KeyName())),
			OwnerKey:   Qualify(related, owner),
		}
	})
}

// HasOne, bire-bir ilişki tanımlar. Yabancı anahtar hedef tablodadır.
//
//	foreignKey varsayılanı: {snake(e.Name())}_id
//	localKey varsayılanı:   e.KeyName()
func (e *Entity) HasOne(name string, related Model, foreignKey, localKey string) *Entity {
	return e.hasOneOrMany(name, related, foreignKey, localKey)
}

// HasMany, bire-çok ilişki tanımlar. Anahtar kuralları HasOne ile aynıdır.
func (e *Entity) HasMany(name string, related Model, foreignKey, localKey string) *Entity {
	return e.hasOneOrMany(name, related, foreignKey, localKey)
}

func (e *Entity) hasOneOrMany(name string, related Model, foreignKey, localKey string) *Entity {
	return e.define(name, func() Relation {
		return Relation{
			Kind:       KindHasOneOrMany,
			Parent:     e,
			Related:    related,
			ForeignKey: Qualify(related, orDefault(foreignKey, ForeignKeyName(e.Name()))),
			LocalKey:   Qualify(e, orDefault(localKey, e.KeyName())),
		}
	})
}

// BelongsToMany, pivot tablo üzerinden çoka-çok ilişki tanımlar.
//
//	table varsayılanı:           PivotTableName(e.Name(), related.Name())
//	foreignPivotKey varsayılanı: {snake(e.Name())}_id
//	relatedPivotKey varsayılanı: {snake(related.Name())}_id
func (e *Entity) BelongsToMany(name string, related Model, table, foreignPivotKey, relatedPivotKey string) *Entity {
	return e.define(name, func() Relation {
		pivot := orDefault(table, PivotTableName(e.Name(), related.Name()))
		return Relation{
			Kind:            KindBelongsToMany,
			Parent:          e,
			Related:         related,
			Table:           pivot,
			ForeignPivotKey: pivot + "." + orDefault(foreignPivotKey, ForeignKeyName(e.Name())),
			RelatedPivotKey: pivot + "." + orDefault(relatedPivotKey, ForeignKeyName(related.Name())),
			LocalKey:        QualifiedKey(e),
		}
	})
}

// HasManyThrough, ara bir model üzerinden bire-çok ilişki tanımlar.
//
//	firstKey varsayılanı:       {snake(e.Name())}_id       (through tablosunda)
//	secondKey varsayılanı:      {snake(through.Name())}_id (related tablosunda)
//	localKey varsayılanı:       e.KeyName()
//	secondLocalKey varsayılanı: through.KeyName()
func (e *Entity) HasManyThrough(name string, related, through Model, firstKey, secondKey, localKey, secondLocalKey string) *Entity {
	return e.define(name, func() Relation {
		return Relation{
			Kind:           KindHasManyThrough,
			Parent:         e,
			Related:        related,
			Through:        through,
			FirstKey:       Qualify(through, orDefault(firstKey, ForeignKeyName(e.Name()))),
			SecondKey:      Qualify(related, orDefault(secondKey, ForeignKeyName(through.Name()))),
			LocalKey:       Qualify(e, orDefault(localKey, e.KeyName())),
			SecondLocalKey: Qualify(through, orDefault(secondLocalKey, through.KeyName())),
		}
	})
}

// MorphTo, polimorfik sahiplik ilişkisi tanımlar ({morphName}_type,
// {morphName}_id). Hedef tablo şema seviyesinde belirsiz olduğundan
// join'lenemez; tanım sadece meta veri olarak tutulur.
func (e *Entity) MorphTo(name, morphName string) *Entity {
	morphName = orDefault(morphName, snake(name))
	return e.define(name, func() Relation {
		return Relation{
			Kind:       KindMorphTo,
			Parent:     e,
			ForeignKey: Qualify(e, morphName+"_id"),
			MorphType:  Qualify(e, morphName+"_type"),
		}
	})
}

// MorphOne, polimorfik bire-bir ilişki tanımlar. Hedef tabloda
// {morphName}_id ve {morphName}_type kolonları bulunur.
func (e *Entity) MorphOne(name string, related Model, morphName string) *Entity {
	return e.morphOneOrMany(name, related, morphName)
}

// MorphMany, polimorfik bire-çok ilişki tanımlar.
func (e *Entity) MorphMany(name string, related Model, morphName string) *Entity {
	return e.morphOneOrMany(name, related, morphName)
}

func (e *Entity) morphOneOrMany(name string, related Model, morphName string) *Entity {
	return e.define(name, func() Relation {
		return Relation{
			Kind:       KindMorphOneOrMany,
			Parent:     e,
			Related:    related,
			ForeignKey: Qualify(related, morphName+"_id"),
			LocalKey:   QualifiedKey(e),
			MorphType:  Qualify(related, morphName+"_type"),
			MorphClass: e.MorphClass(),
		}
	})
}

// MorphToMany, polimorfik çoka-çok ilişki tanımlar. Pivot tablo
// MorphPivotTableName(morphName) olur; tip kolonu pivot tablodadır.
//
//	profiles.MorphToMany("tags", tags, "taggable")
//	→ taggables.taggable_id = profiles.id
//	→ taggables.tag_id = tags.id AND taggables.taggable_type = ?
func (e *Entity) MorphToMany(name string, related Model, morphName string) *Entity {
	return e.define(name, func() Relation {
		pivot := MorphPivotTableName(morphName)
		return Relation{
			Kind:            KindMorphToMany,
			Parent:          e,
			Related:         related,
			Table:           pivot,
			ForeignPivotKey: pivot + "." + morphName + "_id",
			RelatedPivotKey: pivot + "." + ForeignKeyName(related.Name()),
			LocalKey:        QualifiedKey(e),
			MorphType:       pivot + "." + morphName + "_type",
			MorphClass:      e.MorphClass(),
		}
	})
}

// MorphedByMany, MorphToMany'nin tersidir: pivot satırlarının tipi
// hedef modeldir, bu yüzden tip koşulu related.MorphClass() kullanır.
// Diğer morph ilişkilerinde koşul sahibin (e) sınıfıyla kurulur; burada
// sahip tag tarafıdır ve pivotta kendi sınıfı hiç yazılmaz.
//
//	tags.MorphedByMany("profiles", profiles, "taggable")
//	→ taggables.tag_id = tags.id
//	→ taggables.taggable_id = profiles.id AND taggables.taggable_type = ?
func (e *Entity) MorphedByMany(name string, related Model, morphName string) *Entity {
	return e.define(name, func() Relation {
		pivot := MorphPivotTableName(morphName)
		return Relation{
			Kind:            KindMorphToMany,
			Parent:          e,
			Related:         related,
			Table:           pivot,
			ForeignPivotKey: pivot + "." + ForeignKeyName(e.Name()),
			RelatedPivotKey: pivot + "." + morphName + "_id",
			LocalKey:        QualifiedKey(e),
			MorphType:       pivot + "." + morphName + "_type",
			MorphClass:      related.MorphClass(),
		}
	})
}
