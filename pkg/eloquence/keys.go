package eloquence

// joinKeys, bir ilişkinin join koşulundaki kolon çiftidir.
type joinKeys struct {
	foreign    string
	referenced string
}

// resolveKeys, ilişki türüne göre join koşulunun (foreign, referenced)
// kolonlarını seçer. Yan etkisi yoktur.
//
//	HasOneOrMany, MorphOneOrMany → (related.fk, parent.key)
//	BelongsTo                    → (parent.fk, related.owner)
//	BelongsToMany, MorphToMany   → (pivot.relatedKey, related.key)
//	HasManyThrough               → (related.farKey, through.key)
//	MorphTo ve tanımsız türler   → ErrUnsupportedRelation
func resolveKeys(rel Relation) (joinKeys, error) {
	switch rel.Kind {
	case KindHasOneOrMany, KindMorphOneOrMany:
		return joinKeys{rel.ForeignKey, rel.LocalKey}, nil
	case KindBelongsTo:
		return joinKeys{rel.ForeignKey, rel.OwnerKey}, nil
	case KindBelongsToMany, KindMorphToMany:
		return joinKeys{rel.RelatedPivotKey, QualifiedKey(rel.Related)}, nil
	case KindHasManyThrough:
		return joinKeys{rel.SecondKey, rel.SecondLocalKey}, nil
	}
	return joinKeys{}, ErrUnsupportedRelation
}

// intermediateKeys, pivot/through join'inin tablosunu ve yabancı anahtarını
// döndürür. Referans kolon ilişkinin LocalKey'idir; boşsa parent'ın
// nitelenmiş anahtarı kullanılır.
func intermediateKeys(rel Relation) (table, foreign string) {
	if rel.Kind == KindHasManyThrough {
		return rel.Through.Table(), rel.FirstKey
	}
	return rel.Table, rel.ForeignPivotKey
}
