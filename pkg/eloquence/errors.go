package eloquence

import (
	"errors"
	"fmt"
)

// Join ve ilişki çözümleme hataları. errors.Is ile kontrol edilir.
var (
	// ErrUnsupportedRelation, join'e çevrilemeyen ilişki türleri için döner
	// (MorphTo ve tanımsız türler).
	ErrUnsupportedRelation = errors.New("eloquence: relation cannot be joined")

	// ErrUnknownRelation, modelde tanımlı olmayan bir ilişki adı için döner.
	ErrUnknownRelation = errors.New("eloquence: unknown relation")

	// ErrInvalidPath, boş path veya boş segment içeren path için döner.
	ErrInvalidPath = errors.New("eloquence: invalid relation path")

	// ErrInvalidJoinType, inner/left/right dışındaki join tipleri için döner.
	ErrInvalidJoinType = errors.New("eloquence: invalid join type")

	// ErrNoModel, kök model verilmediğinde veya ilişkinin hedef modeli
	// eksik olduğunda döner.
	ErrNoModel = errors.New("eloquence: no model")

	// ErrUnknownModel, şema kaydında bulunmayan model adı için döner.
	ErrUnknownModel = errors.New("eloquence: unknown model")
)

// RelationError, bir path segmentinin çözümlenmesi sırasında oluşan hatadır.
type RelationError struct {
	Model    string
	Relation string
	Kind     RelationKind
	Err      error
}

func (e *RelationError) Error() string {
	if e.Kind.IsValid() {
		return fmt.Sprintf("%s.%s (%s): %v", e.Model, e.Relation, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s.%s: %v", e.Model, e.Relation, e.Err)
}

func (e *RelationError) Unwrap() error { return e.Err }

// IsUnsupportedRelation, err zincirinde ErrUnsupportedRelation olup olmadığını söyler.
func IsUnsupportedRelation(err error) bool {
	return errors.Is(err, ErrUnsupportedRelation)
}
