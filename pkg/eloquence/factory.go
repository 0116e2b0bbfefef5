package eloquence

import (
	"fmt"
	"reflect"

	"github.com/biyonik/eloquence/pkg/database"
)

// ModelQuery, hem alt seviye sorguyu hem de kök modeli verebilen yüksek
// seviye sorgudur. *Builder bunu sağlar.
type ModelQuery interface {
	Query() *database.QueryBuilder
	Model() Model
}

// JoinerFactory, farklı sorgu türlerinden Joiner üretir.
type JoinerFactory struct{}

// NewJoinerFactory creates a new JoinerFactory.
func NewJoinerFactory() *JoinerFactory {
	return &JoinerFactory{}
}

// Make, sorguyu (alt seviye sorgu, kök model) çiftine normalize eder.
//
//   - ModelQuery (ör. *Builder): model nil ise sorgunun modeli kullanılır.
//   - JoinQuery (ör. *database.QueryBuilder): model zorunludur.
//
// nil sorgu, tipli nil pointer dahil (ör. (*Builder)(nil)), hata döner.
//
//	joiner, err := factory.Make(builder, nil)
//	joiner, err := factory.Make(builder.Query(), users)
func (f *JoinerFactory) Make(query interface{}, model Model) (*Joiner, error) {
	if isNilQuery(query) {
		return nil, fmt.Errorf("eloquence: cannot make joiner from nil query")
	}

	switch q := query.(type) {
	case ModelQuery:
		if model == nil {
			model = q.Model()
		}
		if model == nil {
			return nil, ErrNoModel
		}
		return NewJoiner(q.Query(), model), nil
	case JoinQuery:
		if model == nil {
			return nil, fmt.Errorf("%w: a low-level query needs an explicit model", ErrNoModel)
		}
		return NewJoiner(q, model), nil
	}
	return nil, fmt.Errorf("eloquence: cannot make joiner from %T", query)
}

func isNilQuery(query interface{}) bool {
	if query == nil {
		return true
	}
	v := reflect.ValueOf(query)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
