package eloquence

import (
	"sort"
	"strings"

	"github.com/go-openapi/inflect"
)

// Varsayılan tablo ve anahtar adları ORM isimlendirme kurallarını izler:
//
//	TableName("Company")            → "companies"
//	ForeignKeyName("JoinerTagStub") → "joiner_tag_stub_id"
//	PivotTableName("User", "Role")  → "role_user"

// TableName, model adından varsayılan tablo adını üretir.
func TableName(model string) string {
	return inflect.Pluralize(inflect.Underscore(model))
}

// ForeignKeyName, model adından varsayılan yabancı anahtar adını üretir.
func ForeignKeyName(model string) string {
	return inflect.Underscore(model) + "_id"
}

// PivotTableName, iki modelin varsayılan pivot tablo adını üretir:
// tekil snake_case adlar alfabetik sırayla "_" ile birleştirilir.
func PivotTableName(a, b string) string {
	names := []string{
		inflect.Singularize(inflect.Underscore(a)),
		inflect.Singularize(inflect.Underscore(b)),
	}
	sort.Strings(names)
	return strings.Join(names, "_")
}

// MorphPivotTableName, polimorfik çoka-çok ilişkinin pivot tablo adıdır
// ("taggable" → "taggables").
func MorphPivotTableName(morphName string) string {
	return inflect.Pluralize(morphName)
}

func snake(name string) string {
	return inflect.Underscore(name)
}
