package eloquence

import "strings"

// ParseMappedColumn, eşlenmiş bir kolonu ilişki path'i ve kolon adına ayırır.
//
//	ParseMappedColumn("profile.company.name") → ("profile.company", "name")
//	ParseMappedColumn("name")                 → ("", "name")
func ParseMappedColumn(mapping string) (target, column string) {
	i := strings.LastIndex(mapping, ".")
	if i < 0 {
		return "", mapping
	}
	return mapping[:i], mapping[i+1:]
}

// ExtractColumnAlias, "kolon as alias" ifadesini ayırır. Alias yoksa
// kolonun kendisi alias olarak döner. "as" büyük/küçük harf duyarsızdır.
//
//	ExtractColumnAlias("profiles.bio as bio") → ("profiles.bio", "bio")
//	ExtractColumnAlias("name")                → ("name", "name")
func ExtractColumnAlias(column string) (name, alias string) {
	i := strings.Index(strings.ToLower(column), " as ")
	if i < 0 {
		return column, column
	}
	return strings.TrimSpace(column[:i]), strings.TrimSpace(column[i+4:])
}
