package database

import (
	"database/sql"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// -----------------------------------------------------------------------------
// Reflection-Based SQL Scanner
// -----------------------------------------------------------------------------
// Satırları `db:"..."` tag'lerine göre struct'lara tarar. Struct tipi başına
// kolon → alan eşlemesi bir kez çıkarılır ve saklanır. Struct tipleri sonlu
// olduğundan cache'in temizlenmesine gerek yoktur.
//
// Join'li sorgularda aynı kolon adı birden fazla tabloda bulunabilir
// (ör. "id"); bu durumda Select("profiles.bio as profile_bio") gibi alias'lar
// kullanılmalıdır.
// -----------------------------------------------------------------------------

type fieldMap map[string][]int

// Scanner, struct tipi başına alan eşlemelerini tutar.
type Scanner struct {
	mu    sync.RWMutex
	cache map[reflect.Type]fieldMap
}

var defaultScanner = NewScanner()

// NewScanner, boş bir Scanner üretir.
func NewScanner() *Scanner {
	return &Scanner{cache: make(map[reflect.Type]fieldMap)}
}

// fields, tipin kolon → alan index yolu eşlemesini döndürür.
func (s *Scanner) fields(t reflect.Type) fieldMap {
	s.mu.RLock()
	m, ok := s.cache[t]
	s.mu.RUnlock()
	if ok {
		return m
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if m, ok := s.cache[t]; ok {
		return m
	}

	m = make(fieldMap)
	collectFields(t, nil, m)
	s.cache[t] = m
	return m
}

// collectFields, embedded struct'ları özyineli olarak gezer.
// Dış struct'taki alanlar embedded olanları gölgeler.
func collectFields(t reflect.Type, prefix []int, m fieldMap) {
	var embedded []reflect.StructField

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct && field.Tag.Get("db") == "" {
			embedded = append(embedded, field)
			continue
		}
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("db")
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = strings.ToLower(field.Name)
		}

		if _, exists := m[tag]; !exists {
			m[tag] = append(append([]int(nil), prefix...), i)
		}
	}

	for _, field := range embedded {
		collectFields(field.Type, append(append([]int(nil), prefix...), field.Index...), m)
	}
}

// ScanStruct, tek bir *sql.Rows satırını bir struct'a tarar.
// Eşlenmeyen kolonlar atlanır.
func ScanStruct(rows *sql.Rows, dest any) error {
	return defaultScanner.ScanStruct(rows, dest)
}

// ScanSlice, tüm *sql.Rows sonuç kümesini bir struct slice'ına tarar.
func ScanSlice(rows *sql.Rows, dest any) error {
	return defaultScanner.ScanSlice(rows, dest)
}

// ScanStruct, rows'un mevcut satırını dest struct pointer'ına tarar.
func (s *Scanner) ScanStruct(rows *sql.Rows, dest any) error {
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr || destValue.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("scanner: dest bir struct pointer olmalıdır, %T alındı", dest)
	}

	elem := destValue.Elem()
	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	mapping := s.fields(elem.Type())

	scanArgs := make([]any, len(cols))
	for i, col := range cols {
		index, ok := mapping[col]
		if !ok {
			scanArgs[i] = new(sql.RawBytes)
			continue
		}

		field := elem.FieldByIndex(index)
		if !field.CanSet() {
			return fmt.Errorf("scanner: '%s' kolonu için alan ayarlanamıyor", col)
		}
		scanArgs[i] = field.Addr().Interface()
	}

	return rows.Scan(scanArgs...)
}

// ScanSlice, rows'un kalan tüm satırlarını dest slice pointer'ına ekler.
func (s *Scanner) ScanSlice(rows *sql.Rows, dest any) error {
	sliceValue := reflect.ValueOf(dest)
	if sliceValue.Kind() != reflect.Ptr || sliceValue.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("scanner: dest bir slice pointer olmalıdır, %T alındı", dest)
	}

	slice := sliceValue.Elem()
	structType := slice.Type().Elem()

	for rows.Next() {
		item := reflect.New(structType)
		if err := s.ScanStruct(rows, item.Interface()); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, item.Elem()))
	}

	return rows.Err()
}
