package database

import "fmt"

// -----------------------------------------------------------------------------
// PAGINATION COUNT
// -----------------------------------------------------------------------------
// Sayfalama için toplam kayıt sayısı, sorgunun bir kopyası üzerinden alınır:
// kolonlar, sıralama, limit ve offset atılır; join'ler ve where'lar korunur.
// FROM bir alt sorgu ise, alt sorgunun binding'leri de olduğu gibi kalır.
// Orijinal builder hiçbir zaman değiştirilmez.
// -----------------------------------------------------------------------------

// Page, Paginate sonucunun meta bilgisidir.
type Page struct {
	Total       int64
	PerPage     int
	CurrentPage int
	LastPage    int
}

// ToCountSQL, sayfalama sayım sorgusunu derler.
//
//	SELECT COUNT(*) AS aggregate FROM `users` INNER JOIN ... WHERE ...
func (qb *QueryBuilder) ToCountSQL() (string, []interface{}, error) {
	counter := qb.Clone()
	counter.columns = []string{"COUNT(*) AS aggregate"}
	counter.orders = nil
	counter.limit = 0
	counter.offset = 0
	return counter.ToSQL()
}

// Count, sayfalama sayım sorgusunu çalıştırır.
func (qb *QueryBuilder) Count() (int64, error) {
	sqlStr, args, err := qb.ToCountSQL()
	if err != nil {
		return 0, fmt.Errorf("count compilation failed: %w", err)
	}

	var total int64
	if err := qb.executor.QueryRow(sqlStr, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count query failed: %w", err)
	}
	return total, nil
}

// Paginate, önce toplam sayıyı alır, sonra istenen sayfayı dest'e tarar.
// page 1'den başlar; 1'den küçük değerler 1 kabul edilir.
//
//	var users []User
//	page, err := qb.Table("users").OrderBy("id", "asc").Paginate(2, 15, &users)
func (qb *QueryBuilder) Paginate(page, perPage int, dest any) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		return nil, fmt.Errorf("paginate: perPage must be positive, got %d", perPage)
	}

	total, err := qb.Count()
	if err != nil {
		return nil, err
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	if err := qb.Clone().Limit(perPage).Offset((page - 1) * perPage).Get(dest); err != nil {
		return nil, err
	}

	return &Page{
		Total:       total,
		PerPage:     perPage,
		CurrentPage: page,
		LastPage:    lastPage,
	}, nil
}
