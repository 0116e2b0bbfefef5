package database

import (
	"fmt"
	"regexp"
	"strings"
)

// -----------------------------------------------------------------------------
// SQL Grammar (MySQL + ortak compile mantığı)
// -----------------------------------------------------------------------------
// sqlGrammar; SELECT/INSERT/UPDATE/DELETE, JOIN ve WHERE derlemesini tek bir
// yerde toplar. Lehçeler (MySQL, SQLite, PostgreSQL) bu yapıyı embed eder ve
// sadece quote karakterini belirler.
//
// Wrap() panic atmaz, error döner; geçersiz identifier derleme hatası olur.
// -----------------------------------------------------------------------------

var validIdentifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// whereFuncPattern, WhereDate/Year/Month/Day'in ürettiği "FN(kolon)" biçimi.
var whereFuncPattern = regexp.MustCompile(`^(DATE|YEAR|MONTH|DAY)\(([a-zA-Z0-9_.]+)\)$`)

var allowedOperators = map[string]bool{
	"=":           true,
	"!=":          true,
	"<>":          true,
	"<":           true,
	">":           true,
	"<=":          true,
	">=":          true,
	"LIKE":        true,
	"NOT LIKE":    true,
	"IN":          true,
	"NOT IN":      true,
	"BETWEEN":     true,
	"NOT BETWEEN": true,
	"IS":          true,
	"IS NOT":      true,
}

type sqlGrammar struct {
	quote string
}

// MySQLGrammar, MySQL/MariaDB lehçesidir. Identifier'lar backtick ile sarılır.
type MySQLGrammar struct {
	sqlGrammar
}

func NewMySQLGrammar() *MySQLGrammar {
	return &MySQLGrammar{sqlGrammar{quote: "`"}}
}

// Wrap, kolon ve tablo isimlerini lehçenin quote karakteri ile sarmalar.
// "users.*" gibi tablo wildcard'ları desteklenir.
func (g *sqlGrammar) Wrap(value string) (string, error) {
	if value == "*" {
		return value, nil
	}

	parts := strings.Split(value, ".")
	if len(parts) > 2 {
		return "", fmt.Errorf("invalid SQL identifier: %s (too many segments)", value)
	}

	wrapped := make([]string, len(parts))
	for i, part := range parts {
		if part == "*" && i == len(parts)-1 && i > 0 {
			wrapped[i] = part
			continue
		}
		if !validIdentifierPattern.MatchString(part) {
			return "", fmt.Errorf("invalid SQL identifier: %s (contains unsafe characters)", value)
		}
		wrapped[i] = g.quote + part + g.quote
	}
	return strings.Join(wrapped, "."), nil
}

// WrapMultiple, birden fazla identifier'ı wrap eder.
func (g *sqlGrammar) WrapMultiple(values []string) ([]string, error) {
	wrapped := make([]string, len(values))
	for i, value := range values {
		w, err := g.Wrap(value)
		if err != nil {
			return nil, fmt.Errorf("failed to wrap '%s': %w", value, err)
		}
		wrapped[i] = w
	}
	return wrapped, nil
}

// Rebind, MySQL ve SQLite için sorguyu değiştirmez.
func (g *sqlGrammar) Rebind(query string) string {
	return query
}

func (g *sqlGrammar) validateOperator(operator string) error {
	op := strings.ToUpper(strings.TrimSpace(operator))
	if !allowedOperators[op] {
		return fmt.Errorf("invalid SQL operator: %s (not in whitelist)", operator)
	}
	return nil
}

// wrapColumn, SELECT listesindeki bir ifadeyi derler.
// Fonksiyon ifadeleri (COUNT(*) vb.) olduğu gibi bırakılır, "x as y" alias'ı
// iki taraf ayrı ayrı wrap edilerek korunur.
func (g *sqlGrammar) wrapColumn(col string) (string, error) {
	if strings.Contains(col, "(") {
		return col, nil
	}
	if idx := strings.Index(strings.ToLower(col), " as "); idx > 0 {
		name, err := g.Wrap(strings.TrimSpace(col[:idx]))
		if err != nil {
			return "", err
		}
		alias, err := g.Wrap(strings.TrimSpace(col[idx+4:]))
		if err != nil {
			return "", err
		}
		return name + " AS " + alias, nil
	}
	return g.Wrap(col)
}

// CompileSelect, QueryBuilder'dan SELECT sorgusu üretir.
func (g *sqlGrammar) CompileSelect(qb *QueryBuilder) (string, []interface{}, error) {
	wrappedCols := make([]string, len(qb.columns))
	for i, col := range qb.columns {
		wrapped, err := g.wrapColumn(col)
		if err != nil {
			return "", nil, fmt.Errorf("column wrap error: %w", err)
		}
		wrappedCols[i] = wrapped
	}

	var args []interface{}

	// FROM: tablo veya alt sorgu
	var from string
	if qb.from != nil {
		subSQL, subArgs, err := qb.from.compile()
		if err != nil {
			return "", nil, fmt.Errorf("subquery compile error: %w", err)
		}
		from = subSQL
		args = append(args, subArgs...)
	} else {
		wrappedTable, err := g.Wrap(qb.table)
		if err != nil {
			return "", nil, fmt.Errorf("table wrap error: %w", err)
		}
		from = wrappedTable
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(wrappedCols, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(from)

	if len(qb.joins) > 0 {
		joinSQL, joinArgs, err := g.compileJoins(qb.joins)
		if err != nil {
			return "", nil, err
		}
		sb.WriteString(" ")
		sb.WriteString(joinSQL)
		args = append(args, joinArgs...)
	}

	if len(qb.wheres) > 0 {
		whereSQL, whereArgs, err := g.compileWheres(qb.wheres)
		if err != nil {
			return "", nil, err
		}
		sb.WriteString(" WHERE ")
		sb.WriteString(whereSQL)
		args = append(args, whereArgs...)
	}

	if len(qb.orders) > 0 {
		wrappedOrders := make([]string, len(qb.orders))
		for i, order := range qb.orders {
			wrappedCol, err := g.Wrap(order.Column)
			if err != nil {
				return "", nil, fmt.Errorf("order column wrap error: %w", err)
			}
			wrappedOrders[i] = fmt.Sprintf("%s %s", wrappedCol, order.Direction)
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(wrappedOrders, ", "))
	}

	if qb.limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", qb.limit)
	}
	if qb.offset > 0 {
		fmt.Fprintf(&sb, " OFFSET %d", qb.offset)
	}

	return sb.String(), args, nil
}

// compileJoins, join listesini eklenme sırasıyla derler.
//
//	INNER JOIN `profiles` ON `users`.`profile_id` = `profiles`.`id`
func (g *sqlGrammar) compileJoins(joins []*JoinClause) (string, []interface{}, error) {
	parts := make([]string, 0, len(joins))
	var args []interface{}

	for _, j := range joins {
		table, err := g.Wrap(j.Table)
		if err != nil {
			return "", nil, fmt.Errorf("join table wrap error: %w", err)
		}

		sql := fmt.Sprintf("%s JOIN %s", j.Type, table)
		if j.Type == CrossJoin || len(j.Conditions) == 0 {
			parts = append(parts, sql)
			continue
		}

		for i, c := range j.Conditions {
			first, err := g.Wrap(c.First)
			if err != nil {
				return "", nil, fmt.Errorf("join column wrap error: %w", err)
			}

			if i == 0 {
				sql += " ON "
			} else {
				sql += " " + c.Boolean + " "
			}

			switch c.Kind {
			case ConditionColumn:
				if err := g.validateOperator(c.Operator); err != nil {
					return "", nil, fmt.Errorf("join clause error: %w", err)
				}
				second, err := g.Wrap(c.Second)
				if err != nil {
					return "", nil, fmt.Errorf("join column wrap error: %w", err)
				}
				sql += fmt.Sprintf("%s %s %s", first, c.Operator, second)
			case ConditionValue:
				if err := g.validateOperator(c.Operator); err != nil {
					return "", nil, fmt.Errorf("join clause error: %w", err)
				}
				sql += fmt.Sprintf("%s %s ?", first, strings.ToUpper(c.Operator))
				args = append(args, c.Value)
			case ConditionNull:
				sql += first + " IS NULL"
			case ConditionNotNull:
				sql += first + " IS NOT NULL"
			default:
				return "", nil, fmt.Errorf("join clause error: unknown condition kind %d", c.Kind)
			}
		}
		parts = append(parts, sql)
	}

	return strings.Join(parts, " "), args, nil
}

// compileWheres, WHERE koşullarını (WHERE anahtar kelimesi olmadan) derler.
func (g *sqlGrammar) compileWheres(wheres []WhereClause) (string, []interface{}, error) {
	var sb strings.Builder
	var args []interface{}

	for i, w := range wheres {
		if err := g.validateOperator(w.Operator); err != nil {
			return "", nil, fmt.Errorf("where clause error: %w", err)
		}

		wrappedCol, err := g.wrapWhereColumn(w.Column)
		if err != nil {
			return "", nil, fmt.Errorf("where column wrap error: %w", err)
		}

		if i > 0 {
			fmt.Fprintf(&sb, " %s ", w.Boolean)
		}

		operator := strings.ToUpper(w.Operator)
		switch operator {
		case "IN", "NOT IN":
			values, ok := w.Value.([]interface{})
			if !ok {
				return "", nil, fmt.Errorf("IN/NOT IN operator requires []interface{} value")
			}
			placeholders := make([]string, len(values))
			for j := range values {
				placeholders[j] = "?"
			}
			fmt.Fprintf(&sb, "%s %s (%s)", wrappedCol, operator, strings.Join(placeholders, ", "))
			args = append(args, values...)

		case "BETWEEN", "NOT BETWEEN":
			values, ok := w.Value.([]interface{})
			if !ok || len(values) != 2 {
				return "", nil, fmt.Errorf("BETWEEN operator requires exactly 2 values")
			}
			fmt.Fprintf(&sb, "%s %s ? AND ?", wrappedCol, operator)
			args = append(args, values[0], values[1])

		case "IS", "IS NOT":
			if w.Value == nil {
				fmt.Fprintf(&sb, "%s %s NULL", wrappedCol, operator)
			} else {
				fmt.Fprintf(&sb, "%s %s ?", wrappedCol, operator)
				args = append(args, w.Value)
			}

		default:
			fmt.Fprintf(&sb, "%s %s ?", wrappedCol, operator)
			args = append(args, w.Value)
		}
	}

	return sb.String(), args, nil
}

// wrapWhereColumn, WHERE kolonunu sarmalar. DATE(created_at) gibi tarih
// fonksiyonlarında sadece içteki kolon wrap edilir: DATE(`created_at`).
func (g *sqlGrammar) wrapWhereColumn(col string) (string, error) {
	if m := whereFuncPattern.FindStringSubmatch(col); m != nil {
		inner, err := g.Wrap(m[2])
		if err != nil {
			return "", err
		}
		return m[1] + "(" + inner + ")", nil
	}
	if strings.Contains(col, "(") {
		return col, nil
	}
	return g.Wrap(col)
}

// CompileInsert, INSERT sorgusu üretir. Kolonlar deterministik olsun diye
// alfabetik sıralanır.
func (g *sqlGrammar) CompileInsert(table string, data map[string]interface{}) (string, []interface{}, error) {
	wrappedTable, err := g.Wrap(table)
	if err != nil {
		return "", nil, fmt.Errorf("table wrap error: %w", err)
	}

	keys := sortedKeys(data)
	cols := make([]string, 0, len(keys))
	placeholders := make([]string, 0, len(keys))
	args := make([]interface{}, 0, len(keys))

	for _, k := range keys {
		wrappedCol, err := g.Wrap(k)
		if err != nil {
			return "", nil, fmt.Errorf("column wrap error: %w", err)
		}
		cols = append(cols, wrappedCol)
		placeholders = append(placeholders, "?")
		args = append(args, data[k])
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		wrappedTable,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
	)
	return sql, args, nil
}

// CompileUpdate, UPDATE sorgusu üretir.
func (g *sqlGrammar) CompileUpdate(table string, data map[string]interface{}, wheres []WhereClause) (string, []interface{}, error) {
	wrappedTable, err := g.Wrap(table)
	if err != nil {
		return "", nil, fmt.Errorf("table wrap error: %w", err)
	}

	keys := sortedKeys(data)
	sets := make([]string, 0, len(keys))
	args := make([]interface{}, 0, len(keys))

	for _, k := range keys {
		wrappedCol, err := g.Wrap(k)
		if err != nil {
			return "", nil, fmt.Errorf("column wrap error: %w", err)
		}
		sets = append(sets, wrappedCol+" = ?")
		args = append(args, data[k])
	}

	sql := fmt.Sprintf("UPDATE %s SET %s", wrappedTable, strings.Join(sets, ", "))

	if len(wheres) > 0 {
		whereSQL, whereArgs, err := g.compileWheres(wheres)
		if err != nil {
			return "", nil, err
		}
		sql += " WHERE " + whereSQL
		args = append(args, whereArgs...)
	}

	return sql, args, nil
}

// CompileDelete, DELETE sorgusu üretir.
func (g *sqlGrammar) CompileDelete(table string, wheres []WhereClause) (string, []interface{}, error) {
	wrappedTable, err := g.Wrap(table)
	if err != nil {
		return "", nil, fmt.Errorf("table wrap error: %w", err)
	}

	sql := "DELETE FROM " + wrappedTable
	var args []interface{}

	if len(wheres) > 0 {
		whereSQL, whereArgs, err := g.compileWheres(wheres)
		if err != nil {
			return "", nil, err
		}
		sql += " WHERE " + whereSQL
		args = whereArgs
	}

	return sql, args, nil
}
