package database

import "reflect"

// -----------------------------------------------------------------------------
// JOIN OPERATIONS
// -----------------------------------------------------------------------------
// JoinClause üzerinde zincirlenebilir predicate metotları ve yapısal eşitlik.
// SQL üretimi Grammar katmanındadır (compileJoins).
// -----------------------------------------------------------------------------

// NewJoinClause, koşulsuz yeni bir JoinClause üretir.
func NewJoinClause(joinType JoinType, table string) *JoinClause {
	return &JoinClause{Type: joinType, Table: table}
}

// On, iki kolonu karşılaştıran bir AND koşulu ekler.
//
//	j.On("users.profile_id", "=", "profiles.id")
func (j *JoinClause) On(first, operator, second string) *JoinClause {
	return j.addCondition(JoinCondition{
		Kind:     ConditionColumn,
		First:    first,
		Operator: operator,
		Second:   second,
		Boolean:  "AND",
	})
}

// OrOn, iki kolonu karşılaştıran bir OR koşulu ekler.
func (j *JoinClause) OrOn(first, operator, second string) *JoinClause {
	return j.addCondition(JoinCondition{
		Kind:     ConditionColumn,
		First:    first,
		Operator: operator,
		Second:   second,
		Boolean:  "OR",
	})
}

// Where, kolonu bir değerle karşılaştırır. Değer binding olarak gönderilir.
//
//	j.Where("companies.morphable_type", "=", "profile")
//	→ `companies`.`morphable_type` = ?
func (j *JoinClause) Where(column, operator string, value interface{}) *JoinClause {
	return j.addCondition(JoinCondition{
		Kind:     ConditionValue,
		First:    column,
		Operator: operator,
		Value:    value,
		Boolean:  "AND",
	})
}

// WhereNull, IS NULL koşulu ekler (soft delete kolonları için).
func (j *JoinClause) WhereNull(column string) *JoinClause {
	return j.addCondition(JoinCondition{Kind: ConditionNull, First: column, Boolean: "AND"})
}

// WhereNotNull, IS NOT NULL koşulu ekler.
func (j *JoinClause) WhereNotNull(column string) *JoinClause {
	return j.addCondition(JoinCondition{Kind: ConditionNotNull, First: column, Boolean: "AND"})
}

func (j *JoinClause) addCondition(c JoinCondition) *JoinClause {
	j.Conditions = append(j.Conditions, c)
	return j
}

// Bindings, ON kısmındaki değer koşullarının argümanlarını sırasıyla döndürür.
func (j *JoinClause) Bindings() []interface{} {
	var args []interface{}
	for _, c := range j.Conditions {
		if c.Kind == ConditionValue {
			args = append(args, c.Value)
		}
	}
	return args
}

// Equal, iki join'in yapısal olarak aynı olup olmadığını söyler:
// tip, tablo ve koşullar (sıra dahil) birebir eşit olmalıdır.
func (j *JoinClause) Equal(other *JoinClause) bool {
	if j == nil || other == nil {
		return j == other
	}
	if j.Type != other.Type || j.Table != other.Table || len(j.Conditions) != len(other.Conditions) {
		return false
	}
	for i, c := range j.Conditions {
		o := other.Conditions[i]
		if c.Kind != o.Kind || c.First != o.First || c.Operator != o.Operator ||
			c.Second != o.Second || c.Boolean != o.Boolean {
			return false
		}
		if !reflect.DeepEqual(c.Value, o.Value) {
			return false
		}
	}
	return true
}

// Clone, koşul slice'ı dahil bağımsız bir kopya üretir.
func (j *JoinClause) Clone() *JoinClause {
	c := *j
	c.Conditions = append([]JoinCondition(nil), j.Conditions...)
	return &c
}
