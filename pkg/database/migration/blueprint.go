package migration

import (
	"fmt"
	"strings"
)

// Blueprint defines the structure of a table.
type Blueprint struct {
	table    string
	columns  []*Column
	indexes  []Index
	foreigns []*ForeignKey
}

// NewBlueprint creates a new Blueprint instance.
func NewBlueprint(tableName string) *Blueprint {
	return &Blueprint{table: tableName}
}

// Table returns the blueprint's table name.
func (b *Blueprint) Table() string { return b.table }

// Columns returns the declared columns in order.
func (b *Blueprint) Columns() []*Column { return b.columns }

// Indexes returns the declared indexes in order.
func (b *Blueprint) Indexes() []Index { return b.indexes }

// ForeignKeys returns the declared foreign key constraints in order.
func (b *Blueprint) ForeignKeys() []*ForeignKey { return b.foreigns }

// ID adds an auto-incrementing primary key column.
func (b *Blueprint) ID() *Column {
	return b.addColumn(&Column{
		Name:          "id",
		Type:          ColumnTypeUnsignedBigInt,
		AutoIncrement: true,
		Primary:       true,
	})
}

// String adds a VARCHAR column.
func (b *Blueprint) String(name string, length int) *Column {
	return b.addColumn(&Column{Name: name, Type: ColumnTypeString, Length: length})
}

// Text adds a TEXT column.
func (b *Blueprint) Text(name string) *Column {
	return b.addColumn(&Column{Name: name, Type: ColumnTypeText})
}

// Integer adds an INT column.
func (b *Blueprint) Integer(name string) *Column {
	return b.addColumn(&Column{Name: name, Type: ColumnTypeInteger})
}

// BigInteger adds a BIGINT column.
func (b *Blueprint) BigInteger(name string) *Column {
	return b.addColumn(&Column{Name: name, Type: ColumnTypeBigInt})
}

// Boolean adds a boolean column.
func (b *Blueprint) Boolean(name string) *Column {
	return b.addColumn(&Column{Name: name, Type: ColumnTypeBoolean})
}

// Timestamp adds a TIMESTAMP column.
func (b *Blueprint) Timestamp(name string) *Column {
	return b.addColumn(&Column{Name: name, Type: ColumnTypeTimestamp})
}

// Timestamps adds nullable created_at and updated_at columns.
func (b *Blueprint) Timestamps() {
	b.Timestamp("created_at").Nullable()
	b.Timestamp("updated_at").Nullable()
}

// SoftDeletes adds a nullable deleted_at column.
func (b *Blueprint) SoftDeletes() {
	b.Timestamp("deleted_at").Nullable()
}

// Morphs adds the {name}_id and {name}_type columns of a polymorphic relation
// plus an index on both.
func (b *Blueprint) Morphs(name string) {
	b.BigInteger(name + "_id")
	b.String(name+"_type", 255)
	b.Index(name+"_type", name+"_id")
}

func (b *Blueprint) addColumn(column *Column) *Column {
	b.columns = append(b.columns, column)
	return column
}

// Unique adds a unique index.
func (b *Blueprint) Unique(columns ...string) {
	b.indexes = append(b.indexes, Index{
		Name:    fmt.Sprintf("%s_%s_unique", b.table, strings.Join(columns, "_")),
		Columns: columns,
		Type:    IndexTypeUnique,
	})
}

// Index adds a regular index.
func (b *Blueprint) Index(columns ...string) {
	b.indexes = append(b.indexes, Index{
		Name:    fmt.Sprintf("%s_%s_index", b.table, strings.Join(columns, "_")),
		Columns: columns,
		Type:    IndexTypeIndex,
	})
}

// Foreign adds a foreign key constraint on column.
//
//	t.Foreign("user_id").References("id").On("users").Cascade()
func (b *Blueprint) Foreign(column string) *ForeignKey {
	fk := &ForeignKey{Column: column}
	b.foreigns = append(b.foreigns, fk)
	return fk
}

// -----------------------------------------------------------------------------
// Column Definition
// -----------------------------------------------------------------------------

// ColumnType represents a database column type.
type ColumnType string

const (
	ColumnTypeString         ColumnType = "VARCHAR"
	ColumnTypeText           ColumnType = "TEXT"
	ColumnTypeInteger        ColumnType = "INT"
	ColumnTypeBigInt         ColumnType = "BIGINT"
	ColumnTypeUnsignedBigInt ColumnType = "BIGINT UNSIGNED"
	ColumnTypeBoolean        ColumnType = "TINYINT(1)"
	ColumnTypeTimestamp      ColumnType = "TIMESTAMP"
	ColumnTypeDateTime       ColumnType = "DATETIME"
	ColumnTypeDate           ColumnType = "DATE"
	ColumnTypeDecimal        ColumnType = "DECIMAL"
)

// Column represents a table column.
type Column struct {
	Name          string
	Type          ColumnType
	Length        int
	IsNullable    bool
	DefaultValue  interface{}
	IsUnsigned    bool
	AutoIncrement bool
	Primary       bool
	IsUnique      bool
}

// Nullable marks the column as nullable.
func (c *Column) Nullable() *Column {
	c.IsNullable = true
	return c
}

// Default sets a default value.
func (c *Column) Default(value interface{}) *Column {
	c.DefaultValue = value
	return c
}

// Unsigned marks the column as unsigned (for numeric types).
func (c *Column) Unsigned() *Column {
	c.IsUnsigned = true
	return c
}

// Unique adds a unique constraint.
func (c *Column) Unique() *Column {
	c.IsUnique = true
	return c
}

// -----------------------------------------------------------------------------
// Index Definition
// -----------------------------------------------------------------------------

// IndexType represents the type of index.
type IndexType string

const (
	IndexTypeIndex   IndexType = "INDEX"
	IndexTypeUnique  IndexType = "UNIQUE"
	IndexTypePrimary IndexType = "PRIMARY KEY"
)

// Index represents a table index.
type Index struct {
	Name    string
	Columns []string
	Type    IndexType
}

// ForeignKey represents a foreign key constraint.
type ForeignKey struct {
	Column           string
	ReferencedTable  string
	ReferencedColumn string
	OnDeleteAction   string
	OnUpdateAction   string
}

// References sets the referenced column.
func (fk *ForeignKey) References(column string) *ForeignKey {
	fk.ReferencedColumn = column
	return fk
}

// On sets the referenced table.
func (fk *ForeignKey) On(table string) *ForeignKey {
	fk.ReferencedTable = table
	return fk
}

// OnDelete sets the ON DELETE action.
func (fk *ForeignKey) OnDelete(action string) *ForeignKey {
	fk.OnDeleteAction = action
	return fk
}

// OnUpdate sets the ON UPDATE action.
func (fk *ForeignKey) OnUpdate(action string) *ForeignKey {
	fk.OnUpdateAction = action
	return fk
}

// Cascade sets both ON DELETE and ON UPDATE to CASCADE.
func (fk *ForeignKey) Cascade() *ForeignKey {
	fk.OnDeleteAction = "CASCADE"
	fk.OnUpdateAction = "CASCADE"
	return fk
}
