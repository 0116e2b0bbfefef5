package database

import (
	"database/sql"
	"fmt"
)

// QueryExecutor, Go'nun 'database/sql' paketindeki hem *sql.DB (havuz) hem de
// *sql.Tx (transaction) tarafından örtük olarak uygulanan metodları tanımlar.
//
// QueryBuilder *sql.DB'ye kilitlenmek yerine bu arayüze bağlıdır; böylece hem
// normal sorgularda hem de transaction'lar içinde çalışabilir.
type QueryExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

var errNoRows = sql.ErrNoRows

// ExecInsert, INSERT sorgusunu çalıştırır.
//
//	result, err := qb.Table("users").ExecInsert(map[string]interface{}{
//	    "name": "John Doe",
//	})
//	lastID, _ := result.LastInsertId()
func (qb *QueryBuilder) ExecInsert(data map[string]interface{}) (sql.Result, error) {
	for column := range data {
		validateIdentifier(column, "column")
	}

	sqlStr, args, err := qb.grammar.CompileInsert(qb.table, data)
	if err != nil {
		return nil, fmt.Errorf("insert compilation failed: %w", err)
	}
	return qb.executor.Exec(qb.grammar.Rebind(sqlStr), args...)
}

// ExecUpdate, UPDATE sorgusunu çalıştırır.
//
// UYARI: WHERE olmadan çalıştırılan UPDATE tüm tabloyu günceller.
func (qb *QueryBuilder) ExecUpdate(data map[string]interface{}) (sql.Result, error) {
	for column := range data {
		validateIdentifier(column, "column")
	}

	sqlStr, args, err := qb.grammar.CompileUpdate(qb.table, data, qb.wheres)
	if err != nil {
		return nil, fmt.Errorf("update compilation failed: %w", err)
	}
	return qb.executor.Exec(qb.grammar.Rebind(sqlStr), args...)
}

// ExecDelete, DELETE sorgusunu çalıştırır.
//
// UYARI: WHERE olmadan çalıştırılan DELETE tüm tabloyu siler.
func (qb *QueryBuilder) ExecDelete() (sql.Result, error) {
	sqlStr, args, err := qb.grammar.CompileDelete(qb.table, qb.wheres)
	if err != nil {
		return nil, fmt.Errorf("delete compilation failed: %w", err)
	}
	return qb.executor.Exec(qb.grammar.Rebind(sqlStr), args...)
}
