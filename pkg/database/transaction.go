// pkg/database/transaction.go
//
// Transaction, sql.Tx üzerine ince bir sarmalayıcıdır. Transaction içinde
// üretilen QueryBuilder'lar aynı grammar'ı kullanır; join'ler ve alt sorgular
// transaction dışındakiyle aynı şekilde derlenir.
//
//   err := database.WithTransaction(db, grammar, logger, func(tx *database.Transaction) error {
//       _, err := tx.NewBuilder().Table("users").Where("id", "=", 1).ExecUpdate(data)
//       return err
//   })

package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Transaction, başlatılmış bir veritabanı transaction'ını temsil eder.
type Transaction struct {
	Tx      *sql.Tx
	grammar Grammar
	logger  *log.Logger
}

// BeginTransaction, yeni bir transaction başlatır. Dönen Transaction mutlaka
// Commit() veya Rollback() ile sonlandırılmalıdır.
func BeginTransaction(db *sql.DB, grammar Grammar, logger *log.Logger) (*Transaction, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	logger.Println("🔄 Transaction başladı.")
	return &Transaction{Tx: tx, grammar: grammar, logger: logger}, nil
}

// NewBuilder, transaction'a bağlı yeni bir QueryBuilder oluşturur.
func (t *Transaction) NewBuilder() *QueryBuilder {
	return NewBuilder(t.Tx, t.grammar)
}

// Commit, transaction'ı başarılı şekilde sonlandırır.
func (t *Transaction) Commit() error {
	err := t.Tx.Commit()
	if err == nil {
		t.logger.Println("✅ Transaction commit edildi.")
	}
	return err
}

// Rollback, transaction sırasında yapılan tüm değişiklikleri geri alır.
func (t *Transaction) Rollback() error {
	err := t.Tx.Rollback()
	if err == nil {
		t.logger.Println("❌ Transaction geri alındı.")
	}
	return err
}

// WithTransaction, fn'i bir transaction içinde çalıştırır. fn hata dönerse
// veya panic olursa rollback yapılır, aksi halde commit edilir.
func WithTransaction(db *sql.DB, grammar Grammar, logger *log.Logger, fn func(tx *Transaction) error) (err error) {
	tx, err := BeginTransaction(db, grammar, logger)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
