// Package store persists extracted statement records in a local SQLite
// database. Idempotence is enforced by a composite uniqueness constraint
// at the storage layer, not by the pipeline.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/finwatch/cc-statement-tracker/internal/statement"
)

// Outcome reports what an upsert did.
type Outcome int

const (
	Inserted Outcome = iota
	AlreadyExists
)

func (o Outcome) String() string {
	if o == AlreadyExists {
		return "already_exists"
	}
	return "inserted"
}

// Bill is the persisted form of a statement record. The identity key
// for deduplication is (user, issuer, card_last4, statement_period).
// Amounts are stored as decimal strings to preserve exact precision.
type Bill struct {
	ID              uint   `gorm:"primaryKey"`
	User            string `gorm:"uniqueIndex:idx_bill_identity;not null"`
	Issuer          string `gorm:"uniqueIndex:idx_bill_identity;not null"`
	CardLast4       string `gorm:"uniqueIndex:idx_bill_identity;not null"`
	StatementPeriod string `gorm:"uniqueIndex:idx_bill_identity;not null"`
	StatementDate   *time.Time
	DueDate         time.Time
	TotalDue        decimal.Decimal
	MinDue          *decimal.Decimal
	CreditLimit     *decimal.Decimal
	AvailableLimit  *decimal.Decimal
	ReceivedAt      time.Time
	CreatedAt       time.Time
}

// DB wraps the SQLite-backed bill store.
type DB struct {
	db *gorm.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// migrates the bills table.
func Open(path string) (*DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Bill{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &DB{db: db}, nil
}

// Upsert stores a record, returning AlreadyExists when a row with the
// same identity key is present. Repeated calls with an identical record
// leave exactly one row.
func (d *DB) Upsert(ctx context.Context, rec *statement.Record) (Outcome, error) {
	bill := Bill{
		User:            rec.UserID,
		Issuer:          rec.Issuer,
		CardLast4:       rec.CardLast4,
		StatementPeriod: rec.StatementPeriod(),
		StatementDate:   rec.StatementDate,
		DueDate:         rec.DueDate,
		TotalDue:        rec.AmountDue,
		MinDue:          rec.MinimumDue,
		CreditLimit:     rec.CreditLimit,
		AvailableLimit:  rec.AvailableLimit,
		ReceivedAt:      rec.SourceReceivedAt,
	}

	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user"}, {Name: "issuer"}, {Name: "card_last4"}, {Name: "statement_period"},
		},
		DoNothing: true,
	}).Create(&bill)
	if result.Error != nil {
		return AlreadyExists, fmt.Errorf("failed to upsert bill: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return AlreadyExists, nil
	}
	return Inserted, nil
}

// ListByUser returns a user's bills ordered by due date.
func (d *DB) ListByUser(ctx context.Context, user string) ([]Bill, error) {
	var bills []Bill
	err := d.db.WithContext(ctx).
		Where("user = ?", user).
		Order("due_date").
		Find(&bills).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bills for %s: %w", user, err)
	}
	return bills, nil
}

// Close releases the underlying database handle.
func (d *DB) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
