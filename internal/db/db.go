package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	db *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	return Open(postgres.Open(dsn))
}

// Open connects through an already configured dialector.
func Open(dialector gorm.Dialector) (*PostgresDB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		db: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(ctx context.Context, tbl ...any) error {
	err := f.db.WithContext(ctx).AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Upsert inserts record or overwrites every column of the row with the same
// primary key.
func (f *PostgresDB) Upsert(ctx context.Context, record any) error {
	err := f.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(record).Error
	if err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}
	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
