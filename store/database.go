package store

import (
	"errors"
	"fmt"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Database persists records in MySQL through GORM. Used instead of Memory
// when a DSN is configured; the lifecycle semantics are identical.
type Database struct {
	db *gorm.DB
}

func NewDatabase(dsn string) (*Database, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.AutoMigrate(&Report{}); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Database{db: db}, nil
}

func (d *Database) Put(report Report) error {
	result := d.db.Create(&report)
	if result.Error != nil {
		var mysqlErr *mysqldriver.MySQLError
		if errors.As(result.Error, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrDuplicateID
		}
		return result.Error
	}
	return nil
}

func (d *Database) Get(id string) (Report, error) {
	var report Report
	if result := d.db.First(&report, "id = ?", id); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Report{}, ErrNotFound
		}
		return Report{}, result.Error
	}
	return report, nil
}

func (d *Database) Update(id string, mutate func(*Report)) (Report, error) {
	var report Report
	err := d.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&report, "id = ?", id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return result.Error
		}

		mutate(&report)
		report.UpdatedAt = time.Now()
		return tx.Save(&report).Error
	})
	if err != nil {
		return Report{}, err
	}
	return report, nil
}

func (d *Database) Pending(before time.Time) ([]Report, error) {
	var pending []Report
	result := d.db.
		Where("status = ? AND created_at < ?", StatusPending, before).
		Order("created_at").
		Find(&pending)
	if result.Error != nil {
		return nil, result.Error
	}
	return pending, nil
}
