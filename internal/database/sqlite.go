package database

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"deal-pipeline-api/internal/persist"
)

// KVEntry is the storage row for the sqlite-backed KV medium
type KVEntry struct {
	Key   string `gorm:"primaryKey;type:varchar(255)"`
	Value []byte `gorm:"type:blob"`
}

// TableName specifies the table name for KVEntry
func (KVEntry) TableName() string {
	return "kv_entries"
}

// SQLiteKV is a durable storage medium backed by a sqlite database
type SQLiteKV struct {
	db *gorm.DB
}

// OpenSQLite opens the sqlite database at dsn and migrates the kv table.
// Use ":memory:" for an ephemeral database in tests.
func OpenSQLite(dsn string, logger *zap.Logger) (*SQLiteKV, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, err
	}
	logger.Info("sqlite storage opened", zap.String("dsn", dsn))
	return &SQLiteKV{db: db}, nil
}

func (s *SQLiteKV) Get(key string) ([]byte, error) {
	var entry KVEntry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, persist.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

func (s *SQLiteKV) Set(key string, value []byte) error {
	entry := KVEntry{Key: key, Value: value}
	return s.db.Save(&entry).Error
}

func (s *SQLiteKV) Delete(key string) error {
	return s.db.Delete(&KVEntry{}, "key = ?", key).Error
}

func (s *SQLiteKV) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
