package database

import (
	"errors"

	"github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"

	"deal-pipeline-api/internal/persist"
)

// BadgerKV is the default durable storage medium: an embedded badger
// database on local disk.
type BadgerKV struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a badger database at path
func OpenBadger(path string, logger *zap.Logger) (*BadgerKV, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	logger.Info("badger storage opened", zap.String("path", path))
	return &BadgerKV{db: db}, nil
}

func (b *BadgerKV) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, persist.ErrKeyNotFound
	}
	return value, err
}

func (b *BadgerKV) Set(key string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (b *BadgerKV) Delete(key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (b *BadgerKV) Close() error {
	return b.db.Close()
}

// RunGC reclaims value-log space. badger returns ErrNoRewrite when there is
// nothing to collect; that is not a failure.
func (b *BadgerKV) RunGC() error {
	err := b.db.RunValueLogGC(0.5)
	if errors.Is(err, badger.ErrNoRewrite) {
		return nil
	}
	return err
}
