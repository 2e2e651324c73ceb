// Package badger provides a Badger-based implementation of the storage interface.
package badger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/folio/folio/pkg/storage"
)

// sequenceBandwidth is how many ids a sequence leases from disk at a time.
// Unused leased ids are lost on restart, leaving gaps.
const sequenceBandwidth = 16

// Config holds configuration for BadgerStorage.
type Config struct {
	Path             string
	SyncWrites       bool
	ValueLogFileSize int64
	// InMemory runs badger without touching disk. Path is ignored.
	InMemory bool
}

// BadgerStorage implements the Store interface using Badger.
type BadgerStorage struct {
	db     *badger.DB
	config *Config

	seqMu     sync.Mutex
	sequences map[string]*badger.Sequence
}

// NewBadgerStorage creates a new Badger storage instance.
func NewBadgerStorage(config *Config) (*BadgerStorage, error) {
	opts := badger.DefaultOptions(config.Path)
	if config.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.SyncWrites = config.SyncWrites
	if config.ValueLogFileSize > 0 {
		opts.ValueLogFileSize = config.ValueLogFileSize
	}
	opts.NumVersionsToKeep = 1
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, &storage.StorageUnavailableError{Cause: err}
	}

	return &BadgerStorage{
		db:        db,
		config:    config,
		sequences: make(map[string]*badger.Sequence),
	}, nil
}

// Key layout:
//
//	rec/{collection}/{id:020d} -> JSON body
//	seq/{collection}           -> badger sequence
func recordPrefix(collection string) []byte {
	return []byte(fmt.Sprintf("rec/%s/", collection))
}

func recordKey(collection string, id int64) []byte {
	return append(recordPrefix(collection), storage.FormatID(id)...)
}

func sequenceKey(collection string) []byte {
	return []byte("seq/" + collection)
}

// Create inserts a record unless the id already exists.
func (b *BadgerStorage) Create(ctx context.Context, collection string, id int64, data []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		key := recordKey(collection, id)
		_, err := txn.Get(key)
		if err == nil {
			return &storage.DuplicateKeyError{Collection: collection, ID: id}
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, data)
	})
}

// Put inserts or replaces a record.
func (b *BadgerStorage) Put(ctx context.Context, collection string, id int64, data []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(collection, id), data)
	})
}

// Update replaces an existing record inside one transaction.
func (b *BadgerStorage) Update(ctx context.Context, collection string, id int64, data []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		key := recordKey(collection, id)
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return &storage.NotFoundError{Collection: collection, ID: id}
			}
			return err
		}
		return txn.Set(key, data)
	})
}

// Get retrieves a record by id.
func (b *BadgerStorage) Get(ctx context.Context, collection string, id int64) ([]byte, error) {
	var data []byte

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(collection, id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return &storage.NotFoundError{Collection: collection, ID: id}
			}
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// List iterates the collection prefix. Fixed-width ids keep the order numeric.
func (b *BadgerStorage) List(ctx context.Context, collection string) ([]storage.Record, error) {
	records := []storage.Record{}

	err := b.db.View(func(txn *badger.Txn) error {
		prefix := recordPrefix(collection)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			id, err := storage.ParseID(string(item.Key()[len(prefix):]))
			if err != nil {
				return err
			}
			data, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			records = append(records, storage.Record{ID: id, Data: data})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes a record.
func (b *BadgerStorage) Delete(ctx context.Context, collection string, id int64) error {
	return b.db.Update(func(txn *badger.Txn) error {
		key := recordKey(collection, id)
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return &storage.NotFoundError{Collection: collection, ID: id}
			}
			return err
		}
		return txn.Delete(key)
	})
}

// NextID hands out the next id from the collection's badger sequence.
func (b *BadgerStorage) NextID(ctx context.Context, collection string) (int64, error) {
	b.seqMu.Lock()
	defer b.seqMu.Unlock()

	seq, ok := b.sequences[collection]
	if !ok {
		var err error
		seq, err = b.db.GetSequence(sequenceKey(collection), sequenceBandwidth)
		if err != nil {
			return 0, &storage.StorageUnavailableError{Cause: err}
		}
		b.sequences[collection] = seq
	}

	n, err := seq.Next()
	if err != nil {
		return 0, &storage.StorageUnavailableError{Cause: err}
	}
	// Sequences start at zero; record ids start at one.
	return int64(n) + 1, nil
}

// Ping reports whether the database is open.
func (b *BadgerStorage) Ping(ctx context.Context) error {
	if b.db.IsClosed() {
		return &storage.StorageUnavailableError{Cause: badger.ErrDBClosed}
	}
	return nil
}

// Close releases sequences and closes the Badger database.
func (b *BadgerStorage) Close() error {
	b.seqMu.Lock()
	var errs []error
	for name, seq := range b.sequences {
		if err := seq.Release(); err != nil {
			errs = append(errs, fmt.Errorf("release sequence %s: %w", name, err))
		}
	}
	b.sequences = map[string]*badger.Sequence{}
	b.seqMu.Unlock()

	if !b.config.InMemory {
		if err := b.db.RunValueLogGC(0.5); err != nil && !errors.Is(err, badger.ErrNoRewrite) {
			errs = append(errs, err)
		}
	}
	if err := b.db.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
