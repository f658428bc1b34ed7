package group

import (
	"bytes"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/oy3o/shuffle"
	"github.com/segmentio/ksuid"
)

// DefaultBatchSize is the number of records buffered before a batch commit.
const DefaultBatchSize = 1024

// SpillOptions configures NewSpill.
type SpillOptions struct {
	// Dir is the parent directory of the spill store. Each Spill creates its
	// own subdirectory and removes it on Close. Empty keeps the store in an
	// in-memory filesystem.
	Dir string
	// BatchSize is the number of records per write batch.
	BatchSize int
	Logger    *slog.Logger
}

// Spill groups records through a pebble store. Add calls are serialized
// internally; Range must not overlap with Add. The value sequence of a group
// is single-pass: it reads straight from the store iterator.
type Spill[V any] struct {
	mu        sync.Mutex
	codec     shuffle.Codec[V]
	db        *pebble.DB
	batch     *pebble.Batch
	batchSize int
	seq       uint64
	path      string
	owned     bool
	log       *slog.Logger
	closed    bool
}

var _ Grouper[struct{}] = (*Spill[struct{}])(nil)

func NewSpill[V any](c shuffle.Codec[V], opts SpillOptions) (*Spill[V], error) {
	s := &Spill[V]{
		codec:     c,
		batchSize: opts.BatchSize,
		log:       opts.Logger,
	}
	if s.batchSize <= 0 {
		s.batchSize = DefaultBatchSize
	}
	if s.log == nil {
		s.log = slog.Default()
	}

	po := &pebble.Options{}
	if opts.Dir == "" {
		po.FS = vfs.NewMem()
		s.path = "spill"
	} else {
		s.path = filepath.Join(opts.Dir, "shuffle-"+ksuid.New().String())
		s.owned = true
	}

	db, err := pebble.Open(s.path, po)
	if err != nil {
		return nil, fmt.Errorf("group: open spill %s: %w", s.path, err)
	}
	s.db = db
	s.batch = db.NewBatch()
	s.log.Debug("spill opened", "path", s.path, "in_memory", !s.owned)
	return s, nil
}

func (s *Spill[V]) Add(key shuffle.ByteKey, value []byte) error {
	if value == nil {
		return fmt.Errorf("group: %w: value for key %s", shuffle.ErrNilInput, key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	k := appendSpillKey(make([]byte, 0, key.Len()+10), key.Bytes(), s.seq)
	s.seq++
	if err := s.batch.Set(k, value, nil); err != nil {
		return fmt.Errorf("group: spill set: %w", err)
	}
	if int(s.batch.Count()) >= s.batchSize {
		return s.flush()
	}
	return nil
}

func (s *Spill[V]) flush() error {
	if s.batch.Empty() {
		return nil
	}
	if err := s.batch.Commit(pebble.NoSync); err != nil {
		return fmt.Errorf("group: spill commit: %w", err)
	}
	if err := s.batch.Close(); err != nil {
		return fmt.Errorf("group: spill batch close: %w", err)
	}
	s.batch = s.db.NewBatch()
	return nil
}

func (s *Spill[V]) Range(fn func(Group[V]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if err := s.flush(); err != nil {
		return err
	}

	it, err := s.db.NewIter(nil)
	if err != nil {
		return fmt.Errorf("group: spill iterator: %w", err)
	}
	defer it.Close()

	var scanErr error
	valid := it.First()
	for valid {
		user, _, err := decodeSpillKey(it.Key())
		if err != nil {
			return err
		}

		consumed := false
		var values iter.Seq[*shuffle.LazyValue[V]] = func(yield func(*shuffle.LazyValue[V]) bool) {
			if consumed {
				return
			}
			consumed = true
			for valid {
				k, _, err := decodeSpillKey(it.Key())
				if err != nil {
					scanErr = err
					return
				}
				if !bytes.Equal(k, user) {
					return
				}
				v := bytes.Clone(it.Value())
				valid = it.Next()
				if !yield(shuffle.NewLazyBytes(v, s.codec)) {
					return
				}
			}
		}
		if err := fn(shuffle.PairOf(shuffle.NewByteKey(user), values)); err != nil {
			return err
		}
		if scanErr != nil {
			return scanErr
		}

		// Skip what fn left unread of this group.
		for valid {
			k, _, err := decodeSpillKey(it.Key())
			if err != nil {
				return err
			}
			if !bytes.Equal(k, user) {
				break
			}
			valid = it.Next()
		}
	}
	if err := it.Error(); err != nil {
		return fmt.Errorf("group: spill scan: %w", err)
	}
	return nil
}

// Close releases the store and removes its directory when it lives on disk.
func (s *Spill[V]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	err := s.batch.Close()
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	if s.owned {
		if rerr := os.RemoveAll(s.path); err == nil {
			err = rerr
		}
	}
	s.log.Debug("spill closed", "path", s.path, "records", s.seq)
	if err != nil {
		return fmt.Errorf("group: close spill: %w", err)
	}
	return nil
}
