package backup

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	domainerrors "livesales/internal/domain/errors"
	"livesales/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const (
	snapshotPrefix      = "snapshots/"
	snapshotExt         = ".json"
	snapshotContentType = "application/json"
)

// Store keeps backup documents in a blob bucket. Operations on the same snapshot name are
// serialized; different names proceed in parallel.
type Store struct {
	bucket *blob.Bucket
	logger *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

var _ service.SnapshotStore = (*Store)(nil)

// OpenStore opens the bucket at bucketURL (file://, mem:// or gs://).
func OpenStore(ctx context.Context, bucketURL string, logger *slog.Logger) (*Store, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open backup bucket %q", bucketURL)
	}

	return NewStore(bucket, logger), nil
}

// NewStore wraps an already opened bucket.
func NewStore(bucket *blob.Bucket, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		bucket: bucket,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Save writes data under name, replacing any previous snapshot of that name.
func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	key, err := snapshotKey(name)
	if err != nil {
		return err
	}

	unlock := s.lock(key)
	defer unlock()

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: snapshotContentType})
	if err != nil {
		return errors.Wrapf(err, "failed to open snapshot %q for writing", name)
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()

		return errors.Wrapf(err, "failed to write snapshot %q", name)
	}
	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "failed to commit snapshot %q", name)
	}

	s.logger.Info("Backup snapshot saved", slog.String("name", name), slog.Int("bytes", len(data)))

	return nil
}

// Load reads the snapshot stored under name.
func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	key, err := snapshotKey(name)
	if err != nil {
		return nil, err
	}

	unlock := s.lock(key)
	defer unlock()

	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrBackupNotFound.WithDetailsf("snapshot %q", name)
		}

		return nil, errors.Wrapf(err, "failed to open snapshot %q", name)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read snapshot %q", name)
	}

	return data, nil
}

// Delete removes the snapshot stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	key, err := snapshotKey(name)
	if err != nil {
		return err
	}

	unlock := s.lock(key)
	defer unlock()

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return domainerrors.ErrBackupNotFound.WithDetailsf("snapshot %q", name)
		}

		return errors.Wrapf(err, "failed to delete snapshot %q", name)
	}

	return nil
}

// List returns every stored snapshot, newest first.
func (s *Store) List(ctx context.Context) ([]service.SnapshotInfo, error) {
	out := make([]service.SnapshotInfo, 0)

	iter := s.bucket.List(&blob.ListOptions{Prefix: snapshotPrefix})
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list snapshots")
		}
		if obj.IsDir || !strings.HasSuffix(obj.Key, snapshotExt) {
			continue
		}
		out = append(out, service.SnapshotInfo{
			Name:      strings.TrimSuffix(strings.TrimPrefix(obj.Key, snapshotPrefix), snapshotExt),
			Size:      obj.Size,
			UpdatedAt: obj.ModTime,
		})
	}

	slices.SortStableFunc(out, func(a, b service.SnapshotInfo) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})

	return out, nil
}

// Close releases the bucket.
func (s *Store) Close() error {
	return s.bucket.Close()
}

func (s *Store) lock(key string) func() {
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	s.mu.Unlock()

	l.Lock()

	return l.Unlock
}

func snapshotKey(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return "", domainerrors.ErrValidationFailed.WithDetailsf("invalid snapshot name %q", name)
	}

	return snapshotPrefix + name + snapshotExt, nil
}
