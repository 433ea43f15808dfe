package service

import (
	"context"
	"time"

	"livesales/internal/domain/entity"
)

// DecodedBackup is a parsed backup document with its metadata.
type DecodedBackup struct {
	entity.Snapshot
	ExportedAt time.Time
	AppVersion string
}

// BackupCodec converts between the user's data set and the portable backup document
type BackupCodec interface {
	Serialize(snapshot entity.Snapshot, exportedAt time.Time) ([]byte, error)

	// Deserialize fails with ErrCorruptBackup on any malformed input
	Deserialize(data []byte) (*DecodedBackup, error)
}

// SnapshotInfo describes one stored backup document.
type SnapshotInfo struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SnapshotStore keeps named backup documents
type SnapshotStore interface {
	Save(ctx context.Context, name string, data []byte) error

	// Load returns ErrBackupNotFound for an unknown name
	Load(ctx context.Context, name string) ([]byte, error)

	Delete(ctx context.Context, name string) error

	// List returns every stored snapshot, newest first
	List(ctx context.Context) ([]SnapshotInfo, error)
}
