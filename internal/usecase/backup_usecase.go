package usecase

import (
	"context"

	"livesales/internal/domain/service"
)

// RestoreResult counts what a restore wrote
type RestoreResult struct {
	Orders    int `json:"orders"`
	Catalogs  int `json:"catalogs"`
	Platforms int `json:"platforms"`
}

// BackupUsecase defines the interface for backup and restore use cases
type BackupUsecase interface {
	// ExportBackup renders every order, catalog and platform as a backup document
	ExportBackup(ctx context.Context) ([]byte, error)

	// RestoreBackup replaces all orders, catalogs and custom platforms with the document's.
	// Nothing is changed when the document is corrupt.
	RestoreBackup(ctx context.Context, data []byte) (*RestoreResult, error)

	SaveSnapshot(ctx context.Context, name string) (*service.SnapshotInfo, error)

	RestoreSnapshot(ctx context.Context, name string) (*RestoreResult, error)

	ListSnapshots(ctx context.Context) ([]service.SnapshotInfo, error)

	DeleteSnapshot(ctx context.Context, name string) error
}
