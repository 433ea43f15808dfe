package handler

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"livesales/internal/delivery/api/response"
	"livesales/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BackupHandlerParams holds dependencies for BackupHandler, injected by Fx.
type BackupHandlerParams struct {
	fx.In

	BackupUC usecase.BackupUsecase
	Logger   *slog.Logger
}

// BackupHandler serves backup download, restore and stored snapshots
type BackupHandler struct {
	backupUC usecase.BackupUsecase
	logger   *slog.Logger
	now      func() time.Time
}

// NewBackupHandler is the constructor for BackupHandler
func NewBackupHandler(params BackupHandlerParams) *BackupHandler {
	return &BackupHandler{
		backupUC: params.BackupUC,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// SnapshotRequest is the body of POST /backup/snapshots
type SnapshotRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// ExportBackup downloads the full backup document
func (h *BackupHandler) ExportBackup(c echo.Context) error {
	data, err := h.backupUC.ExportBackup(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filename := "livesales-backup-" + h.now().UTC().Format("20060102-150405") + ".json"

	return response.Attachment(c, filename, echo.MIMEApplicationJSON, data)
}

// RestoreBackup replaces all data with the uploaded document, sent as the raw body
func (h *BackupHandler) RestoreBackup(c echo.Context) error {
	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Failed to read backup document")
	}
	if len(data) == 0 {
		return response.BadRequest(c, "VALIDATION_ERROR", "backup document is required")
	}

	result, err := h.backupUC.RestoreBackup(c.Request().Context(), data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ListSnapshots returns stored snapshots, newest first
func (h *BackupHandler) ListSnapshots(c echo.Context) error {
	snapshots, err := h.backupUC.ListSnapshots(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshots)
}

// SaveSnapshot stores the current data under a name, replacing an older snapshot of that name
func (h *BackupHandler) SaveSnapshot(c echo.Context) error {
	var req SnapshotRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid snapshot input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	info, err := h.backupUC.SaveSnapshot(c.Request().Context(), req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, info)
}

// RestoreSnapshot replaces all data with a stored snapshot
func (h *BackupHandler) RestoreSnapshot(c echo.Context) error {
	result, err := h.backupUC.RestoreSnapshot(c.Request().Context(), c.Param("name"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// DeleteSnapshot removes a stored snapshot
func (h *BackupHandler) DeleteSnapshot(c echo.Context) error {
	if err := h.backupUC.DeleteSnapshot(c.Request().Context(), c.Param("name")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Snapshot deleted successfully"})
}
