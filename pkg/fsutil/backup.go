package fsutil

import (
	"context"
	"fmt"
	"os"
)

// BackupMode selects where backups are written.
type BackupMode string

const (
	// BackupModeSidecar writes the backup next to the file.
	BackupModeSidecar BackupMode = "sidecar"

	// BackupModeNone disables backups.
	BackupModeNone BackupMode = "none"
)

// BackupSuffix is appended to a file name to form its sidecar backup.
const BackupSuffix = ".blockcont.bak"

// BackupPath returns the backup location for path, or "" when mode
// disables backups.
func BackupPath(path string, mode BackupMode) string {
	if mode == BackupModeNone {
		return ""
	}
	return path + BackupSuffix
}

// CreateBackup copies the file at path to its backup location. An existing
// backup is kept, so repeated writes preserve the oldest content.
// Returns the backup path, or "" when no backup was written.
func CreateBackup(ctx context.Context, path string, mode BackupMode) (string, error) {
	backupPath := BackupPath(path, mode)
	if backupPath == "" {
		return "", nil
	}

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("create backup: %w", ctx.Err())
	default:
	}

	if _, err := os.Stat(backupPath); err == nil {
		return "", nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat backup path: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", classify(path, err)
	}
	stat, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat original for backup: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, stat.Mode().Perm()); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}

	return backupPath, nil
}
