package fsutil

import (
	"context"
	"fmt"
)

// CommitOptions control Commit.
type CommitOptions struct {
	// Backup enables a backup of the previous content.
	Backup bool

	// BackupMode selects the backup location. Empty means sidecar.
	BackupMode BackupMode
}

// Commit writes content over the file described by snap. It fails with
// ErrChangedOnDisk when the file no longer matches the snapshot.
// Returns the backup path, or "" when no backup was written.
func Commit(ctx context.Context, snap *Snapshot, content string, opts CommitOptions) (string, error) {
	changed, err := snap.Changed(ctx)
	if err != nil {
		return "", err
	}
	if changed {
		return "", fmt.Errorf("%w: %s", ErrChangedOnDisk, snap.Path)
	}

	var backupPath string
	if opts.Backup {
		mode := opts.BackupMode
		if mode == "" {
			mode = BackupModeSidecar
		}
		backupPath, err = CreateBackup(ctx, snap.Path, mode)
		if err != nil {
			return "", err
		}
	}

	if err := WriteAtomic(ctx, snap.Path, []byte(content), snap.Mode); err != nil {
		return backupPath, fmt.Errorf("write %s: %w", snap.Path, err)
	}

	return backupPath, nil
}
