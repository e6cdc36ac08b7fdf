package app

import (
	"fmt"
	"io"
	"os"
	"time"
)

const backupStamp = "20060102_150405"

// BackupPath returns the sibling path a backup taken at t would use,
// e.g. msgFilterRules.dat.backup_20260823_141503.
func BackupPath(path string, t time.Time) string {
	return fmt.Sprintf("%s.backup_%s", path, t.Format(backupStamp))
}

// Backup copies the file next to itself under a timestamped name and
// returns the backup path. The copy is synced to disk before returning so
// a later failed write cannot lose both copies.
func Backup(path string) (string, error) {
	dst := BackupPath(path, time.Now())
	if err := copyFile(path, dst); err != nil {
		return "", fmt.Errorf("copying %s to %s: %w", path, dst, err)
	}
	return dst, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
