package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func setupStorageFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "summon.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write storage fixture: %v", err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	path := setupStorageFile(t, `[{"id":1}]`)
	mgr := NewManager(path)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != `[{"id":1}]` {
		t.Errorf("backup content mismatch: %s", data)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("want 1 backup, got %d", len(backups))
	}
}

func TestCreateBackup_MissingStorage(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Errorf("expected error when storage does not exist")
	}
}

func TestRotation(t *testing.T) {
	path := setupStorageFile(t, `[]`)
	mgr := NewManager(path)

	// Pre-seed more than MaxBackups old backups.
	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	for i := 0; i < MaxBackups+5; i++ {
		name := fmt.Sprintf("%s2023%02d%02d-1200.json", BackupFilePrefix, i/28+1, i%28+1)
		if err := os.WriteFile(filepath.Join(mgr.BackupDir(), name), []byte("[]"), 0600); err != nil {
			t.Fatalf("failed to seed backup: %v", err)
		}
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("want %d backups after rotation, got %d", MaxBackups, len(backups))
	}

	// The newest backup must survive rotation.
	newest := backups[0]
	if newest.Timestamp.Year() == 2023 {
		t.Errorf("rotation kept an old backup as newest: %v", newest)
	}
}

func TestRestoreBackup(t *testing.T) {
	path := setupStorageFile(t, `["current"]`)
	mgr := NewManager(path)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	if err := os.WriteFile(path, []byte(`["changed"]`), 0600); err != nil {
		t.Fatalf("failed to modify storage: %v", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("failed to restore: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read storage: %v", err)
	}
	if string(data) != `["current"]` {
		t.Errorf("restore did not bring back the backup content: %s", data)
	}
}

func TestRestoreBackup_FormatMismatch(t *testing.T) {
	path := setupStorageFile(t, `[]`)
	mgr := NewManager(path)

	other := filepath.Join(t.TempDir(), "summon-20240101-1200.db")
	if err := os.WriteFile(other, []byte("x"), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if err := mgr.RestoreBackup(other); err == nil {
		t.Errorf("expected error restoring a backup with a different extension")
	}
}
