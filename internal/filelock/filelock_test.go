package filelock

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileLock_LockUnlock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	fl := New(lockPath)
	if err := fl.Lock(); err != nil {
		t.Fatalf("Lock() failed: %v", err)
	}
	if err := fl.Unlock(); err != nil {
		t.Fatalf("Unlock() failed: %v", err)
	}
}

func TestFileLock_TryLock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	fl := New(lockPath)
	acquired, err := fl.TryLock()
	if err != nil {
		t.Fatalf("TryLock() failed: %v", err)
	}
	if !acquired {
		t.Fatal("TryLock() should acquire an uncontended lock")
	}
	defer fl.Unlock()
}

func TestWithLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	ran := false
	err := WithLock(path, func() error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("WithLock() failed: %v", err)
	}
	if !ran {
		t.Fatal("WithLock() should run the callback")
	}
}

func TestAtomicWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := AtomicWrite(path, []byte("first"), 0644); err != nil {
		t.Fatalf("AtomicWrite() failed: %v", err)
	}
	if err := AtomicWrite(path, []byte("second"), 0644); err != nil {
		t.Fatalf("AtomicWrite() overwrite failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	// No temp files should be left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}
