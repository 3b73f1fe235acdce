package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"freightforge/internal/repository"
	"freightforge/internal/repository/collection"
)

const (
	dirPerm   = 0o750
	fileExt   = ".json"
	backupExt = ".bak"
	tmpGlob   = ".*.tmp"
	filePerm  = 0o640
)

// Driver keeps one JSON document per collection in a directory.
type Driver struct {
	mu  sync.Mutex
	dir string
}

func New(dir string) (*Driver, error) {
	if dir == "" {
		return nil, errors.New("data directory is required")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Driver{dir: dir}, nil
}

func (d *Driver) Read(ctx context.Context, name collection.Name) (collection.Records, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(d.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repository.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var records collection.Records
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &repository.DecodeError{Collection: name.String(), Err: err}
	}
	return records, nil
}

// Write stages every collection into a temp file next to its target and only
// renames once all of them were written and synced. Each target is hard-linked
// to a backup before it is replaced, so a failed rename puts the collections
// already replaced in this batch back the way they were.
func (d *Driver) Write(ctx context.Context, batch collection.Batch) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	names := make([]collection.Name, 0, len(batch))
	for name := range batch {
		names = append(names, name)
	}
	slices.Sort(names)

	staged := make(map[collection.Name]string, len(names))
	defer func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}()

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		tmp, err := d.stage(name, batch[name])
		if err != nil {
			return err
		}
		staged[name] = tmp
	}

	backups := make(map[collection.Name]string, len(names))
	defer func() {
		for _, backup := range backups {
			_ = os.Remove(backup)
		}
	}()

	replaced := make([]collection.Name, 0, len(names))
	for _, name := range names {
		backup, err := d.backup(name)
		if err != nil {
			d.rollback(replaced, backups)
			return err
		}
		if backup != "" {
			backups[name] = backup
		}

		if err := os.Rename(staged[name], d.path(name)); err != nil {
			d.rollback(replaced, backups)
			return fmt.Errorf("replace %s: %w", name, err)
		}
		delete(staged, name)
		replaced = append(replaced, name)
	}

	return syncDir(d.dir)
}

// backup links the current document of a collection aside. It returns an empty
// path when the collection has no document yet.
func (d *Driver) backup(name collection.Name) (string, error) {
	backup := d.path(name) + backupExt
	if err := os.Remove(backup); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("back up %s: %w", name, err)
	}
	if err := os.Link(d.path(name), backup); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("back up %s: %w", name, err)
	}
	return backup, nil
}

func (d *Driver) rollback(replaced []collection.Name, backups map[collection.Name]string) {
	for _, name := range replaced {
		backup, ok := backups[name]
		if !ok {
			_ = os.Remove(d.path(name))
			continue
		}
		if err := os.Rename(backup, d.path(name)); err == nil {
			delete(backups, name)
		}
	}
}

func (d *Driver) stage(name collection.Name, records collection.Records) (string, error) {
	if records == nil {
		records = collection.Records{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}

	f, err := os.CreateTemp(d.dir, name.String()+tmpGlob)
	if err != nil {
		return "", fmt.Errorf("stage %s: %w", name, err)
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", fmt.Errorf("stage %s: %w", name, err)
	}
	if err := f.Chmod(filePerm); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", fmt.Errorf("stage %s: %w", name, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", fmt.Errorf("sync %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	return tmp, nil
}

func (d *Driver) path(name collection.Name) string {
	return filepath.Join(d.dir, name.String()+fileExt)
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}
	defer f.Close()

	// some filesystems refuse to fsync a directory, the rename is already done
	_ = f.Sync()
	return nil
}
