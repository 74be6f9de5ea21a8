package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"dashd/internal/models"
)

// FileStore keeps one mutable JSON document per (type, date) under a
// single directory, written atomically via tmp-write-then-rename so a
// process kill mid-write never leaves a torn document behind.
type FileStore struct {
	dir        string
	compressor CompressorInterface
}

// NewFileStore creates the backing directory if needed. A nil compressor
// stores plain "statistics-{type}-{date}.json" files; with a compressor
// the files gain a ".zst" suffix.
func NewFileStore(dir string, compressor CompressorInterface) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir, compressor: compressor}, nil
}

func (fs *FileStore) path(typ models.StatType, date models.DateKey) string {
	name := FileName(typ, date)
	if fs.compressor != nil {
		name += ".zst"
	}
	return filepath.Join(fs.dir, name)
}

func (fs *FileStore) Get(_ context.Context, typ models.StatType, date models.DateKey) (*models.StatDocument, error) {
	data, err := os.ReadFile(fs.path(typ, date))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read document %s/%s: %w", typ, date, err)
	}

	if fs.compressor != nil {
		data, err = fs.compressor.Decompress(data)
		if err != nil {
			return nil, fmt.Errorf("decompress document %s/%s: %w", typ, date, err)
		}
	}

	var doc models.StatDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s/%s: %w", typ, date, err)
	}
	return &doc, nil
}

func (fs *FileStore) Put(_ context.Context, typ models.StatType, date models.DateKey, doc *models.StatDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %s/%s: %w", typ, date, err)
	}

	if fs.compressor != nil {
		data, err = fs.compressor.Compress(data)
		if err != nil {
			return fmt.Errorf("compress document %s/%s: %w", typ, date, err)
		}
	}

	fileName := fs.path(typ, date)
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}
