package snapshot

import (
	"context"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/rpg-table/internal/errors"
)

const filePerm = 0o644

// FileConfig contains configuration for the file snapshot repository
type FileConfig struct {
	// Path of the JSON document, e.g. data/database.json
	Path string
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Path == "" {
		return errors.InvalidArgument("path cannot be empty")
	}
	return nil
}

type fileRepository struct {
	path string
}

// NewFile creates a file-backed snapshot repository. Saves write a temp
// file next to the target and rename it into place.
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fileRepository{path: cfg.Path}, nil
}

func (r *fileRepository) Load(_ context.Context, _ LoadInput) (*LoadOutput, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &LoadOutput{}, nil
		}
		return nil, storageError(err, "failed to read snapshot").WithMeta("path", r.path)
	}

	return &LoadOutput{Data: data}, nil
}

func (r *fileRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "save canceled")
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, storageError(err, "failed to create snapshot directory").WithMeta("path", r.path)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return nil, storageError(err, "failed to create temp snapshot").WithMeta("path", r.path)
	}
	tmpName := tmp.Name()

	// Any failure below must not leave the temp file behind
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	n, err := tmp.Write(input.Data)
	if err != nil {
		return nil, storageError(err, "failed to write snapshot").WithMeta("path", r.path)
	}
	if err := tmp.Sync(); err != nil {
		return nil, storageError(err, "failed to sync snapshot").WithMeta("path", r.path)
	}
	if err := tmp.Close(); err != nil {
		return nil, storageError(err, "failed to close snapshot").WithMeta("path", r.path)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return nil, storageError(err, "failed to set snapshot permissions").WithMeta("path", r.path)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return nil, storageError(err, "failed to replace snapshot").WithMeta("path", r.path)
	}
	committed = true

	return &SaveOutput{BytesWritten: n}, nil
}

func storageError(err error, message string) *errors.Error {
	return errors.WrapWithCode(err, errors.CodeUnavailable, message).
		WithMeta(errors.MetaReason, errors.ReasonStorage)
}
