package mirror

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/OliverTED/remarkable-usb-api/internal/logging"
	"github.com/OliverTED/remarkable-usb-api/pkg/tablet"
)

// UploadClient is the part of the tablet client the upload needs.
type UploadClient interface {
	ListAll(ctx context.Context) (tablet.Snapshot, error)
	UploadFile(ctx context.Context, localPath, remotePath string, docs tablet.Snapshot) error
}

// Upload walks dir for pdf files and uploads every file that is not already
// present on the device under the same relative path. Other regular files
// are skipped with a warning. The snapshot is refreshed before each file so
// that each presence check sees the previous upload.
func Upload(ctx context.Context, client UploadClient, dir string) error {
	files, err := ScanPDFs(dir)
	if err != nil {
		return err
	}

	for i, rel := range files {
		remote := filepath.ToSlash(rel)

		docs, err := client.ListAll(ctx)
		if err != nil {
			return err
		}
		if docs.HasFile(remote) {
			logging.Debug("already on device", zap.String("file", remote))
			continue
		}

		fmt.Printf("uploading %s (%d/%d)\n", remote, i+1, len(files))
		if err := client.UploadFile(ctx, filepath.Join(dir, rel), remote, docs); err != nil {
			return fmt.Errorf("uploading %s: %w", remote, err)
		}
	}
	return nil
}

// ScanPDFs returns the pdf files under dir as sorted dir-relative paths.
// Regular files of any other type are skipped with a warning.
func ScanPDFs(dir string) ([]string, error) {
	var files []string

	// WalkDir visits entries in lexical order, which fixes upload order.
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(p) != ".pdf" {
			logging.Warn("unknown filetype, skipping", zap.String("file", p))
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
