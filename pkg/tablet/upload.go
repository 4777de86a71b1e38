package tablet

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// UploadFile uploads the local file at localPath to remotePath on the
// device. Both names must end in .pdf; the remote parent folder must already
// exist (it cannot be created, see EnsureFolder). Duplicate avoidance is the
// caller's job via Snapshot.HasFile.
//
// docs may be nil, in which case a fresh snapshot is fetched (slow).
func (c *Client) UploadFile(ctx context.Context, localPath, remotePath string, docs Snapshot) error {
	if filepath.Ext(localPath) != ".pdf" {
		return fmt.Errorf("uploading %s: %w", localPath, ErrUnsupportedFileType)
	}
	if path.Ext(remotePath) != ".pdf" {
		return fmt.Errorf("uploading to %s: %w", remotePath, ErrUnsupportedFileType)
	}

	if docs == nil {
		var err error
		if docs, err = c.ListAll(ctx); err != nil {
			return err
		}
	}

	remotePath = path.Clean(remotePath)

	folderID := ""
	if dir := path.Dir(remotePath); dir != "." && dir != "/" {
		folder, err := c.EnsureFolder(ctx, dir, true, true, docs)
		if err != nil {
			return err
		}
		folderID = folder.ID()
	}

	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return c.Upload(ctx, path.Base(remotePath), f, folderID)
}
