package tablet

import (
	"context"
	"fmt"
	"path"
)

// EnsureFolder resolves the folder at the given path, verifying every
// ancestor along the way.
//
// The name is misleading on purpose: the device API cannot create folders,
// so "ensuring" a folder that does not exist yet always fails with
// ErrFolderCreationUnsupported. Existing folders are returned as-is when
// existsOK is set. With parents set, missing ancestors would be created too
// (and fail the same way); otherwise a missing ancestor is ErrParentNotFound.
//
// docs may be nil, in which case a fresh snapshot is fetched (slow).
func (c *Client) EnsureFolder(ctx context.Context, folderPath string, existsOK, parents bool, docs Snapshot) (*Folder, error) {
	if docs == nil {
		var err error
		if docs, err = c.ListAll(ctx); err != nil {
			return nil, err
		}
	}

	folderPath = path.Clean(folderPath)

	parentID := ""
	if dir := path.Dir(folderPath); dir != "." && dir != "/" {
		if parents {
			parent, err := c.EnsureFolder(ctx, dir, true, true, docs)
			if err != nil {
				return nil, err
			}
			parentID = parent.ID()
		} else {
			parent := docs.FindFile(dir)
			if parent == nil {
				return nil, fmt.Errorf("mkdir %s: %w", folderPath, ErrParentNotFound)
			}
			parentID = parent.ID()
		}
	}

	entry := docs.find(path.Base(folderPath), parentID)
	if entry != nil && !existsOK {
		return nil, fmt.Errorf("mkdir %s: %w", folderPath, ErrFolderExists)
	}

	switch e := entry.(type) {
	case *Document:
		return nil, &NameCollisionError{Path: folderPath}
	case *Folder:
		return e, nil
	}

	return c.CreateFolder(ctx, folderPath)
}
