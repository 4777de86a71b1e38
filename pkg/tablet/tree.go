package tablet

import "context"

// Snapshot is the flat entry list produced by one listing. It represents the
// remote tree at one point in time; parents generally precede their
// descendants, siblings keep the order the device reported them in.
type Snapshot []Entry

// List fetches one folder level and parses it, recursing into subfolders
// when recurse is set. parent becomes the back-reference of every entry on
// this level; pass nil when listing from the root.
//
// The device has no bulk listing, so a recursive listing costs one HTTP
// round trip per folder. A transport failure anywhere aborts the whole
// listing.
func (c *Client) List(ctx context.Context, folderID string, recurse bool, parent *Folder) (Snapshot, error) {
	records, err := c.ListFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}

	entries, err := parseRecords(records, parent)
	if err != nil {
		return nil, err
	}

	if recurse {
		var subs Snapshot
		for _, entry := range entries {
			folder, ok := entry.(*Folder)
			if !ok {
				continue
			}
			children, err := c.List(ctx, folder.ID(), true, folder)
			if err != nil {
				return nil, err
			}
			subs = append(subs, children...)
		}
		entries = append(entries, subs...)
	}
	return entries, nil
}

// ListAll fetches the complete document tree as a fresh snapshot.
func (c *Client) ListAll(ctx context.Context) (Snapshot, error) {
	return c.List(ctx, "", true, nil)
}
