package tablet

import (
	"path"
	"strings"
)

// FindFile resolves a relative, slash-separated path to the entry it names,
// or nil if any segment fails to resolve. Ancestors are resolved first; the
// final segment is matched by display name under the resolved parent, with a
// ".pdf" suffix stripped before comparison so that "a.pdf" and "a" name the
// same document.
//
// If several entries share a name and parent, the first one in snapshot
// order wins.
func (s Snapshot) FindFile(name string) Entry {
	name = path.Clean(name)

	parentID := ""
	if dir := path.Dir(name); dir != "." && dir != "/" {
		parent := s.FindFile(dir)
		if parent == nil {
			return nil
		}
		parentID = parent.ID()
	}

	return s.find(path.Base(name), parentID)
}

// HasFile reports whether the path resolves to an entry.
func (s Snapshot) HasFile(name string) bool {
	return s.FindFile(name) != nil
}

// find matches one name under one parent. An empty parentID means root.
func (s Snapshot) find(name, parentID string) Entry {
	name = strings.TrimSuffix(name, ".pdf")

	for _, entry := range s {
		if entry.Name() == name && entry.ParentID() == parentID {
			return entry
		}
	}
	return nil
}
