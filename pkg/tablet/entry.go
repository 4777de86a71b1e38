// Package tablet is a client for the reMarkable tablet's USB web interface.
//
// The device exposes a small REST API over USB networking: one endpoint to
// list a folder, one to download a document and one to upload into the
// folder that was listed last. On top of the raw transport this package
// reconstructs the document tree from the flat records the device returns
// and resolves filesystem-like paths to document identifiers.
package tablet

import (
	"path"

	"github.com/OliverTED/remarkable-usb-api/pkg/protocol"
)

// Entry is a single item in a device snapshot: either a *Document or a
// *Folder. Entries are immutable once built; a fresh snapshot is fetched
// for every top-level operation.
type Entry interface {
	// ID is the device identifier of the entry.
	ID() string
	// Name is the display name, without extension.
	Name() string
	// ParentID is the identifier of the enclosing folder, "" at root.
	ParentID() string
	// Parent is the enclosing folder within the same snapshot, nil at root.
	Parent() *Folder
	// Filename is the full logical path of the entry relative to the
	// listing root, with "/" separators.
	Filename() string

	sealed()
}

// NewDocument builds a document entry by hand. Snapshots normally come from
// Client.List; this is for constructing fixtures and fakes.
func NewDocument(id, name string, parent *Folder, length int64, pageCount int) *Document {
	return &Document{
		id:        id,
		name:      name,
		parentID:  parentIDOf(parent),
		parent:    parent,
		length:    length,
		pageCount: pageCount,
		extension: "pdf",
	}
}

// NewFolder builds a folder entry by hand. Snapshots normally come from
// Client.List; this is for constructing fixtures and fakes.
func NewFolder(id, name string, parent *Folder) *Folder {
	return &Folder{
		id:       id,
		name:     name,
		parentID: parentIDOf(parent),
		parent:   parent,
	}
}

func parentIDOf(parent *Folder) string {
	if parent == nil {
		return ""
	}
	return parent.id
}

// Document is a file-like entry. The device stores pdf, epub and notebook
// files; this client currently treats every document as a pdf.
type Document struct {
	id        string
	name      string
	parentID  string
	parent    *Folder
	length    int64
	pageCount int
	extension string
	raw       protocol.RawRecord
}

// ID implements Entry.
func (d *Document) ID() string { return d.id }

// Name implements Entry.
func (d *Document) Name() string { return d.name }

// ParentID implements Entry.
func (d *Document) ParentID() string { return d.parentID }

// Parent implements Entry.
func (d *Document) Parent() *Folder { return d.parent }

// Length is the document size in bytes as reported by the device.
func (d *Document) Length() int64 { return d.length }

// PageCount is the number of pages as reported by the device.
func (d *Document) PageCount() int { return d.pageCount }

// Extension is the file extension used for the local filename.
func (d *Document) Extension() string { return d.extension }

// Raw is the record the document was built from.
func (d *Document) Raw() protocol.RawRecord { return d.raw }

// Filename implements Entry. A document inside a folder carries its
// extension; a document at the listing root is just its display name.
func (d *Document) Filename() string {
	if d.parent == nil {
		return d.name
	}
	return path.Join(d.parent.Filename(), d.name+"."+d.extension)
}

func (d *Document) sealed() {}

// Folder is a directory-like entry that contains documents and folders.
type Folder struct {
	id       string
	name     string
	parentID string
	parent   *Folder
	raw      protocol.RawRecord
}

// ID implements Entry.
func (f *Folder) ID() string { return f.id }

// Name implements Entry.
func (f *Folder) Name() string { return f.name }

// ParentID implements Entry.
func (f *Folder) ParentID() string { return f.parentID }

// Parent implements Entry.
func (f *Folder) Parent() *Folder { return f.parent }

// Raw is the record the folder was built from.
func (f *Folder) Raw() protocol.RawRecord { return f.raw }

// Filename implements Entry.
func (f *Folder) Filename() string {
	if f.parent == nil {
		return f.name
	}
	return path.Join(f.parent.Filename(), f.name)
}

func (f *Folder) sealed() {}
