// Package protocol defines the wire types of the reMarkable USB web API.
package protocol

// Record type tags as reported by the device.
const (
	TypeDocument   = "DocumentType"
	TypeCollection = "CollectionType"
)

// RawRecord is a document or folder record exactly as the device reports it
// from POST /documents/{folderID}. Field names mirror the device's JSON,
// including the "VissibleName" misspelling, which is part of the API.
//
// Document-only fields are pointers so that "absent" is distinguishable from
// a zero value. SizeInBytes arrives as a decimal string, not a number.
type RawRecord struct {
	Bookmarked     bool     `json:"Bookmarked"`
	ID             string   `json:"ID"`
	ModifiedClient string   `json:"ModifiedClient"`
	Parent         string   `json:"Parent"`
	Type           string   `json:"Type"`
	Version        int      `json:"Version"`
	VisibleName    string   `json:"VissibleName"`
	Tags           []string `json:"tags"`

	CurrentPage     *int              `json:"CurrentPage,omitempty"`
	CoverPageNumber *int              `json:"coverPageNumber,omitempty"`
	DummyDocument   *bool             `json:"dummyDocument,omitempty"`
	FileType        string            `json:"fileType,omitempty"`
	FontName        string            `json:"fontName,omitempty"`
	FormatVersion   *int              `json:"formatVersion,omitempty"`
	LineHeight      *int              `json:"lineHeight,omitempty"`
	Margins         *int              `json:"margins,omitempty"`
	Orientation     string            `json:"orientation,omitempty"`
	OrigPageCount   *int              `json:"originalPageCount,omitempty"`
	PageCount       *int              `json:"pageCount,omitempty"`
	Pages           []string          `json:"pages,omitempty"`
	SizeInBytes     string            `json:"sizeInBytes,omitempty"`
	TextAlignment   string            `json:"textAlignment,omitempty"`
	TextScale       *int              `json:"textScale,omitempty"`
	Metadata        map[string]string `json:"documentMetadata,omitempty"`
}

// IsRoot reports whether the record sits in the device's root folder.
// The device encodes "no parent" as an empty Parent string.
func (r RawRecord) IsRoot() bool {
	return r.Parent == ""
}
