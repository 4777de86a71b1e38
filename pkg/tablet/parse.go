package tablet

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/OliverTED/remarkable-usb-api/internal/logging"
	"github.com/OliverTED/remarkable-usb-api/pkg/protocol"
)

// parseRecords converts raw device records into typed entries, attaching
// parent as the back-reference used for path computation. Records with an
// unknown type tag are skipped with a warning; a document record missing a
// required field fails the whole parse.
//
// The extension is fixed to pdf regardless of the record's fileType. The
// device also stores epub and notebook files, but the download endpoint
// renders everything to pdf, so that is what local filenames get.
func parseRecords(records []protocol.RawRecord, parent *Folder) (Snapshot, error) {
	entries := make(Snapshot, 0, len(records))
	for _, raw := range records {
		switch raw.Type {
		case protocol.TypeDocument:
			if raw.SizeInBytes == "" {
				return nil, &MalformedRecordError{ID: raw.ID, Name: raw.VisibleName, Missing: "sizeInBytes"}
			}
			length, err := strconv.ParseInt(raw.SizeInBytes, 10, 64)
			if err != nil {
				return nil, &MalformedRecordError{ID: raw.ID, Name: raw.VisibleName, Missing: "numeric sizeInBytes"}
			}
			if raw.PageCount == nil {
				return nil, &MalformedRecordError{ID: raw.ID, Name: raw.VisibleName, Missing: "pageCount"}
			}
			entries = append(entries, &Document{
				id:        raw.ID,
				name:      raw.VisibleName,
				parentID:  raw.Parent,
				parent:    parent,
				length:    length,
				pageCount: *raw.PageCount,
				extension: "pdf",
				raw:       raw,
			})

		case protocol.TypeCollection:
			entries = append(entries, &Folder{
				id:       raw.ID,
				name:     raw.VisibleName,
				parentID: raw.Parent,
				parent:   parent,
				raw:      raw,
			})

		default:
			logging.Warn("skipping record with unknown type",
				zap.String("name", raw.VisibleName),
				zap.String("type", raw.Type))
		}
	}
	return entries, nil
}
