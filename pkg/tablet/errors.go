package tablet

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by folder and upload operations.
var (
	// ErrFolderCreationUnsupported is returned whenever a folder would have
	// to be created remotely. The USB web API has no folder creation
	// endpoint; the user has to create the folder on the tablet itself.
	ErrFolderCreationUnsupported = errors.New("the device API does not support folder creation; please create the folder on the tablet")

	// ErrParentNotFound is returned by EnsureFolder when the parent path
	// does not resolve and creating parents was not requested.
	ErrParentNotFound = errors.New("parent folder does not exist")

	// ErrFolderExists is returned by EnsureFolder when the target already
	// exists and existing folders were not tolerated.
	ErrFolderExists = errors.New("folder already exists")

	// ErrUnsupportedFileType is returned for files that cannot be uploaded.
	// Currently only pdf files are supported.
	ErrUnsupportedFileType = errors.New("unsupported file type, only pdf is supported")
)

// NameCollisionError reports that a document occupies a path where a folder
// was expected.
type NameCollisionError struct {
	Path string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("mkdir %s: a document of the same name exists", e.Path)
}

// MalformedRecordError reports a device record that is missing a field its
// type requires. This means the device response could not be trusted and is
// never retried.
type MalformedRecordError struct {
	ID      string
	Name    string
	Missing string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %s (%s): missing %s", e.ID, e.Name, e.Missing)
}
