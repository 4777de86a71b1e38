package tablet

import (
	"context"
	"errors"
	"testing"

	"github.com/OliverTED/remarkable-usb-api/pkg/protocol"
)

// nestedDevice builds this remote tree:
//
//	Books/            (folder-books)
//	  Papers/         (folder-papers)
//	    Attention.pdf (doc-attention)
//	  Sicp.pdf        (doc-sicp)
//	Scratch.pdf       (doc-scratch)
func nestedDevice(t *testing.T) *fakeDevice {
	device := newFakeDevice(t)
	device.folders[""] = []protocol.RawRecord{
		folderRecord("folder-books", "Books", ""),
		docRecord("doc-scratch", "Scratch", "", "100", 2),
	}
	device.folders["folder-books"] = []protocol.RawRecord{
		folderRecord("folder-papers", "Papers", "folder-books"),
		docRecord("doc-sicp", "Sicp", "folder-books", "900", 50),
	}
	device.folders["folder-papers"] = []protocol.RawRecord{
		docRecord("doc-attention", "Attention", "folder-papers", "400", 15),
	}
	return device
}

func TestList_SingleLevelKeepsRecordCount(t *testing.T) {
	device := newFakeDevice(t)
	device.folders[""] = []protocol.RawRecord{
		folderRecord("folder-1", "Books", ""),
		docRecord("doc-1", "Notes", "", "10", 1),
		{ID: "weird-1", Type: "TrashType", VisibleName: "Old"},
	}
	c, ts := device.start()
	defer ts.Close()

	docs, err := c.List(context.Background(), "", false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Unknown types are filtered with a warning, everything else survives.
	if len(docs) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(docs))
	}
	if got := device.requestCount(); got != 1 {
		t.Errorf("non-recursive listing should make 1 request, got %d", got)
	}
}

func TestListAll_FlattensDepthFirst(t *testing.T) {
	c, ts := nestedDevice(t).start()
	defer ts.Close()

	docs, err := c.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var ids []string
	for _, e := range docs {
		ids = append(ids, e.ID())
	}
	want := []string{"folder-books", "doc-scratch", "folder-papers", "doc-sicp", "doc-attention"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("entry order = %v, want %v", ids, want)
		}
	}
}

func TestListAll_OneRequestPerFolder(t *testing.T) {
	device := nestedDevice(t)
	c, ts := device.start()
	defer ts.Close()

	if _, err := c.ListAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Root plus two subfolders.
	if got := device.requestCount(); got != 3 {
		t.Errorf("expected 3 requests, got %d", got)
	}
}

func TestListAll_ComputesFilenames(t *testing.T) {
	c, ts := nestedDevice(t).start()
	defer ts.Close()

	docs, err := c.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"folder-books":  "Books",
		"folder-papers": "Books/Papers",
		"doc-sicp":      "Books/Sicp.pdf",
		"doc-attention": "Books/Papers/Attention.pdf",
		// A document at the root has no extension in its filename.
		"doc-scratch": "Scratch",
	}
	for _, e := range docs {
		if e.Filename() != want[e.ID()] {
			t.Errorf("%s: filename = %q, want %q", e.ID(), e.Filename(), want[e.ID()])
		}
	}
}

func TestListAll_FindFileIsInverseOfFilename(t *testing.T) {
	c, ts := nestedDevice(t).start()
	defer ts.Close()

	docs, err := c.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, e := range docs {
		found := docs.FindFile(e.Filename())
		if found != e {
			t.Errorf("FindFile(%q) = %v, want entry %s", e.Filename(), found, e.ID())
		}
	}
}

func TestList_MalformedDocumentIsFatal(t *testing.T) {
	tests := []struct {
		name   string
		record protocol.RawRecord
	}{
		{"missing sizeInBytes", protocol.RawRecord{
			ID: "doc-1", Type: protocol.TypeDocument, VisibleName: "Broken", PageCount: intp(1),
		}},
		{"missing pageCount", protocol.RawRecord{
			ID: "doc-1", Type: protocol.TypeDocument, VisibleName: "Broken", SizeInBytes: "10",
		}},
		{"non-numeric sizeInBytes", protocol.RawRecord{
			ID: "doc-1", Type: protocol.TypeDocument, VisibleName: "Broken",
			SizeInBytes: "ten", PageCount: intp(1),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := newFakeDevice(t)
			device.folders[""] = []protocol.RawRecord{tt.record}
			c, ts := device.start()
			defer ts.Close()

			_, err := c.List(context.Background(), "", false, nil)
			var malformed *MalformedRecordError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedRecordError, got %v", err)
			}
			if malformed.ID != "doc-1" {
				t.Errorf("error should carry the record ID, got %q", malformed.ID)
			}
		})
	}
}

func TestList_TransportFailureAbortsRecursion(t *testing.T) {
	device := nestedDevice(t)
	delete(device.folders, "folder-papers") // the device will 404 this one
	c, ts := device.start()
	defer ts.Close()

	if _, err := c.ListAll(context.Background()); err == nil {
		t.Fatal("expected recursive listing to fail when a subfolder fails")
	}
}

func intp(v int) *int { return &v }
