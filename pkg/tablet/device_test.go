package tablet

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/OliverTED/remarkable-usb-api/pkg/protocol"
	"github.com/OliverTED/remarkable-usb-api/pkg/retry"
)

// fakeDevice emulates the tablet's USB web API for tests: folder listings,
// document downloads and multipart uploads into the last listed folder.
type fakeDevice struct {
	t *testing.T

	mu           sync.Mutex
	folders      map[string][]protocol.RawRecord
	content      map[string][]byte
	requests     []string
	listFailures int
	lastListed   string
	uploads      []uploadedFile
}

type uploadedFile struct {
	filename string
	folderID string
	data     []byte
}

func newFakeDevice(t *testing.T) *fakeDevice {
	return &fakeDevice{
		t:       t,
		folders: make(map[string][]protocol.RawRecord),
		content: make(map[string][]byte),
	}
}

func (d *fakeDevice) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.requests = append(d.requests, r.Method+" "+r.URL.Path)

	switch {
	case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/documents/"):
		if d.listFailures > 0 {
			d.listFailures--
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		folderID := strings.TrimPrefix(r.URL.Path, "/documents/")
		records, ok := d.folders[folderID]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		d.lastListed = folderID
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/download/"):
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/download/"), "/placeholder")
		data, ok := d.content[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write(data)

	case r.Method == http.MethodPost && r.URL.Path == "/upload":
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		data, _ := io.ReadAll(file)
		file.Close()
		d.uploads = append(d.uploads, uploadedFile{
			filename: header.Filename,
			folderID: d.lastListed,
			data:     data,
		})
		w.WriteHeader(http.StatusCreated)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (d *fakeDevice) requestCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.requests)
}

// start returns a client pointed at the fake device.
func (d *fakeDevice) start() (*Client, *httptest.Server) {
	ts := httptest.NewServer(d)
	c := New(Config{
		BaseURL:     ts.URL,
		RetryConfig: retry.Immediate(3),
	})
	return c, ts
}

func docRecord(id, name, parent string, size string, pages int) protocol.RawRecord {
	return protocol.RawRecord{
		ID:          id,
		Type:        protocol.TypeDocument,
		VisibleName: name,
		Parent:      parent,
		FileType:    "pdf",
		SizeInBytes: size,
		PageCount:   &pages,
	}
}

func folderRecord(id, name, parent string) protocol.RawRecord {
	return protocol.RawRecord{
		ID:          id,
		Type:        protocol.TypeCollection,
		VisibleName: name,
		Parent:      parent,
	}
}
