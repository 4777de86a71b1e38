// Package mirror implements the batch operations behind the download and
// upload commands: mirroring the remote tree into a local directory and
// pushing a local directory of pdfs onto the device.
//
// A fatal error on one file aborts the remaining batch; only per-file
// warnings (unsupported local file types) let the batch continue.
package mirror

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/OliverTED/remarkable-usb-api/internal/logging"
	"github.com/OliverTED/remarkable-usb-api/pkg/tablet"
)

// DownloadClient is the part of the tablet client the download needs.
type DownloadClient interface {
	ListAll(ctx context.Context) (tablet.Snapshot, error)
	DownloadToFile(ctx context.Context, documentID, filename string) error
}

// Download mirrors every document on the device into outputDir, recreating
// the folder structure. Files that already exist locally with the remote
// byte length are skipped; files with a different size are overwritten.
func Download(ctx context.Context, client DownloadClient, outputDir string) error {
	if _, err := os.Stat(outputDir); err == nil {
		logging.Warn("output directory exists", zap.String("dir", outputDir))
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	docs, err := client.ListAll(ctx)
	if err != nil {
		return err
	}

	for _, entry := range docs {
		doc, ok := entry.(*tablet.Document)
		if !ok {
			continue
		}

		outFn := filepath.Join(outputDir, filepath.FromSlash(doc.Filename()))

		if st, err := os.Stat(outFn); err == nil {
			if st.Size() == doc.Length() {
				logging.Warn("skipping file with same size", zap.String("file", outFn))
				continue
			}
			logging.Info("overwriting file with different size",
				zap.String("file", outFn),
				zap.Int64("local", st.Size()),
				zap.Int64("remote", doc.Length()))
		}

		fmt.Printf("downloading %s (%s; %d pages)\n", outFn, doc.ID(), doc.PageCount())
		if err := client.DownloadToFile(ctx, doc.ID(), outFn); err != nil {
			return fmt.Errorf("downloading %s: %w", outFn, err)
		}
	}
	return nil
}
