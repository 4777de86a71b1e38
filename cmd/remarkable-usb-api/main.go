// remarkable-usb-api lists, downloads and uploads documents over the
// reMarkable tablet's USB web interface.
package main

import (
	"fmt"
	"os"

	"github.com/OliverTED/remarkable-usb-api/internal/logging"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
