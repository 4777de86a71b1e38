package main

import (
	"github.com/spf13/cobra"

	"github.com/OliverTED/remarkable-usb-api/internal/mirror"
)

var uploadDir string

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().StringVar(&uploadDir, "directory", "", "Directory to read pdf files from")
	uploadCmd.MarkFlagRequired("directory")
}

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a directory of pdf files to the device",
	Long: `Scan the directory recursively for pdf files and upload every file that
is not already on the device under the same relative path. Files of other
types are skipped with a warning.

The device cannot create folders over this API: if a file's folder does not
exist on the device yet, the upload stops and asks you to create the folder
on the tablet.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mirror.Upload(cmd.Context(), client, uploadDir)
	},
}
