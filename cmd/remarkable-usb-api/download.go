package main

import (
	"github.com/spf13/cobra"

	"github.com/OliverTED/remarkable-usb-api/internal/mirror"
)

var downloadDir string

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadCmd.Flags().StringVar(&downloadDir, "output-directory", "", "Directory to store files in (existing files with a different size are overwritten)")
	downloadCmd.MarkFlagRequired("output-directory")
}

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Mirror the device's documents into a local directory",
	Long: `Download every document on the device into the output directory,
recreating the folder structure. Files that already exist locally with the
same size as on the device are skipped; files with a different size are
overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mirror.Download(cmd.Context(), client, downloadDir)
	},
}
