package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OliverTED/remarkable-usb-api/pkg/tablet"
)

func init() {
	rootCmd.AddCommand(lsCmd)
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all documents and folders on the device",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := client.ListAll(cmd.Context())
		if err != nil {
			return err
		}

		for _, entry := range docs {
			switch e := entry.(type) {
			case *tablet.Document:
				fmt.Printf("%s %s %s %d\n", e.ID(), e.Name(), e.Extension(), e.PageCount())
			case *tablet.Folder:
				fmt.Printf("%s %s/ - -\n", e.ID(), e.Name())
			}
		}
		return nil
	},
}
