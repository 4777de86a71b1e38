package main

import (
	"github.com/spf13/cobra"

	"github.com/OliverTED/remarkable-usb-api/internal/config"
	"github.com/OliverTED/remarkable-usb-api/internal/logging"
	"github.com/OliverTED/remarkable-usb-api/pkg/retry"
	"github.com/OliverTED/remarkable-usb-api/pkg/tablet"
)

var (
	flagConfig  string
	flagVerbose bool

	cfg    *config.Config
	client *tablet.Client
)

var rootCmd = &cobra.Command{
	Use:   "remarkable-usb-api",
	Short: "Client for the reMarkable tablet's USB web interface",
	Long: `remarkable-usb-api talks to the REST API the reMarkable tablet exposes
when it is connected over USB and the web interface is enabled in
Settings > Storage. It can list the document tree, mirror it into a local
directory and upload local pdf files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := config.New(flagConfig)
		if err != nil {
			return err
		}

		flags := cmd.Root().PersistentFlags()
		if err := v.BindPFlag("base_url", flags.Lookup("base-url")); err != nil {
			return err
		}
		if err := v.BindPFlag("retries", flags.Lookup("retries")); err != nil {
			return err
		}
		if err := v.BindPFlag("timeout", flags.Lookup("timeout")); err != nil {
			return err
		}

		if cfg, err = config.Load(v); err != nil {
			return err
		}
		if flagVerbose {
			cfg.Logging.Level = "debug"
		}
		if err := logging.Init(logging.Config(cfg.Logging)); err != nil {
			return err
		}

		client = tablet.New(tablet.Config{
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
			// Retries count extra attempts after the first one.
			RetryConfig: retry.Immediate(cfg.Retries + 1),
		})
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Config file (default ~/.config/remarkable-usb-api/config.yaml)")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	flags.String("base-url", tablet.DefaultBaseURL, "URL the device's REST API is found at")
	flags.Int("retries", 3, "Retry transport failures this many times")
	flags.Duration("timeout", 0, "Per-request HTTP timeout (0 uses the configured default)")
}
