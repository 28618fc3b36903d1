package commands

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/joeka/localsecret/internal/app"
)

// Execute runs the CLI. Errors are printed by cobra; the caller only maps
// them to the exit code.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		secretFile     string
		prefixLength   int
		uses           uint
		failedAttempts uint
		bindIP         string
		showQR         bool
	)

	root := &cobra.Command{
		Use:   "localsecret",
		Short: "Share secrets via a local http server",
		Long: "localsecret serves a single secret (a file or piped stdin) over a local,\n" +
			"ephemeral HTTP server under an unguessable URL, then shuts itself down\n" +
			"once the allowed number of retrievals or failed attempts is reached.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config{
				SecretFile:     secretFile,
				PrefixLength:   prefixLength,
				Uses:           uses,
				FailedAttempts: failedAttempts,
				ShowQR:         showQR,
			}

			if bindIP != "" {
				ip := net.ParseIP(bindIP)
				if ip == nil {
					return fmt.Errorf("invalid bind ip %q", bindIP)
				}
				cfg.BindIP = ip
			}

			// Without a secret file, fall back to piped stdin.
			if secretFile == "" {
				if info, err := os.Stdin.Stat(); err == nil && info.Mode()&os.ModeCharDevice == 0 {
					cfg.Stdin = os.Stdin
				}
			}

			share, err := app.New(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return share.Run(ctx, cmd.OutOrStdout())
		},
	}

	root.Flags().StringVarP(&secretFile, "secret-file", "s", "", "the secret file to share (default: piped stdin)")
	root.Flags().IntVarP(&prefixLength, "url-prefix-length", "u", 42, "length of the randomly generated url prefix")
	root.Flags().UintVar(&uses, "uses", 1, "how often the shared url can be used")
	root.Flags().UintVar(&failedAttempts, "failed-attempts", 3, "invalid requests tolerated before the share is aborted (0 is discouraged: a browser's favicon probe would end the share immediately)")
	root.Flags().StringVar(&bindIP, "bind-ip", "", "ip address to bind (default: auto-discovered local address)")
	root.Flags().BoolVar(&showQR, "qr", false, "also print the share url as a terminal qr code")

	return root
}
