package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/docship/internal/cliconfig"
	"github.com/bft-labs/docship/pkg/docship"
	logAdapter "github.com/bft-labs/docship/pkg/log"
)

const helpDescription = `
Recognize, validate, sign and deliver the documents dropped into an inbox.

Each file is handled on its own: it is parsed into a document, its format
version and freshness are checked, it is signed with your certificate and
uploaded. Files that fail any step stay in the inbox and are listed with the
reason they were skipped.

Configure via file ($HOME/.docship/config.toml), DOCSHIP_* env vars, or flags.
`

var exampleUsage = strings.TrimSpace(`
  docship --inbox-dir ./inbox --cert ./cert.json --auth-key <api-key>
  docship --config $HOME/.docship/config.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:           "docship",
		Short:         "Sign and deliver inbox documents",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// DOCSHIP_* override the file but not explicit flags
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logCfg := cfg
			if len(logCfg.AuthKey) > 0 {
				logCfg.AuthKey = "*****"
			}
			log.Info().Interface("config", logCfg).Msg("configuration")

			cert, err := cliconfig.LoadCertificate(cfg.CertPath)
			if err != nil {
				return err
			}
			log.Info().Str("certificate", cert.ID).Msg("certificate loaded")

			d, err := docship.New(docship.Config{
				InboxDir:        cfg.InboxDir,
				ReportDir:       cfg.ReportDir,
				ServiceURL:      cfg.ServiceURL,
				AuthKey:         cfg.AuthKey,
				AcceptedFormats: cfg.AcceptedFormats,
				Workers:         cfg.Workers,
				HTTPTimeout:     cfg.HTTPTimeout,
				MoveSent:        cfg.MoveSent,
				Debounce:        cfg.Debounce,
			}, docship.WithLogger(logAdapter.NewZerolog(log)))
			if err != nil {
				return fmt.Errorf("create docship: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			if cfg.Watch {
				return d.Watch(ctx, cert, func(r docship.BatchResult, rep docship.Report) {
					printSummary(out, r, rep)
				})
			}

			result, report, err := d.Run(ctx, cert)
			if err != nil {
				return err
			}
			printSummary(out, result, report)
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.docship/config.toml)")
	root.Flags().StringVar(&cfg.InboxDir, "inbox-dir", cfg.InboxDir, "directory holding the documents to send")
	root.Flags().StringVar(&cfg.CertPath, "cert", cfg.CertPath, "path to the signing certificate (JSON key file)")
	root.Flags().StringVar(&cfg.AuthKey, "auth-key", cfg.AuthKey, "API key for authentication")
	root.Flags().StringSliceVar(&cfg.AcceptedFormats, "formats", cfg.AcceptedFormats, "accepted document format versions")
	root.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "number of files processed concurrently")
	root.Flags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout per upload")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "keep running and send new files as they arrive")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period after inbox changes before a batch (watch mode)")
	root.Flags().BoolVar(&cfg.MoveSent, "move-sent", cfg.MoveSent, "move delivered files into <inbox-dir>/sent")

	root.Flags().StringVar(&cfg.ServiceURL, "service-url", cfg.ServiceURL, fmt.Sprintf("base service URL (defaults to %s; override only for internal testing)", cliconfig.DefaultServiceURL))
	if err := root.Flags().MarkHidden("service-url"); err != nil {
		log.Info().Err(err).Msg("failed to hide service-url flag")
	}
	root.Flags().StringVar(&cfg.ReportDir, "report-dir", cfg.ReportDir, "directory for batch reports (defaults to <inbox-dir>/.reports)")
	if err := root.Flags().MarkHidden("report-dir"); err != nil {
		log.Info().Err(err).Msg("failed to hide report-dir flag")
	}

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("docship")
		os.Exit(1)
	}
}

// printSummary writes one line per batch and one line per skipped file.
func printSummary(w io.Writer, r docship.BatchResult, rep docship.Report) {
	if r.Total == 0 {
		fmt.Fprintln(w, "no files to send")
		return
	}
	fmt.Fprintf(w, "batch %s: %d sent, %d skipped of %d\n", rep.BatchID, r.Sent, len(r.Skipped), r.Total)
	for _, s := range r.Skips {
		fmt.Fprintf(w, "  skipped %s: %s (%v)\n", s.File.Name, s.Reason, s.Err)
	}
}
