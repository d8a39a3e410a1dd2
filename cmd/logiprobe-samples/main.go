package main

import (
	"os"

	"github.com/Egor213/LogiProbe/internal/app"
	"github.com/Egor213/LogiProbe/internal/repo"
	"github.com/Egor213/LogiProbe/internal/repo/synth"
	"github.com/Egor213/LogiProbe/pkg/logger"
	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"
)

type flags struct {
	ip           string
	out          string
	window       int
	sortInjected bool
	logLevel     string
}

func newCommand() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:          "logiprobe-samples",
		Short:        "Export one synthesized data set to files",
		Long:         "Writes the server directory, Nginx, MySQL and Redis logs and a metric snapshot for a single server.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.SetupLogger(f.logLevel, "text")

			gen := synth.New(synth.WithOptions(synth.Options{
				SortInjected:  f.sortInjected,
				WindowMinutes: f.window,
			}))
			return app.ExportSamples(repo.NewRepositories(gen, nil), f.out, f.ip, f.window)
		},
	}

	cmd.Flags().StringVar(&f.ip, "ip", synth.DegradedIP, "server IP to synthesize data for")
	cmd.Flags().StringVarP(&f.out, "out", "o", "samples", "output directory")
	cmd.Flags().IntVarP(&f.window, "window", "w", synth.DefaultWindowMinutes, "time window in minutes")
	cmd.Flags().BoolVar(&f.sortInjected, "sort-injected", false, "sort injected MySQL/Redis lines into timestamp order")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "info", "log level")

	return cmd
}

func main() {
	if err := newCommand().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
