package cmd

import (
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/sndbox/staticd/config"
	"github.com/sndbox/staticd/internal/httpd"
	"github.com/sndbox/staticd/internal/log"
)

var (
	serveHost string
	servePort int
	serveRoot string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the file server.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("listen") {
			cfg.ListenHost = serveHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("root") {
			cfg.Webroot = serveRoot
		}

		level := log.InfoLevel
		if verbose || cfg.Verbose {
			level = log.DebugLevel
		}
		var sink io.Writer = os.Stderr
		if cfg.LogFile != "" {
			sink = &lumberjack.Logger{
				Filename:   cfg.LogFile,
				MaxSize:    100, // megabytes
				MaxBackups: 3,
			}
		}
		log.Init(level, cfg.LogJSON, sink)

		color.Green("staticd listening on %s, serving %s", cfg.Addr(), cfg.Webroot)

		srv := &httpd.Server{
			Addr:     cfg.Addr(),
			Resolver: &httpd.Resolver{Root: cfg.Webroot},
			Logger:   slog.Default(),
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "listen", config.DefaultConfig.ListenHost, "bind address")
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultConfig.Port, "TCP port to listen on")
	serveCmd.Flags().StringVar(&serveRoot, "root", config.DefaultConfig.Webroot, "webroot directory")
	rootCmd.AddCommand(serveCmd)
}
