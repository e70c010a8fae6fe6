package main

import (
	"github.com/spf13/cobra"

	"namestat/internal/config"
	"namestat/ui"
)

func newServeCmd() *cobra.Command {
	var (
		addr      string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generated report and artifacts over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output-dir") {
				cfg.Data.OutputDir = outputDir
			}
			if !cmd.Flags().Changed("addr") {
				addr = ":" + cfg.Server.Port
			}

			server := ui.NewServer(cfg.Data.OutputDir)
			return server.ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Address to listen on")
	cmd.Flags().StringVar(&outputDir, "output-dir", "Data/analysis", "Directory with generated artifacts")

	return cmd
}
