package main

import (
	"github.com/gin-gonic/gin"
	"github.com/kotaroooo0/gomamayo/server"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var store bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "ゴママヨ判定のHTTP APIを起動する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := a.newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			detector, err := newDetector(cfg, false, logger)
			if err != nil {
				return err
			}
			options := []server.Option{server.WithLogger(logger)}
			if store || cfg.StorageEnabled() {
				storage, err := openStorage(cfg.Storage)
				if err != nil {
					return err
				}
				defer storage.DB.Close()
				options = append(options, server.WithStorage(storage))
			}

			if !a.verbose {
				gin.SetMode(gin.ReleaseMode)
			}
			return server.New(detector, options...).Run(cmd.Context(), cfg.Server.Addr)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&store, "store", false, "判定結果を記録する")
	f.String("addr", ":8080", "待ち受けるアドレス")
	addAnalysisFlags(f)
	return cmd
}
