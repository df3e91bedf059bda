package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"acpc-thunderdome/server/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the match state inspector over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, err := cmd.Flags().GetString("port")
		if err != nil {
			return err
		}
		if port == "" {
			port = cfg.Port
		}
		dsn, err := dsnFlag(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		// archive is optional
		var db *store.DB
		if dsn != "" {
			db, err = openStore(ctx, dsn, cfg.AutoMigrate)
			if err != nil {
				log.Printf("DB disabled (open failed): %v", err)
				db = nil
			} else {
				defer db.Close(context.Background())
			}
		}

		timeout := time.Duration(cfg.Timeout) * time.Second
		srv := &http.Server{Addr: ":" + port, Handler: Router(db, timeout), ReadTimeout: timeout, WriteTimeout: timeout}
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		log.Printf("listening on http://localhost:%s (Ctrl+C to stop)", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("port", "", "listen port (default $PORT or 8080)")
}
