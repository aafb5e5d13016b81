//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"trpc.group/trpc-go/trpc-rouge-go/log"
	"trpc.group/trpc-go/trpc-rouge-go/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(root *rootFlags) *cobra.Command {
	var addr string
	var origins []string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve ROUGE scoring over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			var opts []server.Option
			if len(origins) > 0 {
				opts = append(opts, server.WithAllowedOrigins(origins...))
			}
			s, err := server.New(cfg, opts...)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, &http.Server{
				Addr:              addr,
				Handler:           s.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringSliceVar(&origins, "cors-origins", nil, "Allowed CORS origins, all when empty")
	return cmd
}

// serve runs srv until ctx is done and then shuts it down.
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		log.Infof("rouge server listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Infof("rouge server stopped")
	return nil
}
