package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"vidtube/internal/common"
	"vidtube/internal/wire"
)

const shutdownTimeout = 30 * time.Second

func main() {
	app, cleanup, err := wire.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()
	logger := app.Logger

	server := &http.Server{
		Addr:           app.Config.Address(),
		Handler:        setupRouter(app),
		ReadTimeout:    time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(app.Config.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var grpcServer *grpc.Server
	if port := app.Config.Server.GRPCPort; port != "" {
		listener, err := net.Listen("tcp", ":"+port)
		if err != nil {
			logger.WithError(err).Fatal("failed to listen for gRPC")
		}
		grpcServer = grpc.NewServer(grpc.UnaryInterceptor(common.UnaryLoggingInterceptor(logger)))
		app.Monitor.Register(grpcServer)
		go app.Monitor.Run(ctx)
		go func() {
			logger.WithField("addr", listener.Addr().String()).Info("gRPC health server listening")
			if err := grpcServer.Serve(listener); err != nil {
				logger.WithError(err).Error("gRPC server stopped")
			}
		}()
	}

	go func() {
		logger.WithField("addr", server.Addr).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("server forced to shutdown")
	}
	logger.Info("server stopped")
}
