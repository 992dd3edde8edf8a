package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"PacsApp/app/api"
	"PacsApp/app/config"
	"PacsApp/app/database"
	"PacsApp/app/printer"
	"PacsApp/app/services"
	"PacsApp/app/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := config.NewLogger(cfg.App.Env)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	defer database.Close(db)

	transport, err := printer.New(cfg.Printer.Mode, cfg.Printer.Device, cfg.Printer.Queue)
	if err != nil {
		log.WithError(err).Fatal("printer transport setup failed")
	}

	loc := cfg.Org.Location()

	hub := websocket.NewHub(log)
	go hub.Run()

	farmers := services.NewFarmerService(db, hub, log)
	orders := services.NewOrderService(db, hub, log, cfg.Org.DailyQuota, loc)
	receipts := services.NewReceiptService(orders, transport, log, cfg.Org.Name, loc)
	reports := services.NewReportService(db, transport, log, cfg.Org.Name, loc)

	server := api.NewServer(farmers, orders, receipts, reports, hub, log, loc)

	httpServer := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      server.Router(cfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("port", cfg.App.Port).Info("server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("graceful shutdown failed")
	}
}
