package main

import (
	"context"
	"net/http"
	"notebox/notebox/config"
	"notebox/notebox/controllers"
	"notebox/notebox/routes"
	"notebox/notebox/sources/psql"
	"notebox/notebox/sources/psql/dao"
	"notebox/notebox/utils/logging"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logging.InitLogger(cfg.LogDir)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	accountDAO := dao.NewAccountDAO(db.DB)
	userDAO := dao.NewUserDAO(db.DB)
	noteDAO := dao.NewNoteDAO(db.DB)
	accountsCtrl := controllers.NewAccountsController(accountDAO)
	usersCtrl := controllers.NewUsersController(userDAO)
	notesCtrl := controllers.NewNotesController(noteDAO)
	healthCtrl := controllers.NewHealthController(db.DB)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/health", routes.HealthRoutes(healthCtrl))
	r.Mount("/accounts", routes.AccountRoutes(accountsCtrl, usersCtrl))
	r.Mount("/notes", routes.NotesRoutes(notesCtrl))

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
