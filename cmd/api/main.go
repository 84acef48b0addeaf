package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"agency-cms/internal/config"
	"agency-cms/internal/db"
	"agency-cms/internal/httpserver"
	categoryrepo "agency-cms/internal/repository/category"
	postrepo "agency-cms/internal/repository/post"
	userrepo "agency-cms/internal/repository/user"
	categorysvc "agency-cms/internal/service/category"
	postsvc "agency-cms/internal/service/post"
	usersvc "agency-cms/internal/service/user"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	categoryService := categorysvc.New(categoryrepo.NewPostgres(dbpool))
	postService := postsvc.New(postrepo.NewPostgres(dbpool, logger))
	userService := usersvc.New(userrepo.NewPostgres(dbpool))

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CategorySvc: categoryService,
		PostSvc:     postService,
		UserSvc:     userService,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
