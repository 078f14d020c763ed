package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/member-directory/internal/config"
	"github.com/bagdasarian/member-directory/internal/db"
	"github.com/bagdasarian/member-directory/internal/handler"
	"github.com/bagdasarian/member-directory/internal/handler/server"
	"github.com/bagdasarian/member-directory/internal/repository/sqlite"
	"github.com/bagdasarian/member-directory/internal/service"
)

func main() {
	cfg := config.Load()

	database := db.MustLoad(cfg)
	log.Printf("Opened member storage at %s", cfg.Storage.Path)
	defer database.Close()

	memberRepo := sqlite.NewMemberRepository(database)
	statsRepo := sqlite.NewStatsRepository(database)

	memberService := service.NewMemberService(memberRepo)
	statsService := service.NewStatsService(statsRepo)

	h := handler.NewHandler(memberService, statsService)
	srv := server.NewServer(h, cfg.App.Addr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
