package main

import (
	"context"
	"log"
	"net/http"

	"github.com/jaydhumal23/backend-assignment/internal/config"
	"github.com/jaydhumal23/backend-assignment/internal/handlers"
	"github.com/jaydhumal23/backend-assignment/internal/repository"
	"github.com/jaydhumal23/backend-assignment/internal/service/auth"
	"github.com/jaydhumal23/backend-assignment/internal/service/tasks"
	"github.com/jaydhumal23/backend-assignment/internal/utils"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.MustLoad()

	conn, err := repository.NewConnection(ctx, cfg.PostgresConfig)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	if err := repository.Migrate(ctx, conn); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	userRepo := repository.NewUserRepository(conn)
	taskRepo := repository.NewTaskRepository(conn)
	authManager := utils.NewAuthManager(cfg.AuthConfig.JWTSecret, cfg.AuthConfig.TokenTTL)

	authService := auth.NewService(userRepo, authManager)
	taskService := tasks.NewService(taskRepo, userRepo)

	h := handlers.NewHandler(authService, taskService)

	log.Print("start listening on port " + cfg.ServerConfig.Port)
	log.Fatal(http.ListenAndServe("[::]:"+cfg.ServerConfig.Port, h.Routes()))
}
