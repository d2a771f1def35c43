package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/stemsi/asistnet-backend/internal/config"
	"github.com/stemsi/asistnet-backend/internal/logger"
	"github.com/stemsi/asistnet-backend/internal/repository"
	"github.com/stemsi/asistnet-backend/internal/service"
	"golang.org/x/term"
)

func main() {
	cfg := config.Load()
	log := logger.Setup("warn", cfg.LogFormat)

	store, err := repository.NewDataStore(repository.Options{
		Rand:       repository.NewSeededRand(cfg.FixtureSeed),
		BcryptCost: cfg.BcryptCost,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build data store")
	}
	queryService := service.NewQueryService(store, nil, log)

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Check AsistNet Login ===")

	fmt.Print("Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)
	if username == "" {
		fmt.Println("Error: username is required")
		os.Exit(2)
	}

	fmt.Print("Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Println("Error reading password")
		os.Exit(2)
	}

	user, err := queryService.Authenticate(context.Background(), username, string(bytePassword))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			fmt.Println("Invalid credentials")
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("Authentication failed")
	}

	fmt.Printf("OK: %s (%s), role %s\n", user.Name, user.Username, user.Role)
}
