package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/stemsi/asistnet-backend/internal/config"
	"github.com/stemsi/asistnet-backend/internal/logger"
	"github.com/stemsi/asistnet-backend/internal/model"
	"github.com/stemsi/asistnet-backend/internal/repository"
)

type dump struct {
	Seed          uint64                   `json:"seed"`
	Students      []model.Student          `json:"students"`
	Courses       []model.Course           `json:"courses"`
	Attendance    []model.AttendanceRecord `json:"attendance"`
	Notifications []model.Notification     `json:"notifications"`
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	var seed uint64
	flag.Uint64Var(&seed, "seed", cfg.FixtureSeed, "Attendance generator seed (0 = time-based)")
	flag.Parse()

	store, err := repository.NewDataStore(repository.Options{
		Rand: repository.NewSeededRand(seed),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build data store")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump{
		Seed:          seed,
		Students:      store.Students(),
		Courses:       store.Courses(),
		Attendance:    store.Attendance(),
		Notifications: store.Notifications(),
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to write fixtures")
	}
}
