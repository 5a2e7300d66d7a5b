package main

import (
	"log"

	"property-assistant-be/internal/bootstrap"
	"property-assistant-be/internal/config"
	"property-assistant-be/internal/model"
	"property-assistant-be/internal/server"
	"property-assistant-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Migrate Schema
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.RentalSearch{},
		&model.RentalMatch{},
		&model.RepairRequest{},
	); err != nil {
		log.Panicf("Unable to migrate schema: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
