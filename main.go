package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"

	internalApp "github.com/raihanetx/submonth-z/internal/app"
	"github.com/raihanetx/submonth-z/pkg/app"

	_ "github.com/raihanetx/submonth-z/migrations"
)

func main() {
	// Optional .env (ADMIN_PASSWORD bootstrap, SESSION_SECRET)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	pb := pocketbase.New()

	// 1. Migrations
	migratecmd.MustRegister(pb, pb.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	// 2. Dependency container
	container, err := internalApp.NewContainer(pb)
	if err != nil {
		log.Fatal("Error initializing container:", err)
	}

	// 3. Routes
	app.RegisterRoutes(pb, container)

	if err := pb.Start(); err != nil {
		log.Fatal(err)
	}
}
