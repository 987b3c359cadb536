package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/configs"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/middlewares"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/repository"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/routes"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedDefaults(); err != nil {
		log.Fatalf("seed defaults failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// Realtime hub, bootstrapped with the persisted slot rows
	hub := ws.NewTableHub()
	if rows, err := repository.NewTableRepository(db).All(); err == nil {
		hub.Bootstrap(rows)
	} else {
		log.Printf("bootstrap tables failed: %v", err)
	}
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve uploaded product images
	r.Static("/uploads", "./uploads")

	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
