package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/barbershop-api/internal/config"
	dbpkg "github.com/barberbook/barbershop-api/internal/db"
	"github.com/barberbook/barbershop-api/internal/middleware"
	"github.com/barberbook/barbershop-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
	})

	routes.RegisterRoutes(r, db, cfg)

	if cfg.UsePostgres() {
		log.Printf("Using Postgres engine")
	} else {
		log.Printf("Using embedded SQLite engine at %s", cfg.SQLitePath)
	}

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
