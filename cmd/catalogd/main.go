// cmd/catalogd/main.go
//
// catalogd is the optional server-side catalog mirror: a relational twin of
// the product list served over REST. It is not wired to the cart or order
// engines; the storefront core runs entirely off the local key-value store.
package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/maison-aurelle/aurelle-backend/internal/config"
	"github.com/maison-aurelle/aurelle-backend/internal/database"
	"github.com/maison-aurelle/aurelle-backend/internal/middleware"
	"github.com/maison-aurelle/aurelle-backend/internal/mirror"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close(db)

	if err := mirror.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	mirror.NewHandler(db).Routes(r)

	port := cfg.Server.Port
	log.Printf("Starting catalog mirror on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
