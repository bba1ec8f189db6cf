package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstyle/internal/handlers"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	h := handlers.New()
	api := r.Group("/api")
	{
		api.GET("/qr", h.QRHandler)
	}
	r.GET("/healthz", h.Healthz)

	addr := getAddr()
	log.Printf("qrstyle server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func getAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}
