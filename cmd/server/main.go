package main

import (
	"log"
	"net/http"
	"os"

	webAdapter "freshtrade/internal/adapters/web"
	"freshtrade/internal/core"
	"freshtrade/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "freshtrade.db"
	}
	store, err := db.Open(path)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer store.Close()

	if err := db.Init(store); err != nil {
		log.Fatalf("schema: %v", err)
	}

	svc := webAdapter.Services{
		Masters:        core.NewMasterService(store),
		SalesOrders:    core.NewSalesOrderService(store),
		PurchaseOrders: core.NewPurchaseOrderService(store),
		Logistics:      core.NewLogisticsService(store),
		Purchases:      core.NewPurchaseService(store),
		Stock:          core.NewStockService(store),
		Sales:          core.NewSalesService(store),
		Rejections:     core.NewRejectionService(store),
		Payments:       core.NewPaymentService(store),
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
