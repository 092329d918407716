package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	_ "time/tzdata"

	"github.com/HIMK322/TENET/internal/app"
	"github.com/HIMK322/TENET/internal/config"
	"github.com/HIMK322/TENET/internal/controllers"
	"github.com/HIMK322/TENET/internal/middleware"
	"github.com/HIMK322/TENET/internal/repositories"
	"github.com/HIMK322/TENET/internal/routes"
	"github.com/HIMK322/TENET/internal/services"
	"github.com/HIMK322/TENET/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize property-service:", err)
	}
	defer application.Close()

	// Repositories
	store := repositories.NewStore(application.DB)

	if cfg.SeedDemoData {
		if err := app.SeedDemoData(context.Background(), store); err != nil {
			utils.Logger.Fatal("Failed to seed demo data:", err)
		}
	}

	// Services
	buildingService := services.NewBuildingService(store)
	unitService := services.NewUnitService(store)
	tenantService := services.NewTenantService(store)
	receiptService := services.NewRentReceiptService(store)
	tenancyService := services.NewTenancyService(store)

	// Controllers
	healthController := controllers.NewHealthController(application)
	buildingController := controllers.NewBuildingController(buildingService)
	unitController := controllers.NewUnitController(unitService, tenancyService)
	tenantController := controllers.NewTenantController(tenantService, tenancyService)
	receiptController := controllers.NewRentReceiptController(receiptService, tenancyService)

	// Router setup
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)

	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)

	// Buildings
	router.HandleFunc(routes.Buildings, buildingController.ListBuildingsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Buildings, buildingController.CreateBuildingHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.BuildingByID, buildingController.GetBuildingHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.BuildingByID, buildingController.UpdateBuildingHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.BuildingByID, buildingController.DeleteBuildingHandler).Methods(http.MethodDelete)
	router.HandleFunc(routes.BuildingUnits, buildingController.ListBuildingUnitsHandler).Methods(http.MethodGet)

	// Units
	router.HandleFunc(routes.Units, unitController.ListUnitsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Units, unitController.CreateUnitHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.UnitsVacant, unitController.ListVacantUnitsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.UnitByID, unitController.GetUnitHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.UnitByID, unitController.UpdateUnitHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.UnitByID, unitController.DeleteUnitHandler).Methods(http.MethodDelete)
	router.HandleFunc(routes.UnitOccupancyHistory, unitController.GetUnitOccupancyHistoryHandler).Methods(http.MethodGet)

	// Tenants and tenancy workflow
	router.HandleFunc(routes.Tenants, tenantController.ListTenantsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Tenants, tenantController.CreateTenantHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.TenantsCurrent, tenantController.ListCurrentTenantsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.TenantsMoveIn, tenantController.MoveInHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.TenantsMoveOut, tenantController.MoveOutHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.TenantByID, tenantController.GetTenantHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.TenantByID, tenantController.UpdateTenantHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.TenantByID, tenantController.DeleteTenantHandler).Methods(http.MethodDelete)
	router.HandleFunc(routes.TenantRentHistory, tenantController.GetTenantRentHistoryHandler).Methods(http.MethodGet)

	// Rent receipts
	router.HandleFunc(routes.RentReceipts, receiptController.ListRentReceiptsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.RentReceipts, receiptController.CreateRentReceiptHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.RentReceiptsRecord, receiptController.RecordPaymentHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.RentReceiptByID, receiptController.GetRentReceiptHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.RentReceiptByID, receiptController.UpdateRentReceiptHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.RentReceiptByID, receiptController.DeleteRentReceiptHandler).Methods(http.MethodDelete)
	router.HandleFunc(routes.RentReceiptsByUnit, receiptController.ListRentReceiptsByUnitHandler).Methods(http.MethodGet)

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl, utils.CORSAllowedOriginLocalhost},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("property-service failed to start:", err)
	}
}
