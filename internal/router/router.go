package router

import (
	"net/http"

	_ "vetsoft/docs"
	mem "vetsoft/internal/adapters/storage/memory"
	pg "vetsoft/internal/adapters/storage/postgres"
	"vetsoft/internal/domain/clients"
	"vetsoft/internal/domain/medicines"
	"vetsoft/internal/domain/pets"
	"vetsoft/internal/domain/products"
	"vetsoft/internal/domain/providers"
	"vetsoft/internal/domain/vets"
	"vetsoft/internal/middleware"
	"vetsoft/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sqlx.DB

	// Opcional: nil descarta los logs.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		clientRepo   clients.Repository
		vetRepo      vets.Repository
		petRepo      pets.Repository
		medicineRepo medicines.Repository
		productRepo  products.Repository
		providerRepo providers.Repository
	)

	if db := opts.DB; db != nil {
		clientRepo = pg.NewClientsRepo(db)
		vetRepo = pg.NewVetsRepo(db)
		petRepo = pg.NewPetsRepo(db)
		medicineRepo = pg.NewMedicinesRepo(db)
		productRepo = pg.NewProductsRepo(db)
		providerRepo = pg.NewProvidersRepo(db)
		log.Info("storage: postgres", nil)
	} else {
		clientRepo = mem.NewClientRepo()
		vetRepo = mem.NewVetRepo()
		petRepo = mem.NewPetRepo()
		medicineRepo = mem.NewMedicineRepo()
		productRepo = mem.NewProductRepo()
		providerRepo = mem.NewProviderRepo()
		log.Info("storage: in-memory", nil)
	}

	// Rutas por módulo
	clients.RegisterRoutes(r, clients.NewService(clientRepo, log))
	vets.RegisterRoutes(r, vets.NewService(vetRepo, log))
	pets.RegisterRoutes(r, pets.NewService(petRepo, log))
	medicines.RegisterRoutes(r, medicines.NewService(medicineRepo, log))
	products.RegisterRoutes(r, products.NewService(productRepo, log))
	providers.RegisterRoutes(r, providers.NewService(providerRepo, log))

	return r
}
