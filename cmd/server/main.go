// @title           Gielda Aut API
// @version         1.0
// @host            localhost
// @schemes         http https
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"gielda-aut/internal/api"
	"gielda-aut/internal/config"
	"gielda-aut/internal/database"
	"gielda-aut/internal/storage"
	"gielda-aut/internal/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	_ "gielda-aut/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Nie można wczytać konfiguracji: %v", err)
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.DB.URL))
	if err != nil {
		log.Fatalf("Nie można połączyć się z bazą danych: %v", err)
	}
	defer client.Disconnect(context.Background())

	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		log.Fatalf("Nie można pingować bazy danych: %v", err)
	}
	log.Println("Pomyślnie połączono z MongoDB")

	imageStorage, err := storage.NewCloudinaryStorage(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
	)
	if err != nil {
		log.Fatalf("Nie można zainicjować klienta Cloudinary: %v", err)
	}

	wsHub := websocket.NewHub()
	go wsHub.Run()

	store := database.NewStore(client, cfg.DB.Name, wsHub)
	if err := store.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Nie można założyć indeksów: %v", err)
	}

	server := api.NewServer(cfg, store, imageStorage, wsHub)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(api.MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("https://localhost/swagger/doc.json"),
	))

	r.Get("/ws", server.ServeWsHandler)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Giełda aut działa! Dokumentacja dostępna pod /swagger/index.html"))
	})

	r.Get("/health", server.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users/register", server.RegisterHandler)
		r.Post("/users/login", server.LoginHandler)
		r.Get("/cars", server.ListCarsHandler)
		r.Get("/cars/{carId}", server.GetCarHandler)

		r.Group(func(r chi.Router) {
			r.Use(server.AuthMiddleware)
			r.Get("/users/me", server.GetCurrentUserHandler)
			r.Post("/cars", server.CreateCarHandler)
			r.Put("/cars/{carId}", server.UpdateCarHandler)
			r.Delete("/cars/{carId}", server.DeleteCarHandler)
			r.Post("/cars/{carId}/favorite", server.AddFavoriteHandler)
			r.Delete("/cars/{carId}/favorite", server.RemoveFavoriteHandler)
			r.Get("/favorites", server.ListFavoritesHandler)
			r.Get("/events", server.GetEventsHandler)
		})
	})

	log.Println("Uruchamianie serwera na porcie :8080")
	if err := http.ListenAndServe(":8080", r); err != nil {
		log.Fatalf("Nie można uruchomić serwera: %v", err)
	}
}
