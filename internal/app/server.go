package app

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"mindhaven/internal/handler"
)

type Server struct {
	router *mux.Router
}

func NewServer(userHandler *handler.UserHandler, roomHandler *handler.RoomHandler, wellnessHandler *handler.WellnessHandler) *Server {
	router := mux.NewRouter()
	router.Use(handler.Logging)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/ping", handler.Ping).Methods("GET", "OPTIONS")
	userHandler.RegisterRoutes(api)
	roomHandler.RegisterRoutes(api)
	wellnessHandler.RegisterRoutes(api)

	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return &Server{router: router}
}

func (s *Server) Run(port string) {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "Bearer", "X-Requested-With"}),
	)

	srv := &http.Server{
		Handler:      cors(s.router),
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(srv.ListenAndServe())
}
