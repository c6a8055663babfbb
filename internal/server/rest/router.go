package rest

import (
	"net/http"

	"github.com/dmitrijs2005/userdirectory/internal/logging"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// NewRouter builds the full handler chain: CORS, panic recovery, request
// ids, access logging and the routes.
func NewRouter(svc Directory, log logging.Logger) http.Handler {
	h := NewUserHandler(svc, log)

	r := mux.NewRouter()
	r.Use(RequestID)
	r.Use(Logging(log))
	r.NotFoundHandler = http.HandlerFunc(h.NotFound)

	r.HandleFunc("/", h.Root).Methods(http.MethodGet)
	r.HandleFunc("/users", h.List).Methods(http.MethodGet)
	r.HandleFunc("/users/create", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/users/", h.MissingID).Methods(http.MethodDelete)
	r.HandleFunc("/users/{id}", h.Delete).Methods(http.MethodDelete)

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{log: log}),
		handlers.PrintRecoveryStack(false),
	)
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return cors(recovery(r))
}
