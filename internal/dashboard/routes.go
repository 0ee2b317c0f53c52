package dashboard

import (
	"net/http"

	"github.com/PendemixAI/vax-tracker/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.SessionMiddleware(h.sessions, h.log))

	r.Get("/", h.DashboardHandler)
	r.Get("/countries", h.CountriesHandler)
	r.Get("/countries/{country}", h.CountryHandler)
	r.Get("/regions", h.RegionsHandler)
	r.Get("/charts/{kind}.{format}", h.ChartHandler)
	r.Get("/map", h.MapHandler)

	r.Group(func(r chi.Router) {
		r.Use(h.limiter.Middleware)
		r.Get("/download", h.DownloadHandler)
	})

	return r
}
