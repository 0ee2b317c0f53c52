package dashboard

import (
	"github.com/PendemixAI/vax-tracker/internal/geo"
	"github.com/PendemixAI/vax-tracker/internal/middleware"
	"github.com/PendemixAI/vax-tracker/internal/regions"
	"github.com/PendemixAI/vax-tracker/internal/session"
	"go.uber.org/zap"
)

// Deps are the collaborators the dashboard handlers need.
type Deps struct {
	Sessions  *session.Manager
	Regions   *regions.Set
	Locations *geo.Resolver
	Limiter   *middleware.RateLimiter
	Logger    *zap.Logger
}

type Handler struct {
	sessions  *session.Manager
	regions   *regions.Set
	locations *geo.Resolver
	limiter   *middleware.RateLimiter
	log       *zap.Logger
}

func New(d Deps) *Handler {
	h := &Handler{
		sessions:  d.Sessions,
		regions:   d.Regions,
		locations: d.Locations,
		limiter:   d.Limiter,
		log:       d.Logger,
	}
	if h.regions == nil {
		h.regions = regions.Default()
	}
	if h.locations == nil {
		h.locations = geo.DefaultResolver()
	}
	if h.limiter == nil {
		h.limiter = middleware.NewRateLimiter(2, 5)
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	h.log = h.log.Named("dashboard")
	return h
}
