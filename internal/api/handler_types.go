package api

import (
	"time"

	"github.com/solenne/rebloom/internal/services"
	"go.uber.org/zap"
)

type Handler struct {
	service      *services.RecoveryService
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	log          *zap.Logger
	pinLimiter   *attemptLimiter
}

const (
	sessionCookieName = "rebloom_session"
	sessionTokenTTL   = 7 * 24 * time.Hour

	pinAttemptLimit  = 5
	pinAttemptWindow = 15 * time.Minute
)

func NewHandler(service *services.RecoveryService, secretKey string, location *time.Location, cookieSecure bool, log *zap.Logger) *Handler {
	if location == nil {
		location = time.Local
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		service:      service,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
		log:          log,
		pinLimiter:   newAttemptLimiter(),
	}
}
