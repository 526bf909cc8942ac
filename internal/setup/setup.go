package setup

import (
	"fmt"

	"github.com/raddit-dev/raddit/internal/config"
	"github.com/raddit-dev/raddit/internal/handler"
	"github.com/raddit-dev/raddit/internal/identity"
	"github.com/raddit-dev/raddit/internal/kv"
	"github.com/raddit-dev/raddit/internal/middleware"
	"github.com/raddit-dev/raddit/internal/service"
	"github.com/raddit-dev/raddit/internal/storage"
	"github.com/raddit-dev/raddit/internal/textproc"
	"github.com/raddit-dev/raddit/internal/utils"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage        *storage.Store
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	store, err := newBackend(cfg.Public.Storage)
	if err != nil {
		return nil, err
	}
	adapter := storage.New(store)

	identitySvc := identity.New(cfg.JwtKey(), cfg.JwtTTL())
	text := textproc.New(cfg.Public.CensoredWords)

	thread := service.NewThread(adapter, &utils.ThreadValidator{})
	comment := service.NewComment(adapter, thread, &utils.CommentValidator{})

	h := handler.New(thread, comment, text).WithHealth(adapter)

	return &Dependencies{
		Storage:        adapter,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(identitySvc),
	}, nil
}

func newBackend(cfg config.Storage) (kv.Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return kv.NewMemory(), nil
	case "redis":
		return kv.NewRedis(cfg.RedisAddr)
	case "off":
		return kv.Unavailable{}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
