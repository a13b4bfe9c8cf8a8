package routes

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/orderdesk/orderdesk/internal/auth"
	"github.com/orderdesk/orderdesk/internal/config"
	"github.com/orderdesk/orderdesk/internal/design"
	"github.com/orderdesk/orderdesk/internal/identity"
	"github.com/orderdesk/orderdesk/internal/middleware"
	"github.com/orderdesk/orderdesk/internal/party"
	"github.com/orderdesk/orderdesk/internal/transport"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

type handlers struct {
	auth      *auth.Handler
	designs   *design.Handler
	parties   *party.Handler
	transport *transport.Handler
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	if d.DB == nil && !d.Cfg.IsDev() {
		return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.Env)
	}

	codec, err := auth.NewCodec(d.Cfg.JWTSecret, auth.TokenTTL)
	if err != nil {
		return err
	}
	var revocations auth.Revocations = auth.NoRevocations{}
	if d.Cache != nil {
		revocations = auth.NewRedisRevocations(d.Cache)
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  d.Cfg.CORSAllowOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Idempotency-Key, X-Request-ID",
		ExposeHeaders: "X-Request-ID",
	}))
	app.Use(middleware.Deadline(d.Cfg.RequestTimeout))

	h := buildHandlers(d, codec, revocations)

	api := app.Group("/api")
	RegisterHealthRoutes(api, d)

	authn := middleware.Authenticate(codec, revocations)
	idem := middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger)
	limiter := middleware.LoginRateLimit(d.Cache, d.Cfg.LoginRateLimit, d.Logger)

	RegisterAuthRoutes(api, h.auth, authn, limiter)
	RegisterDesignRoutes(api.Group("/designs", authn, idem), h.designs)
	RegisterPartyRoutes(api.Group("/parties", authn, idem), h.parties)
	RegisterTransportRoutes(api.Group("/transport", authn, idem), h.transport)

	return nil
}

func buildHandlers(d Deps, codec *auth.Codec, revocations auth.Revocations) handlers {
	var (
		identityRepo  identity.Repository
		designRepo    design.Repository
		partyRepo     party.Repository
		transportRepo transport.Repository
	)
	if d.DB != nil {
		identityRepo = identity.NewPostgresRepository(d.DB)
		designRepo = design.NewPostgresRepository(d.DB)
		partyRepo = party.NewPostgresRepository(d.DB)
		transportRepo = transport.NewPostgresRepository(d.DB)
	} else {
		d.Logger.Warn("no database configured, using in-memory repositories")
		identityRepo = identity.NewMemoryRepository()
		names := identity.DisplayNames(identityRepo)
		designRepo = design.NewMemoryRepository(nil, nil, names)
		partyRepo = party.NewMemoryRepository(names)
		transportRepo = transport.NewMemoryRepository()
	}

	identitySvc := identity.NewService(identityRepo, identity.NewBcryptHasher(identity.PasswordCost))
	authSvc := auth.NewService(identitySvc, codec, revocations)

	return handlers{
		auth:      auth.NewHandler(authSvc),
		designs:   design.NewHandler(design.NewService(designRepo)),
		parties:   party.NewHandler(party.NewService(partyRepo)),
		transport: transport.NewHandler(transport.NewService(transportRepo)),
	}
}
