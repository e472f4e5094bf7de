package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"lumea/config"
	"lumea/internal/delivery"
	"lumea/internal/delivery/http"
	"lumea/internal/delivery/http/middleware"
	"lumea/internal/delivery/http/router/handler"
	"lumea/internal/domain/service"
	"lumea/internal/infra/auth"
	logs "lumea/internal/infra/log"
	"lumea/internal/infra/persistence/postgres"
	"lumea/internal/infra/qrcode"
	"lumea/internal/infra/storage"
	"lumea/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewIdentityRepository,
			postgres.NewAddressRepository,
			postgres.NewProviderRepository,
			postgres.NewCollectionRepository,
			postgres.NewEngagementRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
			newImageStorage,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "https://lumea.app/listings")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

type imageStorageParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
}

// newImageStorage opens the blob bucket and closes it on shutdown
func newImageStorage(params imageStorageParams) (service.ImageStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		// In-memory bucket keeps local development working without a real bucket
		cfg = &config.StorageConfig{
			BucketURL:     "mem://",
			PublicBaseURL: "https://lumea.app/media",
		}
	}

	store, cleanup, err := storage.NewBlobStorage(params.Ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open image storage: %w", err)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return cleanup()
		},
	})

	return store, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewRegistrationService,
			impl.NewApprovalService,
			impl.NewListingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewIdentityHandler,
			handler.NewRegistrationHandler,
			handler.NewAdminHandler,
			handler.NewListingHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
