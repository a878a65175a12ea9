// Package app wires configuration, storage, collaborators, use cases and
// the HTTP router into a runnable service.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aseguraopen/internal/adapter/http/handlers"
	"aseguraopen/internal/adapter/http/routes"
	"aseguraopen/internal/adapter/persistence/memory"
	"aseguraopen/internal/adapter/persistence/repository"
	"aseguraopen/internal/infrastructure/config"
	"aseguraopen/internal/infrastructure/database"
	"aseguraopen/internal/infrastructure/issuance"
	"aseguraopen/internal/infrastructure/locking"
	"aseguraopen/internal/infrastructure/metrics"
	"aseguraopen/internal/infrastructure/payments"
	"aseguraopen/internal/usecase"
	"aseguraopen/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const lockPrefix = "aseguraopen:"

type App struct {
	Router     *gin.Engine
	Registry   *prometheus.Registry
	Quotations usecase.IQuotationUseCase

	log     *zap.Logger
	closers []func() error
}

// New builds the service. The caller owns Close.
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	a := &App{log: log, Registry: prometheus.NewRegistry()}
	a.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(a.Registry)

	repos, err := a.buildRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	locker, err := a.buildLocker(ctx, cfg)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	gateway, err := payments.NewMercadoPagoGateway(payments.Options{
		AccessToken:     cfg.MercadoPagoAccessToken,
		Mock:            cfg.PaymentGatewayMock,
		NotificationURL: cfg.PaymentNotificationURL,
	}, log)
	if err != nil {
		log.Error("[app][bootstrap] mercado pago gateway not configured", zap.Error(err))
		_ = a.Close()
		return nil, err
	}
	issuer := issuance.NewHTTPIssuer(issuance.Options{BaseURL: cfg.IssuerAPIURL, APIKey: cfg.IssuerAPIKey}, log)

	lifecycleUC := usecase.NewLifecycleUseCase(repos, m, log)
	policyUC := usecase.NewPolicyUseCase(repos, log)
	quotationUC := usecase.NewQuotationUseCase(repos, lifecycleUC, locker, nil, m, log)
	paymentUC := usecase.NewPolicyPaymentUseCase(repos, lifecycleUC, gateway, cfg.CollaboratorTimeout, m, log)
	issuanceUC := usecase.NewIssuanceUseCase(repos, lifecycleUC, issuer, locker, cfg.CollaboratorTimeout, m, log)
	a.Quotations = quotationUC

	a.Router = routes.NewRouter(routes.Handlers{
		Policies:   handlers.NewPolicyHandler(policyUC),
		Quotations: handlers.NewQuotationHandler(quotationUC),
		Lifecycle:  handlers.NewLifecycleHandler(lifecycleUC),
		Payments:   handlers.NewPaymentHandler(paymentUC, log),
		Issuance:   handlers.NewIssuanceHandler(issuanceUC),
		Admin:      handlers.NewAdminHandler(policyUC, quotationUC, lifecycleUC),
	}, a.Registry, log)

	log.Info("[app][bootstrap] service ready",
		zap.String("store", cfg.StoreDriver),
		zap.Bool("redis_lock", cfg.RedisAddr != ""),
		zap.Bool("payment_mock", cfg.PaymentGatewayMock),
		zap.Bool("issuer_mock", cfg.IssuerAPIURL == ""),
	)
	return a, nil
}

func (a *App) buildRepositories(ctx context.Context, cfg config.Config) (usecase.Repositories, error) {
	if cfg.StoreDriver == config.StoreMemory {
		s := memory.NewStore()
		return usecase.Repositories{
			Policies:    s.Policies(),
			Clients:     s.Clients(),
			Vehicles:    s.Vehicles(),
			Quotations:  s.Quotations(),
			Templates:   s.Templates(),
			Transitions: s.Transitions(),
			Payments:    s.Payments(),
			Issuances:   s.Issuances(),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return usecase.Repositories{}, err
	}
	if cfg.DynamoDB.CreateTables {
		if err := database.EnsureTables(ctx, ddb, cfg.Tables, a.log); err != nil {
			return usecase.Repositories{}, err
		}
	}
	r := repository.NewRepositories(ddb, cfg.Tables)
	return usecase.Repositories{
		Policies:    r.Policies,
		Clients:     r.Clients,
		Vehicles:    r.Vehicles,
		Quotations:  r.Quotations,
		Templates:   r.Templates,
		Transitions: r.Transitions,
		Payments:    r.Payments,
		Issuances:   r.Issuances,
	}, nil
}

// buildLocker uses Redis when REDIS_ADDR is set, so generation stays
// exclusive across replicas. A single instance gets by with the local one.
func (a *App) buildLocker(ctx context.Context, cfg config.Config) (interfaces.ILocker, error) {
	if cfg.RedisAddr == "" {
		return locking.NewLocalLocker(), nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
	}
	a.closers = append(a.closers, client.Close)
	return locking.NewRedisLocker(client, lockPrefix), nil
}

// Seed stores the quotation template catalog.
func (a *App) Seed(ctx context.Context) error {
	_, err := a.Quotations.SeedTemplates(ctx)
	return err
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
