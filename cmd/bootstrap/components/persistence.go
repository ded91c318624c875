package components

import (
	"context"
	"log/slog"

	"parkme/internal/infra/memstore"
	"parkme/internal/infra/readstore"
	sqlc "parkme/internal/infra/sqlc/generated"
	"parkme/internal/infra/uow"
	"parkme/internal/pkg/config"
	"parkme/internal/pkg/errs"
	"parkme/internal/pkg/lock"
	"parkme/internal/usecase/queries"
	"parkme/internal/usecase/shared"

	"go.uber.org/fx"
)

const (
	storeDriverPostgres = "postgres"
	storeDriverMemory   = "memory"
	lockDriverLocal     = "local"
	lockDriverRedis     = "redis"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
)

type Persistence struct {
	fx.Out

	UoW          shared.UnitOfWork
	Bookings     queries.BookingReadStore
	Pricing      queries.PricingReadStore
	Availability queries.AvailabilityReadStore
}

// NewPersistence builds the write and read sides for the configured store.
// Postgres serializes spots with row locks; the memory store uses the
// configured Locker.
func NewPersistence(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Persistence, error) {
	switch cfg.Store.Driver {
	case storeDriverPostgres, "":
		return newPostgresPersistence(lc, cfg)
	case storeDriverMemory:
		return newMemoryPersistence(lc, cfg, logger)
	default:
		return Persistence{}, errs.Newf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
}

func newPostgresPersistence(lc fx.Lifecycle, cfg config.Config) (Persistence, error) {
	pool, err := OpenDB(context.Background(), lc, cfg.DB)
	if err != nil {
		return Persistence{}, err
	}
	q := sqlc.New()

	return Persistence{
		UoW:          uow.NewPostgresUoW(pool, q, cfg.Lock.WaitTimeout),
		Bookings:     readstore.NewBookingReadStore(q, pool),
		Pricing:      readstore.NewPricingReadStore(q, pool),
		Availability: readstore.NewSpotReadStore(q, pool),
	}, nil
}

func newMemoryPersistence(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Persistence, error) {
	locker, err := newLocker(lc, cfg, logger)
	if err != nil {
		return Persistence{}, err
	}

	store := memstore.New(locker)
	if cfg.Store.SeedFile != "" {
		if err := store.LoadFile(cfg.Store.SeedFile); err != nil {
			return Persistence{}, err
		}
		logger.Info("memory store seeded", "file", cfg.Store.SeedFile)
	}

	return Persistence{
		UoW:          store,
		Bookings:     store,
		Pricing:      store.CommandReads(),
		Availability: store,
	}, nil
}

func newLocker(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (lock.Locker, error) {
	opts := lock.Options{
		WaitTimeout:   cfg.Lock.WaitTimeout,
		LeaseTTL:      cfg.Lock.LeaseTTL,
		RetryInterval: cfg.Lock.RetryInterval,
		KeyPrefix:     cfg.Lock.KeyPrefix,
	}

	switch cfg.Lock.Driver {
	case lockDriverLocal, "":
		return lock.NewKeyedMutex(opts), nil
	case lockDriverRedis:
		client := OpenRedis(lc, cfg.Redis)
		return lock.NewRedisLocker(client, opts, lock.WithLogger(logger)), nil
	default:
		return nil, errs.Newf("unknown LOCK_DRIVER %q", cfg.Lock.Driver)
	}
}
