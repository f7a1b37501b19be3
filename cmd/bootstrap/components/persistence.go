package components

import (
	"courtbook/internal/infra/cache"
	"courtbook/internal/infra/db"
	"courtbook/internal/infra/readstore"
	"courtbook/internal/infra/uow"
	"courtbook/internal/pkg/config"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Court
		fx.Annotate(
			readstore.NewCourtReadStore,
			fx.As(new(queries.CourtViewRepo)),
		),
		// Slot, wrapped with the Redis cache. The cached store doubles as the
		// invalidator used by the write side.
		fx.Annotate(
			NewCachedSlotStore,
			fx.As(new(queries.SlotViewRepo)),
			fx.As(new(commands.SlotCacheInvalidator)),
		),
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserViewRepo)),
			fx.As(new(commands.CredentialsReader)),
		),
		// Wallet
		fx.Annotate(
			readstore.NewWalletReadStore,
			fx.As(new(queries.WalletViewRepo)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCachedSlotStore(pool *pgxpool.Pool, rdb *redis.Client, cfg config.Config) *cache.CachedSlotReadStore {
	inner := readstore.NewSlotReadStore(pool)
	return cache.NewCachedSlotReadStore(inner, rdb, cfg.Redis.SlotTTL)
}
