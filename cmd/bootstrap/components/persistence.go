package components

import (
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/infra/readstore"
	"volunteer-hub/internal/infra/uow"
	"volunteer-hub/internal/usecase/queries"
	"volunteer-hub/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	fx.Annotate(
		uow.NewPostgresUoW,
		fx.As(new(shared.UnitOfWork)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewShiftReadStore,
			fx.As(new(queries.ShiftViewRepo)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventViewRepo)),
		),
		fx.Annotate(
			readstore.NewMetricsReadStore,
			fx.As(new(queries.MetricsViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserViewRepo)),
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
