package bootstrap

import (
	"context"

	"volunteer-hub/internal/infra/mailer"
	"volunteer-hub/internal/pkg/clock"
	"volunteer-hub/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewSender,
		NewDispatcher,
	),
	fx.Invoke(StartDispatcher),
)

func NewSender(cfg config.Config) mailer.Sender {
	if cfg.Mailer.Endpoint == "" {
		return mailer.NopSender{}
	}
	return mailer.NewHTTPSender(cfg.Mailer)
}

func NewDispatcher(pool *pgxpool.Pool, sender mailer.Sender, clk clock.Clock, cfg config.Config) *mailer.Dispatcher {
	return mailer.NewDispatcher(pool, sender, clk, cfg.Dispatcher)
}

func StartDispatcher(lc fx.Lifecycle, d *mailer.Dispatcher) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go d.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
