package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/walletdesk/internal/activewallet"
	"github.com/gabapcia/walletdesk/internal/config"
	"github.com/gabapcia/walletdesk/internal/handlers/bridge"
	"github.com/gabapcia/walletdesk/internal/handlers/cli"
	"github.com/gabapcia/walletdesk/internal/infra/storage/redis"
	"github.com/gabapcia/walletdesk/internal/infra/walletbackend"
	"github.com/gabapcia/walletdesk/internal/navigation"
	"github.com/gabapcia/walletdesk/internal/pkg/logger"
	"github.com/gabapcia/walletdesk/internal/pkg/telemetry"
	"github.com/gabapcia/walletdesk/internal/pkg/transport/jsonrpc"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The logger bridge needs the telemetry LoggerProvider, so telemetry goes first.
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return err
		}
		defer shutdown(context.Background())
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer logger.Sync()

	conn := jsonrpc.NewClient(cfg.Backend.Endpoint,
		jsonrpc.WithTimeout(cfg.Backend.Timeout),
		jsonrpc.WithRetryMax(cfg.Backend.RetryMax),
		jsonrpc.WithRetryWaitMin(cfg.Backend.RetryWaitMin),
		jsonrpc.WithRetryWaitMax(cfg.Backend.RetryWaitMax),
	)

	var routeStorage navigation.RouteStorage
	if cfg.Redis.UseRedis() {
		redisClient, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		defer redisClient.Close()

		routeStorage = redisClient
	}

	nav := navigation.New(routeStorage,
		navigation.WithWaitAttempts(cfg.Navigation.WaitAttempts),
		navigation.WithWaitDelay(cfg.Navigation.WaitDelay),
	)

	session := activewallet.New(walletbackend.NewClient(conn),
		activewallet.WithInitialSearchLimit(cfg.Session.InitialSearchLimit),
		activewallet.WithNavigator(nav),
		activewallet.WithStateListener(func(ctx context.Context, state activewallet.State) {
			logger.Debug(ctx, "session state changed",
				"selected_address", state.SelectedAddress,
				"is_loading", state.IsLoading,
				"is_loading_transactions", state.IsLoadingTransactions,
				"total_available_transactions", state.TotalAvailableTransactions,
			)
		}),
	)

	server := bridge.New(cfg.Bridge.Addr, session, nav, bridge.WithAllowedOrigins(cfg.Bridge.AllowedOrigins))

	return cli.Run(ctx, session, nav, server)
}
