//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"vodovoz/internal/gateway/telegram"
	admin_stats_get "vodovoz/internal/handlers/rest/admin_stats_get"
	booking_post "vodovoz/internal/handlers/rest/booking_post"
	driver_get "vodovoz/internal/handlers/rest/driver_get"
	driver_login_post "vodovoz/internal/handlers/rest/driver_login_post"
	driver_post "vodovoz/internal/handlers/rest/driver_post"
	driver_put "vodovoz/internal/handlers/rest/driver_put"
	driver_stats_get "vodovoz/internal/handlers/rest/driver_stats_get"
	drivers_get "vodovoz/internal/handlers/rest/drivers_get"
	order_get "vodovoz/internal/handlers/rest/order_get"
	order_status_post "vodovoz/internal/handlers/rest/order_status_post"
	orders_get "vodovoz/internal/handlers/rest/orders_get"
	slots_get "vodovoz/internal/handlers/rest/slots_get"
	"vodovoz/internal/handlers/tasks/order_events"
	"vodovoz/internal/handlers/tasks/reminder_check"
	"vodovoz/internal/pkg/clock"
	"vodovoz/internal/pkg/config"
	"vodovoz/internal/pkg/factory/pricing"
	"vodovoz/internal/pkg/kafka"

	driverRepo "vodovoz/internal/repository/driver"
	orderRepo "vodovoz/internal/repository/order"
	"vodovoz/internal/repository/slotcache"
	bookingService "vodovoz/internal/service/booking"
	driverService "vodovoz/internal/service/driver"
	"vodovoz/internal/service/notification"
	orderService "vodovoz/internal/service/order"
	slotsService "vodovoz/internal/service/slots"

	"vodovoz/pkg/background"
	"vodovoz/pkg/logger"
	"vodovoz/pkg/querier"
	"vodovoz/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	tele "gopkg.in/telebot.v3"
)

type (
	SlotGrid []string
)

type Application struct {
	ServiceSlots      ServiceSlots
	ServiceBooking    ServiceBooking
	ServiceOrder      ServiceOrder
	ServiceDriver     ServiceDriver
	BackgroundWorkers *background.Worker
}

type ServiceSlots interface {
	slots_get.Service
}

type ServiceBooking interface {
	booking_post.Service
}

type ServiceOrder interface {
	order_status_post.Service
	orders_get.Service
	order_get.Service
	driver_stats_get.Service
	admin_stats_get.Service
}

type ServiceDriver interface {
	driver_post.Service
	driver_login_post.Service
	driver_get.Service
	drivers_get.Service
	driver_put.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideLocation,
		provideSlotGrid,
		clock.NewSystem,

		provideOrderRepository,
		provideDriverRepository,
		provideSlotCache,
		providePriceFactory,

		provideServiceSlots,
		provideServiceBooking,
		provideServiceOrder,
		provideServiceDriver,

		provideOrderEventsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceSlots), new(*slotsService.Slots)),
		wire.Bind(new(ServiceBooking), new(*bookingService.Booking)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),

		wire.Bind(new(slotsService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(slotsService.Cache), new(*slotcache.Cache)),
		wire.Bind(new(bookingService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(bookingService.PriceFactory), new(*pricing.PriceFactory)),
		wire.Bind(new(bookingService.SlotGrid), new(*slotsService.Slots)),
		wire.Bind(new(bookingService.Cache), new(*slotcache.Cache)),
		wire.Bind(new(bookingService.Clock), new(*clock.System)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.DriverProvider), new(*driverService.Driver)),
		wire.Bind(new(orderService.Cache), new(*slotcache.Cache)),
		wire.Bind(new(orderService.Clock), new(*clock.System)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),

		wire.Bind(new(bookingService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(order_events.Service), new(*orderService.Order)),
		wire.Bind(new(order_events.Publisher), new(*kafka.Producer)),
	)
	return &Application{}, nil
}

type NotificationsWorkerApp struct {
	NotificationService *notification.Notification
	BackgroundWorkers   *background.Worker
}

// InitializeNotificationsWorkerApp для Kafka воркера (cmd/worker-notifications)
func InitializeNotificationsWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	bot *tele.Bot,
	cfg *config.Config,
) (*NotificationsWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideLocation,
		clock.NewSystem,

		provideOrderRepository,
		provideTelegramNotifier,
		notification.New,

		provideReminderCheckTask,
		provideWorkerTaskList,
		provideBackgroundWorkers,

		wire.Bind(new(notification.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(notification.Notifier), new(*telegram.Notifier)),

		wire.Bind(new(reminder_check.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(reminder_check.Notifier), new(*telegram.Notifier)),
		wire.Bind(new(reminder_check.Clock), new(*clock.System)),

		wire.Struct(new(NotificationsWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideLocation(cfg *config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Booking.Timezone)
}

func provideSlotGrid(cfg *config.Config) (SlotGrid, error) {
	grid, err := slotsService.BuildGrid(cfg.Booking.SlotGridStart, cfg.Booking.SlotGridEnd, cfg.Booking.SlotGridStep)
	if err != nil {
		return nil, err
	}

	return SlotGrid(grid), nil
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideSlotCache(client *redis.Client, cfg *config.Config) *slotcache.Cache {
	return slotcache.New(client, cfg.Redis.SlotCacheTTL)
}

func providePriceFactory(cfg *config.Config) *pricing.PriceFactory {
	return pricing.New(pricing.PriceList{
		WaterPerCubicMeter: cfg.Booking.PriceWater,
		SepticFlat:         cfg.Booking.PriceSeptic,
	})
}

func provideServiceSlots(
	repository slotsService.Repository,
	cache slotsService.Cache,
	grid SlotGrid,
) *slotsService.Slots {
	return slotsService.New(repository, cache, []string(grid))
}

func provideServiceBooking(
	repository bookingService.Repository,
	txManager bookingService.TxManager,
	priceFactory bookingService.PriceFactory,
	grid bookingService.SlotGrid,
	cache bookingService.Cache,
	clock bookingService.Clock,
	location *time.Location,
) *bookingService.Booking {
	return bookingService.New(
		repository,
		txManager,
		priceFactory,
		grid,
		cache,
		clock,
		location,
	)
}

func provideServiceOrder(
	repository orderService.Repository,
	drivers orderService.DriverProvider,
	txManager orderService.TxManager,
	cache orderService.Cache,
	clock orderService.Clock,
	location *time.Location,
	cfg *config.Config,
) *orderService.Order {
	return orderService.New(
		repository,
		drivers,
		txManager,
		cache,
		clock,
		location,
		cfg.Booking.CancelWindow,
		cfg.Booking.CommissionRate,
	)
}

func provideServiceDriver(repository driverService.Repository) *driverService.Driver {
	return driverService.New(repository)
}

func provideTelegramNotifier(bot *tele.Bot, cfg *config.Config) *telegram.Notifier {
	return telegram.New(bot, cfg.Telegram.DriversChatID)
}

func provideOrderEventsTask(
	log logger.Logger,
	service order_events.Service,
	publisher order_events.Publisher,
	clk *clock.System,
	cfg *config.Config,
) *order_events.OrderEvents {
	return order_events.NewOrderEvents(
		log,
		service,
		publisher,
		cfg.Kafka.Topic,
		cfg.Tasks.OrderEventsPublishInterval,
		clk.Now(),
	)
}

func provideReminderCheckTask(
	log logger.Logger,
	repository reminder_check.Repository,
	notifier reminder_check.Notifier,
	clk reminder_check.Clock,
	location *time.Location,
	cfg *config.Config,
) *reminder_check.ReminderCheck {
	return reminder_check.NewReminderCheck(
		log,
		repository,
		notifier,
		clk,
		location,
		cfg.Tasks.ReminderCheckInterval,
	)
}

func provideTaskList(
	orderEventsTask *order_events.OrderEvents,
) []background.Task {
	return []background.Task{
		orderEventsTask,
	}
}

func provideWorkerTaskList(
	reminderCheckTask *reminder_check.ReminderCheck,
) []background.Task {
	return []background.Task{
		reminderCheckTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
