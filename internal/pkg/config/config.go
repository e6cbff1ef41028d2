package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		OrderEventsPublishInterval time.Duration
		ReminderCheckInterval      time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Addr         string
		SlotCacheTTL time.Duration
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Telegram struct {
		BotToken      string
		DriversChatID int64
	}

	// Booking держит доменные параметры, которые в исходной системе были
	// литералами: сетку слотов, тарифы, комиссию и окно отмены.
	Booking struct {
		Timezone       string
		SlotGridStart  string
		SlotGridEnd    string
		SlotGridStep   time.Duration
		CancelWindow   time.Duration
		CommissionRate float64
		PriceWater     int64
		PriceSeptic    int64
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Redis    Redis
		Kafka    Kafka
		Telegram Telegram
		Booking  Booking
	}
)

// Доменные значения по умолчанию, совпадающие с продакшеном в Мирном.
const (
	defaultTimezone       = "Asia/Yakutsk"
	defaultSlotGridStart  = "08:00"
	defaultSlotGridEnd    = "20:00"
	defaultSlotGridStep   = 30 * time.Minute
	defaultCancelWindow   = 3 * time.Hour
	defaultCommissionRate = 0.10
	defaultPriceWater     = 1300
	defaultPriceSeptic    = 4000
	defaultSlotCacheTTL   = time.Minute
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	eventsInterval, err := osGetEnvDuration("BACKGROUND_ORDER_EVENTS_PUBLISH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reminderInterval, err := osGetEnvDuration("BACKGROUND_REMINDER_CHECK_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	slotCacheTTL, err := osGetEnvDurationDefault("REDIS_SLOT_CACHE_TTL", defaultSlotCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	driversChatID, err := osGetInt64("TELEGRAM_DRIVERS_CHAT_ID")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	slotGridStep, err := osGetEnvDurationDefault("BOOKING_SLOT_GRID_STEP", defaultSlotGridStep)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cancelWindow, err := osGetEnvDurationDefault("BOOKING_CANCEL_WINDOW", defaultCancelWindow)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	commissionRate, err := osGetFloatDefault("BOOKING_COMMISSION_RATE", defaultCommissionRate)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	priceWater, err := osGetInt64Default("BOOKING_PRICE_WATER", defaultPriceWater)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	priceSeptic, err := osGetInt64Default("BOOKING_PRICE_SEPTIC", defaultPriceSeptic)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			OrderEventsPublishInterval: eventsInterval,
			ReminderCheckInterval:      reminderInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Redis: Redis{
			Addr:         os.Getenv("REDIS_ADDR"),
			SlotCacheTTL: slotCacheTTL,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
		Telegram: Telegram{
			BotToken:      os.Getenv("TELEGRAM_BOT_TOKEN"),
			DriversChatID: driversChatID,
		},
		Booking: Booking{
			Timezone:       osGetDefault("BOOKING_TIMEZONE", defaultTimezone),
			SlotGridStart:  osGetDefault("BOOKING_SLOT_GRID_START", defaultSlotGridStart),
			SlotGridEnd:    osGetDefault("BOOKING_SLOT_GRID_END", defaultSlotGridEnd),
			SlotGridStep:   slotGridStep,
			CancelWindow:   cancelWindow,
			CommissionRate: commissionRate,
			PriceWater:     priceWater,
			PriceSeptic:    priceSeptic,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.Tasks.OrderEventsPublishInterval == time.Duration(0) {
		return errors.New("BACKGROUND_ORDER_EVENTS_PUBLISH_INTERVAL is required")
	}
	if cfg.Tasks.ReminderCheckInterval == time.Duration(0) {
		return errors.New("BACKGROUND_REMINDER_CHECK_INTERVAL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	if cfg.Booking.CommissionRate <= 0 || cfg.Booking.CommissionRate >= 1 {
		return errors.New("BOOKING_COMMISSION_RATE must be within (0, 1)")
	}
	if cfg.Booking.SlotGridStep <= 0 {
		return errors.New("BOOKING_SLOT_GRID_STEP must be positive")
	}

	return nil
}

func osGetDefault(s, fallback string) string {
	val := os.Getenv(s)
	if val == "" {
		return fallback
	}
	return val
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetInt64(s string) (int64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetInt64Default(s string, fallback int64) (int64, error) {
	val, err := osGetInt64(s)
	if err != nil {
		return 0, err
	}
	if val == 0 {
		return fallback, nil
	}
	return val, nil
}

func osGetFloatDefault(s string, fallback float64) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return fallback, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDurationDefault(s string, fallback time.Duration) (time.Duration, error) {
	val, err := osGetEnvDuration(s)
	if err != nil {
		return 0, err
	}
	if val == 0 {
		return fallback, nil
	}
	return val, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
