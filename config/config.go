package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Settlement SettlementConfig
	Webhook    WebhookConfig
	Notify     NotifyConfig
	Fees       FeeDefaults
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// SettlementConfig 結算流程設定
type SettlementConfig struct {
	// TreasuryUserID 平台收益入帳帳戶；0 表示退回使用 id 最小的 ADMIN
	TreasuryUserID   int
	SuccessStatus    string
	DefaultHolderAge int
	LockTTL          time.Duration
	FeeCacheTTL      time.Duration
	AsyncWebhook     bool
	Migrate          bool
}

type WebhookConfig struct {
	Secret  string
	MaxSkew time.Duration
}

type NotifyConfig struct {
	PubNubPublishKey   string
	PubNubSubscribeKey string
	PubNubUserID       string
}

// FeeDefaults platform_settings 缺少對應 key 時使用的預設百分比
type FeeDefaults struct {
	UserFee     string
	HostFee     string
	PlatformFee string
	CGST        string
	SGST        string
	Referral    string
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		Server:     GetServerConfig(),
		Database:   GetDatabaseConfig(),
		Redis:      GetRedisConfig(),
		Settlement: GetSettlementConfig(),
		Webhook:    GetWebhookConfig(),
		Notify:     GetNotifyConfig(),
		Fees:       GetFeeDefaults(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Server:   ServerConfig{Port: "8081", GinMode: "test"},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Settlement: SettlementConfig{
			TreasuryUserID:   1,
			SuccessStatus:    "SUCCESS",
			DefaultHolderAge: 18,
			LockTTL:          30 * time.Second,
			FeeCacheTTL:      time.Minute,
		},
		Webhook: WebhookConfig{
			Secret:  "test-secret",
			MaxSkew: 5 * time.Minute,
		},
		Fees: defaultFees(),
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func GetSettlementConfig() SettlementConfig {
	return SettlementConfig{
		TreasuryUserID:   getEnvAsInt("TREASURY_USER_ID", 0),
		SuccessStatus:    getEnv("PAYMENT_SUCCESS_STATUS", "SUCCESS"),
		DefaultHolderAge: getEnvAsInt("DEFAULT_HOLDER_AGE", 18),
		LockTTL:          getEnvAsDuration("SETTLEMENT_LOCK_TTL", "30s"),
		FeeCacheTTL:      getEnvAsDuration("FEE_CACHE_TTL", "5m"),
		AsyncWebhook:     getEnvAsBool("SETTLEMENT_ASYNC_WEBHOOK", false),
		Migrate:          getEnvAsBool("DB_MIGRATE", true),
	}
}

func GetWebhookConfig() WebhookConfig {
	return WebhookConfig{
		Secret:  getEnv("WEBHOOK_SECRET", ""),
		MaxSkew: getEnvAsDuration("WEBHOOK_MAX_SKEW", "5m"),
	}
}

func GetNotifyConfig() NotifyConfig {
	return NotifyConfig{
		PubNubPublishKey:   getEnv("PUBNUB_PUBLISH_KEY", ""),
		PubNubSubscribeKey: getEnv("PUBNUB_SUBSCRIBE_KEY", ""),
		PubNubUserID:       getEnv("PUBNUB_USER_ID", "molle-settlement"),
	}
}

func GetFeeDefaults() FeeDefaults {
	d := defaultFees()
	return FeeDefaults{
		UserFee:     getEnv("DEFAULT_USER_FEE_PERCENTAGE", d.UserFee),
		HostFee:     getEnv("DEFAULT_HOST_FEE_PERCENTAGE", d.HostFee),
		PlatformFee: getEnv("DEFAULT_PLATFORM_FEE_PERCENTAGE", d.PlatformFee),
		CGST:        getEnv("DEFAULT_CGST_PERCENTAGE", d.CGST),
		SGST:        getEnv("DEFAULT_SGST_PERCENTAGE", d.SGST),
		Referral:    getEnv("DEFAULT_REFERRAL_PERCENTAGE", d.Referral),
	}
}

func defaultFees() FeeDefaults {
	return FeeDefaults{
		UserFee:     "5",
		HostFee:     "6",
		PlatformFee: "0",
		CGST:        "9",
		SGST:        "9",
		Referral:    "0",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback string) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, fallback)); err == nil {
		return d
	}
	d, _ := time.ParseDuration(fallback)
	return d
}
