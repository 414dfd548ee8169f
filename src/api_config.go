package main

import (
	"time"

	"sos-api/pkg/logger"
	"sos-api/pkg/rabbitmq"
	"sos-api/pkg/utilities"
	builderextensions "sos-api/src/builder_extensions"
	"sos-api/src/outbox"
)

type ApiConfigJson struct {
	LoggerConf   logger.LoggerConfigJson    `json:"logger"`
	RabbitmqConf rabbitmq.RabbimqConfigJson `json:"rabbitmq"`
	RestConf     ApiRestConfigJson          `json:"rest"`
	DatabaseConf ApiDatabaseConfigJson      `json:"database"`
	AuthConf     ApiAuthConfigJson          `json:"auth"`
	RedisConf    ApiRedisConfigJson         `json:"redis"`
	OutboxConf   ApiOutboxConfigJson        `json:"outbox"`
}

func (acj ApiConfigJson) MapToDomain() ApiConfig {
	return ApiConfig{
		LoggerConf:   acj.LoggerConf.MapToDomain(),
		RabbitmqConf: acj.RabbitmqConf.MapToDomain(),
		RestConf:     acj.RestConf.MapToDomain(),
		DatabaseConf: acj.DatabaseConf.MapToDomain(),
		AuthConf:     acj.AuthConf.MapToDomain(),
		RedisConf:    acj.RedisConf.MapToDomain(),
		OutboxConf:   acj.OutboxConf.MapToDomain(),
	}
}

type ApiConfig struct {
	LoggerConf   logger.LoggerConfig
	RabbitmqConf rabbitmq.RabbitmqConfig
	RestConf     ApiRestConfig
	DatabaseConf ApiDatabaseConfig
	AuthConf     ApiAuthConfig
	RedisConf    ApiRedisConfig
	OutboxConf   ApiOutboxConfig
}

func (ac ApiConfig) GetLoggerConfig() logger.LoggerConfig {
	return ac.LoggerConf
}

func (ac ApiConfig) GetRabbitmqConfig() rabbitmq.RabbitmqConfig {
	return ac.RabbitmqConf
}

func (ac ApiConfig) GetRestApiPort() uint16 {
	return ac.RestConf.Port
}

func (ac ApiConfig) GetDatabaseConnectionString() string {
	return ac.DatabaseConf.ConnectionString
}

func (ac ApiConfig) GetRedisSettings() builderextensions.RedisSettings {
	return builderextensions.RedisSettings{
		Addr:     ac.RedisConf.Addr,
		Password: ac.RedisConf.Password,
		DB:       ac.RedisConf.DB,
	}
}

type ApiRestConfigJson struct {
	Port          uint16 `json:"port"`
	AllowedOrigin string `json:"allowed_origin"`
}

type ApiRestConfig struct {
	Port          uint16
	AllowedOrigin string
}

func (arcj ApiRestConfigJson) MapToDomain() ApiRestConfig {
	port := arcj.Port
	if port == 0 {
		port = 8000
	}
	return ApiRestConfig{
		Port:          port,
		AllowedOrigin: arcj.AllowedOrigin,
	}
}

type ApiDatabaseConfigJson struct {
	ConnectionString string `json:"connection_string"`
	RunMigrations    *bool  `json:"run_migrations"`
}

type ApiDatabaseConfig struct {
	ConnectionString string
	RunMigrations    bool
}

func (adcj ApiDatabaseConfigJson) MapToDomain() ApiDatabaseConfig {
	return ApiDatabaseConfig{
		ConnectionString: utilities.EnvOr("DATABASE_URL", adcj.ConnectionString),
		RunMigrations:    adcj.RunMigrations == nil || *adcj.RunMigrations,
	}
}

type ApiAuthConfigJson struct {
	JwtSecret     string `json:"jwt_secret"`
	InternalToken string `json:"internal_token"`
}

type ApiAuthConfig struct {
	JwtSecret     []byte
	InternalToken string
}

func (aacj ApiAuthConfigJson) MapToDomain() ApiAuthConfig {
	return ApiAuthConfig{
		JwtSecret:     []byte(utilities.EnvOr("JWT_SECRET", aacj.JwtSecret)),
		InternalToken: utilities.EnvOr("INTERNAL_TOKEN", aacj.InternalToken),
	}
}

type ApiRedisConfigJson struct {
	Addr               string `json:"addr"`
	Password           string `json:"password"`
	DB                 int    `json:"db"`
	RateLimitRequests  int64  `json:"rate_limit_requests"`
	RateLimitWindowSec int    `json:"rate_limit_window_seconds"`
}

type ApiRedisConfig struct {
	Addr              string
	Password          string
	DB                int
	RateLimitRequests int64
	RateLimitWindow   time.Duration
}

func (arcj ApiRedisConfigJson) MapToDomain() ApiRedisConfig {
	requests := arcj.RateLimitRequests
	if requests == 0 {
		requests = 30
	}
	window := arcj.RateLimitWindowSec
	if window <= 0 {
		window = 60
	}
	return ApiRedisConfig{
		Addr:              utilities.EnvOr("REDIS_ADDR", arcj.Addr),
		Password:          arcj.Password,
		DB:                arcj.DB,
		RateLimitRequests: requests,
		RateLimitWindow:   time.Duration(window) * time.Second,
	}
}

type ApiOutboxConfigJson struct {
	Schedule string `json:"schedule"`
}

type ApiOutboxConfig struct {
	Schedule string
}

func (aocj ApiOutboxConfigJson) MapToDomain() ApiOutboxConfig {
	schedule := aocj.Schedule
	if schedule == "" {
		schedule = outbox.DefaultSchedule
	}
	return ApiOutboxConfig{Schedule: schedule}
}
