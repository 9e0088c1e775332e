package constants

import "time"

// Context keys
const (
	ContextTokenData = "token_data"
	ContextRequestID = "request_id"
)

// Token scopes
const (
	ScopeTokenAccess = "access"
)

// Timeouts
const (
	DefaultRequestTimeout = 30 * time.Second
	GraphConnectTimeout   = 10 * time.Second
)

// Database settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Cache settings
const (
	// ScheduleCacheTTL bounds how stale a cached free/busy response may be.
	ScheduleCacheTTL    = 5 * time.Minute
	RedisKeyScheduleFmt = "schedule:%s"
)

// Asynq task types
const (
	TaskTypeSearchRun = "search:run"
)
