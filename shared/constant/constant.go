package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyActorID    contextKey = "actor_id"
	ContextKeyActorEmail contextKey = "actor_email"
	ContextKeyActorRole  contextKey = "actor_role"
	ContextKeyTokenID    contextKey = "token_id"
	ContextKeyTokenExp   contextKey = "token_exp"
)

const (
	RequestParamID      = "id"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamArea      = "area"
	RequestParamCategory  = "category"
	RequestParamMinPrice  = "min_price"
	RequestParamMaxPrice  = "max_price"
	RequestParamStartDate = "start_date"
	RequestParamEndDate   = "end_date"
)

const (
	DefaultValueSortDir = "ASC"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	CacheKeyRateLimit    = "limiter"
	CacheKeyRevokedToken = "token:revoked"
)

const (
	Empty = ""
)
