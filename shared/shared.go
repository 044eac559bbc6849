package shared

import (
	"context"
	"strconv"
	"strings"
	"time"

	"rentals/shared/constant"
	"rentals/shared/failure"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins a prefix and its parts into a redis key.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// ActorIDFromContext returns the authenticated actor id placed on the
// context by the auth middleware.
func ActorIDFromContext(ctx context.Context) (string, error) {
	actorID, ok := ctx.Value(constant.ContextKeyActorID).(string)
	if !ok || actorID == constant.Empty {
		return constant.Empty, failure.Unauthorized("unauthorized")
	}

	return actorID, nil
}

// TokenFromContext returns the id and expiry of the access token that
// authenticated the request.
func TokenFromContext(ctx context.Context) (string, time.Time, error) {
	tokenID, ok := ctx.Value(constant.ContextKeyTokenID).(string)
	if !ok || tokenID == constant.Empty {
		return constant.Empty, time.Time{}, failure.Unauthorized("unauthorized")
	}

	expiresAt, _ := ctx.Value(constant.ContextKeyTokenExp).(time.Time)

	return tokenID, expiresAt, nil
}

// ParseOptionalInt converts an optional query value; empty yields nil.
func ParseOptionalInt(name, value string) (*int, error) {
	if strings.TrimSpace(value) == constant.Empty {
		return nil, nil
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil, failure.BadRequestFromString(name + " must be a whole number")
	}

	return &parsed, nil
}

// ParseOptionalString returns nil for blank values.
func ParseOptionalString(value string) *string {
	if strings.TrimSpace(value) == constant.Empty {
		return nil
	}

	return &value
}
