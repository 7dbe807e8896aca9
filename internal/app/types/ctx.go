package types

import "context"

type UserKey struct{}

// GetUserKey returns the request user from context, falling back to the
// sentinel owner when the middleware did not set one.
func GetUserKey(ctx context.Context) string {
	userVal := ctx.Value(UserKey{})
	if userVal == nil {
		return DefaultUserID
	}

	userStr, ok := userVal.(string)
	if !ok || userStr == "" {
		return DefaultUserID
	}

	return userStr
}

type RequestIDKey struct{}

// GetRequestID returns the request id set by the middleware, if any.
func GetRequestID(ctx context.Context) string {
	v := ctx.Value(RequestIDKey{})
	if v == nil {
		return ""
	}
	id, _ := v.(string)
	return id
}
