package domain

// Session binds one login event to a rotating refresh-token chain.
// A session exists while it is active; termination deletes the row.
type Session struct {
	ID     string
	UserID string
	// LatestRefreshExp is the expiry (epoch seconds) of the most recently
	// consumed refresh token; 0 when none has been consumed yet. It is
	// monotonically non-decreasing over the session's lifetime.
	LatestRefreshExp int64
	DeviceContext    string
}
