package store

// Well-known keys in the key-value store.
const (
	KeyUser          = "@Auth:user"
	KeyCartID        = "@Session:cart_id"
	KeyCartSnapshot  = "@Session:cart_snapshot"
	KeyLanguage      = "@Language:preference"
	KeyTheme         = "user_theme"
	KeyOfflineQueue  = "offline_action_queue"
	KeyLastTrackedID = "@BackgroundTracking:last_log_id"
	KeyDeviceID      = "@Device:id"
)
