package device

// Device is a recognition camera registered with the backend. Timestamps are
// passed through as the backend reports them.
type Device struct {
	ID            int64   `json:"id"`
	DeviceID      string  `json:"device_id"`
	Name          *string `json:"name"`
	IPAddress     *string `json:"ip_address"`
	IsActive      bool    `json:"is_active"`
	NetworkStatus string  `json:"network_status"`
	RegisteredAt  string  `json:"registered_at"`
	LastSeen      *string `json:"last_seen"`
}
