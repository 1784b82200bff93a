package network

// Status is the backend's overview of recent network activity.
type Status struct {
	Status     string  `json:"status"`
	RecentLogs int     `json:"recent_logs"`
	LastUpdate *string `json:"last_update"`
}

type Log struct {
	ID        int64   `json:"id"`
	DeviceID  string  `json:"device_id"`
	Event     string  `json:"event"`
	IPAddress *string `json:"ip_address"`
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
}
