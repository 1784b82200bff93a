package attendance

// ActionType is the kind of a recognition event.
type ActionType string

const (
	ActionCheckIn      ActionType = "CHECK_IN"
	ActionCheckOut     ActionType = "CHECK_OUT"
	ActionUnrecognized ActionType = "UNRECOGNIZED"
	ActionUnknown      ActionType = "UNKNOWN"
)

// Event is one raw attendance event as emitted by the recognition backend.
// Timestamp is kept verbatim; it is interpreted by the normalizer.
type Event struct {
	ID         int64      `json:"id"`
	EmployeeID string     `json:"employee_id"`
	Timestamp  string     `json:"timestamp"`
	ActionType ActionType `json:"action_type"`
	DeviceID   string     `json:"device_id"`
	Confidence float64    `json:"confidence"`
	ImagePath  *string    `json:"image_path,omitempty"`
}

type Status string

const (
	StatusPresent    Status = "present"
	StatusLate       Status = "late"
	StatusIncomplete Status = "incomplete"
	StatusAbsent     Status = "absent"
)

// NoDevice is reported when neither endpoint of a day carries a device.
const NoDevice = "N/A"

// Punch is the event chosen as a day's check-in or check-out.
type Punch struct {
	Timestamp string `json:"timestamp"`
	Time      string `json:"time"`
	DeviceID  string `json:"device_id"`
}

// DailyRecord is the reconstructed attendance of one employee on one civil date.
type DailyRecord struct {
	EmployeeID  string `json:"employee_id"`
	Date        string `json:"date"`
	CheckIn     *Punch `json:"check_in"`
	CheckOut    *Punch `json:"check_out"`
	HoursWorked string `json:"hours_worked"`
	Status      Status `json:"status"`
	DeviceID    string `json:"device_id"`
	EarlyLeave  bool   `json:"early_leave"`
	EventCount  int    `json:"event_count"`
}
