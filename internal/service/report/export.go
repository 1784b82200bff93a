package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/report"
)

// utf8BOM makes spreadsheet tools detect the encoding of the Vietnamese headers.
const utf8BOM = "\ufeff"

// missingTime fills the check-in or check-out column when there is no punch.
const missingTime = "-"

var dailyCSVHeader = []string{"STT", "Mã NV", "Tên nhân viên", "Ngày", "Giờ vào", "Giờ ra", "Giờ làm việc", "Thiết bị"}

// WriteDailyCSV writes rows as a BOM-prefixed CSV document.
func WriteDailyCSV(w io.Writer, rows []report.DailyRow) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(dailyCSVHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.No),
			row.EmployeeID,
			row.EmployeeName,
			row.Date,
			punchTime(row.CheckIn),
			punchTime(row.CheckOut),
			row.HoursWorked,
			row.DeviceID,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", row.No, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportFilename names an export after its date range.
func ExportFilename(table report.DailyTable) string {
	if table.StartDate == table.EndDate {
		return fmt.Sprintf("attendance_%s.csv", table.StartDate)
	}
	return fmt.Sprintf("attendance_%s_%s.csv", table.StartDate, table.EndDate)
}

func punchTime(p *attendance.Punch) string {
	if p == nil {
		return missingTime
	}
	return p.Time
}
