package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"hotel-frontdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func newTestReportService(t *testing.T, db *gorm.DB) *ReportService {
	t.Helper()
	svc := NewReportService(db)
	svc.now = func() time.Time { return testNow }
	return svc
}

func seedLedger(t *testing.T, db *gorm.DB) models.Reservation {
	t.Helper()
	seedRoom(t, db, 101, 300)
	customer := seedCustomer(t, db, "Li Lei", "11010519491231002X")

	reservation := models.Reservation{
		ReferenceCode: "ref-101",
		RoomNumber:    101,
		CustomerID:    customer.ID,
		CheckInDate:   mustDate(t, "2025-05-30"),
		CheckOutDate:  mustDate(t, "2025-06-01"),
		Status:        models.ReservationCompleted,
	}
	require.NoError(t, db.Create(&reservation).Error)

	reservationID := reservation.ID
	require.NoError(t, db.Create(&models.Transaction{
		ReservationID:   &reservationID,
		Amount:          600,
		TransactionDate: mustDate(t, "2025-06-01"),
		Description:     "Room charge",
	}).Error)
	require.NoError(t, db.Create(&models.Transaction{
		Amount:          200,
		TransactionDate: mustDate(t, "2025-05-29"),
		Description:     "Minibar",
	}).Error)
	return reservation
}

func TestFinanceSummary(t *testing.T) {
	db := newTestDB(t)
	seedLedger(t, db)
	svc := newTestReportService(t, db)

	summary, err := svc.Summary()
	require.NoError(t, err)

	assert.Equal(t, 800.0, summary.TotalIncome)
	assert.Equal(t, 600.0, summary.TodayIncome)
	// testNow is June 1st, so the May charge falls outside the month
	assert.Equal(t, 600.0, summary.MonthIncome)
	assert.EqualValues(t, 1, summary.OrderCount)
	assert.Equal(t, 800.0, summary.AvgPerOrder)

	require.Len(t, summary.DailyIncome, 7)
	assert.Equal(t, "2025-06-01", summary.DailyIncome[6].Date)
	assert.Equal(t, 600.0, summary.DailyIncome[6].Amount)
	assert.Equal(t, "2025-05-29", summary.DailyIncome[3].Date)
	assert.Equal(t, 200.0, summary.DailyIncome[3].Amount)
	assert.Zero(t, summary.DailyIncome[0].Amount)
}

func TestFinanceSummaryEmptyLedger(t *testing.T) {
	db := newTestDB(t)
	svc := newTestReportService(t, db)

	summary, err := svc.Summary()
	require.NoError(t, err)
	assert.Zero(t, summary.TotalIncome)
	assert.Zero(t, summary.OrderCount)
	assert.Zero(t, summary.AvgPerOrder)
	assert.Len(t, summary.DailyIncome, 7)
}

func TestExportCSV(t *testing.T) {
	db := newTestDB(t)
	seedLedger(t, db)
	svc := newTestReportService(t, db)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(&buf))
	out := buf.String()

	assert.Contains(t, out, "Finance Report,2025-06-01")
	assert.Contains(t, out, "Total income,800.00")
	assert.Contains(t, out, "Order count,1")
	assert.Contains(t, out, strings.Join(reportHeader, ","))
	// the room charge row carries its reservation context
	assert.Contains(t, out, "101,Li Lei,600.00,2025-06-01,Room charge")
	assert.Contains(t, out, "200.00,2025-05-29,Minibar")
}

func TestExportXLSX(t *testing.T) {
	db := newTestDB(t)
	seedLedger(t, db)
	svc := newTestReportService(t, db)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportXLSX(&buf))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Transactions", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Transaction ID", header)

	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	// rows are ordered by transaction date, oldest first
	assert.Equal(t, "Minibar", rows[1][6])
	assert.Equal(t, "600.00", rows[2][4])
	assert.Equal(t, "Li Lei", rows[2][3])
}
