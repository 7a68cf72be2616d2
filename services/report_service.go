package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// FinanceSummary is the front page of the finance view.
type FinanceSummary struct {
	TotalIncome float64       `json:"total_income"`
	TodayIncome float64       `json:"today_income"`
	MonthIncome float64       `json:"month_income"`
	OrderCount  int64         `json:"order_count"`
	AvgPerOrder float64       `json:"avg_per_order"`
	DailyIncome []DailyIncome `json:"daily_income"`
}

type DailyIncome struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// ReportService aggregates the transaction ledger for the finance views and
// exports. Time-range arithmetic happens in Go so the same queries run on
// SQLite and MySQL alike.
type ReportService struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db, now: time.Now}
}

func (s *ReportService) sumBetween(from, to time.Time) (float64, error) {
	var total float64
	q := s.DB.Model(&models.Transaction{}).Select("COALESCE(SUM(amount), 0)")
	if !from.IsZero() {
		q = q.Where("transaction_date >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("transaction_date < ?", to)
	}
	if err := q.Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return total, nil
}

// Summary computes the totals the finance form shows: all-time, today, this
// month, distinct order count and average income per order, plus a daily
// series for the last seven days.
func (s *ReportService) Summary() (FinanceSummary, error) {
	var summary FinanceSummary

	today := utils.DateOnly(s.now())
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	var err error
	if summary.TotalIncome, err = s.sumBetween(time.Time{}, time.Time{}); err != nil {
		return summary, err
	}
	if summary.TodayIncome, err = s.sumBetween(today, today.AddDate(0, 0, 1)); err != nil {
		return summary, err
	}
	if summary.MonthIncome, err = s.sumBetween(monthStart, monthStart.AddDate(0, 1, 0)); err != nil {
		return summary, err
	}

	if err := s.DB.Model(&models.Transaction{}).
		Where("reservation_id IS NOT NULL").
		Distinct("reservation_id").
		Count(&summary.OrderCount).Error; err != nil {
		return summary, fmt.Errorf("failed to count orders: %w", err)
	}
	if summary.OrderCount > 0 {
		summary.AvgPerOrder = summary.TotalIncome / float64(summary.OrderCount)
	}

	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		amount, err := s.sumBetween(day, day.AddDate(0, 0, 1))
		if err != nil {
			return summary, err
		}
		summary.DailyIncome = append(summary.DailyIncome, DailyIncome{
			Date:   day.Format(utils.DateLayout),
			Amount: amount,
		})
	}

	return summary, nil
}

// reportRow is one exported line: transaction joined with its reservation.
type reportRow struct {
	txn models.Transaction
}

var reportHeader = []string{
	"Transaction ID", "Reservation ID", "Room", "Customer", "Amount", "Date", "Description",
}

func (r reportRow) fields() []string {
	reservationID := ""
	room := ""
	customer := ""
	if r.txn.ReservationID != nil {
		reservationID = strconv.FormatUint(uint64(*r.txn.ReservationID), 10)
	}
	if r.txn.Reservation != nil {
		room = strconv.Itoa(r.txn.Reservation.RoomNumber)
		customer = r.txn.Reservation.Customer.Name
	}
	return []string{
		strconv.FormatUint(uint64(r.txn.ID), 10),
		reservationID,
		room,
		customer,
		strconv.FormatFloat(r.txn.Amount, 'f', 2, 64),
		r.txn.TransactionDate.Format(utils.DateLayout),
		r.txn.Description,
	}
}

func (s *ReportService) rows() ([]reportRow, error) {
	var list []models.Transaction
	if err := s.DB.
		Preload("Reservation").
		Preload("Reservation.Customer").
		Order("transaction_date ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to load transactions for export: %w", err)
	}
	rows := make([]reportRow, 0, len(list))
	for _, t := range list {
		rows = append(rows, reportRow{txn: t})
	}
	return rows, nil
}

// ExportCSV writes the full transaction report, summary first, then the
// detail lines.
func (s *ReportService) ExportCSV(w io.Writer) error {
	summary, err := s.Summary()
	if err != nil {
		return err
	}
	rows, err := s.rows()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	records := [][]string{
		{"Finance Report", s.now().Format(utils.DateLayout)},
		{"Total income", strconv.FormatFloat(summary.TotalIncome, 'f', 2, 64)},
		{"Today income", strconv.FormatFloat(summary.TodayIncome, 'f', 2, 64)},
		{"Month income", strconv.FormatFloat(summary.MonthIncome, 'f', 2, 64)},
		{"Order count", strconv.FormatInt(summary.OrderCount, 10)},
		{"Average per order", strconv.FormatFloat(summary.AvgPerOrder, 'f', 2, 64)},
		{},
		reportHeader,
	}
	for _, r := range rows {
		records = append(records, r.fields())
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// ExportXLSX writes the same report as a spreadsheet.
func (s *ReportService) ExportXLSX(w io.Writer) error {
	rows, err := s.rows()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transactions"
	f.SetSheetName("Sheet1", sheet)

	for col, name := range reportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for i, r := range rows {
		for col, value := range r.fields() {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}
