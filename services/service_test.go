package services

import (
	"testing"
	"time"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testNow pins "today" so status derivation is stable regardless of when the
// suite runs.
var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One connection so every query sees the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Customer{},
		&models.Reservation{},
		&models.Transaction{},
	))
	return db
}

func newTestReservationService(t *testing.T, db *gorm.DB) *ReservationService {
	t.Helper()
	svc := NewReservationService(db)
	svc.now = func() time.Time { return testNow }
	return svc
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseDate(s)
	require.NoError(t, err)
	return d
}

func seedRoom(t *testing.T, db *gorm.DB, number int, price float64) models.Room {
	t.Helper()
	room := models.Room{
		RoomNumber:  number,
		RoomType:    "Standard",
		Price:       price,
		Status:      models.RoomVacant,
		CleanStatus: models.RoomClean,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedCustomer(t *testing.T, db *gorm.DB, name, idCard string) models.Customer {
	t.Helper()
	customer := models.Customer{
		Name:    name,
		Contact: "13800000000",
		IDCard:  idCard,
	}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func roomStatus(t *testing.T, db *gorm.DB, number int) string {
	t.Helper()
	var room models.Room
	require.NoError(t, db.First(&room, "room_number = ?", number).Error)
	return room.Status
}
