package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/vishwaszadte/ride-sharing-app-backend/entity"
	"github.com/vishwaszadte/ride-sharing-app-backend/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// เปิด sqlite in-memory แยก DB ต่อ test (shared cache ผูกกับชื่อ ไม่ใช่ connection)
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.Rider{}, &entity.Driver{}, &entity.Ride{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestRideService(t *testing.T) (*RideService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	rideRepo := repository.NewRideRepository(db)
	riderRepo := repository.NewRiderRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	return NewRideService(db, rideRepo, riderRepo, driverRepo, nil), db
}

func seedRider(t *testing.T, db *gorm.DB, email, pincode string) *entity.Rider {
	t.Helper()
	rider := &entity.Rider{
		Name:        "Test Rider",
		Email:       email,
		Password:    "hashed",
		PhoneNumber: "9999999999",
	}
	if pincode != "" {
		rider.Location = entity.Location{
			FormattedAddress: "FC Road, Pune",
			Latitude:         18.52,
			Longitude:        73.85,
			City:             "Pune",
			Country:          "India",
			Pincode:          pincode,
		}
	}
	if err := db.Create(rider).Error; err != nil {
		t.Fatalf("seed rider: %v", err)
	}
	return rider
}

func seedDriver(t *testing.T, db *gorm.DB, email, pincode string) *entity.Driver {
	t.Helper()
	driver := &entity.Driver{
		Name:          "Test Driver",
		Email:         email,
		Password:      "hashed",
		PhoneNumber:   "8888888888",
		VehicleName:   "Swift",
		VehicleNumber: "MH12AB1234",
		VehicleType:   "sedan",
	}
	if pincode != "" {
		driver.Location = entity.Location{
			FormattedAddress: "JM Road, Pune",
			Latitude:         18.53,
			Longitude:        73.84,
			City:             "Pune",
			Country:          "India",
			Pincode:          pincode,
		}
	}
	if err := db.Create(driver).Error; err != nil {
		t.Fatalf("seed driver: %v", err)
	}
	return driver
}

func seedRide(t *testing.T, db *gorm.DB, riderID uint, driverID *uint, status string) *entity.Ride {
	t.Helper()
	ride := &entity.Ride{
		RiderID:     riderID,
		DriverID:    driverID,
		Source:      "Station",
		Destination: "Airport",
		Status:      status,
	}
	if err := db.Create(ride).Error; err != nil {
		t.Fatalf("seed ride: %v", err)
	}
	return ride
}
