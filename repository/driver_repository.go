package repository

import (
	"github.com/vishwaszadte/ride-sharing-app-backend/entity"

	"gorm.io/gorm"
)

// DriverRepository รับผิดชอบการคุยกับตาราง drivers ใน DB เท่านั้น
type DriverRepository struct {
	DB *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{DB: db}
}

func (r *DriverRepository) Create(driver *entity.Driver) error {
	return r.DB.Create(driver).Error
}

// โหลด driver ตาม ID โดยไม่ดึง password ออกมาด้วย
func (r *DriverRepository) FindByID(id uint) (*entity.Driver, error) {
	var driver entity.Driver
	if err := r.DB.Omit("password").First(&driver, id).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

// หา driver จาก email — ใช้เฉพาะตอน login จึงต้องได้ hash มาเทียบ
func (r *DriverRepository) FindByEmail(email string) (*entity.Driver, error) {
	var driver entity.Driver
	if err := r.DB.Where("email = ?", email).First(&driver).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *DriverRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Driver{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// driver ทั้งหมดใน pincode เดียวกัน (ตัด password ที่ boundary นี้เลย)
func (r *DriverRepository) FindByPincode(pincode string) ([]entity.Driver, error) {
	var drivers []entity.Driver
	if err := r.DB.Omit("password").
		Where("location_pincode = ?", pincode).
		Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

// UpdateLocation แทนที่ location เดิมทั้งก้อนด้วย UPDATE เดียว
func (r *DriverRepository) UpdateLocation(driverID uint, loc entity.Location) error {
	return r.DB.Model(&entity.Driver{}).Where("id = ?", driverID).
		Updates(map[string]any{
			"location_formatted_address": loc.FormattedAddress,
			"location_latitude":          loc.Latitude,
			"location_longitude":         loc.Longitude,
			"location_city":              loc.City,
			"location_country":           loc.Country,
			"location_pincode":           loc.Pincode,
		}).Error
}
