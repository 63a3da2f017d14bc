package repository

import (
	"github.com/vishwaszadte/ride-sharing-app-backend/entity"

	"gorm.io/gorm"
)

// RiderRepository รับผิดชอบการคุยกับตาราง riders ใน DB เท่านั้น
type RiderRepository struct {
	DB *gorm.DB
}

func NewRiderRepository(db *gorm.DB) *RiderRepository {
	return &RiderRepository{DB: db}
}

// สร้าง rider ใหม่
func (r *RiderRepository) Create(rider *entity.Rider) error {
	return r.DB.Create(rider).Error
}

// โหลด rider ตาม ID โดยไม่ดึง password ออกมาด้วย
func (r *RiderRepository) FindByID(id uint) (*entity.Rider, error) {
	var rider entity.Rider
	if err := r.DB.Omit("password").First(&rider, id).Error; err != nil {
		return nil, err
	}
	return &rider, nil
}

// หา rider จาก email — ใช้เฉพาะตอน login จึงต้องได้ hash มาเทียบ
func (r *RiderRepository) FindByEmail(email string) (*entity.Rider, error) {
	var rider entity.Rider
	if err := r.DB.Where("email = ?", email).First(&rider).Error; err != nil {
		return nil, err
	}
	return &rider, nil
}

// นับจำนวน rider ที่มี email ซ้ำ
func (r *RiderRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Rider{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// rider ทั้งหมดใน pincode เดียวกัน (ตัด password ที่ boundary นี้เลย)
func (r *RiderRepository) FindByPincode(pincode string) ([]entity.Rider, error) {
	var riders []entity.Rider
	if err := r.DB.Omit("password").
		Where("location_pincode = ?", pincode).
		Find(&riders).Error; err != nil {
		return nil, err
	}
	return riders, nil
}

// UpdateLocation แทนที่ location เดิมทั้งก้อนด้วย UPDATE เดียว
func (r *RiderRepository) UpdateLocation(riderID uint, loc entity.Location) error {
	return r.DB.Model(&entity.Rider{}).Where("id = ?", riderID).
		Updates(map[string]any{
			"location_formatted_address": loc.FormattedAddress,
			"location_latitude":          loc.Latitude,
			"location_longitude":         loc.Longitude,
			"location_city":              loc.City,
			"location_country":           loc.Country,
			"location_pincode":           loc.Pincode,
		}).Error
}
