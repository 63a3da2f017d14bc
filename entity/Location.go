package entity

// Location คือ address ที่ resolve มาจาก geocoder; replaced ทั้งก้อนทุกครั้งที่อัปเดต
type Location struct {
	FormattedAddress string  `json:"formattedAddress"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	City             string  `json:"city"`
	Country          string  `json:"country"`
	Pincode          string  `json:"pincode"`
}

// IsZero reports whether no location has been set yet.
func (l Location) IsZero() bool {
	return l.Pincode == ""
}
