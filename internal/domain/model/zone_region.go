package model

import "time"

type RegionType string

const (
	RegionTypeState    RegionType = "state"
	RegionTypeDistrict RegionType = "district"
)

// ゾーンへの地域マッピング。district行はstate行より優先される。
type ZoneRegion struct {
	ID             int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	DeliveryZoneID int64      `gorm:"not null;index" json:"delivery_zone_id"`
	StateName      string     `gorm:"type:varchar(100);not null" json:"state_name"`
	DistrictName   string     `gorm:"type:varchar(100)" json:"district_name,omitempty"`
	RegionType     RegionType `gorm:"type:varchar(20);not null;index" json:"region_type"`
	CreatedAt      time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
}
