package models

import "gorm.io/gorm"

type Setting struct {
	ID             int     `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"size:100" json:"name"`
	Company        string  `gorm:"size:100" json:"company"`
	Logo           string  `gorm:"size:255" json:"logo"`
	MinTopup       float64 `gorm:"type:decimal(15,2);default:0" json:"min_topup"`
	MaxTopup       float64 `gorm:"type:decimal(15,2);default:0" json:"max_topup"`
	Maintenance    bool    `gorm:"default:false" json:"maintenance"`
	ClosedRegister bool    `gorm:"default:false" json:"closed_register"`
	LinkCS         string  `gorm:"size:255" json:"link_cs"`
	LinkGroup      string  `gorm:"size:255" json:"link_group"`
	LinkApp        string  `gorm:"size:255" json:"link_app"`
}

func (Setting) TableName() string {
	return "settings"
}

func GetSetting(db *gorm.DB) (*Setting, error) {
	var setting Setting
	if err := db.Take(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}
