package models

import "gorm.io/gorm"

// Customer is the master record holding a buyer's identity and the tax
// rates applied to their sales. Rates are percentages (2.5 means 2.5%).
type Customer struct {
	Base
	Name      string         `gorm:"size:255;not null;index" json:"name"`
	Address   string         `gorm:"type:text;not null" json:"address"`
	Business  string         `gorm:"size:255;not null" json:"business"`
	GSTNumber string         `gorm:"column:gst_number;size:64;not null" json:"gst_number"`
	SGST      float64        `gorm:"column:sgst;not null" json:"sgst"`
	CGST      float64        `gorm:"column:cgst;not null" json:"cgst"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
