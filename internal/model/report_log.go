package model

import "time"

// ReportLog records one report generation for the history endpoint.
type ReportLog struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	TargetDate  string    `gorm:"size:10;not null;index" json:"targetDate"`
	AuthSource  string    `gorm:"size:32;not null" json:"authSource"`
	Bookings    int       `gorm:"not null" json:"bookings"`
	Arrivals    int       `gorm:"not null" json:"arrivals"`
	Departures  int       `gorm:"not null" json:"departures"`
	StayThrough int       `gorm:"not null" json:"stayThrough"`
	GeneratedAt time.Time `gorm:"not null;index" json:"generatedAt"`
}
