package model

import "time"

type WorkshopSettings struct {
	Name            string
	Address         string
	Phone           string
	ThankYouMessage string
	UpdatedAt       time.Time
}
