package domain

import "time"

type TransportProvider struct {
	ID          uint      `json:"id"`
	City        string    `json:"city"`
	TaxiName    string    `json:"taxi_name"`
	Owner       string    `json:"owner"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	WhatsApp    string    `json:"whatsapp"`
	Order       int       `json:"order"`
	Visible     bool      `json:"visible"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t TransportProvider) SortOrder() int { return t.Order }

func (t TransportProvider) IsVisible() bool { return t.Visible }

type TransportInput struct {
	City        string
	TaxiName    string
	Owner       string
	Description string
	Price       string
	WhatsApp    string
	Order       *int
}
