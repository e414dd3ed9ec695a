package domain

import "time"

// DefaultOrder is the sort key given to records created without an explicit order.
const DefaultOrder = 99

type Promoter struct {
	ID        uint      `json:"id"`
	Locality  string    `json:"locality"`
	Name      string    `json:"name"`
	Image     Image     `json:"image"`
	Instagram string    `json:"instagram"`
	WhatsApp  string    `json:"whatsapp"`
	Order     int       `json:"order"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Promoter) SortOrder() int { return p.Order }

func (p Promoter) IsVisible() bool { return p.Visible }

// PromoterInput is the admin-submitted content of a promoter.
// Order is nil when the form left it blank.
type PromoterInput struct {
	Locality  string
	Name      string
	ImageURL  string
	Upload    *ImageUpload
	Instagram string
	WhatsApp  string
	Order     *int
}
