package model

import "time"

// Hoax is a short text post. IDs grow with insertion order and act as the timeline cursor.
type Hoax struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
	UserID    uint64    `json:"-" gorm:"index;not null"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}

// HoaxView is the public projection of a Hoax with its author.
type HoaxView struct {
	ID      uint64   `json:"id"`
	Content string   `json:"content"`
	Date    int64    `json:"date"`
	User    UserView `json:"user"`
}

// NewHoaxView projects h; Date is in epoch milliseconds.
func NewHoaxView(h *Hoax) HoaxView {
	v := HoaxView{
		ID:      h.ID,
		Content: h.Content,
		Date:    h.Timestamp.UnixMilli(),
	}
	if h.User != nil {
		v.User = NewUserView(h.User)
	}
	return v
}

// NewHoaxViews projects a slice of hoaxes, never returning nil.
func NewHoaxViews(hoaxes []Hoax) []HoaxView {
	views := make([]HoaxView, 0, len(hoaxes))
	for i := range hoaxes {
		views = append(views, NewHoaxView(&hoaxes[i]))
	}
	return views
}
