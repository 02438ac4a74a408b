package model

import "time"

// User represents a registered account. Username is unique at the store level.
type User struct {
	ID           uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	DisplayName  string    `json:"displayName" gorm:"size:255;not null"`
	PasswordHash string    `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
	Image        string    `json:"image,omitempty" gorm:"size:255"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`

	Hoaxes []Hoax `json:"-" gorm:"foreignKey:UserID"`
}

// UserView is the public projection of a User.
type UserView struct {
	ID          uint64 `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Image       string `json:"image,omitempty"`
}

// NewUserView projects u without credentials.
func NewUserView(u *User) UserView {
	return UserView{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Image:       u.Image,
	}
}

// UserPatch carries the self-service changes a user may apply to their profile.
// Image holds base64 encoded bytes, never a file name.
type UserPatch struct {
	DisplayName *string
	Image       *string
}
