package models

import (
	"time"

	"petcare-booking/internal/core/domain"

	"gorm.io/gorm"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// ============================================================
// Credential store
// ============================================================

// User represents users table. Caretakers are users with role admin.
type User struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:120;not null"`
	Email     string    `gorm:"uniqueIndex;size:191;not null"`
	Phone     string    `gorm:"size:30;not null"`
	Birthday  time.Time `gorm:"type:date;not null"`
	Password  string    `gorm:"size:255;not null"`
	Role      string    `gorm:"size:20;default:'user';not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	Cats      []Cat     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}

// Identity returns the principal a token issued for this user asserts
func (u *User) Identity() domain.Identity {
	return domain.Identity{UserID: u.ID, Role: domain.ParseRole(u.Role)}
}

// Cat represents cats table
type Cat struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Name   string  `gorm:"size:120;not null" json:"name"`
	Age    int     `gorm:"default:0" json:"age"`
	Needs  *string `gorm:"type:text" json:"needs"`
	UserID uint    `gorm:"index;not null" json:"userId"`
}

func (Cat) TableName() string {
	return "cats"
}

// ProfileResponse is the self view of a user, pets included
type ProfileResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Birthday string `json:"birthday"`
	Role     string `json:"role"`
	Cats     []Cat  `json:"cats"`
}

// UserResponse DTO, used for listings and embedded booking parties
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Birthday  string    `json:"birthday"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginUser is the user summary returned with a token
type LoginUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AdminProfile is the caretaker self view
type AdminProfile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// ClientSummary is the client embedded in the all-bookings listing
type ClientSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CaretakerSummary is the caretaker embedded in the all-bookings listing
type CaretakerSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Birthday:  formatDate(u.Birthday),
		Role:      string(domain.ParseRole(u.Role)),
		CreatedAt: u.CreatedAt,
	}
}

func (u *User) ToProfile() *ProfileResponse {
	cats := u.Cats
	if cats == nil {
		cats = []Cat{}
	}
	return &ProfileResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Birthday: formatDate(u.Birthday),
		Role:     string(domain.ParseRole(u.Role)),
		Cats:     cats,
	}
}

func (u *User) ToLoginUser() *LoginUser {
	return &LoginUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(domain.ParseRole(u.Role)),
	}
}

func (u *User) ToAdminProfile() *AdminProfile {
	return &AdminProfile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  string(domain.ParseRole(u.Role)),
	}
}

// ============================================================
// Booking store
// ============================================================

// Booking represents services table. (date, time) is unique system-wide.
type Booking struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	AdminID     uint      `gorm:"index;not null"`
	PetName     string    `gorm:"size:120;not null"`
	ServiceType string    `gorm:"size:120;not null"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:idx_services_slot,priority:1"`
	Time        string    `gorm:"size:10;not null;uniqueIndex:idx_services_slot,priority:2"`
	Notes       string    `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(10,2);default:0"`
	Status      string    `gorm:"size:20;default:'pendente';not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
	User        *User     `gorm:"foreignKey:UserID"`
	Admin       *User     `gorm:"foreignKey:AdminID"`
}

func (Booking) TableName() string {
	return "services"
}

// BookingResponse DTO. The embedded parties depend on the listing.
type BookingResponse struct {
	ID          uint        `json:"id"`
	UserID      uint        `json:"userId"`
	AdminID     uint        `json:"adminId"`
	PetName     string      `json:"petName"`
	ServiceType string      `json:"serviceType"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Notes       string      `json:"notes"`
	Price       float64     `json:"price"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	User        interface{} `json:"user,omitempty"`
	Admin       interface{} `json:"admin,omitempty"`
}

func (b *Booking) ToResponse() *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		AdminID:     b.AdminID,
		PetName:     b.PetName,
		ServiceType: b.ServiceType,
		Date:        formatDate(b.Date),
		Time:        b.Time,
		Notes:       b.Notes,
		Price:       b.Price,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}

// WithParties embeds the client and caretaker summaries (all-bookings view)
func (b *Booking) WithParties() *BookingResponse {
	resp := b.ToResponse()
	if b.User != nil {
		resp.User = &ClientSummary{ID: b.User.ID, Name: b.User.Name, Email: b.User.Email, Phone: b.User.Phone}
	}
	if b.Admin != nil {
		resp.Admin = &CaretakerSummary{ID: b.Admin.ID, Name: b.Admin.Name, Email: b.Admin.Email}
	}
	return resp
}

// WithCaretaker embeds the full caretaker record (client's view)
func (b *Booking) WithCaretaker() *BookingResponse {
	resp := b.ToResponse()
	if b.Admin != nil {
		resp.Admin = b.Admin.ToResponse()
	}
	return resp
}

// WithClient embeds the full client record (caretaker's view)
func (b *Booking) WithClient() *BookingResponse {
	resp := b.ToResponse()
	if b.User != nil {
		resp.User = b.User.ToResponse()
	}
	return resp
}

// ParseDate parses a calendar date. Full timestamps are accepted and
// truncated to their date part.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Cat{},
		&Booking{},
	)
}
