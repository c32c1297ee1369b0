package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Users (admin dashboard accounts)
// ============================================================

// User roles. Registration always produces RoleUser; admin accounts
// come from the seeder or an explicit promote.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents users table
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the administrative role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// ============================================================
// Patients
// ============================================================

// Patient represents patients table. Mobile is the natural key linking
// a patient to their appointment history.
type Patient struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Mobile    string         `gorm:"uniqueIndex;size:20;not null" json:"mobile"`
	Age       int            `gorm:"not null" json:"age"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Patient) TableName() string {
	return "patients"
}

// ============================================================
// Appointments
// ============================================================

// Appointment statuses
const (
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment represents appointments table. Date is always stored
// normalized as YYYY-MM-DD, so the (date, time) slot comparison never
// misses an equivalent date in another format. Cancelled appointments
// do not hold their slot.
type Appointment struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	BookingRef    string         `gorm:"size:36;uniqueIndex;not null" json:"bookingRef"`
	FullName      string         `gorm:"size:100;not null" json:"fullName"`
	Mobile        string         `gorm:"size:20;not null;index" json:"mobile"`
	Date          string         `gorm:"size:10;not null;index:idx_slot" json:"date"`
	Time          string         `gorm:"size:5;not null;index:idx_slot" json:"time"`
	Status        string         `gorm:"size:20;default:'confirmed'" json:"status"`
	Notes         string         `gorm:"type:text" json:"notes"`
	PatientMobile string         `gorm:"size:20;not null;index" json:"patientMobile"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// HoldsSlot reports whether this appointment blocks its (date, time)
// pair from being booked by someone else.
func (a *Appointment) HoldsSlot() bool {
	return a.Status != StatusCancelled
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Patient{},
		&Appointment{},
	)
}
