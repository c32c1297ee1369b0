package services

import (
	"context"
	"time"

	"evercare-dental/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// DashboardService aggregates clinic statistics for the admin view
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardData represents the admin dashboard payload
type DashboardData struct {
	TotalPatients     int64 `json:"totalPatients"`
	TotalAppointments int64 `json:"totalAppointments"`
	ConfirmedToday    int64 `json:"confirmedToday"`
	UpcomingConfirmed int64 `json:"upcomingConfirmed"`
	CancelledTotal    int64 `json:"cancelledTotal"`

	RecentAppointments []models.Appointment `json:"recentAppointments"`
}

// GetDashboard builds the admin dashboard
func (s *DashboardService) GetDashboard(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}
	today := time.Now().Format(time.DateOnly)

	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Patient{}).Count(&data.TotalPatients).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Appointment{}).Count(&data.TotalAppointments).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Appointment{}).
		Where("date = ? AND status = ?", today, models.StatusConfirmed).
		Count(&data.ConfirmedToday).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Appointment{}).
		Where("date > ? AND status = ?", today, models.StatusConfirmed).
		Count(&data.UpcomingConfirmed).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Appointment{}).
		Where("status = ?", models.StatusCancelled).
		Count(&data.CancelledTotal).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Appointment{}).
		Order("created_at desc").
		Limit(10).
		Find(&data.RecentAppointments).Error; err != nil {
		return nil, err
	}

	return data, nil
}
