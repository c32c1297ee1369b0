package services

import (
	"context"
	"strings"

	"evercare-dental/internal/adapters/persistence/models"
	"evercare-dental/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// ============================================================
// In-memory fakes for the repository interfaces
// ============================================================

type fakeAppointmentRepo struct {
	appts     []models.Appointment
	nextID    uint
	err       error
	deleteErr error
}

func newFakeAppointmentRepo(seed ...models.Appointment) *fakeAppointmentRepo {
	r := &fakeAppointmentRepo{nextID: 1}
	for _, a := range seed {
		if a.ID == 0 {
			a.ID = r.nextID
		}
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
		r.appts = append(r.appts, a)
	}
	return r
}

func (r *fakeAppointmentRepo) slotHeld(date, timeSlot string, excludeID uint) bool {
	for i := range r.appts {
		a := &r.appts[i]
		if a.ID == excludeID {
			continue
		}
		if a.HoldsSlot() && a.Date == date && a.Time == timeSlot {
			return true
		}
	}
	return false
}

func (r *fakeAppointmentRepo) CreateIfSlotFree(_ context.Context, appt *models.Appointment) error {
	if r.err != nil {
		return r.err
	}
	if r.slotHeld(appt.Date, appt.Time, 0) {
		return repositories.ErrSlotTaken
	}
	appt.ID = r.nextID
	r.nextID++
	r.appts = append(r.appts, *appt)
	return nil
}

func (r *fakeAppointmentRepo) UpdateIfSlotFree(_ context.Context, appt *models.Appointment) error {
	if r.err != nil {
		return r.err
	}
	if appt.HoldsSlot() && r.slotHeld(appt.Date, appt.Time, appt.ID) {
		return repositories.ErrSlotTaken
	}
	for i := range r.appts {
		if r.appts[i].ID == appt.ID {
			r.appts[i] = *appt
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	for i := range r.appts {
		if r.appts[i].ID == id {
			a := r.appts[i]
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id uint) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i := range r.appts {
		if r.appts[i].ID == id {
			r.appts = append(r.appts[:i], r.appts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeAppointmentRepo) List(_ context.Context) ([]models.Appointment, error) {
	return append([]models.Appointment(nil), r.appts...), nil
}

func (r *fakeAppointmentRepo) ListByPatientMobile(_ context.Context, mobile string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.PatientMobile == mobile {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListByDate(_ context.Context, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListByDateAndStatus(_ context.Context, date, status string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.Date == date && a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakePatientRepo struct {
	patients []models.Patient
	nextID   uint
}

func newFakePatientRepo(seed ...models.Patient) *fakePatientRepo {
	r := &fakePatientRepo{nextID: 1}
	for _, p := range seed {
		if p.ID == 0 {
			p.ID = r.nextID
		}
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		r.patients = append(r.patients, p)
	}
	return r
}

func (r *fakePatientRepo) Create(_ context.Context, patient *models.Patient) error {
	patient.ID = r.nextID
	r.nextID++
	r.patients = append(r.patients, *patient)
	return nil
}

func (r *fakePatientRepo) GetByID(_ context.Context, id uint) (*models.Patient, error) {
	for i := range r.patients {
		if r.patients[i].ID == id {
			p := r.patients[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePatientRepo) GetByMobile(_ context.Context, mobile string) (*models.Patient, error) {
	for i := range r.patients {
		if r.patients[i].Mobile == mobile {
			p := r.patients[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePatientRepo) Update(_ context.Context, patient *models.Patient) error {
	for i := range r.patients {
		if r.patients[i].ID == patient.ID {
			r.patients[i] = *patient
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakePatientRepo) Delete(_ context.Context, id uint) error {
	for i := range r.patients {
		if r.patients[i].ID == id {
			r.patients = append(r.patients[:i], r.patients[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePatientRepo) List(_ context.Context, offset, limit int) ([]*models.Patient, int64, error) {
	var out []*models.Patient
	for i := range r.patients {
		p := r.patients[i]
		out = append(out, &p)
	}
	return out, int64(len(r.patients)), nil
}

func (r *fakePatientRepo) ExistsByMobile(_ context.Context, mobile string, excludeID uint) (bool, error) {
	for i := range r.patients {
		if r.patients[i].ID == excludeID {
			continue
		}
		if r.patients[i].Mobile == mobile {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserRepo struct {
	users  []models.User
	nextID uint
}

func newFakeUserRepo(seed ...models.User) *fakeUserRepo {
	r := &fakeUserRepo{nextID: 1}
	for _, u := range seed {
		if u.ID == 0 {
			u.ID = r.nextID
		}
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
		r.users = append(r.users, u)
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) List(_ context.Context, offset, limit int) ([]*models.User, int64, error) {
	var out []*models.User
	for i := range r.users {
		u := r.users[i]
		out = append(out, &u)
	}
	return out, int64(len(r.users)), nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// ============================================================
// Fake notifier
// ============================================================

type sentMessage struct {
	Mobile   string
	FullName string
	Date     string
	Time     string
}

type fakeNotifier struct {
	enabled       bool
	required      bool
	err           error
	confirmations []sentMessage
	reminders     []sentMessage
}

func (n *fakeNotifier) IsEnabled() bool  { return n.enabled }
func (n *fakeNotifier) IsRequired() bool { return n.required }

func (n *fakeNotifier) SendBookingConfirmation(_ context.Context, mobile, fullName, date, timeSlot string) error {
	if n.err != nil {
		return n.err
	}
	n.confirmations = append(n.confirmations, sentMessage{mobile, fullName, date, timeSlot})
	return nil
}

func (n *fakeNotifier) SendReminder(_ context.Context, mobile, fullName, date, timeSlot string) error {
	if n.err != nil {
		return n.err
	}
	n.reminders = append(n.reminders, sentMessage{mobile, fullName, date, timeSlot})
	return nil
}
