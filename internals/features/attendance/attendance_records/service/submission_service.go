// file: internals/features/attendance/attendance_records/service/submission_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	m "absensiku_backend/internals/features/attendance/attendance_records/model"
	setModel "absensiku_backend/internals/features/attendance/attendance_settings/model"
	schedSvc "absensiku_backend/internals/features/attendance/teaching_schedules/service"
	geo "absensiku_backend/internals/helpers/geo"
)

/* =======================================================
   Submission validator
   Urutan aturan (lihat pesan error):
   1. sesi harus anggota jadwal efektif hari ini
   2. tolak duplikat (pre-check; index unik tetap penjaga akhir)
   3. tolak lokasi mock — hard stop
   4. tolak di luar jendela waktu
   5. geofence hanya advisory: dicatat, tidak memblokir
   ======================================================= */

type SubmitAttendanceInput struct {
	TeacherID  uuid.UUID
	ScheduleID uuid.UUID
	Type       m.AttendanceType

	Latitude  float64
	Longitude float64
	AccuracyM float64
	Address   *string
	IsMock    bool

	DeviceInfo datatypes.JSON
	PhotoURL   *string

	Now time.Time // wall-clock lokal saat submit
}

// --- PG error mapping (SQLState, tanpa import driver)

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func isUniqueViolation(err error) bool {
	var pgErr pgSQLErr
	return errors.As(err, &pgErr) && pgErr.SQLState() == "23505"
}

// checkSubmissionRules menjalankan rantai aturan atas state yang sudah
// dimuat — murni supaya bisa diuji tanpa DB. nil windows = setting belum
// dikonfigurasi (cek jendela dilewati, degradasi).
// Urutan tetap: duplikat → pulang butuh masuk → lokasi mock → jendela.
func checkSubmissionRules(typ m.AttendanceType, now time.Time, duplicate, hasMasuk, isMock bool, w *AttendanceWindows) error {
	if duplicate {
		return fiber.NewError(fiber.StatusConflict, "Absensi dengan tipe yang sama sudah tercatat hari ini")
	}
	if typ == m.AttendancePulang && !hasMasuk {
		return fiber.NewError(fiber.StatusBadRequest, "Belum absen masuk untuk sesi ini")
	}
	if isMock {
		return fiber.NewError(fiber.StatusForbidden, "Lokasi terdeteksi palsu (mock location), absensi ditolak")
	}
	if w != nil {
		win := w.CheckIn
		if typ == m.AttendancePulang {
			win = w.CheckOut
		}
		if !win.Contains(now) {
			return fiber.NewError(fiber.StatusBadRequest, "Di luar jendela waktu absensi")
		}
	}
	return nil
}

// geofenceAdvisory menghitung jarak ke pusat kampus. Flag saja — GPS di
// lapangan tidak selalu akurat, jadi di luar radius tidak pernah menolak.
func geofenceAdvisory(lat, lon float64, loc *setModel.CampusLocationModel) (distanceM *float64, outsideRadius bool) {
	if loc == nil {
		return nil, false
	}
	d, inside := geo.WithinRadius(lat, lon,
		loc.CampusLocationLatitude, loc.CampusLocationLongitude, loc.CampusLocationRadiusM)
	return &d, !inside
}

// SubmitAttendance memvalidasi lalu menyimpan tepat satu AttendanceRecord.
// Error bertipe *fiber.Error (validation error untuk UI); retry urusan
// pemanggil. Record tidak pernah di-update/di-delete setelah tercipta.
func SubmitAttendance(ctx context.Context, db *gorm.DB, in SubmitAttendanceInput) (*m.AttendanceRecordModel, error) {
	if in.Type != m.AttendanceMasuk && in.Type != m.AttendancePulang {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tipe absensi tidak dikenal")
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	day := now.Format("2006-01-02")

	tx := db.WithContext(ctx)

	// 1) Kepemilikan: sesi harus ada di jadwal efektif hari ini
	entries, err := schedSvc.ResolveEffectiveSchedule(ctx, db, in.TeacherID, now)
	if err != nil {
		return nil, err
	}
	var entry *schedSvc.EffectiveEntry
	for i := range entries {
		if entries[i].Schedule.TeachingScheduleID == in.ScheduleID {
			entry = &entries[i]
			break
		}
	}
	if entry == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Sesi tidak terjadwal untuk Anda hari ini")
	}

	// 2-4) Muat state yang dibutuhkan rantai aturan, lalu evaluasi murni
	var dup int64
	if err := tx.Model(&m.AttendanceRecordModel{}).
		Where("attendance_record_teacher_id = ? AND attendance_record_schedule_id = ? AND attendance_record_date = ? AND attendance_record_type = ?",
			in.TeacherID, in.ScheduleID, day, in.Type).
		Count(&dup).Error; err != nil {
		return nil, err
	}
	var masuk int64
	if in.Type == m.AttendancePulang {
		if err := tx.Model(&m.AttendanceRecordModel{}).
			Where("attendance_record_teacher_id = ? AND attendance_record_schedule_id = ? AND attendance_record_date = ? AND attendance_record_type = ?",
				in.TeacherID, in.ScheduleID, day, m.AttendanceMasuk).
			Count(&masuk).Error; err != nil {
			return nil, err
		}
	}

	setting, err := setModel.GetActiveSetting(tx)
	if err != nil {
		return nil, err
	}
	var windows *AttendanceWindows
	if setting != nil {
		w := WindowsFromSetting(entry.Schedule, now, setting)
		windows = &w
	}

	if err := checkSubmissionRules(in.Type, now, dup > 0, masuk > 0, in.IsMock, windows); err != nil {
		return nil, err
	}

	// 5) Geofence advisory — dicatat, tidak memblokir
	var distanceM *float64
	outsideRadius := false
	if setting != nil {
		loc, err := setModel.FindActiveByCode(tx, entry.Schedule.TeachingScheduleCampusCode)
		if err != nil {
			return nil, err
		}
		distanceM, outsideRadius = geofenceAdvisory(in.Latitude, in.Longitude, loc)
	}

	rec := m.AttendanceRecordModel{
		AttendanceRecordTeacherID:     in.TeacherID,
		AttendanceRecordScheduleID:    in.ScheduleID,
		AttendanceRecordDate:          time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		AttendanceRecordType:          in.Type,
		AttendanceRecordRecordedAt:    now,
		AttendanceRecordLatitude:      in.Latitude,
		AttendanceRecordLongitude:     in.Longitude,
		AttendanceRecordAccuracyM:     in.AccuracyM,
		AttendanceRecordAddress:       in.Address,
		AttendanceRecordIsMock:        in.IsMock,
		AttendanceRecordDistanceM:     distanceM,
		AttendanceRecordOutsideRadius: outsideRadius,
		AttendanceRecordDeviceInfo:    in.DeviceInfo,
		AttendanceRecordPhotoURL:      in.PhotoURL,
		AttendanceRecordStatus:        m.AttendanceValid,
	}
	if err := tx.Create(&rec).Error; err != nil {
		// race di index unik → pesan duplikat yang sama
		if isUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Absensi dengan tipe yang sama sudah tercatat hari ini")
		}
		return nil, err
	}
	return &rec, nil
}
