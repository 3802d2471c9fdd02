// file: internals/features/attendance/attendance_records/service/autocomplete_service.go
package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "absensiku_backend/internals/features/attendance/attendance_records/model"
	setModel "absensiku_backend/internals/features/attendance/attendance_settings/model"
	schedModel "absensiku_backend/internals/features/attendance/teaching_schedules/model"
)

// missingCheckouts memilih record masuk yang belum punya pasangan pulang
// pada kumpulan record satu tanggal. Murni supaya bisa diuji tanpa DB.
func missingCheckouts(all []m.AttendanceRecordModel) []m.AttendanceRecordModel {
	type pair struct{ teacher, schedule uuid.UUID }
	pulang := make(map[pair]bool)
	for _, r := range all {
		if r.AttendanceRecordType == m.AttendancePulang {
			pulang[pair{r.AttendanceRecordTeacherID, r.AttendanceRecordScheduleID}] = true
		}
	}
	var out []m.AttendanceRecordModel
	for _, r := range all {
		if r.AttendanceRecordType == m.AttendanceMasuk &&
			!pulang[pair{r.AttendanceRecordTeacherID, r.AttendanceRecordScheduleID}] {
			out = append(out, r)
		}
	}
	return out
}

// AutoCompleteCheckout melengkapi absen pulang yang terlewat pada satu
// tanggal: tiap absen masuk tanpa pasangan pulang dibuatkan record pulang
// ber-status auto_completed, jam tercatat = jam selesai jadwal.
// Dipicu admin secara eksplisit (tidak ada background job), dan hanya
// jalan jika flag auto_checkout menyala di setting.
func AutoCompleteCheckout(ctx context.Context, db *gorm.DB, date time.Time) ([]m.AttendanceRecordModel, error) {
	setting, err := setModel.GetActiveSetting(db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	if setting == nil || !setting.AttendanceSettingAutoCheckout {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Auto-checkout tidak diaktifkan pada pengaturan absensi")
	}

	day := date.Format("2006-01-02")
	var created []m.AttendanceRecordModel

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var all []m.AttendanceRecordModel
		if err := tx.Where("attendance_record_date = ?", day).Find(&all).Error; err != nil {
			return err
		}
		missing := missingCheckouts(all)
		if len(missing) == 0 {
			return nil
		}

		// Jam selesai diambil dari jadwalnya
		ids := make([]uuid.UUID, 0, len(missing))
		for _, r := range missing {
			ids = append(ids, r.AttendanceRecordScheduleID)
		}
		var schedules []schedModel.TeachingScheduleModel
		if err := tx.Where("teaching_schedule_id IN ?", ids).Find(&schedules).Error; err != nil {
			return err
		}
		endByID := make(map[uuid.UUID]time.Time, len(schedules))
		for _, s := range schedules {
			endByID[s.TeachingScheduleID] = s.EndAt(date)
		}

		for _, in := range missing {
			recordedAt, ok := endByID[in.AttendanceRecordScheduleID]
			if !ok {
				recordedAt = time.Now()
			}
			rec := m.AttendanceRecordModel{
				AttendanceRecordTeacherID:  in.AttendanceRecordTeacherID,
				AttendanceRecordScheduleID: in.AttendanceRecordScheduleID,
				AttendanceRecordDate:       in.AttendanceRecordDate,
				AttendanceRecordType:       m.AttendancePulang,
				AttendanceRecordRecordedAt: recordedAt,
				AttendanceRecordLatitude:   in.AttendanceRecordLatitude,
				AttendanceRecordLongitude:  in.AttendanceRecordLongitude,
				AttendanceRecordStatus:     m.AttendanceAutoCompleted,
			}
			// Pulang manual bisa menyelip di antara Find dan insert.
			// ON CONFLICT DO NOTHING — error 23505 di tengah transaksi
			// akan meng-abort seluruh batch.
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				continue
			}
			created = append(created, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
