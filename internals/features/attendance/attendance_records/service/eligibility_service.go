// file: internals/features/attendance/attendance_records/service/eligibility_service.go
package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "absensiku_backend/internals/features/attendance/attendance_records/model"
	setModel "absensiku_backend/internals/features/attendance/attendance_settings/model"
	schedSvc "absensiku_backend/internals/features/attendance/teaching_schedules/service"
)

/* =======================================================
   Eligibility evaluator — proyeksi murni, dihitung ulang
   setiap request, tidak pernah disimpan/cache.
   ======================================================= */

type SessionEligibility struct {
	Entry   schedSvc.EffectiveEntry `json:"entry"`
	Windows AttendanceWindows       `json:"windows"`

	HasCheckedIn  bool `json:"has_checked_in"`
	HasCheckedOut bool `json:"has_checked_out"`
	CanCheckIn    bool `json:"can_check_in"`
	CanCheckOut   bool `json:"can_check_out"`

	Message string `json:"message"`
}

func minutesUntil(t, now time.Time) int {
	return int(math.Ceil(t.Sub(now).Minutes()))
}

// EvaluateEligibility mengklasifikasikan tiap sesi efektif.
// Invariant: CanCheckOut ⇒ HasCheckedIn (tidak ada absen pulang tanpa
// absen masuk). Jendela yang lewat tanpa aksi bersifat final — tidak
// ada absensi retroaktif.
func EvaluateEligibility(
	entries []schedSvc.EffectiveEntry,
	setting *setModel.AttendanceSettingModel,
	records []m.AttendanceRecordModel,
	now time.Time,
) []SessionEligibility {
	type key struct {
		schedule uuid.UUID
		typ      m.AttendanceType
	}
	have := make(map[key]bool, len(records))
	for _, r := range records {
		have[key{r.AttendanceRecordScheduleID, r.AttendanceRecordType}] = true
	}

	windowsEnforced := setting != nil

	out := make([]SessionEligibility, 0, len(entries))
	for _, e := range entries {
		w := WindowsFromSetting(e.Schedule, now, setting)

		el := SessionEligibility{
			Entry:         e,
			Windows:       w,
			HasCheckedIn:  have[key{e.Schedule.TeachingScheduleID, m.AttendanceMasuk}],
			HasCheckedOut: have[key{e.Schedule.TeachingScheduleID, m.AttendancePulang}],
		}

		inWindowIn := w.CheckIn.Contains(now)
		inWindowOut := w.CheckOut.Contains(now)
		if !windowsEnforced {
			// Degradasi tanpa setting: batas waktu tidak diberlakukan.
			inWindowIn, inWindowOut = true, true
		}

		el.CanCheckIn = inWindowIn && !el.HasCheckedIn
		el.CanCheckOut = inWindowOut && el.HasCheckedIn && !el.HasCheckedOut

		// Pesan status — urutan prioritas tetap. Tanpa setting tidak ada
		// jendela, jadi tidak ada hitung mundur menit.
		switch {
		case el.HasCheckedIn && el.HasCheckedOut:
			el.Message = "Absensi hari ini sudah lengkap"
		case el.CanCheckIn && !windowsEnforced:
			el.Message = "Silakan absen masuk"
		case el.CanCheckIn:
			el.Message = fmt.Sprintf("Silakan absen masuk, sisa %d menit", minutesUntil(w.CheckIn.End, now))
		case el.CanCheckOut && !windowsEnforced:
			el.Message = "Silakan absen pulang"
		case el.CanCheckOut:
			el.Message = fmt.Sprintf("Silakan absen pulang, sisa %d menit", minutesUntil(w.CheckOut.End, now))
		case !el.HasCheckedIn && now.Before(w.CheckIn.Start):
			el.Message = fmt.Sprintf("Absen masuk dibuka dalam %d menit", minutesUntil(w.CheckIn.Start, now))
		case !el.HasCheckedIn:
			el.Message = "Jendela absen masuk terlewat"
		case now.Before(w.CheckOut.Start):
			el.Message = fmt.Sprintf("Absen pulang dibuka dalam %d menit", minutesUntil(w.CheckOut.Start, now))
		default:
			el.Message = "Jendela absen pulang terlewat"
		}

		out = append(out, el)
	}
	return out
}

/* =======================================================
   Wrapper DB
   ======================================================= */

// EvaluateToday memuat jadwal efektif + absensi hari ini lalu
// memproyeksikan eligibility terhadap "now".
func EvaluateToday(ctx context.Context, db *gorm.DB, teacherID uuid.UUID, now time.Time) ([]SessionEligibility, error) {
	entries, err := schedSvc.ResolveEffectiveSchedule(ctx, db, teacherID, now)
	if err != nil {
		return nil, err
	}

	setting, err := setModel.GetActiveSetting(db.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	var records []m.AttendanceRecordModel
	if err := db.WithContext(ctx).
		Where("attendance_record_teacher_id = ? AND attendance_record_date = ?",
			teacherID, now.Format("2006-01-02")).
		Find(&records).Error; err != nil {
		return nil, err
	}

	return EvaluateEligibility(entries, setting, records, now), nil
}
