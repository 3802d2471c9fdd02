// file: internals/features/attendance/attendance_records/service/window_service.go
package service

import (
	"time"

	setModel "absensiku_backend/internals/features/attendance/attendance_settings/model"
	schedModel "absensiku_backend/internals/features/attendance/teaching_schedules/model"
)

/* =======================================================
   Window calculator
   Jendela absen masuk = [mulai - preIn, mulai + postIn]
   Jendela absen pulang = [selesai - preOut, selesai + postOut]
   Batas inklusif di kedua ujung. Semua perbandingan pakai
   wall-clock lokal — jadwal didefinisikan dalam waktu lokal.
   ======================================================= */

type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains — keanggotaan inklusif [Start, End].
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

type AttendanceWindows struct {
	CheckIn  Window `json:"check_in"`
	CheckOut Window `json:"check_out"`
}

// WindowsFor menghitung kedua jendela untuk satu jadwal pada satu tanggal.
// Toleransi 0 menghasilkan jendela degenerate (satu instan) — sah.
// Overlap antar jendela tidak divalidasi di sini; absen pulang sudah
// dijaga gate "harus sudah absen masuk" di evaluator.
func WindowsFor(sched schedModel.TeachingScheduleModel, date time.Time, preIn, postIn, preOut, postOut int) AttendanceWindows {
	start := sched.StartAt(date)
	end := sched.EndAt(date)
	return AttendanceWindows{
		CheckIn: Window{
			Start: start.Add(-time.Duration(preIn) * time.Minute),
			End:   start.Add(time.Duration(postIn) * time.Minute),
		},
		CheckOut: Window{
			Start: end.Add(-time.Duration(preOut) * time.Minute),
			End:   end.Add(time.Duration(postOut) * time.Minute),
		},
	}
}

// WindowsFromSetting — toleransi diambil dari setting aktif.
func WindowsFromSetting(sched schedModel.TeachingScheduleModel, date time.Time, s *setModel.AttendanceSettingModel) AttendanceWindows {
	if s == nil {
		// Tanpa setting: jendela degenerate tepat di jam jadwal.
		// Pemanggil yang degradasi penuh harus melewati cek jendela sendiri.
		return WindowsFor(sched, date, 0, 0, 0, 0)
	}
	return WindowsFor(sched, date,
		s.AttendanceSettingTolPreCheckIn,
		s.AttendanceSettingTolPostCheckIn,
		s.AttendanceSettingTolPreCheckOut,
		s.AttendanceSettingTolPostCheckOut,
	)
}
