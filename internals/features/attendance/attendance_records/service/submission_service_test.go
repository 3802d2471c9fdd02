package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "absensiku_backend/internals/features/attendance/attendance_records/model"
	setModel "absensiku_backend/internals/features/attendance/attendance_settings/model"
)

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T", err)
	return fe.Code
}

// Rantai aturan atas sesi 13:00–14:45, toleransi (15,10,15,10):
// jendela masuk [12:45, 13:10], jendela pulang [14:30, 14:55].
func TestCheckSubmissionRules(t *testing.T) {
	sched := sessionSchedule(13, 0, 14, 45)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	w := WindowsFor(sched, date, 15, 10, 15, 10)

	cases := []struct {
		name      string
		typ       m.AttendanceType
		now       time.Time
		duplicate bool
		hasMasuk  bool
		isMock    bool
		windows   *AttendanceWindows
		wantCode  int // 0 = diterima
	}{
		{
			name: "masuk di dalam jendela diterima",
			typ:  m.AttendanceMasuk, now: at(date, 12, 50), windows: &w,
		},
		{
			name: "tepat di batas bawah jendela diterima",
			typ:  m.AttendanceMasuk, now: at(date, 12, 45), windows: &w,
		},
		{
			name: "tepat di batas atas jendela diterima",
			typ:  m.AttendanceMasuk, now: at(date, 13, 10), windows: &w,
		},
		{
			name: "satu menit sebelum jendela ditolak",
			typ:  m.AttendanceMasuk, now: at(date, 12, 44), windows: &w,
			wantCode: fiber.StatusBadRequest,
		},
		{
			name: "satu menit setelah jendela ditolak",
			typ:  m.AttendanceMasuk, now: at(date, 13, 11), windows: &w,
			wantCode: fiber.StatusBadRequest,
		},
		{
			name: "duplikat ditolak meski di dalam jendela",
			typ:  m.AttendanceMasuk, now: at(date, 12, 50), duplicate: true, windows: &w,
			wantCode: fiber.StatusConflict,
		},
		{
			name: "lokasi mock ditolak meski jendela dan lokasi valid",
			typ:  m.AttendanceMasuk, now: at(date, 12, 50), isMock: true, windows: &w,
			wantCode: fiber.StatusForbidden,
		},
		{
			name: "lokasi mock ditolak juga saat degradasi tanpa setting",
			typ:  m.AttendanceMasuk, now: at(date, 12, 50), isMock: true,
			wantCode: fiber.StatusForbidden,
		},
		{
			name: "pulang tanpa masuk ditolak",
			typ:  m.AttendancePulang, now: at(date, 14, 40), windows: &w,
			wantCode: fiber.StatusBadRequest,
		},
		{
			name: "pulang setelah masuk diterima",
			typ:  m.AttendancePulang, now: at(date, 14, 40), hasMasuk: true, windows: &w,
		},
		{
			name: "pulang memakai jendela pulang, bukan jendela masuk",
			typ:  m.AttendancePulang, now: at(date, 13, 0), hasMasuk: true, windows: &w,
			wantCode: fiber.StatusBadRequest,
		},
		{
			name: "tanpa setting cek jendela dilewati",
			typ:  m.AttendanceMasuk, now: at(date, 6, 0),
		},
		{
			name: "duplikat menang atas aturan lain",
			typ:  m.AttendancePulang, now: at(date, 6, 0), duplicate: true, isMock: true,
			wantCode: fiber.StatusConflict,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkSubmissionRules(tc.typ, tc.now, tc.duplicate, tc.hasMasuk, tc.isMock, tc.windows)
			if tc.wantCode == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.wantCode, fiberCode(t, err))
		})
	}
}

// Di luar radius: submit tetap diterima, hanya ditandai untuk admin.
func TestGeofenceAdvisory(t *testing.T) {
	loc := &setModel.CampusLocationModel{
		CampusLocationCode:      "kampus-1",
		CampusLocationLatitude:  -6.2,
		CampusLocationLongitude: 106.8,
		CampusLocationRadiusM:   100,
	}

	// Tepat di pusat
	d, outside := geofenceAdvisory(-6.2, 106.8, loc)
	require.NotNil(t, d)
	assert.InDelta(t, 0, *d, 0.001)
	assert.False(t, outside)

	// ~111 m ke utara → di luar radius 100 m, tapi tetap dicatat
	d, outside = geofenceAdvisory(-6.199, 106.8, loc)
	require.NotNil(t, d)
	assert.Greater(t, *d, 100.0)
	assert.True(t, outside)

	// Kampus tanpa geofence → tidak ada jarak, tidak ada flag
	d, outside = geofenceAdvisory(-6.2, 106.8, nil)
	assert.Nil(t, d)
	assert.False(t, outside)
}
