package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "absensiku_backend/internals/features/attendance/attendance_records/model"
	setModel "absensiku_backend/internals/features/attendance/attendance_settings/model"
	schedModel "absensiku_backend/internals/features/attendance/teaching_schedules/model"
	schedSvc "absensiku_backend/internals/features/attendance/teaching_schedules/service"
)

func defaultSetting() *setModel.AttendanceSettingModel {
	return &setModel.AttendanceSettingModel{
		AttendanceSettingTolPreCheckIn:   15,
		AttendanceSettingTolPostCheckIn:  10,
		AttendanceSettingTolPreCheckOut:  15,
		AttendanceSettingTolPostCheckOut: 10,
		AttendanceSettingIsActive:        true,
	}
}

func entryFor(sched schedModel.TeachingScheduleModel) []schedSvc.EffectiveEntry {
	return []schedSvc.EffectiveEntry{{Schedule: sched, Provenance: schedSvc.ProvenanceOriginal}}
}

func record(sched schedModel.TeachingScheduleModel, typ m.AttendanceType) m.AttendanceRecordModel {
	return m.AttendanceRecordModel{
		AttendanceRecordID:         uuid.New(),
		AttendanceRecordTeacherID:  sched.TeachingScheduleTeacherID,
		AttendanceRecordScheduleID: sched.TeachingScheduleID,
		AttendanceRecordType:       typ,
	}
}

// Sesi 13:00–14:45, toleransi default. Klasifikasi sepanjang hari.
func TestEvaluateEligibility_Timeline(t *testing.T) {
	sched := sessionSchedule(13, 0, 14, 45)
	sched.TeachingScheduleID = uuid.New()
	sched.TeachingScheduleTeacherID = uuid.New()
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	setting := defaultSetting()

	cases := []struct {
		name        string
		now         time.Time
		records     []m.AttendanceRecordModel
		canIn       bool
		canOut      bool
		wantMessage string
	}{
		{
			name:        "sebelum jendela masuk",
			now:         at(date, 12, 30),
			canIn:       false,
			canOut:      false,
			wantMessage: "Absen masuk dibuka dalam 15 menit",
		},
		{
			name:        "jendela masuk terbuka",
			now:         at(date, 12, 46),
			canIn:       true,
			canOut:      false,
			wantMessage: "Silakan absen masuk, sisa 24 menit",
		},
		{
			name:        "batas atas jendela masuk inklusif",
			now:         at(date, 13, 10),
			canIn:       true,
			canOut:      false,
			wantMessage: "Silakan absen masuk, sisa 0 menit",
		},
		{
			name:        "jendela masuk terlewat tanpa absen",
			now:         at(date, 13, 11),
			canIn:       false,
			canOut:      false,
			wantMessage: "Jendela absen masuk terlewat",
		},
		{
			name:        "sudah masuk, menunggu jendela pulang",
			now:         at(date, 14, 0),
			records:     []m.AttendanceRecordModel{record(sched, m.AttendanceMasuk)},
			canIn:       false,
			canOut:      false,
			wantMessage: "Absen pulang dibuka dalam 30 menit",
		},
		{
			name:        "jendela pulang terbuka",
			now:         at(date, 14, 30),
			records:     []m.AttendanceRecordModel{record(sched, m.AttendanceMasuk)},
			canIn:       false,
			canOut:      true,
			wantMessage: "Silakan absen pulang, sisa 25 menit",
		},
		{
			name:        "jendela pulang terlewat",
			now:         at(date, 14, 56),
			records:     []m.AttendanceRecordModel{record(sched, m.AttendanceMasuk)},
			canIn:       false,
			canOut:      false,
			wantMessage: "Jendela absen pulang terlewat",
		},
		{
			name: "sudah lengkap",
			now:  at(date, 14, 40),
			records: []m.AttendanceRecordModel{
				record(sched, m.AttendanceMasuk),
				record(sched, m.AttendancePulang),
			},
			canIn:       false,
			canOut:      false,
			wantMessage: "Absensi hari ini sudah lengkap",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EvaluateEligibility(entryFor(sched), setting, tc.records, tc.now)
			require.Len(t, got, 1)
			assert.Equal(t, tc.canIn, got[0].CanCheckIn)
			assert.Equal(t, tc.canOut, got[0].CanCheckOut)
			assert.Equal(t, tc.wantMessage, got[0].Message)
		})
	}
}

// Absen pulang tidak pernah bisa tanpa absen masuk, bahkan di dalam
// jendela pulang.
func TestEvaluateEligibility_CheckOutRequiresCheckIn(t *testing.T) {
	sched := sessionSchedule(13, 0, 14, 45)
	sched.TeachingScheduleID = uuid.New()
	sched.TeachingScheduleTeacherID = uuid.New()
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	got := EvaluateEligibility(entryFor(sched), defaultSetting(), nil, at(date, 14, 40))
	require.Len(t, got, 1)
	assert.False(t, got[0].HasCheckedIn)
	assert.False(t, got[0].CanCheckOut)
}

// Degradasi tanpa setting: batas waktu tidak diberlakukan, tetapi gate
// "harus sudah masuk" tetap berlaku.
func TestEvaluateEligibility_NilSetting(t *testing.T) {
	sched := sessionSchedule(13, 0, 14, 45)
	sched.TeachingScheduleID = uuid.New()
	sched.TeachingScheduleTeacherID = uuid.New()
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	// Jauh di luar jendela mana pun — tetap boleh masuk, pesan tanpa
	// hitung mundur menit (tidak ada jendela untuk dihitung)
	got := EvaluateEligibility(entryFor(sched), nil, nil, at(date, 6, 0))
	require.Len(t, got, 1)
	assert.True(t, got[0].CanCheckIn)
	assert.False(t, got[0].CanCheckOut)
	assert.Equal(t, "Silakan absen masuk", got[0].Message)

	// Juga setelah jadwal lewat — tidak boleh muncul "sisa -N menit"
	got = EvaluateEligibility(entryFor(sched), nil, nil, at(date, 20, 0))
	require.Len(t, got, 1)
	assert.True(t, got[0].CanCheckIn)
	assert.Equal(t, "Silakan absen masuk", got[0].Message)

	// Setelah masuk, langsung boleh pulang
	got = EvaluateEligibility(entryFor(sched), nil,
		[]m.AttendanceRecordModel{record(sched, m.AttendanceMasuk)}, at(date, 6, 0))
	require.Len(t, got, 1)
	assert.False(t, got[0].CanCheckIn)
	assert.True(t, got[0].CanCheckOut)
	assert.Equal(t, "Silakan absen pulang", got[0].Message)
}

// Catatan absensi sesi lain tidak bocor antar sesi.
func TestEvaluateEligibility_PerScheduleIsolation(t *testing.T) {
	teacher := uuid.New()
	s1 := sessionSchedule(8, 0, 9, 30)
	s1.TeachingScheduleID = uuid.New()
	s1.TeachingScheduleTeacherID = teacher
	s2 := sessionSchedule(8, 0, 9, 30)
	s2.TeachingScheduleID = uuid.New()
	s2.TeachingScheduleTeacherID = teacher

	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	entries := []schedSvc.EffectiveEntry{
		{Schedule: s1, Provenance: schedSvc.ProvenanceOriginal},
		{Schedule: s2, Provenance: schedSvc.ProvenanceOriginal},
	}

	got := EvaluateEligibility(entries, defaultSetting(),
		[]m.AttendanceRecordModel{record(s1, m.AttendanceMasuk)}, at(date, 8, 5))
	require.Len(t, got, 2)
	assert.True(t, got[0].HasCheckedIn)
	assert.False(t, got[0].CanCheckIn)
	assert.False(t, got[1].HasCheckedIn)
	assert.True(t, got[1].CanCheckIn)
}

func TestEvaluateEligibility_Empty(t *testing.T) {
	got := EvaluateEligibility(nil, defaultSetting(), nil, time.Now())
	assert.Empty(t, got)
}
