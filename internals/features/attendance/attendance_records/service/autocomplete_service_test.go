package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	m "absensiku_backend/internals/features/attendance/attendance_records/model"
)

func rec(teacher, schedule uuid.UUID, typ m.AttendanceType) m.AttendanceRecordModel {
	return m.AttendanceRecordModel{
		AttendanceRecordID:         uuid.New(),
		AttendanceRecordTeacherID:  teacher,
		AttendanceRecordScheduleID: schedule,
		AttendanceRecordType:       typ,
	}
}

func TestMissingCheckouts(t *testing.T) {
	teacherA := uuid.New()
	teacherB := uuid.New()
	s1 := uuid.New()
	s2 := uuid.New()

	complete := []m.AttendanceRecordModel{
		rec(teacherA, s1, m.AttendanceMasuk),
		rec(teacherA, s1, m.AttendancePulang),
	}
	onlyMasuk := rec(teacherB, s1, m.AttendanceMasuk)
	otherSession := rec(teacherA, s2, m.AttendanceMasuk)

	t.Run("pasangan lengkap dilewati", func(t *testing.T) {
		assert.Empty(t, missingCheckouts(complete))
	})

	t.Run("masuk tanpa pulang terpilih", func(t *testing.T) {
		got := missingCheckouts(append(complete, onlyMasuk))
		assert.Len(t, got, 1)
		assert.Equal(t, onlyMasuk.AttendanceRecordID, got[0].AttendanceRecordID)
	})

	t.Run("pulang per sesi, bukan per guru", func(t *testing.T) {
		// teacherA sudah pulang di s1 tapi belum di s2
		got := missingCheckouts(append(complete, otherSession))
		assert.Len(t, got, 1)
		assert.Equal(t, s2, got[0].AttendanceRecordScheduleID)
	})

	t.Run("pulang yatim tidak menghasilkan apa-apa", func(t *testing.T) {
		assert.Empty(t, missingCheckouts([]m.AttendanceRecordModel{
			rec(teacherA, s1, m.AttendancePulang),
		}))
	})

	t.Run("kosong", func(t *testing.T) {
		assert.Empty(t, missingCheckouts(nil))
	})
}
