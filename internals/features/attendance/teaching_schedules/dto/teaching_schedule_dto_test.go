package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "absensiku_backend/internals/features/attendance/teaching_schedules/model"
)

func TestCreateApplyToModel(t *testing.T) {
	req := CreateTeachingScheduleRequest{
		TeachingScheduleTeacherID:  uuid.NewString(),
		TeachingScheduleDayOfWeek:  1,
		TeachingScheduleStartTime:  "13:00",
		TeachingScheduleEndTime:    "14:45",
		TeachingScheduleCampusCode: "  kampus-1  ",
	}

	var got m.TeachingScheduleModel
	require.NoError(t, req.ApplyToModel(&got))

	assert.Equal(t, 13, got.TeachingScheduleStartTime.Hour())
	assert.Equal(t, 0, got.TeachingScheduleStartTime.Minute())
	assert.Equal(t, 14, got.TeachingScheduleEndTime.Hour())
	assert.Equal(t, 45, got.TeachingScheduleEndTime.Minute())
	assert.Equal(t, "kampus-1", got.TeachingScheduleCampusCode)
	assert.True(t, got.TeachingScheduleIsActive)
}

func TestCreateApplyToModel_Rejects(t *testing.T) {
	base := CreateTeachingScheduleRequest{
		TeachingScheduleTeacherID:  uuid.NewString(),
		TeachingScheduleDayOfWeek:  1,
		TeachingScheduleStartTime:  "13:00",
		TeachingScheduleEndTime:    "14:45",
		TeachingScheduleCampusCode: "kampus-1",
	}

	cases := []struct {
		name   string
		mutate func(*CreateTeachingScheduleRequest)
	}{
		{"jam mulai setelah jam selesai", func(r *CreateTeachingScheduleRequest) {
			r.TeachingScheduleStartTime = "15:00"
		}},
		{"jam mulai sama dengan jam selesai", func(r *CreateTeachingScheduleRequest) {
			r.TeachingScheduleStartTime = "14:45"
		}},
		{"format jam rusak", func(r *CreateTeachingScheduleRequest) {
			r.TeachingScheduleStartTime = "25:99"
		}},
		{"teacher id bukan uuid", func(r *CreateTeachingScheduleRequest) {
			r.TeachingScheduleTeacherID = "bukan-uuid"
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := base
			tc.mutate(&req)
			var got m.TeachingScheduleModel
			assert.Error(t, req.ApplyToModel(&got))
		})
	}
}

func TestParseTimeOfDay_AcceptsSeconds(t *testing.T) {
	got, err := parseTimeOfDay("07:30:15")
	require.NoError(t, err)
	assert.Equal(t, 7, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, 15, got.Second())
}

// Patch parsial tidak boleh merusak invariant jam mulai < jam selesai.
func TestPatchApplyToModel_KeepsOrdering(t *testing.T) {
	var existing m.TeachingScheduleModel
	create := CreateTeachingScheduleRequest{
		TeachingScheduleTeacherID:  uuid.NewString(),
		TeachingScheduleStartTime:  "13:00",
		TeachingScheduleEndTime:    "14:45",
		TeachingScheduleCampusCode: "kampus-1",
	}
	require.NoError(t, create.ApplyToModel(&existing))

	// Geser jam mulai melewati jam selesai lama → ditolak
	late := "15:00"
	patch := PatchTeachingScheduleRequest{TeachingScheduleStartTime: &late}
	assert.Error(t, patch.ApplyToModel(&existing))

	// Geser keduanya sekaligus → sah
	start, end := "15:00", "16:30"
	patch = PatchTeachingScheduleRequest{
		TeachingScheduleStartTime: &start,
		TeachingScheduleEndTime:   &end,
	}
	require.NoError(t, patch.ApplyToModel(&existing))
	assert.Equal(t, 15, existing.TeachingScheduleStartTime.Hour())
	assert.Equal(t, 16, existing.TeachingScheduleEndTime.Hour())
}
