package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	swapModel "absensiku_backend/internals/features/attendance/schedule_swaps/model"
	m "absensiku_backend/internals/features/attendance/teaching_schedules/model"
)

func newSchedule(teacherID uuid.UUID, dow int) m.TeachingScheduleModel {
	return m.TeachingScheduleModel{
		TeachingScheduleID:        uuid.New(),
		TeachingScheduleTeacherID: teacherID,
		TeachingScheduleDayOfWeek: dow,
		TeachingScheduleStartTime: time.Date(0, 1, 1, 13, 0, 0, 0, time.UTC),
		TeachingScheduleEndTime:   time.Date(0, 1, 1, 14, 45, 0, 0, time.UTC),
		TeachingScheduleCampusCode: "kampus-1",
		TeachingScheduleIsActive:   true,
	}
}

func approvedSwap(requesterID uuid.UUID, reqSchedule uuid.UUID, pemohon, target time.Time, targets ...swapModel.SwapTargetModel) swapModel.SwapRequestModel {
	return swapModel.SwapRequestModel{
		SwapRequestID:             uuid.New(),
		SwapRequestRequesterID:    requesterID,
		SwapRequestScheduleID:     reqSchedule,
		SwapRequestTanggalPemohon: pemohon,
		SwapRequestTanggalTarget:  target,
		SwapRequestStatus:         swapModel.SwapApproved,
		Targets:                   targets,
	}
}

func approvedTarget(teacherID uuid.UUID, scheduleID *uuid.UUID) swapModel.SwapTargetModel {
	return swapModel.SwapTargetModel{
		SwapTargetID:         uuid.New(),
		SwapTargetTeacherID:  teacherID,
		SwapTargetScheduleID: scheduleID,
		SwapTargetStatus:     swapModel.SwapTargetApproved,
	}
}

func scheduleIDs(entries []EffectiveEntry) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Schedule.TeachingScheduleID)
	}
	return out
}

func TestResolveEffective_NoSwaps(t *testing.T) {
	teacher := uuid.New()
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	own := []m.TeachingScheduleModel{newSchedule(teacher, 1)}

	got := ResolveEffective(teacher, monday, own, nil, nil)
	require.Len(t, got, 1)
	assert.Equal(t, ProvenanceOriginal, got[0].Provenance)
	assert.Nil(t, got[0].SwapRequestID)
}

func TestResolveEffective_EmptyIsNotError(t *testing.T) {
	// Tanpa jadwal dan tanpa swap → tidak ada tugas mengajar hari ini
	got := ResolveEffective(uuid.New(), time.Now(), nil, nil, nil)
	assert.Empty(t, got)
}

// Skenario pertukaran penuh: A menyerahkan sesi Senin ke B,
// B menawarkan sesi Rabu miliknya. Sesi berpindah tepat sekali,
// tanpa duplikasi dan tanpa hilang, di kedua tanggal.
func TestResolveEffective_RoundTrip(t *testing.T) {
	teacherA := uuid.New()
	teacherB := uuid.New()
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	wednesday := time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)

	sA := newSchedule(teacherA, 1) // Senin milik A
	sB := newSchedule(teacherB, 3) // Rabu milik B

	sw := approvedSwap(teacherA, sA.TeachingScheduleID, monday, wednesday,
		approvedTarget(teacherB, &sB.TeachingScheduleID))
	swaps := []swapModel.SwapRequestModel{sw}
	byID := map[uuid.UUID]m.TeachingScheduleModel{
		sA.TeachingScheduleID: sA,
		sB.TeachingScheduleID: sB,
	}

	// A di Senin: sesinya sudah diserahkan
	got := ResolveEffective(teacherA, monday, []m.TeachingScheduleModel{sA}, swaps, byID)
	assert.Empty(t, got)

	// A di Rabu: mendapat sesi B
	got = ResolveEffective(teacherA, wednesday, nil, swaps, byID)
	require.Len(t, got, 1)
	assert.Equal(t, sB.TeachingScheduleID, got[0].Schedule.TeachingScheduleID)
	assert.Equal(t, ProvenanceSwappedIn, got[0].Provenance)
	require.NotNil(t, got[0].SwapRequestID)
	assert.Equal(t, sw.SwapRequestID, *got[0].SwapRequestID)

	// B di Senin: mendapat sesi A
	got = ResolveEffective(teacherB, monday, nil, swaps, byID)
	require.Len(t, got, 1)
	assert.Equal(t, sA.TeachingScheduleID, got[0].Schedule.TeachingScheduleID)
	assert.Equal(t, ProvenanceSwappedIn, got[0].Provenance)

	// B di Rabu: sesi yang ia tawarkan hilang
	got = ResolveEffective(teacherB, wednesday, []m.TeachingScheduleModel{sB}, swaps, byID)
	assert.Empty(t, got)
}

// Coverage satu arah: target mengambil alih tanpa menawarkan jadwal balasan.
func TestResolveEffective_OneWayCoverage(t *testing.T) {
	teacherA := uuid.New()
	teacherB := uuid.New()
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	sA := newSchedule(teacherA, 1)
	sw := approvedSwap(teacherA, sA.TeachingScheduleID, monday, monday,
		approvedTarget(teacherB, nil))
	swaps := []swapModel.SwapRequestModel{sw}
	byID := map[uuid.UUID]m.TeachingScheduleModel{sA.TeachingScheduleID: sA}

	// A kehilangan sesinya, tidak mendapat apa-apa
	got := ResolveEffective(teacherA, monday, []m.TeachingScheduleModel{sA}, swaps, byID)
	assert.Empty(t, got)

	// B mendapat sesi A, tidak kehilangan apa-apa
	otherB := newSchedule(teacherB, 1)
	byID[otherB.TeachingScheduleID] = otherB
	got = ResolveEffective(teacherB, monday, []m.TeachingScheduleModel{otherB}, swaps, byID)
	assert.ElementsMatch(t,
		[]uuid.UUID{otherB.TeachingScheduleID, sA.TeachingScheduleID},
		scheduleIDs(got))
}

// Tanggal sisi pemohon dan sisi target independen — swap yang menyentuh
// tanggal lain tidak boleh memengaruhi hari ini.
func TestResolveEffective_DateIndependence(t *testing.T) {
	teacherA := uuid.New()
	teacherB := uuid.New()
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	nextMonday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	sA := newSchedule(teacherA, 1)
	sB := newSchedule(teacherB, 1)
	sw := approvedSwap(teacherA, sA.TeachingScheduleID, nextMonday, nextMonday,
		approvedTarget(teacherB, &sB.TeachingScheduleID))
	swaps := []swapModel.SwapRequestModel{sw}
	byID := map[uuid.UUID]m.TeachingScheduleModel{
		sA.TeachingScheduleID: sA,
		sB.TeachingScheduleID: sB,
	}

	// Senin minggu ini tidak tersentuh
	got := ResolveEffective(teacherA, monday, []m.TeachingScheduleModel{sA}, swaps, byID)
	require.Len(t, got, 1)
	assert.Equal(t, sA.TeachingScheduleID, got[0].Schedule.TeachingScheduleID)
	assert.Equal(t, ProvenanceOriginal, got[0].Provenance)
}

// Swap resiprokal pada tanggal yang sama: sesi lama keluar, sesi baru masuk.
func TestResolveEffective_SameDateSwap(t *testing.T) {
	teacherA := uuid.New()
	teacherB := uuid.New()
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	sA := newSchedule(teacherA, 1)
	sB := newSchedule(teacherB, 1)
	sw := approvedSwap(teacherA, sA.TeachingScheduleID, monday, monday,
		approvedTarget(teacherB, &sB.TeachingScheduleID))
	swaps := []swapModel.SwapRequestModel{sw}
	byID := map[uuid.UUID]m.TeachingScheduleModel{
		sA.TeachingScheduleID: sA,
		sB.TeachingScheduleID: sB,
	}

	got := ResolveEffective(teacherA, monday, []m.TeachingScheduleModel{sA}, swaps, byID)
	assert.Equal(t, []uuid.UUID{sB.TeachingScheduleID}, scheduleIDs(got))

	got = ResolveEffective(teacherB, monday, []m.TeachingScheduleModel{sB}, swaps, byID)
	assert.Equal(t, []uuid.UUID{sA.TeachingScheduleID}, scheduleIDs(got))
}

// Swap yang belum approved tidak memengaruhi jadwal efektif.
func TestResolveEffective_IgnoresNonApproved(t *testing.T) {
	teacherA := uuid.New()
	teacherB := uuid.New()
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	sA := newSchedule(teacherA, 1)
	for _, status := range []swapModel.SwapStatus{
		swapModel.SwapPending, swapModel.SwapRejected, swapModel.SwapCancelled,
	} {
		sw := approvedSwap(teacherA, sA.TeachingScheduleID, monday, monday,
			approvedTarget(teacherB, nil))
		sw.SwapRequestStatus = status

		got := ResolveEffective(teacherA, monday, []m.TeachingScheduleModel{sA},
			[]swapModel.SwapRequestModel{sw},
			map[uuid.UUID]m.TeachingScheduleModel{sA.TeachingScheduleID: sA})
		require.Len(t, got, 1, "status %s", status)
		assert.Equal(t, ProvenanceOriginal, got[0].Provenance)
	}
}
