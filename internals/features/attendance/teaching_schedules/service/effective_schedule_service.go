// file: internals/features/attendance/teaching_schedules/service/effective_schedule_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	swapModel "absensiku_backend/internals/features/attendance/schedule_swaps/model"
	m "absensiku_backend/internals/features/attendance/teaching_schedules/model"
)

/* =======================================================
   Effective schedule resolver
   Jadwal efektif guru pada satu tanggal = jadwal mingguan
   miliknya ± swap yang sudah approved pada tanggal tsb.
   ======================================================= */

type Provenance string

const (
	ProvenanceOriginal  Provenance = "original"
	ProvenanceSwappedIn Provenance = "swapped_in"
)

type EffectiveEntry struct {
	Schedule   m.TeachingScheduleModel `json:"schedule"`
	Provenance Provenance              `json:"provenance"`

	// Audit: swap yang membawa sesi ini masuk (nil untuk jadwal asli)
	SwapRequestID *uuid.UUID `json:"swap_request_id,omitempty"`
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ResolveEffective — inti resolver, murni (tanpa DB).
//
// own: jadwal mingguan aktif milik guru yang weekday-nya cocok dengan date.
// swaps: swap ber-status approved yang salah satu tanggalnya = date dan
// melibatkan guru ini (sebagai pemohon atau target), Targets ter-preload.
// schedulesByID: baris jadwal untuk semua schedule id yang dirujuk swaps.
//
// Sisi pemohon dan sisi target diproses per-tanggal secara independen:
//   - pemohon kehilangan jadwalnya pada tanggal_pemohon, mendapat jadwal
//     yang ditawarkan target pada tanggal_target;
//   - target kehilangan jadwal yang ia tawarkan pada tanggal_target,
//     mendapat jadwal pemohon pada tanggal_pemohon.
//
// Removal dan addition dihitung terpisah, jadi swap resiprokal pada
// tanggal yang sama tetap benar (sesi lama hilang, sesi baru masuk).
func ResolveEffective(
	teacherID uuid.UUID,
	date time.Time,
	own []m.TeachingScheduleModel,
	swaps []swapModel.SwapRequestModel,
	schedulesByID map[uuid.UUID]m.TeachingScheduleModel,
) []EffectiveEntry {
	removed := make(map[uuid.UUID]bool)
	var gains []EffectiveEntry

	addGain := func(scheduleID, swapID uuid.UUID) {
		sched, ok := schedulesByID[scheduleID]
		if !ok {
			return
		}
		id := swapID
		gains = append(gains, EffectiveEntry{
			Schedule:      sched,
			Provenance:    ProvenanceSwappedIn,
			SwapRequestID: &id,
		})
	}

	for _, sw := range swaps {
		if sw.SwapRequestStatus != swapModel.SwapApproved {
			continue
		}

		// --- sisi pemohon
		if sw.SwapRequestRequesterID == teacherID {
			if sameDate(sw.SwapRequestTanggalPemohon, date) {
				removed[sw.SwapRequestScheduleID] = true
			}
			if sameDate(sw.SwapRequestTanggalTarget, date) {
				for _, t := range sw.Targets {
					if t.SwapTargetStatus != swapModel.SwapTargetApproved || t.SwapTargetScheduleID == nil {
						continue
					}
					addGain(*t.SwapTargetScheduleID, sw.SwapRequestID)
				}
			}
		}

		// --- sisi target
		for _, t := range sw.Targets {
			if t.SwapTargetTeacherID != teacherID || t.SwapTargetStatus != swapModel.SwapTargetApproved {
				continue
			}
			if sameDate(sw.SwapRequestTanggalTarget, date) && t.SwapTargetScheduleID != nil {
				removed[*t.SwapTargetScheduleID] = true
			}
			if sameDate(sw.SwapRequestTanggalPemohon, date) {
				addGain(sw.SwapRequestScheduleID, sw.SwapRequestID)
			}
		}
	}

	out := make([]EffectiveEntry, 0, len(own)+len(gains))
	seen := make(map[uuid.UUID]bool)
	for _, s := range own {
		if removed[s.TeachingScheduleID] || seen[s.TeachingScheduleID] {
			continue
		}
		seen[s.TeachingScheduleID] = true
		out = append(out, EffectiveEntry{Schedule: s, Provenance: ProvenanceOriginal})
	}
	for _, g := range gains {
		if seen[g.Schedule.TeachingScheduleID] {
			continue
		}
		seen[g.Schedule.TeachingScheduleID] = true
		out = append(out, g)
	}
	return out
}

/* =======================================================
   Wrapper DB
   ======================================================= */

// ResolveEffectiveSchedule memuat data lalu delegasi ke ResolveEffective.
// Guru tanpa jadwal pada tanggal tsb menghasilkan slice kosong — bukan
// error ("tidak ada tugas mengajar hari ini").
func ResolveEffectiveSchedule(ctx context.Context, db *gorm.DB, teacherID uuid.UUID, date time.Time) ([]EffectiveEntry, error) {
	tx := db.WithContext(ctx)
	day := date.Format("2006-01-02")

	// 1) Jadwal mingguan guru pada weekday tsb
	var own []m.TeachingScheduleModel
	if err := tx.
		Where("teaching_schedule_teacher_id = ? AND teaching_schedule_day_of_week = ? AND teaching_schedule_is_active = ?",
			teacherID, int(date.Weekday()), true).
		Find(&own).Error; err != nil {
		return nil, err
	}

	// 2) Swap approved yang menyentuh tanggal ini dan melibatkan guru ini
	var swaps []swapModel.SwapRequestModel
	if err := tx.
		Preload("Targets").
		Where("swap_request_status = ?", swapModel.SwapApproved).
		Where("swap_request_tanggal_pemohon = ? OR swap_request_tanggal_target = ?", day, day).
		Where(`swap_request_requester_id = ? OR EXISTS (
			SELECT 1 FROM swap_targets
			WHERE swap_target_swap_request_id = swap_requests.swap_request_id
			  AND swap_target_teacher_id = ?)`, teacherID, teacherID).
		Find(&swaps).Error; err != nil {
		return nil, err
	}

	// 3) Baris jadwal yang dirujuk swap (milik guru lain termasuk)
	idSet := make(map[uuid.UUID]bool)
	for _, sw := range swaps {
		idSet[sw.SwapRequestScheduleID] = true
		for _, t := range sw.Targets {
			if t.SwapTargetScheduleID != nil {
				idSet[*t.SwapTargetScheduleID] = true
			}
		}
	}
	schedulesByID := make(map[uuid.UUID]m.TeachingScheduleModel, len(idSet))
	if len(idSet) > 0 {
		ids := make([]uuid.UUID, 0, len(idSet))
		for id := range idSet {
			ids = append(ids, id)
		}
		var rows []m.TeachingScheduleModel
		if err := tx.Where("teaching_schedule_id IN ?", ids).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			schedulesByID[r.TeachingScheduleID] = r
		}
	}

	return ResolveEffective(teacherID, date, own, swaps, schedulesByID), nil
}
