// file: internals/features/attendance/schedule_swaps/dto/swap_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	m "absensiku_backend/internals/features/attendance/schedule_swaps/model"
	svc "absensiku_backend/internals/features/attendance/schedule_swaps/service"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateSwapTargetRequest struct {
	SwapTargetTeacherID  string  `json:"swap_target_teacher_id" validate:"required,uuid4"`
	SwapTargetScheduleID *string `json:"swap_target_schedule_id,omitempty" validate:"omitempty,uuid4"`
}

type CreateSwapRequestRequest struct {
	SwapRequestScheduleID     string `json:"swap_request_schedule_id"     validate:"required,uuid4"`
	SwapRequestTanggalPemohon string `json:"swap_request_tanggal_pemohon" validate:"required"` // YYYY-MM-DD
	SwapRequestTanggalTarget  string `json:"swap_request_tanggal_target"  validate:"required"`
	SwapRequestReason         string `json:"swap_request_reason"`

	Targets []CreateSwapTargetRequest `json:"targets" validate:"required,min=1,dive"`
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("tanggal tidak valid (YYYY-MM-DD)")
	}
	return t, nil
}

func (r *CreateSwapRequestRequest) ToInput(requesterID uuid.UUID) (svc.CreateSwapInput, error) {
	scheduleID, err := uuid.Parse(r.SwapRequestScheduleID)
	if err != nil {
		return svc.CreateSwapInput{}, fmt.Errorf("schedule_id tidak valid")
	}
	pemohon, err := parseDate(r.SwapRequestTanggalPemohon)
	if err != nil {
		return svc.CreateSwapInput{}, err
	}
	target, err := parseDate(r.SwapRequestTanggalTarget)
	if err != nil {
		return svc.CreateSwapInput{}, err
	}

	in := svc.CreateSwapInput{
		RequesterID:    requesterID,
		ScheduleID:     scheduleID,
		TanggalPemohon: pemohon,
		TanggalTarget:  target,
		Reason:         strings.TrimSpace(r.SwapRequestReason),
	}
	for _, t := range r.Targets {
		teacherID, err := uuid.Parse(t.SwapTargetTeacherID)
		if err != nil {
			return svc.CreateSwapInput{}, fmt.Errorf("target teacher_id tidak valid")
		}
		tgt := svc.CreateSwapTarget{TeacherID: teacherID}
		if t.SwapTargetScheduleID != nil {
			sid, err := uuid.Parse(*t.SwapTargetScheduleID)
			if err != nil {
				return svc.CreateSwapInput{}, fmt.Errorf("target schedule_id tidak valid")
			}
			tgt.ScheduleID = &sid
		}
		in.Targets = append(in.Targets, tgt)
	}
	return in, nil
}

type RespondSwapRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
}

/* =======================================================
   Response DTO — status tersimpan + overlay expired
   ======================================================= */

type SwapRequestResponse struct {
	m.SwapRequestModel
	SwapRequestEffectiveStatus m.SwapStatus `json:"swap_request_effective_status"`
}

func NewSwapRequestResponse(r m.SwapRequestModel, now time.Time) SwapRequestResponse {
	return SwapRequestResponse{
		SwapRequestModel:           r,
		SwapRequestEffectiveStatus: r.EffectiveStatus(now),
	}
}

func NewSwapRequestResponses(rows []m.SwapRequestModel, now time.Time) []SwapRequestResponse {
	out := make([]SwapRequestResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, NewSwapRequestResponse(r, now))
	}
	return out
}
