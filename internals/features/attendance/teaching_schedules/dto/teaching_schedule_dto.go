// file: internals/features/attendance/teaching_schedules/dto/teaching_schedule_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	m "absensiku_backend/internals/features/attendance/teaching_schedules/model"
)

/* =======================================================
   Util & parsing
   ======================================================= */

// parseTimeOfDay menerima "HH:mm" atau "HH:mm:ss"
func parseTimeOfDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("format jam tidak valid (HH:mm)")
}

func timeOfDayLess(a, b time.Time) bool {
	am := a.Hour()*3600 + a.Minute()*60 + a.Second()
	bm := b.Hour()*3600 + b.Minute()*60 + b.Second()
	return am < bm
}

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateTeachingScheduleRequest struct {
	TeachingScheduleTeacherID  string  `json:"teaching_schedule_teacher_id" validate:"required,uuid4"`
	TeachingScheduleDayOfWeek  int     `json:"teaching_schedule_day_of_week" validate:"min=0,max=6"`
	TeachingScheduleStartTime  string  `json:"teaching_schedule_start_time" validate:"required"` // "HH:mm"
	TeachingScheduleEndTime    string  `json:"teaching_schedule_end_time"   validate:"required"`
	TeachingScheduleSubject    *string `json:"teaching_schedule_subject,omitempty"`
	TeachingScheduleCampusCode string  `json:"teaching_schedule_campus_code" validate:"required"`
	TeachingScheduleIsActive   *bool   `json:"teaching_schedule_is_active,omitempty"`
}

func (r *CreateTeachingScheduleRequest) ApplyToModel(dst *m.TeachingScheduleModel) error {
	teacherID, err := uuid.Parse(r.TeachingScheduleTeacherID)
	if err != nil {
		return fmt.Errorf("teacher_id tidak valid")
	}
	start, err := parseTimeOfDay(r.TeachingScheduleStartTime)
	if err != nil {
		return err
	}
	end, err := parseTimeOfDay(r.TeachingScheduleEndTime)
	if err != nil {
		return err
	}
	// Invariant: start < end
	if !timeOfDayLess(start, end) {
		return fmt.Errorf("jam mulai harus sebelum jam selesai")
	}

	dst.TeachingScheduleTeacherID = teacherID
	dst.TeachingScheduleDayOfWeek = r.TeachingScheduleDayOfWeek
	dst.TeachingScheduleStartTime = start
	dst.TeachingScheduleEndTime = end
	dst.TeachingScheduleSubject = r.TeachingScheduleSubject
	dst.TeachingScheduleCampusCode = strings.TrimSpace(r.TeachingScheduleCampusCode)
	if r.TeachingScheduleIsActive != nil {
		dst.TeachingScheduleIsActive = *r.TeachingScheduleIsActive
	} else {
		dst.TeachingScheduleIsActive = true
	}
	return nil
}

type PatchTeachingScheduleRequest struct {
	// Semua optional — hanya field non-nil yang di-apply
	TeachingScheduleDayOfWeek  *int    `json:"teaching_schedule_day_of_week,omitempty" validate:"omitempty,min=0,max=6"`
	TeachingScheduleStartTime  *string `json:"teaching_schedule_start_time,omitempty"`
	TeachingScheduleEndTime    *string `json:"teaching_schedule_end_time,omitempty"`
	TeachingScheduleSubject    *string `json:"teaching_schedule_subject,omitempty"`
	TeachingScheduleCampusCode *string `json:"teaching_schedule_campus_code,omitempty"`
	TeachingScheduleIsActive   *bool   `json:"teaching_schedule_is_active,omitempty"`
}

func (r *PatchTeachingScheduleRequest) ApplyToModel(dst *m.TeachingScheduleModel) error {
	if r.TeachingScheduleDayOfWeek != nil {
		dst.TeachingScheduleDayOfWeek = *r.TeachingScheduleDayOfWeek
	}
	if r.TeachingScheduleStartTime != nil {
		t, err := parseTimeOfDay(*r.TeachingScheduleStartTime)
		if err != nil {
			return err
		}
		dst.TeachingScheduleStartTime = t
	}
	if r.TeachingScheduleEndTime != nil {
		t, err := parseTimeOfDay(*r.TeachingScheduleEndTime)
		if err != nil {
			return err
		}
		dst.TeachingScheduleEndTime = t
	}
	if !timeOfDayLess(dst.TeachingScheduleStartTime, dst.TeachingScheduleEndTime) {
		return fmt.Errorf("jam mulai harus sebelum jam selesai")
	}
	if r.TeachingScheduleSubject != nil {
		dst.TeachingScheduleSubject = r.TeachingScheduleSubject
	}
	if r.TeachingScheduleCampusCode != nil {
		dst.TeachingScheduleCampusCode = strings.TrimSpace(*r.TeachingScheduleCampusCode)
	}
	if r.TeachingScheduleIsActive != nil {
		dst.TeachingScheduleIsActive = *r.TeachingScheduleIsActive
	}
	return nil
}
