// file: internals/features/attendance/attendance_records/dto/attendance_dto.go
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "absensiku_backend/internals/features/attendance/attendance_records/model"
	svc "absensiku_backend/internals/features/attendance/attendance_records/service"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type SubmitAttendanceRequest struct {
	AttendanceRecordScheduleID string `json:"attendance_record_schedule_id" validate:"required,uuid4"`
	AttendanceRecordType       string `json:"attendance_record_type"        validate:"required,oneof=masuk pulang"`

	// Dari sensor lokasi klien; is_mock ditentukan di sensor, bukan di server
	AttendanceRecordLatitude  float64 `json:"attendance_record_latitude"  validate:"min=-90,max=90"`
	AttendanceRecordLongitude float64 `json:"attendance_record_longitude" validate:"min=-180,max=180"`
	AttendanceRecordAccuracyM float64 `json:"attendance_record_accuracy_m" validate:"min=0"`
	AttendanceRecordAddress   *string `json:"attendance_record_address,omitempty"`
	AttendanceRecordIsMock    bool    `json:"attendance_record_is_mock"`

	AttendanceRecordDeviceInfo datatypes.JSON `json:"attendance_record_device_info,omitempty"`

	// Referensi foto hasil upload (upload-nya di layanan lain)
	AttendanceRecordPhotoURL *string `json:"attendance_record_photo_url,omitempty"`
}

func (r *SubmitAttendanceRequest) ToInput(teacherID uuid.UUID, now time.Time) (svc.SubmitAttendanceInput, error) {
	scheduleID, err := uuid.Parse(r.AttendanceRecordScheduleID)
	if err != nil {
		return svc.SubmitAttendanceInput{}, fmt.Errorf("schedule_id tidak valid")
	}
	return svc.SubmitAttendanceInput{
		TeacherID:  teacherID,
		ScheduleID: scheduleID,
		Type:       m.AttendanceType(r.AttendanceRecordType),
		Latitude:   r.AttendanceRecordLatitude,
		Longitude:  r.AttendanceRecordLongitude,
		AccuracyM:  r.AttendanceRecordAccuracyM,
		Address:    r.AttendanceRecordAddress,
		IsMock:     r.AttendanceRecordIsMock,
		DeviceInfo: r.AttendanceRecordDeviceInfo,
		PhotoURL:   r.AttendanceRecordPhotoURL,
		Now:        now,
	}, nil
}

type AutoCompleteRequest struct {
	Date string `json:"date" validate:"required"` // YYYY-MM-DD
}
