// file: internals/features/attendance/attendance_settings/dto/settings_dto.go
package dto

import (
	"strings"

	m "absensiku_backend/internals/features/attendance/attendance_settings/model"
)

type UpdateAttendanceSettingRequest struct {
	// Toleransi menit — semua wajib, >= 0
	AttendanceSettingTolPreCheckIn   int `json:"attendance_setting_tol_pre_check_in"   validate:"min=0"`
	AttendanceSettingTolPostCheckIn  int `json:"attendance_setting_tol_post_check_in"  validate:"min=0"`
	AttendanceSettingTolPreCheckOut  int `json:"attendance_setting_tol_pre_check_out"  validate:"min=0"`
	AttendanceSettingTolPostCheckOut int `json:"attendance_setting_tol_post_check_out" validate:"min=0"`

	AttendanceSettingAutoCheckout bool `json:"attendance_setting_auto_checkout"`
}

func (r *UpdateAttendanceSettingRequest) ApplyToModel(dst *m.AttendanceSettingModel) {
	dst.AttendanceSettingTolPreCheckIn = r.AttendanceSettingTolPreCheckIn
	dst.AttendanceSettingTolPostCheckIn = r.AttendanceSettingTolPostCheckIn
	dst.AttendanceSettingTolPreCheckOut = r.AttendanceSettingTolPreCheckOut
	dst.AttendanceSettingTolPostCheckOut = r.AttendanceSettingTolPostCheckOut
	dst.AttendanceSettingAutoCheckout = r.AttendanceSettingAutoCheckout
	dst.AttendanceSettingIsActive = true
}

type UpsertCampusLocationRequest struct {
	CampusLocationCode      string  `json:"campus_location_code" validate:"required"`
	CampusLocationName      string  `json:"campus_location_name" validate:"required"`
	CampusLocationLatitude  float64 `json:"campus_location_latitude"  validate:"min=-90,max=90"`
	CampusLocationLongitude float64 `json:"campus_location_longitude" validate:"min=-180,max=180"`
	CampusLocationRadiusM   float64 `json:"campus_location_radius_m"  validate:"gt=0"`
	CampusLocationIsActive  *bool   `json:"campus_location_is_active,omitempty"`
}

func (r *UpsertCampusLocationRequest) ApplyToModel(dst *m.CampusLocationModel) {
	dst.CampusLocationCode = strings.TrimSpace(r.CampusLocationCode)
	dst.CampusLocationName = strings.TrimSpace(r.CampusLocationName)
	dst.CampusLocationLatitude = r.CampusLocationLatitude
	dst.CampusLocationLongitude = r.CampusLocationLongitude
	dst.CampusLocationRadiusM = r.CampusLocationRadiusM
	if r.CampusLocationIsActive != nil {
		dst.CampusLocationIsActive = *r.CampusLocationIsActive
	} else {
		dst.CampusLocationIsActive = true
	}
}
