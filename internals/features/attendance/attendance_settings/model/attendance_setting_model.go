// file: internals/features/attendance/attendance_settings/model/attendance_setting_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   AttendanceSettingModel — map ke tabel attendance_settings
   Satu baris aktif; toleransi dalam menit.
   ======================================================= */

type AttendanceSettingModel struct {
	// PK
	AttendanceSettingID uuid.UUID `json:"attendance_setting_id" gorm:"type:uuid;primaryKey;column:attendance_setting_id;default:gen_random_uuid()"`

	// Toleransi (menit, >= 0)
	AttendanceSettingTolPreCheckIn   int `json:"attendance_setting_tol_pre_check_in"   gorm:"type:int;not null;default:15;column:attendance_setting_tol_pre_check_in"`
	AttendanceSettingTolPostCheckIn  int `json:"attendance_setting_tol_post_check_in"  gorm:"type:int;not null;default:10;column:attendance_setting_tol_post_check_in"`
	AttendanceSettingTolPreCheckOut  int `json:"attendance_setting_tol_pre_check_out"  gorm:"type:int;not null;default:15;column:attendance_setting_tol_pre_check_out"`
	AttendanceSettingTolPostCheckOut int `json:"attendance_setting_tol_post_check_out" gorm:"type:int;not null;default:10;column:attendance_setting_tol_post_check_out"`

	// Auto-lengkapi absen pulang (dipicu admin, bukan background job)
	AttendanceSettingAutoCheckout bool `json:"attendance_setting_auto_checkout" gorm:"type:boolean;not null;default:false;column:attendance_setting_auto_checkout"`

	AttendanceSettingIsActive bool `json:"attendance_setting_is_active" gorm:"type:boolean;not null;default:true;column:attendance_setting_is_active"`

	AttendanceSettingCreatedAt time.Time `json:"attendance_setting_created_at" gorm:"column:attendance_setting_created_at;not null;autoCreateTime"`
	AttendanceSettingUpdatedAt time.Time `json:"attendance_setting_updated_at" gorm:"column:attendance_setting_updated_at;not null;autoUpdateTime"`
}

func (AttendanceSettingModel) TableName() string { return "attendance_settings" }

// GetActiveSetting mengambil satu baris setting aktif.
// Return (nil, nil) jika belum dikonfigurasi → pemanggil degradasi
// (cek jendela & geofence dilewati), bukan hard failure.
func GetActiveSetting(db *gorm.DB) (*AttendanceSettingModel, error) {
	var s AttendanceSettingModel
	err := db.
		Where("attendance_setting_is_active = ?", true).
		Order("attendance_setting_updated_at DESC").
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
