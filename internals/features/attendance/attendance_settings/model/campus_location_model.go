// file: internals/features/attendance/attendance_settings/model/campus_location_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   CampusLocationModel — map ke tabel campus_locations
   Pusat geofence per kampus (lingkaran, radius meter).
   ======================================================= */

type CampusLocationModel struct {
	// PK
	CampusLocationID uuid.UUID `json:"campus_location_id" gorm:"type:uuid;primaryKey;column:campus_location_id;default:gen_random_uuid()"`

	// Kode kampus — dirujuk oleh teaching_schedules.teaching_schedule_campus_code
	CampusLocationCode string `json:"campus_location_code" gorm:"type:varchar(50);not null;uniqueIndex:uq_campus_locations_code;column:campus_location_code"`
	CampusLocationName string `json:"campus_location_name" gorm:"type:varchar(120);not null;column:campus_location_name"`

	// Pusat geofence
	CampusLocationLatitude  float64 `json:"campus_location_latitude"  gorm:"type:double precision;not null;column:campus_location_latitude"`
	CampusLocationLongitude float64 `json:"campus_location_longitude" gorm:"type:double precision;not null;column:campus_location_longitude"`
	CampusLocationRadiusM   float64 `json:"campus_location_radius_m"  gorm:"type:double precision;not null;default:100;column:campus_location_radius_m"`

	CampusLocationIsActive bool `json:"campus_location_is_active" gorm:"type:boolean;not null;default:true;column:campus_location_is_active"`

	CampusLocationCreatedAt time.Time      `json:"campus_location_created_at" gorm:"column:campus_location_created_at;not null;autoCreateTime"`
	CampusLocationUpdatedAt time.Time      `json:"campus_location_updated_at" gorm:"column:campus_location_updated_at;not null;autoUpdateTime"`
	CampusLocationDeletedAt gorm.DeletedAt `json:"campus_location_deleted_at,omitempty" gorm:"column:campus_location_deleted_at;index"`
}

func (CampusLocationModel) TableName() string { return "campus_locations" }

// FindActiveByCode ambil geofence kampus by kode.
// (nil, nil) jika tidak dikonfigurasi → geofence dilewati.
func FindActiveByCode(db *gorm.DB, code string) (*CampusLocationModel, error) {
	if code == "" {
		return nil, nil
	}
	var loc CampusLocationModel
	err := db.
		Where("campus_location_code = ? AND campus_location_is_active = ?", code, true).
		First(&loc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &loc, nil
}
