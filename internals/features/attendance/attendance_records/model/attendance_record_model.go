// file: internals/features/attendance/attendance_records/model/attendance_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =======================================================
   Enum
   ======================================================= */

type AttendanceType string

const (
	AttendanceMasuk  AttendanceType = "masuk"  // check-in
	AttendancePulang AttendanceType = "pulang" // check-out
)

type AttendanceStatus string

const (
	AttendanceValid         AttendanceStatus = "valid"
	AttendanceAutoCompleted AttendanceStatus = "auto_completed"
)

/* =======================================================
   AttendanceRecordModel — map ke tabel attendance_records
   Fakta immutable (append-only): tidak pernah di-update/delete.
   ======================================================= */

type AttendanceRecordModel struct {
	// PK
	AttendanceRecordID uuid.UUID `json:"attendance_record_id" gorm:"type:uuid;primaryKey;column:attendance_record_id;default:gen_random_uuid()"`

	// Kunci unik domain: satu event per (guru, jadwal, tanggal, tipe).
	// Index unik di storage adalah penjaga otoritatif; service hanya
	// pre-check supaya errornya enak dibaca.
	AttendanceRecordTeacherID  uuid.UUID      `json:"attendance_record_teacher_id"  gorm:"type:uuid;not null;uniqueIndex:uq_attendance_once,priority:1;column:attendance_record_teacher_id"`
	AttendanceRecordScheduleID uuid.UUID      `json:"attendance_record_schedule_id" gorm:"type:uuid;not null;uniqueIndex:uq_attendance_once,priority:2;column:attendance_record_schedule_id"`
	AttendanceRecordDate       time.Time      `json:"attendance_record_date"        gorm:"type:date;not null;uniqueIndex:uq_attendance_once,priority:3;column:attendance_record_date"`
	AttendanceRecordType       AttendanceType `json:"attendance_record_type"        gorm:"type:text;not null;uniqueIndex:uq_attendance_once,priority:4;column:attendance_record_type"`

	AttendanceRecordRecordedAt time.Time `json:"attendance_record_recorded_at" gorm:"column:attendance_record_recorded_at;not null"`

	// Lokasi
	AttendanceRecordLatitude  float64 `json:"attendance_record_latitude"  gorm:"type:double precision;not null;column:attendance_record_latitude"`
	AttendanceRecordLongitude float64 `json:"attendance_record_longitude" gorm:"type:double precision;not null;column:attendance_record_longitude"`
	AttendanceRecordAccuracyM float64 `json:"attendance_record_accuracy_m" gorm:"type:double precision;not null;default:0;column:attendance_record_accuracy_m"`
	AttendanceRecordAddress   *string `json:"attendance_record_address,omitempty" gorm:"type:text;column:attendance_record_address"`

	// Flag dari sensor lokasi klien (mock GPS) — hard reject saat submit;
	// disimpan untuk audit kalau lolos lewat jalur lain.
	AttendanceRecordIsMock bool `json:"attendance_record_is_mock" gorm:"type:boolean;not null;default:false;column:attendance_record_is_mock"`

	// Geofence advisory: dicatat, tidak memblokir
	AttendanceRecordDistanceM     *float64 `json:"attendance_record_distance_m,omitempty" gorm:"type:double precision;column:attendance_record_distance_m"`
	AttendanceRecordOutsideRadius bool     `json:"attendance_record_outside_radius" gorm:"type:boolean;not null;default:false;column:attendance_record_outside_radius"`

	// Metadata perangkat + bukti foto (upload-nya urusan layanan lain)
	AttendanceRecordDeviceInfo datatypes.JSON `json:"attendance_record_device_info,omitempty" gorm:"type:jsonb;column:attendance_record_device_info"`
	AttendanceRecordPhotoURL   *string        `json:"attendance_record_photo_url,omitempty" gorm:"type:text;column:attendance_record_photo_url"`

	AttendanceRecordStatus AttendanceStatus `json:"attendance_record_status" gorm:"type:text;not null;default:'valid';column:attendance_record_status"`

	AttendanceRecordCreatedAt time.Time `json:"attendance_record_created_at" gorm:"column:attendance_record_created_at;not null;autoCreateTime"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
