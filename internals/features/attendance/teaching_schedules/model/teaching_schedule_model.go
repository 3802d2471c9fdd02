// file: internals/features/attendance/teaching_schedules/model/teaching_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   TeachingScheduleModel — map ke tabel teaching_schedules
   Jadwal mengajar mingguan berulang milik satu guru.
   ======================================================= */

type TeachingScheduleModel struct {
	// PK
	TeachingScheduleID uuid.UUID `json:"teaching_schedule_id" gorm:"type:uuid;primaryKey;column:teaching_schedule_id;default:gen_random_uuid()"`

	// Pemilik
	TeachingScheduleTeacherID uuid.UUID `json:"teaching_schedule_teacher_id" gorm:"type:uuid;not null;index:idx_teaching_schedules_teacher;column:teaching_schedule_teacher_id"`

	// Pola mingguan: 0..6 (0 = Minggu)
	TeachingScheduleDayOfWeek int `json:"teaching_schedule_day_of_week" gorm:"type:int;not null;column:teaching_schedule_day_of_week"`

	// Jam pada hari tsb (invariant: start < end, dijaga di DTO)
	TeachingScheduleStartTime time.Time `json:"teaching_schedule_start_time" gorm:"type:time;not null;column:teaching_schedule_start_time"`
	TeachingScheduleEndTime   time.Time `json:"teaching_schedule_end_time"   gorm:"type:time;not null;column:teaching_schedule_end_time"`

	// Metadata
	TeachingScheduleSubject    *string `json:"teaching_schedule_subject,omitempty" gorm:"type:varchar(120);column:teaching_schedule_subject"`
	TeachingScheduleCampusCode string  `json:"teaching_schedule_campus_code" gorm:"type:varchar(50);not null;column:teaching_schedule_campus_code"`

	TeachingScheduleIsActive bool `json:"teaching_schedule_is_active" gorm:"type:boolean;not null;default:true;column:teaching_schedule_is_active"`

	TeachingScheduleCreatedAt time.Time      `json:"teaching_schedule_created_at" gorm:"column:teaching_schedule_created_at;not null;autoCreateTime"`
	TeachingScheduleUpdatedAt time.Time      `json:"teaching_schedule_updated_at" gorm:"column:teaching_schedule_updated_at;not null;autoUpdateTime"`
	TeachingScheduleDeletedAt gorm.DeletedAt `json:"teaching_schedule_deleted_at,omitempty" gorm:"column:teaching_schedule_deleted_at;index"`
}

func (TeachingScheduleModel) TableName() string { return "teaching_schedules" }

/* =======================================================
   Helper waktu
   ======================================================= */

// At menempelkan jam mulai/selesai ke tanggal kalender tertentu
// (wall-clock lokal, bukan UTC — jadwal didefinisikan dalam waktu lokal).
func At(date, timeOfDay time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), timeOfDay.Second(), 0,
		date.Location(),
	)
}

// StartAt / EndAt: jam jadwal pada tanggal tertentu.
func (s TeachingScheduleModel) StartAt(date time.Time) time.Time {
	return At(date, s.TeachingScheduleStartTime)
}

func (s TeachingScheduleModel) EndAt(date time.Time) time.Time {
	return At(date, s.TeachingScheduleEndTime)
}
