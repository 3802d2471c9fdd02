// file: internals/features/attendance/teaching_schedules/controller/teaching_schedule_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "absensiku_backend/internals/features/attendance/teaching_schedules/dto"
	m "absensiku_backend/internals/features/attendance/teaching_schedules/model"
	svc "absensiku_backend/internals/features/attendance/teaching_schedules/service"
	helper "absensiku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type TeachingScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *TeachingScheduleController {
	return &TeachingScheduleController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func parseDateParam(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	return time.Parse("2006-01-02", s)
}

/* =========================
   Query: List (admin)
   ========================= */

type listQuerySchedules struct {
	TeacherID string `query:"teacher_id"`
	DayOfWeek *int   `query:"dow"` // 0..6
	Campus    string `query:"campus"`
	Active    *bool  `query:"active"`
}

func (ctl *TeachingScheduleController) List(c *fiber.Ctx) error {
	var q listQuerySchedules
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.Context()).Model(&m.TeachingScheduleModel{})

	if q.TeacherID != "" {
		if _, err := uuid.Parse(q.TeacherID); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "teacher_id invalid")
		}
		db = db.Where("teaching_schedule_teacher_id = ?", q.TeacherID)
	}
	if q.DayOfWeek != nil {
		if *q.DayOfWeek < 0 || *q.DayOfWeek > 6 {
			return helper.JsonError(c, http.StatusBadRequest, "dow must be 0..6")
		}
		db = db.Where("teaching_schedule_day_of_week = ?", *q.DayOfWeek)
	}
	if s := strings.TrimSpace(q.Campus); s != "" {
		db = db.Where("teaching_schedule_campus_code = ?", s)
	}
	if q.Active != nil {
		db = db.Where("teaching_schedule_is_active = ?", *q.Active)
	}

	paging := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.TeachingScheduleModel
	if err := db.
		Order("teaching_schedule_day_of_week ASC, teaching_schedule_start_time ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar jadwal mengajar", rows, &p)
}

/* =========================
   GetByID
   ========================= */

func (ctl *TeachingScheduleController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	var row m.TeachingScheduleModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("teaching_schedule_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", row)
}

/* =========================
   Create / Patch / Delete (admin)
   ========================= */

func (ctl *TeachingScheduleController) Create(c *fiber.Ctx) error {
	var req d.CreateTeachingScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		}
	}

	var row m.TeachingScheduleModel
	if err := req.ApplyToModel(&row); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Jadwal mengajar dibuat", row)
}

func (ctl *TeachingScheduleController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	var req d.PatchTeachingScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		}
	}

	var row m.TeachingScheduleModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("teaching_schedule_id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(http.StatusNotFound, "Jadwal tidak ditemukan")
			}
			return err
		}
		if err := req.ApplyToModel(&row); err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		// Edit tidak mengubah histori absensi — eligibility dihitung
		// saat evaluasi, bukan disimpan.
		return tx.Save(&row).Error
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Jadwal mengajar diperbarui", row)
}

func (ctl *TeachingScheduleController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}
	// Soft delete — nonaktif, histori absensi tetap utuh
	res := ctl.DB.WithContext(c.Context()).
		Where("teaching_schedule_id = ?", id).
		Delete(&m.TeachingScheduleModel{})
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Jadwal tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Jadwal mengajar dihapus", fiber.Map{"teaching_schedule_id": id})
}

/* =========================
   Jadwal efektif (guru)
   ========================= */

// EffectiveSchedule mengembalikan jadwal efektif guru login pada ?date=
// (default hari ini), sudah memperhitungkan swap yang approved.
func (ctl *TeachingScheduleController) EffectiveSchedule(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	date := time.Now()
	if s := strings.TrimSpace(c.Query("date")); s != "" {
		dt, err := parseDateParam(s)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "date invalid (YYYY-MM-DD)")
		}
		date = dt
	}

	entries, err := svc.ResolveEffectiveSchedule(c.Context(), ctl.DB, teacherID, date)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Jadwal efektif", fiber.Map{
		"date":    date.Format("2006-01-02"),
		"entries": entries,
	})
}

// MySchedules — daftar jadwal mingguan milik guru login.
func (ctl *TeachingScheduleController) MySchedules(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []m.TeachingScheduleModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("teaching_schedule_teacher_id = ? AND teaching_schedule_is_active = ?", teacherID, true).
		Order("teaching_schedule_day_of_week ASC, teaching_schedule_start_time ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Jadwal mengajar Anda", rows)
}
