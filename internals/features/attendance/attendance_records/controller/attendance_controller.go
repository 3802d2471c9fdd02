// file: internals/features/attendance/attendance_records/controller/attendance_controller.go
package controller

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "absensiku_backend/internals/features/attendance/attendance_records/dto"
	m "absensiku_backend/internals/features/attendance/attendance_records/model"
	svc "absensiku_backend/internals/features/attendance/attendance_records/service"
	helper "absensiku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{DB: db, Validate: v}
}

func parseDateParam(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	return time.Parse("2006-01-02", s)
}

/* =========================
   Guru: eligibility hari ini
   ========================= */

// Eligibility — proyeksi murni per request, tidak dicache.
func (ctl *AttendanceController) Eligibility(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	now := time.Now()
	result, err := svc.EvaluateToday(c.Context(), ctl.DB, teacherID, now)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Status absensi hari ini", fiber.Map{
		"date":     now.Format("2006-01-02"),
		"sessions": result,
	})
}

/* =========================
   Guru: submit absensi
   ========================= */

func (ctl *AttendanceController) Submit(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.SubmitAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		}
	}

	in, err := req.ToInput(teacherID, time.Now())
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	rec, err := svc.SubmitAttendance(c.Context(), ctl.DB, in)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	msg := "Absensi tercatat"
	if rec.AttendanceRecordOutsideRadius {
		// Advisory — diterima tapi ditandai untuk admin
		msg = "Absensi tercatat (di luar radius lokasi, dicatat untuk admin)"
	}
	return helper.JsonCreated(c, msg, rec)
}

/* =========================
   Guru: riwayat absensi sendiri
   ========================= */

func (ctl *AttendanceController) MyRecords(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	db := ctl.DB.WithContext(c.Context()).Model(&m.AttendanceRecordModel{}).
		Where("attendance_record_teacher_id = ?", teacherID)

	if s := strings.TrimSpace(c.Query("from")); s != "" {
		dt, err := parseDateParam(s)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "from invalid (YYYY-MM-DD)")
		}
		db = db.Where("attendance_record_date >= ?", dt)
	}
	if s := strings.TrimSpace(c.Query("to")); s != "" {
		dt, err := parseDateParam(s)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "to invalid (YYYY-MM-DD)")
		}
		db = db.Where("attendance_record_date <= ?", dt)
	}

	paging := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	var rows []m.AttendanceRecordModel
	if err := db.
		Order("attendance_record_date DESC, attendance_record_recorded_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Riwayat absensi Anda", rows, &p)
}

/* =========================
   Admin: list + filter
   ========================= */

type listQueryRecords struct {
	TeacherID     string `query:"teacher_id"`
	Type          string `query:"type"` // masuk|pulang
	From          string `query:"from"`
	To            string `query:"to"`
	OutsideRadius *bool  `query:"outside_radius"`
	IsMock        *bool  `query:"is_mock"`
}

func (ctl *AttendanceController) List(c *fiber.Ctx) error {
	var q listQueryRecords
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.Context()).Model(&m.AttendanceRecordModel{})

	if q.TeacherID != "" {
		if _, err := uuid.Parse(q.TeacherID); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "teacher_id invalid")
		}
		db = db.Where("attendance_record_teacher_id = ?", q.TeacherID)
	}
	if s := strings.TrimSpace(q.Type); s != "" {
		if s != string(m.AttendanceMasuk) && s != string(m.AttendancePulang) {
			return helper.JsonError(c, http.StatusBadRequest, "type must be masuk|pulang")
		}
		db = db.Where("attendance_record_type = ?", s)
	}
	if strings.TrimSpace(q.From) != "" {
		dt, err := parseDateParam(q.From)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "from invalid (YYYY-MM-DD)")
		}
		db = db.Where("attendance_record_date >= ?", dt)
	}
	if strings.TrimSpace(q.To) != "" {
		dt, err := parseDateParam(q.To)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "to invalid (YYYY-MM-DD)")
		}
		db = db.Where("attendance_record_date <= ?", dt)
	}
	if q.OutsideRadius != nil {
		db = db.Where("attendance_record_outside_radius = ?", *q.OutsideRadius)
	}
	if q.IsMock != nil {
		db = db.Where("attendance_record_is_mock = ?", *q.IsMock)
	}

	paging := helper.ResolvePaging(c, 50, 500)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	var rows []m.AttendanceRecordModel
	if err := db.
		Order("attendance_record_recorded_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar absensi", rows, &p)
}

/* =========================
   Admin: auto-complete absen pulang
   ========================= */

func (ctl *AttendanceController) AutoComplete(c *fiber.Ctx) error {
	var req d.AutoCompleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	date, err := parseDateParam(req.Date)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "date invalid (YYYY-MM-DD)")
	}

	created, err := svc.AutoCompleteCheckout(c.Context(), ctl.DB, date)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, fmt.Sprintf("%d absen pulang dilengkapi otomatis", len(created)), created)
}
