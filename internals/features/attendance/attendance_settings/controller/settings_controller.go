// file: internals/features/attendance/attendance_settings/controller/settings_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "absensiku_backend/internals/features/attendance/attendance_settings/dto"
	m "absensiku_backend/internals/features/attendance/attendance_settings/model"
	helper "absensiku_backend/internals/helpers"
)

type AttendanceSettingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AttendanceSettingController {
	return &AttendanceSettingController{DB: db, Validate: v}
}

/* =========================
   Setting (satu baris aktif)
   ========================= */

func (ctl *AttendanceSettingController) GetSetting(c *fiber.Ctx) error {
	s, err := m.GetActiveSetting(ctl.DB.WithContext(c.Context()))
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if s == nil {
		// Belum dikonfigurasi → bukan error; sistem jalan degradasi
		return helper.JsonOK(c, "Pengaturan absensi belum dikonfigurasi", nil)
	}
	return helper.JsonOK(c, "", s)
}

// UpdateSetting — upsert baris setting aktif (admin).
func (ctl *AttendanceSettingController) UpdateSetting(c *fiber.Ctx) error {
	var req d.UpdateAttendanceSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		}
	}

	var row m.AttendanceSettingModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		existing, err := m.GetActiveSetting(tx)
		if err != nil {
			return err
		}
		if existing != nil {
			row = *existing
		}
		req.ApplyToModel(&row)
		return tx.Save(&row).Error
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Pengaturan absensi disimpan", row)
}

/* =========================
   Campus locations (geofence)
   ========================= */

func (ctl *AttendanceSettingController) ListCampusLocations(c *fiber.Ctx) error {
	var rows []m.CampusLocationModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("campus_location_code ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Daftar lokasi kampus", rows)
}

// UpsertCampusLocation — create/update geofence kampus by kode.
func (ctl *AttendanceSettingController) UpsertCampusLocation(c *fiber.Ctx) error {
	var req d.UpsertCampusLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		}
	}

	code := strings.TrimSpace(req.CampusLocationCode)
	var row m.CampusLocationModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("campus_location_code = ?", code).First(&row).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		req.ApplyToModel(&row)
		return tx.Save(&row).Error
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Lokasi kampus disimpan", row)
}

func (ctl *AttendanceSettingController) DeleteCampusLocation(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	id, err := uuid.Parse(idStr)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, fmt.Sprintf("id invalid: %s", idStr))
	}
	res := ctl.DB.WithContext(c.Context()).
		Where("campus_location_id = ?", id).
		Delete(&m.CampusLocationModel{})
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Lokasi kampus tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Lokasi kampus dihapus", fiber.Map{"campus_location_id": id})
}
