// file: internals/features/attendance/schedule_swaps/controller/swap_controller.go
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

	d "absensiku_backend/internals/features/attendance/schedule_swaps/dto"
	m "absensiku_backend/internals/features/attendance/schedule_swaps/model"
	svc "absensiku_backend/internals/features/attendance/schedule_swaps/service"
	helper "absensiku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type SwapController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SwapController {
	return &SwapController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   Create
   ========================= */

func (ctl *SwapController) Create(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateSwapRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		}
	}

	in, err := req.ToInput(teacherID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	row, err := svc.CreateSwap(c.Context(), ctl.DB, in)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Permintaan tukar jadwal dibuat", d.NewSwapRequestResponse(*row, time.Now()))
}

/* =========================
   Respond (target)
   ========================= */

func (ctl *SwapController) Respond(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	swapID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	var req d.RespondSwapRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		}
	}

	row, err := svc.RespondToSwap(c.Context(), ctl.DB, swapID, teacherID, m.SwapTargetStatus(req.Decision))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Respon tercatat", d.NewSwapRequestResponse(*row, time.Now()))
}

/* =========================
   Cancel (pemohon)
   ========================= */

func (ctl *SwapController) Cancel(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	swapID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	if err := svc.CancelSwap(c.Context(), ctl.DB, swapID, teacherID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Permintaan tukar jadwal dibatalkan", fiber.Map{"swap_request_id": swapID})
}

/* =========================
   Lists
   ========================= */

// Outgoing — permintaan yang saya ajukan.
func (ctl *SwapController) Outgoing(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []m.SwapRequestModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Targets").
		Where("swap_request_requester_id = ?", teacherID).
		Order("swap_request_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Permintaan tukar jadwal Anda", d.NewSwapRequestResponses(rows, time.Now()))
}

// Incoming — permintaan yang menunggu/melibatkan saya sebagai target.
func (ctl *SwapController) Incoming(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []m.SwapRequestModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Targets").
		Where(`EXISTS (
			SELECT 1 FROM swap_targets
			WHERE swap_target_swap_request_id = swap_requests.swap_request_id
			  AND swap_target_teacher_id = ?)`, teacherID).
		Order("swap_request_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Permintaan tukar jadwal untuk Anda", d.NewSwapRequestResponses(rows, time.Now()))
}

// List — admin, semua permintaan + filter status efektif.
func (ctl *SwapController) List(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.Context()).Model(&m.SwapRequestModel{}).Preload("Targets")

	// Filter status diterjemahkan ke SQL SEBELUM count/offset supaya
	// pagination konsisten dengan isi halaman. Predikat "expired"
	// mencerminkan model.EffectiveStatus: kedua tanggal sudah lewat.
	today := time.Now().Format("2006-01-02")
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if s == string(m.SwapExpired) {
			db = db.Where("swap_request_tanggal_pemohon < ? AND swap_request_tanggal_target < ?", today, today)
		} else {
			db = db.
				Where("swap_request_status = ?", s).
				Where("swap_request_tanggal_pemohon >= ? OR swap_request_tanggal_target >= ?", today, today)
		}
	}

	paging := helper.ResolvePaging(c, 50, 500)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	var rows []m.SwapRequestModel
	if err := db.
		Order("swap_request_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := d.NewSwapRequestResponses(rows, time.Now())
	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar permintaan tukar jadwal", out, &p)
}
