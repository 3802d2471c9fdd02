// file: internals/features/attendance/schedule_swaps/service/swap_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "absensiku_backend/internals/features/attendance/schedule_swaps/model"
	schedModel "absensiku_backend/internals/features/attendance/teaching_schedules/model"
)

/* =======================================================
   Swap request state machine
   pending → {approved, rejected, cancelled}; semuanya terminal.
   "expired" hanya overlay saat baca (model.EffectiveStatus).
   Respon target + rekalkulasi agregat = satu transaksi dengan
   row lock di parent supaya dua respon bersamaan tidak saling
   menimpa hasil "semua target sudah setuju?".
   ======================================================= */

type CreateSwapTarget struct {
	TeacherID  uuid.UUID
	ScheduleID *uuid.UUID // jadwal yang ditawarkan target; nil = coverage satu arah
}

type CreateSwapInput struct {
	RequesterID    uuid.UUID
	ScheduleID     uuid.UUID // jadwal pemohon yang diserahkan
	TanggalPemohon time.Time
	TanggalTarget  time.Time
	Reason         string
	Targets        []CreateSwapTarget
}

// CreateSwap membuat permintaan baru: semua target pending, agregat pending.
func CreateSwap(ctx context.Context, db *gorm.DB, in CreateSwapInput) (*m.SwapRequestModel, error) {
	if len(in.Targets) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Minimal satu guru target")
	}

	var out m.SwapRequestModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Jadwal yang diserahkan harus milik pemohon dan aktif
		if err := ownsSchedule(tx, in.RequesterID, in.ScheduleID); err != nil {
			return err
		}
		// Jadwal yang ditawarkan tiap target harus milik target ybs
		for _, t := range in.Targets {
			if t.TeacherID == in.RequesterID {
				return fiber.NewError(fiber.StatusBadRequest, "Tidak bisa menukar jadwal dengan diri sendiri")
			}
			if t.ScheduleID != nil {
				if err := ownsSchedule(tx, t.TeacherID, *t.ScheduleID); err != nil {
					return err
				}
			}
		}

		req := m.SwapRequestModel{
			SwapRequestRequesterID:    in.RequesterID,
			SwapRequestScheduleID:     in.ScheduleID,
			SwapRequestTanggalPemohon: in.TanggalPemohon,
			SwapRequestTanggalTarget:  in.TanggalTarget,
			SwapRequestReason:         in.Reason,
			SwapRequestStatus:         m.SwapPending,
		}
		if err := tx.Create(&req).Error; err != nil {
			return err
		}
		for _, t := range in.Targets {
			tgt := m.SwapTargetModel{
				SwapTargetSwapRequestID: req.SwapRequestID,
				SwapTargetTeacherID:     t.TeacherID,
				SwapTargetScheduleID:    t.ScheduleID,
				SwapTargetStatus:        m.SwapTargetPending,
			}
			if err := tx.Create(&tgt).Error; err != nil {
				return err
			}
			req.Targets = append(req.Targets, tgt)
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func ownsSchedule(tx *gorm.DB, teacherID, scheduleID uuid.UUID) error {
	var sched schedModel.TeachingScheduleModel
	err := tx.
		Where("teaching_schedule_id = ? AND teaching_schedule_is_active = ?", scheduleID, true).
		First(&sched).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return err
	}
	if sched.TeachingScheduleTeacherID != teacherID {
		return fiber.NewError(fiber.StatusForbidden, "Jadwal bukan milik guru yang bersangkutan")
	}
	return nil
}

// RespondToSwap mencatat keputusan satu target (approved/rejected) lalu
// menghitung ulang status agregat — atomik terhadap respon target lain.
func RespondToSwap(ctx context.Context, db *gorm.DB, swapRequestID, targetTeacherID uuid.UUID, decision m.SwapTargetStatus) (*m.SwapRequestModel, error) {
	if decision != m.SwapTargetApproved && decision != m.SwapTargetRejected {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Keputusan harus approved atau rejected")
	}

	var out m.SwapRequestModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock baris parent dulu — serialisasi per SwapRequest
		var req m.SwapRequestModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("swap_request_id = ?", swapRequestID).
			First(&req).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Permintaan tukar jadwal tidak ditemukan")
			}
			return err
		}
		if req.SwapRequestStatus.IsTerminal() {
			return fiber.NewError(fiber.StatusConflict, "Permintaan sudah berstatus final")
		}

		var target m.SwapTargetModel
		if err := tx.
			Where("swap_target_swap_request_id = ? AND swap_target_teacher_id = ?", swapRequestID, targetTeacherID).
			First(&target).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusForbidden, "Anda bukan target permintaan ini")
			}
			return err
		}
		if target.SwapTargetStatus != m.SwapTargetPending {
			return fiber.NewError(fiber.StatusConflict, "Anda sudah merespon permintaan ini")
		}

		now := time.Now()
		target.SwapTargetStatus = decision
		target.SwapTargetRespondedAt = &now
		if err := tx.Model(&m.SwapTargetModel{}).
			Where("swap_target_id = ?", target.SwapTargetID).
			Updates(map[string]any{
				"swap_target_status":       decision,
				"swap_target_responded_at": now,
			}).Error; err != nil {
			return err
		}

		// Rekalkulasi agregat dari SEMUA baris target (masih dalam lock)
		var targets []m.SwapTargetModel
		if err := tx.
			Where("swap_target_swap_request_id = ?", swapRequestID).
			Find(&targets).Error; err != nil {
			return err
		}
		newStatus := m.RecomputeStatus(targets)
		if newStatus != req.SwapRequestStatus {
			if err := tx.Model(&m.SwapRequestModel{}).
				Where("swap_request_id = ?", swapRequestID).
				Update("swap_request_status", newStatus).Error; err != nil {
				return err
			}
			req.SwapRequestStatus = newStatus
		}

		req.Targets = targets
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelSwap — pembatalan sepihak oleh pemohon, hanya selama agregat
// masih pending (cancel menang atas target yang baru sebagian setuju).
func CancelSwap(ctx context.Context, db *gorm.DB, swapRequestID, requesterID uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req m.SwapRequestModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("swap_request_id = ?", swapRequestID).
			First(&req).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Permintaan tukar jadwal tidak ditemukan")
			}
			return err
		}
		if req.SwapRequestRequesterID != requesterID {
			return fiber.NewError(fiber.StatusForbidden, "Hanya pemohon yang boleh membatalkan")
		}
		if req.SwapRequestStatus != m.SwapPending {
			return fiber.NewError(fiber.StatusConflict, "Permintaan sudah berstatus final")
		}
		return tx.Model(&m.SwapRequestModel{}).
			Where("swap_request_id = ?", swapRequestID).
			Update("swap_request_status", m.SwapCancelled).Error
	})
}
