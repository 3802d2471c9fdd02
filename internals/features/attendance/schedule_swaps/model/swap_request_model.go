// file: internals/features/attendance/schedule_swaps/model/swap_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   Enum status
   ======================================================= */

type SwapStatus string

const (
	SwapPending   SwapStatus = "pending"
	SwapApproved  SwapStatus = "approved"
	SwapRejected  SwapStatus = "rejected"
	SwapCancelled SwapStatus = "cancelled"

	// Tidak pernah disimpan — overlay saat baca (lihat EffectiveStatus).
	SwapExpired SwapStatus = "expired"
)

type SwapTargetStatus string

const (
	SwapTargetPending  SwapTargetStatus = "pending"
	SwapTargetApproved SwapTargetStatus = "approved"
	SwapTargetRejected SwapTargetStatus = "rejected"
)

/* =======================================================
   SwapRequestModel — map ke tabel swap_requests
   Permintaan tukar jadwal dari satu pemohon ke >=1 target.
   ======================================================= */

type SwapRequestModel struct {
	// PK
	SwapRequestID uuid.UUID `json:"swap_request_id" gorm:"type:uuid;primaryKey;column:swap_request_id;default:gen_random_uuid()"`

	// Pemohon + jadwal miliknya yang diserahkan
	SwapRequestRequesterID uuid.UUID `json:"swap_request_requester_id" gorm:"type:uuid;not null;index:idx_swap_requests_requester;column:swap_request_requester_id"`
	SwapRequestScheduleID  uuid.UUID `json:"swap_request_schedule_id"  gorm:"type:uuid;not null;column:swap_request_schedule_id"`

	// Tanggal sisi pemohon dan sisi target — independen, tidak diasumsikan simetris
	SwapRequestTanggalPemohon time.Time `json:"swap_request_tanggal_pemohon" gorm:"type:date;not null;column:swap_request_tanggal_pemohon"`
	SwapRequestTanggalTarget  time.Time `json:"swap_request_tanggal_target"  gorm:"type:date;not null;column:swap_request_tanggal_target"`

	SwapRequestReason string `json:"swap_request_reason" gorm:"type:text;not null;default:'';column:swap_request_reason"`

	// Status agregat — fungsi murni dari status para target (lihat RecomputeStatus)
	SwapRequestStatus SwapStatus `json:"swap_request_status" gorm:"type:text;not null;default:'pending';column:swap_request_status"`

	SwapRequestCreatedAt time.Time `json:"swap_request_created_at" gorm:"column:swap_request_created_at;not null;autoCreateTime"`
	SwapRequestUpdatedAt time.Time `json:"swap_request_updated_at" gorm:"column:swap_request_updated_at;not null;autoUpdateTime"`

	// Relasi
	Targets []SwapTargetModel `json:"targets,omitempty" gorm:"foreignKey:SwapTargetSwapRequestID;references:SwapRequestID"`
}

func (SwapRequestModel) TableName() string { return "swap_requests" }

/* =======================================================
   SwapTargetModel — map ke tabel swap_targets
   ======================================================= */

type SwapTargetModel struct {
	SwapTargetID            uuid.UUID `json:"swap_target_id" gorm:"type:uuid;primaryKey;column:swap_target_id;default:gen_random_uuid()"`
	SwapTargetSwapRequestID uuid.UUID `json:"swap_target_swap_request_id" gorm:"type:uuid;not null;index:idx_swap_targets_request;column:swap_target_swap_request_id"`

	SwapTargetTeacherID uuid.UUID `json:"swap_target_teacher_id" gorm:"type:uuid;not null;index:idx_swap_targets_teacher;column:swap_target_teacher_id"`

	// Jadwal yang ditawarkan target sebagai gantinya — nullable untuk
	// coverage satu arah (target hanya mengambil alih, tidak menukar).
	SwapTargetScheduleID *uuid.UUID `json:"swap_target_schedule_id,omitempty" gorm:"type:uuid;column:swap_target_schedule_id"`

	SwapTargetStatus      SwapTargetStatus `json:"swap_target_status" gorm:"type:text;not null;default:'pending';column:swap_target_status"`
	SwapTargetRespondedAt *time.Time       `json:"swap_target_responded_at,omitempty" gorm:"column:swap_target_responded_at"`

	SwapTargetCreatedAt time.Time `json:"swap_target_created_at" gorm:"column:swap_target_created_at;not null;autoCreateTime"`
	SwapTargetUpdatedAt time.Time `json:"swap_target_updated_at" gorm:"column:swap_target_updated_at;not null;autoUpdateTime"`
}

func (SwapTargetModel) TableName() string { return "swap_targets" }

/* =======================================================
   Agregasi & overlay status
   ======================================================= */

// RecomputeStatus menghitung status agregat dari status para target:
// satu rejected → rejected; semua approved → approved; selain itu pending.
func RecomputeStatus(targets []SwapTargetModel) SwapStatus {
	if len(targets) == 0 {
		return SwapPending
	}
	allApproved := true
	for _, t := range targets {
		switch t.SwapTargetStatus {
		case SwapTargetRejected:
			return SwapRejected
		case SwapTargetApproved:
			// lanjut
		default:
			allApproved = false
		}
	}
	if allApproved {
		return SwapApproved
	}
	return SwapPending
}

// IsTerminal true untuk status tersimpan yang tidak bisa berubah lagi.
func (s SwapStatus) IsTerminal() bool {
	return s == SwapApproved || s == SwapRejected || s == SwapCancelled
}

// EffectiveStatus mengembalikan status untuk presentasi: "expired" jika
// KEDUA tanggal sudah lewat terhadap hari ini. Dihitung saat baca,
// tidak pernah ditulis balik ke storage (tanpa background sweeper).
func (r SwapRequestModel) EffectiveStatus(now time.Time) SwapStatus {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	pemohon := time.Date(
		r.SwapRequestTanggalPemohon.Year(), r.SwapRequestTanggalPemohon.Month(), r.SwapRequestTanggalPemohon.Day(),
		0, 0, 0, 0, now.Location(),
	)
	target := time.Date(
		r.SwapRequestTanggalTarget.Year(), r.SwapRequestTanggalTarget.Month(), r.SwapRequestTanggalTarget.Day(),
		0, 0, 0, 0, now.Location(),
	)
	if pemohon.Before(today) && target.Before(today) {
		return SwapExpired
	}
	return r.SwapRequestStatus
}
