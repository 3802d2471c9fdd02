package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func targets(statuses ...SwapTargetStatus) []SwapTargetModel {
	out := make([]SwapTargetModel, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, SwapTargetModel{SwapTargetStatus: s})
	}
	return out
}

func TestRecomputeStatus(t *testing.T) {
	cases := []struct {
		name    string
		targets []SwapTargetModel
		want    SwapStatus
	}{
		{"tanpa target", nil, SwapPending},
		{"satu pending", targets(SwapTargetPending), SwapPending},
		{"satu approved", targets(SwapTargetApproved), SwapApproved},
		{"satu rejected", targets(SwapTargetRejected), SwapRejected},
		{"semua approved", targets(SwapTargetApproved, SwapTargetApproved, SwapTargetApproved), SwapApproved},
		{"sebagian approved", targets(SwapTargetApproved, SwapTargetPending), SwapPending},
		{"satu rejected menang atas approved", targets(SwapTargetApproved, SwapTargetRejected, SwapTargetApproved), SwapRejected},
		{"rejected menang atas pending", targets(SwapTargetPending, SwapTargetRejected), SwapRejected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RecomputeStatus(tc.targets))
		})
	}
}

func TestSwapStatusIsTerminal(t *testing.T) {
	assert.False(t, SwapPending.IsTerminal())
	assert.True(t, SwapApproved.IsTerminal())
	assert.True(t, SwapRejected.IsTerminal())
	assert.True(t, SwapCancelled.IsTerminal())
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 9, 10, 8, 30, 0, 0, time.UTC)
	yesterday := time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)

	mk := func(status SwapStatus, pemohon, target time.Time) SwapRequestModel {
		return SwapRequestModel{
			SwapRequestStatus:         status,
			SwapRequestTanggalPemohon: pemohon,
			SwapRequestTanggalTarget:  target,
		}
	}

	cases := []struct {
		name string
		req  SwapRequestModel
		want SwapStatus
	}{
		{"kedua tanggal lewat", mk(SwapPending, yesterday, yesterday), SwapExpired},
		{"approved pun kedaluwarsa setelah kedua tanggal lewat", mk(SwapApproved, yesterday, yesterday), SwapExpired},
		{"satu tanggal masih hari ini", mk(SwapPending, yesterday, today), SwapPending},
		{"satu tanggal masih di depan", mk(SwapPending, yesterday, tomorrow), SwapPending},
		{"kedua tanggal di depan", mk(SwapApproved, today, tomorrow), SwapApproved},
		{"hari ini belum lewat", mk(SwapRejected, today, today), SwapRejected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.req.EffectiveStatus(now))
		})
	}
}
