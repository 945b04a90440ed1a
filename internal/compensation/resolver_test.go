package compensation_test

import (
	"testing"
	"time"

	"go-comp/internal/compensation"

	"github.com/stretchr/testify/assert"
)

func TestFinalizeAmount(t *testing.T) {
	capped := compensation.Cycle{MaxBonusCap: i64(5000)}

	tests := []struct {
		name     string
		auto     int64
		override *int64
		cycle    compensation.Cycle
		want     int64
	}{
		{"auto capped", 6000, nil, capped, 5000},
		{"override under cap wins", 6000, i64(4000), capped, 4000},
		{"override capped", 6000, i64(7000), capped, 5000},
		{"zero override is honoured", 6000, i64(0), capped, 0},
		{"no lower clamp", -200, nil, capped, -200},
		{"no cap", 6000, nil, compensation.Cycle{}, 6000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compensation.FinalizeAmount(tt.auto, tt.override, tt.cycle)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, compensation.FinalizeAmount(tt.auto, tt.override, tt.cycle))
		})
	}
}

func TestResolveFinal(t *testing.T) {
	s := compensation.Structure{MinBonus: i64(1000), MaxBonus: i64(4000)}
	capped := compensation.Cycle{MaxBonusCap: i64(3500)}

	assert.Equal(t, int64(1000), compensation.ResolveFinal(200, nil, s, compensation.Cycle{}))
	assert.Equal(t, int64(4000), compensation.ResolveFinal(9000, nil, s, compensation.Cycle{}))
	assert.Equal(t, int64(3500), compensation.ResolveFinal(9000, nil, s, capped))
	assert.Equal(t, int64(0), compensation.ResolveFinal(0, nil, s, capped))
	assert.Equal(t, int64(200), compensation.ResolveFinal(9000, i64(200), s, capped))
	assert.Equal(t, int64(3500), compensation.ResolveFinal(0, i64(6000), s, capped))
}

func TestAssignment_AppendAudit(t *testing.T) {
	var a compensation.Assignment
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	a.AppendAudit(at, "hr-admin", "override set to 4000")
	a.AppendAudit(at.Add(time.Hour), "system", "recalculated")

	assert.Len(t, a.Audit, 2)
	assert.Equal(t, "hr-admin", a.Audit[0].Actor)
	assert.Equal(t, "recalculated", a.Audit[1].Note)
}
