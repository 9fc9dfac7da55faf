package reconcile

import (
	"testing"
	"time"

	"github.com/dormhq/dorm-ledger/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name string
		paid int64
		due  int64
		want models.PaymentStatus
	}{
		{"nothing paid", 0, 50000, models.StatusUnpaid},
		{"partial", 30000, 50000, models.StatusPartiallyPaid},
		{"exactly due", 50000, 50000, models.StatusPaid},
		{"one centavo short", 49999, 50000, models.StatusPartiallyPaid},
		{"one centavo in", 1, 50000, models.StatusPartiallyPaid},
		{"zero due zero paid", 0, 0, models.StatusUnpaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.paid, tt.due))
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		tendered  int64
		due       int64
		paidSoFar int64
		want      int64
	}{
		{"under remaining", 30000, 50000, 0, 30000},
		{"exactly remaining", 50000, 50000, 0, 50000},
		{"overpay clamped", 30000, 50000, 30000, 20000},
		{"already settled", 10000, 50000, 50000, 0},
		{"fresh overpay", 99999, 50000, 0, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.tendered, tt.due, tt.paidSoFar))
		})
	}
}

// The clamp must never let AmountPaid escape [0, due], no matter the sequence of
// tendered amounts.
func TestClampKeepsBalanceBounded(t *testing.T) {
	const due = int64(50000)
	paid := int64(0)

	for _, tendered := range []int64{12345, 40000, 1, 99999, 7} {
		accepted := Clamp(tendered, due, paid)
		paid += accepted

		assert.GreaterOrEqual(t, paid, int64(0))
		assert.LessOrEqual(t, paid, due)
	}
	assert.Equal(t, due, paid)
	assert.Equal(t, models.StatusPaid, DeriveStatus(paid, due))
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -5)
	future := now.AddDate(0, 0, 5)

	assert.Equal(t, models.StatusOverdue, EffectiveStatus(models.StatusUnpaid, &past, now))
	assert.Equal(t, models.StatusOverdue, EffectiveStatus(models.StatusPartiallyPaid, &past, now))
	assert.Equal(t, models.StatusPaid, EffectiveStatus(models.StatusPaid, &past, now))
	assert.Equal(t, models.StatusUnpaid, EffectiveStatus(models.StatusUnpaid, &future, now))
	assert.Equal(t, models.StatusUnpaid, EffectiveStatus(models.StatusUnpaid, nil, now))
}
