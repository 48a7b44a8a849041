package statemachine

import (
	"context"
	"testing"

	"github.com/lanca/lanca-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayableFSM_Lifecycle(t *testing.T) {
	ctx := context.Background()
	p := &models.Payable{Status: models.StatusPending}
	m := NewPayableFSM(p)

	require.NoError(t, m.Pay(ctx))
	assert.Equal(t, models.StatusPaid, p.Status)

	assert.ErrorIs(t, m.Cancel(ctx), ErrInvalidState)
	assert.Equal(t, models.StatusPaid, p.Status)

	require.NoError(t, m.Reopen(ctx))
	require.NoError(t, m.Cancel(ctx))
	assert.Equal(t, models.StatusCancelled, p.Status)

	require.NoError(t, m.Restore(ctx))
	assert.Equal(t, models.StatusPending, p.Status)
}

func TestPayableFSM_SetStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		from    string
		target  string
		want    string
		wantErr bool
	}{
		{"pay", models.StatusPending, "pago", models.StatusPaid, false},
		{"reopen", models.StatusPaid, models.StatusPending, models.StatusPending, false},
		{"cancel", models.StatusPending, models.StatusCancelled, models.StatusCancelled, false},
		{"restore", models.StatusCancelled, models.StatusPending, models.StatusPending, false},
		{"same status", models.StatusPaid, "PAGO", models.StatusPaid, false},
		{"empty defaults to pending", "", models.StatusPaid, models.StatusPaid, false},
		{"paid to cancelled", models.StatusPaid, models.StatusCancelled, models.StatusPaid, true},
		{"cancelled to paid", models.StatusCancelled, models.StatusPaid, models.StatusCancelled, true},
		{"unknown target", models.StatusPending, "Atrasado", models.StatusPending, true},
		{"free text to pending", "Em análise", models.StatusPending, models.StatusPending, false},
		{"free text to paid", "Em análise", models.StatusPaid, "Em análise", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.Payable{Status: tt.from}
			err := NewPayableFSM(p).SetStatus(ctx, tt.target)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidState)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, p.Status)
		})
	}
}

func TestPayableFSM_Targets(t *testing.T) {
	m := NewPayableFSM(&models.Payable{Status: models.StatusPending})
	assert.ElementsMatch(t, []string{models.StatusPaid, models.StatusCancelled}, m.Targets())
	assert.True(t, m.Can(EventPay))
	assert.False(t, m.Can(EventRestore))

	legacy := NewPayableFSM(&models.Payable{Status: "Em análise"})
	assert.Equal(t, []string{models.StatusPending}, legacy.Targets())
}
