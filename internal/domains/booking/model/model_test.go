package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore/internal/domains/booking/model"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    model.Status
		wantErr bool
	}{
		{raw: "pending", want: model.StatusPending},
		{raw: " Confirmed ", want: model.StatusConfirmed},
		{raw: "CANCELLED", want: model.StatusCancelled},
		{raw: "", wantErr: true},
		{raw: "archived", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := model.ParseStatus(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidStatus)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransition(t *testing.T) {
	statuses := []model.Status{model.StatusPending, model.StatusConfirmed, model.StatusCancelled}

	for _, from := range statuses {
		for _, to := range statuses {
			change, err := model.Transition(from, to)
			require.NoError(t, err, "%s -> %s", from, to)

			wantReopened := from != model.StatusPending && to == model.StatusPending
			assert.Equal(t, wantReopened, change.Reopened, "%s -> %s", from, to)
			assert.Equal(t, from != to, change.Changed())
		}
	}

	_, err := model.Transition("", model.StatusPending)
	assert.ErrorIs(t, err, model.ErrInvalidStatus)

	_, err = model.Transition(model.StatusPending, "done")
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}

func TestSoundCue(t *testing.T) {
	assert.Equal(t, "/sounds/confirmed.mp3", model.SoundCue(model.StatusConfirmed))
	assert.Equal(t, "/sounds/cancelled.mp3", model.SoundCue(model.StatusCancelled))
	assert.Equal(t, "/sounds/pending.mp3", model.SoundCue(model.StatusPending))
	assert.Empty(t, model.SoundCue("unknown"))
}

func TestTally(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		counts, err := model.Tally(nil)
		require.NoError(t, err)
		assert.Equal(t, model.Counts{}, counts)
	})

	t.Run("counts sum to total", func(t *testing.T) {
		bookings := []model.Booking{
			{ID: "1", Status: model.StatusPending},
			{ID: "2", Status: model.StatusPending},
			{ID: "3", Status: model.StatusConfirmed},
			{ID: "4", Status: model.StatusCancelled},
			{ID: "5", Status: model.StatusConfirmed},
		}

		counts, err := model.Tally(bookings)
		require.NoError(t, err)

		assert.Equal(t, model.Counts{Total: 5, Pending: 2, Confirmed: 2, Cancelled: 1}, counts)
		assert.Equal(t, counts.Total, counts.Pending+counts.Confirmed+counts.Cancelled)
	})

	t.Run("invalid status is an error", func(t *testing.T) {
		bookings := []model.Booking{
			{ID: "1", Status: model.StatusPending},
			{ID: "legacy-7", Status: "archived"},
		}

		_, err := model.Tally(bookings)
		require.ErrorIs(t, err, model.ErrInvalidStatus)
		assert.Contains(t, err.Error(), "legacy-7")
	})

	t.Run("missing status is an error", func(t *testing.T) {
		_, err := model.Tally([]model.Booking{{ID: "9"}})
		assert.ErrorIs(t, err, model.ErrInvalidStatus)
	})
}
