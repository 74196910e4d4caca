package editor_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore/internal/domains/booking/editor"
	"encore/internal/domains/booking/model"
)

func selected() *model.Booking {
	notes := "call after 5pm"

	return &model.Booking{
		ID:     "b1",
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		Venue:  "Town Hall",
		Status: model.StatusPending,
		Notes:  &notes,
	}
}

func TestOpen_NilSelectionRendersNothing(t *testing.T) {
	dialog := editor.Open(nil)
	assert.Nil(t, dialog)

	var first, second bytes.Buffer
	require.NoError(t, editor.Render(&first, dialog))
	require.NoError(t, editor.Render(&second, dialog))

	assert.Zero(t, first.Len())
	assert.Equal(t, first.String(), second.String())

	assert.False(t, dialog.CanSave())
	assert.False(t, dialog.CanCancel())
	assert.NoError(t, dialog.Close())
}

func TestDialog_DraftIsACopy(t *testing.T) {
	original := selected()
	dialog := editor.Open(original)

	require.NoError(t, dialog.Edit(func(draft *model.Booking) {
		draft.Name = "Changed"
		*draft.Notes = "changed notes"
	}))

	assert.Equal(t, "Ada Lovelace", original.Name)
	assert.Equal(t, "call after 5pm", *original.Notes)
	assert.Equal(t, "Changed", dialog.Draft().Name)
}

func TestDialog_CanSave(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(draft *model.Booking)
		ready bool
	}{
		{name: "both filled", edit: func(*model.Booking) {}, ready: true},
		{name: "empty name", edit: func(d *model.Booking) { d.Name = "" }},
		{name: "whitespace name", edit: func(d *model.Booking) { d.Name = "   " }},
		{name: "empty email", edit: func(d *model.Booking) { d.Email = "" }},
		{name: "whitespace email", edit: func(d *model.Booking) { d.Email = "\t\n" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialog := editor.Open(selected())
			require.NoError(t, dialog.Edit(tt.edit))

			assert.Equal(t, tt.ready, dialog.CanSave())
			assert.True(t, dialog.CanCancel())
		})
	}
}

func TestDialog_SaveInFlight(t *testing.T) {
	dialog := editor.Open(selected())

	req, err := dialog.BeginSave()
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", req.Name)
	require.NotNil(t, req.Status)
	assert.Equal(t, "pending", *req.Status)

	assert.False(t, dialog.CanSave())
	assert.False(t, dialog.CanCancel())

	_, err = dialog.BeginSave()
	assert.ErrorIs(t, err, editor.ErrSaveInFlight)
	assert.ErrorIs(t, dialog.Edit(func(*model.Booking) {}), editor.ErrSaveInFlight)
	assert.ErrorIs(t, dialog.Close(), editor.ErrSaveInFlight)

	var buf bytes.Buffer
	require.NoError(t, editor.Render(&buf, dialog))
	assert.Contains(t, buf.String(), "<button type=\"submit\" disabled>")

	dialog.EndSave()

	assert.True(t, dialog.CanSave())
	assert.True(t, dialog.CanCancel())
}

func TestDialog_BeginSaveRequiresFields(t *testing.T) {
	dialog := editor.Open(selected())
	require.NoError(t, dialog.Edit(func(d *model.Booking) { d.Email = " " }))

	_, err := dialog.BeginSave()
	assert.Error(t, err)
	assert.True(t, dialog.CanCancel())
}

func TestDialog_SetStatus(t *testing.T) {
	dialog := editor.Open(selected())

	require.NoError(t, dialog.SetStatus("cancelled"))
	assert.Equal(t, model.StatusCancelled, dialog.Draft().Status)

	assert.ErrorIs(t, dialog.SetStatus("done"), model.ErrInvalidStatus)
}

func TestDialog_CloseDiscardsDraft(t *testing.T) {
	dialog := editor.Open(selected())
	require.NoError(t, dialog.Close())

	assert.Equal(t, model.Booking{}, dialog.Draft())
	assert.False(t, dialog.CanSave())

	var buf bytes.Buffer
	require.NoError(t, editor.Render(&buf, dialog))
	assert.Zero(t, buf.Len())

	_, err := dialog.BeginSave()
	assert.ErrorIs(t, err, editor.ErrClosed)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, editor.Render(&buf, editor.Open(selected())))

	html := buf.String()
	assert.Contains(t, html, `value="Ada Lovelace"`)
	assert.Contains(t, html, `<option value="pending" selected>`)
	assert.Contains(t, html, "call after 5pm")
	assert.Contains(t, html, `<button type="submit">Save</button>`)
}
