package tui

import (
	"testing"

	"github.com/MKhiriev/channel-console/internal/adapter"
	"github.com/MKhiriev/channel-console/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUsersPage_CreateSuccessClosesDialog(t *testing.T) {
	ts := newTestServices(t)
	p := newUsersPage(testCtx, ts.services, testUIConfig())

	p.update(keyRunes("n"))
	require.NotNil(t, p.dialog)
	assert.True(t, p.capturesInput())
	p.dialog.inputs[0].SetValue("Ann")
	p.dialog.inputs[1].SetValue("ann@example.com")

	ts.users.EXPECT().Create(gomock.Any(), models.UserCreate{Name: strPtr("Ann"), Email: strPtr("ann@example.com")}).
		Return(models.User{ID: 1}, nil)
	ts.users.EXPECT().List(gomock.Any(), gomock.Any()).Return([]models.User{{ID: 1}}, nil)

	cmd := p.update(keyType(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	assert.True(t, p.dialog.pending)

	// keys are ignored while the mutation is pending
	assert.Nil(t, p.update(keyType(tea.KeyEsc)))
	assert.NotNil(t, p.dialog)

	done := collect(cmd)
	require.Len(t, done, 1)

	msgs := collect(p.update(done[0]))
	assert.Nil(t, p.dialog)

	toast, ok := findToast(msgs)
	require.True(t, ok)
	assert.Equal(t, toastSuccess, toast.kind)
	assert.Equal(t, "User created", toast.title)
	assert.Equal(t, "The new user has been successfully created.", toast.body)
}

func TestUsersPage_FailureKeepsDialogOpen(t *testing.T) {
	ts := newTestServices(t)
	p := newUsersPage(testCtx, ts.services, testUIConfig())
	existing := models.User{ID: 4, Name: strPtr("Bob")}
	p.table.rows = []models.User{existing}

	p.update(keyRunes("e"))
	require.NotNil(t, p.dialog)
	assert.Equal(t, "Bob", p.dialog.inputs[0].Value())

	ts.users.EXPECT().Update(gomock.Any(), int64(4), gomock.Any()).
		Return(models.User{}, &adapter.APIError{StatusCode: 400, Message: "Email already registered"})

	done := collect(p.update(keyType(tea.KeyEnter)))
	require.Len(t, done, 1)

	msgs := collect(p.update(done[0]))
	require.NotNil(t, p.dialog)
	assert.False(t, p.dialog.pending)

	toast, ok := findToast(msgs)
	require.True(t, ok)
	assert.Equal(t, toastError, toast.kind)
	assert.Equal(t, "Failed to update user", toast.title)
	assert.Equal(t, "Email already registered", toast.body)
	assert.Len(t, msgs, 1)
}

func TestUsersPage_InvalidFormIsNotSubmitted(t *testing.T) {
	ts := newTestServices(t)
	p := newUsersPage(testCtx, ts.services, testUIConfig())

	p.update(keyRunes("n"))
	p.dialog.inputs[1].SetValue("not-an-email")

	msgs := collect(p.update(keyType(tea.KeyCtrlS)))

	require.NotNil(t, p.dialog)
	assert.False(t, p.dialog.pending)
	assert.Equal(t, "Invalid email address", p.dialog.errs.Get("email"))
	toast, ok := findToast(msgs)
	require.True(t, ok)
	assert.Equal(t, toastError, toast.kind)
}

func TestUsersPage_DeleteFlow(t *testing.T) {
	ts := newTestServices(t)
	p := newUsersPage(testCtx, ts.services, testUIConfig())
	p.table.rows = []models.User{{ID: 9}}

	p.update(keyRunes("d"))
	require.NotNil(t, p.confirm)
	assert.Equal(t, "User #9", p.confirm.label)

	p.update(keyRunes("n"))
	assert.Nil(t, p.confirm)

	ts.users.EXPECT().Delete(gomock.Any(), int64(9)).Return(nil)
	ts.users.EXPECT().List(gomock.Any(), gomock.Any()).Return([]models.User{}, nil)

	p.update(keyRunes("d"))
	done := collect(p.update(keyRunes("y")))
	require.Len(t, done, 1)
	assert.Equal(t, mutationDoneMsg{entity: models.EntityUsers, action: models.ActionDelete}, done[0])

	collect(p.update(done[0]))
	assert.Nil(t, p.confirm)
}

func TestUsersPage_IgnoresOtherEntities(t *testing.T) {
	ts := newTestServices(t)
	p := newUsersPage(testCtx, ts.services, testUIConfig())
	p.dialog = newUserDialog(nil)
	p.dialog.pending = true

	assert.Nil(t, p.update(mutationDoneMsg{entity: models.EntityChannels, action: models.ActionCreate}))
	assert.True(t, p.dialog.pending)
}

func TestUsersPage_RefreshInvalidatesCache(t *testing.T) {
	ts := newTestServices(t)
	p := newUsersPage(testCtx, ts.services, testUIConfig())

	ts.users.EXPECT().List(gomock.Any(), gomock.Any()).Return([]models.User{}, nil)
	for _, msg := range collect(p.activate()) {
		p.update(msg)
	}

	p.update(keyRunes("r"))
	assert.True(t, p.table.loading)
}
