package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupWizardValidation(t *testing.T) {
	a := newTestApp(t)
	m := NewAuthModel(a, true)

	m.inputs[0].SetValue("Alex")
	m.inputs[1].SetValue("alex@example.com")
	m.inputs[2].SetValue("hunter22")
	m.inputs[3].SetValue("different")
	m.focus = len(m.inputs) - 1

	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(AuthModel)
	assert.Nil(t, cmd)
	assert.Equal(t, "Passwords do not match", m.validationErr)
}

func TestSignupWizardCreatesAccount(t *testing.T) {
	a := newTestApp(t)
	m := NewAuthModel(a, true)

	m.inputs[0].SetValue("Alex")
	m.inputs[1].SetValue("alex@example.com")
	m.inputs[2].SetValue("hunter22")
	m.inputs[3].SetValue("hunter22")
	m.focus = len(m.inputs) - 1

	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(AuthModel)
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	done, ok := cmd().(authDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	updated, _ = m.Update(done)
	m = updated.(AuthModel)
	assert.True(t, m.completed)
	assert.Equal(t, done.userID, m.SignedInID)
}

func TestLoginWizardBadCredentialsShownInline(t *testing.T) {
	a := newTestApp(t)
	_, err := a.Auth.SignUp("alex@example.com", "hunter22", "Alex")
	require.NoError(t, err)
	require.NoError(t, a.Auth.SignOut())

	m := NewAuthModel(a, false)
	m.inputs[0].SetValue("alex@example.com")
	m.inputs[1].SetValue("wrong-password")
	m.focus = 1

	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(AuthModel)
	require.NotNil(t, cmd)

	done, ok := cmd().(authDoneMsg)
	require.True(t, ok)
	require.Error(t, done.err)

	updated, _ = m.Update(done)
	m = updated.(AuthModel)
	assert.False(t, m.completed)
	assert.Contains(t, m.View(), "invalid email or password")
}
