package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMissionWizardValidatesSteps(t *testing.T) {
	a := newTestApp(t)
	m := NewAddMissionModel(a, nil)

	// Empty name blocks the first step.
	updated, _ := m.Update(keyMsg("enter"))
	m = updated.(AddMissionModel)
	assert.Equal(t, stepName, m.currentStep)
	assert.NotEmpty(t, m.validationErr)

	m.inputs[0].SetValue("Launch beta")
	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(AddMissionModel)
	assert.Equal(t, stepStartDate, m.currentStep)

	m.inputs[1].SetValue("not a date")
	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(AddMissionModel)
	assert.Equal(t, stepStartDate, m.currentStep)
	assert.NotEmpty(t, m.validationErr)

	m.inputs[1].SetValue("2025-07-01")
	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(AddMissionModel)
	assert.Equal(t, stepEndDate, m.currentStep)

	// End before start is rejected at the step, not at save time.
	m.inputs[2].SetValue("2025-06-01")
	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(AddMissionModel)
	assert.Equal(t, stepEndDate, m.currentStep)
	assert.Contains(t, m.validationErr, "before start")

	m.inputs[2].SetValue("2025-12-31")
	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(AddMissionModel)
	assert.Equal(t, stepDescription, m.currentStep)
}

func TestAddMissionWizardSaves(t *testing.T) {
	a := newTestApp(t)
	_, err := a.Auth.SignUp("alex@example.com", "hunter22", "Alex")
	require.NoError(t, err)

	m := NewAddMissionModel(a, map[string]string{
		"name":  "Launch beta",
		"start": "2025-07-01",
		"end":   "2025-12-31",
	})

	for _, step := range []missionStep{stepStartDate, stepEndDate, stepDescription, stepSave} {
		updated, cmd := m.Update(keyMsg("enter"))
		m = updated.(AddMissionModel)
		require.Equal(t, step, m.currentStep)
		if step == stepSave {
			require.NotNil(t, cmd)
			saved, ok := cmd().(missionSavedMsg)
			require.True(t, ok)
			require.NoError(t, saved.err)

			updated, _ = m.Update(saved)
			m = updated.(AddMissionModel)
			assert.True(t, m.completed)
		}
	}

	ownerID, err := a.Auth.CurrentUser()
	require.NoError(t, err)
	missions, err := a.Store.ListMissionsByOwner(ownerID)
	require.NoError(t, err)
	require.Len(t, missions, 1)
	assert.Equal(t, "Launch beta", missions[0].Name)
	assert.Equal(t, "2025-07-01", missions[0].StartDate)
}

func TestAddMissionWizardEscCancels(t *testing.T) {
	a := newTestApp(t)
	m := NewAddMissionModel(a, nil)

	updated, cmd := m.Update(keyMsg("esc"))
	m = updated.(AddMissionModel)
	assert.True(t, m.cancelled)
	assert.NotNil(t, cmd)
}
