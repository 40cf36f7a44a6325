package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func typeText(f *form, s string) {
	for _, r := range s {
		f.Update(keyMsg(string(r)))
	}
}

func TestFormEnterAdvancesAndSubmits(t *testing.T) {
	f := newForm("TEST",
		newFormField("Name", "", true),
		newFormField("Notes", "", false),
	)

	typeText(f, "hello")
	f.Update(keyMsg("enter"))
	assert.Equal(t, 1, f.focus)
	assert.False(t, f.submitted)

	f.Update(keyMsg("enter"))
	assert.True(t, f.submitted)
	assert.Equal(t, "hello", f.value(0))
	assert.Equal(t, "", f.value(1))
}

func TestFormRequiredFieldBlocksSubmit(t *testing.T) {
	f := newForm("TEST",
		newFormField("Name", "", true),
	)

	f.Update(keyMsg("enter"))
	assert.False(t, f.submitted)
	assert.Contains(t, f.errMsg, "required")

	typeText(f, "x")
	f.Update(keyMsg("enter"))
	assert.True(t, f.submitted)
}

func TestFormSubmitReturnsToMissingRequiredField(t *testing.T) {
	f := newForm("TEST",
		newFormField("Name", "", true),
		newFormField("Notes", "", false),
	)

	// Skip the required field via tab, then try to submit from the last one.
	f.Update(keyMsg("tab"))
	f.Update(keyMsg("enter"))

	assert.False(t, f.submitted)
	assert.Equal(t, 0, f.focus)
	assert.Contains(t, f.errMsg, "Name")
}

func TestFormEscCancels(t *testing.T) {
	f := newForm("TEST", newFormField("Name", "", true))

	f.Update(keyMsg("esc"))
	assert.True(t, f.cancelled)
	assert.False(t, f.submitted)
}
