// internal/model/initialiser_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "ethics-workflow/internal/common/errors"
)

func TestNewInitialiser_UnknownStatus(t *testing.T) {
	_, err := NewInitialiser(Status("ARCHIVED"))
	require.Error(t, err)

	engineErr, ok := err.(*commonerrors.EngineError)
	require.True(t, ok)
	assert.Equal(t, commonerrors.ErrCodeStatusNotSupported, engineErr.Code)
}

func TestInitialiser_DraftWhitelist(t *testing.T) {
	in, err := NewInitialiser(StatusDraft)
	require.NoError(t, err)

	require.NoError(t, in.Set(FieldID, int64(7)))
	require.NoError(t, in.Set(FieldApplicationID, "APP-7"))
	require.NoError(t, in.Set(FieldUser, &User{Username: "alice"}))
	require.NoError(t, in.Set(FieldLastUpdated, time.Now()))

	// Review-only fields are not assignable on a draft.
	err = in.Set(FieldFinalComment, "looks fine")
	require.Error(t, err)
	engineErr, ok := err.(*commonerrors.EngineError)
	require.True(t, ok)
	assert.Equal(t, commonerrors.ErrCodeFieldNotWhitelisted, engineErr.Code)

	err = in.Set(FieldEditableFields, []string{"q-name"})
	require.Error(t, err)

	app := in.Build()
	assert.Equal(t, StatusDraft, app.Status)
	assert.Equal(t, "APP-7", app.ApplicationID)
	assert.NotNil(t, app.Answers)
	assert.NotNil(t, app.AttachedFiles)
	assert.NotNil(t, app.Comments)
}

func TestInitialiser_SubmittedWhitelist(t *testing.T) {
	in, err := NewInitialiser(StatusSubmitted)
	require.NoError(t, err)

	require.NoError(t, in.Set(FieldFinalComment, "approved with conditions"))
	require.NoError(t, in.Set(FieldAssignedCommitteeMembers, []*User{{Username: "carol"}}))

	// Referred-only fields are still off limits.
	err = in.Set(FieldReferredBy, &User{Username: "carol"})
	require.Error(t, err)
}

func TestInitialiser_ReferredWhitelist(t *testing.T) {
	in, err := NewInitialiser(StatusReferred)
	require.NoError(t, err)

	require.NoError(t, in.Set(FieldEditableFields, []string{"q-name", "q-email"}))
	require.NoError(t, in.Set(FieldReferredBy, &User{Username: "carol"}))
	require.NoError(t, in.Set(FieldFinalComment, "please revise"))

	app := in.Build()
	assert.True(t, app.FieldEditable("q-name"))
	assert.False(t, app.FieldEditable("q-department"))
}

func TestInitialiser_TypeMismatch(t *testing.T) {
	in, err := NewInitialiser(StatusDraft)
	require.NoError(t, err)

	err = in.Set(FieldID, "not-an-int")
	require.Error(t, err)
	engineErr, ok := err.(*commonerrors.EngineError)
	require.True(t, ok)
	assert.Equal(t, commonerrors.ErrCodeFieldTypeMismatch, engineErr.Code)
}
