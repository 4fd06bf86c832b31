package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-match-connect/internal/domain"
)

func TestOptionalAbsentVsNullVsValue(t *testing.T) {
	var u domain.CandidateProfileUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"bio":null,"location":"Bandung"}`), &u))

	assert.True(t, u.Bio.Present)
	assert.Nil(t, u.Bio.Value)

	assert.True(t, u.Location.Present)
	require.NotNil(t, u.Location.Value)
	assert.Equal(t, "Bandung", *u.Location.Value)

	// keys that never appeared stay at the zero value
	assert.False(t, u.PhoneNumber.Present)
	assert.False(t, u.ResumeURL.Present)
}

func TestOptionalConstructors(t *testing.T) {
	set := domain.Set("x")
	assert.True(t, set.Present)
	require.NotNil(t, set.Value)
	assert.Equal(t, "x", *set.Value)

	null := domain.Null[string]()
	assert.True(t, null.Present)
	assert.Nil(t, null.Value)
}
