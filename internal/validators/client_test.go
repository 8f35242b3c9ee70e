package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func TestName(t *testing.T) {
	got, err := Name("  Ana Paula ", "invalid_client_name")
	require.NoError(t, err)
	assert.Equal(t, "Ana Paula", got)

	_, err = Name("   ", "invalid_client_name")
	assert.True(t, httperr.IsBusiness(err, "invalid_client_name"))
}

func TestPhone(t *testing.T) {
	got, err := Phone("(11) 98765-4321")
	require.NoError(t, err)
	assert.Equal(t, "11987654321", got)

	got, err = Phone("")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = Phone("+55 11 98765-4321")
	assert.True(t, httperr.IsBusiness(err, "invalid_phone"))
}

func TestBirthday(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"", "", true},
		{"15", "15", true},
		{"15/03", "1503", true},
		{"3112", "3112", true},
		{"3213", "", false},
		{"0003", "", false},
		{"15/03/1990", "", false},
	}

	for _, tc := range cases {
		got, err := Birthday(tc.in)
		if !tc.ok {
			assert.True(t, httperr.IsBusiness(err, "invalid_birthday"), tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}
