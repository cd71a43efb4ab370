package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nprnops/routing-reconciler/internal/domain/errors"
)

func TestNewCanonicalNumber(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedError  bool
		expectedDN     string
		expectedTarget string
	}{
		{
			name:           "10-digit local number",
			input:          "0412345678",
			expectedDN:     "41412345678",
			expectedTarget: "0412345678",
		},
		{
			name:           "11-digit directory number",
			input:          "41412345678",
			expectedDN:     "41412345678",
			expectedTarget: "0412345678",
		},
		{
			name:           "formatting characters are stripped",
			input:          "041 234 56-78",
			expectedDN:     "41412345678",
			expectedTarget: "0412345678",
		},
		{
			name:          "8 digits is unsupported",
			input:         "98765432",
			expectedError: true,
		},
		{
			name:          "10 digits without leading zero",
			input:         "4123456789",
			expectedError: true,
		},
		{
			name:          "11 digits without 41 prefix",
			input:         "51412345678",
			expectedError: true,
		},
		{
			name:          "empty input",
			input:         "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewCanonicalNumber(tt.input)
			if tt.expectedError {
				require.Error(t, err)
				assert.Equal(t, "UNSUPPORTED_NUMBER_FORMAT", errors.GetCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedDN, n.DN())
			assert.Equal(t, tt.expectedTarget, n.Target())
		})
	}
}

func TestCanonicalNumber_Invariant(t *testing.T) {
	// dn and target are two views of one identity
	n := MustNewCanonicalNumber("0412345678")
	assert.Equal(t, "41"+n.Target()[1:], n.DN())
	assert.Equal(t, "0"+n.DN()[2:], n.Target())
}

func TestCanonicalNumber_RoundTrip(t *testing.T) {
	// classifying the produced DN re-derives the original local number
	inputs := []string{"0412345678", "0799999999", "0000000001"}
	for _, input := range inputs {
		n := MustNewCanonicalNumber(input)
		back := MustNewCanonicalNumber(n.DN())
		assert.Equal(t, input, back.Target())
	}
}

func TestCanonicalNumber_RoutingKey(t *testing.T) {
	n := MustNewCanonicalNumber("0412345678")
	assert.Equal(t, "nprn:routing:41412345678", n.RoutingKey())
}

func TestCanonicalNumber_Equal(t *testing.T) {
	a := MustNewCanonicalNumber("0412345678")
	b := MustNewCanonicalNumber("41412345678")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(MustNewCanonicalNumber("0412345679")))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "0412345678", Digits("+0 41-234.5678"))
	assert.Equal(t, "", Digits("abc"))
	assert.Equal(t, "", Digits(""))
}

func TestEnpProfileFor(t *testing.T) {
	p1, err := EnpProfileFor("NXP1")
	require.NoError(t, err)
	assert.Equal(t, 500, p1.SystemID)
	assert.Equal(t, 98067, p1.NPRN)

	p2, err := EnpProfileFor("NXP2")
	require.NoError(t, err)
	assert.Equal(t, 510, p2.SystemID)
	assert.Equal(t, 98019, p2.NPRN)

	_, err = EnpProfileFor("NXP3")
	assert.Error(t, err)
}
