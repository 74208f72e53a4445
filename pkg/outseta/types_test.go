package outseta_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSameEntity(t *testing.T) {
	t.Parallel()

	first := outseta.Account{Entity: outseta.Entity{UID: "acc-1"}, Name: "Acme"}
	renamed := outseta.Account{Entity: outseta.Entity{UID: "acc-1"}, Name: "Acme Inc"}
	other := outseta.Account{Entity: outseta.Entity{UID: "acc-2"}, Name: "Acme"}

	assert.True(t, outseta.SameEntity(first, renamed))
	assert.False(t, outseta.SameEntity(first, other))
	assert.False(t, outseta.SameEntity(outseta.Account{}, outseta.Account{}))
}

func TestTimestamp_JSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{name: "wire layout", input: `"2023-11-01T08:15:30"`, expected: time.Date(2023, 11, 1, 8, 15, 30, 0, time.UTC)},
		{name: "fractional seconds", input: `"2023-11-01T08:15:30.123"`, expected: time.Date(2023, 11, 1, 8, 15, 30, 123000000, time.UTC)},
		{name: "rfc3339", input: `"2023-11-01T08:15:30Z"`, expected: time.Date(2023, 11, 1, 8, 15, 30, 0, time.UTC)},
		{name: "null", input: `null`, expected: time.Time{}},
		{name: "empty string", input: `""`, expected: time.Time{}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var ts outseta.Timestamp

			err := json.Unmarshal([]byte(testCase.input), &ts)
			require.NoError(t, err)
			assert.True(t, testCase.expected.Equal(ts.Time))
		})
	}
}

func TestTimestamp_Marshal(t *testing.T) {
	t.Parallel()

	ts := outseta.NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 999, time.UTC))

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-01-02T03:04:05"`, string(data))
	assert.Equal(t, "2024-01-02T03:04:05", ts.String())

	data, err = json.Marshal(outseta.Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	out, err := yaml.Marshal(map[string]*outseta.Timestamp{"at": ts})
	require.NoError(t, err)
	assert.Contains(t, string(out), "2024-01-02T03:04:05")
}

func TestTimestamp_OffsetNormalizedToUTC(t *testing.T) {
	t.Parallel()

	var ts outseta.Timestamp

	require.NoError(t, json.Unmarshal([]byte(`"2024-01-02T03:04:05+02:00"`), &ts))

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-01-02T01:04:05"`, string(data))
	assert.Equal(t, "2024-01-02T01:04:05", ts.String())

	var roundTripped outseta.Timestamp

	require.NoError(t, json.Unmarshal(data, &roundTripped))
	assert.True(t, ts.Equal(roundTripped.Time))
}

func TestEnums_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Subscribing", outseta.AccountStageSubscribing.String())
	assert.Equal(t, "Custom", outseta.ActivityTypeCustom.String())
	assert.Equal(t, "Yearly", outseta.BillingRenewalTermYearly.String())
	assert.Equal(t, "Refund", outseta.BillingTransactionTypeRefund.String())
	assert.Equal(t, "Closed", outseta.CaseStatusClosed.String())
	assert.Equal(t, "99", outseta.EntityType(99).String())
}

func TestCancelAccountRequest_WireName(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(outseta.CancelAccountRequest{CancellationReason: "too expensive"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"CancelationReason":"too expensive"}`, string(data))
}
