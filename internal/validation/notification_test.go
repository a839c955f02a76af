package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPayload = `{
	"transactions": [
		{
			"id": "t1",
			"created_at": "2024-06-01T12:00:00Z",
			"updated_at": "2024-06-01T12:00:05Z",
			"description": "salary",
			"type": "deposit",
			"type_method": "bank_transfer",
			"state": "successful",
			"user_id": "u1",
			"user_name": "Jamie",
			"amount": 100.00,
			"currency": "AUD",
			"debit_credit": "credit"
		}
	]
}`

func TestParseNotificationValid(t *testing.T) {
	candidates, err := ParseNotification([]byte(validPayload))
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	cand := candidates[0]
	assert.Equal(t, "t1", cand.ID)
	assert.Equal(t, "deposit", cand.Type)
	assert.Equal(t, "u1", cand.UserID)
	assert.Equal(t, 100.00, cand.Amount)
	assert.Equal(t, "AUD", cand.Currency)
	assert.Equal(t, "credit", cand.DebitCredit)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), cand.CreatedAt)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 5, 0, time.UTC), cand.UpdatedAt)
}

func TestParseNotificationAmountAsString(t *testing.T) {
	payload := `{
		"transactions": [
			{
				"id": "t1",
				"created_at": "2024-06-01T12:00:00Z",
				"updated_at": "2024-06-01T12:00:00Z",
				"type": "withdraw",
				"user_id": "u1",
				"amount": "50.00",
				"currency": "AUD",
				"debit_credit": "debit"
			}
		]
	}`
	candidates, err := ParseNotification([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, 50.00, candidates[0].Amount)
}

func TestParseNotificationFailures(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name:    "not json",
			payload: `{`,
			want:    "payload is not valid JSON",
		},
		{
			name:    "missing transactions key",
			payload: `{}`,
			want:    "transactions is required",
		},
		{
			name:    "empty transactions array",
			payload: `{"transactions": []}`,
			want:    "at least one transaction is required",
		},
		{
			name: "invalid type",
			payload: `{"transactions": [{"id": "t1", "created_at": "2024-06-01T12:00:00Z",
				"updated_at": "2024-06-01T12:00:00Z", "type": "transfer", "user_id": "u1",
				"amount": 10, "currency": "AUD", "debit_credit": "credit"}]}`,
			want: "transactions[0].type must be one of [deposit withdraw payment]",
		},
		{
			name: "invalid debit_credit",
			payload: `{"transactions": [{"id": "t1", "created_at": "2024-06-01T12:00:00Z",
				"updated_at": "2024-06-01T12:00:00Z", "type": "deposit", "user_id": "u1",
				"amount": 10, "currency": "AUD", "debit_credit": "both"}]}`,
			want: "transactions[0].debit_credit must be one of [credit debit]",
		},
		{
			name: "negative amount",
			payload: `{"transactions": [{"id": "t1", "created_at": "2024-06-01T12:00:00Z",
				"updated_at": "2024-06-01T12:00:00Z", "type": "deposit", "user_id": "u1",
				"amount": -10, "currency": "AUD", "debit_credit": "credit"}]}`,
			want: "transactions[0].amount must be a positive number",
		},
		{
			name: "bad created_at",
			payload: `{"transactions": [{"id": "t1", "created_at": "yesterday",
				"updated_at": "2024-06-01T12:00:00Z", "type": "deposit", "user_id": "u1",
				"amount": 10, "currency": "AUD", "debit_credit": "credit"}]}`,
			want: "transactions[0].created_at is not a valid date-time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNotification([]byte(tt.payload))
			require.Error(t, err)

			vErr, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			assert.Contains(t, vErr.Fields, tt.want)
		})
	}
}

func TestParseNotificationCollectsAllFailures(t *testing.T) {
	payload := `{"transactions": [{"id": "", "created_at": "2024-06-01T12:00:00Z",
		"updated_at": "2024-06-01T12:00:00Z", "type": "transfer", "user_id": "",
		"amount": 0, "currency": "", "debit_credit": "credit"}]}`

	_, err := ParseNotification([]byte(payload))
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Fields, "transactions[0].id is required")
	assert.Contains(t, vErr.Fields, "transactions[0].type must be one of [deposit withdraw payment]")
	assert.Contains(t, vErr.Fields, "transactions[0].user_id is required")
	assert.Contains(t, vErr.Fields, "transactions[0].currency is required")
	assert.GreaterOrEqual(t, len(vErr.Fields), 4)
}
