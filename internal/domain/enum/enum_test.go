package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotationStatusJSON(t *testing.T) {
	data, err := json.Marshal(QuotationStatusAccepted)
	require.NoError(t, err)
	assert.JSONEq(t, `"Accepted"`, string(data))

	var s QuotationStatus
	require.NoError(t, json.Unmarshal([]byte(`"Sent"`), &s))
	assert.Equal(t, QuotationStatusSent, s)

	require.NoError(t, json.Unmarshal([]byte(`3`), &s))
	assert.Equal(t, QuotationStatusCanceled, s)

	assert.Equal(t, "Draft", QuotationStatus(42).String())
	assert.False(t, QuotationStatus(42).IsValid())
}

func TestTaskStatusScan(t *testing.T) {
	var s TaskStatus
	require.NoError(t, s.Scan(int64(2)))
	assert.Equal(t, TaskStatusDone, s)

	require.NoError(t, s.Scan(nil))
	assert.Equal(t, TaskStatusTodo, s)
}

func TestDictionariesMatchStatusNames(t *testing.T) {
	for i, e := range QuotationStatusDictionary {
		assert.Equal(t, QuotationStatus(i).String(), e.Code)
	}
	for i, e := range TaskStatusDictionary {
		assert.Equal(t, TaskStatus(i).String(), e.Code)
	}
	assert.True(t, CustomerSourceDictionary.Has(string(CustomerSourceReferral)))
	assert.True(t, CustomerStatusDictionary.Has(string(CustomerStatusTestDrive)))
}

func TestStatusRejectsUnknownNames(t *testing.T) {
	var q QuotationStatus
	assert.Error(t, json.Unmarshal([]byte(`"Won"`), &q))

	var ts TaskStatus
	assert.Error(t, json.Unmarshal([]byte(`"Later"`), &ts))
	require.NoError(t, json.Unmarshal([]byte(`"InProgress"`), &ts))
	assert.Equal(t, TaskStatusInProgress, ts)

	s, ok := ParseQuotationStatus("Accepted")
	assert.True(t, ok)
	assert.Equal(t, QuotationStatusAccepted, s)
	_, ok = ParseTaskStatus("")
	assert.False(t, ok)
}
