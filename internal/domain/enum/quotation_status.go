package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/dealerhub/sales-api/pkg/wheel"
)

// QuotationStatus represents the status of a vehicle quotation
type QuotationStatus int

const (
	QuotationStatusDraft    QuotationStatus = 0
	QuotationStatusSent     QuotationStatus = 1
	QuotationStatusAccepted QuotationStatus = 2
	QuotationStatusCanceled QuotationStatus = 3
)

var quotationStatusNames = [...]string{"Draft", "Sent", "Accepted", "Canceled"}

// QuotationStatusDictionary lists statuses with their display labels in pipeline order
var QuotationStatusDictionary = wheel.Dictionary{
	{Code: "Draft", Label: "Nháp"},
	{Code: "Sent", Label: "Đã gửi"},
	{Code: "Accepted", Label: "Đã chốt"},
	{Code: "Canceled", Label: "Đã hủy"},
}

func (s QuotationStatus) String() string {
	if int(s) < 0 || int(s) >= len(quotationStatusNames) {
		return "Draft"
	}
	return quotationStatusNames[s]
}

// IsValid reports whether s is a known status
func (s QuotationStatus) IsValid() bool {
	return int(s) >= 0 && int(s) < len(quotationStatusNames)
}

func (s QuotationStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *QuotationStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = QuotationStatus(i)
		return nil
	}
	status, ok := ParseQuotationStatus(str)
	if !ok {
		return fmt.Errorf("unknown quotation status %q", str)
	}
	*s = status
	return nil
}

// ParseQuotationStatus looks a status up by name, e.g. "Accepted"
func ParseQuotationStatus(name string) (QuotationStatus, bool) {
	for i, n := range quotationStatusNames {
		if n == name {
			return QuotationStatus(i), true
		}
	}
	return QuotationStatusDraft, false
}

func (s QuotationStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *QuotationStatus) Scan(value interface{}) error {
	if value == nil {
		*s = QuotationStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = QuotationStatus(v)
	case int:
		*s = QuotationStatus(v)
	}
	return nil
}
