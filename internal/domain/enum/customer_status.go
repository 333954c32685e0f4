package enum

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/dealerhub/sales-api/pkg/wheel"
)

// CustomerStatus represents where a customer is in the sales funnel
type CustomerStatus string

const (
	CustomerStatusNew         CustomerStatus = "new"
	CustomerStatusContacted   CustomerStatus = "contacted"
	CustomerStatusTestDrive   CustomerStatus = "test_drive"
	CustomerStatusNegotiating CustomerStatus = "negotiating"
	CustomerStatusWon         CustomerStatus = "won"
	CustomerStatusLost        CustomerStatus = "lost"
)

var CustomerStatusDictionary = wheel.Dictionary{
	{Code: string(CustomerStatusNew), Label: "Mới"},
	{Code: string(CustomerStatusContacted), Label: "Đã liên hệ"},
	{Code: string(CustomerStatusTestDrive), Label: "Đã lái thử"},
	{Code: string(CustomerStatusNegotiating), Label: "Đang đàm phán"},
	{Code: string(CustomerStatusWon), Label: "Đã ký hợp đồng"},
	{Code: string(CustomerStatusLost), Label: "Thất bại"},
}

func (s CustomerStatus) String() string {
	return string(s)
}

func (s CustomerStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *CustomerStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = CustomerStatus(str)
	return nil
}

func (s CustomerStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *CustomerStatus) Scan(value interface{}) error {
	if value == nil {
		*s = CustomerStatusNew
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = CustomerStatus(v)
	case []byte:
		*s = CustomerStatus(string(v))
	}
	return nil
}
