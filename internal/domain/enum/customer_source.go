package enum

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/dealerhub/sales-api/pkg/wheel"
)

// CustomerSource represents the channel a lead came from
type CustomerSource string

const (
	CustomerSourceWalkIn   CustomerSource = "walk_in"
	CustomerSourceHotline  CustomerSource = "hotline"
	CustomerSourceReferral CustomerSource = "referral"
	CustomerSourceFacebook CustomerSource = "facebook"
	CustomerSourceWebsite  CustomerSource = "website"
	CustomerSourceEvent    CustomerSource = "event"
)

var CustomerSourceDictionary = wheel.Dictionary{
	{Code: string(CustomerSourceWalkIn), Label: "Khách đến showroom"},
	{Code: string(CustomerSourceHotline), Label: "Hotline"},
	{Code: string(CustomerSourceReferral), Label: "Người quen giới thiệu"},
	{Code: string(CustomerSourceFacebook), Label: "Facebook"},
	{Code: string(CustomerSourceWebsite), Label: "Website"},
	{Code: string(CustomerSourceEvent), Label: "Sự kiện lái thử"},
}

func (t CustomerSource) String() string {
	return string(t)
}

func (t CustomerSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *CustomerSource) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = CustomerSource(str)
	return nil
}

func (t CustomerSource) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *CustomerSource) Scan(value interface{}) error {
	if value == nil {
		*t = CustomerSourceWalkIn
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = CustomerSource(v)
	case []byte:
		*t = CustomerSource(string(v))
	}
	return nil
}
