package enum

import (
	"github.com/dealerhub/sales-api/pkg/pricing"
	"github.com/dealerhub/sales-api/pkg/wheel"
)

var DiscountKindDictionary = wheel.Dictionary{
	{Code: string(pricing.DiscountPercentage), Label: "Phần trăm"},
	{Code: string(pricing.DiscountFixed), Label: "Số tiền"},
}

var FormalityDictionary = wheel.Dictionary{
	{Code: string(pricing.FormalitySell), Label: "Bán"},
	{Code: string(pricing.FormalityGift), Label: "Tặng"},
}

// VehicleColors is the paint list offered on quotations
var VehicleColors = []string{"Trắng", "Đen", "Bạc", "Xám", "Đỏ", "Xanh dương", "Nâu"}
