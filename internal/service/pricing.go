package service

import (
	"math"

	"github.com/nasir9967/skillbazaar/internal/domain"
)

const (
	commissionRate  = 0.05 // platform's cut of the service price
	platformFeeRate = 0.02 // surcharge added to the customer total
)

// ComputePricing derives the full breakdown from the listed price.
// Amounts are whole currency units; the gateway conversion to paise
// happens at order creation.
func ComputePricing(servicePrice int64) domain.Pricing {
	commission := int64(math.Round(float64(servicePrice) * commissionRate))
	platformFee := int64(math.Round(float64(servicePrice) * platformFeeRate))
	return domain.Pricing{
		ServicePrice:   servicePrice,
		Commission:     commission,
		PlatformFee:    platformFee,
		ProviderAmount: servicePrice - commission,
		TotalAmount:    servicePrice + platformFee,
	}
}
