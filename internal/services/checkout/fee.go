package checkout

import (
	"math"

	"marketpay/internal/models"
)

// SplitFee computes the platform/seller split for a total amount in
// minor units. Rounding is half-up and happens once, on the final
// product, never accumulated across line items. The split always
// satisfies PlatformFeeAmount + SellerAmount == TotalAmount.
func SplitFee(totalAmount int64, feePercent float64) models.FeeBreakdown {
	fee := int64(math.Round(float64(totalAmount) * feePercent / 100))
	return models.FeeBreakdown{
		TotalAmount:       totalAmount,
		PlatformFeeAmount: fee,
		SellerAmount:      totalAmount - fee,
		FeePercent:        feePercent,
	}
}
