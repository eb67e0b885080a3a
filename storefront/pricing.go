package storefront

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cast"

	"github.com/vastrakart/vastrakart-api/models"
)

// ErrInvalidCoupon is returned for codes not present in the coupon table.
var ErrInvalidCoupon = errors.New("invalid coupon code")

// coupons maps valid codes to their percentage discount.
var coupons = map[string]int{
	"WELCOME10": 10,
	"SAVE20":    20,
	"FIRST50":   50,
}

// PricingConfig carries the shipping rule: orders with a subtotal above the
// threshold ship free, everything else pays the flat fee.
type PricingConfig struct {
	FreeShippingThreshold int
	FlatShippingFee       int
}

const (
	defaultFreeShippingThreshold = 2999
	defaultFlatShippingFee       = 199
)

// PricingConfigFromEnv reads FREE_SHIPPING_THRESHOLD and SHIPPING_FEE,
// falling back to the storefront defaults when unset or unparseable.
func PricingConfigFromEnv() PricingConfig {
	cfg := PricingConfig{
		FreeShippingThreshold: defaultFreeShippingThreshold,
		FlatShippingFee:       defaultFlatShippingFee,
	}
	if v := os.Getenv("FREE_SHIPPING_THRESHOLD"); v != "" {
		cfg.FreeShippingThreshold = cast.ToInt(v)
	}
	if v := os.Getenv("SHIPPING_FEE"); v != "" {
		cfg.FlatShippingFee = cast.ToInt(v)
	}
	return cfg
}

// CouponPercent resolves a coupon code to its percentage discount. Codes are
// matched case-sensitively after trimming surrounding whitespace; unknown
// codes fail with ErrInvalidCoupon and change no state.
func CouponPercent(code string) (int, error) {
	percent, ok := coupons[strings.TrimSpace(code)]
	if !ok {
		return 0, ErrInvalidCoupon
	}
	return percent, nil
}

// Quote is the derived pricing breakdown for a cart. It has no persisted
// state and is recomputed from the live cart on every request.
type Quote struct {
	Subtotal       int `json:"subtotal"`
	Savings        int `json:"savings"`
	CouponDiscount int `json:"couponDiscount"`
	Shipping       int `json:"shipping"`
	Total          int `json:"total"`
}

// PriceCart computes the pricing breakdown for the given cart lines and an
// already-resolved coupon percentage (zero for no coupon).
func PriceCart(items []models.CartItem, couponPercent int, cfg PricingConfig) Quote {
	var q Quote
	for _, item := range items {
		q.Subtotal += item.LineTotal()
		q.Savings += (item.OriginalPrice - item.Price) * item.Quantity
	}
	q.CouponDiscount = q.Subtotal * couponPercent / 100
	if q.Subtotal <= cfg.FreeShippingThreshold {
		q.Shipping = cfg.FlatShippingFee
	}
	q.Total = q.Subtotal - q.CouponDiscount + q.Shipping
	return q
}
