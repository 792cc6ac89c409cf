package coupon

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"marketplace-bff/internal/format"
	"marketplace-bff/internal/timestamp"
	"marketplace-bff/internal/transforms/shared"
)

// usage is the state every coupon flag is derived from.
type usage struct {
	expired bool
	usedUp  bool
	active  bool
	started bool
}

func evaluate(be CouponBE, now time.Time) usage {
	u := usage{
		expired: be.EndDate.Before(now),
		usedUp:  be.UsageLimit != nil && be.UsageCount >= *be.UsageLimit,
		started: !now.Before(be.StartDate.Time),
	}
	u.active = be.Status == StatusActive && !u.expired && !u.usedUp
	return u
}

func (u usage) canBeUsed() bool { return u.active && u.started }

// ToFE builds the coupon detail view at now.
func ToFE(be CouponBE, now time.Time) CouponFE {
	u := evaluate(be, now)
	return CouponFE{
		ID:                    be.ID,
		Code:                  be.Code,
		Name:                  be.Name,
		Description:           shared.Str(be.Description),
		ShopID:                shared.Str(be.ShopID),
		Type:                  be.Type,
		DiscountValue:         be.DiscountValue,
		MaxDiscountAmount:     be.MaxDiscountAmount,
		MinPurchaseAmount:     be.MinPurchaseAmount,
		Tiers:                 shared.Map(be.Tiers, toTierFE),
		UsageLimit:            be.UsageLimit,
		UsageCount:            be.UsageCount,
		PerUserLimit:          be.PerUserLimit,
		ApplicableCategoryIDs: shared.Strings(be.ApplicableCategoryIDs),
		ApplicableProductIDs:  shared.Strings(be.ApplicableProductIDs),
		Status:                be.Status,
		StartDate:             be.StartDate.Time,
		EndDate:               be.EndDate.Time,
		CreatedAt:             be.CreatedAt.Time,
		UpdatedAt:             timestamp.Ptr(be.UpdatedAt),

		FormattedDiscount:    FormatDiscount(be),
		FormattedMinPurchase: formattedMinPurchase(be.MinPurchaseAmount),
		FormattedStartDate:   format.Date(be.StartDate.Time),
		FormattedEndDate:     format.Date(be.EndDate.Time),
		ValidityLabel:        validityLabel(be, u),
		UsageLabel:           usageLabel(be),

		IsExpired:       u.expired,
		IsUsedUp:        u.usedUp,
		IsActive:        u.active,
		CanBeUsed:       u.canBeUsed(),
		RemainingUses:   remainingUses(be),
		UsagePercentage: usagePercentage(be),
		StatusBadge:     statusBadge(u),
	}
}

// ToCard builds the list row at now.
func ToCard(be CouponBE, now time.Time) CouponCardFE {
	u := evaluate(be, now)
	return CouponCardFE{
		ID:                be.ID,
		Code:              be.Code,
		Name:              be.Name,
		Type:              be.Type,
		FormattedDiscount: FormatDiscount(be),
		FormattedEndDate:  format.Date(be.EndDate.Time),
		UsageLabel:        usageLabel(be),
		CanBeUsed:         u.canBeUsed(),
		StatusBadge:       statusBadge(u),
	}
}

// ToFEs maps a batch of coupons.
func ToFEs(in []CouponBE, now time.Time) []CouponFE {
	return shared.Map(in, func(be CouponBE) CouponFE { return ToFE(be, now) })
}

// ToCards maps a batch of coupons to rows.
func ToCards(in []CouponBE, now time.Time) []CouponCardFE {
	return shared.Map(in, func(be CouponBE) CouponCardFE { return ToCard(be, now) })
}

// ToBECreateRequest converts the create form. Codes are stored trimmed and
// upper-cased.
func ToBECreateRequest(form CouponFormFE) CreateCouponRequestBE {
	return CreateCouponRequestBE{
		Code:                  NormalizeCode(form.Code),
		Name:                  form.Name,
		Description:           shared.OptString(form.Description),
		ShopID:                shared.OptString(form.ShopID),
		Type:                  form.Type,
		DiscountValue:         form.DiscountValue,
		MaxDiscountAmount:     form.MaxDiscountAmount,
		MinPurchaseAmount:     form.MinPurchaseAmount,
		Tiers:                 form.Tiers,
		UsageLimit:            form.UsageLimit,
		PerUserLimit:          form.PerUserLimit,
		ApplicableCategoryIDs: shared.Strings(form.ApplicableCategoryIDs),
		ApplicableProductIDs:  shared.Strings(form.ApplicableProductIDs),
		StartDate:             shared.ISO(form.StartDate),
		EndDate:               shared.ISO(form.EndDate),
	}
}

// ToBEUpdateRequest builds a sparse patch.
func ToBEUpdateRequest(form CouponUpdateFormFE) shared.Patch {
	p := shared.Patch{}
	shared.Set(p, "name", form.Name)
	shared.Set(p, "description", form.Description)
	shared.Set(p, "discountValue", form.DiscountValue)
	shared.Set(p, "maxDiscountAmount", form.MaxDiscountAmount)
	shared.Set(p, "minPurchaseAmount", form.MinPurchaseAmount)
	shared.Set(p, "tiers", form.Tiers)
	shared.Set(p, "usageLimit", form.UsageLimit)
	shared.Set(p, "perUserLimit", form.PerUserLimit)
	shared.Set(p, "status", form.Status)
	shared.SetTime(p, "startDate", form.StartDate)
	shared.SetTime(p, "endDate", form.EndDate)
	return p
}

// NormalizeCode is the stored form of a coupon code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// FormatDiscount renders the headline discount for a coupon.
func FormatDiscount(be CouponBE) string {
	switch be.Type {
	case TypePercentage:
		s := number(be.DiscountValue) + "% off"
		if be.MaxDiscountAmount != nil {
			s += ", max " + format.INR(*be.MaxDiscountAmount)
		}
		return s
	case TypeFlat:
		return format.INR(be.DiscountValue) + " off"
	case TypeFreeShipping:
		return "Free Shipping"
	case TypeBOGO:
		return "Buy One Get One"
	case TypeTiered:
		return "Tiered Discount"
	default:
		return number(be.DiscountValue)
	}
}

func statusBadge(u usage) shared.Badge {
	switch {
	case u.expired:
		return shared.Badge{Text: "Expired", Variant: "error"}
	case u.usedUp:
		return shared.Badge{Text: "Used Up", Variant: "error"}
	case u.active:
		return shared.Badge{Text: "Active", Variant: "success"}
	default:
		return shared.Badge{Text: "Inactive", Variant: "default"}
	}
}

func remainingUses(be CouponBE) *int {
	if be.UsageLimit == nil {
		return nil
	}
	n := *be.UsageLimit - be.UsageCount
	if n < 0 {
		n = 0
	}
	return &n
}

func usagePercentage(be CouponBE) float64 {
	if be.UsageLimit == nil || *be.UsageLimit <= 0 {
		return 0
	}
	return shared.Clamp(float64(be.UsageCount)/float64(*be.UsageLimit)*100, 0, 100)
}

func usageLabel(be CouponBE) string {
	if be.UsageLimit == nil {
		return fmt.Sprintf("%s used", format.Number(int64(be.UsageCount)))
	}
	return fmt.Sprintf("%s / %s used", format.Number(int64(be.UsageCount)), format.Number(int64(*be.UsageLimit)))
}

func validityLabel(be CouponBE, u usage) string {
	switch {
	case u.expired:
		return "Expired on " + format.Date(be.EndDate.Time)
	case !u.started:
		return "Starts " + format.Date(be.StartDate.Time)
	default:
		return "Valid till " + format.Date(be.EndDate.Time)
	}
}

func formattedMinPurchase(amount *float64) string {
	if amount == nil {
		return ""
	}
	return "Min. purchase " + format.INRDecimal(*amount)
}

func toTierFE(t TierBE) TierFE {
	return TierFE{
		MinAmount:          t.MinAmount,
		Discount:           t.Discount,
		FormattedMinAmount: format.INRDecimal(t.MinAmount),
		Label:              fmt.Sprintf("Spend %s, get %s%% off", format.INRDecimal(t.MinAmount), number(t.Discount)),
	}
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
