package auction

import (
	"time"

	"marketplace-bff/internal/transforms/shared"
)

const (
	endingSoonWindow = time.Hour
	hotBidThreshold  = 50
	bidProgressFull  = 100
)

// detailState is what the detail badge predicates look at.
type detailState struct {
	auction          AuctionBE
	secondsRemaining int64
}

// cardState is what the card badge predicates look at.
type cardState struct {
	item AuctionListItemBE
	now  time.Time
}

func isLive(s Status) bool { return s == StatusActive }

func isEndingSoon(secondsRemaining int64) bool {
	return secondsRemaining > 0 && secondsRemaining < int64(endingSoonWindow/time.Second)
}

func isHot(totalBids int) bool { return totalBids > hotBidThreshold }

func hasBuyNow(price *float64) bool { return price != nil }

func isSilent(t Type) bool { return t == TypeSilent }

var detailBadges = []shared.BadgeRule[detailState]{
	{Label: "Live", Applies: func(s detailState) bool { return isLive(s.auction.Status) }},
	{Label: "Ending Soon", Applies: func(s detailState) bool { return isEndingSoon(s.secondsRemaining) }},
	{Label: "Hot", Applies: func(s detailState) bool { return isHot(s.auction.TotalBids) }},
	{Label: "Reserve Met", Applies: func(s detailState) bool { return s.auction.ReserveMet }},
	{Label: "Buy Now Available", Applies: func(s detailState) bool { return hasBuyNow(s.auction.BuyNowPrice) }},
	{Label: "Silent", Applies: func(s detailState) bool { return isSilent(s.auction.Type) }},
}

// Cards re-check the end time themselves, so an auction whose status has not
// been flipped yet stops showing "Live" once it is past its end.
var cardBadges = []shared.BadgeRule[cardState]{
	{Label: "Live", Applies: func(s cardState) bool { return isLive(s.item.Status) && s.now.Before(s.item.EndTime.Time) }},
	{Label: "Ending Soon", Applies: func(s cardState) bool { return isEndingSoon(secondsUntil(s.item.EndTime.Time, s.now)) }},
	{Label: "Hot", Applies: func(s cardState) bool { return isHot(s.item.TotalBids) }},
	{Label: "Featured", Applies: func(s cardState) bool { return s.item.Featured }},
}

func secondsUntil(t, now time.Time) int64 {
	d := t.Sub(now)
	if d <= 0 {
		return 0
	}
	return int64(d / time.Second)
}
