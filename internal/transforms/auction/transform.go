package auction

import (
	"math"
	"time"

	"marketplace-bff/internal/format"
	"marketplace-bff/internal/timestamp"
	"marketplace-bff/internal/transforms/shared"
)

// ToFE builds the detail view of an auction as seen by actingUserID at now.
// An empty actingUserID is an anonymous visitor.
func ToFE(be AuctionBE, now time.Time, actingUserID string) AuctionFE {
	start, end := be.StartTime.Time, be.EndTime.Time
	secondsRemaining := secondsUntil(end, now)
	isActive := be.Status == StatusActive && !now.Before(start) && now.Before(end)

	fe := AuctionFE{
		ID:              be.ID,
		ShopID:          be.ShopID,
		SellerID:        be.SellerID,
		CategoryID:      shared.Str(be.CategoryID),
		Name:            be.Name,
		Slug:            be.Slug,
		Description:     be.Description,
		Images:          shared.Strings(be.Images),
		PrimaryImage:    shared.FirstString(be.Images),
		Type:            be.Type,
		Status:          be.Status,
		StartingPrice:   be.StartingPrice,
		CurrentPrice:    be.CurrentPrice,
		ReservePrice:    be.ReservePrice,
		BuyNowPrice:     be.BuyNowPrice,
		BidIncrement:    be.BidIncrement,
		MinimumBid:      minimumBid(be),
		ReserveMet:      be.ReserveMet,
		TotalBids:       be.TotalBids,
		UniqueBidders:   be.UniqueBidders,
		HighestBidderID: shared.Str(be.HighestBidderID),
		WinnerID:        shared.Str(be.WinnerID),
		Featured:        be.Featured,
		ViewCount:       be.ViewCount,
		WatchCount:      be.WatchCount,
		StartTime:       start,
		EndTime:         end,
		CreatedAt:       be.CreatedAt.Time,
		UpdatedAt:       be.UpdatedAt.Time,
		EndedAt:         timestamp.Ptr(be.EndedAt),

		FormattedStartingPrice: format.INR(be.StartingPrice),
		FormattedCurrentPrice:  format.INR(be.CurrentPrice),
		FormattedBidIncrement:  format.INR(be.BidIncrement),
		FormattedStartTime:     format.DateTime(start),
		FormattedEndTime:       format.DateTime(end),

		SecondsRemaining: secondsRemaining,
		TimeRemaining:    timeRemaining(secondsRemaining),

		IsActive:      isActive,
		IsUpcoming:    now.Before(start),
		IsLive:        isLive(be.Status),
		IsEnded:       isEnded(be.Status, end, now),
		IsEndingSoon:  isEndingSoon(secondsRemaining),
		CanBid:        isActive && be.SellerID != actingUserID,
		CanBuyNow:     isActive && hasBuyNow(be.BuyNowPrice),
		IsYourAuction: isActor(be.SellerID, actingUserID),
		IsYouWinning:  isActor(shared.Str(be.HighestBidderID), actingUserID),
		IsYouWinner:   isActor(shared.Str(be.WinnerID), actingUserID),
		ReserveStatus: reserveStatus(be),

		Badges:        shared.Badges(detailState{auction: be, secondsRemaining: secondsRemaining}, detailBadges),
		PriceProgress: priceProgress(be),
		BidProgress:   bidProgress(be.TotalBids),
		TimeProgress:  timeProgress(start, end, now),
	}
	fe.FormattedMinimumBid = format.INR(fe.MinimumBid)
	if be.ReservePrice != nil {
		fe.FormattedReservePrice = format.INR(*be.ReservePrice)
	}
	if be.BuyNowPrice != nil {
		fe.FormattedBuyNowPrice = format.INR(*be.BuyNowPrice)
	}
	return fe
}

// ListItem projects a full document onto the list-item shape.
func ListItem(be AuctionBE) AuctionListItemBE {
	return AuctionListItemBE{
		ID:           be.ID,
		Name:         be.Name,
		Slug:         be.Slug,
		Image:        shared.FirstString(be.Images),
		Status:       be.Status,
		CurrentPrice: be.CurrentPrice,
		BuyNowPrice:  be.BuyNowPrice,
		TotalBids:    be.TotalBids,
		Featured:     be.Featured,
		ShopID:       be.ShopID,
		EndTime:      be.EndTime,
	}
}

// ToCard builds the grid card for a list item.
func ToCard(item AuctionListItemBE, now time.Time) AuctionCardFE {
	secondsRemaining := secondsUntil(item.EndTime.Time, now)
	return AuctionCardFE{
		ID:                    item.ID,
		Name:                  item.Name,
		Slug:                  item.Slug,
		Image:                 item.Image,
		Status:                item.Status,
		ShopID:                item.ShopID,
		CurrentPrice:          item.CurrentPrice,
		FormattedCurrentPrice: format.INR(item.CurrentPrice),
		TotalBids:             item.TotalBids,
		BidsLabel:             format.Plural(item.TotalBids, "bid", "bids"),
		EndTime:               item.EndTime.Time,
		TimeRemaining:         timeRemaining(secondsRemaining),
		IsEndingSoon:          isEndingSoon(secondsRemaining),
		HasBuyNow:             hasBuyNow(item.BuyNowPrice),
		Badges:                shared.Badges(cardState{item: item, now: now}, cardBadges),
	}
}

// ToCardFromBE builds a card straight from a full document.
func ToCardFromBE(be AuctionBE, now time.Time) AuctionCardFE {
	return ToCard(ListItem(be), now)
}

// ToFEs maps a batch of documents.
func ToFEs(in []AuctionBE, now time.Time, actingUserID string) []AuctionFE {
	return shared.Map(in, func(be AuctionBE) AuctionFE { return ToFE(be, now, actingUserID) })
}

// ToCards maps a batch of list items.
func ToCards(in []AuctionListItemBE, now time.Time) []AuctionCardFE {
	return shared.Map(in, func(item AuctionListItemBE) AuctionCardFE { return ToCard(item, now) })
}

// ToBECreateRequest converts the create form into the creation payload.
func ToBECreateRequest(form AuctionFormFE) CreateAuctionRequestBE {
	return CreateAuctionRequestBE{
		ShopID:        form.ShopID,
		CategoryID:    shared.OptString(form.CategoryID),
		Name:          form.Name,
		Slug:          form.Slug,
		Description:   shared.OptString(form.Description),
		Images:        shared.Strings(form.Images),
		Type:          form.Type,
		StartingPrice: form.StartingPrice,
		ReservePrice:  form.ReservePrice,
		BuyNowPrice:   form.BuyNowPrice,
		BidIncrement:  form.BidIncrement,
		StartTime:     shared.ISO(form.StartTime),
		EndTime:       shared.ISO(form.EndTime),
		Featured:      form.Featured,
	}
}

// ToBEUpdateRequest builds a sparse patch holding only the fields set on form.
func ToBEUpdateRequest(form AuctionUpdateFormFE) shared.Patch {
	p := shared.Patch{}
	shared.Set(p, "name", form.Name)
	shared.Set(p, "slug", form.Slug)
	shared.Set(p, "description", form.Description)
	shared.Set(p, "categoryId", form.CategoryID)
	shared.Set(p, "images", form.Images)
	shared.Set(p, "status", form.Status)
	shared.Set(p, "reservePrice", form.ReservePrice)
	shared.Set(p, "buyNowPrice", form.BuyNowPrice)
	shared.Set(p, "bidIncrement", form.BidIncrement)
	shared.SetTime(p, "startTime", form.StartTime)
	shared.SetTime(p, "endTime", form.EndTime)
	shared.Set(p, "featured", form.Featured)
	return p
}

// ToBidFE builds a bid history row.
func ToBidFE(be BidBE, now time.Time, actingUserID string) BidFE {
	name := shared.Str(be.UserName)
	if name == "" {
		name = "Anonymous bidder"
	}
	return BidFE{
		ID:              be.ID,
		AuctionID:       be.AuctionID,
		UserID:          be.UserID,
		BidderName:      name,
		Amount:          be.Amount,
		FormattedAmount: format.INR(be.Amount),
		IsAutoBid:       be.IsAutoBid,
		IsWinning:       be.IsWinning,
		IsYourBid:       isActor(be.UserID, actingUserID),
		CreatedAt:       be.CreatedAt.Time,
		TimeAgo:         format.Compact(be.CreatedAt.Time, now),
	}
}

// ToBidFEs maps a batch of bids.
func ToBidFEs(in []BidBE, now time.Time, actingUserID string) []BidFE {
	return shared.Map(in, func(be BidBE) BidFE { return ToBidFE(be, now, actingUserID) })
}

// ToBEBidRequest converts the place-bid form. The max auto-bid amount is only
// sent for auto bids.
func ToBEBidRequest(form BidFormFE) PlaceBidRequestBE {
	req := PlaceBidRequestBE{
		AuctionID: form.AuctionID,
		Amount:    form.Amount,
		IsAutoBid: form.IsAutoBid,
	}
	if form.IsAutoBid {
		req.MaxAutoBidAmount = form.MaxAutoBidAmount
	}
	return req
}

func isActor(ownerID, actingUserID string) bool {
	return actingUserID != "" && ownerID == actingUserID
}

func isEnded(s Status, end, now time.Time) bool {
	switch s {
	case StatusEnded, StatusCompleted, StatusCancelled:
		return true
	case StatusActive:
		return !now.Before(end)
	}
	return false
}

func minimumBid(be AuctionBE) float64 {
	if be.TotalBids == 0 {
		return be.StartingPrice
	}
	return be.CurrentPrice + be.BidIncrement
}

func reserveStatus(be AuctionBE) string {
	switch {
	case be.ReservePrice == nil:
		return "No reserve"
	case be.ReserveMet:
		return "Reserve met"
	default:
		return "Reserve not met"
	}
}

func timeRemaining(seconds int64) string {
	if seconds <= 0 {
		return "Ended"
	}
	return format.Duration(time.Duration(seconds) * time.Second)
}

func priceProgress(be AuctionBE) float64 {
	if be.BuyNowPrice == nil {
		return 0
	}
	span := *be.BuyNowPrice - be.StartingPrice
	if span <= 0 {
		return 0
	}
	return shared.Clamp((be.CurrentPrice-be.StartingPrice)/span*100, 0, 100)
}

func bidProgress(totalBids int) float64 {
	return math.Min(float64(totalBids)/bidProgressFull*100, 100)
}

func timeProgress(start, end, now time.Time) float64 {
	span := end.Sub(start)
	if span <= 0 {
		return 0
	}
	return shared.Clamp(float64(now.Sub(start))/float64(span)*100, 0, 100)
}
