package viewservice

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace-bff/internal/marketerrors"
	"marketplace-bff/internal/store"
	"marketplace-bff/internal/transforms/auction"
	"marketplace-bff/internal/transforms/category"
	"marketplace-bff/internal/transforms/coupon"
	"marketplace-bff/internal/transforms/order"
	"marketplace-bff/internal/transforms/product"
	"marketplace-bff/internal/transforms/returns"
	"marketplace-bff/internal/transforms/riplimit"
	"marketplace-bff/internal/transforms/shared"
	"marketplace-bff/internal/transforms/shop"
	"marketplace-bff/internal/transforms/ticket"
	"marketplace-bff/internal/transforms/user"
)

// frame is what every view computation needs besides the document.
type frame struct {
	now          time.Time
	actingUserID string
}

// resource binds a public resource name to its collection and transforms.
// A nil function means the operation is not offered.
type resource struct {
	collection string
	filters    []string // list filters accepted from query parameters
	owner      string   // field stamped with the acting user on create
	parent     string   // field copied from the query parameter of the same name on create

	detail func(store.Document, frame) (any, error)
	cards  func([]store.Document, frame) (any, error)
	create func([]byte) (store.Document, error)
	update func([]byte) (map[string]any, error)
}

var resources = map[string]resource{
	"auctions": {
		collection: "auctions",
		filters:    []string{"shopId", "sellerId", "categoryId", "status"},
		owner:      "sellerId",
		detail:     detail(func(be auction.AuctionBE, f frame) auction.AuctionFE { return auction.ToFE(be, f.now, f.actingUserID) }),
		cards:      cards(func(be auction.AuctionBE, f frame) auction.AuctionCardFE { return auction.ToCardFromBE(be, f.now) }),
		create:     creating(auction.ToBECreateRequest),
		update:     updating(auction.ToBEUpdateRequest),
	},
	"bids": {
		collection: "bids",
		filters:    []string{"auctionId", "userId"},
		owner:      "userId",
		detail:     detail(func(be auction.BidBE, f frame) auction.BidFE { return auction.ToBidFE(be, f.now, f.actingUserID) }),
		cards:      cards(func(be auction.BidBE, f frame) auction.BidFE { return auction.ToBidFE(be, f.now, f.actingUserID) }),
		create:     creating(auction.ToBEBidRequest, validBid),
	},
	"orders": {
		collection: "orders",
		filters:    []string{"userId", "shopId", "status"},
		owner:      "userId",
		detail:     detail(func(be order.OrderBE, f frame) order.OrderFE { return order.ToFE(be, f.now) }),
		cards:      cards(func(be order.OrderBE, _ frame) order.OrderCardFE { return order.ToCard(be) }),
		create:     creating(order.ToBECreateRequest),
		update:     updating(order.ToBEUpdateRequest),
	},
	"products": {
		collection: "products",
		filters:    []string{"shopId", "sellerId", "categoryId", "status"},
		owner:      "sellerId",
		detail:     detail(func(be product.ProductBE, f frame) product.ProductFE { return product.ToFE(be, f.now, f.actingUserID) }),
		cards:      cards(func(be product.ProductBE, f frame) product.ProductCardFE { return product.ToCard(be, f.now) }),
		create:     creating(product.ToBECreateRequest),
		update:     updating(product.ToBEUpdateRequest),
	},
	"categories": {
		collection: "categories",
		detail:     detail(func(be category.CategoryBE, _ frame) category.CategoryFE { return category.ToFE(be) }),
		cards:      cards(func(be category.CategoryBE, _ frame) category.CategoryCardFE { return category.ToCard(be) }),
		create:     creating(category.ToBECreateRequest),
		update:     updating(category.ToBEUpdateRequest),
	},
	"shops": {
		collection: "shops",
		filters:    []string{"ownerId", "status"},
		owner:      "ownerId",
		detail:     detail(func(be shop.ShopBE, f frame) shop.ShopFE { return shop.ToFE(be, f.actingUserID) }),
		cards:      cards(func(be shop.ShopBE, _ frame) shop.ShopCardFE { return shop.ToCard(be) }),
		create:     creating(shop.ToBECreateRequest),
		update:     updating(shop.ToBEUpdateRequest),
	},
	"coupons": {
		collection: "coupons",
		filters:    []string{"shopId", "status"},
		detail:     detail(func(be coupon.CouponBE, f frame) coupon.CouponFE { return coupon.ToFE(be, f.now) }),
		cards:      cards(func(be coupon.CouponBE, f frame) coupon.CouponCardFE { return coupon.ToCard(be, f.now) }),
		create:     creating(coupon.ToBECreateRequest),
		update:     updating(coupon.ToBEUpdateRequest),
	},
	"returns": {
		collection: "returns",
		filters:    []string{"orderId", "userId", "shopId", "status"},
		owner:      "userId",
		detail:     detail(func(be returns.ReturnBE, f frame) returns.ReturnFE { return returns.ToFE(be, f.now) }),
		cards:      cards(func(be returns.ReturnBE, f frame) returns.ReturnCardFE { return returns.ToCard(be, f.now) }),
		create:     creating(returns.ToBECreateRequest),
		update:     updating(returns.ToBEUpdateRequest),
	},
	"tickets": {
		collection: "tickets",
		filters:    []string{"userId", "status", "category"},
		owner:      "userId",
		detail:     detail(func(be ticket.TicketBE, f frame) ticket.TicketFE { return ticket.ToFE(be, f.now, f.actingUserID) }),
		cards:      cards(func(be ticket.TicketBE, f frame) ticket.TicketCardFE { return ticket.ToCard(be, f.now) }),
		create:     creating(ticket.ToBECreateRequest),
		update:     updating(ticket.ToBEUpdateRequest),
	},
	"ticket-messages": {
		collection: "ticketMessages",
		filters:    []string{"ticketId"},
		owner:      "senderId",
		parent:     "ticketId",
		detail:     detail(func(be ticket.MessageBE, f frame) ticket.MessageFE { return ticket.ToMessageFE(be, f.now, f.actingUserID) }),
		cards:      cards(func(be ticket.MessageBE, f frame) ticket.MessageFE { return ticket.ToMessageFE(be, f.now, f.actingUserID) }),
		create:     creating(ticket.ToBEReplyRequest, validReply),
	},
	"users": {
		collection: "users",
		filters:    []string{"role"},
		detail:     detail(func(be user.UserBE, f frame) user.UserFE { return user.ToFE(be, f.now, f.actingUserID) }),
		cards:      cards(func(be user.UserBE, f frame) user.UserCardFE { return user.ToCard(be, f.now) }),
		create:     creating(user.ToBECreateRequest, validUser),
		update:     updating(user.ToBEUpdateRequest),
	},
	"riplimit-balances": {
		collection: "riplimitBalances",
		detail:     detail(func(be riplimit.BalanceBE, _ frame) riplimit.BalanceFE { return riplimit.ToBalanceFE(be) }),
		cards:      cards(func(be riplimit.BalanceBE, _ frame) riplimit.BalanceFE { return riplimit.ToBalanceFE(be) }),
	},
	"riplimit-transactions": {
		collection: "riplimitTransactions",
		filters:    []string{"userId", "type", "auctionId"},
		detail:     detail(func(be riplimit.TransactionBE, f frame) riplimit.TransactionFE { return riplimit.ToTransactionFE(be, f.now) }),
		cards:      cards(func(be riplimit.TransactionBE, f frame) riplimit.TransactionFE { return riplimit.ToTransactionFE(be, f.now) }),
	},
	"riplimit-purchases": {
		collection: "riplimitPurchases",
		owner:      "userId",
		create:     creating(riplimit.ToBEPurchaseRequest, validPurchase),
	},
	"riplimit-withdrawals": {
		collection: "riplimitWithdrawals",
		owner:      "userId",
		create:     creating(riplimit.ToBEWithdrawRequest, validWithdrawal),
	},
}

// Resources returns the names of every registered resource.
func Resources() []string {
	names := make([]string, 0, len(resources))
	for name := range resources {
		names = append(names, name)
	}
	return names
}

func detail[B, F any](to func(B, frame) F) func(store.Document, frame) (any, error) {
	return func(doc store.Document, f frame) (any, error) {
		var be B
		if err := store.Decode(doc, &be); err != nil {
			return nil, err
		}
		return to(be, f), nil
	}
}

func cards[B, C any](to func(B, frame) C) func([]store.Document, frame) (any, error) {
	return func(docs []store.Document, f frame) (any, error) {
		out := make([]C, 0, len(docs))
		for _, doc := range docs {
			var be B
			if err := store.Decode(doc, &be); err != nil {
				return nil, fmt.Errorf("document %v: %w", doc["id"], err)
			}
			out = append(out, to(be, f))
		}
		return out, nil
	}
}

func creating[F, R any](to func(F) R, checks ...func(F) error) func([]byte) (store.Document, error) {
	return func(body []byte) (store.Document, error) {
		var form F
		if err := json.Unmarshal(body, &form); err != nil {
			return nil, fmt.Errorf("%w: %v", marketerrors.ErrInvalidPayload, err)
		}
		for _, check := range checks {
			if err := check(form); err != nil {
				return nil, fmt.Errorf("%w: %v", marketerrors.ErrInvalidPayload, err)
			}
		}
		return store.Encode(to(form))
	}
}

func updating[F any](to func(F) shared.Patch) func([]byte) (map[string]any, error) {
	return func(body []byte) (map[string]any, error) {
		var form F
		if err := json.Unmarshal(body, &form); err != nil {
			return nil, fmt.Errorf("%w: %v", marketerrors.ErrInvalidPayload, err)
		}
		patch := to(form)
		if len(patch) == 0 {
			return nil, fmt.Errorf("%w: nothing to update", marketerrors.ErrInvalidPayload)
		}
		// Store plain JSON values so equality filters match enum fields.
		doc, err := store.Encode(patch)
		if err != nil {
			return nil, err
		}
		return doc, nil
	}
}

func validBid(form auction.BidFormFE) error {
	if strings.TrimSpace(form.AuctionID) == "" {
		return errors.New("missing auctionId")
	}
	if form.Amount <= 0 {
		return errors.New("non-positive bid amount")
	}
	if form.IsAutoBid && form.MaxAutoBidAmount != nil && *form.MaxAutoBidAmount < form.Amount {
		return errors.New("auto-bid ceiling below bid amount")
	}
	return nil
}

func validReply(form ticket.ReplyFormFE) error {
	if strings.TrimSpace(form.Message) == "" {
		return errors.New("empty message")
	}
	return nil
}

func validUser(form user.UserFormFE) error {
	if !strings.Contains(form.Email, "@") {
		return errors.New("invalid email")
	}
	return nil
}

func validPurchase(form riplimit.PurchaseFormFE) error {
	if form.Amount <= 0 {
		return errors.New("non-positive amount")
	}
	return nil
}

func validWithdrawal(form riplimit.WithdrawFormFE) error {
	if form.Amount <= 0 {
		return errors.New("non-positive amount")
	}
	if strings.TrimSpace(form.BankAccountID) == "" {
		return errors.New("missing bankAccountId")
	}
	return nil
}
