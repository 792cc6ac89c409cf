package user

import (
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"marketplace-bff/internal/format"
	"marketplace-bff/internal/timestamp"
	"marketplace-bff/internal/transforms/shared"
)

const (
	topSellerRating   = 4.5
	topSellerReviews  = 50
	highVolumeSales   = 100000
	newMemberWindow   = 30 * 24 * time.Hour
	activeBuyerOrders = 10
)

type state struct {
	user UserBE
	now  time.Time
}

func isVerified(s state) bool {
	return s.user.EmailVerified && s.user.PhoneVerified
}

func isAdmin(s state) bool { return s.user.Role == RoleAdmin }

func isTopSeller(s state) bool {
	return s.user.Role == RoleSeller && shared.Float(s.user.Rating) >= topSellerRating && s.user.ReviewCount >= topSellerReviews
}

func isHighVolume(s state) bool {
	return s.user.Role == RoleSeller && s.user.TotalSales >= highVolumeSales
}

func isNewMember(s state) bool { return shared.Since(s.user.CreatedAt.Time, s.now, newMemberWindow) }

func isActiveBuyer(s state) bool { return s.user.TotalOrders >= activeBuyerOrders }

var badges = []shared.BadgeRule[state]{
	{Label: "Verified", Applies: isVerified},
	{Label: "Admin", Applies: isAdmin},
	{Label: "Top Seller", Applies: isTopSeller},
	{Label: "High Volume", Applies: isHighVolume},
	{Label: "New", Applies: isNewMember},
	{Label: "Active Buyer", Applies: isActiveBuyer},
}

// ToFE builds the profile view as seen by actingUserID at now.
func ToFE(be UserBE, now time.Time, actingUserID string) UserFE {
	st := state{user: be, now: now}
	fe := UserFE{
		ID:            be.ID,
		Email:         be.Email,
		FirstName:     shared.Str(be.FirstName),
		LastName:      shared.Str(be.LastName),
		DisplayName:   shared.Str(be.DisplayName),
		Phone:         shared.Str(be.Phone),
		PhotoURL:      shared.Str(be.PhotoURL),
		Bio:           shared.Str(be.Bio),
		Location:      shared.Str(be.Location),
		Role:          be.Role,
		EmailVerified: be.EmailVerified,
		PhoneVerified: be.PhoneVerified,
		IsBlocked:     be.IsBlocked,
		Rating:        shared.Float(be.Rating),
		ReviewCount:   be.ReviewCount,
		TotalSales:    be.TotalSales,
		TotalOrders:   be.TotalOrders,
		CreatedAt:     be.CreatedAt.Time,
		UpdatedAt:     timestamp.Ptr(be.UpdatedAt),
		LastLoginAt:   timestamp.Ptr(be.LastLoginAt),

		FullName:            FullName(be),
		Initials:            Initials(be),
		StarRating:          StarRating(shared.Float(be.Rating)),
		MemberSince:         format.MonthYear(be.CreatedAt.Time),
		JoinedAgo:           format.Verbose(be.CreatedAt.Time, now),
		FormattedTotalSales: format.INR(be.TotalSales),

		IsVerified:    isVerified(st),
		IsAdmin:       isAdmin(st),
		IsSeller:      be.Role == RoleSeller,
		IsYourProfile: actingUserID != "" && be.ID == actingUserID,
		Badges:        shared.Badges(st, badges),
	}
	if be.LastLoginAt != nil {
		fe.LastActive = format.Verbose(be.LastLoginAt.Time, now)
	}
	return fe
}

// ToCard builds the profile chip at now.
func ToCard(be UserBE, now time.Time) UserCardFE {
	st := state{user: be, now: now}
	return UserCardFE{
		ID:          be.ID,
		FullName:    FullName(be),
		Initials:    Initials(be),
		PhotoURL:    shared.Str(be.PhotoURL),
		Role:        be.Role,
		StarRating:  StarRating(shared.Float(be.Rating)),
		MemberSince: format.MonthYear(be.CreatedAt.Time),
		IsVerified:  isVerified(st),
		Badges:      shared.Badges(st, badges),
	}
}

// ToFEs maps a batch of users.
func ToFEs(in []UserBE, now time.Time, actingUserID string) []UserFE {
	return shared.Map(in, func(be UserBE) UserFE { return ToFE(be, now, actingUserID) })
}

// ToCards maps a batch of users to chips.
func ToCards(in []UserBE, now time.Time) []UserCardFE {
	return shared.Map(in, func(be UserBE) UserCardFE { return ToCard(be, now) })
}

// ToBECreateRequest converts the admin create-user form.
func ToBECreateRequest(form UserFormFE) CreateUserRequestBE {
	return CreateUserRequestBE{
		Email:       strings.TrimSpace(form.Email),
		FirstName:   shared.OptString(form.FirstName),
		LastName:    shared.OptString(form.LastName),
		DisplayName: shared.OptString(form.DisplayName),
		Phone:       shared.OptString(form.Phone),
		Role:        form.Role,
	}
}

// ToBEUpdateRequest builds a sparse profile patch.
func ToBEUpdateRequest(form UserUpdateFormFE) shared.Patch {
	p := shared.Patch{}
	shared.Set(p, "firstName", form.FirstName)
	shared.Set(p, "lastName", form.LastName)
	shared.Set(p, "displayName", form.DisplayName)
	shared.Set(p, "phone", form.Phone)
	shared.Set(p, "photoURL", form.PhotoURL)
	shared.Set(p, "bio", form.Bio)
	shared.Set(p, "location", form.Location)
	shared.Set(p, "role", form.Role)
	shared.Set(p, "isBlocked", form.IsBlocked)
	return p
}

// FullName resolves the name to show: first and last name, then display
// name, then the email local part, then "User".
func FullName(be UserBE) string {
	first, last := trimmed(be.FirstName), trimmed(be.LastName)
	display := trimmed(be.DisplayName)
	local, _, _ := strings.Cut(strings.TrimSpace(be.Email), "@")

	return shared.Resolve("User",
		shared.Fallback{When: func() bool { return first != "" || last != "" }, Value: func() string { return strings.TrimSpace(first + " " + last) }},
		shared.Fallback{When: func() bool { return display != "" }, Value: func() string { return display }},
		shared.Fallback{When: func() bool { return local != "" }, Value: func() string { return local }},
	)
}

// Initials resolves the avatar letters: first letters of first and last
// name, then of the first two words of the display name, then the first
// letter of the display name, then "U". A lone first or last name does
// not count.
func Initials(be UserBE) string {
	first, last := trimmed(be.FirstName), trimmed(be.LastName)
	words := strings.Fields(trimmed(be.DisplayName))

	return shared.Resolve("U",
		shared.Fallback{When: func() bool { return first != "" && last != "" }, Value: func() string { return initial(first) + initial(last) }},
		shared.Fallback{When: func() bool { return len(words) >= 2 }, Value: func() string { return initial(words[0]) + initial(words[1]) }},
		shared.Fallback{When: func() bool { return len(words) == 1 }, Value: func() string { return initial(words[0]) }},
	)
}

// StarRating rounds a rating to the nearest half star.
func StarRating(rating float64) float64 {
	return math.Round(rating*2) / 2
}

func initial(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r))
}

func trimmed(p *string) string {
	return strings.TrimSpace(shared.Str(p))
}
