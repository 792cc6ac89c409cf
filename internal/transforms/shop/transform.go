package shop

import (
	"fmt"

	"marketplace-bff/internal/format"
	"marketplace-bff/internal/timestamp"
	"marketplace-bff/internal/transforms/shared"
)

const (
	topRatedThreshold     = 4.5
	largeCatalogThreshold = 100
)

func isVerified(s ShopBE) bool { return s.IsVerified }
func isTopRated(s ShopBE) bool { return shared.Float(s.Rating) >= topRatedThreshold }
func hasLargeCatalog(s ShopBE) bool { return s.TotalProducts >= largeCatalogThreshold }

var badges = []shared.BadgeRule[ShopBE]{
	{Label: "Verified", Applies: isVerified},
	{Label: "Top Rated", Applies: isTopRated},
	{Label: "Large Catalog", Applies: hasLargeCatalog},
}

// ToFE builds the shop detail view as seen by actingUserID.
func ToFE(be ShopBE, actingUserID string) ShopFE {
	return ShopFE{
		ID:            be.ID,
		OwnerID:       be.OwnerID,
		Name:          be.Name,
		Slug:          be.Slug,
		Description:   shared.Str(be.Description),
		Logo:          shared.Str(be.Logo),
		Banner:        shared.Str(be.Banner),
		Email:         shared.Str(be.Email),
		Phone:         shared.Str(be.Phone),
		Address:       shared.Str(be.Address),
		Status:        be.Status,
		Rating:        shared.Float(be.Rating),
		ReviewCount:   be.ReviewCount,
		TotalProducts: be.TotalProducts,
		TotalSales:    be.TotalSales,
		Website:       metaString(be.Metadata, metaWebsite),
		GST:           metaString(be.Metadata, metaGST),
		PAN:           metaString(be.Metadata, metaPAN),
		SocialLinks:   socialLinks(be.Metadata),
		BankDetails:   bankDetails(be.Metadata),
		CreatedAt:     be.CreatedAt.Time,
		UpdatedAt:     timestamp.Ptr(be.UpdatedAt),

		URL:                 URL(be.Slug),
		RatingDisplay:       ratingDisplay(be),
		ProductCountLabel:   format.Plural(be.TotalProducts, "product", "products"),
		FormattedTotalSales: format.INR(be.TotalSales),
		MemberSince:         format.MonthYear(be.CreatedAt.Time),

		IsActive:   be.Status == StatusActive,
		IsVerified: be.IsVerified,
		IsBanned:   be.Status == StatusArchived,
		IsYourShop: actingUserID != "" && be.OwnerID == actingUserID,
		Badges:     shared.Badges(be, badges),
	}
}

// ToCard builds the directory tile.
func ToCard(be ShopBE) ShopCardFE {
	return ShopCardFE{
		ID:                be.ID,
		Name:              be.Name,
		Slug:              be.Slug,
		Logo:              shared.Str(be.Logo),
		URL:               URL(be.Slug),
		RatingDisplay:     ratingDisplay(be),
		ProductCountLabel: format.Plural(be.TotalProducts, "product", "products"),
		IsVerified:        be.IsVerified,
		Badges:            shared.Badges(be, badges),
	}
}

// ToFEs maps a batch of shops.
func ToFEs(in []ShopBE, actingUserID string) []ShopFE {
	return shared.Map(in, func(be ShopBE) ShopFE { return ToFE(be, actingUserID) })
}

// ToCards maps a batch of shops to tiles.
func ToCards(in []ShopBE) []ShopCardFE {
	return shared.Map(in, ToCard)
}

// ToBECreateRequest converts the create form, folding extended fields into
// metadata.
func ToBECreateRequest(form ShopFormFE) CreateShopRequestBE {
	req := CreateShopRequestBE{
		Name:        form.Name,
		Slug:        form.Slug,
		Description: shared.OptString(form.Description),
		Logo:        shared.OptString(form.Logo),
		Banner:      shared.OptString(form.Banner),
		Email:       shared.OptString(form.Email),
		Phone:       shared.OptString(form.Phone),
		Address:     shared.OptString(form.Address),
	}
	meta := map[string]any{}
	putString(meta, metaWebsite, form.Website)
	putString(meta, metaGST, form.GST)
	putString(meta, metaPAN, form.PAN)
	if links := socialLinksMap(form.SocialLinks); len(links) > 0 {
		meta[metaSocialLinks] = links
	}
	if bank := bankDetailsMap(form.BankDetails); len(bank) > 0 {
		meta[metaBankDetails] = bank
	}
	if len(meta) > 0 {
		req.Metadata = meta
	}
	return req
}

// ToBEUpdateRequest builds a sparse patch. Extended fields are addressed by
// dotted "metadata.<field>" paths, one key per field set, so sibling
// metadata entries are left untouched.
func ToBEUpdateRequest(form ShopUpdateFormFE) shared.Patch {
	p := shared.Patch{}
	shared.Set(p, "name", form.Name)
	shared.Set(p, "slug", form.Slug)
	shared.Set(p, "description", form.Description)
	shared.Set(p, "logo", form.Logo)
	shared.Set(p, "banner", form.Banner)
	shared.Set(p, "email", form.Email)
	shared.Set(p, "phone", form.Phone)
	shared.Set(p, "address", form.Address)
	shared.Set(p, "status", form.Status)
	shared.Set(p, "isVerified", form.IsVerified)

	shared.Set(p, metaPath(metaWebsite), form.Website)
	shared.Set(p, metaPath(metaGST), form.GST)
	shared.Set(p, metaPath(metaPAN), form.PAN)
	if form.SocialLinks != nil {
		p[metaPath(metaSocialLinks)] = socialLinksMap(*form.SocialLinks)
	}
	if form.BankDetails != nil {
		p[metaPath(metaBankDetails)] = bankDetailsMap(*form.BankDetails)
	}
	return p
}

func metaPath(field string) string {
	return "metadata." + field
}

// URL is the storefront path of a shop.
func URL(slug string) string {
	return "/shops/" + slug
}

func ratingDisplay(be ShopBE) string {
	if be.Rating == nil || be.ReviewCount == 0 {
		return "No ratings yet"
	}
	return fmt.Sprintf("%.1f (%s)", *be.Rating, format.Plural(be.ReviewCount, "review", "reviews"))
}

func metaString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func metaMap(m map[string]any, key string) map[string]any {
	sub, _ := m[key].(map[string]any)
	return sub
}

func socialLinks(m map[string]any) SocialLinks {
	sub := metaMap(m, metaSocialLinks)
	return SocialLinks{
		Facebook:  metaString(sub, "facebook"),
		Instagram: metaString(sub, "instagram"),
		Twitter:   metaString(sub, "twitter"),
	}
}

func bankDetails(m map[string]any) BankDetails {
	sub := metaMap(m, metaBankDetails)
	return BankDetails{
		AccountHolderName: metaString(sub, "accountHolderName"),
		AccountNumber:     metaString(sub, "accountNumber"),
		IFSCCode:          metaString(sub, "ifscCode"),
		BankName:          metaString(sub, "bankName"),
	}
}

func putString(m map[string]any, key, v string) {
	if s := shared.OptString(v); s != nil {
		m[key] = *s
	}
}

func socialLinksMap(l SocialLinks) map[string]any {
	m := map[string]any{}
	putString(m, "facebook", l.Facebook)
	putString(m, "instagram", l.Instagram)
	putString(m, "twitter", l.Twitter)
	return m
}

func bankDetailsMap(b BankDetails) map[string]any {
	m := map[string]any{}
	putString(m, "accountHolderName", b.AccountHolderName)
	putString(m, "accountNumber", b.AccountNumber)
	putString(m, "ifscCode", b.IFSCCode)
	putString(m, "bankName", b.BankName)
	return m
}
