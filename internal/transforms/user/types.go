package user

import (
	"time"

	"marketplace-bff/internal/timestamp"
)

// Role is the account role.
type Role string

const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// UserBE is the user profile document.
type UserBE struct {
	ID            string          `json:"id"`
	Email         string          `json:"email"`
	FirstName     *string         `json:"firstName"`
	LastName      *string         `json:"lastName"`
	DisplayName   *string         `json:"displayName"`
	Phone         *string         `json:"phone"`
	PhotoURL      *string         `json:"photoURL"`
	Bio           *string         `json:"bio"`
	Location      *string         `json:"location"`
	Role          Role            `json:"role"`
	EmailVerified bool            `json:"emailVerified"`
	PhoneVerified bool            `json:"phoneVerified"`
	IsBlocked     bool            `json:"isBlocked"`
	Rating        *float64        `json:"rating"`
	ReviewCount   int             `json:"reviewCount"`
	TotalSales    float64         `json:"totalSales"`
	TotalOrders   int             `json:"totalOrders"`
	CreatedAt     timestamp.Time  `json:"createdAt"`
	UpdatedAt     *timestamp.Time `json:"updatedAt"`
	LastLoginAt   *timestamp.Time `json:"lastLoginAt"`
}

// UserFE is the profile view-model.
type UserFE struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	DisplayName   string     `json:"displayName"`
	Phone         string     `json:"phone"`
	PhotoURL      string     `json:"photoURL"`
	Bio           string     `json:"bio"`
	Location      string     `json:"location"`
	Role          Role       `json:"role"`
	EmailVerified bool       `json:"emailVerified"`
	PhoneVerified bool       `json:"phoneVerified"`
	IsBlocked     bool       `json:"isBlocked"`
	Rating        float64    `json:"rating"`
	ReviewCount   int        `json:"reviewCount"`
	TotalSales    float64    `json:"totalSales"`
	TotalOrders   int        `json:"totalOrders"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt"`
	LastLoginAt   *time.Time `json:"lastLoginAt"`

	FullName            string  `json:"fullName"`
	Initials            string  `json:"initials"`
	StarRating          float64 `json:"starRating"`
	MemberSince         string  `json:"memberSince"`
	JoinedAgo           string  `json:"joinedAgo"`
	LastActive          string  `json:"lastActive"`
	FormattedTotalSales string  `json:"formattedTotalSales"`

	IsVerified    bool     `json:"isVerified"`
	IsAdmin       bool     `json:"isAdmin"`
	IsSeller      bool     `json:"isSeller"`
	IsYourProfile bool     `json:"isYourProfile"`
	Badges        []string `json:"badges"`
}

// UserCardFE is the compact profile chip.
type UserCardFE struct {
	ID          string   `json:"id"`
	FullName    string   `json:"fullName"`
	Initials    string   `json:"initials"`
	PhotoURL    string   `json:"photoURL"`
	Role        Role     `json:"role"`
	StarRating  float64  `json:"starRating"`
	MemberSince string   `json:"memberSince"`
	IsVerified  bool     `json:"isVerified"`
	Badges      []string `json:"badges"`
}

// UserFormFE is the admin create-user form.
type UserFormFE struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"displayName"`
	Phone       string `json:"phone"`
	Role        Role   `json:"role"`
}

// CreateUserRequestBE is the creation payload.
type CreateUserRequestBE struct {
	Email       string  `json:"email"`
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Role        Role    `json:"role,omitempty"`
}

// UserUpdateFormFE is the partial profile form.
type UserUpdateFormFE struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	DisplayName *string `json:"displayName"`
	Phone       *string `json:"phone"`
	PhotoURL    *string `json:"photoURL"`
	Bio         *string `json:"bio"`
	Location    *string `json:"location"`
	Role        *Role   `json:"role"`
	IsBlocked   *bool   `json:"isBlocked"`
}
