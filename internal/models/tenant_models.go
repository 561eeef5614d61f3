package models

import "time"

// Tenant lifecycle statuses. Only active tenants are visible through the
// public menu endpoints.
const (
	TenantStatusActive    = "active"
	TenantStatusSuspended = "suspended"
	TenantStatusDeleted   = "deleted"
)

// Tenant represents a single restaurant/business account. It is the root of
// multi-tenant isolation: every other record carries its tenant_id and is
// cascade-deleted with it.
type Tenant struct {
	ID             string     `json:"id" db:"id"`
	BusinessName   string     `json:"business_name" db:"business_name"`
	BusinessType   *string    `json:"business_type,omitempty" db:"business_type"`
	Slug           string     `json:"slug" db:"slug"`
	IsChain        bool       `json:"is_chain" db:"is_chain"`
	TotalLocations int        `json:"total_locations" db:"total_locations"`
	Phone          *string    `json:"phone,omitempty" db:"phone"`
	LogoURL        *string    `json:"logo_url,omitempty" db:"logo_url"`
	PrimaryColor   *string    `json:"primary_color,omitempty" db:"primary_color"`
	Address        *string    `json:"address,omitempty" db:"address"`
	City           *string    `json:"city,omitempty" db:"city"`
	Province       *string    `json:"province,omitempty" db:"province"`
	CountryCode    string     `json:"country_code" db:"country_code"`
	Locale         string     `json:"locale" db:"locale"`
	Timezone       string     `json:"timezone" db:"timezone"`
	CurrencyCode   string     `json:"currency_code" db:"currency_code"`
	Status         string     `json:"status" db:"status"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}
