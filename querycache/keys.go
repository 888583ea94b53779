package querycache

// Key identifies one cached query. Fetch sites and the invalidation
// registry must use the same constant; defining them here is what keeps a
// mutation from silently missing the query it affects
type Key string

const (
	KeyAllManagers      Key = "all-managers"
	KeyAllMerchants     Key = "all-merchants"
	KeyAllOrders        Key = "all-orders"
	KeyAllTaxes         Key = "all-taxes"
	KeyAccountLogs      Key = "account-logs"
	KeyBanners          Key = "banners"
	KeyCustomization    Key = "app-customization"
	KeyLoyalty          Key = "loyalty-point"
	KeyPricing          Key = "pricing"
	KeyReferrals        Key = "referrals"
	KeySaleData         Key = "sale-data"
	KeySettings         Key = "settings"
	KeyWhatsAppMessages Key = "whatsapp-messages"
)
