package e

// This defines reusable error messages

const (
	MsgUnknownInternalServerError = "Unknown Internal Server Error"
	MsgUnauthorized               = "Unauthorized"
	MsgUnauthenticated            = "Authentication Failed"
	MsgForbidden                  = "Forbidden"

	// config
	MsgConfigAPIBaseURLRequired = "API base URL is required"

	// console: auth
	MsgSignInFailed         = "Failed to sign in."
	MsgForgotPasswordFailed = "Failed to request a password reset."
	MsgResetPasswordFailed  = "Failed to reset password."

	// console: account log
	MsgAccountLogsFetchFailed  = "Failed to fetch account logs."
	MsgUnblockUserFailed       = "Failed to unblock user."
	MsgAccountLogExportFailed  = "Failed to export account logs."

	// console: managers
	MsgManagersFetchFailed     = "Failed to fetch managers."
	MsgManagerDeleteFailed     = "Failed to delete manager."
	MsgManagerRoleUpdateFailed = "Failed to update manager role."

	// console: merchants
	MsgMerchantsFetchFailed  = "Failed to fetch merchants."
	MsgMerchantFetchFailed   = "Failed to fetch merchant."
	MsgMerchantApproveFailed = "Failed to approve merchant."
	MsgMerchantRejectFailed  = "Failed to reject merchant."
	MsgMerchantDeleteFailed  = "Failed to delete merchant."
	MsgMerchantBlockFailed   = "Failed to update merchant block status."

	// console: orders
	MsgOrdersFetchFailed = "Failed to fetch orders."
	MsgOrderAcceptFailed = "Failed to accept order."
	MsgOrderRejectFailed = "Failed to reject order."

	// console: pricing
	MsgPricingFetchFailed  = "Failed to fetch pricing."
	MsgPricingUpdateFailed = "Failed to update pricing."

	// console: tax
	MsgTaxesFetchFailed = "Failed to fetch taxes."
	MsgTaxCreateFailed  = "Failed to create tax."
	MsgTaxUpdateFailed  = "Failed to update tax."
	MsgTaxDeleteFailed  = "Failed to delete tax."

	// console: referrals
	MsgReferralsFetchFailed = "Failed to fetch referrals."
	MsgReferralCreateFailed = "Failed to create referral."
	MsgReferralUpdateFailed = "Failed to update referral."

	// console: settings
	MsgSettingsFetchFailed  = "Failed to fetch settings."
	MsgSettingsUpdateFailed = "Failed to update settings."

	// console: whatsapp
	MsgWhatsAppFetchFailed      = "Failed to fetch WhatsApp messages."
	MsgWhatsAppSendFailed       = "Failed to send WhatsApp message."
	MsgWhatsAppInvalidRecipient = "Recipient phone number is not valid."

	// console: app customization
	MsgCustomizationFetchFailed  = "Failed to fetch app customization."
	MsgCustomizationUpdateFailed = "Failed to update app customization."

	// console: loyalty
	MsgLoyaltyFetchFailed  = "Failed to fetch loyalty configuration."
	MsgLoyaltyCreateFailed = "Failed to create loyalty rule."
	MsgLoyaltyUpdateFailed = "Failed to update loyalty rule."

	// console: home
	MsgSaleDataFetchFailed = "Failed to fetch sale data."

	// console: banners
	MsgBannersFetchFailed = "Failed to fetch banners."
	MsgBannerCreateFailed = "Failed to create banner."
	MsgBannerDeleteFailed = "Failed to delete banner."

	// session
	MsgUnknownRole = "Unknown role"

	// filters
	MsgFilterUnknownKey   = "Unknown filter"
	MsgFilterDateTooLate  = "Selected date is past the allowed range"

	// querycache
	MsgUnregisteredMutation = "Mutation has no registered cache keys"
)
