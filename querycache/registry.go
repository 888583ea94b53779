package querycache

import (
	"fmt"

	"github.com/swiftdrop/console-lib/e"
)

const (
	ECode020101 = e.Code0201 + "01"
)

// Mutation names one state changing backend action
type Mutation string

const (
	MutationDeleteManager     Mutation = "manager.delete"
	MutationUpdateManagerRole Mutation = "manager.updateRole"
	MutationApproveMerchant   Mutation = "merchant.approve"
	MutationRejectMerchant    Mutation = "merchant.reject"
	MutationDeleteMerchant    Mutation = "merchant.delete"
	MutationBlockMerchant     Mutation = "merchant.block"
	MutationAcceptOrder       Mutation = "order.accept"
	MutationRejectOrder       Mutation = "order.reject"
	MutationCreateTax         Mutation = "tax.create"
	MutationUpdateTax         Mutation = "tax.update"
	MutationDeleteTax         Mutation = "tax.delete"
	MutationUpdatePricing     Mutation = "pricing.update"
	MutationCreateReferral    Mutation = "referral.create"
	MutationUpdateReferral    Mutation = "referral.update"
	MutationUpdateSettings    Mutation = "settings.update"
	MutationSendWhatsApp      Mutation = "whatsapp.send"
	MutationUpdateCustomize   Mutation = "customization.update"
	MutationCreateLoyalty     Mutation = "loyalty.create"
	MutationUpdateLoyalty     Mutation = "loyalty.update"
	MutationUnblockUser       Mutation = "accountLog.unblockUser"
	MutationCreateBanner      Mutation = "banner.create"
	MutationDeleteBanner      Mutation = "banner.delete"
)

// Registry maps each mutation to the exact set of query keys it affects.
// Confirmation dialogs never name keys directly; they declare a mutation
// and the registry is the one place the key sets live, so a fetch and the
// mutations that stale it cannot drift apart silently
type Registry struct {
	m map[Mutation][]Key
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{m: map[Mutation][]Key{}}
}

// Register declares the keys affected by a mutation, replacing any
// previous declaration
func (r *Registry) Register(m Mutation, keys ...Key) {
	r.m[m] = keys
}

// Keys returns the declared key set for a mutation. An unregistered
// mutation is an error rather than an empty set; invalidating nothing
// silently is exactly the staleness bug the registry exists to prevent
func (r *Registry) Keys(m Mutation) (keys []Key, err error) {
	keys, ok := r.m[m]
	if !ok {
		return nil, e.N(ECode020101,
			fmt.Sprintf("%s: %s", e.MsgUnregisteredMutation, m))
	}
	return keys, nil
}

// Mutations returns every registered mutation
func (r *Registry) Mutations() []Mutation {
	out := make([]Mutation, 0, len(r.m))
	for m := range r.m {
		out = append(out, m)
	}
	return out
}

// DefaultRegistry declares the platform's mutation/key sets. Deleting a
// merchant also stales the sale data rollup since its totals include the
// removed merchant
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(MutationDeleteManager, KeyAllManagers)
	r.Register(MutationUpdateManagerRole, KeyAllManagers)

	r.Register(MutationApproveMerchant, KeyAllMerchants)
	r.Register(MutationRejectMerchant, KeyAllMerchants)
	r.Register(MutationDeleteMerchant, KeyAllMerchants, KeySaleData)
	r.Register(MutationBlockMerchant, KeyAllMerchants)

	r.Register(MutationAcceptOrder, KeyAllOrders)
	r.Register(MutationRejectOrder, KeyAllOrders)

	r.Register(MutationCreateTax, KeyAllTaxes)
	r.Register(MutationUpdateTax, KeyAllTaxes)
	r.Register(MutationDeleteTax, KeyAllTaxes)

	r.Register(MutationUpdatePricing, KeyPricing)

	r.Register(MutationCreateReferral, KeyReferrals)
	r.Register(MutationUpdateReferral, KeyReferrals)

	r.Register(MutationUpdateSettings, KeySettings)

	r.Register(MutationSendWhatsApp, KeyWhatsAppMessages)

	r.Register(MutationUpdateCustomize, KeyCustomization)

	r.Register(MutationCreateLoyalty, KeyLoyalty)
	r.Register(MutationUpdateLoyalty, KeyLoyalty)

	r.Register(MutationUnblockUser, KeyAccountLogs)

	r.Register(MutationCreateBanner, KeyBanners)
	r.Register(MutationDeleteBanner, KeyBanners)

	return r
}
