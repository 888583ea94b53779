package e

// Constants in here define error codes that are unique to a package/file.
// The four characters define the package and file within this repo. When
// creating an error, the e.N/e.W funcs should be called with an ECode
// constant, which appends a two character unique id within the file.
//
// Valid values for the characters are: 0-9 and A-Z. Codes starting with a
// number are reserved for packages within the console-lib repository.
// Applications embedding this library may use any code starting with a
// letter.

const (
	// package: config
	Code0100 = "0100" // package:config | config/config.go

	// package: querycache
	Code0200 = "0200" // package:querycache | querycache/cache.go
	Code0201 = "0201" // package:querycache | querycache/registry.go

	// package: confirm
	Code0300 = "0300" // package:confirm | confirm/dialog.go

	// package: console
	Code0400 = "0400" // package:console | console/client.go
	Code0401 = "0401" // package:console | console/auth.go
	Code0402 = "0402" // package:console | console/accountlog.go
	Code0403 = "0403" // package:console | console/managers.go
	Code0404 = "0404" // package:console | console/merchants.go
	Code0405 = "0405" // package:console | console/orders.go
	Code0406 = "0406" // package:console | console/pricing.go
	Code0407 = "0407" // package:console | console/tax.go
	Code0408 = "0408" // package:console | console/referrals.go
	Code0409 = "0409" // package:console | console/settings.go
	Code040A = "040A" // package:console | console/whatsapp.go
	Code040B = "040B" // package:console | console/customization.go
	Code040C = "040C" // package:console | console/loyalty.go
	Code040D = "040D" // package:console | console/home.go
	Code040E = "040E" // package:console | console/banners.go

	// package: filters
	Code0500 = "0500" // package:filters | filters/panel.go

	// package: session
	Code0600 = "0600" // package:session | session/session.go
	Code0601 = "0601" // package:session | session/token.go

	// package: socket
	Code0700 = "0700" // package:socket | socket/subscriber.go
)
