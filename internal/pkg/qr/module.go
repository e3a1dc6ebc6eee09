package qr

import "go.uber.org/fx"

// Module provides the QR issuer via fx.
var Module = fx.Provide(func() Issuer {
	return NewPNGIssuer(0)
})
