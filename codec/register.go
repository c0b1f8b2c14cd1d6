package codec

import genskema "github.com/reoring/genskema"

// The reserved brands register at init so any importer gets them wired into
// the decoder. Programs that only need structural nodes can skip this package.
func init() {
	genskema.RegisterBrand(UUID())
	genskema.RegisterBrand(DateFromISOString())
	genskema.RegisterBrand(CurrencyFromNumber())
}
