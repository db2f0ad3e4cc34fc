package catalog

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed reference.yaml
var referenceYAML []byte

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the reference catalog covering AAM, ACK, ACN, ALC, ALF,
// ALR, ARC, EVE, GGA, GLL, GSA, GSV, RMC, VDM, VSI and ZDA.
func Default() *Catalog {
	defaultOnce.Do(func() {
		entries, err := LoadYAML(bytes.NewReader(referenceYAML))
		if err != nil {
			panic("catalog: embedded reference: " + err.Error())
		}
		defaultCat = MustNew(entries...)
	})
	return defaultCat
}

// ReferenceYAML returns a copy of the embedded reference definitions.
func ReferenceYAML() []byte { return append([]byte(nil), referenceYAML...) }
