package checker

import (
	"context"
	"fmt"

	"github.com/cloudflare/circl/sign"
	"github.com/cloudflare/circl/sign/schemes"
)

// CIRCLProviderName is the display name of the in-process PQ backend.
const CIRCLProviderName = "CIRCL"

// selfTestScheme is signed with to prove the linked primitives run.
const selfTestScheme = "ML-DSA-65"

// classicalSchemes are enumerated by CIRCL but are not quantum-safe.
var classicalSchemes = map[string]struct{}{
	"Ed25519": {},
	"Ed448":   {},
}

// CIRCL enumerates the post-quantum signature schemes compiled into this
// binary through Cloudflare's CIRCL library.
type CIRCL struct{}

// SignatureMechanisms lists quantum-safe schemes after a sign/verify self-test.
// The module argument is ignored; CIRCL is linked, not loaded.
func (CIRCL) SignatureMechanisms(ctx context.Context, _ string) ([]string, error) {
	all := schemes.All()
	names := make([]string, 0, len(all))
	for _, scheme := range all {
		if _, classical := classicalSchemes[scheme.Name()]; classical {
			continue
		}
		names = append(names, scheme.Name())
	}
	if len(names) == 0 {
		return nil, &LoadError{Module: CIRCLProviderName, Message: "no post-quantum signature schemes registered"}
	}

	if ctx != nil && ctx.Err() != nil {
		return nil, &LoadError{Module: CIRCLProviderName, Message: ctx.Err().Error()}
	}

	scheme := schemes.ByName(selfTestScheme)
	if scheme == nil {
		scheme = schemes.ByName(names[0])
	}
	if err := selfTest(scheme); err != nil {
		return nil, &LoadError{Module: CIRCLProviderName, Message: err.Error()}
	}
	return names, nil
}

func selfTest(scheme sign.Scheme) error {
	if scheme == nil {
		return fmt.Errorf("self-test scheme unavailable")
	}
	pk, sk, err := scheme.GenerateKey()
	if err != nil {
		return fmt.Errorf("%s key generation: %w", scheme.Name(), err)
	}
	msg := []byte("labcheck self-test")
	sig := scheme.Sign(sk, msg, nil)
	if !scheme.Verify(pk, msg, sig, nil) {
		return fmt.Errorf("%s signature did not verify", scheme.Name())
	}
	return nil
}
