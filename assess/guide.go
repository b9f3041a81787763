package assess

import (
	"fmt"
	"strings"

	"github.com/georgepadayatti/cipherward/primitive"
	"github.com/georgepadayatti/cipherward/standard"
	"github.com/georgepadayatti/cipherward/standard/bsi"
	"github.com/georgepadayatti/cipherward/standard/cnsa"
	"github.com/georgepadayatti/cipherward/standard/nist"
)

// Guide selects the security guideline to assess against. The set is
// closed; adding a guideline means adding a standard package and a
// dispatch arm here.
type Guide int

const (
	// GuideBsi is the BSI TR-02102 series of technical guidelines.
	GuideBsi Guide = iota

	// GuideCnsa is the NSA Commercial National Security Algorithm
	// Suite.
	GuideCnsa

	// GuideNist is NIST SP 800-57 Part 1.
	GuideNist
)

// GuideNames lists the recognized guide names in the order ParseGuide
// accepts them.
var GuideNames = []string{"bsi", "cnsa", "nist"}

// String returns the lowercase name of the guide.
func (g Guide) String() string {
	switch g {
	case GuideBsi:
		return "bsi"
	case GuideCnsa:
		return "cnsa"
	case GuideNist:
		return "nist"
	default:
		return "unknown"
	}
}

// ParseGuide resolves a guide from its name, case-insensitively.
func ParseGuide(name string) (Guide, error) {
	switch {
	case strings.EqualFold(name, "bsi"):
		return GuideBsi, nil
	case strings.EqualFold(name, "cnsa"):
		return GuideCnsa, nil
	case strings.EqualFold(name, "nist"):
		return GuideNist, nil
	default:
		return 0, fmt.Errorf("unrecognized guide %q (supported: %s)", name, strings.Join(GuideNames, ", "))
	}
}

// ValidateHashFunction validates a hash function against the selected
// guideline.
func (g Guide) ValidateHashFunction(ctx standard.Context, h primitive.Hash) (primitive.Hash, error) {
	switch g {
	case GuideCnsa:
		return cnsa.ValidateHash(ctx, h)
	case GuideNist:
		return nist.ValidateHash(ctx, h)
	default:
		return bsi.ValidateHash(ctx, h)
	}
}

// ValidateSignatureAlgorithm validates an asymmetric primitive against
// the selected guideline, dispatching on the concrete family and
// returning a result of the same family.
func (g Guide) ValidateSignatureAlgorithm(ctx standard.Context, alg primitive.Asymmetric) (primitive.Asymmetric, error) {
	switch instance := alg.(type) {
	case primitive.Ecc:
		return g.validateEcc(ctx, instance)
	case primitive.Ifc:
		return g.validateIfc(ctx, instance)
	default:
		return alg, fmt.Errorf("unsupported asymmetric family %T", alg)
	}
}

func (g Guide) validateEcc(ctx standard.Context, e primitive.Ecc) (primitive.Asymmetric, error) {
	switch g {
	case GuideCnsa:
		return cnsa.ValidateEcc(ctx, e)
	case GuideNist:
		return nist.ValidateEcc(ctx, e)
	default:
		return bsi.ValidateEcc(ctx, e)
	}
}

func (g Guide) validateIfc(ctx standard.Context, i primitive.Ifc) (primitive.Asymmetric, error) {
	switch g {
	case GuideCnsa:
		return cnsa.ValidateIfc(ctx, i)
	case GuideNist:
		return nist.ValidateIfc(ctx, i)
	default:
		return bsi.ValidateIfc(ctx, i)
	}
}
