package match

import (
	"strings"

	"github.com/vidhisaar/vidhisaar/internal/model"
)

// AssetType is the fine-grained asset classification used to boost and
// gate section matches. The validator works with the coarser
// model.AssetContext; this type distinguishes the two digital flavors.
type AssetType string

const (
	AssetDigitalIdentity AssetType = "digital_identity"
	AssetDigitalData     AssetType = "digital_data"
	AssetPhysical        AssetType = "physical_property"
	AssetFinancial       AssetType = "financial"
	AssetNone            AssetType = "unknown"
)

// assetIndicators scores a description against four indicator sets.
// assetPrecedence breaks ties deterministically: digital signals outrank
// physical, physical outrank financial.
var (
	assetIndicators = map[AssetType][]string{
		AssetDigitalIdentity: {"instagram", "facebook", "twitter", "snapchat", "account", "profile", "username", "login", "password", "otp", "hacked"},
		AssetDigitalData:     {"data", "files", "documents", "photos", "videos"},
		AssetPhysical:        {"phone", "wallet", "laptop", "bag", "watch", "jewelry", "car", "bike"},
		AssetFinancial:       {"money", "rupees", "₹", "payment", "paid", "invest", "loan", "bank"},
	}

	assetPrecedence = []AssetType{AssetDigitalIdentity, AssetDigitalData, AssetPhysical, AssetFinancial}
)

// DetectAssetType returns the asset type with the strictly highest
// indicator hit count, or AssetNone when nothing matches. Equal scores
// resolve by declared precedence.
func DetectAssetType(description string) AssetType {
	desc := strings.ToLower(description)

	scores := make(map[AssetType]int, len(assetIndicators))
	for assetType, indicators := range assetIndicators {
		for _, ind := range indicators {
			if strings.Contains(desc, ind) {
				scores[assetType]++
			}
		}
	}

	best := AssetNone
	bestScore := 0
	for _, assetType := range assetPrecedence {
		if scores[assetType] > bestScore {
			best = assetType
			bestScore = scores[assetType]
		}
	}
	return best
}

// Context collapses the fine-grained asset type into the coarse context
// the validator reasons about.
func (a AssetType) Context() model.AssetContext {
	switch a {
	case AssetDigitalIdentity, AssetDigitalData:
		return model.AssetDigital
	case AssetPhysical:
		return model.AssetPhysical
	default:
		return model.AssetUnknown
	}
}
