package plan

import "strings"

// TrustTier buckets the trust drive. The boundary inequalities matter:
// 30 and 70 are both mid.
type TrustTier int

const (
	TrustUnknown TrustTier = iota
	TrustLow               // trust < 30
	TrustMid               // 30 <= trust <= 70
	TrustHigh              // trust > 70
)

func TrustTierOf(trust float64) TrustTier {
	if trust < 30 {
		return TrustLow
	}
	if trust <= 70 {
		return TrustMid
	}
	return TrustHigh
}

func (t TrustTier) String() string {
	switch t {
	case TrustLow:
		return "low"
	case TrustMid:
		return "mid"
	case TrustHigh:
		return "high"
	default:
		return "unknown"
	}
}

func ParseTrustTier(s string) TrustTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return TrustLow
	case "mid":
		return TrustMid
	case "high":
		return TrustHigh
	default:
		return TrustUnknown
	}
}
