package analysis

import (
	"time"

	"github.com/Shivakarthikeya23/CultureSense/internal/culture"
)

// Provenance labels appended to every analysis envelope.
const (
	crossDomainIntegration = "Cross-domain cultural intelligence powered by Qloo"
	brandIntegration       = "Brand-culture alignment powered by Qloo's cross-domain intelligence"
	marketIntegration      = "Cultural market intelligence powered by Qloo's cross-domain graph"
)

// Timestamp returns the current time as an RFC3339 UTC string.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// envelope merges a use-case payload with the affinity bundle and request
// metadata. The payload's own top-level keys are identical whether it came
// from the adapter or a fallback generator, so the merged shape never
// depends on which path produced it.
func envelope(payload map[string]interface{}, qloo culture.QlooInsightsBundle, meta map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(payload)+2)
	for k, v := range payload {
		out[k] = v
	}
	meta["generated_at"] = Timestamp()
	out["qloo_data"] = qloo
	out["analysis_metadata"] = meta
	return out
}
