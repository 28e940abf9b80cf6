package markup

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-content-site/pkg/interfaces"
)

// PolicySanitizer applies a bluemonday policy.
type PolicySanitizer struct {
	policy *bluemonday.Policy
}

var _ interfaces.Sanitizer = (*PolicySanitizer)(nil)

// NewUGCSanitizer returns the policy used for post bodies: bluemonday's
// user-generated-content set plus language-* classes on code elements so
// highlighters can pick the grammar.
func NewUGCSanitizer() *PolicySanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+#-]+$`)).OnElements("code")
	return &PolicySanitizer{policy: policy}
}

// Sanitize strips anything outside the policy.
func (s *PolicySanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
