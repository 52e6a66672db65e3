package filter

const (
	// DefaultThreshold is the number of matched categories that makes content spam.
	DefaultThreshold = 2

	// ReasonLegitimate is the reason given for content below the threshold.
	ReasonLegitimate = "Email appears legitimate"

	reasonMoney  = "Contains money-related terms"
	reasonUrgent = "Contains urgency-related terms"
	reasonOffer  = "Contains promotional offers"
	reasonLinks  = "Contains suspicious links"

	reasonSeparator = " and "
)

// Rules holds the pattern sets and the spam threshold.
type Rules struct {
	Money     []string `yaml:"money"`
	Urgent    []string `yaml:"urgent"`
	Offer     []string `yaml:"offer"`
	Links     []string `yaml:"links"`
	Threshold int      `yaml:"threshold"`
}

// DefaultRules returns the built-in pattern sets.
func DefaultRules() Rules {
	return Rules{
		Money:     []string{"$", "cash", "money", "dollars", "earn", "income"},
		Urgent:    []string{"urgent", "immediate", "act now", "limited time", "hurry"},
		Offer:     []string{"free", "discount", "offer", "sale", "deal", "winner"},
		Links:     []string{".xyz", ".info", "click here", "bit.ly"},
		Threshold: DefaultThreshold,
	}
}

// Validate checks the rules.
func (r Rules) Validate() error {
	if r.Threshold < 1 {
		return ErrInvalidThreshold
	}
	if countPatterns(r.Money, r.Urgent, r.Offer, r.Links) == 0 {
		return ErrNoPatterns
	}
	return nil
}

// countPatterns counts the patterns that can match, skipping empty ones.
func countPatterns(sets ...[]string) int {
	n := 0
	for _, set := range sets {
		for _, p := range set {
			if p != "" {
				n++
			}
		}
	}
	return n
}

// Merge returns r with every non-empty field of override applied.
func (r Rules) Merge(override Rules) Rules {
	if len(override.Money) > 0 {
		r.Money = override.Money
	}
	if len(override.Urgent) > 0 {
		r.Urgent = override.Urgent
	}
	if len(override.Offer) > 0 {
		r.Offer = override.Offer
	}
	if len(override.Links) > 0 {
		r.Links = override.Links
	}
	if override.Threshold > 0 {
		r.Threshold = override.Threshold
	}
	return r
}
