package config

// SiteRule holds site-specific extraction rules for a single hostname.
// Site rules supplement the built-in selector cascades: extra selectors
// are tried BEFORE the built-in list, and the built-in list is never
// altered, so a host without rules behaves exactly like the default.
type SiteRule struct {
	// ContentSelectors are extra CSS selectors tried before the built-in
	// body-content cascade for this host.
	ContentSelectors []string `yaml:"contentSelectors,omitempty"`

	// TitleSelectors are extra CSS selectors tried before the built-in
	// title cascade for this host.
	TitleSelectors []string `yaml:"titleSelectors,omitempty"`

	// Headers are custom HTTP headers to include in requests to this host,
	// on top of the standard browser header set.
	Headers map[string]string `yaml:"headers,omitempty"`
}

// File represents the structure of the .webharvest.yml configuration file.
type File struct {
	// Sites maps hostnames to their extraction rules.
	// Keys are bare hostnames (e.g. "www.example.com").
	Sites map[string]SiteRule `yaml:"sites,omitempty"`

	// Defaults contains rules applied to every host unless overridden by
	// a site-specific entry.
	Defaults SiteRule `yaml:"defaults,omitempty"`
}

// RuleFor returns the extraction rules for a hostname, merging the
// site-specific entry over the defaults.
func (f *File) RuleFor(hostname string) SiteRule {
	if f == nil {
		return SiteRule{}
	}

	result := f.Defaults

	if rule, ok := f.Sites[hostname]; ok {
		if len(rule.ContentSelectors) > 0 {
			result.ContentSelectors = rule.ContentSelectors
		}
		if len(rule.TitleSelectors) > 0 {
			result.TitleSelectors = rule.TitleSelectors
		}
		if len(rule.Headers) > 0 {
			// Copy before merging so the shared defaults map is never
			// mutated.
			merged := make(map[string]string, len(result.Headers)+len(rule.Headers))
			for k, v := range result.Headers {
				merged[k] = v
			}
			for k, v := range rule.Headers {
				merged[k] = v
			}
			result.Headers = merged
		}
	}

	return result
}
