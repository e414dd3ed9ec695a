package domain

// SiteConfig holds the site-wide display texts. Exactly one exists.
type SiteConfig struct {
	HeaderText      string `json:"header_text"`
	FooterText      string `json:"footer_text"`
	LastUpdatedText string `json:"last_updated_text"`
}

func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		HeaderText:      "JARANA",
		FooterText:      "JARANA © 2024",
		LastUpdatedText: "ACTUALIZADO HASTA: --/--",
	}
}
