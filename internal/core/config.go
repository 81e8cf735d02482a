package core

// SiteConfig is the typed view over the generic settings store. The
// repository handles the scalar/JSON encoding per key; consumers only ever
// see this struct.
type SiteConfig struct {
	SiteLogo           string
	Favicon            string
	HeroBanners        []string // ordered, at most 10 upload paths
	HeroSliderInterval int      // milliseconds
	HotDealsSpeed      int      // seconds for a full scroll cycle
	UsdToBdtRate       float64
	ContactInfo        ContactInfo
	SMTP               SMTPSettings
	PaymentMethods     map[string]PaymentMethod
	PageContent        PageContent
	AdminPasswordHash  string
}

type ContactInfo struct {
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
}

// SMTPSettings holds the gmail app credentials used for outbound mail.
// Empty credentials mean mail is not configured and sends fail softly.
type SMTPSettings struct {
	AdminEmail  string `json:"admin_email"`
	AppPassword string `json:"app_password"`
}

// PaymentMethod is a manually confirmed payment destination. Wallet methods
// carry a number, the crypto method a pay id.
type PaymentMethod struct {
	Number  string `json:"number,omitempty"`
	PayID   string `json:"pay_id,omitempty"`
	LogoURL string `json:"logo_url,omitempty"`
}

type PageContent struct {
	AboutUs string `json:"about_us"`
	Terms   string `json:"terms"`
	Privacy string `json:"privacy"`
	Refund  string `json:"refund"`
}

// Settings store keys. These match the persisted key names one to one.
const (
	KeySiteLogo           = "site_logo"
	KeyFavicon            = "favicon"
	KeyHeroBanner         = "hero_banner"
	KeyHeroSliderInterval = "hero_slider_interval"
	KeyHotDealsSpeed      = "hot_deals_speed"
	KeyUsdToBdtRate       = "usd_to_bdt_rate"
	KeyContactInfo        = "contact_info"
	KeySMTPSettings       = "smtp_settings"
	KeyPaymentMethods     = "payment_methods"
	KeyAdminPassword      = "admin_password"
	KeyPageContentPrefix  = "page_content_" // + about_us | terms | privacy | refund
)
