package config

// Document is the YAML content document describing one page variant.
type Document struct {
	Version   string           `yaml:"version" validate:"required,semver"`
	Title     string           `yaml:"title" validate:"required,max=120"`
	Urgency   string           `yaml:"urgency,omitempty"`
	Org       Organisation     `yaml:"organisation" validate:"required"`
	Hero      Hero             `yaml:"hero" validate:"required"`
	Metrics   []Metric         `yaml:"metrics,omitempty" validate:"omitempty,dive"`
	Donations []DonationOption `yaml:"donations" validate:"required,min=1,dive"`
	Needs     Needs            `yaml:"needs,omitempty"`
	Courier   Courier          `yaml:"courier,omitempty"`
	Location  Location         `yaml:"location,omitempty"`
	Finance   []FinancialBlock `yaml:"finance,omitempty" validate:"omitempty,dive"`
	FAQ       []FAQEntry       `yaml:"faq,omitempty" validate:"omitempty,dive"`
	Gallery   *Gallery         `yaml:"gallery,omitempty"`
	Video     *Video           `yaml:"video,omitempty"`
	Wishlist  *Wishlist        `yaml:"wishlist,omitempty"`
	Footer    Footer           `yaml:"footer,omitempty"`
	Widgets   Widgets          `yaml:"widgets,omitempty"`
}

// Organisation describes who runs the relief effort.
type Organisation struct {
	Name     string `yaml:"name" validate:"required"`
	Badge    string `yaml:"badge,omitempty"`
	Phone    string `yaml:"phone,omitempty" validate:"omitempty,phone"`
	Email    string `yaml:"email,omitempty" validate:"omitempty,email"`
	Address  string `yaml:"address,omitempty"`
	WhatsApp string `yaml:"whatsapp,omitempty" validate:"omitempty,http_url"`
}

// Hero is the opening banner. Body is markdown.
type Hero struct {
	Badge    string `yaml:"badge,omitempty"`
	Headline string `yaml:"headline" validate:"required"`
	Subline  string `yaml:"subline,omitempty"`
	Body     string `yaml:"body,omitempty"`
}

// Metric is one impact figure.
type Metric struct {
	Label  string  `yaml:"label" validate:"required"`
	Value  float64 `yaml:"value" validate:"gte=0"`
	Suffix string  `yaml:"suffix,omitempty"`
	Note   string  `yaml:"note,omitempty"`
}

// DonationOption is one way to help.
type DonationOption struct {
	Title   string `yaml:"title" validate:"required"`
	Summary string `yaml:"summary,omitempty"`
	Detail  string `yaml:"detail,omitempty"`
	Anchor  string `yaml:"anchor,omitempty"`
}

// Needs lists requested items.
type Needs struct {
	Notice     Notice          `yaml:"notice,omitempty"`
	Categories []NeedsCategory `yaml:"categories,omitempty" validate:"omitempty,dive"`
}

// Notice is an alert block.
type Notice struct {
	Title string `yaml:"title,omitempty"`
	Body  string `yaml:"body,omitempty"`
}

// NeedsCategory groups items.
type NeedsCategory struct {
	Name     string     `yaml:"name" validate:"required"`
	Critical bool       `yaml:"critical,omitempty"`
	Items    []NeedItem `yaml:"items" validate:"required,min=1,dive"`
}

// NeedItem is a single item.
type NeedItem struct {
	Name     string `yaml:"name" validate:"required"`
	Detail   string `yaml:"detail,omitempty"`
	Priority bool   `yaml:"priority,omitempty"`
	Rejected bool   `yaml:"rejected,omitempty"`
}

// Courier describes remote donation.
type Courier struct {
	Title string        `yaml:"title,omitempty"`
	Intro string        `yaml:"intro,omitempty"`
	Steps []CourierStep `yaml:"steps,omitempty" validate:"omitempty,dive"`
}

// CourierStep is a numbered instruction.
type CourierStep struct {
	Title  string `yaml:"title" validate:"required"`
	Detail string `yaml:"detail,omitempty"`
	Copy   string `yaml:"copy,omitempty"`
}

// Location is the drop-off point.
type Location struct {
	Name    string   `yaml:"name,omitempty"`
	Address []string `yaml:"address,omitempty"`
	Hours   []string `yaml:"hours,omitempty"`
	Note    string   `yaml:"note,omitempty"`
	MapURL  string   `yaml:"map_url,omitempty" validate:"omitempty,http_url"`
}

// FinancialBlock groups verified accounts for one recipient.
type FinancialBlock struct {
	Label     string        `yaml:"label" validate:"required"`
	Recipient string        `yaml:"recipient" validate:"required"`
	VerifyURL string        `yaml:"verify_url,omitempty" validate:"omitempty,http_url"`
	Accounts  []BankAccount `yaml:"accounts" validate:"required,min=1,dive"`
}

// BankAccount is a list of labelled fields.
type BankAccount struct {
	Currency string         `yaml:"currency,omitempty"`
	Fields   []AccountField `yaml:"fields" validate:"required,min=1,dive"`
}

// AccountField is one labelled value.
type AccountField struct {
	Label string `yaml:"label" validate:"required"`
	Value string `yaml:"value" validate:"required"`
	Copy  bool   `yaml:"copy,omitempty"`
}

// FAQEntry is a question with a markdown answer.
type FAQEntry struct {
	Question string `yaml:"question" validate:"required"`
	Answer   string `yaml:"answer" validate:"required"`
}

// Gallery is the image catalog section.
type Gallery struct {
	Title    string  `yaml:"title,omitempty"`
	Subtitle string  `yaml:"subtitle,omitempty"`
	Images   []Image `yaml:"images" validate:"required,min=1,dive"`
}

// Image is one catalog entry.
type Image struct {
	Src string `yaml:"src" validate:"required,image_source"`
	Alt string `yaml:"alt" validate:"required"`
}

// Video is the optional video panel.
type Video struct {
	Title string `yaml:"title,omitempty"`
	URL   string `yaml:"url" validate:"required,http_url"`
}

// Wishlist is the optional wishlist panel.
type Wishlist struct {
	Title string `yaml:"title,omitempty"`
	Body  string `yaml:"body,omitempty"`
	URL   string `yaml:"url" validate:"required,http_url"`
}

// Footer closes the page.
type Footer struct {
	Tagline   string `yaml:"tagline,omitempty"`
	Blurb     string `yaml:"blurb,omitempty"`
	Sources   []Link `yaml:"sources,omitempty" validate:"omitempty,dive"`
	Copyright string `yaml:"copyright,omitempty"`
}

// Link is a labelled URL.
type Link struct {
	Label string `yaml:"label" validate:"required"`
	URL   string `yaml:"url" validate:"required,http_url"`
}

// Widgets toggles page-variant widgets.
type Widgets struct {
	Counter  bool `yaml:"counter,omitempty"`
	Video    bool `yaml:"video,omitempty"`
	Wishlist bool `yaml:"wishlist,omitempty"`
}
