package models

// Settings is the site-wide configuration edited from the back-office.
// Loaded once at startup, written through on every change.
type Settings struct {
	SiteName        string `bson:"siteName" json:"siteName"`
	SiteDescription string `bson:"siteDescription" json:"siteDescription"`
	ContactEmail    string `bson:"contactEmail" json:"contactEmail"`
	ContactPhone    string `bson:"contactPhone" json:"contactPhone"`
	Address         string `bson:"address" json:"address"`

	EmailNotifications   bool `bson:"emailNotifications" json:"emailNotifications"`
	OrderNotifications   bool `bson:"orderNotifications" json:"orderNotifications"`
	MessageNotifications bool `bson:"messageNotifications" json:"messageNotifications"`

	TwoFactorAuth  bool `bson:"twoFactorAuth" json:"twoFactorAuth"`
	SessionTimeout int  `bson:"sessionTimeout" json:"sessionTimeout"`

	MetaTitle       string `bson:"metaTitle" json:"metaTitle"`
	MetaDescription string `bson:"metaDescription" json:"metaDescription"`
	GoogleAnalytics string `bson:"googleAnalytics" json:"googleAnalytics"`
}

// DefaultSettings returns the settings used before the admin saves anything.
func DefaultSettings() Settings {
	return Settings{
		SiteName:        "Food Trucks Maroc",
		SiteDescription: "Constructeur de food trucks au Maroc",
		ContactEmail:    "contact@foodtrucks.ma",
		ContactPhone:    "+212 5XX XXX XXX",
		Address:         "123 Avenue Mohammed V, Casablanca, Maroc",

		EmailNotifications:   true,
		OrderNotifications:   true,
		MessageNotifications: true,

		TwoFactorAuth:  false,
		SessionTimeout: 30,

		MetaTitle:       "Food Trucks Maroc - Constructeur de Food Trucks au Maroc",
		MetaDescription: "Constructeur de food trucks au Maroc. Solutions mobiles sur mesure pour votre entreprise culinaire.",
		GoogleAnalytics: "",
	}
}
