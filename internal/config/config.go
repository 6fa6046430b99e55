package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	DatabasePath   string `env:"DATABASE_PATH" envDefault:"store.db"`
	FrontendOrigin string `env:"FRONTEND_ORIGIN" envDefault:"http://localhost:3000"`
	StaticDir      string `env:"STATIC_DIR" envDefault:"web/build"`

	Payfast Payfast `envPrefix:"PAYFAST_"`
	SMTP    SMTP    `envPrefix:"SMTP_"`
}

type Payfast struct {
	MerchantID  string `env:"MERCHANT_ID"`
	MerchantKey string `env:"MERCHANT_KEY"`
	Passphrase  string `env:"PASSPHRASE"`
	ReturnURL   string `env:"RETURN_URL"`
	CancelURL   string `env:"CANCEL_URL"`
	NotifyURL   string `env:"NOTIFY_URL"`
	ProcessURL  string `env:"PROCESS_URL" envDefault:"https://www.payfast.co.za/eng/process"`
	Sandbox     bool   `env:"SANDBOX" envDefault:"false"`

	// Prepended to the gateway item_name field, e.g. "Nuke Order".
	ItemNamePrefix string `env:"ITEM_NAME_PREFIX" envDefault:"Order"`
}

type SMTP struct {
	Host     string `env:"HOST" envDefault:"smtp.zoho.com"`
	Port     int    `env:"PORT" envDefault:"587"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`

	// Recipient of new-order and contact-form mail.
	OrderRecipient string `env:"ORDER_RECIPIENT"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
