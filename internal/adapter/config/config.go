package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database  *Database
	HTTP      *HTTP
	App       *App
	Razorpay  *Razorpay
	Delhivery *Delhivery
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Razorpay struct {
	BaseURL       string `env:"RAZORPAY_BASE_URL" envDefault:"https://api.razorpay.com"`
	KeyID         string `env:"RAZORPAY_KEY_ID"`
	KeySecret     string `env:"RAZORPAY_KEY_SECRET"`
	WebhookSecret string `env:"RAZORPAY_WEBHOOK_SECRET"`
	Currency      string `env:"RAZORPAY_CURRENCY" envDefault:"INR"`
}

type Delhivery struct {
	BaseURL    string `env:"DELHIVERY_BASE_URL"`
	APIKey     string `env:"DELHIVERY_API_KEY"`
	ClientName string `env:"DELHIVERY_CLIENT_NAME"`

	// Pickup must exactly match a warehouse pre-registered on the courier
	// side. A mismatch is a configuration error, not a transient fault.
	PickupName    string `env:"PICKUP_NAME"`
	PickupAddress string `env:"PICKUP_ADDRESS"`
	PickupCity    string `env:"PICKUP_CITY"`
	PickupState   string `env:"PICKUP_STATE"`
	PickupPin     string `env:"PICKUP_PIN"`
	PickupCountry string `env:"PICKUP_COUNTRY" envDefault:"India"`
	PickupPhone   string `env:"PICKUP_PHONE"`
	PickupEmail   string `env:"PICKUP_EMAIL"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var app App
	var razorpay Razorpay
	var delhivery Delhivery

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&razorpay)
	if err != nil {
		return nil, fmt.Errorf("error parsing razorpay config: %w", err)
	}
	err = env.Parse(&delhivery)
	if err != nil {
		return nil, fmt.Errorf("error parsing delhivery config: %w", err)
	}

	if err := razorpay.Validate(); err != nil {
		return nil, err
	}
	if err := delhivery.Validate(); err != nil {
		return nil, err
	}

	config := Config{
		Database:  &db,
		HTTP:      &http,
		App:       &app,
		Razorpay:  &razorpay,
		Delhivery: &delhivery,
	}

	return &config, nil
}

// Validate fails fast on missing gateway credentials so operators see a
// configuration error at startup instead of failed checkouts.
func (r *Razorpay) Validate() error {
	if r.KeyID == "" || r.KeySecret == "" {
		return fmt.Errorf("razorpay credentials missing (RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET)")
	}
	if r.WebhookSecret == "" {
		return fmt.Errorf("razorpay webhook secret missing (RAZORPAY_WEBHOOK_SECRET)")
	}
	return nil
}

func (d *Delhivery) Validate() error {
	if d.BaseURL == "" || d.APIKey == "" || d.ClientName == "" {
		return fmt.Errorf("delhivery credentials missing (DELHIVERY_BASE_URL / DELHIVERY_API_KEY / DELHIVERY_CLIENT_NAME)")
	}
	if d.PickupName == "" || d.PickupAddress == "" || d.PickupCity == "" ||
		d.PickupState == "" || d.PickupPin == "" || d.PickupPhone == "" {
		return fmt.Errorf("delhivery pickup address incomplete, must match registered warehouse")
	}
	return nil
}
