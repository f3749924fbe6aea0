package envconfig

import "github.com/caarlos0/env/v11"

type webhookEnv struct {
	Secret string `env:"RAZORPAY_WEBHOOK_SECRET,required"`
}

type webhook struct {
	raw webhookEnv
}

func NewWebhookConfig() (*webhook, error) {
	var raw webhookEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &webhook{raw: raw}, nil
}

func (cfg *webhook) Secret() string { return cfg.raw.Secret }
