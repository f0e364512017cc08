package config

type FrankfurterConfig struct {
	URL            string `yaml:"base-url"`
	TimeoutSeconds int64  `yaml:"timeout-seconds"`
}

func (c *FrankfurterConfig) BaseURL() string {
	if c.URL == "" {
		return "https://api.frankfurter.app"
	}
	return c.URL
}

func (c *FrankfurterConfig) Timeout() int64 {
	if c.TimeoutSeconds <= 0 {
		return 10
	}
	return c.TimeoutSeconds
}
