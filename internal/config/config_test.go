package config

import "testing"

func validConfig() *Config {
	return &Config{
		Engines: []EngineConfig{{Name: "mojeek", Enabled: true}},
	}
}

func TestValidate_NoEnginesEnabledIsAnError(t *testing.T) {
	cfg := &Config{Engines: []EngineConfig{{Name: "mojeek", Enabled: false}}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error when no engines are enabled")
	}
}

func TestValidate_RefinerEnabledRequiresEndpoint(t *testing.T) {
	cfg := validConfig()
	cfg.Refiner = RefinerConfig{Enabled: true, MaxResults: 10}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error when refiner is enabled with no endpoint")
	}
}

func TestValidate_RateLimitEnabledRequiresRedisURL(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit = RateLimitConfig{Enabled: true, DefaultPerMinute: 60}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error when rate limiting is enabled with no redis url")
	}
}

func TestValidate_SaneConfigPasses(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected a valid config, got %v", err)
	}
}

func TestAggregatorTimeout_DefaultsWhenUnset(t *testing.T) {
	cfg := &Config{}
	if got := cfg.AggregatorTimeout(); got.Seconds() != 10 {
		t.Fatalf("expected a 10s default, got %v", got)
	}
}

func TestEnabledEngineNames_FiltersDisabled(t *testing.T) {
	cfg := &Config{Engines: []EngineConfig{
		{Name: "mojeek", Enabled: true},
		{Name: "disabled-one", Enabled: false},
	}}
	names := cfg.EnabledEngineNames()
	if len(names) != 1 || names[0] != "mojeek" {
		t.Fatalf("expected only mojeek, got %v", names)
	}
}
