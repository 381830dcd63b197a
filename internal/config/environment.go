package config

import (
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to the override variable names, e.g. GRAILPAY_VENDOR_API_KEY.
const EnvPrefix = "GRAILPAY"

type envOverride struct {
	configKey string
	target    func(conf *Application) *string
}

var envOverrides = map[string]envOverride{
	"vendor_api_key": {
		configKey: "authentication.vendor_api_key",
		target:    func(conf *Application) *string { return &conf.Authentication.VendorApiKey },
	},
	"processor_api_key": {
		configKey: "authentication.processor_api_key",
		target:    func(conf *Application) *string { return &conf.Authentication.ProcessorApiKey },
	},
	"environment": {
		configKey: "environment",
		target:    func(conf *Application) *string { return &conf.Environment },
	},
	"log_level": {
		configKey: "log_level",
		target:    func(conf *Application) *string { return &conf.LogLevel },
	},
}

// applyEnvironmentOverrides replaces values with those set in the environment and returns the
// config keys that were overridden. Secrets then need not be written into the file.
func applyEnvironmentOverrides(conf *Application) []string {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)

	overridden := make([]string, 0)
	for envKey, o := range envOverrides {
		if err := v.BindEnv(envKey); err != nil {
			continue
		}
		if v.IsSet(envKey) {
			*o.target(conf) = v.GetString(envKey)
			overridden = append(overridden, o.configKey)
		}
	}
	return overridden
}
