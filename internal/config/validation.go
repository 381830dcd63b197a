package config

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

func Validate(conf *Application, logFunc func(format string, v ...interface{})) error {
	errs := url.Values{}
	validateEnvironment(errs, conf.Environment)
	validateWebhookConfiguration(errs, conf.Webhook)
	validateRoutingNumber(errs, conf.RoutingNumber)
	validateLoggingConfiguration(errs, conf.LogLevel)
	validateApiConfiguration(errs, conf.Api)
	validateDatabaseConfiguration(errs, conf.Database)

	if len(errs) > 0 {
		logValidationErrorDetails(errs, logFunc)
		return errors.New("configuration values failed to validate, bailing out")
	}

	return nil
}

var allowedEnvironments = []string{EnvironmentSandbox, EnvironmentProduction}

func validateEnvironment(errs url.Values, env string) {
	if notInAllowedValues(allowedEnvironments, env) {
		errs.Add("environment", "must be one of sandbox, production")
	}
}

const (
	callbackPattern = "^https?://.+"
	baseUrlPattern  = "^https?://.*[^/]$"
)

func validateWebhookConfiguration(errs url.Values, c WebhookConfig) {
	if c.Url != "" && violatesPattern(callbackPattern, c.Url) {
		errs.Add("webhook.url", "callback url must start with http:// or https://")
	}
	checkIntValueRange(errs, 1, 65535, "webhook.listen.port", c.Listen.Port)
	checkIntValueRange(errs, 1, 300, "webhook.listen.read_timeout_seconds", c.Listen.ReadTimeout)
	checkIntValueRange(errs, 1, 300, "webhook.listen.write_timeout_seconds", c.Listen.WriteTimeout)
	checkIntValueRange(errs, 1, 300, "webhook.listen.idle_timeout_seconds", c.Listen.IdleTimeout)
	if c.Listen.Token != "" {
		checkLength(&errs, 16, 256, "webhook.listen.token", c.Listen.Token)
	}
}

const routingNumberPattern = "^[0-9]{9}$"

func validateRoutingNumber(errs url.Values, routingNumber string) {
	if routingNumber != "" && violatesPattern(routingNumberPattern, routingNumber) {
		errs.Add("routing_number", "must consist of exactly 9 digits")
	}
}

var allowedSeverities = []string{"DEBUG", "INFO", "WARN", "WARNING", "ERROR"}

func validateLoggingConfiguration(errs url.Values, level string) {
	if notInAllowedValues(allowedSeverities, strings.ToUpper(level)) {
		errs.Add("log_level", "must be one of DEBUG, INFO, WARN, WARNING, ERROR")
	}
}

func validateApiConfiguration(errs url.Values, c ApiConfig) {
	if c.BaseUrl != "" && violatesPattern(baseUrlPattern, c.BaseUrl) {
		errs.Add("api.base_url", "base url must start with http:// or https:// and may not end in a /")
	}
	checkIntValueRange(errs, 1, 300, "api.timeout_seconds", c.TimeoutSeconds)
}

var allowedDatabases = []DatabaseType{Mysql, Inmemory}

func validateDatabaseConfiguration(errs url.Values, c DatabaseConfig) {
	if notInAllowedValues(allowedDatabases, c.Use) {
		errs.Add("database.use", "must be one of mysql, inmemory")
	}
	if c.Use == Mysql {
		checkLength(&errs, 1, 256, "database.username", c.Username)
		checkLength(&errs, 1, 256, "database.password", c.Password)
		checkLength(&errs, 1, 256, "database.database", c.Database)
	}
}

func violatesPattern(pattern string, value string) bool {
	matched, err := regexp.MatchString(pattern, value)
	if err != nil {
		return true
	}
	return !matched
}

func checkLength(errs *url.Values, min int, max int, key string, value string) {
	if len(value) < min || len(value) > max {
		errs.Add(key, fmt.Sprintf("%s field must be at least %d and at most %d characters long", key, min, max))
	}
}

func checkIntValueRange(errs url.Values, min int, max int, key string, value int) {
	if value < min || value > max {
		errs.Add(key, fmt.Sprintf("%s field must be an integer at least %d and at most %d", key, min, max))
	}
}

func notInAllowedValues[T comparable](allowed []T, value T) bool {
	return !sliceContains(allowed, value)
}

func sliceContains[T comparable](s []T, e T) bool {
	for _, v := range s {
		if v == e {
			return true
		}
	}
	return false
}

func logValidationErrorDetails(errs url.Values, logFunc func(format string, v ...interface{})) {
	var keys []string
	for key := range errs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		val := errs[k]
		logFunc("configuration error: %s: %s", key, val[0])
	}
}
