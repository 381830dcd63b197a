package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const completeConfig = `environment: production
authentication:
  processor_api_key: 'processor-key'
  vendor_api_key: 'vendor-key'
webhook:
  url: 'https://httpbin.org/post'
  listen:
    port: 9090
onboarding:
  kyb: true
routing_number: '021000021'
log_level: DEBUG
api:
  timeout_seconds: 45
`

func writeConfigFile(t *testing.T, contents string) string {
	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0o600))
	return filename
}

func recordingLogFunc() (*strings.Builder, func(format string, v ...interface{})) {
	logRecording := &strings.Builder{}
	return logRecording, func(format string, v ...interface{}) {
		logRecording.WriteString(fmt.Sprintf(format, v...))
		logRecording.WriteString("\n")
	}
}

func TestUnmarshalConfig(t *testing.T) {
	b := bytes.NewBufferString(completeConfig)

	conf, err := UnmarshalFromYamlConfiguration(b)
	require.NoError(t, err)

	logRecording, logFunc := recordingLogFunc()
	err = Validate(conf, logFunc)
	require.Equal(t, "", logRecording.String())
	require.NoError(t, err)

	require.Equal(t, EnvironmentProduction, conf.Environment)
	require.Equal(t, "processor-key", conf.Authentication.ProcessorApiKey)
	require.Equal(t, "vendor-key", conf.Authentication.VendorApiKey)
	require.Equal(t, "https://httpbin.org/post", conf.Webhook.Url)
	require.Equal(t, 9090, conf.Webhook.Listen.Port)
	require.True(t, conf.Onboarding.Kyb)
	require.Equal(t, "021000021", conf.RoutingNumber)
	require.Equal(t, "DEBUG", conf.LogLevel)
	require.Equal(t, 45, conf.Api.TimeoutSeconds)
	require.Equal(t, "", conf.Api.BaseUrl)
	// not in the file, so the defaults survive
	require.Equal(t, 30, conf.Webhook.Listen.ReadTimeout)
	require.Equal(t, Inmemory, conf.Database.Use)
}

func TestUnmarshalConfigInvalid(t *testing.T) {
	s := `---
environment: sandbox
authentication:
vendor_api_key: abc
        processor_api_key: def
    log_level: INFO
`

	conf, err := UnmarshalFromYamlConfiguration(bytes.NewBufferString(s))
	require.Error(t, err)

	require.Nil(t, conf)
}

func TestUnmarshalUnknownFields(t *testing.T) {
	s := `environment: sandbox
autentication_with_typo_we_want_to_detect:
  vendor_api_key: 'vendor-key'
`

	conf, err := UnmarshalFromYamlConfiguration(bytes.NewBufferString(s))
	require.Error(t, err)
	require.Contains(t, err.Error(), "autentication_with_typo_we_want_to_detect")

	require.Nil(t, conf)
}

func TestUnmarshalEmpty(t *testing.T) {
	conf, err := UnmarshalFromYamlConfiguration(bytes.NewBufferString(""))
	require.NoError(t, err)
	require.Equal(t, Default(), conf)
}

func TestValidationErrors1(t *testing.T) {
	s := `environment: staging
webhook:
  url: 'ftp://example.com'
  listen:
    port: -77
    token: 'too-short'
routing_number: '1234'
log_level: CAT
api:
  base_url: 'http://localhost:8080/'
  timeout_seconds: 0
database:
  use: papyrus
`

	conf, err := UnmarshalFromYamlConfiguration(bytes.NewBufferString(s))
	require.NoError(t, err)

	logRecording, logFunc := recordingLogFunc()
	err = Validate(conf, logFunc)

	expected := `configuration error: api.base_url: base url must start with http:// or https:// and may not end in a /
configuration error: api.timeout_seconds: api.timeout_seconds field must be an integer at least 1 and at most 300
configuration error: database.use: must be one of mysql, inmemory
configuration error: environment: must be one of sandbox, production
configuration error: log_level: must be one of DEBUG, INFO, WARN, WARNING, ERROR
configuration error: routing_number: must consist of exactly 9 digits
configuration error: webhook.listen.port: webhook.listen.port field must be an integer at least 1 and at most 65535
configuration error: webhook.listen.token: webhook.listen.token field must be at least 16 and at most 256 characters long
configuration error: webhook.url: callback url must start with http:// or https://
`
	require.Equal(t, expected, logRecording.String())
	require.Error(t, err)
}

func TestValidationMysqlCredentials(t *testing.T) {
	s := `database:
  use: mysql
  username: 'gp'
`

	conf, err := UnmarshalFromYamlConfiguration(bytes.NewBufferString(s))
	require.NoError(t, err)

	logRecording, logFunc := recordingLogFunc()
	err = Validate(conf, logFunc)

	expected := `configuration error: database.database: database.database field must be at least 1 and at most 256 characters long
configuration error: database.password: database.password field must be at least 1 and at most 256 characters long
`
	require.Equal(t, expected, logRecording.String())
	require.Error(t, err)
}

func TestValidationAcceptsLowercaseLogLevel(t *testing.T) {
	conf := Default()
	conf.LogLevel = "warning"

	_, logFunc := recordingLogFunc()
	require.NoError(t, Validate(conf, logFunc))
}

func TestLoadComplete(t *testing.T) {
	res, err := Load(writeConfigFile(t, completeConfig))
	require.NoError(t, err)

	require.Equal(t, Complete, res.Completeness)
	require.Empty(t, res.Missing)
	require.Equal(t, "vendor-key", res.Config.Authentication.VendorApiKey)
}

func TestLoadPartial(t *testing.T) {
	s := `environment: sandbox
authentication:
  vendor_api_key: 'vendor-key'
onboarding:
  kyb: false
log_level: INFO
`

	res, err := Load(writeConfigFile(t, s))
	require.NoError(t, err)

	require.Equal(t, Partial, res.Completeness)
	require.Equal(t, []string{"authentication.processor_api_key", "routing_number", "webhook.url"}, res.Missing)
	require.Equal(t, "vendor-key", res.Config.Authentication.VendorApiKey)
	require.Equal(t, "", res.Config.RoutingNumber)
}

func TestLoadMissingFile(t *testing.T) {
	res, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	require.Equal(t, Defaulted, res.Completeness)
	require.Len(t, res.Missing, len(requiredKeys))
	require.Equal(t, Default(), res.Config)
}

func TestLoadMalformedFile(t *testing.T) {
	_, err := Load(writeConfigFile(t, "environment: [unclosed"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse configuration file")
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("GRAILPAY_VENDOR_API_KEY", "from-environment")
	t.Setenv("GRAILPAY_LOG_LEVEL", "ERROR")

	s := `environment: sandbox
authentication:
  processor_api_key: 'processor-key'
webhook:
  url: 'https://httpbin.org/post'
onboarding:
  kyb: false
routing_number: '021000021'
log_level: INFO
`

	res, err := Load(writeConfigFile(t, s))
	require.NoError(t, err)

	require.Equal(t, Complete, res.Completeness)
	require.Equal(t, "from-environment", res.Config.Authentication.VendorApiKey)
	require.Equal(t, "ERROR", res.Config.LogLevel)
}

func TestCompletenessString(t *testing.T) {
	require.Equal(t, "complete", Complete.String())
	require.Equal(t, "partial", Partial.String())
	require.Equal(t, "defaulted", Defaulted.String())
	require.Equal(t, "unknown", Completeness(42).String())
}
