// Package connection holds the postgres connection form: its values, the
// schema validating them, and the orchestration of test, submit and clone.
package connection

import "fmt"

// ActiveTab is the way the user connects: a single url or the host fields
type ActiveTab string

const (
	ActiveTabURL  ActiveTab = "url"
	ActiveTabHost ActiveTab = "host"
)

func ParseActiveTab(s string) (ActiveTab, error) {
	switch ActiveTab(s) {
	case ActiveTabURL, ActiveTabHost:
		return ActiveTab(s), nil
	}
	return "", fmt.Errorf("unknown connection mode %q, expected %q or %q", s, ActiveTabURL, ActiveTabHost)
}

const (
	defaultPostgresPort       int32 = 5432
	defaultTunnelPort         int32 = 22
	defaultMaxConnectionLimit int32 = 80
	defaultSSLMode                  = "disable"
)

var SSLModes = []string{"disable", "allow", "prefer", "require", "verify-ca", "verify-full"}

type PostgresFormValues struct {
	ConnectionName string          `json:"connectionName"`
	DB             DBValues        `json:"db"`
	URL            string          `json:"url"`
	Options        OptionsValues   `json:"options"`
	Tunnel         TunnelValues    `json:"tunnel"`
	ClientTLS      ClientTLSValues `json:"clientTls"`
}

type DBValues struct {
	Host    string `json:"host"`
	Port    int32  `json:"port"`
	Name    string `json:"name"`
	User    string `json:"user"`
	Pass    string `json:"pass"`
	SSLMode string `json:"sslMode"`
}

type OptionsValues struct {
	// 0 means no limit on open connections
	MaxConnectionLimit int32 `json:"maxConnectionLimit"`
}

type TunnelValues struct {
	Host               string `json:"host"`
	Port               int32  `json:"port"`
	KnownHostPublicKey string `json:"knownHostPublicKey"`
	User               string `json:"user"`
	Passphrase         string `json:"passphrase"`
	PrivateKey         string `json:"privateKey"`
}

// Enabled reports whether the bastion section is in use
func (t TunnelValues) Enabled() bool {
	return t.Host != ""
}

type ClientTLSValues struct {
	RootCert   string `json:"rootCert"`
	ClientCert string `json:"clientCert"`
	ClientKey  string `json:"clientKey"`
}

func (c ClientTLSValues) Enabled() bool {
	return c.RootCert != "" || c.ClientCert != "" || c.ClientKey != ""
}

// DefaultPostgresFormValues returns the values a fresh form starts with
func DefaultPostgresFormValues() PostgresFormValues {
	return PostgresFormValues{
		DB: DBValues{
			Host:    "localhost",
			Port:    defaultPostgresPort,
			Name:    "postgres",
			User:    "postgres",
			Pass:    "postgres",
			SSLMode: defaultSSLMode,
		},
		Options: OptionsValues{
			MaxConnectionLimit: defaultMaxConnectionLimit,
		},
		Tunnel: TunnelValues{
			Port: defaultTunnelPort,
		},
	}
}
