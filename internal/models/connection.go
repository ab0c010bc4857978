package models

import (
	"encoding/json"
	"time"
)

const (
	PostgresCaseURL        = "url"
	PostgresCaseConnection = "connection"
)

// ConnectionConfig is a one-of over the supported connection kinds. Only
// postgres is modelled, any other kind is kept raw so it can be recognised
// and passed through.
type ConnectionConfig struct {
	PgConfig *PostgresConnectionConfig  `json:"pgConfig,omitempty"`
	Other    map[string]json.RawMessage `json:"-"`
}

func (c ConnectionConfig) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{}
	for k, v := range c.Other {
		out[k] = v
	}
	if c.PgConfig != nil {
		out["pgConfig"] = c.PgConfig
	}
	return json.Marshal(out)
}

func (c *ConnectionConfig) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = ConnectionConfig{}
	for k, v := range raw {
		if k == "pgConfig" {
			pg := &PostgresConnectionConfig{}
			if err := json.Unmarshal(v, pg); err != nil {
				return err
			}
			c.PgConfig = pg
			continue
		}
		if c.Other == nil {
			c.Other = map[string]json.RawMessage{}
		}
		c.Other[k] = v
	}
	return nil
}

// PostgresConnectionConfig holds either URL or Connection, never both
type PostgresConnectionConfig struct {
	URL               *string               `json:"url,omitempty"`
	Connection        *PostgresConnection   `json:"connection,omitempty"`
	Tunnel            *SSHTunnel            `json:"tunnel,omitempty"`
	ConnectionOptions *SQLConnectionOptions `json:"connectionOptions,omitempty"`
	ClientTLS         *ClientTLSConfig      `json:"clientTls,omitempty"`
}

// Case names the populated branch of the url/connection one-of
func (p *PostgresConnectionConfig) Case() string {
	switch {
	case p == nil:
		return ""
	case p.URL != nil:
		return PostgresCaseURL
	case p.Connection != nil:
		return PostgresCaseConnection
	}
	return ""
}

type PostgresConnection struct {
	Host    string  `json:"host"`
	Port    int32   `json:"port"`
	Name    string  `json:"name"`
	User    string  `json:"user"`
	Pass    string  `json:"pass"`
	SSLMode *string `json:"sslMode,omitempty"`
}

type SSHTunnel struct {
	Host               string             `json:"host"`
	Port               int32              `json:"port"`
	User               string             `json:"user"`
	KnownHostPublicKey *string            `json:"knownHostPublicKey,omitempty"`
	Authentication     *SSHAuthentication `json:"authentication,omitempty"`
}

// SSHAuthentication holds either Passphrase or PrivateKey
type SSHAuthentication struct {
	Passphrase *SSHPassphrase `json:"passphrase,omitempty"`
	PrivateKey *SSHPrivateKey `json:"privateKey,omitempty"`
}

type SSHPassphrase struct {
	Value string `json:"value"`
}

type SSHPrivateKey struct {
	Value      string  `json:"value"`
	Passphrase *string `json:"passphrase,omitempty"`
}

type SQLConnectionOptions struct {
	MaxConnectionLimit *int32 `json:"maxConnectionLimit,omitempty"`
}

type ClientTLSConfig struct {
	RootCert   *string `json:"rootCert,omitempty"`
	ClientCert *string `json:"clientCert,omitempty"`
	ClientKey  *string `json:"clientKey,omitempty"`
}

type Connection struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	AccountID        string            `json:"accountId"`
	ConnectionConfig *ConnectionConfig `json:"connectionConfig,omitempty"`
	CreatedAt        *time.Time        `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time        `json:"updatedAt,omitempty"`
}

type CreateConnectionRequest struct {
	AccountID        string            `json:"accountId"`
	Name             string            `json:"name"`
	ConnectionConfig *ConnectionConfig `json:"connectionConfig"`
}

type CreateConnectionResponse struct {
	Connection *Connection `json:"connection,omitempty"`
}

type GetConnectionRequest struct {
	ID string `json:"id"`
}

type GetConnectionResponse struct {
	Connection *Connection `json:"connection,omitempty"`
}

type DeleteConnectionRequest struct {
	ID string `json:"id"`
}

type IsConnectionNameAvailableRequest struct {
	AccountID      string `json:"accountId"`
	ConnectionName string `json:"connectionName"`
}

type IsConnectionNameAvailableResponse struct {
	IsAvailable bool `json:"isAvailable"`
}

type CheckConnectionConfigRequest struct {
	ConnectionConfig *ConnectionConfig `json:"connectionConfig"`
}

type CheckConnectionConfigResponse struct {
	IsConnected     bool                      `json:"isConnected"`
	ConnectionError *string                   `json:"connectionError,omitempty"`
	Privileges      []ConnectionRolePrivilege `json:"privileges,omitempty"`
}

type ConnectionRolePrivilege struct {
	Grantee       string   `json:"grantee"`
	Schema        string   `json:"schema"`
	Table         string   `json:"table"`
	PrivilegeType []string `json:"privilegeType"`
}
