package connection

import "github.com/odpf/console/internal/models"

const cloneSuffix = "-copy"

// ValuesFromConnection prefills the form from an existing connection. It
// returns false when the connection is not a postgres one, leaving current
// untouched. Client TLS values are kept from current.
func ValuesFromConnection(current PostgresFormValues, currentTab ActiveTab, conn *models.Connection) (PostgresFormValues, ActiveTab, bool) {
	if conn == nil || conn.ConnectionConfig == nil || conn.ConnectionConfig.PgConfig == nil {
		return current, currentTab, false
	}
	pg := conn.ConnectionConfig.PgConfig

	values := PostgresFormValues{
		ConnectionName: conn.Name + cloneSuffix,
		DB: DBValues{
			Port:    defaultPostgresPort,
			SSLMode: defaultSSLMode,
		},
		Options: OptionsValues{
			MaxConnectionLimit: defaultMaxConnectionLimit,
		},
		Tunnel:    tunnelValues(pg.Tunnel),
		ClientTLS: current.ClientTLS,
	}

	if c := pg.Connection; c != nil {
		values.DB.Host = c.Host
		values.DB.Name = c.Name
		values.DB.User = c.User
		values.DB.Pass = c.Pass
		if c.Port != 0 {
			values.DB.Port = c.Port
		}
		if c.SSLMode != nil {
			values.DB.SSLMode = *c.SSLMode
		}
	}
	if pg.URL != nil {
		values.URL = *pg.URL
	}
	if opts := pg.ConnectionOptions; opts != nil && opts.MaxConnectionLimit != nil {
		values.Options.MaxConnectionLimit = *opts.MaxConnectionLimit
	}

	tab := currentTab
	switch pg.Case() {
	case models.PostgresCaseURL:
		tab = ActiveTabURL
	case models.PostgresCaseConnection:
		tab = ActiveTabHost
	}
	return values, tab, true
}

func tunnelValues(tunnel *models.SSHTunnel) TunnelValues {
	out := TunnelValues{Port: defaultTunnelPort}
	if tunnel == nil {
		return out
	}
	out.Host = tunnel.Host
	out.User = tunnel.User
	if tunnel.Port != 0 {
		out.Port = tunnel.Port
	}
	if tunnel.KnownHostPublicKey != nil {
		out.KnownHostPublicKey = *tunnel.KnownHostPublicKey
	}
	if auth := tunnel.Authentication; auth != nil {
		switch {
		case auth.PrivateKey != nil:
			out.PrivateKey = auth.PrivateKey.Value
			if auth.PrivateKey.Passphrase != nil {
				out.Passphrase = *auth.PrivateKey.Passphrase
			}
		case auth.Passphrase != nil:
			out.Passphrase = auth.Passphrase.Value
		}
	}
	return out
}
