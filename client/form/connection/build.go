package connection

import "github.com/odpf/console/internal/models"

// BuildConnectionConfigPostgres converts form values to the config sent to
// the backend. The active tab decides between the url and the host case.
func BuildConnectionConfigPostgres(values PostgresFormValues, tab ActiveTab) *models.ConnectionConfig {
	pg := &models.PostgresConnectionConfig{
		ConnectionOptions: &models.SQLConnectionOptions{
			MaxConnectionLimit: int32Ptr(values.Options.MaxConnectionLimit),
		},
		Tunnel:    buildSSHTunnel(values.Tunnel),
		ClientTLS: buildClientTLS(values.ClientTLS),
	}

	if tab == ActiveTabURL {
		pg.URL = stringPtr(values.URL)
	} else {
		pg.Connection = &models.PostgresConnection{
			Host:    values.DB.Host,
			Port:    values.DB.Port,
			Name:    values.DB.Name,
			User:    values.DB.User,
			Pass:    values.DB.Pass,
			SSLMode: stringPtr(values.DB.SSLMode),
		}
	}
	return &models.ConnectionConfig{PgConfig: pg}
}

func buildSSHTunnel(values TunnelValues) *models.SSHTunnel {
	if !values.Enabled() {
		return nil
	}
	tunnel := &models.SSHTunnel{
		Host:           values.Host,
		Port:           values.Port,
		User:           values.User,
		Authentication: buildSSHAuthentication(values.PrivateKey, values.Passphrase),
	}
	if values.KnownHostPublicKey != "" {
		tunnel.KnownHostPublicKey = stringPtr(values.KnownHostPublicKey)
	}
	return tunnel
}

// a private key wins over a password, its passphrase then unlocks the key
func buildSSHAuthentication(privateKey, passphrase string) *models.SSHAuthentication {
	switch {
	case privateKey != "":
		key := &models.SSHPrivateKey{Value: privateKey}
		if passphrase != "" {
			key.Passphrase = stringPtr(passphrase)
		}
		return &models.SSHAuthentication{PrivateKey: key}
	case passphrase != "":
		return &models.SSHAuthentication{Passphrase: &models.SSHPassphrase{Value: passphrase}}
	}
	return nil
}

func buildClientTLS(values ClientTLSValues) *models.ClientTLSConfig {
	if !values.Enabled() {
		return nil
	}
	out := &models.ClientTLSConfig{}
	if values.RootCert != "" {
		out.RootCert = stringPtr(values.RootCert)
	}
	if values.ClientCert != "" {
		out.ClientCert = stringPtr(values.ClientCert)
	}
	if values.ClientKey != "" {
		out.ClientKey = stringPtr(values.ClientKey)
	}
	return out
}

func stringPtr(s string) *string {
	return &s
}

func int32Ptr(i int32) *int32 {
	return &i
}
