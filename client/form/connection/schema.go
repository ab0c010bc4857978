package connection

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/crypto/ssh"

	"github.com/odpf/console/internal/models"
)

const (
	nameMinLength = 3
	nameMaxLength = 100

	maxConnectionLimit = 10000
	maxPort            = 65535
)

var (
	connectionNameRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

	errNameTaken = validation.NewError("validation_connection_name_taken", "This Connection Name is already taken.")

	sslModeValues = func() []interface{} {
		out := make([]interface{}, len(SSLModes))
		for i, m := range SSLModes {
			out[i] = m
		}
		return out
	}()
)

// NameAvailabilityChecker asks the backend if a connection name is free in an account
type NameAvailabilityChecker interface {
	IsConnectionNameAvailable(ctx context.Context, accountID, name string) (bool, error)
}

type PostgresFormSchema struct {
	account *models.Account
	checker NameAvailabilityChecker
}

func NewPostgresFormSchema(account *models.Account, checker NameAvailabilityChecker) *PostgresFormSchema {
	return &PostgresFormSchema{
		account: account,
		checker: checker,
	}
}

// Validate checks values for the given mode. Only the section matching tab
// is validated out of url and host fields.
func (s *PostgresFormSchema) Validate(ctx context.Context, values *PostgresFormValues, tab ActiveTab) error {
	values.ConnectionName = strings.TrimSpace(values.ConnectionName)

	err := validation.ValidateStructWithContext(ctx, values,
		validation.Field(&values.ConnectionName, s.nameRules()...),
		validation.Field(&values.URL, validation.When(tab == ActiveTabURL,
			validation.Required.Error("The connection url is required"),
			validation.By(validatePostgresURL),
		)),
		validation.Field(&values.DB, validation.When(tab == ActiveTabHost, validation.By(validateDB))),
		validation.Field(&values.Options, validation.By(validateOptions)),
		validation.Field(&values.Tunnel, validation.By(validateTunnel)),
		validation.Field(&values.ClientTLS, validation.By(validateClientTLS)),
	)
	var internal validation.InternalError
	if errors.As(err, &internal) {
		return internal.InternalError()
	}
	return err
}

// ValidateConnectionName runs the connection name rules alone, uniqueness included
func (s *PostgresFormSchema) ValidateConnectionName(ctx context.Context, name string) error {
	err := validation.ValidateWithContext(ctx, strings.TrimSpace(name), s.nameRules()...)
	var internal validation.InternalError
	if errors.As(err, &internal) {
		return internal.InternalError()
	}
	return err
}

func (s *PostgresFormSchema) nameRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("Connection Name is a required field"),
		validation.RuneLength(nameMinLength, nameMaxLength),
		validation.Match(connectionNameRegex).Error("Connection Name can only include lowercase letters, numbers, and hyphens"),
		validation.WithContext(s.checkNameUnique),
	}
}

func (s *PostgresFormSchema) checkNameUnique(ctx context.Context, value interface{}) error {
	name, _ := value.(string)
	if name == "" || s.account == nil {
		return errNameTaken
	}
	available, err := s.checker.IsConnectionNameAvailable(ctx, s.account.ID, name)
	if err != nil {
		return validation.NewInternalError(fmt.Errorf("error checking connection name: %w", err))
	}
	if !available {
		return errNameTaken
	}
	return nil
}

func validatePostgresURL(value interface{}) error {
	raw, _ := value.(string)
	u, err := url.Parse(raw)
	if err != nil {
		return errors.New("must be a valid connection url")
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return errors.New("must use the postgres:// or postgresql:// scheme")
	}
	return nil
}

func validateDB(value interface{}) error {
	db, _ := value.(DBValues)
	return validation.ValidateStruct(&db,
		validation.Field(&db.Host, validation.Required.Error("The host name is required")),
		validation.Field(&db.Port, validation.Required.Error("The database port is required"), validation.Min(1), validation.Max(maxPort)),
		validation.Field(&db.Name, validation.Required.Error("The database name is required")),
		validation.Field(&db.User, validation.Required.Error("The database user is required")),
		validation.Field(&db.Pass, validation.Required.Error("The database password is required")),
		validation.Field(&db.SSLMode, validation.In(sslModeValues...).Error("must be one of "+strings.Join(SSLModes, ", "))),
	)
}

func validateOptions(value interface{}) error {
	opts, _ := value.(OptionsValues)
	return validation.ValidateStruct(&opts,
		validation.Field(&opts.MaxConnectionLimit, validation.Min(0), validation.Max(maxConnectionLimit)),
	)
}

func validateTunnel(value interface{}) error {
	tunnel, _ := value.(TunnelValues)
	if !tunnel.Enabled() {
		return nil
	}
	return validation.ValidateStruct(&tunnel,
		validation.Field(&tunnel.Port, validation.Required.Error("The bastion port is required"), validation.Min(1), validation.Max(maxPort)),
		validation.Field(&tunnel.User, validation.Required.Error("The bastion user is required")),
		validation.Field(&tunnel.PrivateKey, validation.By(func(interface{}) error {
			return validatePrivateKey(tunnel.PrivateKey, tunnel.Passphrase)
		})),
		validation.Field(&tunnel.KnownHostPublicKey, validation.By(validateKnownHostKey)),
	)
}

func validatePrivateKey(key, passphrase string) error {
	if key == "" {
		return nil
	}
	_, err := ssh.ParsePrivateKey([]byte(key))
	var missing *ssh.PassphraseMissingError
	if errors.As(err, &missing) {
		if passphrase == "" {
			return errors.New("the private key is encrypted, provide its password as the passphrase")
		}
		_, err = ssh.ParsePrivateKeyWithPassphrase([]byte(key), []byte(passphrase))
	}
	if err != nil {
		return errors.New("must be a valid PEM encoded private key")
	}
	return nil
}

func validateKnownHostKey(value interface{}) error {
	key, _ := value.(string)
	if key == "" {
		return nil
	}
	if _, _, _, _, err := ssh.ParseAuthorizedKey([]byte(key)); err != nil {
		return errors.New("must be a public key like an entry of ~/.ssh/known_hosts without the hostname")
	}
	return nil
}

func validateClientTLS(value interface{}) error {
	tls, _ := value.(ClientTLSValues)
	return validation.ValidateStruct(&tls,
		validation.Field(&tls.RootCert, validation.By(validateCertificate)),
		validation.Field(&tls.ClientCert,
			validation.When(tls.ClientKey != "", validation.Required.Error("a client key requires its client certificate")),
			validation.By(validateCertificate),
		),
		validation.Field(&tls.ClientKey,
			validation.When(tls.ClientCert != "", validation.Required.Error("a client certificate requires its client key")),
			validation.By(validatePrivateKeyPEM),
		),
	)
}

func validateCertificate(value interface{}) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}
	block, _ := pem.Decode([]byte(raw))
	if block == nil || block.Type != "CERTIFICATE" {
		return errors.New("must be a PEM encoded certificate")
	}
	if _, err := x509.ParseCertificate(block.Bytes); err != nil {
		return fmt.Errorf("must be a valid certificate: %w", err)
	}
	return nil
}

func validatePrivateKeyPEM(value interface{}) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}
	block, _ := pem.Decode([]byte(raw))
	if block == nil || !strings.HasSuffix(block.Type, "PRIVATE KEY") {
		return errors.New("must be a PEM encoded private key")
	}
	return nil
}
