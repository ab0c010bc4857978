package connection_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

type keyMaterial struct {
	privateKey          string
	encryptedPrivateKey string
	passphrase          string
	authorizedKey       string
	certificate         string
}

func newKeyMaterial(t *testing.T) keyMaterial {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der := x509.MarshalPKCS1PrivateKey(key)

	passphrase := "bastion-secret"
	//nolint:staticcheck
	encrypted, err := x509.EncryptPEMBlock(rand.Reader, "RSA PRIVATE KEY", der, []byte(passphrase), x509.PEMCipherAES256)
	require.NoError(t, err)

	pub, err := ssh.NewPublicKey(&key.PublicKey)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "postgres"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	certDER, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	return keyMaterial{
		privateKey:          string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: der})),
		encryptedPrivateKey: string(pem.EncodeToMemory(encrypted)),
		passphrase:          passphrase,
		authorizedKey:       string(ssh.MarshalAuthorizedKey(pub)),
		certificate:         string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certDER})),
	}
}
