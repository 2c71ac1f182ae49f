package packager

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// SignatureSuffix is appended to the manifest path for its detached signature.
const SignatureSuffix = ".asc"

var (
	errNoPrivateKey  = errors.New("key file contains no private key")
	errEncryptedKey  = errors.New("passphrase-protected signing keys are not supported")
	errSignerMissing = errors.New("signer is required")
)

// loadSigningKey reads an armored OpenPGP key ring and returns its first private key.
func loadSigningKey(path string) (*openpgp.Entity, error) {
	keyFile, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open signing key: %w", err)
	}

	defer func() {
		_ = keyFile.Close()
	}()

	entities, err := openpgp.ReadArmoredKeyRing(keyFile)
	if err != nil {
		return nil, fmt.Errorf("read signing key: %w", err)
	}

	for _, entity := range entities {
		if entity.PrivateKey == nil {
			continue
		}

		if entity.PrivateKey.Encrypted {
			return nil, errEncryptedKey
		}

		return entity, nil
	}

	return nil, errNoPrivateKey
}

// signFile writes an armored detached signature of path to path+SignatureSuffix.
func signFile(path string, signer *openpgp.Entity) (string, error) {
	if signer == nil {
		return "", errSignerMissing
	}

	message, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}

	defer func() {
		_ = message.Close()
	}()

	signaturePath := path + SignatureSuffix

	signature, err := os.OpenFile(filepath.Clean(signaturePath), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, manifestFileMode)
	if err != nil {
		return "", fmt.Errorf("create signature: %w", err)
	}

	if err = openpgp.ArmoredDetachSign(signature, signer, message, nil); err != nil {
		_ = signature.Close()

		return "", fmt.Errorf("sign %s: %w", path, err)
	}

	if err = signature.Close(); err != nil {
		return "", fmt.Errorf("close signature: %w", err)
	}

	return signaturePath, nil
}
