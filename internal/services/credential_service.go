package services

import (
	"crypto/rand"
	"errors"
	"fmt"

	"bankrules/internal/models"
	"bankrules/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/chacha20poly1305"
)

var (
	ErrCredentialsNotFound = errors.New("no provider credentials stored")
	ErrInvalidKeySize      = errors.New("encryption key must be 32 bytes")
)

// credentialService stores provider secrets encrypted at rest with
// ChaCha20-Poly1305. Each value gets a fresh random nonce prepended to the
// ciphertext.
type credentialService struct {
	credentialRepo repositories.CredentialRepositoryInterface
	key            []byte
}

// NewCredentialService creates a credential service using the given 32 byte
// encryption key
func NewCredentialService(
	credentialRepo repositories.CredentialRepositoryInterface,
	encryptionKey []byte,
) (CredentialServiceInterface, error) {
	if len(encryptionKey) != chacha20poly1305.KeySize {
		return nil, ErrInvalidKeySize
	}

	return &credentialService{
		credentialRepo: credentialRepo,
		key:            encryptionKey,
	}, nil
}

func (s *credentialService) StoreCredentials(userID uuid.UUID, secretID, secretKey string) error {
	encryptedID, err := s.encrypt([]byte(secretID))
	if err != nil {
		return fmt.Errorf("encrypt secret id: %w", err)
	}

	encryptedKey, err := s.encrypt([]byte(secretKey))
	if err != nil {
		return fmt.Errorf("encrypt secret key: %w", err)
	}

	credential := &models.ProviderCredential{
		UserID:             userID,
		EncryptedSecretID:  encryptedID,
		EncryptedSecretKey: encryptedKey,
	}

	if err := s.credentialRepo.Upsert(credential); err != nil {
		return fmt.Errorf("store credentials: %w", err)
	}

	return nil
}

func (s *credentialService) GetCredentials(userID uuid.UUID) (string, string, error) {
	credential, err := s.credentialRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCredentialNotFound) {
			return "", "", ErrCredentialsNotFound
		}
		return "", "", fmt.Errorf("load credentials: %w", err)
	}

	secretID, err := s.decrypt(credential.EncryptedSecretID)
	if err != nil {
		return "", "", fmt.Errorf("decrypt secret id: %w", err)
	}

	secretKey, err := s.decrypt(credential.EncryptedSecretKey)
	if err != nil {
		return "", "", fmt.Errorf("decrypt secret key: %w", err)
	}

	return string(secretID), string(secretKey), nil
}

func (s *credentialService) DeleteCredentials(userID uuid.UUID) error {
	if err := s.credentialRepo.DeleteByUserID(userID); err != nil {
		return fmt.Errorf("delete credentials: %w", err)
	}
	return nil
}

func (s *credentialService) encrypt(plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(s.key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (s *credentialService) decrypt(ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(s.key)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < aead.NonceSize() {
		return nil, errors.New("ciphertext shorter than nonce")
	}

	nonce, sealed := ciphertext[:aead.NonceSize()], ciphertext[aead.NonceSize():]
	return aead.Open(nil, nonce, sealed, nil)
}
