package store

import (
	"bytes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"mwtrack/internal/util/memzero"
)

// Sealed record versions. Version 1 authenticated only the salt; version 2
// also binds the record to the key it is stored under.
const (
	sealV1 = 1
	sealV2 = 2
)

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// sealed record was modified or moved to another key.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted session")

// sealedRecord is the stored form of a sealed value.
type sealedRecord struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

type scryptParams struct{ N, r, p int }

var defaultScrypt = scryptParams{N: 1 << 15, r: 8, p: 1}

// looksSealed reports whether b is a sealed record rather than plain JSON.
func looksSealed(b []byte) bool {
	return bytes.Contains(b, []byte(`"cipher"`)) && bytes.Contains(b, []byte(`"scrypt_N"`))
}

// recordAAD is the additional data authenticated with a record stored under key.
func recordAAD(version int, key string, salt []byte) []byte {
	if version == sealV1 {
		return salt
	}
	aad := make([]byte, 0, len(key)+1+len(salt))
	aad = append(aad, key...)
	aad = append(aad, 0)
	return append(aad, salt...)
}

func recordAEAD(passphrase string, salt []byte, kdf scryptParams) (cipher.AEAD, error) {
	k, err := scrypt.Key([]byte(passphrase), salt, kdf.N, kdf.r, kdf.p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(k)
	return chacha20poly1305.New(k)
}

// sealRecord encrypts raw for storage under key.
func sealRecord(passphrase, key string, raw []byte, kdf scryptParams) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	aead, err := recordAEAD(passphrase, salt, kdf)
	if err != nil {
		return nil, err
	}
	// Every write draws a new salt and therefore a new key, so a zero nonce is safe.
	nonce := make([]byte, chacha20poly1305.NonceSize)
	return json.Marshal(sealedRecord{
		V:      sealV2,
		Salt:   salt,
		N:      kdf.N,
		R:      kdf.r,
		P:      kdf.p,
		Cipher: aead.Seal(nil, nonce, raw, recordAAD(sealV2, key, salt)),
	})
}

// openRecord decrypts a record read from key.
func openRecord(passphrase, key string, b []byte) ([]byte, error) {
	var rec sealedRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, err
	}
	if rec.V < sealV1 || rec.V > sealV2 {
		return nil, fmt.Errorf("unsupported session format version %d", rec.V)
	}
	aead, err := recordAEAD(passphrase, rec.Salt, scryptParams{N: rec.N, r: rec.R, p: rec.P})
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	pt, err := aead.Open(nil, nonce, rec.Cipher, recordAAD(rec.V, key, rec.Salt))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
