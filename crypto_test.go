package cubislang

import (
	"errors"
	"testing"
)

func TestAESRoundTrip(t *testing.T) {
	keys := [][]byte{
		[]byte("0123456789abcdef"),
		[]byte("0123456789abcdef01234567"),
		[]byte("0123456789abcdef0123456789abcdef"),
	}
	plain := []byte(`{"greeting":"Hello!","app":{"title":"Test"}}`)

	for _, key := range keys {
		encoded, err := encryptAES(plain, key)
		if err != nil {
			t.Fatalf("encrypt with %d byte key: %v", len(key), err)
		}
		got, err := decryptAES(encoded, key)
		if err != nil {
			t.Fatalf("decrypt with %d byte key: %v", len(key), err)
		}
		if string(got) != string(plain) {
			t.Errorf("round trip with %d byte key = %q", len(key), got)
		}
	}
}

func TestAESBadKeySize(t *testing.T) {
	if _, err := encryptAES([]byte("data"), []byte("short")); !errors.Is(err, ErrBadKeySize) {
		t.Errorf("encrypt err = %v; want ErrBadKeySize", err)
	}
	if _, err := decryptAES("aGVsbG8=", []byte("short")); !errors.Is(err, ErrBadKeySize) {
		t.Errorf("decrypt err = %v; want ErrBadKeySize", err)
	}
}

func TestDecryptAESBadPayload(t *testing.T) {
	key := []byte("0123456789abcdef")
	tests := []string{
		"not base64!!!",
		"",
		"aGVsbG8=", // valid base64, not block aligned
	}
	for _, payload := range tests {
		if _, err := decryptAES(payload, key); !errors.Is(err, ErrBadPayload) {
			t.Errorf("decryptAES(%q) err = %v; want ErrBadPayload", payload, err)
		}
	}
}

func TestDecryptAESBadPadding(t *testing.T) {
	key := []byte("0123456789abcdef")
	// A full block of zeros decrypts to garbage with invalid padding.
	encoded, err := encryptAES([]byte("0123456789abcde"), key)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := decryptAES(encoded, []byte("fedcba9876543210")); err == nil {
		t.Skip("wrong key happened to produce valid padding")
	}
}

func TestPKCS7Unpad(t *testing.T) {
	got, err := pkcs7Unpad([]byte{'a', 'b', 'c', 5, 5, 5, 5, 5}, 8)
	if err != nil {
		t.Fatalf("pkcs7Unpad: %v", err)
	}
	if string(got) != "abc" {
		t.Errorf("pkcs7Unpad = %q; want abc", got)
	}

	bad := [][]byte{
		{},
		{'a', 'b', 0},
		{'a', 'b', 9},
		{'a', 5, 5, 4, 5},
	}
	for _, data := range bad {
		if _, err := pkcs7Unpad(data, 8); !errors.Is(err, ErrBadPayload) {
			t.Errorf("pkcs7Unpad(%v) err = %v; want ErrBadPayload", data, err)
		}
	}
}
