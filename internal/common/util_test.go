package common

import (
	"testing"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("admin123")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestSessionStorageKeys_CoversAllKeys(t *testing.T) {
	want := map[string]bool{StorageKeyAccessToken: true, StorageKeyRefreshToken: true, StorageKeyUser: true}
	if len(SessionStorageKeys) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), SessionStorageKeys)
	}
	for _, k := range SessionStorageKeys {
		if !want[k] {
			t.Fatalf("unexpected key %q", k)
		}
	}
}
