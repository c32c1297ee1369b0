package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("admin1234")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "admin1234" {
		t.Fatal("Hash() returned the plaintext password")
	}

	if !Verify("admin1234", hash) {
		t.Error("Verify() = false for correct password")
	}
	if Verify("wrong-password", hash) {
		t.Error("Verify() = true for wrong password")
	}
	if Verify("admin1234", "not-a-bcrypt-hash") {
		t.Error("Verify() = true for malformed hash")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"admin1234", true},
		{"12345678", true},
		{"short", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := Validate(tt.password); got != tt.want {
			t.Errorf("Validate(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}
