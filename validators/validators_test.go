package validators

import "testing"

func TestPhoneValidator(t *testing.T) {
	if err := PhoneValidator("5551234567"); err != nil {
		t.Fatalf("valid phone rejected: %v", err)
	}
	if err := PhoneValidator(""); err != ErrPhoneEmpty {
		t.Fatalf("empty phone = %v, want ErrPhoneEmpty", err)
	}
	if err := PhoneValidator("555123456"); err != ErrPhoneFormat {
		t.Fatalf("short phone = %v, want ErrPhoneFormat", err)
	}
	if err := PhoneValidator("555123456x"); err != ErrPhoneFormat {
		t.Fatalf("non-digit phone = %v, want ErrPhoneFormat", err)
	}
}

func TestIDValidator(t *testing.T) {
	if err := IDValidator("abcdefghij0123456789"); err != nil {
		t.Fatalf("valid id rejected: %v", err)
	}
	if err := IDValidator("short"); err != ErrIDLength {
		t.Fatalf("short id = %v, want ErrIDLength", err)
	}
}

func TestCheckFieldValidators(t *testing.T) {
	if err := ProtocolValidator("https"); err != nil {
		t.Fatalf("https rejected: %v", err)
	}
	if err := ProtocolValidator("ftp"); err != ErrProtocolInvalid {
		t.Fatalf("ftp = %v, want ErrProtocolInvalid", err)
	}

	if err := CheckMethodValidator("delete"); err != nil {
		t.Fatalf("delete rejected: %v", err)
	}
	if err := CheckMethodValidator("patch"); err != ErrMethodInvalid {
		t.Fatalf("patch = %v, want ErrMethodInvalid", err)
	}

	if err := SuccessCodesValidator(nil); err != ErrSuccessCodesEmpty {
		t.Fatalf("empty codes = %v, want ErrSuccessCodesEmpty", err)
	}

	for _, tc := range []struct {
		timeout int
		ok      bool
	}{{0, false}, {1, true}, {5, true}, {6, false}} {
		err := TimeoutValidator(tc.timeout)
		if (err == nil) != tc.ok {
			t.Fatalf("TimeoutValidator(%d) = %v", tc.timeout, err)
		}
	}
}
