package validator

import "testing"

type passwordPayload struct {
	Password string `validate:"required,min=6,password"`
}

type nationalIDPayload struct {
	NationalID string `validate:"required,len=11,numeric"`
}

func TestPasswordRule(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"letters and digits", "secret123", false},
		{"only letters", "secretive", true},
		{"only digits", "123456789", true},
		{"too short", "ab1", true},
		{"empty", "", true},
		{"unicode letters with digit", "sésamo1ab", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(passwordPayload{Password: tt.password})
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestNationalIDRule(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		nationalID string
		wantErr    bool
	}{
		{"eleven digits", "12345678901", false},
		{"too short", "1234567890", true},
		{"too long", "123456789012", true},
		{"contains letters", "12345abc901", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(nationalIDPayload{NationalID: tt.nationalID})
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.nationalID, err, tt.wantErr)
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(passwordPayload{Password: "secretive"})
	if err == nil {
		t.Fatal("expected a validation error")
	}

	formatted := v.FormatValidationErrors(err)
	if msg, ok := formatted["Password"]; !ok || msg == "" {
		t.Errorf("expected a message for Password, got %v", formatted)
	}
}
