package middleware

import "testing"

func TestValidateTenantID(t *testing.T) {
	for _, tenant := range []string{"acme", "tenant-a", "t_1"} {
		if err := ValidateTenantID(tenant); err != nil {
			t.Errorf("ValidateTenantID(%q) = %v, want nil", tenant, err)
		}
	}
	for _, tenant := range []string{"", "bad tenant", "a/b"} {
		if err := ValidateTenantID(tenant); err == nil {
			t.Errorf("ValidateTenantID(%q) = nil, want error", tenant)
		}
	}
}

func TestValidateRecordID(t *testing.T) {
	valid := "11111111-2222-3333-4444-555555555555"
	if err := ValidateRecordID(valid); err != nil {
		t.Fatalf("ValidateRecordID(valid) = %v, want nil", err)
	}
	// case-insensitive
	if err := ValidateRecordID("AAAAAAAA-BBBB-CCCC-DDDD-EEEEEEEEEEEE"); err != nil {
		t.Fatalf("ValidateRecordID(upper) = %v, want nil", err)
	}
	for _, id := range []string{"", "not-a-uuid", "11111111222233334444555555555555"} {
		if err := ValidateRecordID(id); err == nil {
			t.Errorf("ValidateRecordID(%q) = nil, want error", id)
		}
	}
}

func TestValidatePageSize(t *testing.T) {
	cases := []struct{ in, want int }{
		{-5, 20},
		{0, 20},
		{10, 10},
		{100, 100},
		{500, 100},
	}
	for _, tc := range cases {
		if got := ValidatePageSize(tc.in); got != tc.want {
			t.Errorf("ValidatePageSize(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
