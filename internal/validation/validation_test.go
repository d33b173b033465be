package validation

import (
	"strings"
	"testing"
)

const (
	goodName     = "Jonathan Archibald Smithson"
	goodPassword = "Valid@Pass1"
)

func TestUserValid(t *testing.T) {
	if errs := User(goodName, "jon@example.com", goodPassword, "12 Main Street"); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestUserNameLength(t *testing.T) {
	if errs := User("Short Name", "jon@example.com", goodPassword, ""); errs["name"] == "" {
		t.Fatal("expected name error for short name")
	}
	long := strings.Repeat("a", 61)
	if errs := User(long, "jon@example.com", goodPassword, ""); errs["name"] == "" {
		t.Fatal("expected name error for long name")
	}
}

func TestUserEmail(t *testing.T) {
	for _, email := range []string{"", "not-an-email", "a@b", "a b@example.com"} {
		if errs := User(goodName, email, goodPassword, ""); errs["email"] == "" {
			t.Errorf("expected email error for %q", email)
		}
	}
}

func TestUserPassword(t *testing.T) {
	cases := map[string]string{
		"Sh@rt1":             "too short",
		"Toolongpassword@X1": "too long",
		"nouppercase@1":      "missing uppercase",
		"NoSpecial11":        "missing special char",
	}
	for pw, why := range cases {
		if errs := User(goodName, "jon@example.com", pw, ""); errs["password"] == "" {
			t.Errorf("expected password error (%s) for %q", why, pw)
		}
	}
	if errs := User(goodName, "jon@example.com", "Valid@Pw", ""); errs != nil {
		t.Errorf("8-char password with uppercase+special should pass, got %v", errs)
	}
}

func TestUserAddress(t *testing.T) {
	long := strings.Repeat("x", 401)
	if errs := User(goodName, "jon@example.com", goodPassword, long); errs["address"] == "" {
		t.Fatal("expected address error for 401 characters")
	}
	if errs := User(goodName, "jon@example.com", goodPassword, strings.Repeat("x", 400)); errs != nil {
		t.Fatalf("400-character address should pass, got %v", errs)
	}
}

func TestStore(t *testing.T) {
	if errs := Store("The Corner Grocery Store", "shop@example.com", "5 High Street"); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if errs := Store("Tiny", "shop@example.com", ""); errs["name"] == "" {
		t.Fatal("expected name error for short store name")
	}
}

func TestRating(t *testing.T) {
	if errs := Rating(3, 4); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
	for _, v := range []int{0, -1, 6, 100} {
		if errs := Rating(3, v); errs["rating"] == "" {
			t.Errorf("expected rating error for value %d", v)
		}
	}
	if errs := Rating(0, 3); errs["storeId"] == "" {
		t.Fatal("expected storeId error for zero id")
	}
}

func TestLogin(t *testing.T) {
	if errs := Login("jon@example.com", "whatever"); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if errs := Login("jon@example.com", ""); errs["password"] == "" {
		t.Fatal("expected password error for empty password")
	}
}

func TestPasswordUpdate(t *testing.T) {
	if errs := PasswordUpdate("old-pw", goodPassword); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if errs := PasswordUpdate("", goodPassword); errs["currentPassword"] == "" {
		t.Fatal("expected currentPassword error")
	}
	if errs := PasswordUpdate("old-pw", "weak"); errs["newPassword"] == "" {
		t.Fatal("expected newPassword error")
	}
}
