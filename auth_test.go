package investlab

import (
	"errors"
	"testing"
	"time"
)

func validForm() RegisterForm {
	return RegisterForm{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
		Confirm:  "secret123",
	}
}

// testFlow returns a flow with a controllable clock.
func testFlow(users Directory) (*Flow, *time.Time) {
	f := NewFlow(users)
	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	f.now = func() time.Time { return now }
	return f, &now
}

func TestFlow_RegisterVerifyLogin(t *testing.T) {
	f, _ := testFlow(Directory{})

	otp, err := f.Register(validForm())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if f.State() != AwaitingOTP {
		t.Errorf("state = %v, want %v", f.State(), AwaitingOTP)
	}
	if user := f.Users().Lookup("asha@example.com"); user == nil || user.Verified {
		t.Fatalf("user = %+v, want an unverified record", user)
	}

	if err := f.Verify("asha@example.com", otp); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if f.State() != LoggedOut {
		t.Errorf("state after verify = %v, want %v", f.State(), LoggedOut)
	}
	user := f.Users().Lookup("asha@example.com")
	if !user.Verified || user.OTP != "" || !user.OTPExpires.IsZero() {
		t.Errorf("user after verify = %+v, want verified with OTP cleared", user)
	}

	session, _, err := f.Login("asha@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if f.State() != LoggedIn {
		t.Errorf("state after login = %v, want %v", f.State(), LoggedIn)
	}
	if session.ID == "" || session.Email != "asha@example.com" {
		t.Errorf("session = %+v", session)
	}

	f.Logout()
	if f.State() != LoggedOut {
		t.Errorf("state after logout = %v, want %v", f.State(), LoggedOut)
	}
}

func TestFlow_RegisterDuplicateEmail(t *testing.T) {
	f, _ := testFlow(Directory{})
	if _, err := f.Register(validForm()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := f.Register(validForm()); !errors.Is(err, ErrEmailExists) {
		t.Errorf("second Register() error = %v, want %v", err, ErrEmailExists)
	}
}

func TestFlow_RegisterInvalidForm(t *testing.T) {
	f, _ := testFlow(Directory{})

	form := validForm()
	form.Email = "not-an-email"
	form.Confirm = "different"
	_, err := f.Register(form)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Register() error = %v, want a ValidationError", err)
	}
	if len(ve.Messages) != 2 {
		t.Errorf("messages = %v, want an email and a confirm failure", ve.Messages)
	}
	if f.State() != LoggedOut {
		t.Errorf("state = %v, want unchanged %v", f.State(), LoggedOut)
	}
}

func TestFlow_VerifyWrongAndExpiredOTP(t *testing.T) {
	f, now := testFlow(Directory{})
	otp, _ := f.Register(validForm())

	if err := f.Verify("asha@example.com", "000000"); !errors.Is(err, ErrInvalidOTP) {
		t.Errorf("wrong code error = %v, want %v", err, ErrInvalidOTP)
	}
	if f.State() != AwaitingOTP {
		t.Errorf("state = %v, want still %v", f.State(), AwaitingOTP)
	}

	*now = now.Add(OTPValidity + time.Millisecond)
	if err := f.Verify("asha@example.com", otp); !errors.Is(err, ErrExpiredOTP) {
		t.Errorf("expired code error = %v, want %v", err, ErrExpiredOTP)
	}
	if f.Users().Lookup("asha@example.com").Verified {
		t.Error("user verified despite expired OTP")
	}
}

func TestFlow_LoginUnverifiedReissuesOTP(t *testing.T) {
	f, _ := testFlow(Directory{})
	first, _ := f.Register(validForm())

	session, second, err := f.Login("asha@example.com", "secret123")
	if !errors.Is(err, ErrNotVerified) {
		t.Fatalf("Login() error = %v, want %v", err, ErrNotVerified)
	}
	if session != nil {
		t.Errorf("session = %+v, want nil", session)
	}
	if second == "" || second == first {
		t.Errorf("reissued OTP = %q, want a fresh code", second)
	}

	// The fresh code works.
	if err := f.Verify("asha@example.com", second); err != nil {
		t.Errorf("Verify() with reissued code error = %v", err)
	}
}

func TestFlow_LoginBadCredentials(t *testing.T) {
	f, _ := testFlow(Directory{})
	otp, _ := f.Register(validForm())
	f.Verify("asha@example.com", otp)

	if _, _, err := f.Login("asha@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want %v", err, ErrInvalidCredentials)
	}
	if _, _, err := f.Login("nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want %v", err, ErrInvalidCredentials)
	}
}

func TestFlow_PasswordReset(t *testing.T) {
	f, _ := testFlow(Directory{})
	otp, _ := f.Register(validForm())
	f.Verify("asha@example.com", otp)

	code := f.RequestReset("asha@example.com")
	if code == "" {
		t.Fatal("RequestReset() returned no code for a known email")
	}
	if f.State() != ResettingPassword {
		t.Errorf("state = %v, want %v", f.State(), ResettingPassword)
	}

	err := f.ResetPassword("asha@example.com", code, ResetForm{Password: "newpass1", Confirm: "newpass1"})
	if err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}
	if f.State() != LoggedOut {
		t.Errorf("state = %v, want %v", f.State(), LoggedOut)
	}
	if _, _, err := f.Login("asha@example.com", "newpass1"); err != nil {
		t.Errorf("Login() with new password error = %v", err)
	}
}

// An unknown email gets no code and no error, so callers cannot probe which
// accounts exist.
func TestFlow_RequestResetUnknownEmail(t *testing.T) {
	f, _ := testFlow(Directory{})
	if code := f.RequestReset("nobody@example.com"); code != "" {
		t.Errorf("RequestReset() = %q, want no code", code)
	}
	if f.State() != ResettingPassword {
		t.Errorf("state = %v, want %v", f.State(), ResettingPassword)
	}
}

func TestFlow_ResetPasswordRejectsWeakPassword(t *testing.T) {
	f, _ := testFlow(Directory{})
	otp, _ := f.Register(validForm())
	f.Verify("asha@example.com", otp)
	code := f.RequestReset("asha@example.com")

	err := f.ResetPassword("asha@example.com", code, ResetForm{Password: "short", Confirm: "short"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("ResetPassword() error = %v, want a ValidationError", err)
	}
	if _, _, err := f.Login("asha@example.com", "secret123"); err != nil {
		t.Errorf("old password no longer works: %v", err)
	}
}
