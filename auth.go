package investlab

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Errors surfaced by the authentication flow. They are all handled at the
// screen boundary; none is fatal.
var (
	ErrEmailExists        = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidOTP         = errors.New("invalid OTP")
	ErrExpiredOTP         = errors.New("OTP has expired")
	ErrNotVerified        = errors.New("account is not verified")
	ErrUnknownEmail       = errors.New("no account with this email")
)

// User is a credential-directory record, keyed by email.
//
// The password is stored in plaintext: this is a local, offline learning
// app with no server behind it.
type User struct {
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Password      string    `json:"password"`
	DOB           string    `json:"dob,omitempty"`
	Mobile        string    `json:"mobile,omitempty"`
	Gender        string    `json:"gender,omitempty"`
	WorkingStatus string    `json:"workingStatus,omitempty"`
	Verified      bool      `json:"verified"`
	OTP           string    `json:"otp,omitempty"`
	OTPExpires    time.Time `json:"otpExpires,omitzero"`
}

// Directory is the local credential directory, email to user record.
type Directory map[string]*User

// Lookup returns the user registered under this email, or nil if unknown.
func (d Directory) Lookup(email string) *User { return d[email] }

// Session identifies a logged-in user for the lifetime of a login.
type Session struct {
	ID    string `json:"id"` // uuid
	Email string `json:"email"`
}

// AuthState is a state of the authentication flow.
type AuthState int

const (
	LoggedOut AuthState = iota
	Registering
	AwaitingOTP
	LoggedIn
	ForgotPassword
	ResettingPassword
)

func (s AuthState) String() string {
	switch s {
	case LoggedOut:
		return "logged-out"
	case Registering:
		return "registering"
	case AwaitingOTP:
		return "awaiting-otp"
	case LoggedIn:
		return "logged-in"
	case ForgotPassword:
		return "forgot-password"
	case ResettingPassword:
		return "resetting-password"
	default:
		return "unknown"
	}
}

// Flow drives the authentication state machine over a credential directory.
// The terminal state is LoggedIn. OTP mismatch or expiry keeps the flow in
// its current state and surfaces an error; it never auto-retries.
//
// The random source and clock are injectable for test determinism.
type Flow struct {
	users Directory
	state AuthState
	rand  *rand.Rand
	now   func() time.Time
}

// NewFlow returns a flow over the given directory, starting LoggedOut.
func NewFlow(users Directory) *Flow {
	return &Flow{
		users: users,
		state: LoggedOut,
		rand:  rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		now:   time.Now,
	}
}

// State returns the current state of the flow.
func (f *Flow) State() AuthState { return f.state }

// Users exposes the directory so the caller can persist it after a change.
func (f *Flow) Users() Directory { return f.users }

// Register validates the form, creates an unverified user with a fresh OTP,
// and moves the flow to AwaitingOTP. The OTP is returned for display
// (simulated delivery). A duplicate email fails with ErrEmailExists.
func (f *Flow) Register(form RegisterForm) (otp string, err error) {
	if err := form.Validate(); err != nil {
		return "", err
	}
	if f.users.Lookup(form.Email) != nil {
		return "", fmt.Errorf("register %q: %w", form.Email, ErrEmailExists)
	}

	code, expires := GenerateOTP(f.rand, f.now())
	f.users[form.Email] = &User{
		Name:          form.Name,
		Email:         form.Email,
		Password:      form.Password,
		DOB:           form.DOB,
		Mobile:        form.Mobile,
		Gender:        form.Gender,
		WorkingStatus: form.WorkingStatus,
		OTP:           code,
		OTPExpires:    expires,
	}
	f.state = AwaitingOTP
	return code, nil
}

// Verify checks the OTP for an account pending verification. On success the
// user is marked verified, the OTP is cleared and the flow returns to
// LoggedOut so the user can log in. On mismatch or expiry the flow stays at
// AwaitingOTP.
func (f *Flow) Verify(email, code string) error {
	user := f.users.Lookup(email)
	if user == nil {
		return fmt.Errorf("verify %q: %w", email, ErrUnknownEmail)
	}
	if err := f.checkOTP(user, code); err != nil {
		return err
	}
	user.Verified = true
	user.OTP = ""
	user.OTPExpires = time.Time{}
	f.state = LoggedOut
	return nil
}

// Login checks the credentials. Success reaches the terminal LoggedIn state
// and mints a session. Logging into an unverified account issues a fresh
// OTP (returned for display), moves to AwaitingOTP and fails with
// ErrNotVerified.
func (f *Flow) Login(email, password string) (*Session, string, error) {
	user := f.users.Lookup(email)
	if user == nil || user.Password != password {
		return nil, "", ErrInvalidCredentials
	}
	if !user.Verified {
		code, expires := GenerateOTP(f.rand, f.now())
		user.OTP = code
		user.OTPExpires = expires
		f.state = AwaitingOTP
		return nil, code, fmt.Errorf("login %q: %w", email, ErrNotVerified)
	}
	f.state = LoggedIn
	return &Session{ID: uuid.NewString(), Email: email}, "", nil
}

// RequestReset starts a password reset. For a known email it issues a fresh
// OTP (returned for display); for an unknown email it silently does nothing,
// so the caller cannot probe which accounts exist. Either way the flow moves
// to ResettingPassword.
func (f *Flow) RequestReset(email string) (otp string) {
	f.state = ResettingPassword
	user := f.users.Lookup(email)
	if user == nil {
		return ""
	}
	code, expires := GenerateOTP(f.rand, f.now())
	user.OTP = code
	user.OTPExpires = expires
	return code
}

// ResetPassword completes a reset: the OTP must match and be fresh, and the
// new password must pass the same rules as registration. On success the OTP
// is cleared and the flow returns to LoggedOut. On failure the flow stays at
// ResettingPassword.
func (f *Flow) ResetPassword(email, code string, form ResetForm) error {
	user := f.users.Lookup(email)
	if user == nil {
		return fmt.Errorf("reset %q: %w", email, ErrInvalidOTP)
	}
	if err := f.checkOTP(user, code); err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		return err
	}
	user.Password = form.Password
	user.OTP = ""
	user.OTPExpires = time.Time{}
	f.state = LoggedOut
	return nil
}

// Logout leaves the terminal state. Progress and portfolio are kept.
func (f *Flow) Logout() { f.state = LoggedOut }

func (f *Flow) checkOTP(user *User, code string) error {
	if OTPExpired(user.OTPExpires, f.now()) {
		return ErrExpiredOTP
	}
	if user.OTP == "" || user.OTP != code {
		return ErrInvalidOTP
	}
	return nil
}
