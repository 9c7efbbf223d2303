package investlab

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// OTPValidity is how long a one-time password stays usable.
const OTPValidity = 5 * time.Minute

// GenerateOTP returns a six digit numeric code in [100000,999999] and its
// expiry instant, OTPValidity from now. Delivery is simulated: the code is
// handed back to the caller for display, there is no real channel.
func GenerateOTP(r *rand.Rand, now time.Time) (code string, expires time.Time) {
	return fmt.Sprintf("%06d", 100000+r.IntN(900000)), now.Add(OTPValidity)
}

// OTPExpired reports whether a code generated with the given expiry is no
// longer usable at instant now. A zero expiry counts as expired.
func OTPExpired(expires, now time.Time) bool {
	if expires.IsZero() {
		return true
	}
	return now.After(expires)
}
