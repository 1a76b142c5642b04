package constvars

const (
	// RegexClockTimeHHMM matches a 24-hour wall-clock time with minute
	// resolution: one or two hour digits in [0,23], exactly two minute
	// digits in [00,59]. "24:00" is not a valid instant.
	RegexClockTimeHHMM = `^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`

	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexAlphanumeric                 = `^[a-zA-Z0-9]+$`
)
