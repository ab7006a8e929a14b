package config

type Credential struct {
	// SaltRounds is the bcrypt cost used when hashing passwords.
	//
	// Default: 10
	SaltRounds int `validate:"min=4,max=31"`
	// MinimumScore is the lowest zxcvbn score a new password may have. 0
	// accepts any password that satisfies the length rules.
	//
	// Default: 0
	MinimumScore int `validate:"min=0,max=4"`
	// ProfaneCheck rejects usernames that contain profanity.
	//
	// Default: true
	ProfaneCheck bool
}
