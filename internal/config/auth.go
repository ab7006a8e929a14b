package config

type Auth struct {
	// AccessToken is the static bearer token every authenticated
	// request must present.
	AccessToken string `validate:"required,min=8"`
}
