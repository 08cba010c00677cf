package env

const (
	AppLocal      = "local"
	AppStaging    = "staging"
	AppProduction = "production"
)

// AppEnvironment carries the ENV_APP_* values. MasterKey signs admin tokens.
type AppEnvironment struct {
	Name      string `validate:"required,min=4"`
	URL       string `validate:"required,url"`
	Type      string `validate:"required,lowercase,oneof=local production staging"`
	MasterKey string `validate:"required,min=32"`
}

func (e AppEnvironment) IsProduction() bool {
	return e.Type == AppProduction
}

func (e AppEnvironment) IsLocal() bool {
	return e.Type == AppLocal
}

// AllowsTruncate reports whether the content tables may be wiped before seeding.
func (e AppEnvironment) AllowsTruncate() bool {
	return e.Type == AppLocal || e.Type == AppStaging
}
