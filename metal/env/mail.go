package env

// MailEnvironment configures the contact notifier. Without an API key the
// notifier only writes the message to the logs.
type MailEnvironment struct {
	ApiURL string `validate:"required_with=ApiKey,omitempty,url"`
	ApiKey string `validate:"omitempty,min=8"`
	From   string `validate:"required_with=ApiKey,omitempty,email"`
	To     string `validate:"required_with=ApiKey,omitempty,email"`
}

func (e MailEnvironment) IsConfigured() bool {
	return e.ApiKey != ""
}
