package env

type LogsEnvironment struct {
	Level      string `validate:"required,oneof=debug info warn error"`
	Dir        string `validate:"required,contains=%s"`
	DateFormat string `validate:"required"`
}
