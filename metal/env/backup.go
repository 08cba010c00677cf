package env

const DefaultBackupDir = "./storage/backups"

type BackupEnvironment struct {
	Cron string `validate:"omitempty,cron"`
	Dir  string `validate:"required"`
}

func (e BackupEnvironment) IsEnabled() bool {
	return e.Cron != ""
}
