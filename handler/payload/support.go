package payload

import (
	"time"

	"github.com/Matias-sh/mi-portafolio/pkg/portal"
	"gorm.io/datatypes"
)

// NullableString renders an empty media reference as null.
func NullableString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

func FormatDate(value datatypes.Date) string {
	return time.Time(value).Format(portal.DateOnlyLayout)
}

func FormatNullableDate(value *datatypes.Date) *string {
	if value == nil {
		return nil
	}

	formatted := FormatDate(*value)

	return &formatted
}
