package errs

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

func IsDuplicatedErr(err error) bool {
	if err == nil {
		return false
	}

	if mysqlErr, ok := err.(*mysql.MySQLError); ok {
		return mysqlErr.Number == 1062
	}

	// TranslateError is enabled on the gorm handle, so drivers that support
	// it report uniqueness violations uniformly.
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
