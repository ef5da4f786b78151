package utils

import (
	"errors"
	"os"
	"strings"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"
)

// TranslateDBError turns raw database errors into a human-readable message.
// Used for log detail and create failures; lookup misses never reach here.
func TranslateDBError(err error) string {
	if err == nil {
		return ""
	}

	lang := strings.ToUpper(strings.TrimSpace(os.Getenv("APP_API_RETURN_LANG")))
	if lang == "" {
		lang = "AR"
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique violation
			msg := "Duplicate value, please use another"
			if strings.Contains(pgErr.Message, "teachers_username") {
				msg = "Username already exists"
			} else if strings.Contains(pgErr.Message, "parents_username") {
				msg = "Username already exists"
			}
			if lang == "AR" {
				msg = "القيمة مستخدمة من قبل"
			}
			return msg

		case "23503": // foreign key violation
			if lang == "AR" {
				return "المعرّف المُشار إليه غير موجود"
			}
			return "Referenced record does not exist"

		case "23502":
			if lang == "AR" {
				return "هناك حقل مطلوب لم يتم تعبئته"
			}
			return "Some required fields are missing"

		case "22P02":
			if lang == "AR" {
				return "صيغة البيانات غير صالحة"
			}
			return "Invalid data format"
		}

		if lang == "AR" {
			return "حدث خطأ في قاعدة البيانات"
		}
		return "A database error occurred"
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if lang == "AR" {
			return "السجل غير موجود"
		}
		return "Record not found"
	}

	lowerErr := strings.ToLower(err.Error())
	if strings.Contains(lowerErr, "context deadline exceeded") {
		if lang == "AR" {
			return "انتهت مهلة الطلب"
		}
		return "Request timeout"
	}
	if strings.Contains(lowerErr, "connection") {
		if lang == "AR" {
			return "تعذّر الاتصال بقاعدة البيانات"
		}
		return "Failed to reach the database"
	}

	return err.Error()
}
