package validation

import (
	"time"

	"github.com/iliyamo/school-admin/internal/model"
)

func validDate(s string) bool {
	_, err := time.Parse(model.DateLayout, s)
	return err == nil
}
