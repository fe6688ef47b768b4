package services

import (
	"net/http"
	"time"

	apperrors "hospital-system/pkg/errors"
)

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewHttpError(http.StatusBadRequest,
			"date invalide, format attendu AAAA-MM-JJ", err, nil)
	}
	return parsed, nil
}

func parseDatePtr(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := parseDate(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
