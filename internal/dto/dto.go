package dto

import "time"

const timeLayout = "2006-01-02 15:04:05"

// FormatTime rend les horodatages dans le format attendu par le client.
func FormatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timeLayout)
}

// FormatDate rend une date sans composante horaire.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
