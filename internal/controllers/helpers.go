package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func parseIDParam(ctx echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "format d'identifiant invalide")
	}
	return id, nil
}

// openFormFile ouvre un fichier multipart optionnel. Un reader nil signifie
// que le champ n'était pas dans la requête.
func openFormFile(ctx echo.Context, field string, maxSize int64) (io.ReadCloser, string, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		return nil, "", nil
	}
	if maxSize > 0 && fileHeader.Size > maxSize {
		return nil, "", echo.NewHTTPError(http.StatusRequestEntityTooLarge, "fichier trop volumineux")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "fichier illisible")
	}
	return file, fileHeader.Filename, nil
}
