package handler

import (
	"strconv"

	"smachna/internal/usecase"

	"github.com/labstack/echo/v4"
)

// parsePage reads the page/per_page query parameters ("limit" is accepted as
// an alias of per_page on partner routes). Malformed values fall back to zero
// and are normalized by the use case layer.
func parsePage(c echo.Context) usecase.Page {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	if perPage == 0 {
		perPage, _ = strconv.Atoi(c.QueryParam("limit"))
	}

	return usecase.Page{
		Page:    page,
		PerPage: perPage,
	}
}
