package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/services"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

func (ctl *CatalogController) List(c *gin.Context) {
	entries, err := ctl.catalog.Entries()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (ctl *CatalogController) Search(c *gin.Context) {
	entries, err := ctl.catalog.Search(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
