package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// renderNotFound renders the standard not-found page. Task lookups that
// miss, including ids owned by another account, all end up here.
func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{})
}

func renderServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
}
