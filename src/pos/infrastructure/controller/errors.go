package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"pos/src/pos/domain/entity"

	"github.com/gin-gonic/gin"
)

var notFoundErrors = []error{
	entity.ErrPointOfSaleNotFound,
	entity.ErrOrderNotFound,
	entity.ErrOrderLineNotFound,
	entity.ErrBusinessPartnerNotFound,
	entity.ErrProductNotFound,
	entity.ErrChargeNotFound,
	entity.ErrPriceListNotFound,
	entity.ErrDocumentTypeNotFound,
	entity.ErrProductPriceNotFound,
}

var conflictErrors = []error{
	entity.ErrOrderNotDrafted,
	entity.ErrOrderLineProcessed,
	entity.ErrOrderProcessed,
}

var validationErrors = []error{
	entity.ErrProductOrChargeRequired,
	entity.ErrNothingToUpdate,
	entity.ErrSearchCriteriaRequired,
	entity.ErrPointOfSaleRequired,
	entity.ErrOrderRequired,
}

// respondError traduce los errores de dominio a códigos HTTP:
// no-encontrado -> 404, estado inválido -> 409, validación -> 400,
// cualquier otro -> 500
func respondError(ctx *gin.Context, err error) {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
	}
	for _, sentinel := range conflictErrors {
		if errors.Is(err, sentinel) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
	}
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	log.Printf("Error interno: %v", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// actingUserID recupera el vendedor que opera la terminal desde el
// header X-User-ID; 0 cuando no viene o es inválido
func actingUserID(ctx *gin.Context) int64 {
	header := ctx.GetHeader("X-User-ID")
	if header == "" {
		return 0
	}
	userID, err := strconv.ParseInt(header, 10, 64)
	if err != nil || userID < 0 {
		return 0
	}
	return userID
}

// sessionID recupera el identificador de sesión del cliente usado para
// los tokens de paginación
func sessionID(ctx *gin.Context) string {
	return ctx.GetHeader("X-Session-ID")
}
