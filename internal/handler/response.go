package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agence-menage/service-leads/internal/application"
	"github.com/agence-menage/service-leads/internal/domain/lead"
)

// Success writes a 200 response with the payload under "data".
func Success(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, gin.H{"data": payload})
}

// Created writes a 201 response with the payload under "data".
func Created(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, gin.H{"data": payload})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// Error maps known error types to their HTTP status: unknown service ids to
// 404, validation failures to 422 with the exact missing fields, anything
// else to 500.
func Error(c *gin.Context, err error) {
	if errors.Is(err, application.ErrServiceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}

	var validationErr *lead.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Veuillez remplir tous les champs obligatoires",
			"missing_fields": validationErr.MissingFields,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
